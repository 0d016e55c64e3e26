/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package accessor_test

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"dirpx.dev/objmap/accessor"
	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/config"
)

type base struct {
	id   int
	Name string
}

type derived struct {
	*base
	Ready bool
}

type gauge struct {
	level  int
	reader io.Reader
	failOn bool
	unit   string
}

var errGauge = errors.New("gauge: broken")

func (g *gauge) Level() int     { return g.level }
func (g *gauge) SetLevel(v int) { g.level = v }
func (g *gauge) Checked() (int, error) {
	if g.failOn {
		return 0, errGauge
	}
	return g.level, nil
}
func (g *gauge) SetChecked(v int) error {
	if v < 0 {
		return errGauge
	}
	g.level = v
	return nil
}
func (g *gauge) Explode() int      { panic(errGauge) }
func (g *gauge) SetExplode(v int)  {}
func (g *gauge) Wrong() (int, int) { return 0, 0 }
func (g *gauge) SetWrong(v int)    {}
func (g *gauge) SetBad(v string)   {}
func (g *gauge) Unit() string      { return g.unit }
func (g *gauge) SetUnit(v string) (string, error) {
	if v == "" {
		return g.unit, errGauge
	}
	old := g.unit
	g.unit = v
	return old, nil
}

type dial struct {
	*gauge
	Label string
}

func method(t *testing.T, typ reflect.Type, name string) reflect.Method {
	t.Helper()
	m, ok := reflect.PointerTo(typ).MethodByName(name)
	if !ok {
		t.Fatalf("method %s not found on *%s", name, typ)
	}
	return m
}

func fieldOf(t *testing.T, owner reflect.Type, name string, index []int, cfg apis.Config) *accessor.Field {
	t.Helper()
	sf, ok := owner.FieldByName(name)
	if !ok {
		t.Fatalf("field %s not found on %s", name, owner)
	}
	return accessor.NewField(owner, sf, index, cfg)
}

func TestField_GetSet_Unexported(t *testing.T) {
	g := &gauge{level: 3}
	f := fieldOf(t, reflect.TypeOf(gauge{}), "level", []int{0}, config.DefaultConfig())

	if f.Key() != "level" || f.Kind() != apis.FieldKind || f.Type() != reflect.TypeOf(0) {
		t.Fatalf("descriptor: got (%q,%v,%v)", f.Key(), f.Kind(), f.Type())
	}
	if f.Bound() {
		t.Fatal("NewField: want unbound accessor")
	}

	b := f.Bind(reflect.ValueOf(g).Elem())
	if !b.Bound() || f.Bound() {
		t.Fatalf("Bind: bound copy=%v, original=%v; want true,false", b.Bound(), f.Bound())
	}

	got, err := b.Get()
	if err != nil || got != 3 {
		t.Fatalf("Get: got (%v,%v), want (3,nil)", got, err)
	}
	prev, err := b.Set(7)
	if err != nil || prev != 3 {
		t.Fatalf("Set: got (%v,%v), want (3,nil)", prev, err)
	}
	if g.level != 7 {
		t.Fatalf("Set did not write through: level=%d", g.level)
	}
}

func TestField_Set_InvalidArgument(t *testing.T) {
	g := &gauge{level: 3}
	f := fieldOf(t, reflect.TypeOf(gauge{}), "level", []int{0}, config.DefaultConfig()).
		Bind(reflect.ValueOf(g).Elem())

	if _, err := f.Set("three"); !errors.Is(err, apis.ErrInvalidArgument) {
		t.Fatalf("Set(string): want ErrInvalidArgument, got %v", err)
	}
	if _, err := f.Set(nil); !errors.Is(err, apis.ErrInvalidArgument) {
		t.Fatalf("Set(nil) on int: want ErrInvalidArgument, got %v", err)
	}
	if g.level != 3 {
		t.Fatalf("failed Set modified the field: level=%d", g.level)
	}
}

func TestField_Set_NilAndInterfaces(t *testing.T) {
	r := &gauge{}
	g := &gauge{reader: io.MultiReader()}
	f := fieldOf(t, reflect.TypeOf(gauge{}), "reader", []int{1}, config.DefaultConfig()).
		Bind(reflect.ValueOf(r).Elem())

	if _, err := f.Set(g.reader); err != nil {
		t.Fatalf("Set(io.Reader): unexpected error: %v", err)
	}
	if r.reader != g.reader {
		t.Fatal("Set(io.Reader) did not write through")
	}
	if _, err := f.Set(nil); err != nil {
		t.Fatalf("Set(nil) on interface: unexpected error: %v", err)
	}
	if r.reader != nil {
		t.Fatal("Set(nil) did not clear the interface field")
	}
}

func TestField_Unbound_NullTarget(t *testing.T) {
	f := fieldOf(t, reflect.TypeOf(gauge{}), "level", []int{0}, config.DefaultConfig())
	if _, err := f.Get(); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Get unbound: want ErrNullTarget, got %v", err)
	}
	if _, err := f.Set(1); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Set unbound: want ErrNullTarget, got %v", err)
	}
}

func TestField_AccessDenied(t *testing.T) {
	g := &gauge{level: 3}
	cfg := config.NewConfig(config.WithAllowUnexported(false))
	f := fieldOf(t, reflect.TypeOf(gauge{}), "level", []int{0}, cfg).
		Bind(reflect.ValueOf(g).Elem())

	if _, err := f.Get(); !errors.Is(err, apis.ErrAccessDenied) {
		t.Fatalf("Get: want ErrAccessDenied, got %v", err)
	}
	if _, err := f.Set(1); !errors.Is(err, apis.ErrAccessDenied) {
		t.Fatalf("Set: want ErrAccessDenied, got %v", err)
	}

	// Exported fields stay reachable.
	d := &derived{base: &base{}}
	ready := fieldOf(t, reflect.TypeOf(derived{}), "Ready", []int{1}, cfg).
		Bind(reflect.ValueOf(d).Elem())
	if _, err := ready.Set(true); err != nil || !d.Ready {
		t.Fatalf("Set(Ready): got err=%v ready=%v, want nil,true", err, d.Ready)
	}

	// Exported field reached through an unexported embed is read-only to reflection.
	name := fieldOf(t, reflect.TypeOf(base{}), "Name", []int{0, 1}, cfg).
		Bind(reflect.ValueOf(d).Elem())
	if _, err := name.Get(); !errors.Is(err, apis.ErrAccessDenied) {
		t.Fatalf("Get(Name via unexported embed): want ErrAccessDenied, got %v", err)
	}
}

func TestField_NilEmbeddedPointer_NullTarget(t *testing.T) {
	d := &derived{}
	f := fieldOf(t, reflect.TypeOf(base{}), "id", []int{0, 0}, config.DefaultConfig()).
		Bind(reflect.ValueOf(d).Elem())

	if _, err := f.Get(); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Get through nil embed: want ErrNullTarget, got %v", err)
	}

	d.base = &base{id: 9}
	if got, err := f.Get(); err != nil || got != 9 {
		t.Fatalf("Get through embed: got (%v,%v), want (9,nil)", got, err)
	}
	if f.Owner() != reflect.TypeOf(base{}) {
		t.Fatalf("Owner = %v, want base", f.Owner())
	}
}

func TestGetterType_IsSetter(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	cases := []struct {
		name string
		ok   bool
	}{
		{"Level", true},
		{"Checked", true},
		{"Wrong", false},
		{"SetLevel", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := accessor.GetterType(method(t, gt, tc.name).Type)
			if ok != tc.ok {
				t.Fatalf("GetterType(%s) ok = %v, want %v", tc.name, ok, tc.ok)
			}
		})
	}

	intT := reflect.TypeOf(0)
	if !accessor.IsSetter(method(t, gt, "SetLevel").Type, intT) {
		t.Fatal("IsSetter(SetLevel, int) = false, want true")
	}
	if !accessor.IsSetter(method(t, gt, "SetChecked").Type, intT) {
		t.Fatal("IsSetter(SetChecked, int) = false, want true")
	}
	if !accessor.IsSetter(method(t, gt, "SetUnit").Type, reflect.TypeOf("")) {
		t.Fatal("IsSetter(SetUnit, string) = false, want true")
	}
	if accessor.IsSetter(method(t, gt, "SetBad").Type, intT) {
		t.Fatal("IsSetter(SetBad, int) = true, want false")
	}
}

func TestNewProperty_RejectsShapes(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	cfg := config.DefaultConfig()
	if _, ok := accessor.NewProperty("wrong", gt, method(t, gt, "Wrong"), method(t, gt, "SetWrong"), cfg); ok {
		t.Fatal("NewProperty(Wrong, SetWrong): want rejection")
	}
	if _, ok := accessor.NewProperty("bad", gt, method(t, gt, "Level"), method(t, gt, "SetBad"), cfg); ok {
		t.Fatal("NewProperty(Level, SetBad): want rejection")
	}
}

func TestProperty_GetSet(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	p, ok := accessor.NewProperty("level", gt, method(t, gt, "Level"), method(t, gt, "SetLevel"), config.DefaultConfig())
	if !ok {
		t.Fatal("NewProperty(Level, SetLevel): rejected")
	}
	if p.Kind() != apis.PropertyKind || p.Type() != reflect.TypeOf(0) || p.Getter() != "Level" || p.Setter() != "SetLevel" {
		t.Fatalf("descriptor: got (%v,%v,%s,%s)", p.Kind(), p.Type(), p.Getter(), p.Setter())
	}

	g := &gauge{level: 4}
	b := p.Bind(reflect.ValueOf(g).Elem())
	if got, err := b.Get(); err != nil || got != 4 {
		t.Fatalf("Get: got (%v,%v), want (4,nil)", got, err)
	}
	prev, err := b.Set(5)
	if err != nil || prev != 4 || g.level != 5 {
		t.Fatalf("Set: got (%v,%v) level=%d, want (4,nil) level=5", prev, err, g.level)
	}
	if _, err := b.Set("x"); !errors.Is(err, apis.ErrInvalidArgument) {
		t.Fatalf("Set(string): want ErrInvalidArgument, got %v", err)
	}
}

func TestProperty_Unbound_NullTarget(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	p, _ := accessor.NewProperty("level", gt, method(t, gt, "Level"), method(t, gt, "SetLevel"), config.DefaultConfig())
	if _, err := p.Get(); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Get unbound: want ErrNullTarget, got %v", err)
	}
	if _, err := p.Set(1); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Set unbound: want ErrNullTarget, got %v", err)
	}
}

func TestProperty_InvocationFailure_Unwrapped(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	p, ok := accessor.NewProperty("checked", gt, method(t, gt, "Checked"), method(t, gt, "SetChecked"), config.DefaultConfig())
	if !ok {
		t.Fatal("NewProperty(Checked, SetChecked): rejected")
	}

	g := &gauge{failOn: true}
	b := p.Bind(reflect.ValueOf(g).Elem())
	if _, err := b.Get(); err != errGauge {
		t.Fatalf("Get: got %v, want the getter's own error", err)
	}
	if _, err := b.Set(1); err != errGauge {
		t.Fatalf("Set with failing getter: got %v, want the getter's own error", err)
	}

	g.failOn = false
	if _, err := b.Set(-1); err != errGauge {
		t.Fatalf("Set with failing setter: got %v, want the setter's own error", err)
	}
}

func TestProperty_GetterPanic_Propagates(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	p, ok := accessor.NewProperty("explode", gt, method(t, gt, "Explode"), method(t, gt, "SetExplode"), config.DefaultConfig())
	if !ok {
		t.Fatal("NewProperty(Explode, SetExplode): rejected")
	}
	b := p.Bind(reflect.ValueOf(&gauge{}).Elem())

	defer func() {
		if r := recover(); r != errGauge {
			t.Fatalf("recovered %v, want the getter's own panic value", r)
		}
	}()
	_, _ = b.Get()
	t.Fatal("Get did not panic")
}

func TestProperty_AccessDenied(t *testing.T) {
	// A *gauge reached through an unexported field is read-only to reflection.
	type holder struct{ g gauge }
	h := &holder{g: gauge{level: 2}}
	target := reflect.ValueOf(h).Elem().Field(0)

	gt := reflect.TypeOf(gauge{})
	deny := config.NewConfig(config.WithAllowUnexported(false))
	p, _ := accessor.NewProperty("level", gt, method(t, gt, "Level"), method(t, gt, "SetLevel"), deny)
	if _, err := p.Bind(target).Get(); !errors.Is(err, apis.ErrAccessDenied) {
		t.Fatalf("Get: want ErrAccessDenied, got %v", err)
	}

	allow := config.DefaultConfig()
	p, _ = accessor.NewProperty("level", gt, method(t, gt, "Level"), method(t, gt, "SetLevel"), allow)
	prev, err := p.Bind(target).Set(8)
	if err != nil || prev != 2 || h.g.level != 8 {
		t.Fatalf("Set with bypass: got (%v,%v) level=%d, want (2,nil) level=8", prev, err, h.g.level)
	}
}

func TestProperty_SetterResults(t *testing.T) {
	gt := reflect.TypeOf(gauge{})
	p, ok := accessor.NewProperty("unit", gt, method(t, gt, "Unit"), method(t, gt, "SetUnit"), config.DefaultConfig())
	if !ok {
		t.Fatal("NewProperty(Unit, SetUnit): rejected")
	}
	g := &gauge{unit: "bar"}
	b := p.Bind(reflect.ValueOf(g).Elem())
	prev, err := b.Set("psi")
	if err != nil || prev != "bar" || g.unit != "psi" {
		t.Fatalf("Set: got (%v,%v) unit=%q, want (bar,nil) unit=psi", prev, err, g.unit)
	}
	if _, err := b.Set(""); err != errGauge {
		t.Fatalf("Set(\"\"): got %v, want the setter's own error", err)
	}
}

func TestProperty_NilEmbeddedPointer_NullTarget(t *testing.T) {
	dt := reflect.TypeOf(dial{})
	p, ok := accessor.NewProperty("level", dt, method(t, dt, "Level"), method(t, dt, "SetLevel"), config.DefaultConfig())
	if !ok {
		t.Fatal("NewProperty(dial.Level, dial.SetLevel): rejected")
	}

	d := &dial{}
	b := p.Bind(reflect.ValueOf(d).Elem())
	if _, err := b.Get(); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Get: want ErrNullTarget, got %v", err)
	}
	if _, err := b.Set(1); !errors.Is(err, apis.ErrNullTarget) {
		t.Fatalf("Set: want ErrNullTarget, got %v", err)
	}

	d.gauge = &gauge{level: 6}
	if got, err := b.Get(); err != nil || got != 6 {
		t.Fatalf("Get after embed: got (%v,%v), want (6,nil)", got, err)
	}
}
