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

package accessor

import (
	"reflect"
	"runtime"

	"github.com/pkg/errors"

	"dirpx.dev/objmap/apis"
	uref "dirpx.dev/objmap/utils/reflect"
)

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeFor[error]()

// maxPromoteDepth bounds the embedding walk of nilPromoter.
const maxPromoteDepth = 64

// Property reads and writes an attribute through a getter/setter method pair
// of the bound target's pointer type.
//
// Failures raised by the pair itself are handed to the caller untouched: an
// error result is returned as-is and a panic is not recovered. A method
// promoted through a nil embedded pointer fails with apis.ErrNullTarget.
type Property struct {
	key    string
	owner  reflect.Type
	getter reflect.Method
	setter reflect.Method
	typ    reflect.Type
	bypass bool
	target reflect.Value
}

// Ensure Property implements apis.Accessor.
var _ apis.Accessor = (*Property)(nil)

// NewProperty creates an unbound accessor over getter and setter, both taken
// from the method set of reflect.PointerTo(owner). It returns false if the
// pair does not have the shapes
//
//	func() V            or  func() (V, error)
//	func(V) ...
//
// The setter may return anything; a trailing error result reports failure and
// other results are discarded.
func NewProperty(key string, owner reflect.Type, getter, setter reflect.Method, cfg apis.Config) (*Property, bool) {
	typ, ok := GetterType(getter.Type)
	if !ok || !IsSetter(setter.Type, typ) {
		return nil, false
	}
	return &Property{
		key:    key,
		owner:  owner,
		getter: getter,
		setter: setter,
		typ:    typ,
		bypass: cfg.AllowUnexported,
	}, true
}

// GetterType returns the value type of a getter method type, including its receiver.
func GetterType(mt reflect.Type) (reflect.Type, bool) {
	if mt.NumIn() != 1 {
		return nil, false
	}
	switch mt.NumOut() {
	case 1:
		return mt.Out(0), true
	case 2:
		if mt.Out(1) == errorType {
			return mt.Out(0), true
		}
	}
	return nil, false
}

// IsSetter reports whether mt, a method type including its receiver, takes
// exactly one argument of type typ. Results are not constrained.
func IsSetter(mt reflect.Type, typ reflect.Type) bool {
	return mt.NumIn() == 2 && mt.In(1) == typ
}

// Key returns the attribute key derived from the getter name.
func (p *Property) Key() string { return p.key }

// Kind returns apis.PropertyKind.
func (p *Property) Kind() apis.Kind { return apis.PropertyKind }

// Type returns the getter's value type.
func (p *Property) Type() reflect.Type { return p.typ }

// Owner returns the scanned struct type.
func (p *Property) Owner() reflect.Type { return p.owner }

// Getter returns the getter method name.
func (p *Property) Getter() string { return p.getter.Name }

// Setter returns the setter method name.
func (p *Property) Setter() string { return p.setter.Name }

// Bound reports whether a target is attached.
func (p *Property) Bound() bool { return p.target.IsValid() }

// Bind returns a copy of p attached to target.
func (p *Property) Bind(target reflect.Value) apis.Accessor {
	c := *p
	c.target = target
	return &c
}

// Get calls the getter on the bound target.
func (p *Property) Get() (any, error) {
	recv, err := p.receiver()
	if err != nil {
		return nil, err
	}
	out, err := p.call(recv, p.getter, nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

// Set calls the getter to capture the current value, then the setter with
// value. It returns the captured value.
func (p *Property) Set(value any) (any, error) {
	prev, err := p.Get()
	if err != nil {
		return nil, err
	}
	recv, err := p.receiver()
	if err != nil {
		return nil, err
	}
	arg, err := assignable(value, p.typ)
	if err != nil {
		return nil, errors.WithMessagef(err, "property %s.%s", p.owner, p.key)
	}
	out, err := p.call(recv, p.setter, []reflect.Value{arg})
	if err != nil {
		return nil, err
	}
	if n := len(out); n > 0 && p.setter.Type.Out(n-1) == errorType && !out[n-1].IsNil() {
		return nil, out[n-1].Interface().(error)
	}
	return prev, nil
}

// receiver returns a pointer to the bound target usable for method calls.
func (p *Property) receiver() (reflect.Value, error) {
	if !p.target.IsValid() {
		return reflect.Value{}, errors.Wrapf(apis.ErrNullTarget, "property %s.%s", p.owner, p.key)
	}
	t, err := exposed(p.target, p.bypass, "property "+p.owner.String()+"."+p.key)
	if err != nil {
		return reflect.Value{}, err
	}
	return t.Addr(), nil
}

// call invokes m on recv. When m is promoted through a nil embedded pointer
// the runtime fault raised before m runs is reported as apis.ErrNullTarget;
// every other panic propagates.
func (p *Property) call(recv reflect.Value, m reflect.Method, args []reflect.Value) (out []reflect.Value, err error) {
	if nilPromoter(p.target, m.Name, 0) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			out, err = nil, errors.Wrapf(apis.ErrNullTarget, "property %s.%s: %s through nil embedded pointer", p.owner, p.key, m.Name)
		}()
	}
	return recv.Method(m.Index).Call(args), nil
}

// nilPromoter reports whether v reaches a method named name through a nil
// embedded pointer.
func nilPromoter(v reflect.Value, name string, depth int) bool {
	if depth > maxPromoteDepth {
		return false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		at, ok := uref.Ancestor(sf)
		if !ok {
			continue
		}
		if _, ok := reflect.PointerTo(at).MethodByName(name); !ok {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				return true
			}
			fv = fv.Elem()
		}
		if nilPromoter(fv, name, depth+1) {
			return true
		}
	}
	return false
}
