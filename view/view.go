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

package view

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dirpx.dev/objmap/apis"
	uref "dirpx.dev/objmap/utils/reflect"
)

// View is a map-like facade binding an Index to zero or one instance.
//
// The set of keys never changes after New. Get and Put go straight to the
// accessor; the View adds no locking, so concurrent Puts race exactly as the
// underlying field or setter would.
type View struct {
	typ     reflect.Type
	bound   bool
	attrs   map[string]apis.Accessor
	entries []apis.Entry
}

// Ensure *View can be rendered as YAML.
var _ yaml.Marshaler = (*View)(nil)

// New binds idx to instance. A nil instance yields a class-only View whose
// accessors are unbound: ContainsKey and Entries work, Get and Put on a
// present key fail with apis.ErrNullTarget.
//
// Only an untyped nil means class-only: a typed nil pointer such as (*T)(nil)
// fails with apis.ErrNullTarget.
//
// A non-nil instance must be a pointer to a struct that is, or embeds,
// idx.Type(). When it embeds it, the View reads and writes the embedded value.
func New(idx apis.Index, instance any) (*View, error) {
	target, err := bind(idx, instance)
	if err != nil {
		return nil, err
	}

	v := &View{
		typ:     idx.Type(),
		bound:   target.IsValid(),
		attrs:   make(map[string]apis.Accessor, idx.Count()),
		entries: make([]apis.Entry, 0, idx.Count()),
	}
	for _, e := range idx.Entries() {
		a := e.Accessor
		if v.bound {
			a = a.Bind(target)
		}
		v.attrs[e.Key] = a
	}
	for k, a := range v.attrs {
		v.entries = append(v.entries, apis.Entry{Key: k, Accessor: a})
	}
	return v, nil
}

// bind resolves the addressable value of idx.Type() inside instance.
func bind(idx apis.Index, instance any) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, nil
	}
	root, err := uref.Target(instance)
	if err != nil {
		return reflect.Value{}, errors.WithMessagef(err, "bind %T", instance)
	}
	path, ok := uref.EmbedPath(root.Type(), idx.Type(), idx.Config().MaxDepth)
	if !ok {
		return reflect.Value{}, errors.Wrapf(apis.ErrInvalidArgument, "%s does not embed %s", root.Type(), idx.Type())
	}
	target, err := root.FieldByIndexErr(path)
	if err != nil {
		return reflect.Value{}, errors.Wrapf(apis.ErrNullTarget, "bind %s: %v", idx.Type(), err)
	}
	return target, nil
}

// Type returns the struct type the View was built from.
func (v *View) Type() reflect.Type { return v.typ }

// Bound reports whether the View has a target instance.
func (v *View) Bound() bool { return v.bound }

// Len returns the number of attributes.
func (v *View) Len() int { return len(v.entries) }

// ContainsKey reports whether key is an attribute, bound or not.
func (v *View) ContainsKey(key string) bool {
	_, ok := v.attrs[key]
	return ok
}

// Get returns the current value of key. ok is false when key is not an attribute.
func (v *View) Get(key string) (value any, ok bool, err error) {
	a, ok := v.attrs[key]
	if !ok {
		return nil, false, nil
	}
	value, err = a.Get()
	return value, true, err
}

// Put stores value under key and returns the value it replaced.
// An unknown key is ignored: ok is false and err is nil.
func (v *View) Put(key string, value any) (previous any, ok bool, err error) {
	a, ok := v.attrs[key]
	if !ok {
		return nil, false, nil
	}
	previous, err = a.Set(value)
	return previous, true, err
}

// Remove always fails with apis.ErrUnsupportedOperation; attributes are fixed.
func (v *View) Remove(key string) (any, error) {
	return nil, errors.Wrapf(apis.ErrUnsupportedOperation, "remove %q", key)
}

// Entries returns the (key, accessor) pairs. The order is unspecified but
// identical on every call for the lifetime of the View.
func (v *View) Entries() []apis.Entry {
	out := make([]apis.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Keys returns the attribute keys in Entries order.
func (v *View) Keys() []string {
	keys := make([]string, len(v.entries))
	for i, e := range v.entries {
		keys[i] = e.Key
	}
	return keys
}

// All iterates over the (key, accessor) pairs in Entries order.
func (v *View) All() iter.Seq2[string, apis.Accessor] {
	return func(yield func(string, apis.Accessor) bool) {
		for _, e := range v.entries {
			if !yield(e.Key, e.Accessor) {
				return
			}
		}
	}
}

// Bindings returns the current value of every attribute, leaving out nil
// values, in the shape a naming context binds. It stops at the first
// accessor failure.
func (v *View) Bindings() (map[string]any, error) {
	out := make(map[string]any, len(v.entries))
	for _, e := range v.entries {
		val, err := e.Accessor.Get()
		if err != nil {
			return nil, err
		}
		if isNil(val) {
			continue
		}
		out[e.Key] = val
	}
	return out, nil
}

// MarshalYAML renders Bindings.
func (v *View) MarshalYAML() (any, error) {
	return v.Bindings()
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
