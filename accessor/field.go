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
	"slices"

	"github.com/pkg/errors"

	"dirpx.dev/objmap/apis"
)

// Field reads and writes one declared struct field of a bound target.
type Field struct {
	// field is the declaration as reported by the owner type.
	field reflect.StructField
	// owner is the struct type declaring the field.
	owner reflect.Type
	// index is the path from the scanned struct to the field.
	index []int
	// bypass allows access to fields that are read-only to reflection.
	bypass bool
	// target is the addressable scanned struct; invalid when unbound.
	target reflect.Value
}

// Ensure Field implements apis.Accessor.
var _ apis.Accessor = (*Field)(nil)

// NewField creates an unbound accessor for the field sf declared by owner.
// index is the full path from the scanned struct to the field.
func NewField(owner reflect.Type, sf reflect.StructField, index []int, cfg apis.Config) *Field {
	return &Field{
		field:  sf,
		owner:  owner,
		index:  slices.Clone(index),
		bypass: cfg.AllowUnexported,
	}
}

// Key returns the field name.
func (f *Field) Key() string { return f.field.Name }

// Kind returns apis.FieldKind.
func (f *Field) Kind() apis.Kind { return apis.FieldKind }

// Type returns the declared field type.
func (f *Field) Type() reflect.Type { return f.field.Type }

// Owner returns the struct type declaring the field.
func (f *Field) Owner() reflect.Type { return f.owner }

// Index returns the path from the scanned struct to the field.
func (f *Field) Index() []int { return slices.Clone(f.index) }

// Bound reports whether a target is attached.
func (f *Field) Bound() bool { return f.target.IsValid() }

// Bind returns a copy of f attached to target.
func (f *Field) Bind(target reflect.Value) apis.Accessor {
	c := *f
	c.target = target
	return &c
}

// Get reads the field from the bound target.
func (f *Field) Get() (any, error) {
	v, err := f.resolve()
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Set writes value into the field and returns the value it replaced.
func (f *Field) Set(value any) (any, error) {
	v, err := f.resolve()
	if err != nil {
		return nil, err
	}
	prev := v.Interface()
	nv, err := assignable(value, f.field.Type)
	if err != nil {
		return nil, errors.WithMessagef(err, "field %s.%s", f.owner, f.field.Name)
	}
	v.Set(nv)
	return prev, nil
}

// resolve locates the field on the bound target.
func (f *Field) resolve() (reflect.Value, error) {
	if !f.target.IsValid() {
		return reflect.Value{}, errors.Wrapf(apis.ErrNullTarget, "field %s.%s", f.owner, f.field.Name)
	}
	v, err := f.target.FieldByIndexErr(f.index)
	if err != nil {
		// Nil pointer to an embedded struct along the path.
		return reflect.Value{}, errors.Wrapf(apis.ErrNullTarget, "field %s.%s: %v", f.owner, f.field.Name, err)
	}
	return exposed(v, f.bypass, "field "+f.owner.String()+"."+f.field.Name)
}
