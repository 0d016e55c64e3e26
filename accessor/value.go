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
	"unsafe"

	"github.com/pkg/errors"

	"dirpx.dev/objmap/apis"
)

// assignable converts value into a reflect.Value that can be stored in a
// slot of type t. Nil becomes the zero value of nillable kinds.
func assignable(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
			reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, errors.Wrapf(apis.ErrInvalidArgument, "nil is not assignable to %s", t)
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, errors.Wrapf(apis.ErrInvalidArgument, "%s is not assignable to %s", rv.Type(), t)
	}
	return rv, nil
}

// exposed returns v unchanged when reflection lets callers read and write it.
// Read-only values (unexported fields and whatever is reached through them)
// are re-addressed via unsafe when bypass is set, and denied otherwise.
func exposed(v reflect.Value, bypass bool, what string) (reflect.Value, error) {
	if v.CanInterface() && v.CanSet() {
		return v, nil
	}
	if !bypass || !v.CanAddr() {
		return reflect.Value{}, errors.Wrapf(apis.ErrAccessDenied, "%s", what)
	}
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), nil
}
