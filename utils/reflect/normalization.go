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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNotStruct indicates that the provided type (after unwrapping
	// pointers) is not a struct type.
	ErrReflectNotStruct = errors.New("reflect: type is not a struct")
	// ErrReflectNotPointer indicates that an instance is not a pointer to a struct,
	// so its fields cannot be written through.
	ErrReflectNotPointer = errors.New("reflect: instance is not a pointer to a struct")
)

// Normalize unwraps pointers according to cfg.MaxUnwrap and returns the
// struct type underneath, or an error if none is found.
//
// Unwrapping policy:
//   - ptr    -> Elem()
//   - struct -> return t
//   - default: ErrReflectNotStruct.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i < maxUnwrap && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrReflectNotStruct
	}
	return t, nil
}

// Target returns the addressable struct value behind instance, which must
// be a non-nil pointer to a struct.
func Target(instance any) (reflect.Value, error) {
	rv := reflect.ValueOf(instance)
	if !rv.IsValid() {
		return reflect.Value{}, apis.ErrNullTarget
	}
	if rv.Kind() != reflect.Pointer || rv.Type().Elem().Kind() != reflect.Struct {
		return reflect.Value{}, ErrReflectNotPointer
	}
	if rv.IsNil() {
		return reflect.Value{}, apis.ErrNullTarget
	}
	return rv.Elem(), nil
}
