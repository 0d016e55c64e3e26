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

package apis

import (
	"fmt"
	"reflect"
)

// Kind tells which storage mechanism backs an Accessor.
type Kind uint8

const (
	// FieldKind accessors read and write a struct field directly.
	FieldKind Kind = iota + 1
	// PropertyKind accessors call a getter/setter method pair.
	PropertyKind
)

// String returns a short, stable name of the kind.
func (k Kind) String() string {
	switch k {
	case FieldKind:
		return "field"
	case PropertyKind:
		return "property"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Accessor is the read/write capability over one attribute's storage.
type Accessor interface {
	// Key returns the attribute name.
	Key() string
	// Kind reports the storage mechanism.
	Kind() Kind
	// Type returns the attribute's value type.
	Type() reflect.Type
	// Owner returns the declaring struct type for fields and the scanned
	// struct type for properties.
	Owner() reflect.Type
	// Bound reports whether a target is attached.
	Bound() bool
	// Bind returns a copy of the accessor attached to target, an addressable
	// value of the scanned struct type. The receiver is left unchanged.
	Bind(target reflect.Value) Accessor
	// Get returns the current value.
	Get() (any, error)
	// Set stores value and returns the value it replaced.
	Set(value any) (any, error)
}
