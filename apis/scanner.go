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
	"reflect"
)

// Scanner builds the attribute Index of a struct type.
// Typical chain: FieldPhase -> PropertyPhase.
type Scanner interface {
	// Scan normalizes t to a struct type and runs every phase over it.
	// The returned Index is immutable and unbound.
	Scan(t reflect.Type, cfg Config) (Index, error)
}

// Index is the immutable key -> accessor table produced by one Scan.
// Accessors held by an Index are unbound; bind them to read or write.
type Index interface {
	// Type returns the struct type the Index was built from.
	Type() reflect.Type
	// Config returns the configuration the Index was built with.
	Config() Config
	// Lookup returns the accessor registered under key.
	Lookup(key string) (Accessor, bool)
	// Keys returns the attribute keys (order is unspecified).
	Keys() []string
	// Entries returns the (key, accessor) pairs (order is unspecified).
	Entries() []Entry
	// Count returns the number of attributes.
	Count() int
}

// Entry is a single (key, accessor) pair of an Index or View.
type Entry struct {
	// Key is the attribute name.
	Key string
	// Accessor reads and writes the attribute.
	Accessor Accessor
}
