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

package scanner

import (
	"reflect"

	"dirpx.dev/objmap/apis"
)

// index is the frozen result of a Scan. Nothing mutates it after newIndex.
type index struct {
	typ     reflect.Type
	cfg     apis.Config
	attrs   map[string]apis.Accessor
	entries []apis.Entry
}

// Ensure index implements apis.Index.
var _ apis.Index = (*index)(nil)

func newIndex(t reflect.Type, cfg apis.Config, attrs map[string]apis.Accessor) *index {
	entries := make([]apis.Entry, 0, len(attrs))
	for k, a := range attrs {
		entries = append(entries, apis.Entry{Key: k, Accessor: a})
	}
	return &index{typ: t, cfg: cfg, attrs: attrs, entries: entries}
}

// Type returns the scanned struct type.
func (x *index) Type() reflect.Type { return x.typ }

// Config returns the configuration used for the scan.
func (x *index) Config() apis.Config { return x.cfg }

// Lookup returns the accessor registered under key.
func (x *index) Lookup(key string) (apis.Accessor, bool) {
	a, ok := x.attrs[key]
	return a, ok
}

// Keys returns the attribute keys in Entries order.
func (x *index) Keys() []string {
	keys := make([]string, len(x.entries))
	for i, e := range x.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the (key, accessor) pairs.
func (x *index) Entries() []apis.Entry {
	out := make([]apis.Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// Count returns the number of attributes.
func (x *index) Count() int { return len(x.entries) }
