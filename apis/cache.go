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

import "reflect"

// Cache memoizes Indexes per struct type for one Config.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Index returns the Index for t, scanning it on first use.
	// Concurrent first lookups of the same type share one scan.
	Index(t reflect.Type) (Index, error)
	// Lookup returns a cached Index without scanning.
	Lookup(t reflect.Type) (idx Index, ok bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []CacheEntry
	// Count returns the number of cached Indexes.
	Count() int
	// Reset drops all cached Indexes.
	Reset()
}

// CacheEntry is a single (type, index) association in a Cache snapshot.
type CacheEntry struct {
	// Type is the normalized struct type.
	Type reflect.Type
	// Index is the Index built for Type.
	Index Index
}
