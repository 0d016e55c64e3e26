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

// Phase is a pluggable discovery step. A Scanner runs its phases in order
// (e.g., Field -> Property); accessors emitted later replace earlier ones
// registered under the same key.
type Phase interface {
	// Discover emits the accessors found on the struct type t, in insertion order.
	Discover(t reflect.Type, cfg Config, emit func(Accessor)) error
}
