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

package phase

import (
	"reflect"
	"slices"

	"dirpx.dev/objmap/accessor"
	"dirpx.dev/objmap/apis"
	uref "dirpx.dev/objmap/utils/reflect"
)

// NewFieldPhase creates an apis.Phase that discovers declared struct fields.
func NewFieldPhase() apis.Phase {
	return fieldPhase{}
}

// fieldPhase emits one Field accessor per declared field of every struct in
// the embedding hierarchy, most-derived struct first.
//
// Because a Scanner lets later emissions win, a field name declared both by
// a struct and by one of its embedded ancestors ends up bound to the
// ancestor's field. This ordering is relied upon and must not be reversed.
type fieldPhase struct{}

// Ensure fieldPhase implements apis.Phase.
var _ apis.Phase = fieldPhase{}

// Discover walks t's hierarchy and emits its fields.
func (fieldPhase) Discover(t reflect.Type, cfg apis.Config, emit func(apis.Accessor)) error {
	levels, err := uref.Hierarchy(t, cfg.MaxDepth)
	if err != nil {
		return err
	}
	for _, l := range levels {
		for i := 0; i < l.Type.NumField(); i++ {
			sf := l.Type.Field(i)
			if _, ok := uref.Ancestor(sf); ok || sf.Name == "_" {
				continue
			}
			emit(accessor.NewField(l.Type, sf, append(slices.Clip(l.Index), i), cfg))
		}
	}
	return nil
}
