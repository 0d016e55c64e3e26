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
	"slices"

	"dirpx.dev/objmap/config"
)

// ErrReflectTooDeep is returned when an embedding chain exceeds the depth limit.
var ErrReflectTooDeep = errors.New("reflect: embedding chain exceeds depth limit")

// Level is one struct type of an embedding hierarchy.
type Level struct {
	// Type is the struct type at this level.
	Type reflect.Type
	// Index is the field index path from the root struct to this level.
	// It is empty for the root.
	Index []int
	// Depth is the number of embedding links between the root and this level.
	Depth int
}

// Ancestor reports whether sf links to an embedded struct, and returns that
// struct type. Embedded pointers to structs count as links.
func Ancestor(sf reflect.StructField) (reflect.Type, bool) {
	if !sf.Anonymous {
		return nil, false
	}
	t := sf.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	return t, true
}

// Hierarchy walks the embedding chain of the struct type t breadth-first.
// The root comes first; each level lists its embedded structs in declaration
// order. A struct type reachable through several paths is visited once,
// through the first path found.
//
// If maxDepth <= 0, DefaultMaxDepth is used.
func Hierarchy(t reflect.Type, maxDepth int) ([]Level, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrReflectNotStruct
	}
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}

	seen := map[reflect.Type]bool{t: true}
	levels := []Level{{Type: t}}
	for i := 0; i < len(levels); i++ {
		cur := levels[i]
		for j := 0; j < cur.Type.NumField(); j++ {
			at, ok := Ancestor(cur.Type.Field(j))
			if !ok || seen[at] {
				continue
			}
			if cur.Depth == maxDepth {
				return nil, ErrReflectTooDeep
			}
			seen[at] = true
			levels = append(levels, Level{
				Type:  at,
				Index: append(slices.Clip(cur.Index), j),
				Depth: cur.Depth + 1,
			})
		}
	}
	return levels, nil
}

// EmbedPath returns the field index path from the struct type from to the
// struct type to within from's embedding hierarchy.
func EmbedPath(from, to reflect.Type, maxDepth int) ([]int, bool) {
	levels, err := Hierarchy(from, maxDepth)
	if err != nil {
		return nil, false
	}
	for _, l := range levels {
		if l.Type == to {
			return l.Index, true
		}
	}
	return nil, false
}
