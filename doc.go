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

// Package objmap exposes the state of arbitrary Go structs as uniform
// attribute views.
//
// A View maps attribute names to accessors over one struct instance, so
// callers can read and write "fields" of an opaque value without knowing its
// concrete type. Writes go straight to the real storage on the instance:
//
//	v, err := objmap.New(&conn)
//	prev, ok, err := v.Put("timeout", 5*time.Second)
//	val, ok, err := v.Get("timeout")
//
// # Attributes
//
// Two storage mechanisms are reconciled under one naming scheme:
//
//   - Fields: every field declared by the struct and by the structs it
//     embeds, exported or not. Embedded structs are walked breadth-first,
//     most-derived first; when an embedded struct declares a field with a
//     name already seen, the embedded struct's field replaces it. This
//     ordering is kept for compatibility and pinned by tests.
//
//   - Properties: getter/setter method pairs of *T. A parameterless method
//     pairs with the method named by replacing the first "get" in its
//     lowerCamel spelling with "set"; methods whose spelling starts with
//     "get" never pair. Conventional Go pairs (Level/SetLevel) are therefore
//     not detected, while TargetSpeed/TarsetSpeed yields key "getSpeed".
//     See phase.SetterFor. Properties replace fields of the same key.
//
// The key -> accessor table (an apis.Index) is computed once per struct type
// and never changes; only the values behind it do.
//
// # Construction
//
//	objmap.New(instance)         // bound; type taken from instance
//	objmap.NewType(t)            // unbound; shape only
//	objmap.NewBound(t, instance) // bound to instance or to the t it embeds
//
// Get and Put on an unbound View fail with apis.ErrNullTarget. Put on an
// unknown key is a no-op. Remove always fails with
// apis.ErrUnsupportedOperation.
//
// # Errors
//
// Failures wrap the sentinels in package apis (ErrAccessDenied,
// ErrNullTarget, ErrInvalidArgument, ErrUnsupportedOperation) and match them
// with errors.Is. An error returned by a property's own getter or setter is
// passed through unwrapped, and a panic inside them is not recovered.
//
// # Global state
//
// Like other DIRPX packages, objmap keeps a read-mostly snapshot holding the
// Config, the Scanner, the per-type Index Cache and the Builder that makes
// them. Readers load the snapshot atomically; writers (SetConfig,
// SetScanner, SetCache, SetBuilder, SetAll) take a build mutex, derive a new
// snapshot and swap it in. SetScanner and SetCache pin their layer so later
// reconfigurations leave it alone until Unpin*.
//
// # Concurrency model
//
// Indexes, Views' key tables and the snapshot are safe for concurrent reads.
// Get and Put add no locking: concurrent writes to one attribute race as the
// underlying field or setter would. Callers needing atomic read-modify-write
// must synchronize around the View or the instance.
package objmap
