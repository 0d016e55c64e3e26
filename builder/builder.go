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

package builder

import (
	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/cache"
	"dirpx.dev/objmap/phase"
	"dirpx.dev/objmap/scanner"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildScanner returns the default scanner: fields first, then properties.
// Scanners are stateless, so prev is not consulted.
func (b *builder) BuildScanner(_ apis.Config, _ apis.Scanner) apis.Scanner {
	return scanner.New(
		phase.NewFieldPhase(),
		phase.NewPropertyPhase(),
	)
}

// BuildCache returns an empty cache over scn. Entries of prev were scanned
// under a possibly different configuration and are not carried over.
func (b *builder) BuildCache(cfg apis.Config, scn apis.Scanner, _ apis.Cache) apis.Cache {
	return cache.New(cfg, scn)
}
