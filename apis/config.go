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

import "log/slog"

// Config carries read-only scanning knobs that influence phases and accessors.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// AllowUnexported controls whether accessors bypass Go visibility rules.
	// If true, unexported fields (and values reached through unexported
	// embedded fields) are read and written via unsafe addressing.
	// If false, such accessors fail with ErrAccessDenied.
	AllowUnexported bool

	// MaxUnwrap limits how many pointer levels are unwrapped when a type is
	// normalized to its struct type.
	MaxUnwrap int

	// MaxDepth limits how many embedding levels the field phase descends.
	// Acts as a safety guard against pathological nesting.
	MaxDepth int

	// Logger receives debug events emitted while scanning. Nil discards them.
	Logger *slog.Logger
}
