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

import "errors"

var (
	// ErrAccessDenied is returned when reflection refuses to read or write an
	// attribute and bypassing visibility is disabled.
	ErrAccessDenied = errors.New("objmap: access denied")
	// ErrNullTarget is returned when an accessor or view has no target instance.
	ErrNullTarget = errors.New("objmap: no target instance")
	// ErrInvalidArgument is returned when a value cannot be stored in an
	// attribute, or an instance does not match the requested type.
	ErrInvalidArgument = errors.New("objmap: invalid argument")
	// ErrUnsupportedOperation is returned by operations a view never supports.
	ErrUnsupportedOperation = errors.New("objmap: unsupported operation")
)
