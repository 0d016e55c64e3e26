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

// Builder composes a Scanner and a Cache from a Config.
// Implementations may reuse previous instances (prev*), or ignore them.
type Builder interface {
	// BuildScanner constructs a Scanner for Config.
	BuildScanner(cfg Config, prev Scanner) Scanner
	// BuildCache constructs a Cache for Config on top of Scanner.
	// Indexes depend on Config, so implementations must not migrate entries
	// from a previous cache built for a different Config.
	BuildCache(cfg Config, scn Scanner, prev Cache) Cache
}
