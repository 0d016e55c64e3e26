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
	"log/slog"
	"reflect"

	"github.com/pkg/errors"

	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/config"
	uref "dirpx.dev/objmap/utils/reflect"
)

// New constructs an apis.Scanner that runs the given phases in order.
// Nil phases are ignored. The returned scanner is safe for concurrent use
// provided phases themselves are safe for concurrent Discover calls.
func New(phases ...apis.Phase) apis.Scanner {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Phase, 0, len(phases))
	for _, p := range phases {
		if p != nil {
			out = append(out, p)
		}
	}
	return chain{phases: out}
}

// chain is an immutable, order-preserving scanner over a set of phases.
type chain struct {
	phases []apis.Phase
}

// Scan normalizes t and collects the accessors emitted by every phase.
// An accessor replaces any accessor emitted earlier under the same key.
func (s chain) Scan(t reflect.Type, cfg apis.Config) (apis.Index, error) {
	st, err := uref.Normalize(t, cfg)
	if err != nil {
		return nil, err
	}

	log := config.Logger(cfg)
	attrs := make(map[string]apis.Accessor)
	emit := func(a apis.Accessor) {
		if old, ok := attrs[a.Key()]; ok {
			log.Debug("attribute replaced",
				slog.String("type", st.String()),
				slog.String("key", a.Key()),
				slog.String("old_owner", old.Owner().String()),
				slog.String("old_kind", old.Kind().String()),
				slog.String("new_owner", a.Owner().String()),
				slog.String("new_kind", a.Kind().String()))
		}
		attrs[a.Key()] = a
	}
	for _, p := range s.phases {
		if err := p.Discover(st, cfg, emit); err != nil {
			return nil, errors.Wrapf(err, "scan %s", st)
		}
	}

	log.Debug("type scanned", slog.String("type", st.String()), slog.Int("attributes", len(attrs)))
	return newIndex(st, cfg, attrs), nil
}
