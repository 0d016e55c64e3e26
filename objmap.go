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

package objmap

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/builder"
	"dirpx.dev/objmap/config"
	"dirpx.dev/objmap/view"
)

// init initializes the global objmap state.
func init() {
	// Initialize state with default cfg, scn, and cch.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.scn = b.BuildScanner(s.cfg, nil)
	s.cch = b.BuildCache(s.cfg, s.scn, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilScanner is returned when a builder returns a nil scanner.
	ErrNilScanner = errors.New("objmap: builder returned nil scanner")
	// ErrNilCache is returned when a builder returns a nil cache.
	ErrNilCache = errors.New("objmap: builder returned nil cache")
)

// New returns a View bound to instance, a non-nil pointer to a struct.
// The struct type is taken from instance.
func New(instance any) (*view.View, error) {
	if instance == nil {
		return nil, apis.ErrNullTarget
	}
	idx, err := st.Load().cch.Index(reflect.TypeOf(instance))
	if err != nil {
		return nil, err
	}
	return view.New(idx, instance)
}

// NewType returns an unbound View of the struct type t (or pointer to it).
// Only its shape can be inspected.
func NewType(t reflect.Type) (*view.View, error) {
	return NewBound(t, nil)
}

// NewBound returns a View of the struct type t bound to instance. instance
// must point to a t or to a struct that embeds t. An untyped nil instance
// yields an unbound View; a typed nil pointer fails with apis.ErrNullTarget.
func NewBound(t reflect.Type, instance any) (*view.View, error) {
	idx, err := st.Load().cch.Index(t)
	if err != nil {
		return nil, err
	}
	return view.New(idx, instance)
}

// Scan returns the Index of t through the global cache.
func Scan(t reflect.Type) (apis.Index, error) {
	return st.Load().cch.Index(t)
}

// SetAll explicitly sets all global objmap state components.
//
// Nil arguments leave the corresponding component unchanged, except that
// scanner and cache are rebuilt through the builder when nil.
func SetAll(cfg *apis.Config, scn apis.Scanner, cch apis.Cache, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Scanner
	nscn := scn
	npscn := false
	if nscn == nil {
		nscn = nbld.BuildScanner(ncfg, old.scn)
	} else {
		npscn = true
	}

	// Cache
	ncch := cch
	npcch := false
	if ncch == nil {
		ncch = nbld.BuildCache(ncfg, nscn, old.cch)
	} else {
		npcch = true
	}

	// Ensure non-nil scn and cch.
	if nscn == nil {
		panic(ErrNilScanner)
	}
	if ncch == nil {
		panic(ErrNilCache)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			scn:  nscn,
			cch:  ncch,
			bld:  nbld,
			pscn: npscn,
			pcch: npcch,
		},
	)
}

// Config returns the global objmap configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global objmap configuration to cfg.
// It rebuilds the unpinned scanner and cache using the new configuration.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, cfg, old.bld, old.scn, old.pscn))
}

// Scanner returns the global objmap scanner.
func Scanner() apis.Scanner {
	return st.Load().scn
}

// SetScanner sets the global objmap scanner to scn and pins it.
// The cache is rebuilt on top of it unless pinned.
func SetScanner(scn apis.Scanner) {
	if scn == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, old.cfg, old.bld, scn, true))
}

// Cache returns the global objmap cache.
func Cache() apis.Cache {
	return st.Load().cch
}

// SetCache sets the global objmap cache to cch and pins it.
func SetCache(cch apis.Cache) {
	if cch == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	ns := *old
	ns.cch = cch
	ns.pcch = true
	st.Store(&ns)
}

// Builder returns the global objmap builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global objmap builder to b.
// It rebuilds the unpinned scanner and cache with the new builder.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, old.cfg, b, old.scn, old.pscn))
}

// rebuild derives a state from old with cfg, bld and scn, rebuilding the
// scanner unless pscn and the cache unless it is pinned.
// Callers must hold buildMu.
func rebuild(old *state, cfg apis.Config, bld apis.Builder, scn apis.Scanner, pscn bool) *state {
	nscn := scn
	if !pscn {
		nscn = bld.BuildScanner(cfg, old.scn)
	}
	ncch := old.cch
	if !old.pcch {
		ncch = bld.BuildCache(cfg, nscn, old.cch)
	}

	// Ensure non-nil scn and cch.
	if nscn == nil {
		panic(ErrNilScanner)
	}
	if ncch == nil {
		panic(ErrNilCache)
	}

	return &state{
		cfg:  cfg,
		scn:  nscn,
		cch:  ncch,
		bld:  bld,
		pscn: pscn,
		pcch: old.pcch,
	}
}

// IsScannerPinned returns whether the global objmap scanner is pinned.
func IsScannerPinned() bool {
	return st.Load().pscn
}

// PinScanner stops the global objmap scanner from being rebuilt.
func PinScanner() {
	setPins(func(s *state) { s.pscn = true })
}

// UnpinScanner lets the global objmap scanner be rebuilt again.
func UnpinScanner() {
	setPins(func(s *state) { s.pscn = false })
}

// IsCachePinned returns whether the global objmap cache is pinned.
func IsCachePinned() bool {
	return st.Load().pcch
}

// PinCache stops the global objmap cache from being rebuilt.
func PinCache() {
	setPins(func(s *state) { s.pcch = true })
}

// UnpinCache lets the global objmap cache be rebuilt again.
func UnpinCache() {
	setPins(func(s *state) { s.pcch = false })
}

// setPins publishes a copy of the current state with its pins changed by f.
func setPins(f func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	ns := *st.Load()
	f(&ns)
	st.Store(&ns)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global objmap state.
var st atomic.Pointer[state]

// state is the global objmap state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global objmap configuration.
	cfg apis.Config
	// scn is the global objmap scanner.
	scn apis.Scanner
	// cch is the global objmap cache.
	cch apis.Cache
	// bld is the global objmap builder.
	bld apis.Builder
	// pscn indicates whether the scanner is pinned.
	pscn bool
	// pcch indicates whether the cache is pinned.
	pcch bool
}
