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

package cache

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/objmap/apis"
	"dirpx.dev/objmap/config"
	uref "dirpx.dev/objmap/utils/reflect"
)

// ErrNilScanner is returned when a cache has no scanner to fill it.
var ErrNilScanner = errors.New("objmap(cache): nil scanner")

// New constructs a Cache that scans types with scn under cfg.
func New(cfg apis.Config, scn apis.Scanner) apis.Cache {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &cache{cfg: cfg, scn: scn}
}

// cache is a simple Cache implementation backed by sync.Map.
type cache struct {
	// cfg is the configuration every Index is scanned with.
	cfg apis.Config
	// scn builds Indexes on a miss.
	scn apis.Scanner
	// fill collapses concurrent misses for one type into a single scan.
	fill singleflight.Group
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps normalized struct types to their Index.
	m sync.Map // map[reflect.Type]apis.Index
	// count tracks the number of cached entries.
	count int
}

// Index returns the Index of t's struct type, scanning it on a miss.
func (c *cache) Index(t reflect.Type) (apis.Index, error) {
	st, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return nil, err
	}

	// Fast read path.
	if v, ok := c.m.Load(st); ok {
		return v.(apis.Index), nil
	}
	if c.scn == nil {
		return nil, ErrNilScanner
	}

	// Type identity, not its name: local types may share a name.
	v, err, _ := c.fill.Do(fmt.Sprintf("%p", st), func() (any, error) {
		if v, ok := c.m.Load(st); ok {
			return v, nil
		}
		idx, err := c.scn.Scan(st, c.cfg)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if v, loaded := c.m.LoadOrStore(st, idx); loaded {
			return v, nil
		}
		c.count++
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(apis.Index), nil
}

// Lookup returns a cached Index without scanning.
func (c *cache) Lookup(t reflect.Type) (apis.Index, bool) {
	if t == nil {
		return nil, false
	}
	st, err := uref.Normalize(t, c.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := c.m.Load(st); ok {
		return v.(apis.Index), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (c *cache) Entries() []apis.CacheEntry {
	entries := make([]apis.CacheEntry, 0, c.Count())
	c.m.Range(func(key, value any) bool {
		entries = append(entries, apis.CacheEntry{
			Type:  key.(reflect.Type),
			Index: value.(apis.Index),
		})
		return true
	})
	return entries
}

// Count returns the number of cached entries.
func (c *cache) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Reset drops all cached entries.
func (c *cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m.Clear()
	c.count = 0
}
