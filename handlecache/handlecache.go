// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handlecache caches handles resolved by name for the lifetime of the
// process.
//
// Resolving a simulator data handle or a page path by name gives the same
// result for as long as the process runs. Unlike the rest of the pipeline, a
// Cache may be used from any goroutine.
package handlecache

import "sync"

// Cache maps names to handles of type H.
type Cache[H any] struct {
	mu      sync.Mutex
	handles map[string]H
}

// New returns an empty Cache.
func New[H any]() *Cache[H] {
	return &Cache[H]{handles: make(map[string]H)}
}

// Lookup returns the handle cached for name. On a miss it calls resolve and
// caches the result if resolve reports success. Failures are not cached, so a
// later Lookup tries again.
//
// resolve runs with the cache locked and must not call back into c.
func (c *Cache[H]) Lookup(name string, resolve func(name string) (H, bool)) (H, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.handles[name]; ok {
		return h, true
	}
	if c.handles == nil {
		c.handles = make(map[string]H)
	}
	h, ok := resolve(name)
	if !ok {
		var zero H
		return zero, false
	}
	c.handles[name] = h
	return h, true
}

// Unregister removes name from the cache.
func (c *Cache[H]) Unregister(name string) {
	c.mu.Lock()
	delete(c.handles, name)
	c.mu.Unlock()
}

// Len returns the number of cached handles.
func (c *Cache[H]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}
