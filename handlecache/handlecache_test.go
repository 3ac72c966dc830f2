// Copyright 2025 The SkyScript Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handlecache

import (
	"fmt"
	"sync"
	"testing"
)

func TestLookupResolvesOnce(t *testing.T) {
	c := New[int]()
	calls := 0
	resolve := func(name string) (int, bool) {
		calls++
		return len(name), true
	}
	for i := 0; i < 3; i++ {
		h, ok := c.Lookup("sim/flightmodel/position/latitude", resolve)
		if !ok || h != 33 {
			t.Fatalf("Lookup: got (%d, %v), want (33, true)", h, ok)
		}
	}
	if calls != 1 {
		t.Errorf("resolve calls: got %d, want 1", calls)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len: got %d, want 1", got)
	}
}

func TestFailuresAreNotCached(t *testing.T) {
	var c Cache[string]
	fail := true
	resolve := func(name string) (string, bool) {
		if fail {
			return "", false
		}
		return "h:" + name, true
	}
	if _, ok := c.Lookup("x", resolve); ok {
		t.Fatalf("Lookup: got ok, want failure")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("Len after failure: got %d, want 0", got)
	}
	fail = false
	if h, ok := c.Lookup("x", resolve); !ok || h != "h:x" {
		t.Errorf("Lookup after recovery: got (%q, %v)", h, ok)
	}
}

func TestUnregister(t *testing.T) {
	c := New[int]()
	calls := 0
	resolve := func(string) (int, bool) { calls++; return calls, true }
	c.Lookup("a", resolve)
	c.Unregister("a")
	c.Unregister("never-registered")
	if h, _ := c.Lookup("a", resolve); h != 2 {
		t.Errorf("Lookup after Unregister: got %d, want 2", h)
	}
}

func TestConcurrentLookup(t *testing.T) {
	c := New[string]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				name := fmt.Sprintf("ref/%d", j%10)
				c.Lookup(name, func(n string) (string, bool) { return n, true })
			}
		}(i)
	}
	wg.Wait()
	if got := c.Len(); got != 10 {
		t.Errorf("Len: got %d, want 10", got)
	}
}
