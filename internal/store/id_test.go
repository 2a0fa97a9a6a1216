// Travel Companion - Location Tracking and Travel Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/travelcompanion

package store

import (
	"strconv"
	"sync"
	"testing"
	"time"
)

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestIDGenerator_UsesClock(t *testing.T) {
	g := &IDGenerator{now: fixedClock(1760870400000)}

	if got := g.Next(); got != "1760870400000" {
		t.Errorf("Next() = %q, want %q", got, "1760870400000")
	}
}

func TestIDGenerator_BumpsOnCollision(t *testing.T) {
	g := &IDGenerator{now: fixedClock(1000)}

	want := []string{"1000", "1001", "1002"}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("call %d: Next() = %q, want %q", i, got, w)
		}
	}
}

func TestIDGenerator_ClockGoingBackwards(t *testing.T) {
	ms := int64(5000)
	g := &IDGenerator{now: func() time.Time { return time.UnixMilli(ms) }}

	first := g.Next()
	ms = 4000
	second := g.Next()

	a, _ := strconv.ParseInt(first, 10, 64)
	b, _ := strconv.ParseInt(second, 10, 64)
	if b <= a {
		t.Errorf("ids not increasing: %d then %d", a, b)
	}
}

func TestIDGenerator_Observe(t *testing.T) {
	tests := []struct {
		name     string
		observed string
		want     string
	}{
		{"higher id raises floor", "2000", "2001"},
		{"lower id ignored", "500", "1000"},
		{"non-numeric ignored", "abc", "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &IDGenerator{now: fixedClock(1000)}
			g.Observe(tt.observed)
			if got := g.Next(); got != tt.want {
				t.Errorf("Next() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIDGenerator_ConcurrentUnique(t *testing.T) {
	g := &IDGenerator{now: fixedClock(1000)}

	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- g.Next()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
