// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync/atomic"
	"testing"
)

func TestParallel_VisitsEveryIndexOnce(t *testing.T) {
	const n = 100
	visits := make([]int32, n)

	Parallel(4, n, func(i int) {
		atomic.AddInt32(&visits[i], 1)
	})

	for i, v := range visits {
		if v != 1 {
			t.Errorf("index %d visited %d times, want 1", i, v)
		}
	}
}

func TestParallel_ResultsLandByIndex(t *testing.T) {
	const n = 50
	results := make([]int, n)

	Parallel(8, n, func(i int) {
		results[i] = i * i
	})

	for i, v := range results {
		if v != i*i {
			t.Errorf("results[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestParallel_ZeroWork(t *testing.T) {
	called := false

	// Should return immediately without invoking fn
	Parallel(4, 0, func(i int) { called = true })

	if called {
		t.Error("fn was called for empty input")
	}
}

func TestParallel_DefaultLimit(t *testing.T) {
	var count int32

	Parallel(0, 10, func(i int) {
		atomic.AddInt32(&count, 1)
	})

	if count != 10 {
		t.Errorf("expected 10 calls, got %d", count)
	}
}
