// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/smallvec"
)

type sharedVec = smallvec.Vector[int, [256]int]

func TestSharedDo(t *testing.T) {
	var s smallvec.Shared[int, [256]int]
	s.Do(func(v *sharedVec) {
		v.PushBack(3)
		v.PushBack(1)
		v.PushBack(2)
		smallvec.HeapSort(v)
	})

	snap := s.Snapshot()
	if got := snap.Join(','); got != "1,2,3" {
		t.Fatalf("Snapshot: got %q, want %q", got, "1,2,3")
	}

	// Snapshot is a copy.
	snap.PopBack()
	s.Do(func(v *sharedVec) {
		if v.Len() != 3 {
			t.Fatalf("Len after snapshot mutation: got %d, want 3", v.Len())
		}
	})
}

func TestSharedTryDoWouldBlock(t *testing.T) {
	var s smallvec.Shared[int, [256]int]
	s.Do(func(*sharedVec) {
		err := s.TryDo(func(*sharedVec) { t.Fatal("TryDo ran while locked") })
		if !errors.Is(err, smallvec.ErrWouldBlock) {
			t.Errorf("TryDo while locked: got %v, want ErrWouldBlock", err)
		}
	})

	ran := false
	if err := s.TryDo(func(*sharedVec) { ran = true }); err != nil {
		t.Fatalf("TryDo after unlock: %v", err)
	}
	if !ran {
		t.Fatal("TryDo did not run fn")
	}
}

func TestSharedUnlocksOnPanic(t *testing.T) {
	var s smallvec.Shared[int, [256]int]
	func() {
		defer func() { _ = recover() }()
		s.Do(func(v *sharedVec) { v.At(0) })
	}()
	if err := s.TryDo(func(*sharedVec) {}); err != nil {
		t.Fatalf("TryDo after panic: %v", err)
	}
}

func TestSharedConcurrentPush(t *testing.T) {
	if smallvec.RaceEnabled {
		t.Skip("skip: spin lock ordering is invisible to the race detector")
	}

	const (
		workers = 8
		each    = 50 // 400 pushes into 256 slots
	)
	var s smallvec.Shared[int, [256]int]
	var dropped [workers]int

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range each {
				s.Do(func(v *sharedVec) {
					if v.TryPushBack(w*each+i) != nil {
						dropped[w]++
					}
				})
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, d := range dropped {
		total += d
	}
	snap := s.Snapshot()
	if snap.Len() != 256 {
		t.Fatalf("Len: got %d, want 256", snap.Len())
	}
	if total != workers*each-256 {
		t.Fatalf("dropped: got %d, want %d", total, workers*each-256)
	}

	seen := make(map[int]bool, snap.Len())
	for x := range snap.Values() {
		if seen[x] {
			t.Fatalf("duplicate element %d", x)
		}
		seen[x] = true
	}
}
