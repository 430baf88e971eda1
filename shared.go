// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Shared owns a Vector and serializes access to it with a spin lock.
//
// Vector itself has no synchronization. Shared is the external
// synchronization callers provide when a vector crosses goroutines; it
// suits short critical sections such as a push or a small sort.
//
// The vector must only be touched inside Do or TryDo callbacks, and the
// *Vector passed to a callback must not escape it. The lock is not
// re-entrant: calling Do or Snapshot on the same Shared from inside a
// callback deadlocks, and TryDo there returns ErrWouldBlock.
//
// Example:
//
//	var s smallvec.Shared[int, [64]int]
//	s.Do(func(v *smallvec.Vector[int, [64]int]) {
//	    v.PushBack(42)
//	})
type Shared[T any, S any] struct {
	_      pad
	locked atomix.Uint64 // 0 = free, 1 = held
	_      padShort
	vec    Vector[T, S]
}

// Do runs fn with exclusive access to the vector, spinning until the lock
// is free.
func (s *Shared[T, S]) Do(fn func(v *Vector[T, S])) {
	s.lock()
	defer s.unlock()
	fn(&s.vec)
}

// TryDo runs fn with exclusive access to the vector.
// Returns ErrWouldBlock without calling fn if the lock is held.
func (s *Shared[T, S]) TryDo(fn func(v *Vector[T, S])) error {
	if !s.locked.CompareAndSwapAcqRel(0, 1) {
		return ErrWouldBlock
	}
	defer s.unlock()
	fn(&s.vec)
	return nil
}

// Snapshot returns a copy of the vector taken under the lock.
func (s *Shared[T, S]) Snapshot() Vector[T, S] {
	s.lock()
	defer s.unlock()
	return s.vec
}

func (s *Shared[T, S]) lock() {
	sw := spin.Wait{}
	for !s.locked.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (s *Shared[T, S]) unlock() {
	s.locked.StoreRelease(0)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
