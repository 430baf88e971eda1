// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package smallvec provides a fixed-capacity sequence with inline storage
// and in-place sorting.
//
// A [Vector] holds at most N elements in an [N]T array embedded in the
// vector itself. No operation allocates: pushing, popping, indexing,
// iterating and sorting all work on that array.
//
// # Quick Start
//
// The second type argument is the backing array; its length is the
// capacity:
//
//	v := smallvec.New[int, [10]int]()
//	for _, x := range []int{11, 30, 1, 20, 15} {
//	    v.PushBack(x)
//	}
//
//	smallvec.HeapSort(&v)                   // 1 11 15 20 30
//	i := smallvec.BinarySearch[int](&v, 20) // 3
//
// The zero Vector is also ready to use:
//
//	var v smallvec.Vector[string, [4]string]
//
// # Capacity and Bounds
//
// The two ways of going too far are handled differently on purpose:
//
//   - Appending to a full vector is not an error. PushBack and EmplaceBack
//     do nothing and Len is unchanged. TryPushBack reports the same
//     condition as [ErrWouldBlock] for callers that care.
//   - Indexing outside [0, Len()) is an error. Get and Set return an
//     [*OutOfRangeError] matching [ErrOutOfRange]; At panics with it.
//     Slots between Len and Cap exist in memory but are not addressable.
//
//	v := smallvec.New[int, [2]int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3)      // dropped, Len() == 2
//	_, err := v.Get(2) // errors.Is(err, smallvec.ErrOutOfRange)
//
// PopBack on an empty vector does nothing.
//
// # Iteration
//
// Range-over-func iterators:
//
//	for i, x := range v.All() { ... }
//	for x := range v.Values() { ... }
//	for i, x := range v.Backward() { ... }
//
// Random-access cursors:
//
//	for c := v.Begin(); c.Less(v.End()); c = c.Next() {
//	    c.Set(c.Value() * 2)
//	}
//
// CBegin and CEnd return read-only cursors. Every iterator and cursor fixes
// its bounds from Len() when it is created. Mutating the vector during
// iteration yields unspecified elements.
//
// # Sorting
//
// Sorts rearrange the vector's own storage and never allocate. None is
// stable.
//
//	smallvec.HeapSort(&v)          // max-heap, O(n log n) worst case
//	smallvec.QuickSort(&v, lo, hi) // inclusive subrange, last element pivot
//	smallvec.Sort(&v)              // quick sort with heap sort fallback
//
// Each has a Func method variant taking a three-way comparison, for element
// types that are not [cmp.Ordered]:
//
//	v.HeapSortFunc(func(a, b Point) int { return cmp.Compare(a.X, b.X) })
//
// # Searching
//
// [BinarySearch] and [LowerBound] accept any [Sequence], which *Vector
// implements. [Slice] adapts a plain slice. With duplicates, BinarySearch
// returns any matching index.
//
// # Copying
//
// A Vector is a value. Assignment and [Vector.Clone] copy the storage;
// the copies evolve independently.
//
//	w := v.Clone()
//	w.PopBack() // v is unaffected
//
// # Thread Safety
//
// Vector is not safe for concurrent use. Concurrent mutation, or mutation
// during iteration from another goroutine, is undefined behavior. Callers
// that share a vector must synchronize externally, for example with
// [Shared]:
//
//	var s smallvec.Shared[int, [64]int]
//	s.Do(func(v *smallvec.Vector[int, [64]int]) { v.PushBack(1) })
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for the lock word in Shared, and
// [code.hybscloud.com/spin] for CPU pause instructions while spinning.
package smallvec
