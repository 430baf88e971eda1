// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"cmp"
	"math/bits"
)

// All sorts run on the vector's own storage, touch only [0, Len()) and
// never allocate. None of them is stable.

// HeapSortFunc sorts the vector in ascending order as determined by cmp.
// cmp(a, b) returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
//
// O(n log n) worst case.
func (v *Vector[T, S]) HeapSortFunc(cmp func(a, b T) int) {
	heapSortFunc(v.live(), cmp)
}

// QuickSortFunc sorts the inclusive subrange [low, high] in ascending order
// as determined by cmp, using the last element of each subrange as pivot.
//
// A range with low >= high is already sorted. Otherwise low and high must
// both lie in [0, Len()); an *OutOfRangeError is returned and nothing moves
// if they do not.
func (v *Vector[T, S]) QuickSortFunc(low, high int, cmp func(a, b T) int) error {
	if low >= high {
		return nil
	}
	if err := v.checkRange(low, high); err != nil {
		return err
	}
	quickSortFunc(v.live(), low, high, cmp)
	return nil
}

// PartitionFunc partitions the inclusive subrange [low, high] around its
// last element and returns the pivot's final index p. After the call,
// elements in [low, p) compare less than the pivot and elements in
// (p, high] compare greater than or equal to it.
func (v *Vector[T, S]) PartitionFunc(low, high int, cmp func(a, b T) int) (int, error) {
	if low > high {
		return 0, outOfRange(low, v.n)
	}
	if err := v.checkRange(low, high); err != nil {
		return 0, err
	}
	return partitionFunc(v.live(), low, high, cmp), nil
}

// SortFunc sorts the whole vector in ascending order as determined by cmp.
// Quick sort with a recursion budget; subranges that exhaust it fall back
// to heap sort.
func (v *Vector[T, S]) SortFunc(cmp func(a, b T) int) {
	s := v.live()
	if len(s) < 2 {
		return
	}
	introSortFunc(s, 0, len(s)-1, 2*bits.Len(uint(len(s))), cmp)
}

// IsSortedFunc reports whether the vector is in ascending order as
// determined by cmp.
func (v *Vector[T, S]) IsSortedFunc(cmp func(a, b T) int) bool {
	s := v.live()
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}

func (v *Vector[T, S]) checkRange(low, high int) error {
	if uint(low) >= uint(v.n) {
		return outOfRange(low, v.n)
	}
	if uint(high) >= uint(v.n) {
		return outOfRange(high, v.n)
	}
	return nil
}

// HeapSort sorts v in ascending order.
func HeapSort[T cmp.Ordered, S any](v *Vector[T, S]) {
	v.HeapSortFunc(cmp.Compare[T])
}

// QuickSort sorts the inclusive subrange [low, high] of v in ascending order.
// See [Vector.QuickSortFunc].
func QuickSort[T cmp.Ordered, S any](v *Vector[T, S], low, high int) error {
	return v.QuickSortFunc(low, high, cmp.Compare[T])
}

// Sort sorts v in ascending order. See [Vector.SortFunc].
func Sort[T cmp.Ordered, S any](v *Vector[T, S]) {
	v.SortFunc(cmp.Compare[T])
}

// IsSorted reports whether v is in ascending order.
func IsSorted[T cmp.Ordered, S any](v *Vector[T, S]) bool {
	return v.IsSortedFunc(cmp.Compare[T])
}

func heapSortFunc[T any](s []T, cmp func(a, b T) int) {
	n := len(s)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDownFunc(s, i, n, cmp)
	}

	// Move the root to the shrinking tail
	for i := n - 1; i > 0; i-- {
		s[0], s[i] = s[i], s[0]
		siftDownFunc(s, 0, i, cmp)
	}
}

// siftDownFunc restores the max-heap property of s[:n] below root i.
func siftDownFunc[T any](s []T, i, n int, cmp func(a, b T) int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && cmp(s[left], s[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(s[right], s[largest]) > 0 {
			largest = right
		}

		if largest == i {
			return
		}

		s[i], s[largest] = s[largest], s[i]
		i = largest
	}
}

// partitionFunc is a Lomuto partition of s[low:high+1] around s[high].
// The scan covers [low, high-1]; the pivot is never compared with itself.
func partitionFunc[T any](s []T, low, high int, cmp func(a, b T) int) int {
	pivot := s[high]
	i := low
	for j := low; j < high; j++ {
		if cmp(s[j], pivot) < 0 {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[high] = s[high], s[i]
	return i
}

// quickSortFunc recurses into the smaller side and loops on the larger,
// keeping stack depth at O(log n).
func quickSortFunc[T any](s []T, low, high int, cmp func(a, b T) int) {
	for low < high {
		p := partitionFunc(s, low, high, cmp)
		if p-low < high-p {
			quickSortFunc(s, low, p-1, cmp)
			low = p + 1
		} else {
			quickSortFunc(s, p+1, high, cmp)
			high = p - 1
		}
	}
}

func introSortFunc[T any](s []T, low, high, depth int, cmp func(a, b T) int) {
	for low < high {
		if depth == 0 {
			heapSortFunc(s[low:high+1], cmp)
			return
		}
		depth--

		p := partitionFunc(s, low, high, cmp)
		if p-low < high-p {
			introSortFunc(s, low, p-1, depth, cmp)
			low = p + 1
		} else {
			introSortFunc(s, p+1, high, depth, cmp)
			high = p - 1
		}
	}
}
