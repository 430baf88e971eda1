// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import "cmp"

// NotFound is returned by BinarySearch when the target is absent.
const NotFound = -1

// BinarySearch returns the index of an element equal to target in s, which
// must be sorted in ascending order, or NotFound.
//
// When target occurs more than once, any matching index may be returned.
// The result is unspecified if s is not sorted.
func BinarySearch[T cmp.Ordered](s Sequence[T], target T) int {
	return BinarySearchFunc(s, target, cmp.Compare[T])
}

// BinarySearchFunc is like BinarySearch but uses cmp to compare an element
// with the target.
func BinarySearchFunc[T, K any](s Sequence[T], target K, cmp func(T, K) int) int {
	lo, hi := 0, s.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp(s.At(mid), target); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			return mid
		}
	}
	return NotFound
}

// LowerBound returns the smallest index i such that s.At(i) >= target,
// or s.Len() if there is none. s must be sorted in ascending order.
func LowerBound[T cmp.Ordered](s Sequence[T], target T) int {
	return LowerBoundFunc(s, target, cmp.Compare[T])
}

// LowerBoundFunc is like LowerBound but uses cmp to compare an element
// with the target.
func LowerBoundFunc[T, K any](s Sequence[T], target K, cmp func(T, K) int) int {
	i, j := 0, s.Len()
	for i < j {
		mid := i + (j-i)/2
		if cmp(s.At(mid), target) < 0 {
			i = mid + 1
		} else {
			j = mid
		}
	}
	return i
}
