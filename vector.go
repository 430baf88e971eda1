// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"iter"
	"reflect"
	"unsafe"
)

// Vector is a fixed-capacity sequence with inline storage.
//
// S is the backing array type and must be [N]T; N is the capacity.
// The array is a value field, so a Vector declared as a local variable
// lives on the stack and never allocates.
//
// Capacity exhaustion is not an error: PushBack and EmplaceBack are silent
// no-ops on a full vector. Indexed access beyond Len is an error even when
// the backing array has room at that position.
//
// Copying a Vector value copies its storage. The copy and the original
// share nothing.
//
// A Vector is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize externally (see [Shared]). Mutating a vector
// while iterating over it yields unspecified elements.
//
// The zero Vector is empty and ready to use.
type Vector[T any, S any] struct {
	n    int // Logical size, 0 <= n <= cap
	cap  int // Resolved lazily from S
	data S
}

// New returns an empty vector backed by S.
// Panics if S is not an array type with element type T.
//
// Example:
//
//	v := smallvec.New[int, [10]int]()
//	v.PushBack(42)
func New[T any, S any]() Vector[T, S] {
	return Vector[T, S]{cap: capacityOf[T, S]()}
}

// capacityOf validates S and returns its length.
func capacityOf[T any, S any]() int {
	st := reflect.TypeFor[S]()
	et := reflect.TypeFor[T]()
	if st.Kind() != reflect.Array || st.Elem() != et {
		panic("smallvec: storage " + st.String() + " is not an array of " + et.String())
	}
	return st.Len()
}

// slots returns a view over the whole backing array.
// The view is derived from the receiver on every call and must not be
// retained: a copied Vector has its own array.
func (v *Vector[T, S]) slots() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.data)), v.cap)
}

// live returns a view over [0, Len()).
func (v *Vector[T, S]) live() []T {
	return v.slots()[:v.n]
}

// Len returns the number of elements.
func (v *Vector[T, S]) Len() int {
	return v.n
}

// Cap returns the fixed capacity N.
func (v *Vector[T, S]) Cap() int {
	if v.cap == 0 {
		return capacityOf[T, S]()
	}
	return v.cap
}

// Full reports whether Len() == Cap().
func (v *Vector[T, S]) Full() bool {
	return v.n == v.Cap()
}

// PushBack appends elem at the tail.
// Does nothing if the vector is full.
func (v *Vector[T, S]) PushBack(elem T) {
	_ = v.TryPushBack(elem)
}

// TryPushBack appends elem at the tail.
// Returns ErrWouldBlock if the vector is full; the vector is unchanged.
func (v *Vector[T, S]) TryPushBack(elem T) error {
	if v.cap == 0 {
		v.cap = capacityOf[T, S]()
	}
	if v.n >= v.cap {
		return ErrWouldBlock
	}
	v.slots()[v.n] = elem
	v.n++
	return nil
}

// EmplaceBack constructs an element in place at the tail.
// construct receives a pointer to the zeroed tail slot and is not called
// if the vector is full.
func (v *Vector[T, S]) EmplaceBack(construct func(slot *T)) {
	if v.cap == 0 {
		v.cap = capacityOf[T, S]()
	}
	if v.n >= v.cap {
		return
	}
	construct(&v.slots()[v.n])
	v.n++
}

// PopBack removes the last element.
// Does nothing if the vector is empty.
func (v *Vector[T, S]) PopBack() {
	v.PopBackValue()
}

// PopBackValue removes and returns the last element.
// Returns (zero-value, false) if the vector is empty.
func (v *Vector[T, S]) PopBackValue() (T, bool) {
	var zero T
	if v.n == 0 {
		return zero, false
	}
	v.n--
	s := v.slots()
	elem := s[v.n]
	s[v.n] = zero
	return elem, true
}

// Get returns the element at index.
// Returns an *OutOfRangeError if index is outside [0, Len()).
func (v *Vector[T, S]) Get(index int) (T, error) {
	if uint(index) >= uint(v.n) {
		var zero T
		return zero, outOfRange(index, v.n)
	}
	return v.slots()[index], nil
}

// Set replaces the element at index.
// Returns an *OutOfRangeError if index is outside [0, Len()).
func (v *Vector[T, S]) Set(index int, elem T) error {
	if uint(index) >= uint(v.n) {
		return outOfRange(index, v.n)
	}
	v.slots()[index] = elem
	return nil
}

// At returns the element at index.
// Panics with an *OutOfRangeError if index is outside [0, Len()).
func (v *Vector[T, S]) At(index int) T {
	if uint(index) >= uint(v.n) {
		panic(outOfRange(index, v.n))
	}
	return v.slots()[index]
}

// Clear removes all elements and zeroes the used slots.
func (v *Vector[T, S]) Clear() {
	clear(v.live())
	v.n = 0
}

// Clone returns an independent copy of v.
func (v *Vector[T, S]) Clone() Vector[T, S] {
	return *v
}

// AppendTo appends the elements of v to dst and returns the result.
func (v *Vector[T, S]) AppendTo(dst []T) []T {
	return append(dst, v.live()...)
}

// All returns an iterator over index-element pairs in order.
// The range is fixed to Len() at the time All is called.
func (v *Vector[T, S]) All() iter.Seq2[int, T] {
	n := v.n
	return func(yield func(int, T) bool) {
		s := v.slots()[:n]
		for i := range s {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
// The range is fixed to Len() at the time Values is called.
func (v *Vector[T, S]) Values() iter.Seq[T] {
	n := v.n
	return func(yield func(T) bool) {
		for _, e := range v.slots()[:n] {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward returns an iterator over index-element pairs from the tail.
func (v *Vector[T, S]) Backward() iter.Seq2[int, T] {
	n := v.n
	return func(yield func(int, T) bool) {
		s := v.slots()[:n]
		for i := n - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
