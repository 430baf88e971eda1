// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

// Sequence is the random-access read interface of an ordered collection.
//
// The search functions consume Sequence rather than *Vector, so they work
// on any vector capacity and on plain slices through [Slice].
//
// Example:
//
//	v := smallvec.New[int, [8]int]()
//	// ... push and sort ...
//	i := smallvec.BinarySearch[int](&v, 42)
type Sequence[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i.
	// Callers guarantee 0 <= i < Len(); implementations may panic otherwise.
	At(i int) T
}

// Appender is the write interface for tail insertion.
//
// Appender follows the bounded-capacity policy of Vector: PushBack drops
// the element silently when there is no room, TryPushBack reports the drop
// with ErrWouldBlock.
type Appender[T any] interface {
	// PushBack appends elem, or does nothing if there is no room.
	PushBack(elem T)

	// TryPushBack appends elem.
	// Returns nil on success, ErrWouldBlock if there is no room.
	TryPushBack(elem T) error
}

// Slice adapts a plain slice to Sequence.
type Slice[T any] []T

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

var (
	_ Sequence[int] = (*Vector[int, [1]int])(nil)
	_ Sequence[int] = Slice[int](nil)
	_ Appender[int] = (*Vector[int, [1]int])(nil)
)
