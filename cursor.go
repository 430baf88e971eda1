// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

// Cursor is a random-access position in a Vector.
//
// Cursors are values: Next, Prev and Advance return new cursors and leave
// the receiver untouched. Begin and End derive their positions from the
// vector's size when called, so End always equals Begin advanced by Len().
//
// A cursor does not track later mutations. Reading through a cursor at or
// past the current Len() panics with an *OutOfRangeError.
type Cursor[T any, S any] struct {
	v   *Vector[T, S]
	pos int
}

// Begin returns a cursor at the first element.
func (v *Vector[T, S]) Begin() Cursor[T, S] {
	return Cursor[T, S]{v: v}
}

// End returns a cursor one past the last element.
func (v *Vector[T, S]) End() Cursor[T, S] {
	return Cursor[T, S]{v: v, pos: v.n}
}

// Index returns the cursor's position.
func (c Cursor[T, S]) Index() int { return c.pos }

// Value returns the element under the cursor.
func (c Cursor[T, S]) Value() T {
	return c.v.At(c.pos)
}

// Set replaces the element under the cursor.
// Returns an *OutOfRangeError if the cursor is not on an element.
func (c Cursor[T, S]) Set(elem T) error {
	return c.v.Set(c.pos, elem)
}

// Next returns the cursor one position forward.
func (c Cursor[T, S]) Next() Cursor[T, S] { return c.Advance(1) }

// Prev returns the cursor one position back.
func (c Cursor[T, S]) Prev() Cursor[T, S] { return c.Advance(-1) }

// Advance returns the cursor moved by n positions.
func (c Cursor[T, S]) Advance(n int) Cursor[T, S] {
	c.pos += n
	return c
}

// Distance returns the number of steps from c to last.
func (c Cursor[T, S]) Distance(last Cursor[T, S]) int {
	return last.pos - c.pos
}

// Equal reports whether c and o point at the same position of the same vector.
func (c Cursor[T, S]) Equal(o Cursor[T, S]) bool {
	return c.v == o.v && c.pos == o.pos
}

// Less reports whether c precedes o in the same vector. Cursors of
// different vectors are unordered and Less returns false.
func (c Cursor[T, S]) Less(o Cursor[T, S]) bool {
	return c.v == o.v && c.pos < o.pos
}

// ConstCursor is a read-only Cursor.
type ConstCursor[T any, S any] struct {
	c Cursor[T, S]
}

// CBegin returns a read-only cursor at the first element.
func (v *Vector[T, S]) CBegin() ConstCursor[T, S] {
	return ConstCursor[T, S]{c: v.Begin()}
}

// CEnd returns a read-only cursor one past the last element.
func (v *Vector[T, S]) CEnd() ConstCursor[T, S] {
	return ConstCursor[T, S]{c: v.End()}
}

// Index returns the cursor's position.
func (c ConstCursor[T, S]) Index() int { return c.c.pos }

// Value returns the element under the cursor. It panics when the cursor
// is not on a live element.
func (c ConstCursor[T, S]) Value() T { return c.c.Value() }

// Next returns a cursor one position later.
func (c ConstCursor[T, S]) Next() ConstCursor[T, S] { return ConstCursor[T, S]{c: c.c.Next()} }

// Prev returns a cursor one position earlier.
func (c ConstCursor[T, S]) Prev() ConstCursor[T, S] { return ConstCursor[T, S]{c: c.c.Prev()} }

// Advance returns a cursor moved by n positions; n may be negative.
func (c ConstCursor[T, S]) Advance(n int) ConstCursor[T, S] {
	return ConstCursor[T, S]{c: c.c.Advance(n)}
}

// Distance returns the number of positions from c to last.
func (c ConstCursor[T, S]) Distance(last ConstCursor[T, S]) int { return c.c.Distance(last.c) }

// Equal reports whether c and o point at the same position of the same vector.
func (c ConstCursor[T, S]) Equal(o ConstCursor[T, S]) bool { return c.c.Equal(o.c) }

// Less reports whether c precedes o in the same vector.
func (c ConstCursor[T, S]) Less(o ConstCursor[T, S]) bool { return c.c.Less(o.c) }
