// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"errors"
	"strconv"

	"code.hybscloud.com/iox"
)

// ErrOutOfRange indicates an index outside the logical range [0, Len()).
//
// Positions in [Len(), Cap()) have backing storage but are not addressable:
// accessors enforce the logical bound, not the physical one.
//
// Returned errors are *OutOfRangeError values that match ErrOutOfRange via
// errors.Is.
var ErrOutOfRange = errors.New("smallvec: index out of range")

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TryPushBack: the vector is full (capacity exhausted)
// For Shared.TryDo: another goroutine holds the vector
//
// ErrWouldBlock is a control flow signal, not a failure. PushBack and
// EmplaceBack absorb it silently; TryPushBack surfaces it for callers that
// need to know an element was dropped.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// OutOfRangeError describes a rejected index.
type OutOfRangeError struct {
	Index int // Requested index
	Len   int // Logical size at the time of the request
}

func (e *OutOfRangeError) Error() string {
	return "smallvec: index " + strconv.Itoa(e.Index) + " out of range [0:" + strconv.Itoa(e.Len) + ")"
}

// Unwrap returns ErrOutOfRange.
func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// IsOutOfRange reports whether err is a bounds violation.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

func outOfRange(index, length int) error {
	return &OutOfRangeError{Index: index, Len: length}
}
