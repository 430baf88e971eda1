// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Dump writes each element's %v representation to w in iteration order,
// separated by sep, with no trailing separator.
// Returns the number of bytes written and the first write error.
func (v *Vector[T, S]) Dump(w io.Writer, sep rune) (int, error) {
	var buf [utf8.UTFMax]byte
	delim := buf[:utf8.EncodeRune(buf[:], sep)]

	total := 0
	for i, e := range v.live() {
		if i > 0 {
			n, err := w.Write(delim)
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err := fmt.Fprint(w, e)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Join returns the elements joined by sep. See Dump.
func (v *Vector[T, S]) Join(sep rune) string {
	var sb strings.Builder
	_, _ = v.Dump(&sb, sep)
	return sb.String()
}

// String formats the elements like a slice: [a b c].
func (v *Vector[T, S]) String() string {
	return "[" + v.Join(' ') + "]"
}
