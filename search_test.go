// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package smallvec_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"code.hybscloud.com/smallvec"
)

func TestBinarySearchExample(t *testing.T) {
	v := smallvec.New[int, [10]int]()
	for _, x := range []int{11, 30, 1, 20, 15, 5, 19, 88, 99, 12} {
		v.PushBack(x)
	}
	smallvec.HeapSort(&v)

	cases := []struct {
		target int
		want   int
	}{
		{20, 6},
		{5, 1},
		{99, 9},
		{1, 0},
		{88, 8},
		{7, smallvec.NotFound},
		{0, smallvec.NotFound},
		{100, smallvec.NotFound},
	}
	for _, tc := range cases {
		if got := smallvec.BinarySearch[int](&v, tc.target); got != tc.want {
			t.Errorf("BinarySearch(%d): got %d, want %d", tc.target, got, tc.want)
		}
	}
}

func TestBinarySearchEmpty(t *testing.T) {
	var v smallvec.Vector[int, [4]int]
	if got := smallvec.BinarySearch[int](&v, 1); got != smallvec.NotFound {
		t.Fatalf("BinarySearch on empty: got %d, want NotFound", got)
	}
	if got := smallvec.BinarySearch[int](smallvec.Slice[int](nil), 1); got != smallvec.NotFound {
		t.Fatalf("BinarySearch on nil slice: got %d, want NotFound", got)
	}
}

func TestBinarySearchDuplicates(t *testing.T) {
	s := smallvec.Slice[int]{1, 2, 2, 2, 2, 3}
	i := smallvec.BinarySearch[int](s, 2)
	if i == smallvec.NotFound || s[i] != 2 {
		t.Fatalf("BinarySearch(2): got %d", i)
	}
	if lb := smallvec.LowerBound[int](s, 2); lb != 1 {
		t.Fatalf("LowerBound(2): got %d, want 1", lb)
	}
}

func TestBinarySearchProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for iter := range 300 {
		var v vec64
		n := r.IntN(65)
		for range n {
			v.PushBack(r.IntN(100))
		}
		smallvec.Sort(&v)
		values := v.AppendTo(nil)

		for target := -1; target <= 100; target++ {
			got := smallvec.BinarySearch[int](&v, target)
			if slices.Contains(values, target) {
				if got == smallvec.NotFound || v.At(got) != target {
					t.Fatalf("iter %d: BinarySearch(%d) = %d on %v", iter, target, got, values)
				}
			} else if got != smallvec.NotFound {
				t.Fatalf("iter %d: BinarySearch(%d) = %d, want NotFound", iter, target, got)
			}

			lb := smallvec.LowerBound[int](&v, target)
			want, _ := slices.BinarySearch(values, target)
			if lb != want {
				t.Fatalf("iter %d: LowerBound(%d) = %d, want %d", iter, target, lb, want)
			}
		}
	}
}

func TestBinarySearchFuncKey(t *testing.T) {
	v := smallvec.New[record, [4]record]()
	v.PushBack(record{"alice", 30})
	v.PushBack(record{"bob", 25})
	v.PushBack(record{"carol", 41})

	byName := func(r record, name string) int { return strings.Compare(r.Name, name) }
	if got := smallvec.BinarySearchFunc[record](&v, "bob", byName); got != 1 {
		t.Fatalf("BinarySearchFunc(bob): got %d, want 1", got)
	}
	if got := smallvec.BinarySearchFunc[record](&v, "zed", byName); got != smallvec.NotFound {
		t.Fatalf("BinarySearchFunc(zed): got %d, want NotFound", got)
	}
	if got := smallvec.LowerBoundFunc[record](&v, "b", byName); got != 1 {
		t.Fatalf("LowerBoundFunc(b): got %d, want 1", got)
	}
}

func TestBinarySearchSlice(t *testing.T) {
	s := smallvec.Slice[float64]{-2.5, 0, 1.5, 3}
	if got := smallvec.BinarySearchFunc(s, 1.5, cmp.Compare[float64]); got != 2 {
		t.Fatalf("BinarySearchFunc(1.5): got %d, want 2", got)
	}
}
