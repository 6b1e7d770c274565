// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "unsafe"

// Slice is a non-owning view of a contiguous run of T.
//
// A Slice never drops what it points to, and two Slices may alias the same
// memory. A Slice taken from a Vector dangles once that Vector
// reallocates or is freed; keeping track of that is the caller's job.
//
// The zero Slice is an empty view.
type Slice[T any] struct {
	s []T
}

// SliceOf returns a view over s. The view's length is len(s); the
// capacity of s is ignored.
func SliceOf[T any](s []T) Slice[T] {
	return Slice[T]{s: s[:len(s):len(s)]}
}

// Len returns the number of elements in the view.
func (v Slice[T]) Len() int { return len(v.s) }

// IsEmpty reports whether the view has no elements.
func (v Slice[T]) IsEmpty() bool { return len(v.s) == 0 }

// Raw returns the viewed elements as a Go slice sharing the same memory.
func (v Slice[T]) Raw() []T { return v.s }

// At returns a pointer to element i. Panics if i is out of range.
func (v Slice[T]) At(i int) *T {
	v.check(i, "Slice.At")
	return &v.s[i]
}

// Index returns a copy of element i. Panics if i is out of range.
func (v Slice[T]) Index(i int) T {
	v.check(i, "Slice.Index")
	return v.s[i]
}

// Set overwrites element i with x. Panics if i is out of range.
// The previous element is overwritten, not dropped; the view does not
// own it.
func (v Slice[T]) Set(i int, x T) {
	v.check(i, "Slice.Set")
	v.s[i] = x
}

// TryGet returns a copy of element i, or None if i is out of range.
func (v Slice[T]) TryGet(i int) Option[T] {
	if i < 0 || i >= len(v.s) {
		return None[T]()
	}
	return Some(v.s[i])
}

// Fill assigns x to every element.
func (v Slice[T]) Fill(x T) {
	for i := range v.s {
		v.s[i] = x
	}
}

// CopyFrom copies every element of src into v. src may overlap v.
// Panics if the lengths differ.
func (v Slice[T]) CopyFrom(src Slice[T]) {
	if len(v.s) != len(src.s) {
		violate(ErrLengthMismatch, "Slice.CopyFrom %d elements into %d", len(src.s), len(v.s))
	}
	copy(v.s, src.s)
}

// MoveFrom moves every element of src into v, leaving the moved-from
// slots of src zeroed. Slots of src that are also slots of v keep the
// moved-in values; moving a view onto itself changes nothing.
// Panics if the lengths differ.
func (v Slice[T]) MoveFrom(src Slice[T]) {
	n := len(v.s)
	if n != len(src.s) {
		violate(ErrLengthMismatch, "Slice.MoveFrom %d elements into %d", len(src.s), n)
	}
	if n == 0 {
		return
	}
	copy(v.s, src.s)
	size := unsafe.Sizeof(*new(T))
	if size == 0 {
		return
	}
	dstLo := uintptr(unsafe.Pointer(unsafe.SliceData(v.s)))
	dstHi := dstLo + uintptr(n)*size
	srcLo := uintptr(unsafe.Pointer(unsafe.SliceData(src.s)))
	var zero T
	for i := range src.s {
		p := srcLo + uintptr(i)*size
		if p >= dstLo && p < dstHi {
			continue
		}
		src.s[i] = zero
	}
}

// Sub returns the view of elements [b, e), clamped to the view: b and e
// are limited to Len(), and b > e yields an empty view. Sub never panics.
func (v Slice[T]) Sub(b, e int) Slice[T] {
	n := len(v.s)
	b = min(max(b, 0), n)
	e = min(max(e, 0), n)
	if b >= e {
		return Slice[T]{}
	}
	return Slice[T]{s: v.s[b:e:e]}
}

// Iter returns an iterator over the view's elements.
func (v Slice[T]) Iter() *SliceIter[T] {
	return &SliceIter[T]{rest: v.s}
}

// SliceEqual reports whether a and b have the same length and equal
// elements.
func SliceEqual[T comparable](a, b Slice[T]) bool {
	if len(a.s) != len(b.s) {
		return false
	}
	for i := range a.s {
		if a.s[i] != b.s[i] {
			return false
		}
	}
	return true
}

func (v Slice[T]) check(i int, op string) {
	if i < 0 || i >= len(v.s) {
		violate(ErrOutOfRange, "%s index %d with length %d", op, i, len(v.s))
	}
}
