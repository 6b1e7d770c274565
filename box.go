// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Box owns exactly one heap-allocated T.
//
// Box is move-only by convention: transfer it with Take. The zero Box is
// empty, as is a Box after Unwrap, Take or Drop.
type Box[T any] struct {
	e *Element[T]
}

// NewBox moves v onto the heap.
func NewBox[T any](v T) Box[T] {
	e := NewElement(v)
	return Box[T]{e: &e}
}

// HasValue reports whether b owns a value.
func (b *Box[T]) HasValue() bool { return b.e != nil }

// Get returns a pointer to the owned value. Panics if b is empty.
func (b *Box[T]) Get() *T {
	if b.e == nil {
		violate(ErrEmpty, "Box.Get on empty Box")
	}
	return b.e.Get()
}

// Unwrap moves the value out and leaves b empty. Panics if b is empty.
func (b *Box[T]) Unwrap() T {
	e := b.e
	b.e = nil
	if e == nil {
		violate(ErrEmpty, "Box.Unwrap on empty Box")
	}
	return e.Unwrap()
}

// Take moves b into the returned Box and leaves b empty.
func (b *Box[T]) Take() Box[T] {
	n := Box[T]{e: b.e}
	b.e = nil
	return n
}

// Drop destroys the owned value, if any, and leaves b empty.
func (b *Box[T]) Drop() {
	e := b.e
	b.e = nil
	if e != nil {
		e.drop()
	}
}
