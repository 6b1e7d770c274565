// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "iter"

// Iterator is a single-pass, forward-only source of T.
//
// Next returns Some with the next element, or None once the iterator is
// exhausted. After the first None every later call returns None too.
// Iterators never modify the structure they walk.
type Iterator[T any] interface {
	Next() Option[T]
}

// SliceIter walks a Slice from front to back.
type SliceIter[T any] struct {
	rest []T
}

// Next implements Iterator.
func (it *SliceIter[T]) Next() Option[T] {
	if len(it.rest) == 0 {
		return None[T]()
	}
	x := it.rest[0]
	it.rest = it.rest[1:]
	return Some(x)
}

// Remaining returns the number of elements not yet produced.
func (it *SliceIter[T]) Remaining() int { return len(it.rest) }

// MapIterator applies a function to each element pulled from its source.
type MapIterator[T, U any] struct {
	src Iterator[T]
	f   func(T) U
}

// MapIter returns an iterator yielding f(x) for each x of src.
// f runs once per pulled element, at pull time.
func MapIter[T, U any](src Iterator[T], f func(T) U) *MapIterator[T, U] {
	return &MapIterator[T, U]{src: src, f: f}
}

// Next implements Iterator.
func (it *MapIterator[T, U]) Next() Option[U] {
	o := it.src.Next()
	return MapOption(&o, it.f)
}

// FirstNIterator yields at most a fixed number of elements.
type FirstNIterator[T any] struct {
	src  Iterator[T]
	left int
}

// FirstN returns an iterator over the first limit elements of src, or
// fewer if src runs out first. src is not pulled once the limit is hit.
func FirstN[T any](src Iterator[T], limit int) *FirstNIterator[T] {
	return &FirstNIterator[T]{src: src, left: max(limit, 0)}
}

// Next implements Iterator.
func (it *FirstNIterator[T]) Next() Option[T] {
	if it.left == 0 {
		return None[T]()
	}
	o := it.src.Next()
	if o.IsNone() {
		it.left = 0
		return o
	}
	it.left--
	return o
}

// ChainIterator exhausts one iterator and then another.
type ChainIterator[T any] struct {
	first, second Iterator[T]
}

// Chain returns an iterator over every element of first followed by every
// element of second. second is not pulled until first is exhausted.
// A nil iterator counts as empty.
func Chain[T any](first, second Iterator[T]) *ChainIterator[T] {
	return &ChainIterator[T]{first: first, second: second}
}

// Next implements Iterator.
func (it *ChainIterator[T]) Next() Option[T] {
	if it.first != nil {
		o := it.first.Next()
		if o.IsSome() {
			return o
		}
		it.first = nil
	}
	if it.second == nil {
		return None[T]()
	}
	return it.second.Next()
}

// FilterIterator skips elements rejected by a predicate.
type FilterIterator[T any] struct {
	src  Iterator[T]
	keep func(T) bool
}

// Filter returns an iterator over the elements of src for which keep
// reports true. Rejected elements are skipped, not dropped: whatever src
// walks still owns them.
func Filter[T any](src Iterator[T], keep func(T) bool) *FilterIterator[T] {
	return &FilterIterator[T]{src: src, keep: keep}
}

// Next implements Iterator.
func (it *FilterIterator[T]) Next() Option[T] {
	for {
		o := it.src.Next()
		if !o.IsSome() || it.keep(*o.Peek()) {
			return o
		}
	}
}

// Indexed pairs an element with its position in an iteration.
type Indexed[T any] struct {
	Index int
	Value T
}

// EnumerateIterator numbers the elements of its source from zero.
type EnumerateIterator[T any] struct {
	src Iterator[T]
	i   int
}

// Enumerate returns an iterator yielding Indexed pairs.
func Enumerate[T any](src Iterator[T]) *EnumerateIterator[T] {
	return &EnumerateIterator[T]{src: src}
}

// Next implements Iterator.
func (it *EnumerateIterator[T]) Next() Option[Indexed[T]] {
	o := it.src.Next()
	return MapOption(&o, func(x T) Indexed[T] {
		p := Indexed[T]{Index: it.i, Value: x}
		it.i++
		return p
	})
}

// ForEach pulls every element of it and passes it to f.
func ForEach[T any](it Iterator[T], f func(T)) {
	for {
		o := it.Next()
		x, ok := o.Get()
		if !ok {
			return
		}
		f(x)
	}
}

// Fold pulls every element of it, threading an accumulator through f.
func Fold[T, A any](it Iterator[T], initial A, f func(A, T) A) A {
	acc := initial
	ForEach(it, func(x T) { acc = f(acc, x) })
	return acc
}

// Count exhausts it and returns the number of elements it produced.
func Count[T any](it Iterator[T]) int {
	return Fold(it, 0, func(n int, _ T) int { return n + 1 })
}

// Partial is what CollectVector returns when its Vector stops growing:
// the elements collected so far and the one that did not fit.
type Partial[T any] struct {
	Collected Vector[T]
	Rejected  T
}

// CollectVector pulls every element of it into a new Vector configured by
// opts. If the Vector cannot grow, collection stops and Err returns the
// collected prefix together with the rejected element; the rest of it is
// left unpulled.
func CollectVector[T any](it Iterator[T], opts ...VectorOption) Result[Vector[T], Partial[T]] {
	v := NewVector[T](opts...)
	for {
		o := it.Next()
		x, ok := o.Get()
		if !ok {
			return Ok[Vector[T], Partial[T]](v)
		}
		if r := v.Push(x); r.IsErr() {
			return Err[Vector[T]](Partial[T]{Collected: v, Rejected: r.UnwrapErr()})
		}
	}
}

// Seq adapts it to a range-over-func sequence. Breaking out of the range
// loop stops pulling; the remaining elements stay in it.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			o := it.Next()
			x, ok := o.Get()
			if !ok || !yield(x) {
				return
			}
		}
	}
}
