// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Option is a value that may be absent: Some(v) or None.
//
// An Option has exactly one owner. Every consuming method (Unwrap,
// UnwrapOr, Get, Take, MapOption, ...) leaves the receiver Invalid; a
// second consuming call panics with ErrInvalidState. The zero Option is
// Invalid, not None.
//
// Consuming methods have pointer receivers, so the Option must be
// addressable:
//
//	o := v.Pop()
//	x := o.Unwrap()
type Option[T any] struct {
	t tag
	a Element[T]
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{t: tagA, a: NewElement(v)}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{t: tagB}
}

// IsSome reports whether o holds a value. It does not consume o.
func (o *Option[T]) IsSome() bool { return o.t == tagA }

// IsNone reports whether o is None. It does not consume o.
// An Invalid Option is neither Some nor None.
func (o *Option[T]) IsNone() bool { return o.t == tagB }

// IsValid reports whether o is Some or None.
func (o *Option[T]) IsValid() bool { return o.t != tagInvalid }

// Peek returns a pointer to the held value without consuming o.
// Panics unless o is Some.
func (o *Option[T]) Peek() *T {
	switch o.t {
	case tagA:
		return o.a.Get()
	case tagB:
		violate(ErrWrongVariant, "Option.Peek on None")
	default:
		violate(ErrInvalidState, "Option.Peek on Invalid")
	}
	return nil
}

// Unwrap consumes o and returns its value.
// Panics if o is None or Invalid.
func (o *Option[T]) Unwrap() T {
	return o.Expect("Option.Unwrap on None")
}

// Expect is Unwrap with a caller-supplied panic message for the None case.
func (o *Option[T]) Expect(msg string) T {
	switch consume(&o.t) {
	case tagA:
		return o.a.Unwrap()
	case tagB:
		violate(ErrWrongVariant, "%s", msg)
	default:
		violate(ErrInvalidState, "Option.Unwrap on Invalid")
	}
	panic("unreachable")
}

// UnwrapOr consumes o and returns its value, or fallback if o is None.
// Panics only if o is Invalid.
func (o *Option[T]) UnwrapOr(fallback T) T {
	switch consume(&o.t) {
	case tagA:
		return o.a.Unwrap()
	case tagB:
		return fallback
	default:
		violate(ErrInvalidState, "Option.UnwrapOr on Invalid")
	}
	panic("unreachable")
}

// UnwrapOrElse consumes o and returns its value, or the result of
// fallback if o is None. fallback is not called when o is Some.
func (o *Option[T]) UnwrapOrElse(fallback func() T) T {
	switch consume(&o.t) {
	case tagA:
		return o.a.Unwrap()
	case tagB:
		return fallback()
	default:
		violate(ErrInvalidState, "Option.UnwrapOrElse on Invalid")
	}
	panic("unreachable")
}

// Get consumes o and returns (value, true) if o was Some, or (zero, false)
// if o was None. Panics if o is Invalid.
func (o *Option[T]) Get() (T, bool) {
	switch consume(&o.t) {
	case tagA:
		return o.a.Unwrap(), true
	case tagB:
		var zero T
		return zero, false
	default:
		violate(ErrInvalidState, "Option.Get on Invalid")
	}
	panic("unreachable")
}

// Take moves o into the returned Option and leaves o Invalid.
// Taking from an Invalid Option is legal and yields another Invalid Option.
func (o *Option[T]) Take() Option[T] {
	n := Option[T]{t: consume(&o.t)}
	if n.t == tagA {
		n.a = NewElement(o.a.Unwrap())
	}
	return n
}

// Replace stores v in o and returns the previous contents, moved.
func (o *Option[T]) Replace(v T) Option[T] {
	prev := o.Take()
	o.a = NewElement(v)
	o.t = tagA
	return prev
}

// Drop destroys o's value, if any, and leaves o Invalid.
// Dropping an Invalid or None Option does nothing else.
func (o *Option[T]) Drop() {
	if consume(&o.t) == tagA {
		o.a.drop()
	}
}

// MapOption consumes o and applies f to its value.
// None propagates untouched and f is not called. Panics if o is Invalid.
func MapOption[T, U any](o *Option[T], f func(T) U) Option[U] {
	switch consume(&o.t) {
	case tagA:
		return Some(f(o.a.Unwrap()))
	case tagB:
		return None[U]()
	default:
		violate(ErrInvalidState, "MapOption on Invalid")
	}
	panic("unreachable")
}

// FlatMapOption consumes o and sequences f on its value.
func FlatMapOption[T, U any](o *Option[T], f func(T) Option[U]) Option[U] {
	switch consume(&o.t) {
	case tagA:
		return f(o.a.Unwrap())
	case tagB:
		return None[U]()
	default:
		violate(ErrInvalidState, "FlatMapOption on Invalid")
	}
	panic("unreachable")
}

// MatchOption consumes o, calling onSome or onNone.
func MatchOption[T, R any](o *Option[T], onSome func(T) R, onNone func() R) R {
	switch consume(&o.t) {
	case tagA:
		return onSome(o.a.Unwrap())
	case tagB:
		return onNone()
	default:
		violate(ErrInvalidState, "MatchOption on Invalid")
	}
	panic("unreachable")
}

// OkOr consumes o, converting Some(v) to Ok(v) and None to Err(e).
func OkOr[T, E any](o *Option[T], e E) Result[T, E] {
	switch consume(&o.t) {
	case tagA:
		return Ok[T, E](o.a.Unwrap())
	case tagB:
		return Err[T](e)
	default:
		violate(ErrInvalidState, "OkOr on Invalid")
	}
	panic("unreachable")
}
