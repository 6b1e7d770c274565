// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "fmt"

// Result is a value or an error: Ok(v) or Err(e).
//
// Result follows the same single-owner discipline as Option: consuming
// methods leave the receiver Invalid and the zero Result is Invalid.
// E is any type; it need not implement error.
type Result[T, E any] struct {
	t tag
	a Element[T]
	b Element[E]
}

// Ok creates a Result holding the success value v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{t: tagA, a: NewElement(v)}
}

// Err creates a Result holding the error value e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{t: tagB, b: NewElement(e)}
}

// IsOk reports whether r holds a success value. It does not consume r.
func (r *Result[T, E]) IsOk() bool { return r.t == tagA }

// IsErr reports whether r holds an error value. It does not consume r.
func (r *Result[T, E]) IsErr() bool { return r.t == tagB }

// IsValid reports whether r is Ok or Err.
func (r *Result[T, E]) IsValid() bool { return r.t != tagInvalid }

// Unwrap consumes r and returns the success value.
// Panics if r is Err or Invalid.
func (r *Result[T, E]) Unwrap() T {
	return r.Expect("Result.Unwrap on Err")
}

// Expect is Unwrap with a caller-supplied panic message for the Err case.
func (r *Result[T, E]) Expect(msg string) T {
	switch consume(&r.t) {
	case tagA:
		return r.a.Unwrap()
	case tagB:
		detail := fmt.Sprintf("%s: %v", msg, *r.b.Get())
		r.b.drop()
		violate(ErrWrongVariant, "%s", detail)
	default:
		violate(ErrInvalidState, "Result.Unwrap on Invalid")
	}
	panic("unreachable")
}

// UnwrapErr consumes r and returns the error value.
// Panics if r is Ok or Invalid.
func (r *Result[T, E]) UnwrapErr() E {
	switch consume(&r.t) {
	case tagA:
		r.a.drop()
		violate(ErrWrongVariant, "Result.UnwrapErr on Ok")
	case tagB:
		return r.b.Unwrap()
	default:
		violate(ErrInvalidState, "Result.UnwrapErr on Invalid")
	}
	panic("unreachable")
}

// UnwrapOr consumes r and returns the success value, or fallback if r is
// Err. The error value is destroyed. Panics only if r is Invalid.
func (r *Result[T, E]) UnwrapOr(fallback T) T {
	switch consume(&r.t) {
	case tagA:
		return r.a.Unwrap()
	case tagB:
		r.b.drop()
		return fallback
	default:
		violate(ErrInvalidState, "Result.UnwrapOr on Invalid")
	}
	panic("unreachable")
}

// UnwrapErrOr consumes r and returns the error value, or fallback if r
// is Ok. The success value is destroyed. Panics only if r is Invalid.
func (r *Result[T, E]) UnwrapErrOr(fallback E) E {
	switch consume(&r.t) {
	case tagA:
		r.a.drop()
		return fallback
	case tagB:
		return r.b.Unwrap()
	default:
		violate(ErrInvalidState, "Result.UnwrapErrOr on Invalid")
	}
	panic("unreachable")
}

// Ok consumes r and keeps only the success side.
func (r *Result[T, E]) Ok() Option[T] {
	switch consume(&r.t) {
	case tagA:
		return Some(r.a.Unwrap())
	case tagB:
		r.b.drop()
		return None[T]()
	default:
		violate(ErrInvalidState, "Result.Ok on Invalid")
	}
	panic("unreachable")
}

// Err consumes r and keeps only the error side.
func (r *Result[T, E]) Err() Option[E] {
	switch consume(&r.t) {
	case tagA:
		r.a.drop()
		return None[E]()
	case tagB:
		return Some(r.b.Unwrap())
	default:
		violate(ErrInvalidState, "Result.Err on Invalid")
	}
	panic("unreachable")
}

// Take moves r into the returned Result and leaves r Invalid.
// Taking from an Invalid Result is legal and yields another Invalid Result.
func (r *Result[T, E]) Take() Result[T, E] {
	n := Result[T, E]{t: consume(&r.t)}
	switch n.t {
	case tagA:
		n.a = NewElement(r.a.Unwrap())
	case tagB:
		n.b = NewElement(r.b.Unwrap())
	}
	return n
}

// Drop destroys whichever side r holds and leaves r Invalid.
func (r *Result[T, E]) Drop() {
	switch consume(&r.t) {
	case tagA:
		r.a.drop()
	case tagB:
		r.b.drop()
	}
}

// MapResult consumes r, applying f to the success value.
// An Err passes through unchanged and f is not called.
func MapResult[T, U, E any](r *Result[T, E], f func(T) U) Result[U, E] {
	switch consume(&r.t) {
	case tagA:
		return Ok[U, E](f(r.a.Unwrap()))
	case tagB:
		return Err[U](r.b.Unwrap())
	default:
		violate(ErrInvalidState, "MapResult on Invalid")
	}
	panic("unreachable")
}

// MapErrResult consumes r, applying f to the error value.
// An Ok passes through unchanged and f is not called.
func MapErrResult[T, E, F any](r *Result[T, E], f func(E) F) Result[T, F] {
	switch consume(&r.t) {
	case tagA:
		return Ok[T, F](r.a.Unwrap())
	case tagB:
		return Err[T](f(r.b.Unwrap()))
	default:
		violate(ErrInvalidState, "MapErrResult on Invalid")
	}
	panic("unreachable")
}

// FlatMapResult consumes r and sequences f on the success value.
func FlatMapResult[T, U, E any](r *Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	switch consume(&r.t) {
	case tagA:
		return f(r.a.Unwrap())
	case tagB:
		return Err[U](r.b.Unwrap())
	default:
		violate(ErrInvalidState, "FlatMapResult on Invalid")
	}
	panic("unreachable")
}

// MatchResult consumes r, calling onOk or onErr.
func MatchResult[T, E, R any](r *Result[T, E], onOk func(T) R, onErr func(E) R) R {
	switch consume(&r.t) {
	case tagA:
		return onOk(r.a.Unwrap())
	case tagB:
		return onErr(r.b.Unwrap())
	default:
		violate(ErrInvalidState, "MatchResult on Invalid")
	}
	panic("unreachable")
}

// Try runs f and captures its (value, error) pair as a Result.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Into consumes r and returns it in Go's (value, error) convention.
func Into[T any](r *Result[T, error]) (T, error) {
	switch consume(&r.t) {
	case tagA:
		return r.a.Unwrap(), nil
	case tagB:
		var zero T
		return zero, r.b.Unwrap()
	default:
		violate(ErrInvalidState, "Into on Invalid")
	}
	panic("unreachable")
}
