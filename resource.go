// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// Scoped ownership helpers. Release runs on the way out whether use
// returns or panics; panics are never recovered here.

// Using passes v to use and then destroys v.
func Using[T, A any](v T, use func(*T) A) A {
	defer dropValue(&v)
	return use(&v)
}

// Bracket acquires a resource, passes it to use, and always releases it.
// If acquire fails, use and release are not called and its error is
// returned as Err.
func Bracket[R, A, E any](
	acquire func() Result[R, E],
	release func(*R),
	use func(*R) A,
) Result[A, E] {
	acquired := acquire()
	if acquired.IsErr() {
		return Err[A](acquired.UnwrapErr())
	}
	res := acquired.Unwrap()
	defer release(&res)
	return Ok[A, E](use(&res))
}
