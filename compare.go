// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// OptionEqual reports whether a and b hold the same case and, when both
// are Some, equal values. Neither operand is consumed.
// Panics if either operand is Invalid.
func OptionEqual[T comparable](a, b *Option[T]) bool {
	if a.t == tagInvalid || b.t == tagInvalid {
		violate(ErrInvalidState, "OptionEqual on Invalid")
	}
	if a.t != b.t {
		return false
	}
	if a.t == tagB {
		return true
	}
	return *a.a.Get() == *b.a.Get()
}

// ResultEqual reports whether a and b hold the same case with equal
// payloads. Neither operand is consumed.
// Panics if either operand is Invalid.
func ResultEqual[T, E comparable](a, b *Result[T, E]) bool {
	if a.t == tagInvalid || b.t == tagInvalid {
		violate(ErrInvalidState, "ResultEqual on Invalid")
	}
	if a.t != b.t {
		return false
	}
	if a.t == tagA {
		return *a.a.Get() == *b.a.Get()
	}
	return *a.b.Get() == *b.b.Get()
}
