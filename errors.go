// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "errors"

// Recoverable conditions. These are returned, never panicked.
var (
	// ErrAllocFailed indicates that an Allocator refused a reservation.
	ErrAllocFailed = errors.New("own: allocation failed")

	// ErrCapacityExceeded indicates that a requested capacity cannot be
	// represented (negative or overflowing the element size).
	ErrCapacityExceeded = errors.New("own: capacity exceeded")
)

// Contract violations. These are carried by a *Violation panic value.
var (
	// ErrInvalidState indicates use of a value after it was moved or consumed.
	ErrInvalidState = errors.New("own: use of moved or consumed value")

	// ErrWrongVariant indicates unwrapping the case a sum type does not hold.
	ErrWrongVariant = errors.New("own: unwrap of wrong variant")

	// ErrOutOfRange indicates indexed access outside [0, len).
	ErrOutOfRange = errors.New("own: index out of range")

	// ErrLengthMismatch indicates a bulk copy or move between views of
	// different lengths.
	ErrLengthMismatch = errors.New("own: length mismatch")

	// ErrEmpty indicates dereferencing an owner that holds no value.
	ErrEmpty = errors.New("own: dereference of empty owner")

	// ErrPoolMismatch indicates a SlotPool whose element type differs from
	// the Vector it was configured on.
	ErrPoolMismatch = errors.New("own: slot pool element type mismatch")
)
