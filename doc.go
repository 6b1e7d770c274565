// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package own provides single-owner value containers and growable buffers
// with explicit lifetimes.
//
// Every container in the package has exactly one owner at a time. Moving
// a value out (Take, Unwrap, any consuming call) leaves the source in a
// state that can only be moved again or dropped; touching it otherwise is
// a contract violation and panics. Nothing is copied implicitly: Clone is
// the only copy, and it is fallible.
//
// # Two Error Classes
//
// Expected conditions are returned:
//
//   - Allocation refusal: Push returns Err holding the rejected value,
//     TryReserve and Reserve return false, Clone returns [ErrAllocFailed],
//     [Vector.Grow] also reports [ErrCapacityExceeded]
//   - Lookups that may miss: [Vector.Get], [Slice.TryGet], [Vector.Pop]
//     return None
//
// Contract violations panic with a [*Violation] whose Err is one of
// [ErrInvalidState], [ErrWrongVariant], [ErrOutOfRange],
// [ErrLengthMismatch], [ErrEmpty] or [ErrPoolMismatch], and whose File
// and Line point at the offending call. [SetFaultLogger] records
// violations through log/slog before the panic fires. The package never
// recovers a panic.
//
// # Sum Types
//
// [Option] (Some / None) and [Result] (Ok / Err) share one discipline: a
// three-state tag whose zero value is Invalid. Every consuming operation
// snapshots the tag, resets it to Invalid, and only then moves the payload
// out, so a value is read destructively exactly once.
//
//   - [Some], [None], [Ok], [Err]: Constructors
//   - IsSome / IsNone / IsOk / IsErr / IsValid: Non-consuming queries
//   - Unwrap, Expect, UnwrapOr, UnwrapErr, UnwrapErrOr, Get: Consuming accessors
//   - [Result.Ok], [Result.Err]: Keep one side as an Option
//   - [MapOption], [FlatMapOption], [MatchOption], [OkOr]: Option combinators
//   - [MapResult], [MapErrResult], [FlatMapResult], [MatchResult]: Result combinators
//   - [OptionEqual], [ResultEqual]: Tag-then-payload equality
//   - [Try], [Into]: Bridge to Go's (value, error) convention
//
// Consuming methods have pointer receivers; bind a returned Option or
// Result to a variable before consuming it.
//
// # Buffers
//
// [Vector] owns a heap node of capacity slots of which the first Len are
// live. A nil node stands for capacity 0. Growth reallocates and moves the
// live prefix as a block; only slots past the prefix are ever written by
// push, and only the live prefix is ever dropped.
//
//   - [NewVector] with [WithAllocator], [WithCapacity], [WithGrowth], [WithSlotPool]
//   - [Allocator]: Byte accounting; [Heap] never refuses, [NewBudget] enforces a limit
//   - [SlotPool]: Recycles backing arrays by power-of-two capacity
//
// # Views and Iterators
//
// [Slice] is a non-owning (pointer, length) view. Sub-ranging clamps and
// never panics; indexed access panics out of range and TryGet does not.
// Views taken from a Vector dangle after it reallocates.
//
// [Iterator] has one primitive, Next, returning None on exhaustion.
// Combinators pull lazily and never materialize intermediate results:
//
//   - [MapIter], [FirstN], [Chain], [Filter], [Enumerate]: Lazy adapters
//   - [ForEach], [Fold], [Count], [CollectVector]: Terminal consumers
//   - [Seq]: Adapt to iter.Seq for range-over-func
//
// # Ownership Primitives
//
//   - [Box]: Single owner of one heap value
//   - [RC]: Non-atomic shared owner; Unwrap pulls the value from every holder
//   - [Using], [Bracket]: Scoped release
//
// Values implementing [Dropper] have Drop called exactly once when their
// owner destroys them, and never when they are moved out.
//
// # Concurrency
//
// None of the containers are safe for concurrent use. Ownership, not
// locking, rules out shared mutation; code that shares an [RC] across
// goroutines must serialize its handles itself.
//
// # Example
//
//	v := own.NewVector[int]()
//	defer v.Free()
//	for i := range 3 {
//		r := v.Push(i + 1)
//		r.Unwrap()
//	}
//	sum := own.Fold(own.FirstN(v.Iter(), 2), 0, func(acc, x int) int {
//		return acc + x
//	})
//	// sum == 3
//	last := v.Pop()
//	_ = last.Unwrap() // 3
package own
