// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "math"

// Allocator accounts for the storage a Vector holds.
//
// Reserve is asked before a buffer grows by bytes; returning false makes
// the growth fail recoverably (Push returns its input back, TryReserve
// returns false). Release is called with the same byte counts when a
// buffer shrinks or is freed. Allocators are not safe for concurrent use
// unless an implementation says otherwise.
type Allocator interface {
	Reserve(bytes uintptr) bool
	Release(bytes uintptr)
}

type heapAllocator struct{}

func (heapAllocator) Reserve(uintptr) bool { return true }
func (heapAllocator) Release(uintptr)      {}

// Heap is the default Allocator. It never refuses a reservation.
var Heap Allocator = heapAllocator{}

// Budget is an Allocator with a fixed byte limit shared by every buffer
// that uses it.
type Budget struct {
	limit uintptr
	used  uintptr
}

// NewBudget returns a Budget that refuses reservations past limit bytes.
func NewBudget(limit uintptr) *Budget {
	return &Budget{limit: limit}
}

// Reserve implements Allocator.
func (b *Budget) Reserve(bytes uintptr) bool {
	if bytes > b.limit-b.used {
		return false
	}
	b.used += bytes
	return true
}

// Release implements Allocator.
func (b *Budget) Release(bytes uintptr) {
	b.used -= min(bytes, b.used)
}

// Used returns the bytes currently reserved.
func (b *Budget) Used() uintptr { return b.used }

// Limit returns the configured byte limit.
func (b *Budget) Limit() uintptr { return b.limit }

// slotBytes returns n*size, or false if it overflows.
func slotBytes(n int, size uintptr) (uintptr, bool) {
	if n < 0 {
		return 0, false
	}
	if size != 0 && uintptr(n) > math.MaxUint/2/size {
		return 0, false
	}
	return uintptr(n) * size, true
}
