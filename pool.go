// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"math/bits"
	"sync"
)

// SlotPool recycles backing arrays for Vectors of T.
//
// Arrays are bucketed by power-of-two capacity. A Vector configured with
// WithSlotPool acquires from the pool when it grows and releases its old
// array after the live prefix has been moved out. Released arrays are
// zeroed before reuse so no element outlives its owner through the pool.
//
// SlotPool is safe for concurrent use; the Vectors using it are not.
type SlotPool[T any] struct {
	classes [bits.UintSize]sync.Pool
}

// NewSlotPool returns an empty SlotPool.
func NewSlotPool[T any]() *SlotPool[T] {
	return new(SlotPool[T])
}

// Acquire returns an array of length n whose capacity is the next power
// of two. All n slots hold the zero T.
func (p *SlotPool[T]) Acquire(n int) []T {
	if n <= 0 {
		return nil
	}
	class := bits.Len(uint(n - 1))
	if v := p.classes[class].Get(); v != nil {
		s := *v.(*[]T)
		return s[:n]
	}
	return make([]T, n, 1<<class)
}

// Release returns s to the pool. Arrays whose capacity is not a power of
// two did not come from Acquire and are dropped.
func (p *SlotPool[T]) Release(s []T) {
	c := cap(s)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	s = s[:c]
	clear(s)
	p.classes[bits.Len(uint(c-1))].Put(&s)
}
