// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// node is the heap block behind a Vector.
// len(slots) is the capacity; slots[:length] are live and
// slots[length:] hold the zero T and are never dropped.
type node[T any] struct {
	slots  []T
	length int
}

// Vector is a growable contiguous buffer that owns its elements.
//
// A nil node stands for capacity 0; every method treats it as an empty
// buffer. Vector is move-only by convention: assigning a Vector aliases
// the buffer, so transfer ownership with Take and copy with Clone.
//
// Views and iterators obtained from a Vector are invalidated by any call
// that reallocates (Push, Insert, Reserve, TryReserve, Resize,
// ShrinkToFit, PushSlice) or frees it.
type Vector[T any] struct {
	n   *node[T]
	cfg *vectorConfig
}

// NewVector returns an empty Vector configured by opts.
// Panics with ErrPoolMismatch if a WithSlotPool pool holds another
// element type.
func NewVector[T any](opts ...VectorOption) Vector[T] {
	v := Vector[T]{cfg: applyVectorOptions(opts)}
	if v.cfg.pool != nil {
		if _, ok := v.cfg.pool.(*SlotPool[T]); !ok {
			violate(ErrPoolMismatch, "NewVector[%s] with %T", reflect.TypeFor[T](), v.cfg.pool)
		}
	}
	if v.cfg.capacity > 0 {
		v.TryReserve(v.cfg.capacity)
	}
	return v
}

func (v *Vector[T]) config() *vectorConfig {
	if v.cfg == nil {
		v.cfg = &defaultConfig
	}
	return v.cfg
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v.n == nil {
		return 0
	}
	return v.n.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v.n == nil {
		return 0
	}
	return len(v.n.slots)
}

// IsEmpty reports whether v has no live elements.
func (v *Vector[T]) IsEmpty() bool { return v.Len() == 0 }

// Push appends x. On success it returns Ok; if the buffer cannot grow it
// returns Err holding x, so the caller gets the value back.
func (v *Vector[T]) Push(x T) Result[struct{}, T] {
	if !v.Reserve(1) {
		return Err[struct{}](x)
	}
	v.n.slots[v.n.length] = x
	v.n.length++
	return Ok[struct{}, T](struct{}{})
}

// PushSlice appends a copy of every element of s, or nothing if the
// buffer cannot grow. s may view v itself.
func (v *Vector[T]) PushSlice(s Slice[T]) bool {
	src := s.Raw()
	if len(src) == 0 {
		return true
	}
	length := v.Len()
	if len(src) > v.Cap()-length {
		return v.realloc(v.grownCap(len(src)), src)
	}
	copy(v.n.slots[length:], src)
	v.n.length += len(src)
	return true
}

// Pop removes the last element and returns it, or None if v is empty.
// The element is moved out, not dropped. Capacity is unchanged.
func (v *Vector[T]) Pop() Option[T] {
	if v.Len() == 0 {
		return None[T]()
	}
	v.n.length--
	x := v.n.slots[v.n.length]
	var zero T
	v.n.slots[v.n.length] = zero
	return Some(x)
}

// Insert places x at index i, shifting later elements up.
// i must be in [0, Len()]. If the buffer cannot grow, Err returns x.
func (v *Vector[T]) Insert(i int, x T) Result[struct{}, T] {
	if i < 0 || i > v.Len() {
		violate(ErrOutOfRange, "Vector.Insert index %d with length %d", i, v.Len())
	}
	if !v.Reserve(1) {
		return Err[struct{}](x)
	}
	s := v.n.slots
	copy(s[i+1:v.n.length+1], s[i:v.n.length])
	s[i] = x
	v.n.length++
	return Ok[struct{}, T](struct{}{})
}

// Remove moves out the element at index i, shifting later elements down.
// Panics if i is out of range.
func (v *Vector[T]) Remove(i int) T {
	v.check(i, "Vector.Remove")
	s := v.n.slots
	x := s[i]
	copy(s[i:], s[i+1:v.n.length])
	v.n.length--
	var zero T
	s[v.n.length] = zero
	return x
}

// SwapRemove moves out the element at index i, replacing it with the last
// element. It does not preserve order. Panics if i is out of range.
func (v *Vector[T]) SwapRemove(i int) T {
	v.check(i, "Vector.SwapRemove")
	s := v.n.slots
	x := s[i]
	v.n.length--
	s[i] = s[v.n.length]
	var zero T
	s[v.n.length] = zero
	return x
}

// At returns a pointer to the element at index i.
// Panics if i is out of range. The pointer is invalidated by reallocation.
func (v *Vector[T]) At(i int) *T {
	v.check(i, "Vector.At")
	return &v.n.slots[i]
}

// Set drops the element at index i and stores x in its place.
// Panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) {
	v.check(i, "Vector.Set")
	dropValue(&v.n.slots[i])
	v.n.slots[i] = x
}

// Get returns a copy of the element at index i, or None if i is out of
// range. Get never panics.
func (v *Vector[T]) Get(i int) Option[T] {
	if i < 0 || i >= v.Len() {
		return None[T]()
	}
	return Some(v.n.slots[i])
}

// Last returns a copy of the last element, or None if v is empty.
func (v *Vector[T]) Last() Option[T] {
	return v.Get(v.Len() - 1)
}

// TryReserve sets the capacity to max(n, Len()) and reports whether the
// allocator agreed. Capacity may shrink; live elements never move out of
// the buffer. A resulting capacity of 0 frees the node.
func (v *Vector[T]) TryReserve(n int) bool {
	target := max(n, v.Len())
	if target == v.Cap() {
		return true
	}
	return v.realloc(target, nil)
}

// Reserve makes room for at least additional more elements, growing
// geometrically, and reports whether it succeeded.
func (v *Vector[T]) Reserve(additional int) bool {
	if additional < 0 || additional > maxLen-v.Len() {
		return false
	}
	if additional <= v.Cap()-v.Len() {
		return true
	}
	return v.realloc(v.grownCap(additional), nil)
}

// Grow is the error-returning form of Reserve. It fails with
// ErrCapacityExceeded if additional is negative or the resulting capacity
// cannot be represented, and with ErrAllocFailed if the allocator refuses.
func (v *Vector[T]) Grow(additional int) error {
	if additional < 0 || additional > maxLen-v.Len() {
		return fmt.Errorf("%w: grow by %d", ErrCapacityExceeded, additional)
	}
	need := v.Len() + additional
	if _, ok := slotBytes(need, unsafe.Sizeof(*new(T))); !ok {
		return fmt.Errorf("%w: %d slots", ErrCapacityExceeded, need)
	}
	if !v.Reserve(additional) {
		return fmt.Errorf("%w: %d slots", ErrAllocFailed, need)
	}
	return nil
}

// ShrinkToFit releases every unused slot.
func (v *Vector[T]) ShrinkToFit() bool {
	return v.TryReserve(v.Len())
}

// Resize changes the length to n. Growing fills the new slots with copies
// of fill; shrinking drops the removed suffix. It reports false, leaving
// v unchanged, if the buffer cannot grow.
func (v *Vector[T]) Resize(n int, fill T) bool {
	length := v.Len()
	if n <= length {
		v.Truncate(n)
		return true
	}
	if !v.Reserve(n - length) {
		return false
	}
	s := v.n.slots[length:n]
	for i := range s {
		s[i] = fill
	}
	v.n.length = n
	return true
}

// Truncate drops every element at index n and above.
// It does nothing if n >= Len().
func (v *Vector[T]) Truncate(n int) {
	n = max(n, 0)
	if n >= v.Len() {
		return
	}
	dropRange(v.n.slots[n:v.n.length])
	v.n.length = n
}

// Clear drops every element and keeps the capacity.
func (v *Vector[T]) Clear() { v.Truncate(0) }

// Free drops every element and releases the buffer.
func (v *Vector[T]) Free() {
	v.Clear()
	if v.n != nil {
		v.realloc(0, nil)
	}
}

// Take moves v into the returned Vector and leaves v empty with
// capacity 0. The configuration stays with both.
func (v *Vector[T]) Take() Vector[T] {
	w := Vector[T]{n: v.n, cfg: v.config()}
	v.n = nil
	return w
}

// Clone returns an explicit copy of v with the same configuration and a
// capacity equal to Len(). Elements are copied by assignment.
// It fails with ErrAllocFailed if the allocator refuses.
func (v *Vector[T]) Clone() Result[Vector[T], error] {
	w := Vector[T]{cfg: v.config()}
	length := v.Len()
	if length == 0 {
		return Ok[Vector[T], error](w)
	}
	if !w.realloc(length, v.n.slots[:length]) {
		return Err[Vector[T]](ErrAllocFailed)
	}
	return Ok[Vector[T], error](w)
}

// Slice returns a view over the live elements.
func (v *Vector[T]) Slice() Slice[T] {
	if v.n == nil {
		return Slice[T]{}
	}
	return SliceOf(v.n.slots[:v.n.length:v.n.length])
}

// SliceRange returns the view v.Slice().Sub(b, e).
func (v *Vector[T]) SliceRange(b, e int) Slice[T] {
	return v.Slice().Sub(b, e)
}

// Iter returns an iterator over the live elements.
func (v *Vector[T]) Iter() *SliceIter[T] {
	return v.Slice().Iter()
}

func (v *Vector[T]) check(i int, op string) {
	if i < 0 || i >= v.Len() {
		violate(ErrOutOfRange, "%s index %d with length %d", op, i, v.Len())
	}
}

// maxLen is the largest length a Vector can be asked to reach.
const maxLen = math.MaxInt

// grownCap returns the capacity to grow to when additional more slots are
// needed. additional must not exceed maxLen-Len().
func (v *Vector[T]) grownCap(additional int) int {
	need := v.Len() + additional
	c := v.Cap()
	if c == 0 {
		return max(need, 4)
	}
	g := v.config().growth
	if c > maxLen/g {
		return need
	}
	return max(need, c*g)
}

// realloc moves the live prefix into a buffer of newCap slots, appends
// tail after it, then retires the old buffer. tail may alias the old
// buffer. newCap must be at least Len()+len(tail); 0 frees the node.
func (v *Vector[T]) realloc(newCap int, tail []T) bool {
	cfg := v.config()
	oldCap := v.Cap()
	size := unsafe.Sizeof(*new(T))
	if newCap > oldCap {
		b, ok := slotBytes(newCap-oldCap, size)
		if !ok || !cfg.alloc.Reserve(b) {
			return false
		}
	} else {
		b, _ := slotBytes(oldCap-newCap, size)
		cfg.alloc.Release(b)
	}

	pool, _ := cfg.pool.(*SlotPool[T])
	var old []T
	length := 0
	if v.n != nil {
		old, length = v.n.slots, v.n.length
	}
	if newCap == 0 {
		v.n = nil
		retire(pool, old)
		return true
	}

	var slots []T
	if pool != nil {
		slots = pool.Acquire(newCap)
	} else {
		slots = make([]T, newCap)
	}
	copy(slots, old[:length])
	copy(slots[length:], tail)
	if v.n == nil {
		v.n = &node[T]{}
	}
	v.n.slots = slots
	v.n.length = length + len(tail)
	retire(pool, old)
	return true
}

// retire hands a moved-from buffer back to pool, if any. The live prefix
// has already been moved, so nothing is dropped.
func retire[T any](pool *SlotPool[T], old []T) {
	if pool != nil && old != nil {
		pool.Release(old)
	}
}
