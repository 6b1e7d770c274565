// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/own"
)

// push pushes every x and requires each push to succeed.
func push[T any](t *testing.T, v *own.Vector[T], xs ...T) {
	t.Helper()
	for _, x := range xs {
		r := v.Push(x)
		require.True(t, r.IsOk(), "push rejected")
		r.Drop()
	}
}

// pop pops once and requires a value.
func pop[T any](t *testing.T, v *own.Vector[T]) T {
	t.Helper()
	o := v.Pop()
	require.True(t, o.IsSome(), "pop on empty vector")
	return o.Unwrap()
}

func TestVectorPushPopScenario(t *testing.T) {
	var v own.Vector[int]
	assert.Equal(t, 0, v.Cap())

	for _, x := range []int{1, 2, 3} {
		r := v.Push(x)
		assert.True(t, r.IsOk())
	}
	assert.Equal(t, 3, v.Len())
	capAfterPush := v.Cap()

	assert.Equal(t, 3, pop(t, &v))
	assert.Equal(t, 2, pop(t, &v))
	assert.Equal(t, 1, pop(t, &v))
	empty := v.Pop()
	assert.True(t, empty.IsNone())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, capAfterPush, v.Cap())
}

func TestVectorNilNodeBehavesEmpty(t *testing.T) {
	var v own.Vector[string]
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Slice().Len())
	g := v.Get(0)
	assert.True(t, g.IsNone())
	l := v.Last()
	assert.True(t, l.IsNone())
	v.Clear()
	v.Truncate(3)
	v.Free()
	assert.True(t, v.TryReserve(0))
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 0, own.Count(v.Iter()))
}

func TestVectorPushRejectsWhenBudgetExhausted(t *testing.T) {
	budget := own.NewBudget(32) // four ints
	v := own.NewVector[int](own.WithAllocator(budget))
	push(t, &v, 1, 2, 3, 4)
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, uintptr(32), budget.Used())

	r := v.Push(5)
	require.True(t, r.IsErr())
	assert.Equal(t, 5, r.UnwrapErr(), "rejected value is handed back")
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice().Raw())

	v.Free()
	assert.Zero(t, budget.Used())
}

func TestVectorTryReserve(t *testing.T) {
	v := own.NewVector[int]()
	push(t, &v, 1, 2, 3)

	require.True(t, v.TryReserve(10))
	assert.Equal(t, 10, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Slice().Raw())

	// Shrinking clamps to the length.
	require.True(t, v.TryReserve(1))
	assert.Equal(t, 3, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, v.Slice().Raw())

	require.True(t, v.TryReserve(-5))
	assert.Equal(t, 3, v.Cap())
}

func TestVectorTryReserveZeroFreesNode(t *testing.T) {
	budget := own.NewBudget(1 << 10)
	v := own.NewVector[int64](own.WithAllocator(budget), own.WithCapacity(16))
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, uintptr(128), budget.Used())

	require.True(t, v.TryReserve(0))
	assert.Equal(t, 0, v.Cap())
	assert.Zero(t, budget.Used())
}

func TestVectorTryReserveRefused(t *testing.T) {
	v := own.NewVector[int](own.WithAllocator(own.NewBudget(32)))
	push(t, &v, 7)
	assert.False(t, v.TryReserve(100))
	assert.Equal(t, []int{7}, v.Slice().Raw())
	assert.False(t, v.Reserve(-1))
}

func TestVectorWithCapacityRefused(t *testing.T) {
	v := own.NewVector[int](own.WithAllocator(own.NewBudget(8)), own.WithCapacity(4))
	assert.Equal(t, 0, v.Cap())
}

func TestVectorGrowth(t *testing.T) {
	v := own.NewVector[int](own.WithGrowth(3))
	push(t, &v, 1)
	assert.Equal(t, 4, v.Cap())
	push(t, &v, 2, 3, 4, 5)
	assert.Equal(t, 12, v.Cap())

	w := own.NewVector[int](own.WithGrowth(0))
	push(t, &w, 1, 2, 3, 4, 5)
	assert.Equal(t, 8, w.Cap())
}

func TestVectorResize(t *testing.T) {
	log := &dropLog{}
	v := own.NewVector[tracked]()
	push(t, &v, tracked{id: 1, log: log}, tracked{id: 2, log: log})

	require.True(t, v.Resize(5, tracked{id: 9, log: log}))
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 9, v.At(4).id)
	assert.Empty(t, log.ids)

	require.True(t, v.Resize(1, tracked{}))
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, []int{2, 9, 9, 9}, log.ids)
}

func TestVectorResizeRefused(t *testing.T) {
	v := own.NewVector[int](own.WithAllocator(own.NewBudget(32)))
	push(t, &v, 1)
	assert.False(t, v.Resize(100, 0))
	assert.Equal(t, 1, v.Len())
}

func TestVectorClearKeepsCapacity(t *testing.T) {
	log := &dropLog{}
	v := own.NewVector[tracked]()
	push(t, &v, tracked{id: 1, log: log}, tracked{id: 2, log: log}, tracked{id: 3, log: log})
	c := v.Cap()
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, c, v.Cap())
	assert.Equal(t, []int{1, 2, 3}, log.ids)
}

func TestVectorPopDoesNotDrop(t *testing.T) {
	log := &dropLog{}
	v := own.NewVector[tracked]()
	push(t, &v, tracked{id: 1, log: log})
	x := pop(t, &v)
	assert.Equal(t, 1, x.id)
	v.Free()
	assert.Empty(t, log.ids)
}

func TestVectorFreeDropsLivePrefixOnly(t *testing.T) {
	log := &dropLog{}
	v := own.NewVector[tracked](own.WithCapacity(8))
	push(t, &v, tracked{id: 1, log: log}, tracked{id: 2, log: log})
	v.Free()
	assert.Equal(t, []int{1, 2}, log.ids)
	assert.Equal(t, 0, v.Cap())
}

func TestVectorInsertRemove(t *testing.T) {
	v := own.NewVector[string]()
	push(t, &v, "a", "c")
	r := v.Insert(1, "b")
	require.True(t, r.IsOk())
	r = v.Insert(3, "d")
	require.True(t, r.IsOk())
	assert.Equal(t, []string{"a", "b", "c", "d"}, v.Slice().Raw())

	assert.Equal(t, "a", v.Remove(0))
	assert.Equal(t, []string{"b", "c", "d"}, v.Slice().Raw())

	assert.Equal(t, "b", v.SwapRemove(0))
	assert.Equal(t, []string{"d", "c"}, v.Slice().Raw())

	requireViolation(t, own.ErrOutOfRange, func() { v.Insert(5, "x") })
	requireViolation(t, own.ErrOutOfRange, func() { v.Remove(2) })
	requireViolation(t, own.ErrOutOfRange, func() { v.SwapRemove(-1) })
}

func TestVectorInsertRefused(t *testing.T) {
	v := own.NewVector[int](own.WithAllocator(own.NewBudget(32)))
	push(t, &v, 1, 2, 3, 4)
	r := v.Insert(0, 0)
	require.True(t, r.IsErr())
	assert.Equal(t, 0, r.UnwrapErr())
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice().Raw())
}

func TestVectorIndexAccess(t *testing.T) {
	v := own.NewVector[int]()
	push(t, &v, 10, 20)
	*v.At(1) += 5
	assert.Equal(t, 25, *v.At(1))

	g := v.Get(0)
	assert.Equal(t, 10, g.Unwrap())
	g = v.Get(2)
	assert.True(t, g.IsNone())
	g = v.Get(-1)
	assert.True(t, g.IsNone())
	l := v.Last()
	assert.Equal(t, 25, l.Unwrap())

	requireViolation(t, own.ErrOutOfRange, func() { v.At(2) })
	requireViolation(t, own.ErrOutOfRange, func() { v.Set(-1, 0) })
}

func TestVectorSetDropsPrevious(t *testing.T) {
	log := &dropLog{}
	v := own.NewVector[tracked]()
	push(t, &v, tracked{id: 1, log: log})
	v.Set(0, tracked{id: 2, log: log})
	assert.Equal(t, []int{1}, log.ids)
	assert.Equal(t, 2, v.At(0).id)
}

func TestVectorSliceRange(t *testing.T) {
	v := own.NewVector[int]()
	push(t, &v, 0, 1, 2, 3, 4)
	assert.Equal(t, []int{1, 2}, v.SliceRange(1, 3).Raw())
	assert.Equal(t, []int{3, 4}, v.SliceRange(3, 99).Raw())
	assert.Equal(t, 0, v.SliceRange(9, 12).Len())
	assert.Equal(t, 0, v.SliceRange(3, 1).Len())
}

func TestVectorPushSlice(t *testing.T) {
	v := own.NewVector[int]()
	require.True(t, v.PushSlice(own.SliceOf([]int{1, 2})))
	require.True(t, v.PushSlice(own.Slice[int]{}))
	assert.Equal(t, []int{1, 2}, v.Slice().Raw())

	// Appending a view of itself forces growth past the old buffer.
	require.True(t, v.TryReserve(2))
	require.True(t, v.PushSlice(v.Slice()))
	assert.Equal(t, []int{1, 2, 1, 2}, v.Slice().Raw())

	require.True(t, v.PushSlice(v.SliceRange(0, 2)))
	assert.Equal(t, []int{1, 2, 1, 2, 1, 2}, v.Slice().Raw())
}

func TestVectorPushSliceRefused(t *testing.T) {
	v := own.NewVector[int](own.WithAllocator(own.NewBudget(16)))
	assert.False(t, v.PushSlice(own.SliceOf([]int{1, 2, 3})))
	assert.Equal(t, 0, v.Len())
}

func TestVectorShrinkToFit(t *testing.T) {
	v := own.NewVector[int](own.WithCapacity(32))
	push(t, &v, 1, 2)
	require.True(t, v.ShrinkToFit())
	assert.Equal(t, 2, v.Cap())
}

func TestVectorTake(t *testing.T) {
	v := own.NewVector[int]()
	push(t, &v, 1, 2)
	w := v.Take()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, []int{1, 2}, w.Slice().Raw())

	// The moved-from handle is reusable.
	push(t, &v, 3)
	assert.Equal(t, []int{3}, v.Slice().Raw())
	assert.Equal(t, []int{1, 2}, w.Slice().Raw())
}

func TestVectorClone(t *testing.T) {
	v := own.NewVector[int](own.WithCapacity(10))
	push(t, &v, 1, 2, 3)
	r := v.Clone()
	require.True(t, r.IsOk())
	w := r.Unwrap()
	assert.Equal(t, 3, w.Cap())
	*w.At(0) = 100
	assert.Equal(t, 1, *v.At(0), "clone does not alias")

	var empty own.Vector[int]
	re := empty.Clone()
	ew := re.Unwrap()
	assert.Equal(t, 0, ew.Cap())
}

func TestVectorCloneRefused(t *testing.T) {
	budget := own.NewBudget(24)
	v := own.NewVector[int](own.WithAllocator(budget), own.WithCapacity(2))
	push(t, &v, 1, 2)
	r := v.Clone()
	require.True(t, r.IsErr())
	assert.ErrorIs(t, r.UnwrapErr(), own.ErrAllocFailed)
}

func TestVectorSlotPool(t *testing.T) {
	pool := own.NewSlotPool[int]()
	v := own.NewVector[int](own.WithSlotPool(pool))
	for i := range 100 {
		push(t, &v, i)
	}
	for i := range 100 {
		assert.Equal(t, i, *v.At(i))
	}
	v.Free()

	w := own.NewVector[int](own.WithSlotPool(pool), own.WithCapacity(3))
	assert.Equal(t, 3, w.Cap())
	for _, x := range w.Slice().Raw() {
		assert.Zero(t, x)
	}
	push(t, &w, 1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, w.Slice().Raw())
}

func TestVectorReallocPreservesPrefix(t *testing.T) {
	v := own.NewVector[int]()
	push(t, &v, 5, 6, 7)
	before := slices.Clone(v.Slice().Raw())
	require.True(t, v.TryReserve(64))
	after := v.Slice().Raw()
	assert.Equal(t, before, after)
	assert.Equal(t, 3, v.Len())
}

func TestVectorGrow(t *testing.T) {
	v := own.NewVector[int64](own.WithAllocator(own.NewBudget(64)))
	require.NoError(t, v.Grow(3))
	assert.GreaterOrEqual(t, v.Cap(), 3)
	assert.Equal(t, 0, v.Len())

	assert.ErrorIs(t, v.Grow(-1), own.ErrCapacityExceeded)
	assert.ErrorIs(t, v.Grow(int(^uint(0)>>1)), own.ErrCapacityExceeded)
	assert.ErrorIs(t, v.Grow(100), own.ErrAllocFailed)
	assert.Equal(t, 4, v.Cap(), "failed Grow leaves the buffer alone")
}

func TestVectorReserveOverflow(t *testing.T) {
	v := own.NewVector[int]()
	push(t, &v, 1)
	assert.False(t, v.Reserve(math.MaxInt))
	assert.False(t, v.Reserve(math.MaxInt-1))
	assert.Equal(t, 4, v.Cap())
	assert.Equal(t, []int{1}, v.Slice().Raw())

	assert.ErrorIs(t, v.Grow(math.MaxInt), own.ErrCapacityExceeded)
	assert.True(t, v.Reserve(3), "spare capacity still satisfies small requests")
}

func TestVectorSlotPoolTypeMismatch(t *testing.T) {
	requireViolation(t, own.ErrPoolMismatch, func() {
		own.NewVector[int](own.WithSlotPool(own.NewSlotPool[string]()))
	})
	v := own.NewVector[string](own.WithSlotPool(own.NewSlotPool[string]()))
	push(t, &v, "a")
	assert.Equal(t, 1, v.Len())
}
