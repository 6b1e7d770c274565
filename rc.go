// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// rcNode is the shared block behind a set of RC handles.
type rcNode[T any] struct {
	count int
	value Option[T]
}

// RC is a single-threaded reference-counted owner of a T.
//
// Clone adds a holder; Drop removes one, and the last holder destroys the
// value. Unwrap pulls the value out from under every holder: afterwards
// no handle sharing the node reports HasValue.
//
// The count is not atomic. Code that shares RC handles across goroutines
// must serialize Clone, Drop and Unwrap itself.
type RC[T any] struct {
	n *rcNode[T]
}

// NewRC moves v into a fresh shared node with a count of one.
func NewRC[T any](v T) RC[T] {
	return RC[T]{n: &rcNode[T]{count: 1, value: Some(v)}}
}

// Clone returns another handle to the same node and increments the count.
// Cloning an empty handle yields an empty handle.
func (r *RC[T]) Clone() RC[T] {
	if r.n != nil {
		r.n.count++
	}
	return RC[T]{n: r.n}
}

// HasValue reports whether r can still reach a value.
func (r *RC[T]) HasValue() bool {
	return r.n != nil && r.n.value.IsSome()
}

// Count returns the number of handles sharing r's node, or 0 if r is
// empty.
func (r *RC[T]) Count() int {
	if r.n == nil {
		return 0
	}
	return r.n.count
}

// Get returns a pointer to the shared value.
// Panics if r is empty or the value was unwrapped through another handle.
func (r *RC[T]) Get() *T {
	if !r.HasValue() {
		violate(ErrEmpty, "RC.Get without value")
	}
	return r.n.value.Peek()
}

// Unwrap moves the shared value out, releases r, and leaves every other
// handle on the node without a value.
// Panics if r is empty or the value was already unwrapped.
func (r *RC[T]) Unwrap() T {
	if !r.HasValue() {
		violate(ErrEmpty, "RC.Unwrap without value")
	}
	v := r.n.value.Unwrap()
	r.release()
	return v
}

// Take moves r into the returned handle and leaves r empty.
// The count is unchanged.
func (r *RC[T]) Take() RC[T] {
	n := RC[T]{n: r.n}
	r.n = nil
	return n
}

// Drop releases r. The last handle destroys the value if it is still
// there. Dropping an empty handle does nothing.
func (r *RC[T]) Drop() {
	if r.n != nil {
		r.release()
	}
}

func (r *RC[T]) release() {
	n := r.n
	r.n = nil
	n.count--
	if n.count == 0 {
		n.value.Drop()
	}
}
