// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import "reflect"

// Dropper is implemented by values that need to release something when
// their owner destroys them. Drop is called exactly once per destroyed
// value and never for a value that was moved out.
//
// When only *T has the method, Drop is called on a copy of the value taken
// just before its slot is zeroed, so it must not rely on the slot address.
type Dropper interface {
	Drop()
}

// Element owns exactly one T.
//
// It is the cell that Option, Result, Box and RC put their payload in.
// Element does not track whether it has been spent; its holder does.
type Element[T any] struct {
	value T
}

// NewElement constructs an Element holding v.
func NewElement[T any](v T) Element[T] {
	return Element[T]{value: v}
}

// Get returns a pointer to the held value.
func (e *Element[T]) Get() *T { return &e.value }

// Unwrap moves the value out, leaving the zero T behind.
func (e *Element[T]) Unwrap() T {
	v := e.value
	var zero T
	e.value = zero
	return v
}

// drop destroys the held value.
func (e *Element[T]) drop() { dropValue(&e.value) }

// dropValue runs the Dropper hook of *p, if any, then zeroes *p.
// Both pointer and value receivers are honored; for pointer element
// types a nil pointer is left alone. p itself never reaches an interface,
// so owners holding hook-free values stay off the heap.
func dropValue[T any](p *T) {
	switch hookOf[T]() {
	case hookValue:
		if d, ok := any(*p).(Dropper); ok && !isNilDropper(d) {
			d.Drop()
		}
	case hookPointer:
		v := *p
		any(&v).(Dropper).Drop()
	}
	var zero T
	*p = zero
}

// dropRange destroys s[i] for every i, in index order.
func dropRange[T any](s []T) {
	if len(s) == 0 {
		return
	}
	if hookOf[T]() == hookNone {
		clear(s)
		return
	}
	for i := range s {
		dropValue(&s[i])
	}
}

// hook classifies where a type's Dropper method lives.
type hook uint8

const (
	hookNone hook = iota
	// T implements Dropper, or T is an interface checked per value.
	hookValue
	// Only *T implements Dropper. The hook runs on the destroyed value.
	hookPointer
)

var dropperType = reflect.TypeFor[Dropper]()

func hookOf[T any]() hook {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch {
	case t.Kind() == reflect.Interface || t.Implements(dropperType):
		return hookValue
	case reflect.PointerTo(t).Implements(dropperType):
		return hookPointer
	}
	return hookNone
}

func isNilDropper(d Dropper) bool {
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
