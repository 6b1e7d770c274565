// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encoding never consumes the encoded value. Encoding an Invalid Option
// returns an error wrapping ErrInvalidState instead of panicking, since
// encoders are usually driven by reflection far from the owning code.
// Decoding overwrites the receiver; a previous payload is dropped first.
// The marshal methods have value receivers so that Option and Vector
// fields encode without being addressable.

// MarshalJSON encodes Some(v) as v and None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	switch o.t {
	case tagA:
		return json.Marshal(o.a.Get())
	case tagB:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("%w: marshal Option", ErrInvalidState)
	}
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	o.Drop()
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalYAML encodes Some(v) as v and None as null.
func (o Option[T]) MarshalYAML() (any, error) {
	switch o.t {
	case tagA:
		return o.a.Get(), nil
	case tagB:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: marshal Option", ErrInvalidState)
	}
}

// UnmarshalYAML decodes a null node as None and anything else as Some.
// yaml.v3 itself skips unmarshalers for null nodes, so a null or missing
// field leaves the Option as it was; only direct calls see the null case.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	o.Drop()
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON encodes the live elements as an array.
func (v Vector[T]) MarshalJSON() ([]byte, error) {
	s := v.Slice().Raw()
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON drops the current elements and pushes each decoded one.
// It fails with ErrAllocFailed if the buffer cannot hold them all.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	return v.load(items)
}

// MarshalYAML encodes the live elements as a sequence.
func (v Vector[T]) MarshalYAML() (any, error) {
	s := v.Slice().Raw()
	if s == nil {
		s = []T{}
	}
	return s, nil
}

// UnmarshalYAML drops the current elements and pushes each decoded one.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	return v.load(items)
}

func (v *Vector[T]) load(items []T) error {
	v.Clear()
	if err := v.Grow(len(items)); err != nil {
		return fmt.Errorf("decode %d elements: %w", len(items), err)
	}
	v.PushSlice(SliceOf(items))
	return nil
}
