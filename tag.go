// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own

// tag discriminates the live case of a sum type.
//
// tagInvalid is the zero value: a freshly declared Option or Result and
// one that has been moved from or consumed are indistinguishable, and
// both are unusable except for Take and Drop.
type tag uint8

const (
	tagInvalid tag = iota
	tagA
	tagB
)

func (t tag) String() string {
	switch t {
	case tagA:
		return "A"
	case tagB:
		return "B"
	default:
		return "Invalid"
	}
}

// consume snapshots *t and resets it to tagInvalid.
// Every consuming operation calls consume before it touches the payload,
// so a panic raised afterwards leaves the value inert rather than live.
func consume(t *tag) tag {
	s := *t
	*t = tagInvalid
	return s
}
