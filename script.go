package nativescript

import (
	"github.com/iov-one/nativescript/errors"
)

// Script is the capability every node of a script tree exposes. The four base
// kinds declared in this package implement it, and so do extension leaves
// that a caller plugs in through the child decoders.
type Script interface {
	// Eval returns true if the script holds for given context. It never
	// fails.
	Eval(ctx AuthContext) bool
	// MarshalCBOR returns the binary, tagged-tuple representation.
	MarshalCBOR() ([]byte, error)
	// MarshalJSON returns the JSON object representation.
	MarshalJSON() ([]byte, error)
}

// Kind identifies one of the base script kinds.
type Kind uint8

// Kind values are the binary tags of the base scripts.
const (
	KindSig     Kind = 0
	KindAll     Kind = 1
	KindAny     Kind = 2
	KindAtLeast Kind = 3

	// KindUnknown is reported for scripts not declared in this package.
	KindUnknown Kind = 255
)

func (k Kind) String() string {
	switch k {
	case KindSig:
		return "Sig"
	case KindAll:
		return "All"
	case KindAny:
		return "Any"
	case KindAtLeast:
		return "AtLeast"
	default:
		return "Unknown"
	}
}

// KindOf returns the kind of given script.
func KindOf(s Script) Kind {
	switch s.(type) {
	case *Sig:
		return KindSig
	case *All:
		return KindAll
	case *Any:
		return KindAny
	case *AtLeast:
		return KindAtLeast
	default:
		return KindUnknown
	}
}

// Sig holds when its key hash is authorized.
type Sig struct {
	keyHash KeyHash
}

var _ Script = (*Sig)(nil)

// NewSig returns a script requiring given key hash to be authorized.
func NewSig(h KeyHash) *Sig {
	return &Sig{keyHash: h}
}

// NewSigFromBytes works like NewSig but accepts the raw key hash bytes.
func NewSigFromBytes(b []byte) (*Sig, error) {
	h, err := NewKeyHash(b)
	if err != nil {
		return nil, err
	}
	return NewSig(h), nil
}

// KeyHash returns the key hash this script requires.
func (s *Sig) KeyHash() KeyHash {
	return s.keyHash
}

// Eval returns true if the key hash is authorized in given context.
func (s *Sig) Eval(ctx AuthContext) bool {
	return ctx.IsAuthorized(s.keyHash)
}

// All holds when every child script holds. All without children holds.
type All struct {
	scripts []Script
}

var _ Script = (*All)(nil)

// NewAll returns a script requiring all given scripts to hold.
func NewAll(scripts ...Script) *All {
	return &All{scripts: copyScripts(scripts)}
}

// Scripts returns the child scripts in their declaration order.
func (s *All) Scripts() []Script {
	return copyScripts(s.scripts)
}

// Eval returns true if every child holds.
func (s *All) Eval(ctx AuthContext) bool {
	for _, child := range s.scripts {
		if !child.Eval(ctx) {
			return false
		}
	}
	return true
}

// Any holds when at least one child script holds. Any without children never
// holds.
type Any struct {
	scripts []Script
}

var _ Script = (*Any)(nil)

// NewAny returns a script requiring any of given scripts to hold.
func NewAny(scripts ...Script) *Any {
	return &Any{scripts: copyScripts(scripts)}
}

// Scripts returns the child scripts in their declaration order.
func (s *Any) Scripts() []Script {
	return copyScripts(s.scripts)
}

// Eval returns true if at least one child holds.
func (s *Any) Eval(ctx AuthContext) bool {
	for _, child := range s.scripts {
		if child.Eval(ctx) {
			return true
		}
	}
	return false
}

// AtLeast holds when the number of child scripts that hold is greater than
// or equal to the required value.
type AtLeast struct {
	required int
	scripts  []Script
}

var _ Script = (*AtLeast)(nil)

// NewAtLeast returns a script requiring at least required of given scripts
// to hold. Required must not be negative and must not exceed the number of
// scripts. Zero required is vacuously satisfied, required equal to the
// number of scripts behaves like All.
func NewAtLeast(required int, scripts ...Script) (*AtLeast, error) {
	if required < 0 {
		return nil, errors.ErrNegativeThreshold.Newf("required %d", required)
	}
	if required > len(scripts) {
		return nil, errors.ErrThresholdExceedsChildren.Newf("required %d of %d scripts", required, len(scripts))
	}
	return &AtLeast{required: required, scripts: copyScripts(scripts)}, nil
}

// Required returns the minimal number of child scripts that must hold.
func (s *AtLeast) Required() int {
	return s.required
}

// Scripts returns the child scripts in their declaration order.
func (s *AtLeast) Scripts() []Script {
	return copyScripts(s.scripts)
}

// Eval counts the children that hold. Every child is evaluated.
func (s *AtLeast) Eval(ctx AuthContext) bool {
	var n int
	for _, child := range s.scripts {
		if child.Eval(ctx) {
			n++
		}
	}
	return n >= s.required
}

// Eval evaluates given script against given context.
func Eval(s Script, ctx AuthContext) bool {
	return s.Eval(ctx)
}

// copyScripts always returns a non nil slice so that an empty list of
// children encodes as an empty list.
func copyScripts(scripts []Script) []Script {
	res := make([]Script, len(scripts))
	copy(res, scripts)
	return res
}
