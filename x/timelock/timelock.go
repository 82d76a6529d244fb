package timelock

import (
	"encoding/json"

	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/codec"
)

// Binary tags and JSON types of the time lock leaves. The tags continue the
// numbering of the base script kinds.
const (
	TagAfter  = 4
	TagBefore = 5

	JSONTypeAfter  = "after"
	JSONTypeBefore = "before"
)

// After holds when the validity interval starts at or after the slot.
type After struct {
	slot uint64
}

var _ nativescript.Script = (*After)(nil)

// NewAfter returns a leaf that holds from given slot on.
func NewAfter(slot uint64) *After {
	return &After{slot: slot}
}

// Slot returns the first slot this leaf holds in.
func (a *After) Slot() uint64 {
	return a.slot
}

// Eval returns true if the context validity interval has a lower bound that
// is not before the slot.
func (a *After) Eval(ctx nativescript.AuthContext) bool {
	vc, ok := ctx.(ValidityContext)
	if !ok {
		return false
	}
	from, _ := vc.ValidityInterval()
	return from != nil && a.slot <= *from
}

// MarshalCBOR encodes the leaf as [4, slot].
func (a *After) MarshalCBOR() ([]byte, error) {
	return encodeSlot(TagAfter, a.slot)
}

// MarshalJSON encodes the leaf as {"type":"after","slot":n}.
func (a *After) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSlot{Type: JSONTypeAfter, Slot: a.slot})
}

// Before holds when the validity interval ends at or before the slot.
type Before struct {
	slot uint64
}

var _ nativescript.Script = (*Before)(nil)

// NewBefore returns a leaf that holds until given slot.
func NewBefore(slot uint64) *Before {
	return &Before{slot: slot}
}

// Slot returns the first slot this leaf no longer holds in.
func (b *Before) Slot() uint64 {
	return b.slot
}

// Eval returns true if the context validity interval has an upper bound
// that is not after the slot.
func (b *Before) Eval(ctx nativescript.AuthContext) bool {
	vc, ok := ctx.(ValidityContext)
	if !ok {
		return false
	}
	_, until := vc.ValidityInterval()
	return until != nil && *until <= b.slot
}

// MarshalCBOR encodes the leaf as [5, slot].
func (b *Before) MarshalCBOR() ([]byte, error) {
	return encodeSlot(TagBefore, b.slot)
}

// MarshalJSON encodes the leaf as {"type":"before","slot":n}.
func (b *Before) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSlot{Type: JSONTypeBefore, Slot: b.slot})
}

type jsonSlot struct {
	Type string `json:"type"`
	Slot uint64 `json:"slot"`
}

func encodeSlot(tag int64, slot uint64) ([]byte, error) {
	raw, err := codec.Marshal(slot)
	if err != nil {
		return nil, err
	}
	return codec.EncodeTuple(codec.EncodeInt(tag), raw), nil
}
