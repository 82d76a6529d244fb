package timelock

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/codec"
	"github.com/iov-one/nativescript/errors"
)

// DecodeCBOR decodes a script that may contain time lock leaves anywhere in
// the tree. Tags other than the time lock tags are decoded by the base
// decoder.
func DecodeCBOR(data []byte) (nativescript.Script, error) {
	tag, fields, err := codec.DecodeTagged(codec.StripWrapper(data))
	if err != nil {
		return nil, errors.Wrap(err, "script")
	}
	switch tag {
	case TagAfter, TagBefore:
		if len(fields) != 1 {
			return nil, errors.ErrMalformed.Newf("tag %d expects 1 field, got %d", tag, len(fields))
		}
		slot, err := codec.DecodeUint(fields[0])
		if err != nil {
			return nil, errors.Wrap(err, "slot")
		}
		if tag == TagAfter {
			return NewAfter(slot), nil
		}
		return NewBefore(slot), nil
	default:
		return nativescript.DecodeCBOR(data, DecodeCBOR)
	}
}

// DecodeJSON decodes a script that may contain time lock leaves anywhere in
// the tree. Types other than after and before are decoded by the base
// decoder.
func DecodeJSON(v interface{}) (nativescript.Script, error) {
	obj, err := nativescript.ParseJSONObject(v)
	if err != nil {
		return nil, err
	}
	typ, err := nativescript.JSONType(obj)
	if err != nil {
		return nil, err
	}
	switch typ {
	case JSONTypeAfter, JSONTypeBefore:
		slot, err := jsonSlotValue(obj["slot"])
		if err != nil {
			return nil, errors.Field("slot", err, typ)
		}
		if typ == JSONTypeAfter {
			return NewAfter(slot), nil
		}
		return NewBefore(slot), nil
	default:
		return nativescript.DecodeJSON(obj, DecodeJSON)
	}
}

func jsonSlotValue(v interface{}) (uint64, error) {
	if v == nil {
		return 0, ErrMissingSlot
	}
	n, ok := slotNumber(v)
	if !ok {
		return 0, errors.ErrInvalidInput.Newf("slot must be a non negative integer, got %v", v)
	}
	return n, nil
}

// slotNumber reads the whole uint64 range. Numbers above the float64
// precision are exact only when decoded as json.Number.
func slotNumber(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case json.Number:
		if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
			return u, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatSlot(f)
	case float64:
		return floatSlot(n)
	case uint64:
		return n, true
	default:
		i, ok := nativescript.JSONInt(v)
		if !ok || i < 0 {
			return 0, false
		}
		return uint64(i), true
	}
}

func floatSlot(f float64) (uint64, bool) {
	if f < 0 || f >= 1<<64 || f != math.Trunc(f) {
		return 0, false
	}
	return uint64(f), true
}
