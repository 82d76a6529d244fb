package nativescript

import (
	"github.com/iov-one/nativescript/codec"
	"github.com/iov-one/nativescript/errors"
)

// CBORDecoder decodes a single script from its binary representation.
//
// A CBORDecoder is used to decode the children of All, Any and AtLeast. A
// custom one allows a caller to support additional script kinds: it handles
// the tags it knows and delegates the rest to DecodeCBOR, passing itself as
// the child decoder.
type CBORDecoder func(data []byte) (Script, error)

// FromCBOR decodes a script that consists of base kinds only.
func FromCBOR(data []byte) (Script, error) {
	return DecodeCBOR(data, nil)
}

// DecodeCBOR decodes the binary representation of a base script. Children
// are decoded using decodeChild, or FromCBOR if decodeChild is nil.
//
// A single leading 0x00 byte, if present, is consumed before the tagged tuple
// is read.
//
// DecodeCBOR does not limit the size or depth of the input. Use
// DecodeCBORWithLimits for untrusted input.
func DecodeCBOR(data []byte, decodeChild CBORDecoder) (Script, error) {
	if decodeChild == nil {
		decodeChild = FromCBOR
	}

	tag, fields, err := codec.DecodeTagged(codec.StripWrapper(data))
	if err != nil {
		return nil, errors.Wrap(err, "script")
	}

	switch tag {
	case uint64(KindSig):
		if err := expectFields(tag, fields, 1); err != nil {
			return nil, err
		}
		var h KeyHash
		if err := h.UnmarshalCBOR(fields[0]); err != nil {
			return nil, errors.Wrap(err, "sig")
		}
		return NewSig(h), nil
	case uint64(KindAll):
		if err := expectFields(tag, fields, 1); err != nil {
			return nil, err
		}
		scripts, err := decodeCBORScripts(fields[0], decodeChild)
		if err != nil {
			return nil, errors.Wrap(err, "all")
		}
		return NewAll(scripts...), nil
	case uint64(KindAny):
		if err := expectFields(tag, fields, 1); err != nil {
			return nil, err
		}
		scripts, err := decodeCBORScripts(fields[0], decodeChild)
		if err != nil {
			return nil, errors.Wrap(err, "any")
		}
		return NewAny(scripts...), nil
	case uint64(KindAtLeast):
		if err := expectFields(tag, fields, 2); err != nil {
			return nil, err
		}
		required, err := codec.DecodeInt(fields[0])
		if err != nil {
			return nil, errors.Wrap(err, "atLeast required")
		}
		scripts, err := decodeCBORScripts(fields[1], decodeChild)
		if err != nil {
			return nil, errors.Wrap(err, "atLeast")
		}
		return atLeastFromWire(required, scripts)
	default:
		return nil, errors.ErrUnknownTag.Newf("tag %d", tag)
	}
}

// MarshalCBOR encodes the script as [0, keyHash].
func (s *Sig) MarshalCBOR() ([]byte, error) {
	kh, err := s.keyHash.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	return codec.EncodeTuple(codec.EncodeInt(int64(KindSig)), kh), nil
}

// MarshalCBOR encodes the script as [1, [scripts...]].
func (s *All) MarshalCBOR() ([]byte, error) {
	list, err := encodeCBORScripts(s.scripts)
	if err != nil {
		return nil, errors.Wrap(err, "all")
	}
	return codec.EncodeTuple(codec.EncodeInt(int64(KindAll)), list), nil
}

// MarshalCBOR encodes the script as [2, [scripts...]].
func (s *Any) MarshalCBOR() ([]byte, error) {
	list, err := encodeCBORScripts(s.scripts)
	if err != nil {
		return nil, errors.Wrap(err, "any")
	}
	return codec.EncodeTuple(codec.EncodeInt(int64(KindAny)), list), nil
}

// MarshalCBOR encodes the script as [3, required, [scripts...]].
func (s *AtLeast) MarshalCBOR() ([]byte, error) {
	list, err := encodeCBORScripts(s.scripts)
	if err != nil {
		return nil, errors.Wrap(err, "atLeast")
	}
	return codec.EncodeTuple(
		codec.EncodeInt(int64(KindAtLeast)),
		codec.EncodeInt(int64(s.required)),
		list,
	), nil
}

func encodeCBORScripts(scripts []Script) ([]byte, error) {
	items := make([][]byte, len(scripts))
	for i, s := range scripts {
		raw, err := s.MarshalCBOR()
		if err != nil {
			return nil, errors.Wrapf(err, "script %d", i)
		}
		items[i] = raw
	}
	return codec.EncodeDefList(items...), nil
}

func decodeCBORScripts(data []byte, decodeChild CBORDecoder) ([]Script, error) {
	items, err := codec.DecodeList(data)
	if err != nil {
		return nil, errors.Wrap(err, "scripts")
	}
	scripts := make([]Script, len(items))
	for i, raw := range items {
		s, err := decodeChild(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "script %d", i)
		}
		if s == nil {
			return nil, errors.ErrMalformed.Newf("script %d: decoder returned no script", i)
		}
		scripts[i] = s
	}
	return scripts, nil
}

func expectFields(tag uint64, fields []codec.RawMessage, n int) error {
	if len(fields) != n {
		return errors.ErrMalformed.Newf("tag %d expects %d fields, got %d", tag, n, len(fields))
	}
	return nil
}

// atLeastFromWire builds an AtLeast script from a decoded threshold. The wire
// value is validated the same way the constructor validates it.
func atLeastFromWire(required int64, scripts []Script) (*AtLeast, error) {
	if required < 0 {
		return nil, errors.ErrNegativeThreshold.Newf("required %d", required)
	}
	if required > int64(len(scripts)) {
		return nil, errors.ErrThresholdExceedsChildren.Newf("required %d of %d scripts", required, len(scripts))
	}
	return NewAtLeast(int(required), scripts...)
}
