package codec

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/iov-one/nativescript/errors"
)

// MaxNestedLevels is the nesting limit of the decoder used by this package.
// It is the highest value the cbor library accepts. Use CheckNesting to
// enforce a stricter bound on untrusted input.
const MaxNestedLevels = 65535

// RawMessage is a raw encoded CBOR value.
type RawMessage = cbor.RawMessage

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em

	dm, err := cbor.DecOptions{
		MaxNestedLevels: MaxNestedLevels,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// Marshal encodes given value using the deterministic encoding mode.
func Marshal(v interface{}) ([]byte, error) {
	b, err := encMode.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return b, nil
}

// Unmarshal decodes a single CBOR value into v. Trailing data is an error.
func Unmarshal(data []byte, v interface{}) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return nil
}

// EncodeInt returns the shortest encoding of given integer.
func EncodeInt(n int64) []byte {
	b, err := encMode.Marshal(n)
	if err != nil {
		// Integers are always encodable.
		panic(err)
	}
	return b
}

// EncodeBytes returns given bytes encoded as a definite-length byte string.
func EncodeBytes(b []byte) []byte {
	if b == nil {
		b = []byte{}
	}
	raw, err := encMode.Marshal(b)
	if err != nil {
		panic(err)
	}
	return raw
}

// EncodeDefList returns a definite-length array containing given, already
// encoded items.
func EncodeDefList(items ...[]byte) []byte {
	elems := make([]cbor.RawMessage, len(items))
	for i, it := range items {
		elems[i] = it
	}
	raw, err := encMode.Marshal(elems)
	if err != nil {
		panic(err)
	}
	return raw
}

// EncodeTuple returns a fixed arity array containing given, already encoded
// fields. The byte layout is the one of EncodeDefList.
func EncodeTuple(fields ...[]byte) []byte {
	return EncodeDefList(fields...)
}

// StripWrapper consumes a single leading 0x00 byte. Some byte streams carry a
// standalone integer zero in front of the actual value. Only the very first
// byte is inspected.
func StripWrapper(data []byte) []byte {
	if len(data) > 0 && data[0] == 0x00 {
		return data[1:]
	}
	return data
}

// DecodeTagged decodes a tagged tuple. It returns the tag and the remaining,
// still encoded fields.
func DecodeTagged(data []byte) (uint64, []RawMessage, error) {
	if !isArray(data) {
		return 0, nil, errors.ErrMalformed.New("tagged tuple must be an array")
	}
	var items []cbor.RawMessage
	if err := decMode.Unmarshal(data, &items); err != nil {
		return 0, nil, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	if len(items) == 0 {
		return 0, nil, errors.ErrMalformed.New("empty tagged tuple")
	}
	tag, err := DecodeUint(items[0])
	if err != nil {
		return 0, nil, errors.Wrap(err, "tag")
	}
	return tag, items[1:], nil
}

// DecodeList decodes an array and returns its still encoded elements. Both
// definite and indefinite length arrays are accepted.
func DecodeList(data []byte) ([]RawMessage, error) {
	if !isArray(data) {
		return nil, errors.ErrMalformed.New("list must be an array")
	}
	var items []cbor.RawMessage
	if err := decMode.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	if items == nil {
		items = []cbor.RawMessage{}
	}
	return items, nil
}

// DecodeInt decodes a signed integer.
func DecodeInt(data []byte) (int64, error) {
	var n int64
	if err := decMode.Unmarshal(data, &n); err != nil {
		return 0, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return n, nil
}

// DecodeUint decodes a non-negative integer.
func DecodeUint(data []byte) (uint64, error) {
	if len(data) == 0 || majorType(data[0]) != majorTypeUint {
		return 0, errors.ErrMalformed.New("expected unsigned integer")
	}
	var n uint64
	if err := decMode.Unmarshal(data, &n); err != nil {
		return 0, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return n, nil
}

// DecodeBytes decodes a byte string.
func DecodeBytes(data []byte) ([]byte, error) {
	if len(data) == 0 || majorType(data[0]) != majorTypeBytes {
		return nil, errors.ErrMalformed.New("expected byte string")
	}
	var b []byte
	if err := decMode.Unmarshal(data, &b); err != nil {
		return nil, errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return b, nil
}

// CheckNesting returns an error if given data is not a single well formed
// CBOR value or if it nests arrays, maps and tags deeper than maxLevels.
func CheckNesting(data []byte, maxLevels int) error {
	if maxLevels < 4 {
		// Lowest value accepted by the cbor library.
		maxLevels = 4
	}
	if maxLevels > MaxNestedLevels {
		maxLevels = MaxNestedLevels
	}
	dm, err := cbor.DecOptions{MaxNestedLevels: maxLevels}.DecMode()
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if err := dm.Wellformed(data); err != nil {
		if _, ok := err.(*cbor.MaxNestedLevelError); ok {
			return errors.Wrap(errors.ErrDepthExceeded, err.Error())
		}
		return errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return nil
}

// Diagnose returns the extended diagnostic notation (RFC 8949, section 8) of
// given data.
func Diagnose(data []byte) (string, error) {
	s, err := cbor.Diagnose(data)
	if err != nil {
		return "", errors.Wrap(errors.ErrMalformed, err.Error())
	}
	return s, nil
}

const (
	majorTypeUint  = 0
	majorTypeBytes = 2
	majorTypeArray = 4
)

func majorType(b byte) byte {
	return b >> 5
}

func isArray(data []byte) bool {
	return len(data) > 0 && majorType(data[0]) == majorTypeArray
}
