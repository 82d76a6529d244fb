package nativescript

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/iov-one/nativescript/codec"
	"github.com/iov-one/nativescript/errors"
)

const (
	// DefaultMaxDepth is the default number of nested script levels.
	DefaultMaxDepth = 64

	// DefaultMaxSize is the default size limit of an encoded script.
	DefaultMaxSize = 64 * 1024
)

// Limits bounds the resources spent on decoding a script. The decoders
// themselves accept any input, untrusted input must be checked first.
//
// Depth counts script levels: a single Sig has depth 1, All wrapping a Sig
// has depth 2.
type Limits struct {
	MaxDepth int `json:"max_depth"`
	MaxSize  int `json:"max_size"`
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth: DefaultMaxDepth,
		MaxSize:  DefaultMaxSize,
	}
}

// Validate returns an error if the limits cannot be used.
func (l Limits) Validate() error {
	if l.MaxDepth < 2 {
		return errors.Field("max_depth", errors.ErrInvalidInput, "must be at least 2, got %d", l.MaxDepth)
	}
	if l.MaxDepth > codec.MaxNestedLevels/2 {
		return errors.Field("max_depth", errors.ErrInvalidInput, "must not be greater than %d", codec.MaxNestedLevels/2)
	}
	if l.MaxSize < 1 {
		return errors.Field("max_size", errors.ErrInvalidInput, "must be positive, got %d", l.MaxSize)
	}
	return nil
}

// nesting returns the number of container levels a script of the maximum
// depth takes. Every script level is a tuple and every list of children is
// an array (or in JSON, an object and an array), so n levels take 2n-1 and
// n+1 levels never fit.
func (l Limits) nesting() int {
	return 2 * l.MaxDepth
}

// CheckCBOR returns an error if given binary script exceeds the limits.
func (l Limits) CheckCBOR(data []byte) error {
	if len(data) > l.MaxSize {
		return errors.ErrTooLarge.Newf("%d bytes, limit %d", len(data), l.MaxSize)
	}
	if err := codec.CheckNesting(codec.StripWrapper(data), l.nesting()); err != nil {
		return errors.Wrap(err, "script")
	}
	return nil
}

// CheckJSON returns an error if given JSON script exceeds the limits.
func (l Limits) CheckJSON(data []byte) error {
	if len(data) > l.MaxSize {
		return errors.ErrTooLarge.Newf("%d bytes, limit %d", len(data), l.MaxSize)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	var depth int
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "cannot decode json: %s", err)
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			continue
		}
		switch delim {
		case '{', '[':
			depth++
			if depth > l.nesting() {
				return errors.ErrDepthExceeded.Newf("json nesting above %d", l.nesting())
			}
		case '}', ']':
			depth--
		}
	}
}

// DecodeCBORWithLimits checks given data against the limits and decodes it
// with DecodeCBOR.
func DecodeCBORWithLimits(data []byte, l Limits, decodeChild CBORDecoder) (Script, error) {
	if err := l.CheckCBOR(data); err != nil {
		return nil, err
	}
	return DecodeCBOR(data, decodeChild)
}

// DecodeJSONWithLimits checks given data against the limits and decodes it
// with DecodeJSON.
func DecodeJSONWithLimits(data []byte, l Limits, decodeChild JSONDecoder) (Script, error) {
	if err := l.CheckJSON(data); err != nil {
		return nil, err
	}
	return DecodeJSON(data, decodeChild)
}
