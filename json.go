package nativescript

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/iov-one/nativescript/errors"
)

// JSON type field values of the base scripts.
const (
	JSONTypeSig     = "sig"
	JSONTypeAll     = "all"
	JSONTypeAny     = "any"
	JSONTypeAtLeast = "atLeast"
)

// JSONDecoder decodes a single script from its JSON representation. The input
// is either an already parsed object (map[string]interface{}) or a string,
// []byte or json.RawMessage holding one.
//
// A JSONDecoder is used to decode the children of all, any and atLeast. A
// custom one allows a caller to support additional script types, see
// CBORDecoder.
type JSONDecoder func(v interface{}) (Script, error)

// FromJSON decodes a script that consists of base types only.
func FromJSON(v interface{}) (Script, error) {
	return DecodeJSON(v, nil)
}

// DecodeJSON decodes the JSON representation of a base script. Children are
// decoded using decodeChild, or FromJSON if decodeChild is nil.
//
// DecodeJSON does not limit the size or depth of the input. Use
// DecodeJSONWithLimits for untrusted input.
func DecodeJSON(v interface{}, decodeChild JSONDecoder) (Script, error) {
	if decodeChild == nil {
		decodeChild = FromJSON
	}

	obj, err := ParseJSONObject(v)
	if err != nil {
		return nil, err
	}
	typ, err := JSONType(obj)
	if err != nil {
		return nil, err
	}

	switch typ {
	case JSONTypeSig:
		raw, ok := obj["keyHash"]
		if !ok || raw == nil || raw == "" {
			return nil, errors.Field("keyHash", errors.ErrMissingKeyHash, "sig")
		}
		enc, ok := raw.(string)
		if !ok {
			return nil, errors.Field("keyHash", errors.ErrInvalidInput, "sig key hash must be a string, got %T", raw)
		}
		h, err := KeyHashFromHex(enc)
		if err != nil {
			return nil, errors.Field("keyHash", err, "sig")
		}
		return NewSig(h), nil
	case JSONTypeAll:
		scripts, err := decodeJSONScripts(obj, decodeChild)
		if err != nil {
			return nil, errors.Wrap(err, "all")
		}
		return NewAll(scripts...), nil
	case JSONTypeAny:
		scripts, err := decodeJSONScripts(obj, decodeChild)
		if err != nil {
			return nil, errors.Wrap(err, "any")
		}
		return NewAny(scripts...), nil
	case JSONTypeAtLeast:
		required, err := jsonRequired(obj["required"])
		if err != nil {
			return nil, errors.Field("required", err, "atLeast")
		}
		scripts, err := decodeJSONScripts(obj, decodeChild)
		if err != nil {
			return nil, errors.Wrap(err, "atLeast")
		}
		return atLeastFromWire(required, scripts)
	default:
		return nil, errors.ErrUnrecognizedType.Newf("type %q", typ)
	}
}

// ParseJSONObject returns the object held by given value. Strings, byte
// slices and json.RawMessage are parsed first.
func ParseJSONObject(v interface{}) (map[string]interface{}, error) {
	var raw []byte
	switch v := v.(type) {
	case map[string]interface{}:
		return v, nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	default:
		return nil, errors.ErrInvalidInput.Newf("cannot decode script from %T", v)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]interface{}
	if err := dec.Decode(&obj); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot decode json: %s", err)
	}
	if obj == nil {
		return nil, errors.ErrInvalidInput.New("script must be a json object")
	}
	if dec.More() {
		return nil, errors.ErrInvalidInput.New("unexpected data after json object")
	}
	return obj, nil
}

// JSONType returns the type field of given script object.
func JSONType(obj map[string]interface{}) (string, error) {
	raw, ok := obj["type"]
	if !ok || raw == nil || raw == "" {
		return "", errors.Field("type", errors.ErrMissingType, "")
	}
	typ, ok := raw.(string)
	if !ok {
		return "", errors.Field("type", errors.ErrUnrecognizedType, "type %v", raw)
	}
	return typ, nil
}

// JSONInt returns the value of a JSON number that must be a non-negative
// integer. Numbers decoded with UseNumber, float64 and the Go integer types
// are accepted.
func JSONInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return 0, false
			}
			return floatToInt(f)
		}
		return i, true
	case float64:
		return floatToInt(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func jsonRequired(v interface{}) (int64, error) {
	if v == nil {
		return 0, errors.ErrInvalidRequired.New("missing")
	}
	n, ok := JSONInt(v)
	if !ok {
		return 0, errors.ErrInvalidRequired.Newf("not an integer: %v", v)
	}
	if n < 0 {
		return 0, errors.ErrInvalidRequired.Newf("negative: %d", n)
	}
	return n, nil
}

func decodeJSONScripts(obj map[string]interface{}, decodeChild JSONDecoder) ([]Script, error) {
	raw, ok := obj["scripts"]
	if !ok || raw == nil {
		return nil, errors.Field("scripts", errors.ErrMissingScripts, "")
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, errors.Field("scripts", errors.ErrMissingScripts, "must be a list, got %T", raw)
	}
	scripts := make([]Script, len(list))
	for i, item := range list {
		s, err := decodeChild(item)
		if err != nil {
			return nil, errors.Wrapf(err, "script %d", i)
		}
		if s == nil {
			return nil, errors.ErrInvalidInput.Newf("script %d: decoder returned no script", i)
		}
		scripts[i] = s
	}
	return scripts, nil
}

type jsonSig struct {
	Type    string  `json:"type"`
	KeyHash KeyHash `json:"keyHash"`
}

type jsonScripts struct {
	Type    string   `json:"type"`
	Scripts []Script `json:"scripts"`
}

type jsonAtLeast struct {
	Type     string   `json:"type"`
	Required int      `json:"required"`
	Scripts  []Script `json:"scripts"`
}

// MarshalJSON encodes the script as {"type":"sig","keyHash":"<hex>"}.
func (s *Sig) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonSig{Type: JSONTypeSig, KeyHash: s.keyHash})
}

// MarshalJSON encodes the script as {"type":"all","scripts":[...]}.
func (s *All) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonScripts{Type: JSONTypeAll, Scripts: s.scripts})
}

// MarshalJSON encodes the script as {"type":"any","scripts":[...]}.
func (s *Any) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonScripts{Type: JSONTypeAny, Scripts: s.scripts})
}

// MarshalJSON encodes the script as
// {"type":"atLeast","required":n,"scripts":[...]}.
func (s *AtLeast) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonAtLeast{Type: JSONTypeAtLeast, Required: s.required, Scripts: s.scripts})
}
