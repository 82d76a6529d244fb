package nativescript_test

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/errors"
	"github.com/iov-one/nativescript/nativetest"
	nsassert "github.com/iov-one/nativescript/nativetest/assert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEncoding(t *testing.T) {
	a := nativetest.DecodeKeyHash(t, hexA)
	b := nativetest.DecodeKeyHash(t, hexB)

	cases := map[string]struct {
		script nativescript.Script
		want   string
	}{
		"sig": {
			script: nativescript.NewSig(a),
			want:   `{"type":"sig","keyHash":"` + hexA + `"}`,
		},
		"all": {
			script: nativescript.NewAll(nativetest.Sigs(a, b)...),
			want:   `{"type":"all","scripts":[{"type":"sig","keyHash":"` + hexA + `"},{"type":"sig","keyHash":"` + hexB + `"}]}`,
		},
		"empty any": {
			script: nativescript.NewAny(),
			want:   `{"type":"any","scripts":[]}`,
		},
		"at least": {
			script: nativetest.AtLeast(t, 1, nativescript.NewSig(b)),
			want:   `{"type":"atLeast","required":1,"scripts":[{"type":"sig","keyHash":"` + hexB + `"}]}`,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := json.Marshal(tc.script)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(raw))
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for testName, tc := range fixtures(t) {
		t.Run(testName, func(t *testing.T) {
			raw, err := tc.script.MarshalJSON()
			require.NoError(t, err)

			fromBytes, err := nativescript.FromJSON(raw)
			require.NoError(t, err)
			assert.Equal(t, tc.script, fromBytes)

			fromString, err := nativescript.FromJSON(string(raw))
			require.NoError(t, err)
			assert.Equal(t, tc.script, fromString)

			var obj map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &obj))
			fromObject, err := nativescript.FromJSON(obj)
			require.NoError(t, err)
			assert.Equal(t, tc.script, fromObject)
		})
	}
}

func TestJSONDecodeErrors(t *testing.T) {
	cases := map[string]struct {
		json      string
		wantErr   *errors.Error
		wantField string
	}{
		"missing type": {
			json:      `{"keyHash":"` + hexA + `"}`,
			wantErr:   errors.ErrMissingType,
			wantField: "type",
		},
		"empty type": {
			json:      `{"type":""}`,
			wantErr:   errors.ErrMissingType,
			wantField: "type",
		},
		"type is not a string": {
			json:      `{"type":1}`,
			wantErr:   errors.ErrUnrecognizedType,
			wantField: "type",
		},
		"unrecognized type": {
			json:    `{"type":"foo"}`,
			wantErr: errors.ErrUnrecognizedType,
		},
		"type names are case sensitive": {
			json:    `{"type":"Sig","keyHash":"` + hexA + `"}`,
			wantErr: errors.ErrUnrecognizedType,
		},
		"sig without key hash": {
			json:      `{"type":"sig"}`,
			wantErr:   errors.ErrMissingKeyHash,
			wantField: "keyHash",
		},
		"sig with null key hash": {
			json:      `{"type":"sig","keyHash":null}`,
			wantErr:   errors.ErrMissingKeyHash,
			wantField: "keyHash",
		},
		"sig with short key hash": {
			json:      `{"type":"sig","keyHash":"` + hexA[:54] + `"}`,
			wantErr:   errors.ErrInvalidLength,
			wantField: "keyHash",
		},
		"sig with numeric key hash": {
			json:      `{"type":"sig","keyHash":42}`,
			wantErr:   errors.ErrInvalidInput,
			wantField: "keyHash",
		},
		"all without scripts": {
			json:      `{"type":"all"}`,
			wantErr:   errors.ErrMissingScripts,
			wantField: "scripts",
		},
		"any with scripts object": {
			json:      `{"type":"any","scripts":{}}`,
			wantErr:   errors.ErrMissingScripts,
			wantField: "scripts",
		},
		"at least without required": {
			json:      `{"type":"atLeast","scripts":[]}`,
			wantErr:   errors.ErrInvalidRequired,
			wantField: "required",
		},
		"at least with negative required": {
			json:      `{"type":"atLeast","required":-1,"scripts":[]}`,
			wantErr:   errors.ErrInvalidRequired,
			wantField: "required",
		},
		"at least with fractional required": {
			json:      `{"type":"atLeast","required":1.5,"scripts":[{"type":"sig","keyHash":"` + hexA + `"}]}`,
			wantErr:   errors.ErrInvalidRequired,
			wantField: "required",
		},
		"at least with text required": {
			json:      `{"type":"atLeast","required":"1","scripts":[]}`,
			wantErr:   errors.ErrInvalidRequired,
			wantField: "required",
		},
		"at least above children": {
			json:    `{"type":"atLeast","required":2,"scripts":[{"type":"sig","keyHash":"` + hexA + `"}]}`,
			wantErr: errors.ErrThresholdExceedsChildren,
		},
		"at least without scripts": {
			json:      `{"type":"atLeast","required":0}`,
			wantErr:   errors.ErrMissingScripts,
			wantField: "scripts",
		},
		"invalid child": {
			json:      `{"type":"all","scripts":[{"type":"sig"}]}`,
			wantErr:   errors.ErrMissingKeyHash,
			wantField: "keyHash",
		},
		"child is not an object": {
			json:    `{"type":"any","scripts":[1]}`,
			wantErr: errors.ErrInvalidInput,
		},
		"not json": {
			json:    `{"type":`,
			wantErr: errors.ErrInvalidInput,
		},
		"json array": {
			json:    `[]`,
			wantErr: errors.ErrInvalidInput,
		},
		"json null": {
			json:    `null`,
			wantErr: errors.ErrInvalidInput,
		},
		"trailing data": {
			json:    `{"type":"all","scripts":[]} {}`,
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := nativescript.FromJSON(tc.json)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantField != "" {
				nsassert.FieldError(t, err, tc.wantField, tc.wantErr)
			}
		})
	}
}

func TestJSONAcceptsIntegralFloats(t *testing.T) {
	obj := map[string]interface{}{
		"type":     "atLeast",
		"required": float64(1),
		"scripts": []interface{}{
			map[string]interface{}{"type": "sig", "keyHash": hexA},
		},
	}
	got, err := nativescript.FromJSON(obj)
	require.NoError(t, err)
	want := nativetest.AtLeast(t, 1, nativescript.NewSig(nativetest.DecodeKeyHash(t, hexA)))
	assert.Equal(t, want, got)
}

func TestJSONRejectsUnsupportedInput(t *testing.T) {
	_, err := nativescript.FromJSON(42)
	nsassert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestJSONCustomChildDecoder(t *testing.T) {
	script := nativescript.NewAny(
		&constScript{result: false},
		nativescript.NewAll(&constScript{result: true}),
	)
	raw, err := json.Marshal(script)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"any","scripts":[{"type":"const","result":false},{"type":"all","scripts":[{"type":"const","result":true}]}]}`, string(raw))

	got, err := nativescript.DecodeJSON(raw, decodeConstJSON)
	require.NoError(t, err)
	assert.Equal(t, script, got)
	assert.True(t, got.Eval(nativetest.DenyAll))

	_, err = nativescript.FromJSON(raw)
	nsassert.IsErr(t, errors.ErrUnrecognizedType, err)
}

func TestJSONInt(t *testing.T) {
	cases := map[string]struct {
		v      interface{}
		want   int64
		wantOk bool
	}{
		"json number":     {v: json.Number("12"), want: 12, wantOk: true},
		"json float":      {v: json.Number("3.0"), want: 3, wantOk: true},
		"json fraction":   {v: json.Number("3.5"), wantOk: false},
		"float":           {v: float64(4), want: 4, wantOk: true},
		"float fraction":  {v: 0.25, wantOk: false},
		"int":             {v: 5, want: 5, wantOk: true},
		"negative int64":  {v: int64(-2), want: -2, wantOk: true},
		"uint64 overflow": {v: uint64(1 << 63), wantOk: false},
		"string":          {v: "1", wantOk: false},
		"nil":             {v: nil, wantOk: false},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, ok := nativescript.JSONInt(tc.v)
			assert.Equal(t, tc.wantOk, ok)
			if tc.wantOk {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
