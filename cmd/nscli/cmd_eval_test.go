package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/nativescript/crypto"
	"github.com/iov-one/nativescript/x/witness"
)

func TestCmdEval(t *testing.T) {
	const (
		keyHashB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
		bech32A  = "addr_vkh1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwxqergd3cmhkuzt"
	)
	twoOfTwo := `{"type":"all","scripts":[` +
		`{"type":"sig","keyHash":"` + keyHashA + `"},` +
		`{"type":"sig","keyHash":"` + keyHashB + `"}]}`
	timed := `{"type":"all","scripts":[` +
		`{"type":"sig","keyHash":"` + keyHashA + `"},` +
		`{"type":"after","slot":100},` +
		`{"type":"before","slot":200}]}`

	cases := map[string]struct {
		input string
		args  []string
		want  string
	}{
		"no signers": {
			input: jsonSigA,
			want:  "false\n",
		},
		"hex signer": {
			input: jsonSigA,
			args:  []string{"-signer", keyHashA},
			want:  "true\n",
		},
		"bech32 signer": {
			input: cborSigA,
			args:  []string{"-signer", bech32A},
			want:  "true\n",
		},
		"one of two signers": {
			input: twoOfTwo,
			args:  []string{"-signer", keyHashB},
			want:  "false\n",
		},
		"two of two signers": {
			input: twoOfTwo,
			args:  []string{"-signer", keyHashB, "-signer", keyHashA},
			want:  "true\n",
		},
		"within validity interval": {
			input: timed,
			args:  []string{"-signer", keyHashA, "-from", "100", "-until", "150"},
			want:  "true\n",
		},
		"validity interval not bounded": {
			input: timed,
			args:  []string{"-signer", keyHashA, "-from", "100"},
			want:  "false\n",
		},
		"validity interval too early": {
			input: timed,
			args:  []string{"-signer", keyHashA, "-from", "99", "-until", "150"},
			want:  "false\n",
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := run(t, cmdEval, tc.input, tc.args...); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCmdEvalWitnesses(t *testing.T) {
	alice := crypto.PrivKeyEd25519FromSeed(bytes.Repeat([]byte{0}, 32))
	bob := crypto.PrivKeyEd25519FromSeed(bytes.Repeat([]byte{31}, 32))
	body := witness.BodyHash([]byte("tx body"))

	var ws []witness.Witness
	for _, k := range []crypto.PrivateKey{alice, bob} {
		w, err := witness.Sign(k, body)
		if err != nil {
			t.Fatalf("cannot sign: %s", err)
		}
		ws = append(ws, w)
	}
	raw, err := witness.EncodeWitnesses(ws)
	if err != nil {
		t.Fatalf("cannot encode witnesses: %s", err)
	}

	script := `{"type":"atLeast","required":2,"scripts":[` +
		`{"type":"sig","keyHash":"cb9358529df4729c3246a2a033cb9821abbfd16de4888005904abc41"},` +
		`{"type":"sig","keyHash":"` + keyHashA + `"},` +
		`{"type":"sig","keyHash":"9929a1b8589e016f82fb6a9bcf2d1c4026f4376a458c2a0d6eac6834"}]}`

	args := []string{"-witnesses", hex.EncodeToString(raw), "-body-hash", hex.EncodeToString(body)}
	if got := run(t, cmdEval, script, args...); got != "true\n" {
		t.Fatalf("want true, got %q", got)
	}

	// Only alice witnessed, a signer given directly completes the quorum.
	raw, err = witness.EncodeWitnesses(ws[:1])
	if err != nil {
		t.Fatalf("cannot encode witnesses: %s", err)
	}
	args = []string{"-witnesses", hex.EncodeToString(raw), "-body-hash", hex.EncodeToString(body)}
	if got := run(t, cmdEval, script, args...); got != "false\n" {
		t.Fatalf("want false, got %q", got)
	}
	if got := run(t, cmdEval, script, append(args, "-signer", keyHashA)...); got != "true\n" {
		t.Fatalf("want true, got %q", got)
	}

	// A witness of another body is rejected.
	other := witness.BodyHash([]byte("another tx body"))
	args = []string{"-witnesses", hex.EncodeToString(raw), "-body-hash", hex.EncodeToString(other)}
	var output bytes.Buffer
	if err := cmdEval(strings.NewReader(script), &output, args); err == nil {
		t.Fatal("invalid witness accepted")
	}
}
