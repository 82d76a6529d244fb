package main

import (
	"flag"
	"io/ioutil"
	"testing"

	"github.com/iov-one/nativescript/nativetest/assert"
)

func TestKeyHashesFlag(t *testing.T) {
	cases := map[string]struct {
		args    []string
		wantErr bool
		want    []string
	}{
		"not provided": {
			args: nil,
			want: []string{},
		},
		"hex and bech32": {
			args: []string{
				"-x", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				"-x", "addr_vkh1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwxqergd3cmhkuzt",
			},
			want: []string{
				"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
				keyHashA,
			},
		},
		"invalid key hash": {
			args:    []string{"-x", "abcd"},
			wantErr: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fl := flag.NewFlagSet("", flag.ContinueOnError)
			fl.SetOutput(ioutil.Discard)
			khs := flKeyHashes(fl, "x", "")
			err := fl.Parse(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			assert.Nil(t, err)
			got := make([]string, len(*khs))
			for i, h := range *khs {
				got[i] = h.Hex()
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlotFlag(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	from := flSlot(fl, "from", "")
	until := flSlot(fl, "until", "")
	assert.Nil(t, fl.Parse([]string{"-from", "42"}))

	if from.val == nil || *from.val != 42 {
		t.Fatalf("unexpected from value: %v", from)
	}
	if until.val != nil {
		t.Fatalf("until must not be set: %v", until)
	}
	assert.Equal(t, "42", from.String())

	fl = flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	flSlot(fl, "from", "")
	if err := fl.Parse([]string{"-from", "-1"}); err == nil {
		t.Fatal("negative slot accepted")
	}
}

func TestHexFlag(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	b := flHex(fl, "x", "0102", "")
	assert.Equal(t, flagbyte{1, 2}, *b)
	assert.Nil(t, fl.Parse([]string{"-x", "ff"}))
	assert.Equal(t, flagbyte{0xff}, *b)
}
