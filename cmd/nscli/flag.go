package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/iov-one/nativescript"
)

// flHex returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flHex(fl *flag.FlagSet, name, defaultVal, usage string) *flagbyte {
	var b []byte
	if defaultVal != "" {
		var err error
		b, err = hex.DecodeString(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q hex encoded flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fb := flagbyte(b)
	fl.Var(&fb, name, usage)
	return &fb
}

type flagbyte []byte

func (b flagbyte) String() string {
	return hex.EncodeToString(b)
}

func (b *flagbyte) Set(raw string) error {
	val, err := hex.DecodeString(raw)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// flKeyHashes returns a list of key hashes that is filled with every
// occurrence of the flag. Both hex and bech32 representations are accepted.
func flKeyHashes(fl *flag.FlagSet, name, usage string) *flagkeyhashes {
	var khs flagkeyhashes
	fl.Var(&khs, name, usage)
	return &khs
}

type flagkeyhashes []nativescript.KeyHash

func (k flagkeyhashes) String() string {
	res := make([]string, len(k))
	for i, h := range k {
		res[i] = h.Hex()
	}
	return strings.Join(res, ",")
}

func (k *flagkeyhashes) Set(raw string) error {
	h, err := nativescript.ParseKeyHash(raw)
	if err != nil {
		return err
	}
	*k = append(*k, h)
	return nil
}

// flSlot returns an optional slot number. The value is nil unless the flag
// was provided.
func flSlot(fl *flag.FlagSet, name, usage string) *flagslot {
	var s flagslot
	fl.Var(&s, name, usage)
	return &s
}

type flagslot struct {
	val *uint64
}

func (s flagslot) String() string {
	if s.val == nil {
		return ""
	}
	return strconv.FormatUint(*s.val, 10)
}

func (s *flagslot) Set(raw string) error {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return err
	}
	s.val = &n
	return nil
}
