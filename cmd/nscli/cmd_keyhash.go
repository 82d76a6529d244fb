package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/nativescript/crypto"
)

func cmdKeyHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a hex encoded ed25519 public key and write its key hash, both hex and
bech32 encoded. The key hash is what a sig script requires.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return fmt.Errorf("cannot read public key: %s", err)
	}
	bin, err := decodeHex(bytes.TrimSpace(raw))
	if err != nil {
		return err
	}
	pub, err := crypto.NewPublicKey(bin)
	if err != nil {
		return err
	}
	h, err := pub.KeyHash()
	if err != nil {
		return err
	}
	bech, err := h.Bech32()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(output, "hex: %s\nbech32: %s\n", h.Hex(), bech)
	return err
}
