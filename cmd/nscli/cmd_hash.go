package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/crypto/bech32"
)

// scriptHashBech32Prefix is the human readable part of a bech32 encoded
// script hash.
const scriptHashBech32Prefix = "script"

func cmdHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a script and write its hash. The hash identifies the script on the
ledger, for example as the payment part of a script address.
`)
		fl.PrintDefaults()
	}
	var (
		bechFl = fl.Bool("bech32", false, "Write the bech32 representation instead of hex.")
		set    = flSettings(fl)
	)
	fl.Parse(args)

	env, err := set.load()
	if err != nil {
		return err
	}
	script, err := env.readScript(input)
	if err != nil {
		return err
	}
	h, err := nativescript.Hash(script)
	if err != nil {
		return fmt.Errorf("cannot hash script: %s", err)
	}
	env.logger.Info("script hashed", "hash", h.Hex())

	if !*bechFl {
		_, err = fmt.Fprintln(output, h.Hex())
		return err
	}
	enc, err := bech32.Encode(scriptHashBech32Prefix, h[:])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, string(enc))
	return err
}
