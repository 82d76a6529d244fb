package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/x/timelock"
	"github.com/iov-one/nativescript/x/witness"
)

func cmdEval(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a script and evaluate it. Write true if the script holds, false otherwise.

Signers are given directly by their key hash or as a list of verification key
witnesses of a transaction body hash. Every witness must be valid. The
validity interval is used by the after and before scripts.
`)
		fl.PrintDefaults()
	}
	var (
		signersFl   = flKeyHashes(fl, "signer", "Key hash (hex or bech32) of an authorized signer. Can be repeated.")
		witnessesFl = flHex(fl, "witnesses", "", "Hex encoded binary list of verification key witnesses.")
		bodyFl      = flHex(fl, "body-hash", "", "Hex encoded transaction body hash that the witnesses signed.")
		fromFl      = flSlot(fl, "from", "First slot of the validity interval.")
		untilFl     = flSlot(fl, "until", "First slot after the validity interval.")
		set         = flSettings(fl)
	)
	fl.Parse(args)

	env, err := set.load()
	if err != nil {
		return err
	}

	signers := nativescript.NewSignerSet(*signersFl...)
	if len(*witnessesFl) != 0 {
		ws, err := witness.DecodeWitnesses(*witnessesFl)
		if err != nil {
			return fmt.Errorf("cannot decode witnesses: %s", err)
		}
		verified, err := witness.Verify(*bodyFl, ws)
		if err != nil {
			return fmt.Errorf("cannot verify witnesses: %s", err)
		}
		for _, h := range verified.KeyHashes() {
			signers.Add(h)
		}
		env.logger.Debug("witnesses verified", "count", len(ws))
	}

	script, err := env.readScript(input)
	if err != nil {
		return err
	}

	ctx := timelock.WithInterval(signers, fromFl.val, untilFl.val)
	ok := script.Eval(ctx)
	env.logger.Info("script evaluated", "signers", signers.Len(), "result", ok)

	_, err = fmt.Fprintln(output, ok)
	return err
}
