package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/nativescript/codec"
)

func cmdToCBOR(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a script and write its binary representation, hex encoded.
`)
		fl.PrintDefaults()
	}
	var (
		wrapFl = fl.Bool("wrap", false, "Prefix the binary representation with a single 0x00 byte.")
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
	raw, err := script.MarshalCBOR()
	if err != nil {
		return fmt.Errorf("cannot serialize script: %s", err)
	}
	if *wrapFl {
		raw = append([]byte{0}, raw...)
	}
	_, err = fmt.Fprintln(output, hex.EncodeToString(raw))
	return err
}

func cmdToJSON(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a script and write its JSON representation.
`)
		fl.PrintDefaults()
	}
	var (
		compactFl = fl.Bool("compact", false, "Do not indent the output.")
		set       = flSettings(fl)
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
	raw, err := script.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	if !*compactFl {
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, raw, "", "\t"); err != nil {
			return fmt.Errorf("cannot indent: %s", err)
		}
		raw = pretty.Bytes()
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

func cmdDiag(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a script and write the diagnostic notation of its binary representation.
`)
		fl.PrintDefaults()
	}
	set := flSettings(fl)
	fl.Parse(args)

	env, err := set.load()
	if err != nil {
		return err
	}
	script, err := env.readScript(input)
	if err != nil {
		return err
	}
	raw, err := script.MarshalCBOR()
	if err != nil {
		return fmt.Errorf("cannot serialize script: %s", err)
	}
	diag, err := codec.Diagnose(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, diag)
	return err
}
