package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/errors"
	"github.com/iov-one/nativescript/gconf"
	"github.com/iov-one/nativescript/x/timelock"
	"github.com/tendermint/tendermint/libs/log"
)

// logOutput is where all commands write their logs to.
var logOutput io.Writer = os.Stderr

// Config is the nscli section of the configuration file.
type Config struct {
	LogLevel string `json:"log_level"`
}

// Validate returns an error if the log level is not supported.
func (c Config) Validate() error {
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		return errors.Field("log_level", errors.ErrInvalidInput, "%s", err)
	}
	return nil
}

// settings are the flags shared by all script commands.
type settings struct {
	configPath *string
	logLevel   *string
}

func flSettings(fl *flag.FlagSet) *settings {
	return &settings{
		configPath: fl.String("config", "", "Path to a JSON configuration file."),
		logLevel:   fl.String("log-level", "", "Log level: debug, info, error or none. Overrides the configuration."),
	}
}

// env is what a command needs to process scripts.
type env struct {
	limits nativescript.Limits
	logger log.Logger
}

// load reads the configuration file if one was given. Flags take precedence
// over the configuration.
func (s *settings) load() (*env, error) {
	limits := nativescript.DefaultLimits()
	conf := Config{LogLevel: "error"}

	if *s.configPath != "" {
		opts, err := gconf.Load(*s.configPath)
		if err != nil {
			return nil, err
		}
		if err := gconf.InitConfig(opts, "nativescript", &limits); err != nil && !errors.ErrNotFound.Is(err) {
			return nil, err
		}
		if err := gconf.InitConfig(opts, "nscli", &conf); err != nil && !errors.ErrNotFound.Is(err) {
			return nil, err
		}
	}
	if *s.logLevel != "" {
		conf.LogLevel = *s.logLevel
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(logOutput, conf.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("limits loaded", "max_depth", limits.MaxDepth, "max_size", limits.MaxSize)
	return &env{limits: limits, logger: logger}, nil
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(w))
	return log.NewFilter(logger, opt).With("module", "nscli"), nil
}

// readScript reads a script from given input. JSON and hex encoded binary
// representations are accepted. Time lock leaves are supported.
func (e *env) readScript(input io.Reader) (nativescript.Script, error) {
	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.ErrInvalidInput.New("no input data")
	}

	if raw[0] == '{' {
		s, err := nativescript.DecodeJSONWithLimits(raw, e.limits, timelock.DecodeJSON)
		if err != nil {
			return nil, errors.Wrap(err, "cannot decode json script")
		}
		e.logger.Debug("script decoded", "format", "json", "size", len(raw), "kind", nativescript.KindOf(s))
		return s, nil
	}

	bin, err := decodeHex(raw)
	if err != nil {
		return nil, err
	}
	s, err := nativescript.DecodeCBORWithLimits(bin, e.limits, timelock.DecodeCBOR)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode binary script")
	}
	e.logger.Debug("script decoded", "format", "cbor", "size", len(bin), "kind", nativescript.KindOf(s))
	return s, nil
}

func decodeHex(raw []byte) ([]byte, error) {
	bin := make([]byte, hex.DecodedLen(len(raw)))
	if _, err := hex.Decode(bin, raw); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "input is neither json nor hex: %s", err)
	}
	return bin, nil
}
