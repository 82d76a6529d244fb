package gconf

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/nativescript/errors"
)

// Options are the configuration options
// Each package can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal(msg, obj); err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "key %q: %s", key, err)
	}
	return nil
}

// Load reads configuration options from a JSON file.
func Load(path string) (Options, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "configuration file: %s", err)
	}
	defer fd.Close()
	return Read(fd)
}

// Read reads configuration options from a JSON document.
func Read(r io.Reader) (Options, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	var opts Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot unmarshal configuration: %s", err)
	}
	return opts, nil
}

// Configuration is implemented by any object that can validate itself after
// it was read.
type Configuration interface {
	Validate() error
}

// InitConfig will take opts["conf"][pkg], parse it into the given Configuration object
// and validate it.
// Returns an error if anything goes wrong
func InitConfig(opts Options, pkg string, conf Configuration) error {
	var confOptions Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := conf.Validate(); err != nil {
		return errors.Wrapf(err, "validation: %s", pkg)
	}
	return nil
}
