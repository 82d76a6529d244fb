package nativetest

import (
	"testing"

	"github.com/iov-one/nativescript"
)

// AtLeast returns an at-least script and fails the test if it cannot be
// created.
func AtLeast(t testing.TB, required int, scripts ...nativescript.Script) *nativescript.AtLeast {
	t.Helper()
	s, err := nativescript.NewAtLeast(required, scripts...)
	if err != nil {
		t.Fatalf("cannot create at-least %d script: %s", required, err)
	}
	return s
}

// Sigs returns a signature script for each given key hash.
func Sigs(hashes ...nativescript.KeyHash) []nativescript.Script {
	res := make([]nativescript.Script, len(hashes))
	for i, h := range hashes {
		res[i] = nativescript.NewSig(h)
	}
	return res
}

// Nest returns a script that is depth levels deep. The innermost level is a
// signature of given key hash, every level above it is an All with a single
// child.
func Nest(depth int, h nativescript.KeyHash) nativescript.Script {
	var s nativescript.Script = nativescript.NewSig(h)
	for i := 1; i < depth; i++ {
		s = nativescript.NewAll(s)
	}
	return s
}
