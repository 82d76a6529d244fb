package nativetest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/iov-one/nativescript"
)

// RandomKeyHash returns a valid random key hash generated on the fly.
func RandomKeyHash(t testing.TB) nativescript.KeyHash {
	t.Helper()
	raw := make([]byte, nativescript.KeyHashLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random key hash: %s", err)
	}
	h, err := nativescript.NewKeyHash(raw)
	if err != nil {
		t.Fatalf("generated bytes are not a valid key hash: %s", err)
	}
	return h
}

// DecodeKeyHash takes a hex encoded key hash string and returns it's
// representation. This function ensures that returned value is a valid key
// hash.
func DecodeKeyHash(t testing.TB, encoded string) nativescript.KeyHash {
	t.Helper()
	h, err := nativescript.KeyHashFromHex(encoded)
	if err != nil {
		t.Fatalf("cannot decode key hash %q: %s", encoded, err)
	}
	return h
}

// SeqKeyHash returns a deterministic key hash for given sequence number. The
// number is stored big endian in the last eight bytes, so that key hashes
// sort in the sequence order.
func SeqKeyHash(i uint64) nativescript.KeyHash {
	var h nativescript.KeyHash
	binary.BigEndian.PutUint64(h[nativescript.KeyHashLength-8:], i)
	return h
}
