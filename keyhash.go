package nativescript

import (
	"bytes"
	"encoding/hex"
	"encoding/json"

	"github.com/iov-one/nativescript/codec"
	"github.com/iov-one/nativescript/crypto/bech32"
	"github.com/iov-one/nativescript/errors"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ed25519"
)

const (
	// KeyHashLength is the length of a key hash in bytes. Key hashes are
	// blake2b-224 digests.
	KeyHashLength = 28

	// KeyHashBech32Prefix is the human readable part of a bech32 encoded
	// verification key hash.
	KeyHashBech32Prefix = "addr_vkh"
)

// KeyHash is the blake2b-224 hash of a verification key. It identifies the
// key holder that a Sig script requires to be authorized.
//
// KeyHash is a value type; copies never alias.
type KeyHash [KeyHashLength]byte

// NewKeyHash returns a key hash that holds a copy of given bytes. It fails if
// the input is not exactly KeyHashLength long.
func NewKeyHash(b []byte) (KeyHash, error) {
	var h KeyHash
	if len(b) != KeyHashLength {
		return h, errors.ErrInvalidLength.Newf("key hash must be %d bytes, got %d", KeyHashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// IsValidKeyHash returns true if given bytes can be used to create a key hash.
func IsValidKeyHash(b []byte) bool {
	_, err := NewKeyHash(b)
	return err == nil
}

// DummyKeyHash returns the all-zero key hash.
//
// Use it for test fixtures only. Nobody holds a key hashing to it and it must
// never be treated as a real world credential.
func DummyKeyHash() KeyHash {
	return KeyHash{}
}

// KeyHashFromHex decodes a hex encoded key hash. The input must be exactly
// 2*KeyHashLength characters long.
func KeyHashFromHex(s string) (KeyHash, error) {
	if len(s) != 2*KeyHashLength {
		return KeyHash{}, errors.ErrInvalidLength.Newf("hex key hash must be %d characters, got %d", 2*KeyHashLength, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return KeyHash{}, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return NewKeyHash(raw)
}

// KeyHashFromPubKey returns the key hash of given ed25519 verification key.
func KeyHashFromPubKey(pub ed25519.PublicKey) (KeyHash, error) {
	if len(pub) != ed25519.PublicKeySize {
		return KeyHash{}, errors.ErrInvalidLength.Newf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	return KeyHash(blake2b224(pub)), nil
}

// ParseKeyHash decodes a key hash from either its bech32 form (addr_vkh1...)
// or from its hex form.
func ParseKeyHash(s string) (KeyHash, error) {
	if len(s) == 2*KeyHashLength {
		return KeyHashFromHex(s)
	}
	hrp, payload, err := bech32.Decode(s)
	if err != nil {
		return KeyHash{}, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if hrp != KeyHashBech32Prefix {
		return KeyHash{}, errors.ErrInvalidInput.Newf("unexpected bech32 prefix %q", hrp)
	}
	return NewKeyHash(payload)
}

// Bytes returns a copy of the raw key hash.
func (h KeyHash) Bytes() []byte {
	b := make([]byte, KeyHashLength)
	copy(b, h[:])
	return b
}

// Hex returns the lowercase hex representation.
func (h KeyHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String returns a human readable string, the lowercase hex representation.
func (h KeyHash) String() string {
	return h.Hex()
}

// Dump returns the diagnostic representation.
func (h KeyHash) Dump() string {
	return h.Hex()
}

// Bech32 returns the addr_vkh bech32 representation.
func (h KeyHash) Bech32() (string, error) {
	raw, err := bech32.Encode(KeyHashBech32Prefix, h[:])
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Equals checks if two key hashes are the same.
func (h KeyHash) Equals(other KeyHash) bool {
	return h == other
}

// Compare orders key hashes lexicographically by their bytes. The result is
// negative, zero or positive.
func (h KeyHash) Compare(other KeyHash) int {
	return bytes.Compare(h[:], other[:])
}

// CompareKeyHashes orders key hashes lexicographically by their bytes.
func CompareKeyHashes(a, b KeyHash) int {
	return a.Compare(b)
}

// MarshalCBOR encodes the key hash as a definite-length byte string.
func (h KeyHash) MarshalCBOR() ([]byte, error) {
	return codec.EncodeBytes(h[:]), nil
}

// UnmarshalCBOR decodes a key hash from a byte string.
func (h *KeyHash) UnmarshalCBOR(raw []byte) error {
	b, err := codec.DecodeBytes(raw)
	if err != nil {
		return errors.Wrap(err, "key hash")
	}
	kh, err := NewKeyHash(b)
	if err != nil {
		return err
	}
	*h = kh
	return nil
}

// MarshalJSON provides a hex representation for JSON.
func (h KeyHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

// UnmarshalJSON decodes a key hash from a hex encoded JSON string.
func (h *KeyHash) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "cannot decode json")
	}
	kh, err := KeyHashFromHex(enc)
	if err != nil {
		return err
	}
	*h = kh
	return nil
}

// ScriptHash is the blake2b-224 hash identifying a script. See Hash.
type ScriptHash [KeyHashLength]byte

// Hex returns the lowercase hex representation.
func (h ScriptHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String returns a human readable string, the lowercase hex representation.
func (h ScriptHash) String() string {
	return h.Hex()
}

// Equals checks if two script hashes are the same.
func (h ScriptHash) Equals(other ScriptHash) bool {
	return h == other
}

// MarshalJSON provides a hex representation for JSON.
func (h ScriptHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

func blake2b224(data ...[]byte) [KeyHashLength]byte {
	hash, err := blake2b.New(KeyHashLength, nil)
	if err != nil {
		// Only returned for an invalid size or key.
		panic(err)
	}
	for _, d := range data {
		hash.Write(d)
	}
	var sum [KeyHashLength]byte
	copy(sum[:], hash.Sum(nil))
	return sum
}
