package crypto

import (
	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/errors"
	"golang.org/x/crypto/ed25519"
)

// PubKey is the functionality we use from a verification key.
type PubKey interface {
	Verify(message, sig []byte) bool
	KeyHash() (nativescript.KeyHash, error)
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey is an ed25519 verification key.
type PublicKey []byte

var _ PubKey = PublicKey(nil)

// NewPublicKey returns a verification key holding a copy of given bytes.
func NewPublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != ed25519.PublicKeySize {
		return nil, errors.ErrInvalidLength.Newf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	p := make(PublicKey, len(raw))
	copy(p, raw)
	return p, nil
}

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message, sig []byte) bool {
	if len(p) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// KeyHash returns the hash that identifies this key in Sig scripts.
func (p PublicKey) KeyHash() (nativescript.KeyHash, error) {
	return nativescript.KeyHashFromPubKey(ed25519.PublicKey(p))
}

// PrivateKey is an ed25519 signing key.
type PrivateKey []byte

var _ Signer = PrivateKey(nil)

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p) != ed25519.PrivateKeySize {
		return nil, errors.ErrInvalidLength.Newf("private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(p))
	}
	return ed25519.Sign(ed25519.PrivateKey(p), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return PublicKey(pub)
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey(priv)
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey(ed25519.NewKeyFromSeed(seed))
}
