package witness

import (
	"github.com/iov-one/nativescript"
	"github.com/iov-one/nativescript/crypto"
	"github.com/iov-one/nativescript/errors"
	"golang.org/x/crypto/blake2b"
)

// BodyHashLength is the length of a transaction body hash.
const BodyHashLength = blake2b.Size256

// BodyHash returns the hash of a serialized transaction body. This is the
// message every witness signs.
func BodyHash(body []byte) []byte {
	sum := blake2b.Sum256(body)
	return sum[:]
}

// Sign creates a witness of given body hash.
func Sign(signer crypto.Signer, bodyHash []byte) (Witness, error) {
	sig, err := signer.Sign(bodyHash)
	if err != nil {
		return Witness{}, err
	}
	return Witness{VKey: signer.PublicKey(), Signature: sig}, nil
}

// VerifyWitness checks one witness against the body hash and returns the key
// hash of the verification key.
func VerifyWitness(w Witness, bodyHash []byte) (nativescript.KeyHash, error) {
	if err := w.Validate(); err != nil {
		return nativescript.KeyHash{}, err
	}
	if !w.VKey.Verify(bodyHash, w.Signature) {
		return nativescript.KeyHash{}, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	return w.VKey.KeyHash()
}

// Verify checks all the witnesses of a transaction.
//
// Returns the set of key hashes that signed (possibly empty), or an error if
// any witness is invalid. Duplicated witnesses are counted once.
func Verify(bodyHash []byte, witnesses []Witness) (*nativescript.SignerSet, error) {
	if len(bodyHash) != BodyHashLength {
		return nil, errors.ErrInvalidLength.Newf("body hash must be %d bytes, got %d", BodyHashLength, len(bodyHash))
	}
	signers := nativescript.NewSignerSet()
	for i, w := range witnesses {
		h, err := VerifyWitness(w, bodyHash)
		if err != nil {
			return nil, errors.Wrapf(err, "witness %d", i)
		}
		signers.Add(h)
	}
	return signers, nil
}
