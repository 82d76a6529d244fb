package witness

import (
	"github.com/iov-one/nativescript/codec"
	"github.com/iov-one/nativescript/crypto"
	"github.com/iov-one/nativescript/errors"
	"golang.org/x/crypto/ed25519"
)

// Witness is a verification key and its signature of a transaction body
// hash.
type Witness struct {
	VKey      crypto.PublicKey
	Signature []byte
}

// Validate returns an error if the witness cannot be verified because of its
// shape.
func (w Witness) Validate() error {
	if len(w.VKey) != ed25519.PublicKeySize {
		return errors.Field("vkey", errors.ErrInvalidLength, "must be %d bytes, got %d", ed25519.PublicKeySize, len(w.VKey))
	}
	if len(w.Signature) != ed25519.SignatureSize {
		return errors.Field("signature", errors.ErrInvalidLength, "must be %d bytes, got %d", ed25519.SignatureSize, len(w.Signature))
	}
	return nil
}

// MarshalCBOR encodes the witness as [vkey, signature].
func (w Witness) MarshalCBOR() ([]byte, error) {
	return codec.EncodeTuple(codec.EncodeBytes(w.VKey), codec.EncodeBytes(w.Signature)), nil
}

// UnmarshalCBOR decodes a witness from [vkey, signature].
func (w *Witness) UnmarshalCBOR(raw []byte) error {
	fields, err := codec.DecodeList(raw)
	if err != nil {
		return errors.Wrap(err, "witness")
	}
	if len(fields) != 2 {
		return errors.ErrMalformed.Newf("witness expects 2 fields, got %d", len(fields))
	}
	vkey, err := codec.DecodeBytes(fields[0])
	if err != nil {
		return errors.Wrap(err, "vkey")
	}
	sig, err := codec.DecodeBytes(fields[1])
	if err != nil {
		return errors.Wrap(err, "signature")
	}
	*w = Witness{VKey: crypto.PublicKey(vkey), Signature: sig}
	return nil
}

// EncodeWitnesses returns the binary representation of a witness list.
func EncodeWitnesses(witnesses []Witness) ([]byte, error) {
	items := make([][]byte, len(witnesses))
	for i, w := range witnesses {
		raw, err := w.MarshalCBOR()
		if err != nil {
			return nil, errors.Wrapf(err, "witness %d", i)
		}
		items[i] = raw
	}
	return codec.EncodeDefList(items...), nil
}

// DecodeWitnesses decodes a list of witnesses, [[vkey, signature], ...].
// Witnesses are not verified.
func DecodeWitnesses(data []byte) ([]Witness, error) {
	items, err := codec.DecodeList(data)
	if err != nil {
		return nil, errors.Wrap(err, "witnesses")
	}
	res := make([]Witness, len(items))
	for i, raw := range items {
		if err := res[i].UnmarshalCBOR(raw); err != nil {
			return nil, errors.Wrapf(err, "witness %d", i)
		}
	}
	return res, nil
}
