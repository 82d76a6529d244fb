package nativescript

// scriptNamespace is prepended to the binary script before hashing. It
// separates native script hashes from the hashes of other script languages.
const scriptNamespace = 0x00

// Hash returns the script hash: blake2b-224 over the namespace byte followed
// by the binary representation.
func Hash(s Script) (ScriptHash, error) {
	raw, err := s.MarshalCBOR()
	if err != nil {
		return ScriptHash{}, err
	}
	return ScriptHash(blake2b224([]byte{scriptNamespace}, raw)), nil
}
