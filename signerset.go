package nativescript

import (
	"github.com/google/btree"
)

// signerSetDegree is the btree degree used by SignerSet. Signer sets are
// small, a low degree keeps the nodes compact.
const signerSetDegree = 8

// SignerSet is an ordered set of key hashes. It is an AuthContext that
// authorizes exactly the key hashes it contains.
//
// Adding is not safe for concurrent use. Once populated, a set can be read
// from many goroutines.
type SignerSet struct {
	tree *btree.BTree
}

var _ AuthContext = (*SignerSet)(nil)

// NewSignerSet returns a set containing given key hashes. Duplicates are
// dropped.
func NewSignerSet(hashes ...KeyHash) *SignerSet {
	s := &SignerSet{tree: btree.New(signerSetDegree)}
	for _, h := range hashes {
		s.Add(h)
	}
	return s
}

// Add inserts a key hash. It returns false if the key hash was already
// present.
func (s *SignerSet) Add(h KeyHash) bool {
	if s.tree == nil {
		s.tree = btree.New(signerSetDegree)
	}
	return s.tree.ReplaceOrInsert(keyHashItem(h)) == nil
}

// Has returns true if given key hash is in the set.
func (s *SignerSet) Has(h KeyHash) bool {
	if s == nil || s.tree == nil {
		return false
	}
	return s.tree.Has(keyHashItem(h))
}

// IsAuthorized implements AuthContext.
func (s *SignerSet) IsAuthorized(h KeyHash) bool {
	return s.Has(h)
}

// Len returns the number of key hashes in the set.
func (s *SignerSet) Len() int {
	if s == nil || s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// KeyHashes returns all key hashes in ascending order.
func (s *SignerSet) KeyHashes() []KeyHash {
	res := make([]KeyHash, 0, s.Len())
	if s.Len() == 0 {
		return res
	}
	s.tree.Ascend(func(i btree.Item) bool {
		res = append(res, KeyHash(i.(keyHashItem)))
		return true
	})
	return res
}

// keyHashItem orders key hashes within the btree.
type keyHashItem KeyHash

func (a keyHashItem) Less(than btree.Item) bool {
	return KeyHash(a).Compare(KeyHash(than.(keyHashItem))) < 0
}
