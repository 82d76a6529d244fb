package nativetest

import (
	"github.com/iov-one/nativescript"
)

// Auth is a mock implementing nativescript.AuthContext interface.
//
// It authorizes every key hash listed in Signers. Each query is recorded in
// Queried, which allows to test which key hashes a script asked about and in
// what order.
type Auth struct {
	// Signers represents the authorized key hashes.
	Signers []nativescript.KeyHash

	// Queried lists all key hashes the context was asked about.
	Queried []nativescript.KeyHash
}

var _ nativescript.AuthContext = (*Auth)(nil)

// NewAuth returns a context authorizing given key hashes.
func NewAuth(signers ...nativescript.KeyHash) *Auth {
	return &Auth{Signers: signers}
}

func (a *Auth) IsAuthorized(h nativescript.KeyHash) bool {
	a.Queried = append(a.Queried, h)
	for _, s := range a.Signers {
		if s.Equals(h) {
			return true
		}
	}
	return false
}

var (
	// AllowAll is a context authorizing every key hash.
	AllowAll nativescript.AuthContext = nativescript.AuthFunc(func(nativescript.KeyHash) bool { return true })

	// DenyAll is a context authorizing nothing.
	DenyAll nativescript.AuthContext = nativescript.AuthFunc(func(nativescript.KeyHash) bool { return false })
)
