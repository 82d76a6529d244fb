package nativescript

// AuthContext answers whether a key holder authorized the action a script is
// evaluated for. Usually a key hash is authorized because a valid signature
// of that key is present. The context is provided by the caller; scripts only
// ever query it.
type AuthContext interface {
	IsAuthorized(KeyHash) bool
}

// AuthFunc is an adapter to allow the use of an ordinary function as an
// AuthContext.
type AuthFunc func(KeyHash) bool

var _ AuthContext = AuthFunc(nil)

// IsAuthorized calls fn(h).
func (fn AuthFunc) IsAuthorized(h KeyHash) bool {
	return fn(h)
}

// MultiAuth chains together many AuthContexts into one.
type MultiAuth struct {
	impls []AuthContext
}

var _ AuthContext = MultiAuth{}

// ChainAuth groups together a series of AuthContext. The result authorizes a
// key hash if any of the members does.
func ChainAuth(impls ...AuthContext) MultiAuth {
	return MultiAuth{impls: impls}
}

// IsAuthorized returns true iff any AuthContext authorizes given key hash.
func (m MultiAuth) IsAuthorized(h KeyHash) bool {
	for _, impl := range m.impls {
		if impl.IsAuthorized(h) {
			return true
		}
	}
	return false
}
