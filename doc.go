/*

Package nativescript implements the ledger native script: a recursive,
self-describing authorization predicate.

A script is a tree. A Sig leaf requires a single key hash to be authorized,
All requires every child to hold, Any requires at least one child to hold and
AtLeast requires a minimum number of its children to hold. A script is
evaluated against an AuthContext that answers whether a key hash is
authorized, usually because a valid signature from that key is present.

Scripts round-trip through two wire formats, a tagged-tuple CBOR encoding and
a JSON document. Both decoders accept an injectable child decoder, so that
extensions (see x/timelock) can add leaf kinds without this package knowing
about them.

Scripts are immutable values. Evaluation and encoding are pure and the same
script can be used from many goroutines at once.

*/

package nativescript
