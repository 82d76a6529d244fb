/*
Package witness turns verification key witnesses of a transaction into an
authorization context.

A witness is an ed25519 verification key together with its signature of the
transaction body hash. Verify checks every witness and returns the set of key
hashes that signed, which can be used to evaluate Sig scripts.
*/
package witness
