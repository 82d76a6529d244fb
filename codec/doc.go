/*
Package codec provides the binary primitives native scripts are built from.

It wraps github.com/fxamacker/cbor/v2 with the shapes the ledger script format
uses: definite-length tuples and lists, integers and byte strings. Encoding
always produces the shortest integer form and definite lengths, so the same
value always encodes to the same bytes.

Tuples and lists share the CBOR array representation. A tuple is an array of
a fixed arity whose first element is a small integer tag, a list is an array
of homogeneous elements.

Decoding is lazy: DecodeTagged and DecodeList return the elements as raw,
still encoded values so that the caller decides how each one is decoded.
*/
package codec
