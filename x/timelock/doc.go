/*
Package timelock provides script leaves that restrict when a script holds.

After holds once the transaction validity interval starts at or after a
slot. Before holds when the validity interval ends at or before a slot. Both
leaves can be used as children of any base script. Decode them with
DecodeCBOR and DecodeJSON of this package, which fall back to the base
decoders for everything else.

A leaf needs to know the validity interval. The context passed to Eval must
implement ValidityContext, otherwise every time lock leaf fails.
*/
package timelock
