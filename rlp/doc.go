// Package rlp implements Recursive Length Prefix encoding: a byte
// serialization format for arbitrarily nested byte strings and ordered
// sequences, with no independent type information on the wire and
// exactly one valid encoding per value.
//
// Values are built from Go's reflect package: unsigned integers,
// *big.Int, strings, []byte/[N]byte, structs (encoded as lists of
// their exported fields, in declaration order), and slices/arrays of
// any of the above. A type implementing Encoder and/or Decoder takes
// over its own (en|de)coding entirely, which is how newtype wrappers
// and union/variant values opt out of the generic struct-as-list
// default. Decoding into a Proxy bypasses schema matching altogether,
// handing back the raw bytes and parsed tree for the caller to inspect
// before choosing a concrete target — RLP carries no tag to choose one
// automatically.
package rlp
