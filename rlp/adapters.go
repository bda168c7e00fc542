package rlp

import (
	"fmt"

	"github.com/holiman/uint256"
)

// BigUint is a 256-bit unsigned integer, the size Ethereum uses for
// balances, amounts, and similar quantities. It implements
// Encoder/Decoder so the structural (en|de)coder treats it
// transparently — a struct field typed BigUint opts into this
// treatment just by using the type, with no separate
// schema-registration step.
//
// BigUint is also the concrete example of a "newtype" single-field
// wrapper: it holds exactly one payload (Int) and encodes as that
// payload's minimal big-endian bytes directly, never as a one-element
// list.
type BigUint struct {
	Int *uint256.Int
}

// NewBigUint wraps u.
func NewBigUint(u *uint256.Int) BigUint {
	return BigUint{Int: u}
}

// EncodeRLP implements Encoder. Zero (or a nil Int) encodes to the
// empty byte string, matching the integer-minimality invariant every
// numeric adapter in this package follows.
func (b BigUint) EncodeRLP() ([]byte, error) {
	if b.Int == nil || b.Int.IsZero() {
		return []byte{0x80}, nil
	}
	return encodeString(b.Int.Bytes()), nil
}

// DecodeRLP implements Decoder.
func (b *BigUint) DecodeRLP(n *Node) error {
	raw, err := n.Bytes()
	if err != nil {
		return err
	}
	if len(raw) > 32 {
		return fmt.Errorf("%d-byte leaf into 256-bit integer: %w", len(raw), ErrIntegerOverflow)
	}
	if len(raw) >= 1 && raw[0] == 0 {
		return ErrNonMinimalInteger
	}
	b.Int = new(uint256.Int).SetBytes(raw)
	return nil
}

// Fixed-size byte arrays (addresses, hashes) need no adapter type of
// their own: a Go array [N]byte already carries its exact length in
// the type system, so the generic struct/slice/array walk in
// encode.go/decode.go encodes and decodes it as an N-byte string
// without stripping leading zeros (unlike the integer adapters, which
// strip them) and rejects any leaf whose length isn't exactly N with
// ErrLengthMismatch. See encodeValue's reflect.Array/Uint8 case and
// decodeInto's mirror image.
