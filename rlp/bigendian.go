package rlp

import (
	"fmt"
	"math/big"
)

// encodeUint returns the minimal big-endian RLP string encoding of u:
// the empty string for zero, the single byte itself for [1, 127], and
// a length-prefixed big-endian string otherwise.
func encodeUint(u uint64) []byte {
	if u == 0 {
		return []byte{0x80}
	}
	return encodeString(putUintBE(u))
}

// decodeUint interprets a leaf's payload as a big-endian unsigned
// integer no wider than maxBytes, rejecting non-minimal (leading-zero)
// encodings and overflow. A single 0x00 byte is itself non-minimal:
// the only canonical encoding of zero is the empty leaf.
func decodeUint(b []byte, maxBytes int) (uint64, error) {
	if len(b) > maxBytes {
		return 0, fmt.Errorf("%d-byte leaf into %d-byte integer: %w", len(b), maxBytes, ErrIntegerOverflow)
	}
	if len(b) >= 1 && b[0] == 0 {
		return 0, ErrNonMinimalInteger
	}
	v, err := readUintBE(b)
	if err != nil {
		return 0, fmt.Errorf("%w", ErrIntegerOverflow)
	}
	return v, nil
}

// encodeBigInt returns the minimal big-endian RLP string encoding of i.
// i must be non-negative; RLP (and this library) has no signed-integer
// representation.
func encodeBigInt(i *big.Int) []byte {
	if i == nil || i.Sign() == 0 {
		return []byte{0x80}
	}
	return encodeString(i.Bytes())
}

// decodeBigInt interprets a leaf's payload as an arbitrary-precision
// big-endian unsigned integer, rejecting non-minimal (leading-zero)
// encodings — including a single 0x00 byte, since zero's only
// canonical encoding is the empty leaf.
func decodeBigInt(b []byte) (*big.Int, error) {
	if len(b) >= 1 && b[0] == 0 {
		return nil, ErrNonMinimalInteger
	}
	return new(big.Int).SetBytes(b), nil
}
