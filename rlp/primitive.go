package rlp

import "fmt"

// MaxDepth bounds how deeply nested a value (on encode) or an input
// buffer (on decode) may be. It exists so adversarial input can't drive
// the recursive traversal into a native stack overflow.
const MaxDepth = 32

// kind distinguishes RLP's two wire categories while decoding.
type kind int

const (
	kindByte kind = iota
	kindString
	kindList
)

// encodeString returns the RLP encoding of a byte string payload,
// applying the single-byte short-circuit and the short/long length
// forms of the Yellow Paper's B mapping.
func encodeString(data []byte) []byte {
	n := len(data)
	if n == 1 && data[0] < 0x80 {
		return []byte{data[0]}
	}
	if n <= 55 {
		buf := make([]byte, 1+n)
		buf[0] = 0x80 + byte(n)
		copy(buf[1:], data)
		return buf
	}
	lb := putUintBE(uint64(n))
	buf := make([]byte, 1+len(lb)+n)
	buf[0] = 0xb7 + byte(len(lb))
	copy(buf[1:], lb)
	copy(buf[1+len(lb):], data)
	return buf
}

// wrapList wraps an already-encoded concatenation of child payloads
// with an L header.
func wrapList(payload []byte) []byte {
	n := len(payload)
	if n <= 55 {
		buf := make([]byte, 1+n)
		buf[0] = 0xc0 + byte(n)
		copy(buf[1:], payload)
		return buf
	}
	lb := putUintBE(uint64(n))
	buf := make([]byte, 1+len(lb)+n)
	buf[0] = 0xf7 + byte(len(lb))
	copy(buf[1:], lb)
	copy(buf[1+len(lb):], payload)
	return buf
}

// WrapList wraps an already RLP-encoded concatenation of child items
// with a list header. Useful for callers (such as EncoderPool.EncodeBatch)
// that build a list payload by hand instead of going through Encode.
func WrapList(payload []byte) []byte {
	return wrapList(payload)
}

// AppendBytes appends the RLP encoding of data to dst and returns the
// extended slice.
func AppendBytes(dst, data []byte) []byte {
	return append(dst, encodeString(data)...)
}

// header describes one parsed RLP item: its category, the bounds of
// its payload within the source buffer, and the total number of bytes
// the header+payload occupy (so the caller can advance past it).
type header struct {
	kind       kind
	start, end int // payload bounds, header excluded
	total      int // header + payload length
}

// splitHeader parses the single RLP item beginning at data[0], which
// must be the start of a well-formed header. It enforces that length
// headers are minimally encoded, returning ErrInputTooShort /
// ErrNonMinimalLength as appropriate.
func splitHeader(data []byte) (header, error) {
	if len(data) == 0 {
		return header{}, ErrInputTooShort
	}
	tag := data[0]

	switch {
	case tag < 0x80:
		return header{kind: kindByte, start: 0, end: 1, total: 1}, nil

	case tag <= 0xb7:
		size := int(tag - 0x80)
		end := 1 + size
		if end > len(data) {
			return header{}, fmt.Errorf("string payload: %w", ErrInputTooShort)
		}
		// A single byte below 0x80 encoded with an explicit header here
		// (e.g. 0x81 0x00) is accepted at the framing layer — this
		// string/bytes leaf decodes fine. Whether it's canonical is a
		// question for the integer adapter that later interprets the
		// payload, not this parser.
		return header{kind: kindString, start: 1, end: end, total: end}, nil

	case tag <= 0xbf:
		lenOfLen := int(tag - 0xb7)
		if 1+lenOfLen > len(data) {
			return header{}, fmt.Errorf("string length header: %w", ErrInputTooShort)
		}
		lenBytes := data[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return header{}, fmt.Errorf("string length has leading zero: %w", ErrNonMinimalLength)
		}
		size, err := readUintBE(lenBytes)
		if err != nil {
			return header{}, err
		}
		if size <= 55 {
			return header{}, fmt.Errorf("long-form string length %d fits short form: %w", size, ErrNonMinimalLength)
		}
		start := 1 + lenOfLen
		end := start + int(size)
		if end < start || end > len(data) {
			return header{}, fmt.Errorf("string payload: %w", ErrInputTooShort)
		}
		return header{kind: kindString, start: start, end: end, total: end}, nil

	case tag <= 0xf7:
		size := int(tag - 0xc0)
		end := 1 + size
		if end > len(data) {
			return header{}, fmt.Errorf("list payload: %w", ErrInputTooShort)
		}
		return header{kind: kindList, start: 1, end: end, total: end}, nil

	default:
		lenOfLen := int(tag - 0xf7)
		if 1+lenOfLen > len(data) {
			return header{}, fmt.Errorf("list length header: %w", ErrInputTooShort)
		}
		lenBytes := data[1 : 1+lenOfLen]
		if lenBytes[0] == 0 {
			return header{}, fmt.Errorf("list length has leading zero: %w", ErrNonMinimalLength)
		}
		size, err := readUintBE(lenBytes)
		if err != nil {
			return header{}, err
		}
		if size <= 55 {
			return header{}, fmt.Errorf("long-form list length %d fits short form: %w", size, ErrNonMinimalLength)
		}
		start := 1 + lenOfLen
		end := start + int(size)
		if end < start || end > len(data) {
			return header{}, fmt.Errorf("list payload: %w", ErrInputTooShort)
		}
		return header{kind: kindList, start: start, end: end, total: end}, nil
	}
}

// putUintBE encodes u as big-endian with leading zero bytes stripped;
// zero itself yields the empty slice, matching the integer-minimality
// invariant every numeric adapter in this package relies on.
func putUintBE(u uint64) []byte {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = byte(u)
		u >>= 8
	}
	i := 0
	for i < 8 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// readUintBE interprets b as a big-endian unsigned integer. Callers
// that must reject leading zeros (length headers, integer leaves)
// check that separately; this just converts.
func readUintBE(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("%d-byte length header: %w", len(b), ErrIntegerOverflow)
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v, nil
}
