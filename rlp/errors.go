package rlp

import "errors"

// Sentinel errors, one per error kind in the wire-format/codec contract.
// Decode errors are typically wrapped with positional context via
// fmt.Errorf("...: %w", ErrXxx), so callers should match with errors.Is
// rather than comparing directly.
var (
	// ErrUnsupportedType is returned when encoding encounters a bool,
	// signed integer, float, map, or a union value with no Encoder.
	ErrUnsupportedType = errors.New("rlp: unsupported type")

	// ErrIntegerOverflow is returned when a decoded leaf is wider than
	// the target integer type can hold.
	ErrIntegerOverflow = errors.New("rlp: integer overflow")

	// ErrNonMinimalInteger is returned when a decoded integer leaf has
	// a leading zero byte.
	ErrNonMinimalInteger = errors.New("rlp: non-minimal integer encoding")

	// ErrNonMinimalLength is returned when a length header uses the
	// long form where the short form would suffice, or the length
	// itself has a leading zero byte.
	ErrNonMinimalLength = errors.New("rlp: non-minimal length encoding")

	// ErrInputTooShort is returned when the buffer ends mid-header or
	// mid-payload.
	ErrInputTooShort = errors.New("rlp: input too short")

	// ErrTrailingBytes is returned when bytes remain after the
	// outermost value has been fully decoded.
	ErrTrailingBytes = errors.New("rlp: trailing bytes after value")

	// ErrShapeMismatch is returned when the schema expects a leaf where
	// the tree holds a list, or vice versa.
	ErrShapeMismatch = errors.New("rlp: shape mismatch")

	// ErrTrailingChildren is returned when a list has more children
	// than the schema consumes.
	ErrTrailingChildren = errors.New("rlp: trailing children in list")

	// ErrInvalidUTF8 is returned when a leaf decoded as a string is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("rlp: invalid utf-8")

	// ErrLengthMismatch is returned when a fixed-size byte array
	// receives a leaf of the wrong length.
	ErrLengthMismatch = errors.New("rlp: length mismatch")

	// ErrMaxDepthExceeded guards against adversarial input driving
	// unbounded recursion in either the encoder's frame stack or the
	// tree parser.
	ErrMaxDepthExceeded = errors.New("rlp: max nesting depth exceeded")
)
