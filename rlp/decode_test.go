package rlp

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"empty string", []byte{0x80}, ""},
		{"dog", []byte{0x83, 0x64, 0x6f, 0x67}, "dog"},
		{"single char 'a'", []byte{0x61}, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			err := DecodeBytes(tt.input, &got)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeUint64(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint64
	}{
		{"uint(0)", []byte{0x80}, 0},
		{"uint(1)", []byte{0x01}, 1},
		{"uint(127)", []byte{0x7f}, 127},
		{"uint(128)", []byte{0x81, 0x80}, 128},
		{"uint(1024)", []byte{0x82, 0x04, 0x00}, 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uint64
			err := DecodeBytes(tt.input, &got)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDecodeBigInt(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  *big.Int
	}{
		{"big.Int(0)", []byte{0x80}, big.NewInt(0)},
		{"big.Int(1)", []byte{0x01}, big.NewInt(1)},
		{"big.Int(127)", []byte{0x7f}, big.NewInt(127)},
		{"big.Int(128)", []byte{0x81, 0x80}, big.NewInt(128)},
		{"big.Int(1024)", []byte{0x82, 0x04, 0x00}, big.NewInt(1024)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got big.Int
			err := DecodeBytes(tt.input, &got)
			if err != nil {
				t.Fatal(err)
			}
			if got.Cmp(tt.want) != 0 {
				t.Fatalf("got %s, want %s", got.String(), tt.want.String())
			}
		})
	}
}

func TestDecodeBigUint(t *testing.T) {
	var got BigUint
	err := DecodeBytes([]byte{0x82, 0x01, 0x00}, &got)
	if err != nil {
		t.Fatal(err)
	}
	want := uint256.NewInt(256)
	if got.Int.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", got.Int.String(), want.String())
	}
}

func TestDecodeBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []byte
	}{
		{"empty", []byte{0x80}, []byte{}},
		{"single zero", []byte{0x00}, []byte{0x00}},
		{"single 0x7f", []byte{0x7f}, []byte{0x7f}},
		{"single 0x80", []byte{0x81, 0x80}, []byte{0x80}},
		{"three bytes", []byte{0x83, 0x01, 0x02, 0x03}, []byte{0x01, 0x02, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []byte
			err := DecodeBytes(tt.input, &got)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestDecodeStruct(t *testing.T) {
	type TestStruct struct {
		Name string
		Age  uint64
	}
	input := []byte{0xc5, 0x83, 0x63, 0x61, 0x74, 0x05}
	var got TestStruct
	err := DecodeBytes(input, &got)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "cat" || got.Age != 5 {
		t.Fatalf("got %+v, want {Name:cat Age:5}", got)
	}
}

func TestDecodeUnitStruct(t *testing.T) {
	type Unit struct{}
	var got Unit
	if err := DecodeBytes([]byte{0x80}, &got); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeUnitStructRejectsNonEmpty(t *testing.T) {
	type Unit struct{}
	var got Unit
	err := DecodeBytes([]byte{0x83, 0x64, 0x6f, 0x67}, &got)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestDecodeStringSlice(t *testing.T) {
	// ["cat", "dog"]
	input := []byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67}
	var got []string
	err := DecodeBytes(input, &got)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "cat" || got[1] != "dog" {
		t.Fatalf("got %v, want [cat dog]", got)
	}
}

// Round-trip tests: encode then decode.

func TestRoundTripString(t *testing.T) {
	tests := []string{"", "hello", "dog", "a"}
	for _, s := range tests {
		enc, err := EncodeToBytes(s)
		if err != nil {
			t.Fatal(err)
		}
		var dec string
		err = DecodeBytes(enc, &dec)
		if err != nil {
			t.Fatalf("decode %q: %v", s, err)
		}
		if dec != s {
			t.Fatalf("round-trip: got %q, want %q", dec, s)
		}
	}
}

func TestRoundTripUint64(t *testing.T) {
	tests := []uint64{0, 1, 127, 128, 255, 256, 1024, 65535, 1<<32 - 1, 1<<64 - 1}
	for _, u := range tests {
		enc, err := EncodeToBytes(u)
		if err != nil {
			t.Fatal(err)
		}
		var dec uint64
		err = DecodeBytes(enc, &dec)
		if err != nil {
			t.Fatalf("decode %d: %v", u, err)
		}
		if dec != u {
			t.Fatalf("round-trip: got %d, want %d", dec, u)
		}
	}
}

func TestRoundTripBytes(t *testing.T) {
	tests := [][]byte{{}, {0x00}, {0x7f}, {0x80}, {0x01, 0x02, 0x03}}
	for _, b := range tests {
		enc, err := EncodeToBytes(b)
		if err != nil {
			t.Fatal(err)
		}
		var dec []byte
		err = DecodeBytes(enc, &dec)
		if err != nil {
			t.Fatalf("decode %x: %v", b, err)
		}
		if !bytes.Equal(dec, b) {
			t.Fatalf("round-trip: got %x, want %x", dec, b)
		}
	}
}

func TestRoundTripBigInt(t *testing.T) {
	tests := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(127), big.NewInt(128), big.NewInt(1024)}
	for _, bi := range tests {
		enc, err := EncodeToBytes(bi)
		if err != nil {
			t.Fatal(err)
		}
		var dec big.Int
		err = DecodeBytes(enc, &dec)
		if err != nil {
			t.Fatalf("decode %s: %v", bi.String(), err)
		}
		if dec.Cmp(bi) != 0 {
			t.Fatalf("round-trip: got %s, want %s", dec.String(), bi.String())
		}
	}
}

func TestRoundTripBigUint(t *testing.T) {
	tests := []uint64{0, 1, 127, 128, 1024}
	for _, u := range tests {
		original := NewBigUint(uint256.NewInt(u))
		enc, err := EncodeToBytes(original)
		if err != nil {
			t.Fatal(err)
		}
		var dec BigUint
		if err := DecodeBytes(enc, &dec); err != nil {
			t.Fatalf("decode %d: %v", u, err)
		}
		if dec.Int.Cmp(uint256.NewInt(u)) != 0 {
			t.Fatalf("round-trip: got %s, want %d", dec.Int.String(), u)
		}
	}
}

func TestRoundTripStruct(t *testing.T) {
	type TestStruct struct {
		Name string
		Age  uint64
	}
	original := TestStruct{Name: "alice", Age: 30}
	enc, err := EncodeToBytes(original)
	if err != nil {
		t.Fatal(err)
	}
	var dec TestStruct
	err = DecodeBytes(enc, &dec)
	if err != nil {
		t.Fatal(err)
	}
	if dec != original {
		t.Fatalf("round-trip: got %+v, want %+v", dec, original)
	}
}

func TestRoundTripStringSlice(t *testing.T) {
	original := []string{"cat", "dog", "fish"}
	enc, err := EncodeToBytes(original)
	if err != nil {
		t.Fatal(err)
	}
	var dec []string
	err = DecodeBytes(enc, &dec)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != len(original) {
		t.Fatalf("length mismatch: got %d, want %d", len(dec), len(original))
	}
	for i := range dec {
		if dec[i] != original[i] {
			t.Fatalf("index %d: got %q, want %q", i, dec[i], original[i])
		}
	}
}

func TestRoundTripLongString(t *testing.T) {
	s := "Lorem ipsum dolor sit amet, consectetur adipisicing elit"
	enc, err := EncodeToBytes(s)
	if err != nil {
		t.Fatal(err)
	}
	var dec string
	err = DecodeBytes(enc, &dec)
	if err != nil {
		t.Fatal(err)
	}
	if dec != s {
		t.Fatalf("round-trip: got %q, want %q", dec, s)
	}
}

// Error cases.

func TestDecodeTruncatedInput(t *testing.T) {
	// A string that claims to be 3 bytes but only has 2.
	input := []byte{0x83, 0x64, 0x6f}
	var got string
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrInputTooShort) {
		t.Fatalf("got %v, want ErrInputTooShort", err)
	}
}

func TestDecodeNonMinimalLengthPrefix(t *testing.T) {
	// A long-form header for a length that fits the short form is non-canonical.
	input := []byte{0xb8, 0x01, 0x61} // claims long string, len=1, but 1 <= 55
	var got string
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrNonMinimalLength) {
		t.Fatalf("got %v, want ErrNonMinimalLength", err)
	}
}

func TestDecodeLeadingZeroUint(t *testing.T) {
	// 0x82, 0x00, 0x80 => uint with a leading zero byte (non-canonical).
	input := []byte{0x82, 0x00, 0x80}
	var got uint64
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrNonMinimalInteger) {
		t.Fatalf("got %v, want ErrNonMinimalInteger", err)
	}
}

func TestDecodeSingleByteWithHeaderAsBytesSucceeds(t *testing.T) {
	// 0x81 0x00: a single byte < 0x80 encoded with an explicit header.
	// Framing has no opinion on this: it's a well-formed one-byte leaf.
	input := []byte{0x81, 0x00}
	var got []byte
	if err := DecodeBytes(input, &got); err != nil {
		t.Fatalf("DecodeBytes into []byte: %v", err)
	}
	if !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("got %x, want [00]", got)
	}
}

func TestDecodeSingleByteWithHeaderAsIntegerRejected(t *testing.T) {
	// The same bytes, read as an integer, are non-canonical: zero's only
	// minimal encoding is the empty string (0x80), not 0x81 0x00.
	input := []byte{0x81, 0x00}
	var got uint64
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrNonMinimalInteger) {
		t.Fatalf("got %v, want ErrNonMinimalInteger", err)
	}
}

func TestDecodeLongFormFittingShortForm(t *testing.T) {
	// 0xb8 0x37 ...: claims long-form string of length 55, which fits
	// in the short form and so must be rejected as non-minimal.
	input := append([]byte{0xb8, 0x37}, bytes.Repeat([]byte{0x61}, 0x37)...)
	var got []byte
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrNonMinimalLength) {
		t.Fatalf("got %v, want ErrNonMinimalLength", err)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	input := []byte{0x83, 0x64, 0x6f, 0x67, 0xff}
	var got string
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrTrailingBytes) {
		t.Fatalf("got %v, want ErrTrailingBytes", err)
	}
}

func TestDecodeShapeMismatch(t *testing.T) {
	// A list where a string is expected.
	input := []byte{0xc0}
	var got string
	err := DecodeBytes(input, &got)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}

func TestDecodeFieldCountMismatch(t *testing.T) {
	type Pair struct {
		A uint64
		B uint64
	}
	var got Pair
	// Three elements into a two-field struct.
	err := DecodeBytes([]byte{0xc3, 0x01, 0x02, 0x03}, &got)
	if !errors.Is(err, ErrTrailingChildren) {
		t.Fatalf("got %v, want ErrTrailingChildren", err)
	}
}

type nestedList []nestedList

func TestDecodeMaxDepthExceeded(t *testing.T) {
	data := []byte{0xc0}
	for i := 0; i < MaxDepth+10; i++ {
		data = WrapList(data)
	}
	var target nestedList
	err := DecodeBytes(data, &target)
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("got %v, want ErrMaxDepthExceeded", err)
	}
}
