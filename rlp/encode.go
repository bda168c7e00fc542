package rlp

import (
	"io"
	"math/big"
	"reflect"
)

// Encoder is implemented by types that know how to produce their own
// RLP encoding, bypassing the generic reflect-based struct/slice walk.
// A single-field "newtype" wrapper or a union/variant value implements
// Encoder to get transparent encoding: EncodeRLP returns the encoding
// of the inner payload directly, with no list frame of its own and, for
// unions, no discriminator — RLP has no tag to carry one.
type Encoder interface {
	EncodeRLP() ([]byte, error)
}

var (
	bigIntType  = reflect.TypeOf(big.Int{})
	encoderType = reflect.TypeOf((*Encoder)(nil)).Elem()
)

// Encode writes the RLP encoding of val to w.
func Encode(w io.Writer, val interface{}) error {
	b, err := EncodeToBytes(val)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// EncodeToBytes returns the RLP encoding of val. val must be built from
// supported kinds: unsigned integers, *big.Int, []byte/[N]byte,
// strings, structs, slices/arrays, or a type implementing Encoder.
func EncodeToBytes(val interface{}) ([]byte, error) {
	return encodeValue(reflect.ValueOf(val), 0)
}

func encodeValue(v reflect.Value, depth int) ([]byte, error) {
	if depth > MaxDepth {
		return nil, ErrMaxDepthExceeded
	}

	// A type implementing Encoder always wins: this is how newtype
	// wrappers and union/variant values opt out of the generic
	// struct-as-list default and encode transparently.
	if enc, ok := asEncoder(v); ok {
		return enc.EncodeRLP()
	}

	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return []byte{0x80}, nil
		}
		v = v.Elem()
		if enc, ok := asEncoder(v); ok {
			return enc.EncodeRLP()
		}
	}

	if v.Kind() == reflect.Invalid {
		return []byte{0x80}, nil
	}

	if v.Type() == bigIntType {
		bi := addressable(v)
		return encodeBigInt(bi.Interface().(*big.Int)), nil
	}

	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return encodeUint(v.Uint()), nil

	case reflect.String:
		return encodeString([]byte(v.String())), nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return encodeString(v.Bytes()), nil
		}
		return encodeList(v, depth)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, v.Len())
			reflect.Copy(reflect.ValueOf(b), v)
			return encodeString(b), nil
		}
		return encodeList(v, depth)

	case reflect.Struct:
		return encodeStruct(v, depth)

	default:
		// bool, signed integers, floats, maps, chans, funcs have no RLP
		// representation: reported as UnsupportedType at the first such
		// value encountered.
		return nil, ErrUnsupportedType
	}
}

// asEncoder reports whether v (or its address, if addressable) can be
// used to obtain an Encoder.
func asEncoder(v reflect.Value) (Encoder, bool) {
	if !v.IsValid() {
		return nil, false
	}
	if v.Type().Implements(encoderType) {
		return v.Interface().(Encoder), true
	}
	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(encoderType) {
		return v.Addr().Interface().(Encoder), true
	}
	return nil, false
}

// addressable returns an addressable copy of v when v itself is not
// addressable, so methods with pointer receivers (like *big.Int's) can
// be called uniformly.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	tmp := reflect.New(v.Type())
	tmp.Elem().Set(v)
	return tmp
}

// encodeList encodes the ordered elements of a slice or array as an
// RLP list.
func encodeList(v reflect.Value, depth int) ([]byte, error) {
	var payload []byte
	for i := 0; i < v.Len(); i++ {
		enc, err := encodeValue(v.Index(i), depth+1)
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	return wrapList(payload), nil
}

// encodeStruct encodes a struct's exported fields, in declaration
// order, as an RLP list — except a struct with zero exported fields,
// which is the unit/zero-sized-record case and encodes as the empty
// byte string (0x80), not the empty list (0xc0). Distinguishing these
// is why unit is special-cased here instead of falling out of the
// general N-field rule at N=0: a 0-length sequence (an empty slice)
// still produces 0xc0 via encodeList above.
func encodeStruct(v reflect.Value, depth int) ([]byte, error) {
	t := v.Type()
	var payload []byte
	fields := 0
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		fields++
		enc, err := encodeValue(v.Field(i), depth+1)
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	if fields == 0 {
		return []byte{0x80}, nil
	}
	return wrapList(payload), nil
}
