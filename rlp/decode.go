package rlp

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"unicode/utf8"
)

// Decoder is implemented by types that know how to populate themselves
// from a parsed RLP Node, bypassing the generic reflect-based
// struct/slice match. It is the decode-side counterpart of Encoder.
type Decoder interface {
	DecodeRLP(n *Node) error
}

var (
	decoderType = reflect.TypeOf((*Decoder)(nil)).Elem()
	proxyType   = reflect.TypeOf(Proxy{})
)

// Decode reads a single RLP-encoded value from r and stores it in the
// value pointed to by val.
func Decode(r io.Reader, val interface{}) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return DecodeBytes(data, val)
}

// DecodeBytes decodes an RLP-encoded byte slice into the value pointed
// to by val. val may also be a *Proxy, in which case no schema match is
// attempted at all: the caller receives the raw tree for manual,
// union-aware dispatch.
func DecodeBytes(b []byte, val interface{}) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer: %w", ErrShapeMismatch)
	}
	node, err := Parse(b)
	if err != nil {
		return err
	}
	return decodeInto(node, rv.Elem(), 0)
}

func decodeInto(n *Node, v reflect.Value, depth int) error {
	if depth > MaxDepth {
		return ErrMaxDepthExceeded
	}

	if v.Type() == proxyType {
		v.Set(reflect.ValueOf(Proxy{raw: n.Raw(), node: n}))
		return nil
	}

	if v.CanAddr() && reflect.PointerTo(v.Type()).Implements(decoderType) {
		return v.Addr().Interface().(Decoder).DecodeRLP(n)
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decodeInto(n, v.Elem(), depth)
	}

	if v.Type() == bigIntType {
		b, err := n.Bytes()
		if err != nil {
			return err
		}
		bi, err := decodeBigInt(b)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(*bi))
		return nil
	}

	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		b, err := n.Bytes()
		if err != nil {
			return err
		}
		u, err := decodeUint(b, v.Type().Bits()/8)
		if err != nil {
			return err
		}
		v.SetUint(u)
		return nil

	case reflect.String:
		b, err := n.Bytes()
		if err != nil {
			return err
		}
		if !utf8.Valid(b) {
			return ErrInvalidUTF8
		}
		v.SetString(string(b))
		return nil

	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := n.Bytes()
			if err != nil {
				return err
			}
			v.SetBytes(bytes.Clone(b))
			return nil
		}
		return decodeSlice(n, v, depth)

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := n.Bytes()
			if err != nil {
				return err
			}
			if len(b) != v.Len() {
				return fmt.Errorf("want %d bytes, got %d: %w", v.Len(), len(b), ErrLengthMismatch)
			}
			reflect.Copy(v, reflect.ValueOf(b))
			return nil
		}
		return decodeArray(n, v, depth)

	case reflect.Struct:
		return decodeStruct(n, v, depth)

	default:
		return fmt.Errorf("decode into %s: %w", v.Kind(), ErrUnsupportedType)
	}
}

// decodeSlice decodes a list into a non-byte slice, growing it to
// match the number of children present. A sequence has no fixed arity
// in the schema, so there is no TrailingChildren check here.
func decodeSlice(n *Node, v reflect.Value, depth int) error {
	children, err := n.Children()
	if err != nil {
		return err
	}
	out := reflect.MakeSlice(v.Type(), len(children), len(children))
	for i, c := range children {
		if err := decodeInto(c, out.Index(i), depth+1); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

// decodeArray decodes a list into a fixed-size non-byte array: the
// child count must match the array length exactly.
func decodeArray(n *Node, v reflect.Value, depth int) error {
	children, err := n.Children()
	if err != nil {
		return err
	}
	if len(children) > v.Len() {
		return fmt.Errorf("array has %d elements, tree has %d: %w", v.Len(), len(children), ErrTrailingChildren)
	}
	if len(children) < v.Len() {
		return fmt.Errorf("array has %d elements, tree has %d: %w", v.Len(), len(children), ErrShapeMismatch)
	}
	for i, c := range children {
		if err := decodeInto(c, v.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

// decodeStruct decodes a struct's exported fields in declaration order.
// A zero-field struct is the unit case and must be the empty byte
// string, matching encodeStruct's special-casing on encode.
func decodeStruct(n *Node, v reflect.Value, depth int) error {
	t := v.Type()
	var fieldIdx []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fieldIdx = append(fieldIdx, i)
		}
	}

	if len(fieldIdx) == 0 {
		b, err := n.Bytes()
		if err != nil {
			return err
		}
		if len(b) != 0 {
			return fmt.Errorf("unit value must be the empty string: %w", ErrShapeMismatch)
		}
		return nil
	}

	children, err := n.Children()
	if err != nil {
		return err
	}
	if len(children) > len(fieldIdx) {
		return fmt.Errorf("struct has %d fields, tree has %d: %w", len(fieldIdx), len(children), ErrTrailingChildren)
	}
	if len(children) < len(fieldIdx) {
		return fmt.Errorf("struct has %d fields, tree has %d: %w", len(fieldIdx), len(children), ErrShapeMismatch)
	}
	for i, fi := range fieldIdx {
		if err := decodeInto(children[i], v.Field(fi), depth+1); err != nil {
			return err
		}
	}
	return nil
}
