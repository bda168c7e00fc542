package rlp

import (
	"bytes"
	"testing"
)

// TestProxyNestedEmpties walks the classic nested-empty-list fixture
// through a Proxy without committing to any decode target, exercising
// the union/variant escape hatch from package doc.
func TestProxyNestedEmpties(t *testing.T) {
	// [ [], [[]], [ [], [[]] ] ]
	data := []byte{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0}

	p, err := NewProxy(data)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsList() {
		t.Fatal("expected top-level proxy to be a list")
	}
	if !bytes.Equal(p.Raw(), data) {
		t.Fatalf("Raw: got %x, want %x", p.Raw(), data)
	}

	cur := p.Cursor()
	if cur.ValueCount() != 3 {
		t.Fatalf("ValueCount: got %d, want 3", cur.ValueCount())
	}

	want := [][]byte{
		{0xc0},
		{0xc1, 0xc0},
		{0xc3, 0xc0, 0xc1, 0xc0},
	}
	for i, w := range want {
		raw, ok := cur.Next()
		if !ok {
			t.Fatalf("element %d: cursor exhausted early", i)
		}
		if !bytes.Equal(raw, w) {
			t.Fatalf("element %d: got %x, want %x", i, raw, w)
		}
	}
	if _, ok := cur.Next(); ok {
		t.Fatal("expected cursor to be exhausted after 3 elements")
	}
}

func TestProxyLeaf(t *testing.T) {
	p, err := NewProxy([]byte{0x83, 0x64, 0x6f, 0x67})
	if err != nil {
		t.Fatal(err)
	}
	if p.IsList() {
		t.Fatal("expected leaf proxy")
	}
	cur := p.Cursor()
	if cur.ValueCount() != 1 {
		t.Fatalf("ValueCount: got %d, want 1", cur.ValueCount())
	}
	raw, ok := cur.Next()
	if !ok || !bytes.Equal(raw, []byte{0x83, 0x64, 0x6f, 0x67}) {
		t.Fatalf("Next: got (%x, %v)", raw, ok)
	}
	if _, ok := cur.Next(); ok {
		t.Fatal("expected solo cursor to be exhausted after one value")
	}
}

// DecodeBytes into a *Proxy bypasses schema matching entirely — this is
// how a union/variant field picks its decode target after the fact.
func TestDecodeIntoProxy(t *testing.T) {
	data := []byte{0xc8, 0x83, 0x63, 0x61, 0x74, 0x83, 0x64, 0x6f, 0x67}
	var p Proxy
	if err := DecodeBytes(data, &p); err != nil {
		t.Fatal(err)
	}
	if !p.IsList() {
		t.Fatal("expected list")
	}
	var strs []string
	if err := DecodeBytes(p.Raw(), &strs); err != nil {
		t.Fatal(err)
	}
	if len(strs) != 2 || strs[0] != "cat" || strs[1] != "dog" {
		t.Fatalf("got %v, want [cat dog]", strs)
	}
}
