package rlp

import "fmt"

// Node is the in-memory mirror of one decoded RLP value: either a Leaf
// holding a byte string's payload, or a List holding ordered child
// nodes. Every Node also remembers the byte range in the original
// source buffer it was parsed from, header included, so Proxy can hand
// back the exact raw sub-encoding.
type Node struct {
	kind     kind
	payload  []byte  // leaf payload (excludes header); nil for lists
	children []*Node // list children, in wire order; nil for leaves

	raw []byte // raw sub-slice of the source buffer, header included
}

// IsList reports whether this node decoded as an RLP list.
func (n *Node) IsList() bool { return n.kind == kindList }

// Bytes returns the leaf payload. It returns ErrShapeMismatch if the
// node is a list.
func (n *Node) Bytes() ([]byte, error) {
	if n.kind == kindList {
		return nil, ErrShapeMismatch
	}
	return n.payload, nil
}

// Children returns the ordered child nodes of a list. It returns
// ErrShapeMismatch if the node is a leaf.
func (n *Node) Children() ([]*Node, error) {
	if n.kind != kindList {
		return nil, ErrShapeMismatch
	}
	return n.children, nil
}

// Raw returns the original byte slice covering this node's encoding,
// header included.
func (n *Node) Raw() []byte { return n.raw }

// parseTree builds a Node for the single RLP item at the start of
// data, returning the node and the number of bytes it consumed.
func parseTree(data []byte, depth int) (*Node, int, error) {
	if depth > MaxDepth {
		return nil, 0, ErrMaxDepthExceeded
	}
	h, err := splitHeader(data)
	if err != nil {
		return nil, 0, err
	}
	raw := data[:h.total]

	if h.kind != kindList {
		return &Node{kind: kindString, payload: data[h.start:h.end], raw: raw}, h.total, nil
	}

	body := data[h.start:h.end]
	var children []*Node
	pos := 0
	for pos < len(body) {
		child, n, err := parseTree(body[pos:], depth+1)
		if err != nil {
			return nil, 0, err
		}
		children = append(children, child)
		pos += n
	}
	return &Node{kind: kindList, children: children, raw: raw}, h.total, nil
}

// Parse decodes the entire buffer as one RLP tree, requiring that no
// bytes remain once the outermost value has been consumed.
func Parse(data []byte) (*Node, error) {
	node, n, err := parseTree(data, 0)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%d unconsumed byte(s): %w", len(data)-n, ErrTrailingBytes)
	}
	return node, nil
}
