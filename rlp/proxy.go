package rlp

// Proxy bundles the original byte slice that produced a sub-encoding
// together with its parsed tree, so code that cannot commit to a
// concrete schema up front (because the value is a union/variant) can
// inspect the shape and raw bytes first and decode the chosen arm
// itself. See package envelope for a worked example of the pattern
// described in the design notes: RLP carries no union tag, so decoding
// a variant is always a Proxy-driven, caller-selected operation.
type Proxy struct {
	raw  []byte
	node *Node
}

// NewProxy parses b into a Proxy. b must be a single well-formed RLP
// value with no trailing bytes.
func NewProxy(b []byte) (*Proxy, error) {
	node, err := Parse(b)
	if err != nil {
		return nil, err
	}
	return &Proxy{raw: b, node: node}, nil
}

// Raw returns the original byte slice covering this value, header
// included.
func (p *Proxy) Raw() []byte { return p.raw }

// IsList reports whether the proxied value is a list.
func (p *Proxy) IsList() bool { return p.node.IsList() }

// Cursor returns a fresh cursor over the proxy's top-level children:
// the N children of a list, or a single-element cursor over the proxy
// itself if it wraps a leaf.
func (p *Proxy) Cursor() *Cursor {
	if p.node.IsList() {
		return &Cursor{children: p.node.children}
	}
	return &Cursor{solo: p.node}
}

// Cursor walks a proxy's top-level children in order.
type Cursor struct {
	children []*Node
	solo     *Node // set instead of children when the proxy wraps a leaf
	pos      int
	done     bool
}

// ValueCount returns the number of remaining siblings.
func (c *Cursor) ValueCount() int {
	if c.solo != nil {
		if c.done {
			return 0
		}
		return 1
	}
	return len(c.children) - c.pos
}

// Next returns the raw encoding (header included) of the next sibling
// and advances the cursor. It returns ErrTrailingChildren-free io.EOF
// style exhaustion via a nil slice and ok=false once all siblings have
// been consumed.
func (c *Cursor) Next() (raw []byte, ok bool) {
	if c.solo != nil {
		if c.done {
			return nil, false
		}
		c.done = true
		return c.solo.Raw(), true
	}
	if c.pos >= len(c.children) {
		return nil, false
	}
	n := c.children[c.pos]
	c.pos++
	return n.Raw(), true
}
