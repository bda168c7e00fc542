// Package envelope implements a typed union built on top of package
// rlp: a one-byte kind discriminator, carried outside the RLP encoding
// itself, framing a payload whose RLP encoding is fully transparent —
// exactly the type_byte || RLP(payload) shape EIP-2718 typed
// transactions use.
package envelope

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/eth2030/rlp/rlp"
)

// pool backs EncodeRLP and EncodeList: both feed its metrics, and
// EncodeList's batch concatenation reuses the pool's buffers across
// calls (a block body's transaction list, say). EncodeRLP itself
// allocates its output per call.
var pool = rlp.NewEncoderPool()

// PoolMetrics reports cumulative usage of the package-level encoder
// pool: how many encode operations it has served and how many bytes of
// RLP output it has produced.
func PoolMetrics() rlp.EncoderMetricsSnapshot {
	return pool.Metrics().Snapshot()
}

// Kind discriminates the payload carried by an Envelope. It is never
// part of the RLP encoding proper — RLP has no tag to carry one — and
// is instead prepended as a single byte ahead of the RLP bytes.
type Kind byte

const (
	KindTransfer Kind = iota
	KindMessage
)

// ErrUnknownKind is returned by DecodeTyped when the leading byte
// doesn't name a kind this package knows how to decode.
var ErrUnknownKind = errors.New("envelope: unknown kind")

// Transfer moves Amount of value to To. Its RLP encoding is the
// ordinary struct-as-list encoding of its three exported fields.
type Transfer struct {
	To     [20]byte
	Amount rlp.BigUint
	Nonce  uint64
}

// Message carries an arbitrary payload between two addresses.
type Message struct {
	From [20]byte
	To   [20]byte
	Data []byte
}

// Envelope pairs a Kind with exactly one populated payload field.
type Envelope struct {
	Kind     Kind
	Transfer *Transfer
	Message  *Message
}

// EncodeRLP implements rlp.Encoder. It returns only the payload's own
// RLP list encoding, with no discriminator: embedding an Envelope
// inside a larger RLP structure loses the Kind, same as embedding any
// other union/variant value transparently (see package rlp's doc
// comment). Callers that need the kind preserved on the wire use
// EncodeTyped instead.
func (e *Envelope) EncodeRLP() ([]byte, error) {
	switch e.Kind {
	case KindTransfer:
		if e.Transfer == nil {
			return nil, fmt.Errorf("envelope: Kind is Transfer but Transfer is nil")
		}
		return pool.EncodeBytes(*e.Transfer)
	case KindMessage:
		if e.Message == nil {
			return nil, fmt.Errorf("envelope: Kind is Message but Message is nil")
		}
		return pool.EncodeBytes(*e.Message)
	default:
		return nil, ErrUnknownKind
	}
}

// EncodeList RLP-encodes envs as a single list of opaque, type-tagged
// blobs — the shape a block body gives its transaction list, where each
// entry is individually type_byte||RLP(payload) and the list itself
// only sees them as byte strings.
func EncodeList(envs []*Envelope) ([]byte, error) {
	items := make([]interface{}, len(envs))
	for i, e := range envs {
		typed, err := EncodeTyped(e)
		if err != nil {
			return nil, fmt.Errorf("envelope %d: %w", i, err)
		}
		items[i] = typed
	}
	return pool.EncodeBatch(items)
}

// EncodeTransferFast encodes t the same way the reflect-based path
// does, but by hand: a demonstration (and fast path) for the common
// case where the set of fields is known ahead of time and reflection's
// per-field dispatch is overhead worth skipping.
func EncodeTransferFast(t *Transfer) []byte {
	var body []byte
	body = append(body, rlp.EncodeBytes20(t.To)...)
	var amount []byte
	if t.Amount.Int != nil && !t.Amount.Int.IsZero() {
		amount = t.Amount.Int.Bytes()
	}
	body = rlp.AppendBytes(body, amount)
	body = rlp.AppendBytes(body, new(big.Int).SetUint64(t.Nonce).Bytes())

	out := rlp.AppendListHeader(make([]byte, 0, len(body)+9), len(body))
	return append(out, body...)
}

// EncodeTyped returns type_byte || RLP(payload), the on-the-wire form
// that survives a round trip through DecodeTyped.
func EncodeTyped(e *Envelope) ([]byte, error) {
	payload, err := e.EncodeRLP()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(payload))
	out = append(out, byte(e.Kind))
	return append(out, payload...), nil
}

// DecodeTyped reads the leading kind byte, then uses an rlp.Proxy over
// the remaining bytes to decode the payload into the concrete type the
// kind names — the union-dispatch pattern from package rlp's doc
// comment: there is no schema-driven way to pick Transfer vs Message,
// so the kind byte picks it by hand. The payload is parsed into the
// Proxy first; the schema-driven decode into the chosen type follows.
func DecodeTyped(data []byte) (*Envelope, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("envelope: empty input: %w", ErrUnknownKind)
	}
	kind := Kind(data[0])

	proxy, err := rlp.NewProxy(data[1:])
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindTransfer:
		var t Transfer
		if err := rlp.DecodeBytes(proxy.Raw(), &t); err != nil {
			return nil, err
		}
		return &Envelope{Kind: kind, Transfer: &t}, nil
	case KindMessage:
		var m Message
		if err := rlp.DecodeBytes(proxy.Raw(), &m); err != nil {
			return nil, err
		}
		return &Envelope{Kind: kind, Message: &m}, nil
	default:
		return nil, fmt.Errorf("envelope: kind byte %#x: %w", data[0], ErrUnknownKind)
	}
}

// Hash returns the Keccak-256 hash of the envelope's typed wire
// encoding, the same sha3.NewLegacyKeccak256 call used elsewhere in the
// corpus to hash a transaction's RLP envelope.
func (e *Envelope) Hash() ([32]byte, error) {
	enc, err := EncodeTyped(e)
	if err != nil {
		return [32]byte{}, err
	}
	d := sha3.NewLegacyKeccak256()
	d.Write(enc)
	var h [32]byte
	copy(h[:], d.Sum(nil))
	return h, nil
}

// EncodeHash returns the RLP encoding of e's content hash, the form a
// receipt log or a parent structure embeds a transaction hash in.
func (e *Envelope) EncodeHash() ([]byte, error) {
	h, err := e.Hash()
	if err != nil {
		return nil, err
	}
	return rlp.EncodeBytes32(h), nil
}
