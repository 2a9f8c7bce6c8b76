package script

import (
	"bytes"
	"fmt"

	"github.com/qinglongcn/bitscript/opcode"
)

// Chunk is the unit of a parsed script: either a bare opcode with no
// payload, or a push opcode carrying a payload byte sequence. It is
// modeled as a tagged variant rather than btcd's untyped byte-slice
// scanning so the invariants in spec §3 hold by construction instead of
// by convention.
type Chunk struct {
	opcode  byte
	payload []byte
	isPush  bool
}

// NewBareChunk builds a chunk carrying no payload. It does not validate
// that op is a "normal" opcode — any byte value is accepted, matching
// the parser, which never judges opcode meaning (spec §4.2).
func NewBareChunk(op byte) Chunk {
	return Chunk{opcode: op}
}

// NewPushChunk builds a push chunk, validating the per-opcode payload
// length bounds from spec §3 invariants 1-4. The opcode determines how
// the length is later serialized (direct byte, or one of the
// OP_PUSHDATAn length-prefix forms) — it is not inferred from len(payload).
func NewPushChunk(op byte, payload []byte) (Chunk, error) {
	switch {
	case opcode.IsDirectPush(op):
		if int(op) != len(payload) {
			return Chunk{}, fmt.Errorf("%w: direct push opcode 0x%02x requires exactly %d payload bytes, got %d",
				ErrInvalidArgument, op, op, len(payload))
		}
	case op == opcode.OP_PUSHDATA1:
		if len(payload) >= 1<<8 {
			return Chunk{}, fmt.Errorf("%w: OP_PUSHDATA1 payload must be < 2^8 bytes", ErrInvalidArgument)
		}
	case op == opcode.OP_PUSHDATA2:
		if len(payload) >= 1<<16 {
			return Chunk{}, fmt.Errorf("%w: OP_PUSHDATA2 payload must be < 2^16 bytes", ErrInvalidArgument)
		}
	case op == opcode.OP_PUSHDATA4:
		if uint64(len(payload)) >= 1<<32 {
			return Chunk{}, fmt.Errorf("%w: OP_PUSHDATA4 payload must be < 2^32 bytes", ErrInvalidArgument)
		}
	default:
		return Chunk{}, fmt.Errorf("%w: opcode 0x%02x cannot carry a payload", ErrInvalidArgument, op)
	}

	// Copy so the chunk owns its payload, per the ownership rule in
	// spec §3 ("a chunk owns its payload bytes").
	buf := make([]byte, len(payload))
	copy(buf, payload)
	return Chunk{opcode: op, payload: buf, isPush: true}, nil
}

// Opcode returns the chunk's opcode byte.
func (c Chunk) Opcode() byte { return c.opcode }

// IsPush reports whether the chunk carries a payload.
func (c Chunk) IsPush() bool { return c.isPush }

// Payload returns the chunk's payload. It is nil for bare chunks.
func (c Chunk) Payload() []byte { return c.payload }

// Len returns the declared payload length (0 for bare chunks).
func (c Chunk) Len() int { return len(c.payload) }

// Equal reports whether two chunks have the same opcode and, for push
// chunks, byte-equal payloads.
func (c Chunk) Equal(other Chunk) bool {
	if c.opcode != other.opcode || c.isPush != other.isPush {
		return false
	}
	if !c.isPush {
		return true
	}
	return bytes.Equal(c.payload, other.payload)
}
