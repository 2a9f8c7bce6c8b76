// Package script implements the Bitcoin script subsystem: parsing and
// serializing scripts to and from their canonical byte encoding,
// classifying scripts against the standard templates, rendering and
// parsing the human-readable text form, and building scripts for the
// standard templates.
//
// It does not execute scripts. There is no stack machine and no opcode
// semantics beyond encoding — see the package-level non-goals called out
// throughout this file's siblings.
package script

import (
	"fmt"

	"github.com/qinglongcn/bitscript/opcode"
)

// Script is an ordered sequence of chunks. It owns its chunk sequence
// exclusively; mutation happens only through the methods below.
type Script struct {
	chunks []Chunk
}

// Empty returns a script with no chunks.
func Empty() *Script {
	return &Script{}
}

// FromChunks builds a script from an existing chunk sequence, copying it
// so the new script owns an independent slice.
func FromChunks(chunks []Chunk) *Script {
	cp := make([]Chunk, len(chunks))
	copy(cp, chunks)
	return &Script{chunks: cp}
}

// Chunks returns a copy of the script's chunk sequence. Callers mutate
// their own copy, never the script's internal slice.
func (s *Script) Chunks() []Chunk {
	cp := make([]Chunk, len(s.chunks))
	copy(cp, s.chunks)
	return cp
}

// Len returns the number of chunks in the script.
func (s *Script) Len() int { return len(s.chunks) }

// Chunk returns the i'th chunk.
func (s *Script) Chunk(i int) Chunk { return s.chunks[i] }

// Equal reports whether two scripts have the same chunk sequence:
// same length, pairwise matching opcodes and payload bytes (spec §3).
func (s *Script) Equal(other *Script) bool {
	if len(s.chunks) != len(other.chunks) {
		return false
	}
	for i := range s.chunks {
		if !s.chunks[i].Equal(other.chunks[i]) {
			return false
		}
	}
	return true
}

// appendableInput is implemented by every type Append/Prepend accept.
// It keeps the set of accepted shapes closed and explicit, per the
// "disciplined implementation" note in spec §9 on builder/mutator
// polymorphism: typed entry points (AppendOpcode, AppendPush,
// AppendChunk) do the real work, and Append/Prepend are a small
// polymorphic facade over them.
type appendableInput interface {
	appendTo(s *Script, prepend bool) error
}

type opcodeInput byte

func (op opcodeInput) appendTo(s *Script, prepend bool) error {
	return appendChunk(s, NewBareChunk(byte(op)), prepend)
}

type payloadInput []byte

func (p payloadInput) appendTo(s *Script, prepend bool) error {
	if len(p) == 0 {
		return nil // a zero-length payload push is a no-op, per spec §4.6.
	}
	op, err := minimalPushOpcode(len(p))
	if err != nil {
		return err
	}
	chunk, err := NewPushChunk(op, p)
	if err != nil {
		return err
	}
	return appendChunk(s, chunk, prepend)
}

type chunkInput Chunk

func (c chunkInput) appendTo(s *Script, prepend bool) error {
	return appendChunk(s, Chunk(c), prepend)
}

func appendChunk(s *Script, c Chunk, prepend bool) error {
	if prepend {
		s.chunks = append([]Chunk{c}, s.chunks...)
		return nil
	}
	s.chunks = append(s.chunks, c)
	return nil
}

// minimalPushOpcode selects the canonical push opcode for a payload of
// length l, per the minimum-encoding rule in spec §4.6. It deliberately
// does not rewrite single-byte 0..16 payloads to the small-integer
// OP_0/OP_1..OP_16 form — callers that want that form append the opcode
// explicitly via AppendOpcode.
func minimalPushOpcode(l int) (byte, error) {
	switch {
	case l > 0 && l < int(opcode.OP_PUSHDATA1):
		return byte(l), nil
	case l < 1<<8:
		return opcode.OP_PUSHDATA1, nil
	case l < 1<<16:
		return opcode.OP_PUSHDATA2, nil
	case uint64(l) < 1<<32:
		return opcode.OP_PUSHDATA4, nil
	default:
		return 0, fmt.Errorf("%w: payload of %d bytes has no valid push encoding", ErrPayloadTooLarge, l)
	}
}

// AppendOpcode appends a bare opcode.
func (s *Script) AppendOpcode(op byte) *Script {
	_ = opcodeInput(op).appendTo(s, false)
	return s
}

// PrependOpcode prepends a bare opcode.
func (s *Script) PrependOpcode(op byte) *Script {
	_ = opcodeInput(op).appendTo(s, true)
	return s
}

// AppendPush appends payload as a push chunk, selecting the opcode via
// the minimum-encoding rule. A zero-length payload is a no-op.
func (s *Script) AppendPush(payload []byte) (*Script, error) {
	if err := payloadInput(payload).appendTo(s, false); err != nil {
		return s, err
	}
	return s, nil
}

// PrependPush is the mirror of AppendPush.
func (s *Script) PrependPush(payload []byte) (*Script, error) {
	if err := payloadInput(payload).appendTo(s, true); err != nil {
		return s, err
	}
	return s, nil
}

// AppendChunk appends a prebuilt chunk as-is.
func (s *Script) AppendChunk(c Chunk) *Script {
	_ = chunkInput(c).appendTo(s, false)
	return s
}

// PrependChunk prepends a prebuilt chunk as-is.
func (s *Script) PrependChunk(c Chunk) *Script {
	_ = chunkInput(c).appendTo(s, true)
	return s
}

// Extend appends every chunk of other to the receiver, in order.
func (s *Script) Extend(other *Script) *Script {
	s.chunks = append(s.chunks, other.chunks...)
	return s
}

// Append is the polymorphic facade spec §4.6 describes: item may be an
// opcode (by number), a byte payload, or a prebuilt chunk. It dispatches
// to the typed entry points above.
func (s *Script) Append(item interface{}) (*Script, error) {
	in, err := asAppendable(item)
	if err != nil {
		return s, err
	}
	return s, in.appendTo(s, false)
}

// Prepend is Append's mirror.
func (s *Script) Prepend(item interface{}) (*Script, error) {
	in, err := asAppendable(item)
	if err != nil {
		return s, err
	}
	return s, in.appendTo(s, true)
}

func asAppendable(item interface{}) (appendableInput, error) {
	switch v := item.(type) {
	case byte:
		return opcodeInput(v), nil
	case int:
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: opcode %d out of byte range", ErrInvalidArgument, v)
		}
		return opcodeInput(byte(v)), nil
	case []byte:
		return payloadInput(v), nil
	case Chunk:
		return chunkInput(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported append/prepend input type %T", ErrInvalidArgument, item)
	}
}

// RemoveCodeSeparators returns a new script identical to the receiver
// except that every OP_CODESEPARATOR chunk has been removed. The order
// of the remaining chunks is preserved.
func (s *Script) RemoveCodeSeparators() *Script {
	out := make([]Chunk, 0, len(s.chunks))
	for _, c := range s.chunks {
		if !c.IsPush() && c.Opcode() == opcode.OP_CODESEPARATOR {
			continue
		}
		out = append(out, c)
	}
	return &Script{chunks: out}
}

// IsPushOnly reports whether every chunk's opcode is at most OP_16: the
// script consists only of data pushes and small-integer opcodes.
func (s *Script) IsPushOnly() bool {
	for _, c := range s.chunks {
		if c.Opcode() > opcode.OP_16 {
			return false
		}
	}
	return true
}
