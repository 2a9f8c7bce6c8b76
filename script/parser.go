package script

import (
	"github.com/qinglongcn/bitscript/opcode"
)

// Parse decodes a byte stream into an ordered chunk sequence. It
// consumes bytes until end-of-stream, branching on each opcode byte per
// spec §4.2. It never validates opcode meaning, push minimality, or
// template conformance — that is the classifier's job, not the parser's.
func Parse(b []byte) (*Script, error) {
	r := newByteReader(b)
	var chunks []Chunk

	for !r.atEnd() {
		op, err := r.readByte()
		if err != nil {
			return nil, err
		}

		switch {
		case op == opcode.OP_0:
			chunks = append(chunks, NewBareChunk(op))

		case opcode.IsDirectPush(op):
			payload, err := r.readBytes(int(op))
			if err != nil {
				return nil, err
			}
			chunk, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, chunk)

		case op == opcode.OP_PUSHDATA1:
			n, err := r.readByte()
			if err != nil {
				return nil, err
			}
			payload, err := r.readBytes(int(n))
			if err != nil {
				return nil, err
			}
			chunk, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, chunk)

		case op == opcode.OP_PUSHDATA2:
			n, err := r.readUint16LE()
			if err != nil {
				return nil, err
			}
			payload, err := r.readBytes(int(n))
			if err != nil {
				return nil, err
			}
			chunk, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, chunk)

		case op == opcode.OP_PUSHDATA4:
			n, err := r.readUint32LE()
			if err != nil {
				return nil, err
			}
			payload, err := r.readBytes(int(n))
			if err != nil {
				return nil, err
			}
			chunk, err := NewPushChunk(op, payload)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, chunk)

		default:
			chunks = append(chunks, NewBareChunk(op))
		}
	}

	return &Script{chunks: chunks}, nil
}
