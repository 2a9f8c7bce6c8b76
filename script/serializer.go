package script

import (
	"github.com/qinglongcn/bitscript/opcode"
)

// Serialize encodes a script's chunk sequence back to bytes. For every
// script produced by Parse, Serialize(Parse(b)) == b byte-exact — this
// round-trip is enforced by the tests in parser_test.go (spec §8 property 1).
func Serialize(s *Script) []byte {
	w := newByteWriter()

	for _, c := range s.chunks {
		w.writeByte(c.Opcode())
		if !c.IsPush() {
			continue
		}

		payload := c.Payload()
		switch {
		case opcode.IsDirectPush(c.Opcode()):
			// The opcode byte already encodes the length; no prefix.
		case c.Opcode() == opcode.OP_PUSHDATA1:
			w.writeByte(byte(len(payload)))
		case c.Opcode() == opcode.OP_PUSHDATA2:
			w.writeUint16LE(uint16(len(payload)))
		case c.Opcode() == opcode.OP_PUSHDATA4:
			w.writeUint32LE(uint32(len(payload)))
		}
		w.writeBytes(payload)
	}

	return w.bytes()
}
