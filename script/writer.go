package script

import (
	"encoding/binary"
)

// byteWriter is the mirror of byteReader: sequential, append-only, and
// infallible — writes to an in-memory buffer never fail.
type byteWriter struct {
	buf []byte
}

func newByteWriter() *byteWriter {
	return &byteWriter{}
}

func (w *byteWriter) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *byteWriter) writeBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *byteWriter) writeUint16LE(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.writeBytes(b[:])
}

func (w *byteWriter) writeUint32LE(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.writeBytes(b[:])
}

// writeVarInt writes v as a Bitcoin compact-size unsigned integer.
func (w *byteWriter) writeVarInt(v uint64) {
	switch {
	case v < 0xfd:
		w.writeByte(byte(v))
	case v <= 0xffff:
		w.writeByte(0xfd)
		w.writeUint16LE(uint16(v))
	case v <= 0xffffffff:
		w.writeByte(0xfe)
		w.writeUint32LE(uint32(v))
	default:
		w.writeByte(0xff)
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		w.writeBytes(b[:])
	}
}

// bytes returns the accumulated buffer.
func (w *byteWriter) bytes() []byte {
	return w.buf
}
