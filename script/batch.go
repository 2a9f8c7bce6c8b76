package script

// FlattenScripts and UnflattenScripts frame a list of serialized scripts
// into a single byte stream and back, one compact-varint length prefix
// per entry. This mirrors the teacher's Flatten/Unflatten helpers (fixed
// 4-byte length prefixes over an arbitrary [][]byte), reframed on this
// package's own varint reader/writer so a batch of scripts — e.g. a
// UTXO set export — round-trips using the same length encoding as the
// scripts themselves.

// FlattenScripts concatenates each entry's length (as a compact varint)
// and bytes, in order.
func FlattenScripts(scripts [][]byte) []byte {
	w := newByteWriter()
	for _, s := range scripts {
		w.writeVarInt(uint64(len(s)))
		w.writeBytes(s)
	}
	return w.bytes()
}

// UnflattenScripts is FlattenScripts's inverse.
func UnflattenScripts(b []byte) ([][]byte, error) {
	r := newByteReader(b)
	var out [][]byte
	for !r.atEnd() {
		n, err := r.readVarInt()
		if err != nil {
			return nil, err
		}
		payload, err := r.readBytes(int(n))
		if err != nil {
			return nil, err
		}
		out = append(out, payload)
	}
	return out, nil
}
