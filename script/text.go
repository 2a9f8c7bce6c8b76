package script

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/qinglongcn/bitscript/opcode"
)

// RenderText renders a script to its human-readable token form (spec
// §4.4). Push opcodes render as a length/hex-payload pair; OP_PUSHDATA1/2/4
// additionally prefix their own name. Bare opcodes render as their
// canonical name when known, else as a bare hex byte. Tokens are
// space-separated.
func RenderText(s *Script) string {
	var b strings.Builder
	for i, c := range s.chunks {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeToken(&b, c)
	}
	return b.String()
}

func writeToken(b *strings.Builder, c Chunk) {
	if !c.IsPush() {
		if name, ok := opcode.Name(c.Opcode()); ok {
			b.WriteString(name)
		} else {
			fmt.Fprintf(b, "0x%02x", c.Opcode())
		}
		return
	}

	if opcode.IsPushData(c.Opcode()) {
		name, _ := opcode.Name(c.Opcode())
		fmt.Fprintf(b, "%s %d 0x%s", name, c.Len(), hex.EncodeToString(c.Payload()))
		return
	}

	// Direct push opcodes (0x01..0x4b) render without a name.
	fmt.Fprintf(b, "%d 0x%s", c.Len(), hex.EncodeToString(c.Payload()))
}

// isPureHex reports whether s decodes entirely as hexadecimal (spec §4.4's
// hex-text shortcut).
func isPureHex(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// ParseText parses a script's text form. If the entire input is
// hexadecimal, it is parsed as raw script bytes (equivalent to Parse on
// those bytes, spec §8 property 4). Otherwise it is tokenized on spaces.
func ParseText(text string) (*Script, error) {
	trimmed := strings.TrimSpace(text)
	if isPureHex(trimmed) {
		b, err := hex.DecodeString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
		}
		return Parse(b)
	}

	tokens := strings.Fields(trimmed)
	var chunks []Chunk
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if op, ok := opcode.ByName(tok); ok {
			if opcode.IsPushData(op) {
				payload, consumed, err := readLenAndHexPayload(tokens, i+1)
				if err != nil {
					return nil, err
				}
				chunk, err := NewPushChunk(op, payload)
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
				}
				chunks = append(chunks, chunk)
				i += consumed
				continue
			}
			chunks = append(chunks, NewBareChunk(op))
			continue
		}

		// Not a recognized opcode name: maybe a direct-push length.
		if n, err := strconv.Atoi(tok); err == nil {
			if n < opcode.MinDirectPush || n > opcode.MaxDirectPush {
				return nil, fmt.Errorf("%w: push length %d out of direct-push range", ErrInvalidScript, n)
			}
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: push length %d with no payload token", ErrInvalidScript, n)
			}
			payload, err := decodeHexToken(tokens[i+1], n)
			if err != nil {
				return nil, err
			}
			chunk, err := NewPushChunk(byte(n), payload)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
			}
			chunks = append(chunks, chunk)
			i++
			continue
		}

		return nil, fmt.Errorf("%w: unrecognized token %q", ErrInvalidScript, tok)
	}

	return &Script{chunks: chunks}, nil
}

// readLenAndHexPayload reads the declared length and 0x-hex payload
// tokens starting at idx (used for the OP_PUSHDATAn forms), returning
// the payload and how many tokens were consumed beyond the opcode name.
func readLenAndHexPayload(tokens []string, idx int) ([]byte, int, error) {
	if idx+1 >= len(tokens) {
		return nil, 0, fmt.Errorf("%w: OP_PUSHDATAn missing length/payload tokens", ErrInvalidScript)
	}
	n, err := strconv.Atoi(tokens[idx])
	if err != nil {
		return nil, 0, fmt.Errorf("%w: non-numeric push length %q", ErrInvalidScript, tokens[idx])
	}
	payload, err := decodeHexToken(tokens[idx+1], n)
	if err != nil {
		return nil, 0, err
	}
	return payload, 2, nil
}

func decodeHexToken(tok string, wantLen int) ([]byte, error) {
	if !strings.HasPrefix(tok, "0x") {
		return nil, fmt.Errorf("%w: payload token %q missing 0x prefix", ErrInvalidScript, tok)
	}
	b, err := hex.DecodeString(tok[2:])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex payload %q: %v", ErrInvalidScript, tok, err)
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("%w: payload %q has %d bytes, declared length was %d", ErrInvalidScript, tok, len(b), wantLen)
	}
	return b, nil
}
