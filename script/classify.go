package script

import (
	"github.com/qinglongcn/bitscript/opcode"
	"github.com/qinglongcn/bitscript/pubkey"
)

// Class tags a script's recognized shape, per spec §4.5.
type Class int

const (
	UNKNOWN Class = iota
	PUBKEY_OUT
	PUBKEY_IN
	PUBKEYHASH_OUT
	PUBKEYHASH_IN
	SCRIPTHASH_OUT
	SCRIPTHASH_IN
	MULTISIG_OUT
	MULTISIG_IN
	DATA_OUT
)

func (c Class) String() string {
	switch c {
	case PUBKEY_OUT:
		return "PUBKEY_OUT"
	case PUBKEY_IN:
		return "PUBKEY_IN"
	case PUBKEYHASH_OUT:
		return "PUBKEYHASH_OUT"
	case PUBKEYHASH_IN:
		return "PUBKEYHASH_IN"
	case SCRIPTHASH_OUT:
		return "SCRIPTHASH_OUT"
	case SCRIPTHASH_IN:
		return "SCRIPTHASH_IN"
	case MULTISIG_OUT:
		return "MULTISIG_OUT"
	case MULTISIG_IN:
		return "MULTISIG_IN"
	case DATA_OUT:
		return "DATA_OUT"
	default:
		return "UNKNOWN"
	}
}

// sigPushLengths are the DER-signature-plus-sighash-byte lengths the
// classifier treats as "looks like a signature push" (spec §4.5).
var sigPushLengths = map[int]bool{0x47: true, 0x48: true, 0x49: true}

// classifyRule pairs a class tag with its recognizer predicate. The order
// of rules below is the tie-break contract in spec §4.5: the first match
// wins, and it is load-bearing that this is a plain ordered slice rather
// than a name-keyed map (see spec §9's note on classifier dispatch).
type classifyRule struct {
	class     Class
	recognize func(s *Script) bool
}

var classifyRules []classifyRule

func init() {
	classifyRules = []classifyRule{
		{PUBKEYHASH_OUT, isPubkeyHashOut},
		{PUBKEYHASH_IN, isPubkeyHashIn},
		{PUBKEY_OUT, isPubkeyOut},
		{PUBKEY_IN, isPubkeyIn},
		{SCRIPTHASH_OUT, isScriptHashOut},
		{SCRIPTHASH_IN, isScriptHashIn},
		{MULTISIG_OUT, isMultisigOut},
		{MULTISIG_IN, isMultisigIn},
		{DATA_OUT, isDataOut},
	}
}

// Classify recognizes the standard output/input templates and returns the
// first matching class in the order above, or UNKNOWN if none match.
func Classify(s *Script) Class {
	for _, rule := range classifyRules {
		if rule.recognize(s) {
			return rule.class
		}
	}
	return UNKNOWN
}

// IsStandard reports whether s classifies as anything other than UNKNOWN.
func IsStandard(s *Script) bool {
	return Classify(s) != UNKNOWN
}

func isPubkeyHashOut(s *Script) bool {
	if s.Len() != 5 {
		return false
	}
	c := s.chunks
	return !c[0].IsPush() && c[0].Opcode() == opcode.OP_DUP &&
		!c[1].IsPush() && c[1].Opcode() == opcode.OP_HASH160 &&
		c[2].IsPush() && c[2].Len() == 20 &&
		!c[3].IsPush() && c[3].Opcode() == opcode.OP_EQUALVERIFY &&
		!c[4].IsPush() && c[4].Opcode() == opcode.OP_CHECKSIG
}

func isPubkeyHashIn(s *Script) bool {
	if s.Len() != 2 {
		return false
	}
	c := s.chunks
	return c[0].IsPush() && sigPushLengths[c[0].Len()] &&
		c[1].IsPush() && pubkey.IsValid(c[1].Payload())
}

func isPubkeyOut(s *Script) bool {
	if s.Len() != 2 {
		return false
	}
	c := s.chunks
	return c[0].IsPush() && pubkey.IsValid(c[0].Payload()) &&
		!c[1].IsPush() && c[1].Opcode() == opcode.OP_CHECKSIG
}

func isPubkeyIn(s *Script) bool {
	return s.Len() == 1 && s.chunks[0].IsPush() && s.chunks[0].Len() == 0x47
}

func isScriptHashOut(s *Script) bool {
	if s.Len() != 3 {
		return false
	}
	c := s.chunks
	return !c[0].IsPush() && c[0].Opcode() == opcode.OP_HASH160 &&
		c[1].IsPush() && c[1].Len() == 20 &&
		!c[2].IsPush() && c[2].Opcode() == opcode.OP_EQUAL
}

func isScriptHashIn(s *Script) bool {
	if s.Len() == 0 {
		return false
	}
	last := s.chunks[s.Len()-1]
	if !last.IsPush() {
		return false
	}
	embedded, err := Parse(last.Payload())
	if err != nil {
		return false
	}
	return Classify(embedded) != UNKNOWN
}

func isMultisigOut(s *Script) bool {
	if s.Len() <= 3 {
		return false
	}
	c := s.chunks
	if c[0].IsPush() {
		return false
	}
	if _, ok := opcode.AsSmallInt(c[0].Opcode()); !ok {
		return false
	}
	last := s.Len() - 1
	nIdx := last - 1
	if c[nIdx].IsPush() {
		return false
	}
	if _, ok := opcode.AsSmallInt(c[nIdx].Opcode()); !ok {
		return false
	}
	for i := 1; i < nIdx; i++ {
		if !c[i].IsPush() {
			return false
		}
	}
	return !c[last].IsPush() && c[last].Opcode() == opcode.OP_CHECKMULTISIG
}

func isMultisigIn(s *Script) bool {
	if s.Len() < 2 {
		return false
	}
	c := s.chunks
	if c[0].IsPush() || c[0].Opcode() != opcode.OP_0 {
		return false
	}
	for i := 1; i < len(c); i++ {
		if !c[i].IsPush() || c[i].Len() != 0x47 {
			return false
		}
	}
	return true
}

// isDataOut implements the §4.5 rule as written, not the source's typo'd
// version described in spec §9: chunks[1], when present, must be a push
// of at most 40 bytes.
func isDataOut(s *Script) bool {
	c := s.chunks
	if len(c) == 0 || c[0].IsPush() || c[0].Opcode() != opcode.OP_RETURN {
		return false
	}
	switch len(c) {
	case 1:
		return true
	case 2:
		return c[1].IsPush() && c[1].Len() <= 40
	default:
		return false
	}
}

// IsDataOut reports whether s classifies as DATA_OUT.
func (s *Script) IsDataOut() bool {
	return isDataOut(s)
}

// GetPublicKeyHash returns the 20-byte pubkey hash embedded in a
// PUBKEYHASH_OUT script, failing with ErrPreconditionFailed otherwise.
func GetPublicKeyHash(s *Script) ([]byte, error) {
	if !isPubkeyHashOut(s) {
		return nil, ErrPreconditionFailed
	}
	return s.chunks[2].Payload(), nil
}
