package script

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/qinglongcn/bitscript/bhash"
	"github.com/qinglongcn/bitscript/opcode"
	"github.com/qinglongcn/bitscript/sighash"
)

// PublicKey is the external collaborator contract builders need from a
// parsed SEC public key (spec §6.5), satisfied by *pubkey.PublicKey.
type PublicKey interface {
	ToBuffer() []byte
}

// Address is the external collaborator contract builders need from a
// decoded address (spec §6.5), satisfied by *address.Address.
type Address interface {
	HashBuffer() []byte
	IsPayToScriptHash() bool
	IsPayToPublicKeyHash() bool
}

// payToAddrTarget resolves the heterogeneous "to" argument BuildPublicKeyHashOut
// accepts (an Address, a PublicKey, or a raw 20-byte hash) down to the hash
// that goes into the script, mirroring the polymorphism spec §4.7 asks for
// in a closed, typed way (see the note on Append/Prepend in script.go).
func payToAddrTarget(to interface{}) ([]byte, error) {
	switch v := to.(type) {
	case Address:
		return v.HashBuffer(), nil
	case PublicKey:
		return bhash.Hash160(v.ToBuffer()), nil
	case []byte:
		if len(v) != 20 {
			return nil, fmt.Errorf("%w: pubkey hash must be 20 bytes, got %d", ErrInvalidArgument, len(v))
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unsupported buildPublicKeyHashOut target type %T", ErrInvalidArgument, to)
	}
}

// BuildPublicKeyHashOut builds a P2PKH output script paying to the
// 20-byte hash160 of a public key: OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY
// OP_CHECKSIG.
func BuildPublicKeyHashOut(to interface{}) (*Script, error) {
	hash, err := payToAddrTarget(to)
	if err != nil {
		return nil, err
	}
	s := Empty()
	s.AppendOpcode(opcode.OP_DUP)
	s.AppendOpcode(opcode.OP_HASH160)
	if _, err := s.AppendPush(hash); err != nil {
		return nil, err
	}
	s.AppendOpcode(opcode.OP_EQUALVERIFY)
	s.AppendOpcode(opcode.OP_CHECKSIG)
	return s, nil
}

// BuildPublicKeyOut builds a P2PK output script: push(pubkey) OP_CHECKSIG.
func BuildPublicKeyOut(pk PublicKey) (*Script, error) {
	s := Empty()
	if _, err := s.AppendPush(pk.ToBuffer()); err != nil {
		return nil, err
	}
	s.AppendOpcode(opcode.OP_CHECKSIG)
	return s, nil
}

// BuildScriptHashOut builds a P2SH output script embedding the hash of a
// serialized redeem script: OP_HASH160 push(hash) OP_EQUAL.
func BuildScriptHashOut(redeemScript *Script) (*Script, error) {
	hash := bhash.Sha256Ripemd160(Serialize(redeemScript))
	s := Empty()
	s.AppendOpcode(opcode.OP_HASH160)
	if _, err := s.AppendPush(hash); err != nil {
		return nil, err
	}
	s.AppendOpcode(opcode.OP_EQUAL)
	return s, nil
}

// BuildDataOut builds an OP_RETURN data-carrier output script: OP_RETURN
// push(data). Text data is treated as raw bytes, not re-encoded.
func BuildDataOut(data []byte) (*Script, error) {
	s := Empty()
	s.AppendOpcode(opcode.OP_RETURN)
	if len(data) > 0 {
		if _, err := s.AppendPush(data); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MultisigOptions configures the deviations BuildMultisigOut and
// BuildP2SHMultisigIn allow from their defaults.
type MultisigOptions struct {
	// NoSorting disables the deterministic lexicographic pubkey sort
	// (spec §4.7); the caller's order is used as-is.
	NoSorting bool
	// CachedMultisig, when set, is used as the embedded redeem script in
	// BuildP2SHMultisigIn instead of rebuilding it from pubkeys/M.
	CachedMultisig *Script
}

// BuildMultisigOut builds a bare M-of-N multisig output script:
// small-int(M), one push per public key, small-int(N), OP_CHECKMULTISIG.
// Unless opts.NoSorting, the public keys are sorted ascending by their
// serialized bytes first, so the same key set in any order produces the
// same script.
func BuildMultisigOut(pubkeys []PublicKey, m int, opts MultisigOptions) (*Script, error) {
	mOp, ok := opcode.SmallInt(m)
	if !ok {
		return nil, fmt.Errorf("%w: M=%d out of small-integer range", ErrInvalidArgument, m)
	}
	nOp, ok := opcode.SmallInt(len(pubkeys))
	if !ok {
		return nil, fmt.Errorf("%w: N=%d out of small-integer range", ErrInvalidArgument, len(pubkeys))
	}

	bufs := make([][]byte, len(pubkeys))
	for i, pk := range pubkeys {
		bufs[i] = pk.ToBuffer()
	}
	if !opts.NoSorting {
		sort.Slice(bufs, func(i, j int) bool {
			return bytes.Compare(bufs[i], bufs[j]) < 0
		})
	}

	s := Empty()
	s.AppendOpcode(mOp)
	for _, buf := range bufs {
		if _, err := s.AppendPush(buf); err != nil {
			return nil, err
		}
	}
	s.AppendOpcode(nOp)
	s.AppendOpcode(opcode.OP_CHECKMULTISIG)
	return s, nil
}

// BuildP2SHMultisigIn builds a P2SH-multisig spend input script: OP_0, one
// push per signature in the given order, then push(serialized redeem
// script). The redeem script is opts.CachedMultisig if set, else it is
// rebuilt via BuildMultisigOut(pubkeys, m, opts).
func BuildP2SHMultisigIn(pubkeys []PublicKey, m int, signatures [][]byte, opts MultisigOptions) (*Script, error) {
	redeem := opts.CachedMultisig
	if redeem == nil {
		built, err := BuildMultisigOut(pubkeys, m, opts)
		if err != nil {
			return nil, err
		}
		redeem = built
	}

	s := Empty()
	s.AppendOpcode(opcode.OP_0)
	for _, sig := range signatures {
		if _, err := s.AppendPush(sig); err != nil {
			return nil, err
		}
	}
	if _, err := s.AppendPush(Serialize(redeem)); err != nil {
		return nil, err
	}
	return s, nil
}

// BuildPublicKeyHashIn builds a P2PKH spend input script:
// push(signature ∥ sigtype byte), push(pubkey bytes). sigtype defaults to
// sighash.SIGHASH_ALL when zero.
func BuildPublicKeyHashIn(pk PublicKey, signature []byte, sigtype sighash.Type) (*Script, error) {
	if sigtype == 0 {
		sigtype = sighash.SIGHASH_ALL
	}
	sigWithType := append(append([]byte{}, signature...), byte(sigtype))

	s := Empty()
	if _, err := s.AppendPush(sigWithType); err != nil {
		return nil, err
	}
	if _, err := s.AppendPush(pk.ToBuffer()); err != nil {
		return nil, err
	}
	return s, nil
}

// FromAddress builds the standard output script for an address: a P2SH
// output if addr is pay-to-script-hash, a P2PKH output if pay-to-pubkey-
// hash, else ErrUnrecognizedAddress.
func FromAddress(addr Address) (*Script, error) {
	switch {
	case addr.IsPayToScriptHash():
		s := Empty()
		s.AppendOpcode(opcode.OP_HASH160)
		if _, err := s.AppendPush(addr.HashBuffer()); err != nil {
			return nil, err
		}
		s.AppendOpcode(opcode.OP_EQUAL)
		return s, nil
	case addr.IsPayToPublicKeyHash():
		return BuildPublicKeyHashOut(addr)
	default:
		return nil, ErrUnrecognizedAddress
	}
}
