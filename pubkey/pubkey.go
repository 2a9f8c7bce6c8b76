// Package pubkey is the script subsystem's external collaborator for SEC
// public keys (spec §6.5): validity checking and canonical serialization.
// It is a thin concrete wrapper over btcec/v2 so that package script never
// needs to import the elliptic-curve library itself.
package pubkey

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PublicKey is a parsed SEC-encoded secp256k1 public key.
type PublicKey struct {
	key        *btcec.PublicKey
	compressed bool
}

// Parse decodes a SEC-encoded public key (33 bytes compressed, 65 bytes
// uncompressed). It fails if b does not decode to a point on the curve.
func Parse(b []byte) (*PublicKey, error) {
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("pubkey: invalid SEC encoding: %w", err)
	}
	return &PublicKey{key: key, compressed: len(b) == 33}, nil
}

// IsValid reports whether b decodes as a valid SEC-encoded public key,
// matching the PublicKey.isValid contract in spec §6.5.
func IsValid(b []byte) bool {
	_, err := btcec.ParsePubKey(b)
	return err == nil
}

// ToBuffer returns the key's canonical SEC serialization: compressed if it
// was parsed from a compressed encoding, uncompressed otherwise.
func (k *PublicKey) ToBuffer() []byte {
	if k.compressed {
		return k.key.SerializeCompressed()
	}
	return k.key.SerializeUncompressed()
}

// Compressed reports whether ToBuffer returns the compressed form.
func (k *PublicKey) Compressed() bool { return k.compressed }
