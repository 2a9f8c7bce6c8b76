// Package bhash is the script subsystem's external collaborator for the
// sha256ripemd160 primitive (spec §6.5), the hash used by both P2PKH and
// P2SH templates.
package bhash

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // matches the corpus's hashing, not a security-sensitive use
)

// Sha256Ripemd160 returns ripemd160(sha256(b)), always 20 bytes.
func Sha256Ripemd160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// Hash160 is an alias for Sha256Ripemd160 using the name most Bitcoin
// tooling knows it by.
func Hash160(b []byte) []byte {
	return Sha256Ripemd160(b)
}
