// Package address is the script subsystem's external collaborator for
// Bitcoin addresses (spec §6.5): decoding a base58check address string and
// exposing its payload hash and template kind. It wraps btcutil's address
// types so package script never needs to import btcutil directly.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Address is a decoded Bitcoin address.
type Address struct {
	inner btcutil.Address
}

// Decode parses a base58check address string against the given network
// parameters. Pass chaincfg.MainNetParams or chaincfg.TestNet3Params.
func Decode(addr string, params *chaincfg.Params) (*Address, error) {
	a, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	return &Address{inner: a}, nil
}

// FromPubKeyHash builds a P2PKH address from a 20-byte pubkey hash.
func FromPubKeyHash(hash160 []byte, params *chaincfg.Params) (*Address, error) {
	a, err := btcutil.NewAddressPubKeyHash(hash160, params)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	return &Address{inner: a}, nil
}

// FromScriptHash builds a P2SH address from a 20-byte redeem-script hash.
func FromScriptHash(hash160 []byte, params *chaincfg.Params) (*Address, error) {
	a, err := btcutil.NewAddressScriptHashFromHash(hash160, params)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}
	return &Address{inner: a}, nil
}

// HashBuffer returns the address's 20-byte payload hash, matching the
// Address.hashBuffer contract in spec §6.5.
func (a *Address) HashBuffer() []byte {
	return a.inner.ScriptAddress()
}

// IsPayToScriptHash reports whether the address is a P2SH address.
func (a *Address) IsPayToScriptHash() bool {
	_, ok := a.inner.(*btcutil.AddressScriptHash)
	return ok
}

// IsPayToPublicKeyHash reports whether the address is a P2PKH address.
func (a *Address) IsPayToPublicKeyHash() bool {
	_, ok := a.inner.(*btcutil.AddressPubKeyHash)
	return ok
}

// String returns the address's base58check encoding.
func (a *Address) String() string {
	return a.inner.String()
}
