// Package sighash holds the one constant the script subsystem's builders
// need from the transaction signing layer (spec §6.5): the default
// signature-hash type byte. Computing sighashes themselves is out of
// scope for this module.
package sighash

// Type is a signature-hash type byte, appended to a DER signature before
// it is pushed into a scriptSig.
type Type byte

// SIGHASH_ALL is the default and most common sighash type: the signature
// commits to every input and output of the transaction.
const SIGHASH_ALL Type = 0x01
