package script

import "errors"

// Error kinds surfaced by this package. Every operation either returns a
// value or one of these; nothing is retried, logged, or swallowed here —
// that policy belongs to the caller.
var (
	// ErrTruncated means a byte stream ended in the middle of a chunk
	// during parsing.
	ErrTruncated = errors.New("script: truncated")

	// ErrInvalidScript means the text form could not be tokenized.
	ErrInvalidScript = errors.New("script: invalid script")

	// ErrPayloadTooLarge means a mutator was asked to push a payload
	// whose length doesn't fit in a 4-byte length prefix.
	ErrPayloadTooLarge = errors.New("script: payload too large")

	// ErrInvalidArgument means Append/Prepend, NewPushChunk, or a builder
	// received an input it doesn't support.
	ErrInvalidArgument = errors.New("script: invalid argument")

	// ErrUnrecognizedAddress means FromAddress was given an address that
	// is neither pay-to-pubkey-hash nor pay-to-script-hash.
	ErrUnrecognizedAddress = errors.New("script: unrecognized address type")

	// ErrPreconditionFailed means an accessor such as GetPublicKeyHash was
	// called on a script that isn't shaped the way it requires.
	ErrPreconditionFailed = errors.New("script: precondition failed")
)
