package sighash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSigHashAllValue(t *testing.T) {
	require.Equal(t, Type(0x01), SIGHASH_ALL)
}
