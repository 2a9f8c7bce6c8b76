package bhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash160Length(t *testing.T) {
	h := Hash160([]byte("hello"))
	require.Len(t, h, 20)
}

func TestHash160Deterministic(t *testing.T) {
	a := Hash160([]byte("same input"))
	b := Hash160([]byte("same input"))
	require.Equal(t, a, b)
}

func TestHash160DiffersOnDifferentInput(t *testing.T) {
	a := Hash160([]byte("one"))
	b := Hash160([]byte("two"))
	require.NotEqual(t, a, b)
}
