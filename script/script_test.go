package script

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qinglongcn/bitscript/opcode"
)

func TestEmptyScript(t *testing.T) {
	s := Empty()
	require.Equal(t, 0, s.Len())
	require.Empty(t, Serialize(s))
}

func TestAppendOpcodeAndPush(t *testing.T) {
	s := Empty()
	s.AppendOpcode(opcode.OP_DUP)
	_, err := s.AppendPush([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)

	require.Equal(t, 2, s.Len())
	require.Equal(t, opcode.OP_DUP, s.Chunk(0).Opcode())
	require.True(t, s.Chunk(1).IsPush())
	require.Equal(t, byte(3), s.Chunk(1).Opcode())
}

func TestPrependOpcodeAndPush(t *testing.T) {
	s := Empty()
	s.AppendOpcode(opcode.OP_CHECKSIG)
	s.PrependOpcode(opcode.OP_DUP)
	require.Equal(t, opcode.OP_DUP, s.Chunk(0).Opcode())

	_, err := s.PrependPush([]byte{0xff})
	require.NoError(t, err)
	require.True(t, s.Chunk(0).IsPush())
}

func TestAppendZeroLengthPushIsNoOp(t *testing.T) {
	s := Empty()
	_, err := s.AppendPush(nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}

// Property 5 / E5's sibling: the minimum-encoding rule picks the opcode by
// length exactly as specified, never rewriting 1-byte small-int values.
func TestMinimumEncodingRule(t *testing.T) {
	cases := []struct {
		length int
		opcode byte
	}{
		{1, 0x01},
		{0x4b, 0x4b},
		{0x4c, opcode.OP_PUSHDATA1},
		{255, opcode.OP_PUSHDATA1},
		{256, opcode.OP_PUSHDATA2},
		{1 << 16, opcode.OP_PUSHDATA4},
	}
	for _, tc := range cases {
		s := Empty()
		_, err := s.AppendPush(make([]byte, tc.length))
		require.NoError(t, err)
		require.Equal(t, tc.opcode, s.Chunk(0).Opcode(), "length %d", tc.length)
	}

	// A single byte with a small-integer value (e.g. 0x01) is still
	// encoded as a direct push, not rewritten to OP_1.
	s := Empty()
	_, err := s.AppendPush([]byte{0x01})
	require.NoError(t, err)
	require.Equal(t, byte(0x01), s.Chunk(0).Opcode())
	require.NotEqual(t, opcode.OP_1, s.Chunk(0).Opcode())
}

func TestAppendChunkAndExtend(t *testing.T) {
	chunk := NewBareChunk(opcode.OP_VERIFY)
	s := Empty()
	s.AppendChunk(chunk)
	require.Equal(t, 1, s.Len())

	other := Empty()
	other.AppendOpcode(opcode.OP_NOP)
	s.Extend(other)
	require.Equal(t, 2, s.Len())
	require.Equal(t, opcode.OP_NOP, s.Chunk(1).Opcode())
}

func TestPolymorphicAppendPrepend(t *testing.T) {
	s := Empty()
	_, err := s.Append(opcode.OP_DUP)
	require.NoError(t, err)

	_, err = s.Append(int(opcode.OP_HASH160))
	require.NoError(t, err)

	_, err = s.Append([]byte{0xaa, 0xbb})
	require.NoError(t, err)

	chunk := NewBareChunk(opcode.OP_EQUAL)
	_, err = s.Append(chunk)
	require.NoError(t, err)

	require.Equal(t, 4, s.Len())

	_, err = s.Append("unsupported")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Append(300)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Property 10: removeCodeseparators removes exactly the OP_CODESEPARATOR
// chunks and preserves the order of the rest.
func TestRemoveCodeSeparators(t *testing.T) {
	s := Empty()
	s.AppendOpcode(opcode.OP_DUP)
	s.AppendOpcode(opcode.OP_CODESEPARATOR)
	s.AppendOpcode(opcode.OP_HASH160)
	s.AppendOpcode(opcode.OP_CODESEPARATOR)
	s.AppendOpcode(opcode.OP_EQUAL)

	stripped := s.RemoveCodeSeparators()
	require.Equal(t, 3, stripped.Len())
	require.Equal(t, opcode.OP_DUP, stripped.Chunk(0).Opcode())
	require.Equal(t, opcode.OP_HASH160, stripped.Chunk(1).Opcode())
	require.Equal(t, opcode.OP_EQUAL, stripped.Chunk(2).Opcode())

	// Original is untouched.
	require.Equal(t, 5, s.Len())
}

func TestIsPushOnly(t *testing.T) {
	s := Empty()
	s.AppendOpcode(opcode.OP_1)
	_, err := s.AppendPush([]byte{0x01, 0x02})
	require.NoError(t, err)
	require.True(t, s.IsPushOnly())

	s.AppendOpcode(opcode.OP_CHECKSIG)
	require.False(t, s.IsPushOnly())
}

func TestScriptEqual(t *testing.T) {
	a := Empty()
	a.AppendOpcode(opcode.OP_DUP)
	b := Empty()
	b.AppendOpcode(opcode.OP_DUP)
	require.True(t, a.Equal(b))

	b.AppendOpcode(opcode.OP_NOP)
	require.False(t, a.Equal(b))
}

func TestFlattenUnflattenScripts(t *testing.T) {
	scripts := [][]byte{
		{0x76, 0xa9},
		{},
		{0x01, 0x02, 0x03},
	}
	flat := FlattenScripts(scripts)
	got, err := UnflattenScripts(flat)
	require.NoError(t, err)
	require.Equal(t, len(scripts), len(got))
	for i := range scripts {
		require.Equal(t, scripts[i], got[i])
	}
}
