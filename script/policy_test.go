package script

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qinglongcn/bitscript/opcode"
)

func TestCheckPolicyMultisigWithinBound(t *testing.T) {
	keys := fakeKeys(3)
	s, err := BuildMultisigOut(keys, 2, MultisigOptions{})
	require.NoError(t, err)
	require.NoError(t, CheckPolicy(s))
}

func TestCheckPolicyMultisigExceedsBound(t *testing.T) {
	keys := fakeKeys(MaxStandardMultisigKeys + 1)
	s := Empty()
	s.AppendOpcode(opcode.OP_1)
	for _, k := range keys {
		_, err := s.AppendPush(k.ToBuffer())
		require.NoError(t, err)
	}
	nOp, ok := opcode.SmallInt(len(keys))
	require.True(t, ok)
	s.AppendOpcode(nOp)
	s.AppendOpcode(opcode.OP_CHECKMULTISIG)
	require.Equal(t, MULTISIG_OUT, Classify(s))

	require.Error(t, CheckPolicy(s))
}

func TestCheckPolicyUnknownScript(t *testing.T) {
	s := Empty()
	s.AppendOpcode(opcode.OP_NOP)
	require.Error(t, CheckPolicy(s))
}
