package script

import (
	"fmt"

	"github.com/qinglongcn/bitscript/opcode"
)

// MaxStandardMultisigKeys bounds bare multisig scripts considered
// policy-standard, matching the teacher's checkPkScriptStandard default.
const MaxStandardMultisigKeys = 3

// CheckPolicy runs the additional standardness checks this corpus applies
// on top of Classify: it never changes the class a script is recognized
// as, only whether it also passes policy. A script that classifies as
// UNKNOWN always fails.
func CheckPolicy(s *Script) error {
	switch Classify(s) {
	case UNKNOWN:
		return fmt.Errorf("non-standard script form")
	case MULTISIG_OUT:
		n, ok := opcode.AsSmallInt(s.chunks[s.Len()-2].Opcode())
		if !ok {
			return fmt.Errorf("multisig script with unreadable pubkey count")
		}
		if n < 1 {
			return fmt.Errorf("multisig script with no pubkeys")
		}
		if n > MaxStandardMultisigKeys {
			return fmt.Errorf("multisig script with %d public keys, more than the allowed max of %d", n, MaxStandardMultisigKeys)
		}
	}
	return nil
}
