package script

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qinglongcn/bitscript/bhash"
	"github.com/qinglongcn/bitscript/opcode"
	"github.com/qinglongcn/bitscript/sighash"
)

// fakePubKey is a minimal PublicKey for builder tests that doesn't need a
// real secp256k1 point, only a stable serialized form to sort/push.
type fakePubKey struct{ buf []byte }

func (f fakePubKey) ToBuffer() []byte { return f.buf }

type fakeAddress struct {
	hash        []byte
	isScript    bool
	isPublicKey bool
}

func (a fakeAddress) HashBuffer() []byte        { return a.hash }
func (a fakeAddress) IsPayToScriptHash() bool   { return a.isScript }
func (a fakeAddress) IsPayToPublicKeyHash() bool { return a.isPublicKey }

func TestBuildPublicKeyHashOut(t *testing.T) {
	hash := make([]byte, 20)
	hash[0] = 0xaa

	s, err := BuildPublicKeyHashOut(hash)
	require.NoError(t, err)
	require.Equal(t, PUBKEYHASH_OUT, Classify(s))

	got, err := GetPublicKeyHash(s)
	require.NoError(t, err)
	require.Equal(t, hash, got)
}

func TestBuildPublicKeyHashOutFromAddress(t *testing.T) {
	addr := fakeAddress{hash: make([]byte, 20), isPublicKey: true}
	s, err := BuildPublicKeyHashOut(addr)
	require.NoError(t, err)
	require.Equal(t, PUBKEYHASH_OUT, Classify(s))
}

func TestBuildScriptHashOut(t *testing.T) {
	redeem, err := BuildMultisigOut([]PublicKey{
		fakePubKey{buf: []byte{0x02, 0x01}},
		fakePubKey{buf: []byte{0x02, 0x02}},
	}, 2, MultisigOptions{})
	require.NoError(t, err)

	out, err := BuildScriptHashOut(redeem)
	require.NoError(t, err)
	require.Equal(t, SCRIPTHASH_OUT, Classify(out))

	// E8: the embedded hash equals sha256ripemd160(serialize(redeem)).
	embeddedHash := out.Chunk(1).Payload()
	require.Len(t, embeddedHash, 20)
	require.Equal(t, bhash.Sha256Ripemd160(Serialize(redeem)), embeddedHash)
}

func TestBuildDataOut(t *testing.T) {
	s, err := BuildDataOut([]byte("Hello"))
	require.NoError(t, err)
	require.Equal(t, "OP_RETURN 5 0x48656c6c6f", RenderText(s))
	require.True(t, s.IsDataOut())
}

func fakeKeys(n int) []PublicKey {
	keys := make([]PublicKey, n)
	for i := range keys {
		buf := make([]byte, 33)
		buf[0] = 0x02
		buf[1] = byte(n - i) // distinct, so sort order actually matters
		keys[i] = fakePubKey{buf: buf}
	}
	return keys
}

// E7/E4: deterministic multisig regardless of input order.
func TestBuildMultisigOutDeterministic(t *testing.T) {
	keys := fakeKeys(3)

	s1, err := BuildMultisigOut(keys, 2, MultisigOptions{})
	require.NoError(t, err)

	shuffled := append([]PublicKey{}, keys...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	s2, err := BuildMultisigOut(shuffled, 2, MultisigOptions{})
	require.NoError(t, err)

	require.Equal(t, Serialize(s1), Serialize(s2))
	require.Equal(t, MULTISIG_OUT, Classify(s1))
}

func TestBuildMultisigOutNoSorting(t *testing.T) {
	keys := fakeKeys(3)
	reversed := []PublicKey{keys[2], keys[1], keys[0]}

	// fakeKeys yields descending keys, so reversed is already ascending;
	// the caller-ordered (unsorted) build uses keys, which sorting reorders.
	sorted, err := BuildMultisigOut(reversed, 2, MultisigOptions{})
	require.NoError(t, err)
	unsorted, err := BuildMultisigOut(keys, 2, MultisigOptions{NoSorting: true})
	require.NoError(t, err)

	require.NotEqual(t, Serialize(sorted), Serialize(unsorted))
}

func TestBuildP2SHMultisigIn(t *testing.T) {
	keys := fakeKeys(3)
	sigs := [][]byte{make([]byte, 0x48), make([]byte, 0x48)}

	s, err := BuildP2SHMultisigIn(keys, 2, sigs, MultisigOptions{})
	require.NoError(t, err)
	require.Equal(t, opcode.OP_0, s.Chunk(0).Opcode())
	require.Equal(t, 4, s.Len()) // OP_0 + 2 sigs + redeem script push
}

// E5: two push chunks, second equals pubkey.ToBuffer(), first ends in sigtype.
func TestBuildPublicKeyHashIn(t *testing.T) {
	pk := fakePubKey{buf: []byte{0x02, 0x03, 0x04}}
	sig := make([]byte, 71)

	s, err := BuildPublicKeyHashIn(pk, sig, sighash.SIGHASH_ALL)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	require.Equal(t, pk.ToBuffer(), s.Chunk(1).Payload())

	sigPush := s.Chunk(0).Payload()
	require.Equal(t, byte(sighash.SIGHASH_ALL), sigPush[len(sigPush)-1])
}

func TestBuildPublicKeyHashInDefaultSigtype(t *testing.T) {
	pk := fakePubKey{buf: []byte{0x02}}
	sig := make([]byte, 71)

	s, err := BuildPublicKeyHashIn(pk, sig, 0)
	require.NoError(t, err)
	sigPush := s.Chunk(0).Payload()
	require.Equal(t, byte(0x01), sigPush[len(sigPush)-1])
}

func TestFromAddress(t *testing.T) {
	p2sh, err := FromAddress(fakeAddress{hash: make([]byte, 20), isScript: true})
	require.NoError(t, err)
	require.Equal(t, SCRIPTHASH_OUT, Classify(p2sh))

	p2pkh, err := FromAddress(fakeAddress{hash: make([]byte, 20), isPublicKey: true})
	require.NoError(t, err)
	require.Equal(t, PUBKEYHASH_OUT, Classify(p2pkh))

	_, err = FromAddress(fakeAddress{hash: make([]byte, 20)})
	require.ErrorIs(t, err, ErrUnrecognizedAddress)
}

func TestBuildersRejectBadArgument(t *testing.T) {
	_, err := BuildPublicKeyHashOut("not an address")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = BuildPublicKeyHashOut([]byte{0x01, 0x02})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
