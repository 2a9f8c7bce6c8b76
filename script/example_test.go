package script

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/qinglongcn/bitscript/address"
)

// ExampleFromAddress decodes a pay-to-pubkey-hash address, builds its
// standard output script, and round-trips it: render to text, classify,
// then extract the embedded hash and rebuild the address from it. This is
// the same decode/build/disassemble/extract flow the teacher's txscript
// example suite demonstrated, carried over to this package's own API.
func ExampleFromAddress() {
	addr, err := address.Decode("12gpXQVcCL2qhTNQgyLVdCFG2Qs2px98nV", &chaincfg.MainNetParams)
	if err != nil {
		fmt.Println(err)
		return
	}

	s, err := FromAddress(addr)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("hex:    %x\n", Serialize(s))
	fmt.Printf("disasm: %s\n", RenderText(s))
	fmt.Println("class:", Classify(s))

	hash, err := GetPublicKeyHash(s)
	if err != nil {
		fmt.Println(err)
		return
	}
	extracted, err := address.FromPubKeyHash(hash, &chaincfg.MainNetParams)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("address:", extracted)

	// Output:
	// hex:    76a914128004ff2fcaf13b2b91eb654b1dc2b674f7ec6188ac
	// disasm: OP_DUP OP_HASH160 20 0x128004ff2fcaf13b2b91eb654b1dc2b674f7ec61 OP_EQUALVERIFY OP_CHECKSIG
	// class: PUBKEYHASH_OUT
	// address: 12gpXQVcCL2qhTNQgyLVdCFG2Qs2px98nV
}
