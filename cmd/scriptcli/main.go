// Command scriptcli exercises the script subsystem from the command
// line: parsing, rendering, classifying, and building standard Bitcoin
// scripts. It is a thin wrapper — none of the subcommands duplicate core
// logic, they only adapt package script's API to argv and stdout.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/sirupsen/logrus"
	"github.com/tyler-smith/go-bip32"
	"golang.org/x/crypto/pbkdf2"

	"github.com/qinglongcn/bitscript/address"
	"github.com/qinglongcn/bitscript/bhash"
	"github.com/qinglongcn/bitscript/pubkey"
	"github.com/qinglongcn/bitscript/script"
)

func main() {
	if err := setupLogging("logs"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = cmdParse(os.Args[2:])
	case "render":
		err = cmdRender(os.Args[2:])
	case "classify":
		err = cmdClassify(os.Args[2:])
	case "build":
		err = cmdBuild(os.Args[2:])
	case "keygen":
		err = cmdKeygen(os.Args[2:])
	case "disasm":
		err = cmdDisasm(os.Args[2:])
	case "watch":
		err = cmdWatch(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		logrus.Fatalf("scriptcli: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scriptcli <parse|render|classify|build|keygen|disasm|watch> [args...]")
}

func cmdParse(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("parse requires exactly one hex argument")
	}
	b, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}
	s, err := script.Parse(b)
	if err != nil {
		return err
	}
	fmt.Printf("%d chunks: %s\n", s.Len(), script.RenderText(s))
	return nil
}

func cmdRender(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("render requires exactly one hex argument")
	}
	b, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}
	s, err := script.Parse(b)
	if err != nil {
		return err
	}
	fmt.Println(script.RenderText(s))
	return nil
}

func cmdClassify(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("classify requires exactly one hex-or-text argument")
	}
	s, err := script.ParseText(args[0])
	if err != nil {
		return err
	}
	class := script.Classify(s)
	fmt.Printf("%s (policy-standard: %v)\n", class, script.CheckPolicy(s) == nil)
	return nil
}

func cmdBuild(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("build requires a template name")
	}
	var s *script.Script
	var err error

	switch args[0] {
	case "p2pkh":
		if len(args) != 2 {
			return fmt.Errorf("build p2pkh requires an address argument")
		}
		addr, derr := address.Decode(args[1], &chaincfg.MainNetParams)
		if derr != nil {
			return derr
		}
		s, err = script.FromAddress(addr)
	case "p2pk":
		if len(args) != 2 {
			return fmt.Errorf("build p2pk requires a hex pubkey argument")
		}
		pkBytes, derr := hex.DecodeString(args[1])
		if derr != nil {
			return derr
		}
		pk, derr := pubkey.Parse(pkBytes)
		if derr != nil {
			return derr
		}
		s, err = script.BuildPublicKeyOut(pk)
	case "p2sh":
		if len(args) != 2 {
			return fmt.Errorf("build p2sh requires a hex redeem-script argument")
		}
		redeemBytes, derr := hex.DecodeString(args[1])
		if derr != nil {
			return derr
		}
		redeem, derr := script.Parse(redeemBytes)
		if derr != nil {
			return derr
		}
		s, err = script.BuildScriptHashOut(redeem)
	case "multisig":
		if len(args) < 3 {
			return fmt.Errorf("build multisig requires M followed by at least one hex pubkey")
		}
		s, err = buildMultisigFromArgs(args[1:])
	case "data":
		if len(args) != 2 {
			return fmt.Errorf("build data requires a text argument")
		}
		s, err = script.BuildDataOut([]byte(args[1]))
	default:
		return fmt.Errorf("unsupported build template %q", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", script.Serialize(s))
	return nil
}

// buildMultisigFromArgs parses "<M> <hexpubkey> [<hexpubkey> ...]" into a
// bare multisig output script, sorted by default per spec §4.7.
func buildMultisigFromArgs(args []string) (*script.Script, error) {
	m, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid M %q: %w", args[0], err)
	}

	keys := make([]script.PublicKey, 0, len(args)-1)
	for _, hexKey := range args[1:] {
		b, err := hex.DecodeString(hexKey)
		if err != nil {
			return nil, fmt.Errorf("invalid pubkey hex %q: %w", hexKey, err)
		}
		pk, err := pubkey.Parse(b)
		if err != nil {
			return nil, err
		}
		keys = append(keys, pk)
	}

	return script.BuildMultisigOut(keys, m, script.MultisigOptions{})
}

// cmdKeygen derives a child keypair via BIP32 and runs it end to end
// through pubkey/bhash/address: the same seed-to-master-key round trip
// example_test.go's GenerateECDSAKeyPair demonstrated with a P-256 toy
// key and PBKDF2, adapted here to the secp256k1 curve the script
// subsystem actually targets.
func cmdKeygen(args []string) error {
	password := make([]byte, 32)
	if _, err := rand.Read(password); err != nil {
		return fmt.Errorf("generating entropy: %w", err)
	}
	seed := pbkdf2.Key(password, []byte("bitscript"), 2048, 32, sha256.New)

	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return fmt.Errorf("deriving master key: %w", err)
	}
	child, err := master.NewChildKey(0)
	if err != nil {
		return fmt.Errorf("deriving child key: %w", err)
	}

	_, pub := btcec.PrivKeyFromBytes(child.Key)
	pk, err := pubkey.Parse(pub.SerializeCompressed())
	if err != nil {
		return err
	}

	hash160 := bhash.Hash160(pk.ToBuffer())
	addr, err := address.FromPubKeyHash(hash160, &chaincfg.MainNetParams)
	if err != nil {
		return err
	}

	fmt.Printf("pubkey:  %x\n", pk.ToBuffer())
	fmt.Printf("address: %s\n", addr.String())
	return nil
}

func cmdDisasm(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("disasm requires exactly one address argument")
	}
	addr, err := address.Decode(args[0], &chaincfg.MainNetParams)
	if err != nil {
		return err
	}
	s, err := script.FromAddress(addr)
	if err != nil {
		return err
	}
	fmt.Printf("hex:    %x\n", script.Serialize(s))
	fmt.Printf("disasm: %s\n", script.RenderText(s))
	fmt.Printf("class:  %s\n", script.Classify(s))
	return nil
}

// cmdWatch loads a fixture file of one script per line and classifies
// each, then idles until interrupted. The file is read once; lines
// appended later are not picked up.
func cmdWatch(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("watch requires a fixture file path")
	}
	store := newFixtureStore()
	scripts, err := store.LoadScripts(args[0])
	if err != nil {
		return err
	}
	for i, s := range scripts {
		fmt.Printf("[%d] %s -> %s\n", i, script.RenderText(s), script.Classify(s))
	}

	logrus.Info("scriptcli watch: idle, waiting for shutdown signal")
	watchShutdown(func() {
		logrus.Info("scriptcli watch: shutting down")
	})
	return nil
}
