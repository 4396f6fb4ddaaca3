// Command hashsig is a small test harness around the hashsig module:
// generate a keypair from a seed, sign a file, and verify a signature,
// all driven from the command line for manual experimentation and
// benchmarking rather than production key management.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/go-hashsig/hashsig"
)

func cmdKeygen(c *cli.Context) error {
	seed, err := decodeSeed(c.String("seed-hex"))
	if err != nil {
		return err
	}
	signer, err := hashsig.NewSigner(seed)
	if err != nil {
		return fmt.Errorf("deriving signer: %w", err)
	}
	encoded, err := signer.PublicKey().MarshalBinary()
	if err != nil {
		return fmt.Errorf("encoding public key: %w", err)
	}
	fmt.Println(hex.EncodeToString(encoded))
	return nil
}

func cmdSign(c *cli.Context) error {
	seed, err := decodeSeed(c.String("seed-hex"))
	if err != nil {
		return err
	}
	msg, err := os.ReadFile(c.String("message"))
	if err != nil {
		return fmt.Errorf("reading message file: %w", err)
	}
	signer, err := hashsig.NewSigner(seed)
	if err != nil {
		return fmt.Errorf("deriving signer: %w", err)
	}

	iterations := c.Int("iterations")
	if iterations < 1 {
		iterations = 1
	}

	var encoded []byte
	for i := 0; i < iterations; i++ {
		sig, err := signer.Sign(msg)
		if err != nil {
			return fmt.Errorf("signing: %w", err)
		}
		encoded, err = sig.MarshalBinary()
		if err != nil {
			return fmt.Errorf("encoding signature: %w", err)
		}
	}
	fmt.Println(hex.EncodeToString(encoded))
	return nil
}

func cmdVerify(c *cli.Context) error {
	pubBytes, err := hex.DecodeString(c.String("pub-hex"))
	if err != nil {
		return fmt.Errorf("decoding --pub-hex: %w", err)
	}
	sigBytes, err := hex.DecodeString(c.String("sig-hex"))
	if err != nil {
		return fmt.Errorf("decoding --sig-hex: %w", err)
	}
	msg, err := os.ReadFile(c.String("message"))
	if err != nil {
		return fmt.Errorf("reading message file: %w", err)
	}

	pub, err := hashsig.UnmarshalBinaryPublicKey(pubBytes)
	if err != nil {
		return fmt.Errorf("decoding --pub-hex: %w", err)
	}
	sig, err := hashsig.UnmarshalBinarySignature(sigBytes)
	if err != nil {
		return fmt.Errorf("decoding --sig-hex: %w", err)
	}

	verifier := hashsig.NewVerifier(pub)
	iterations := c.Int("iterations")
	if iterations < 1 {
		iterations = 1
	}

	var ok bool
	for i := 0; i < iterations; i++ {
		ok = verifier.Verify(msg, sig)
	}
	if !ok {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}

func decodeSeed(seedHex string) ([]byte, error) {
	if seedHex == "" {
		return nil, fmt.Errorf("--seed-hex is required")
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("decoding --seed-hex: %w", err)
	}
	return seed, nil
}

func main() {
	app := cli.NewApp()
	app.Name = "hashsig"
	app.Usage = "generate keys, sign, and verify with the hashsig forest signature scheme"

	messageFlag := cli.StringFlag{Name: "message", Usage: "path to the message file"}
	iterationsFlag := cli.IntFlag{Name: "iterations", Usage: "repeat the operation N times, for benchmarking", Value: 1}

	app.Commands = []cli.Command{
		{
			Name:  "keygen",
			Usage: "derive and print a public key from a seed",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "seed-hex", Usage: "hex-encoded seed, at least 32 bytes"},
			},
			Action: cmdKeygen,
		},
		{
			Name:  "sign",
			Usage: "sign a message file with a seed",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "seed-hex", Usage: "hex-encoded seed, at least 32 bytes"},
				messageFlag,
				iterationsFlag,
			},
			Action: cmdSign,
		},
		{
			Name:  "verify",
			Usage: "verify a signature against a public key and message file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "pub-hex", Usage: "hex-encoded public key"},
				cli.StringFlag{Name: "sig-hex", Usage: "hex-encoded signature"},
				messageFlag,
				iterationsFlag,
			},
			Action: cmdVerify,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
