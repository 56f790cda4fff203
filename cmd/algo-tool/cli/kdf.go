package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/rafalsk/botan/algokdf"
)

// KdfCmd derives key material
type KdfCmd struct {
	Algo   string `short:"a" help:"KDF algorithm spec" default:"HKDF(SHA-256)"`
	Secret string `short:"s" required:"" help:"Input secret in hex"`
	Salt   string `help:"Salt in hex"`
	Length int    `short:"n" help:"Output length in bytes" default:"32"`
}

// Run the command
func (a *KdfCmd) Run(cli *Cli) error {
	secret, err := hex.DecodeString(a.Secret)
	if err != nil {
		return errors.WithMessage(err, "unable to parse secret")
	}
	salt, err := hex.DecodeString(a.Salt)
	if err != nil {
		return errors.WithMessage(err, "unable to parse salt")
	}

	k, err := algokdf.New(a.Algo)
	if err != nil {
		return err
	}

	out, err := k.Derive(a.Length, secret, salt)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.Writer(), "%s\n", hex.EncodeToString(out))
	return nil
}
