package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/rafalsk/botan/algomac"
)

// MacCmd authenticates a file or stdin with a MAC
type MacCmd struct {
	Algo string `short:"a" help:"MAC algorithm spec" default:"HMAC(SHA-256)"`
	Key  string `short:"k" required:"" help:"Key in hex"`
	File string `arg:"" optional:"" help:"File to authenticate; stdin when empty or \"-\""`
}

// Run the command
func (a *MacCmd) Run(cli *Cli) error {
	key, err := hex.DecodeString(a.Key)
	if err != nil {
		return errors.WithMessage(err, "unable to parse key")
	}

	m, err := algomac.New(a.Algo)
	if err != nil {
		return err
	}
	st, err := m.New(key)
	if err != nil {
		return err
	}

	var data []byte
	if a.File == "" || a.File == "-" {
		data, err = io.ReadAll(cli.Reader())
		if err != nil {
			return errors.WithStack(err)
		}
	} else {
		data, err = cli.ReadFile(a.File)
		if err != nil {
			return err
		}
	}

	_, _ = st.Write(data)
	fmt.Fprintf(cli.Writer(), "%s\n", hex.EncodeToString(st.Sum(nil)))
	return nil
}
