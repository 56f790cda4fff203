package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/rafalsk/botan/algohash"
)

// DigestCmd hashes files or stdin
type DigestCmd struct {
	Algo     string   `short:"a" help:"Hash algorithm spec" default:"SHA-256"`
	Provider string   `short:"p" help:"Require an exact provider"`
	Files    []string `arg:"" optional:"" help:"Files to hash; stdin when empty"`
}

// Run the command
func (a *DigestCmd) Run(cli *Cli) error {
	h, err := algohash.NewWithProvider(a.Algo, a.Provider)
	if err != nil {
		return err
	}

	if len(a.Files) == 0 {
		sum, err := hashReader(h, cli.Reader())
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.Writer(), "%s  -\n", hex.EncodeToString(sum))
		return nil
	}

	for _, name := range a.Files {
		f, err := os.Open(name)
		if err != nil {
			return errors.WithStack(err)
		}
		sum, err := hashReader(h, f)
		f.Close()
		if err != nil {
			return errors.WithMessagef(err, "unable to hash: %s", name)
		}
		fmt.Fprintf(cli.Writer(), "%s  %s\n", hex.EncodeToString(sum), name)
	}
	return nil
}

func hashReader(h algohash.Hash, r io.Reader) ([]byte, error) {
	d := h.New()
	if _, err := io.Copy(d, r); err != nil {
		return nil, errors.WithStack(err)
	}
	return d.Sum(nil), nil
}
