package cli

import (
	"fmt"
	"sort"

	"github.com/rafalsk/botan/algocipher"
	"github.com/rafalsk/botan/algohash"
	"github.com/rafalsk/botan/algokdf"
	"github.com/rafalsk/botan/algomac"
)

// ListCmd prints registered algorithms per family
type ListCmd struct {
	Family string `help:"Limit output to one family (hash|mac|kdf|cipher)"`
}

// Run the command
func (a *ListCmd) Run(cli *Cli) error {
	printFamily := func(family string, names []string, providers func(string) []string) {
		if a.Family != "" && a.Family != family {
			return
		}
		for _, name := range names {
			provs := providers(name)
			sort.Strings(provs)
			fmt.Fprintf(cli.Writer(), "%s: %s %v\n", family, name, provs)
		}
	}

	hashes := algohash.Registry()
	printFamily("hash", hashes.BaseNames(), hashes.Providers)

	macs := algomac.Registry()
	printFamily("mac", macs.BaseNames(), macs.Providers)

	kdfs := algokdf.Registry()
	printFamily("kdf", kdfs.BaseNames(), kdfs.Providers)

	ciphers := algocipher.Registry()
	printFamily("cipher", ciphers.BaseNames(), ciphers.Providers)

	return nil
}
