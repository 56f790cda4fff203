package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/effective-security/x/ctl"

	"github.com/rafalsk/botan/cmd/algo-tool/cli"
	"github.com/rafalsk/botan/internal/version"
)

type app struct {
	cli.Cli

	List   cli.ListCmd   `cmd:"" help:"List registered algorithms and providers"`
	Digest cli.DigestCmd `cmd:"" help:"Hash files or stdin"`
	Mac    cli.MacCmd    `cmd:"" help:"Authenticate stdin with a MAC"`
	Kdf    cli.KdfCmd    `cmd:"" help:"Derive key material"`
}

func main() {
	realMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

func realMain(args []string, out io.Writer, errout io.Writer, exit func(int)) {
	cl := app{
		Cli: cli.Cli{},
	}
	cl.Cli.WithErrWriter(errout).
		WithWriter(out)

	parser, err := kong.New(&cl,
		kong.Name("algo-tool"),
		kong.Description("CLI tool for the algorithm registry"),
		kong.Writers(out, errout),
		kong.Exit(exit),
		ctl.BoolPtrMapper,
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version.Current().String(),
		})
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args[1:])
	parser.FatalIfErrorf(err)

	if ctx != nil {
		if cl.Debug {
			_, _ = fmt.Fprintf(ctx.Stdout, "#\n# %s\n#\n", strings.Join(args, " "))
		}
		err = ctx.Run(&cl.Cli)
		ctx.FatalIfErrorf(err)
	}
}
