package cli

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/mjml/cli/cmd"
	"github.com/ardnew/mjml/parser"
	"github.com/ardnew/mjml/pkg"
)

// CLI is the top-level command-line interface of mjml.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config  kong.ConfigFlag  `help:"Load flag defaults from this YAML file." placeholder:"FILE"`
	Version kong.VersionFlag `help:"Print version and exit."                 short:"V"`

	Check  cmd.Check  `cmd:"" default:"withargs" help:"Parse documents and report errors and warnings."`
	Tokens cmd.Tokens `cmd:""                    help:"Print the token stream of a document."`
}

// Run executes the mjml CLI with args. The exit function is called when kong
// terminates early, for example after printing help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	if err := ensureDirs(); err != nil {
		return err
	}

	vars := kong.Vars{
		"version":              pkg.Name + " " + pkg.Version,
		cmd.JobsIdentifier:     strconv.Itoa(runtime.GOMAXPROCS(0)),
		cmd.MaxDepthIdentifier: strconv.Itoa(parser.DefaultMaxIncludeDepth),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Apply --log-* flags before kong reports anything.
	cli.Log.scan(args)

	k, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, pkg.ConfigPath()),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := k.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}

// ensureDirs creates the configuration and cache directories.
func ensureDirs() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, pkg.DirMode); err != nil {
			return err
		}
	}

	return nil
}
