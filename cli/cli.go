package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scadgen/cli/cmd"
	"github.com/ardnew/scadgen/pkg"
)

// CLI is the top-level command-line interface for scadgen.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Path    []string         `help:"Directories searched for manifest imports (also ${envPath})" placeholder:"DIR" short:"I"`
	Version kong.VersionFlag `help:"Print version and exit"                                       short:"V"`

	Render  cmd.Render  `cmd:"" default:"withargs" help:"Render a manifest to OpenSCAD"`
	Tree    cmd.Tree    `cmd:""                    help:"Print the entity tree of a manifest"`
	Catalog cmd.Catalog `cmd:""                    help:"List built-in OpenSCAD kinds"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the scadgen CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	return run(ctx, os.Stdout, os.Stderr, configPath(baseConfig), exit, args...)
}

func run(
	ctx context.Context,
	stdout, stderr io.Writer,
	configFilePath string,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version":            pkg.Version,
		"envPath":            pkg.EnvPath,
		cmd.ConfigIdentifier: configFilePath,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those flags
	// during normal parsing, but this early scan also catches boolean flags
	// like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
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
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSearchPath(ctx, searchPath(cli.Path))

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx)
}

// searchPath returns the --path directories followed by those listed in the
// environment.
func searchPath(flags []string) []string {
	return append(flags, filepath.SplitList(os.Getenv(pkg.EnvPath))...)
}
