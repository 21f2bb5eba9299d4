package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/pthm/hxbundle/lib/encoding"
	"github.com/pthm/hxbundle/lib/generator"
	"github.com/pthm/hxbundle/lib/manifest"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "clean":
		if err := runClean(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "hash":
		if err := runHash(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("hxbundle version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hxbundle - component loader bundle generator

Usage:
  hxbundle <command> [arguments]

Commands:
  generate [dir]        Encode component descriptors into bundle files
  clean [dir]           Remove generated bundle files
  hash [file]           Print the bundle id of a file (or stdin)
  version               Print version
  help                  Show this help

Options for generate and clean:
  --dry-run             Show what would be written or removed
  -v                    Verbose output
  --config <file>       Use this manifest instead of searching for hxbundle.toml

The project directory (default .) is searched upwards for hxbundle.toml.
Without one, descriptors are read from components.json and written to build/.

Examples:
  hxbundle generate                       Build the current project
  hxbundle generate --dry-run ./app       Preview a build
  hxbundle clean ./app                    Remove generated files
  hxbundle hash build/ionic.1a2b3c4d.js   Check a bundle's content id`)
}

type commonArgs struct {
	dryRun  bool
	verbose bool
	config  string
	dir     string
}

func parseArgs(args []string) (commonArgs, error) {
	c := commonArgs{dir: "."}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--dry-run":
			c.dryRun = true
		case arg == "-v", arg == "--verbose":
			c.verbose = true
		case arg == "--config":
			if i+1 >= len(args) {
				return c, fmt.Errorf("--config requires a path")
			}
			i++
			c.config = args[i]
		case strings.HasPrefix(arg, "--config="):
			c.config = strings.TrimPrefix(arg, "--config=")
		default:
			c.dir = arg
		}
	}
	return c, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func loadManifest(c commonArgs) (*manifest.Manifest, error) {
	if c.config != "" {
		return manifest.LoadFile(c.config)
	}

	dir := c.dir
	m, err := manifest.FindAndLoad(dir)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return manifest.Default(dir), nil
	}
	return m, nil
}

func newGenerator(c commonArgs) (*generator.Generator, *manifest.Manifest, func(), error) {
	log, err := newLogger(c.verbose)
	if err != nil {
		return nil, nil, nil, err
	}

	m, err := loadManifest(c)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := generator.OptionsFromManifest(m)
	opts.DryRun = c.dryRun
	opts.Logger = log

	return generator.New(opts), m, func() { _ = log.Sync() }, nil
}

func runGenerate(args []string) error {
	c, err := parseArgs(args)
	if err != nil {
		return err
	}

	gen, m, done, err := newGenerator(c)
	if err != nil {
		return err
	}
	defer done()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	idx, err := gen.Generate(ctx, m.DescriptorsPath(), m.OutputDir())
	if err != nil {
		return err
	}

	for _, e := range idx.Bundles {
		fmt.Printf("%s  %s\n", e.File, e.ModulesID)
	}
	return nil
}

func runClean(args []string) error {
	c, err := parseArgs(args)
	if err != nil {
		return err
	}

	gen, m, done, err := newGenerator(c)
	if err != nil {
		return err
	}
	defer done()

	return gen.Clean(m.OutputDir())
}

func runHash(args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}

	id := encoding.BundleID(string(data))
	fmt.Printf("%s  %s\n", id, encoding.BundleFileName(id))
	return nil
}
