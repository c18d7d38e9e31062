package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/funvibe/poly/internal/config"
	"github.com/funvibe/poly/internal/evaluator"
	"github.com/funvibe/poly/internal/modules"
	"github.com/funvibe/poly/internal/parser"
	"github.com/funvibe/poly/internal/server"
)

// CLI is the top-level command-line interface for poly.
type CLI struct {
	Config  string      `help:"Path to a poly.yaml config file." type:"path"`
	Version kong.VersionFlag `help:"Print version and exit."`

	Run   RunCmd   `cmd:"" default:"withargs" help:"Evaluate a source file (or stdin)."`
	Repl  ReplCmd  `cmd:"" help:"Start an interactive session."`
	Serve ServeCmd `cmd:"" help:"Serve the HTTP eval API."`
}

// Run executes the poly CLI. The exit function is called with the exit code
// on --help and usage errors.
func Run(exit func(code int), args ...string) error {
	var cli CLI

	k, err := kong.New(&cli,
		kong.Name("poly"),
		kong.Description("An interpreter for the poly expression language."),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Vars{"version": config.Version},
	)
	if err != nil {
		return err
	}

	ktx, err := k.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	return ktx.Run(cfg)
}

// RunCmd evaluates a file, or stdin when no path is given and stdin is not a
// terminal. With a terminal and no path it drops into the REPL.
type RunCmd struct {
	Path string `arg:"" optional:"" help:"Source file to evaluate." type:"path"`
}

func (c *RunCmd) Run(cfg *config.Config) error {
	if c.Path == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl := NewRepl(cfg, os.Stdin, os.Stdout)
			return repl.Run()
		}
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return evalSource(cfg, string(src))
	}

	src, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	return evalSource(cfg, string(src))
}

func evalSource(cfg *config.Config, src string) error {
	node := evaluator.NewNode(cfg.Name)
	loadPrelude(node, cfg, os.Stderr)

	e, err := parser.ReadExpr(src)
	if err != nil {
		return err
	}
	val, err := node.EvalRoot(e)
	if err != nil {
		return err
	}
	fmt.Println(val)
	return nil
}

// ReplCmd starts the interactive session unconditionally.
type ReplCmd struct{}

func (c *ReplCmd) Run(cfg *config.Config) error {
	if cfg.Name == "main" {
		cfg.Name = "repl"
	}
	repl := NewRepl(cfg, os.Stdin, os.Stdout)
	return repl.Run()
}

// ServeCmd runs the HTTP eval API.
type ServeCmd struct {
	Addr string `help:"Listen address." placeholder:"HOST:PORT"`
}

func (c *ServeCmd) Run(cfg *config.Config) error {
	addr := cfg.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	node := evaluator.NewNode(cfg.Name)
	loadPrelude(node, cfg, os.Stderr)

	return server.New(node, log).ListenAndServe(addr)
}

// loadPrelude loads the configured prelude with an empty prefix. A missing
// prelude is only a warning: a bare node is still usable.
func loadPrelude(node *evaluator.Node, cfg *config.Config, warn io.Writer) {
	if cfg.Prelude == "" {
		return
	}
	if err := modules.LoadPrefixed(node, cfg.Prelude, ""); err != nil {
		fmt.Fprintf(warn, "Warning: %s\n", err)
	}
}
