package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"example.com/ste/internal/app"
	"example.com/ste/pkg/config"
	"example.com/ste/pkg/logs"
	"golang.org/x/term"
)

const version = "0.1.0"

// options holds the parsed command line.
type options struct {
	path       string
	configPath string
	logPath    string
	version    bool
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("ste", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to the YAML config file")
	fs.StringVar(&opts.logPath, "log", "", "append a JSON event log to this file")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ste [-config path] [-log path] [file]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return opts, errors.New("at most one file may be given")
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

// setup builds a Runner with its config, logger and file loaded. A file
// that exists but cannot be read is an error; a missing one starts empty.
func setup(opts options) (*app.Runner, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	logger := logs.NewFromEnv()
	if opts.logPath != "" {
		l, err := logs.Open(opts.logPath)
		if err != nil {
			return nil, fmt.Errorf("log: %w", err)
		}
		logger.Close()
		logger = l
	}

	r := app.NewWithConfig(cfg)
	r.Logger = logger
	if res := r.LoadFile(opts.path); res.Status == app.LoadFailed {
		logger.Close()
		return nil, res.Err
	}
	return r, nil
}

func run(args []string, stdout, stderr io.Writer, isTerminal func() bool) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, "ste", version)
		return 0
	}
	r, err := setup(opts)
	if err != nil {
		fmt.Fprintf(stderr, "ste: %v\n", err)
		return 1
	}
	defer r.Logger.Close()

	if !isTerminal() {
		fmt.Fprintln(stderr, "ste: standard input and output must be a terminal")
		return 1
	}
	if err := r.Run(); err != nil {
		fmt.Fprintf(stderr, "ste: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	isTerminal := func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, isTerminal))
}
