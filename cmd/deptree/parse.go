package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/parse"
)

// Option structs for subcommands that have flags
type ParseOptions struct {
	Algorithm  parse.Algorithm
	MaxSamples int
	All        bool
	NoProgress bool
	TreePath   string
}

type ReplOptions struct {
	Algorithm parse.Algorithm
}

type TreeOptions struct {
	TreePath string
}

type ServeOptions struct {
	Addr      string
	Algorithm parse.Algorithm
}

// algorithmFlag implements flag.Value for the restricted algorithm names
type algorithmFlag struct {
	value *parse.Algorithm
}

func (a *algorithmFlag) String() string {
	if a.value == nil {
		return ""
	}
	return string(*a.value)
}

func (a *algorithmFlag) Set(value string) error {
	for _, alg := range parse.Algorithms() {
		if string(alg) == value {
			*a.value = alg
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(algorithmNames(), ", "))
}

func algorithmNames() []string {
	names := make([]string, 0, len(parse.Algorithms()))
	for _, alg := range parse.Algorithms() {
		names = append(names, string(alg))
	}
	return names
}

// optionalInt implements flag.Value for optional integer flags
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("deptree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseParseArgs(args []string, ui UI) (ParseOptions, string, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := ParseOptions{Algorithm: parse.Eisner}
	algFlag := &algorithmFlag{value: &opts.Algorithm}
	fs.Var(algFlag, "algorithm", "Parsing algorithm (eisner, arborescence, arc-standard)")
	fs.Var(algFlag, "a", "alias for -algorithm")

	fs.IntVar(&opts.MaxSamples, "max", 0, "Maximum number of samples to parse (0 for all)")
	fs.IntVar(&opts.MaxSamples, "n", 0, "alias for -max")

	fs.BoolVar(&opts.All, "all", false, "Output every parsed sentence, not only the first")

	fs.BoolVar(&opts.NoProgress, "no-progress", false, "Do not show the progress bar")
	fs.BoolVar(&opts.NoProgress, "q", false, "alias for -no-progress")

	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("DEPTREE_TREE_PATH"), "Directory or SQLite file to store parses in")
	fs.StringVar(&opts.TreePath, "t", os.Getenv("DEPTREE_TREE_PATH"), "alias for -tree-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s parse [options] [file]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse sentences, one sample per line, from a file or stdin.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("parse command accepts at most one argument")
	}

	source := fs.Arg(0)
	if source != "" {
		if info, err := os.Stat(source); err != nil || info.IsDir() {
			return opts, "", fmt.Errorf("file not found: %s", source)
		}
	}

	return opts, source, nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := ReplOptions{Algorithm: parse.Eisner}
	algFlag := &algorithmFlag{value: &opts.Algorithm}
	fs.Var(algFlag, "algorithm", "Initial parsing algorithm (eisner, arborescence, arc-standard)")
	fs.Var(algFlag, "a", "alias for -algorithm")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s repl [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive parse mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}

func parseTreeArgs(args []string, ui UI) (TreeOptions, *int, error) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts TreeOptions
	fs.StringVar(&opts.TreePath, "tree-path", os.Getenv("DEPTREE_TREE_PATH"), "Directory or SQLite file holding stored parses")
	fs.StringVar(&opts.TreePath, "t", os.Getenv("DEPTREE_TREE_PATH"), "alias for -tree-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s tree [options] [id]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List stored parses or show one by id.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, nil, err
	}

	if opts.TreePath == "" {
		return opts, nil, errors.New("Tree path must be specified via -t or DEPTREE_TREE_PATH")
	}

	if _, err := os.Stat(opts.TreePath); err != nil {
		return opts, nil, fmt.Errorf("Tree path not found: %s", opts.TreePath)
	}

	var id *int
	if fs.NArg() > 0 {
		v, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return opts, nil, fmt.Errorf("invalid id: %v", err)
		}
		id = &v
	}

	return opts, id, nil
}

func parseServeArgs(args []string, ui UI) (ServeOptions, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := ServeOptions{Algorithm: parse.Eisner}
	fs.StringVar(&opts.Addr, "addr", ":8080", "listen address")

	algFlag := &algorithmFlag{value: &opts.Algorithm}
	fs.Var(algFlag, "algorithm", "Default parsing algorithm (eisner, arborescence, arc-standard)")
	fs.Var(algFlag, "a", "alias for -algorithm")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s serve [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Start the HTTP parsing API.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	return opts, nil
}
