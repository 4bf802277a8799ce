package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/analyze"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/render"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/repl"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/score"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/stat"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/storage"
	"github.com/TheOneHyer/InteractiveTextAnalyzer-sub001/tagger"

	"github.com/gosuri/uiprogress"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := runCommand(cmd, args, ui); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "deptree: %v\n", err)
}

func runCommand(cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("deptree", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "parse":
		opts, source, err := parseParseArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return parseCommand(opts, source, ui)

	case "repl":
		opts, err := parseReplArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return replCommand(opts, ui)

	case "tree":
		opts, id, err := parseTreeArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return treeCommand(opts, id, ui)

	case "serve":
		opts, err := parseServeArgs(args, ui)
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
		return serveCommand(opts, ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}

// Parse command
func parseCommand(opts ParseOptions, source string, ui UI) error {

	samples, err := readSamples(source)
	if err != nil {
		return err
	}

	hdl := analyze.NewHandler(tagger.NewLexicon(), score.NewScorer(score.DefaultTable()))

	cfg := analyze.Config{
		Algorithm:  opts.Algorithm,
		MaxSamples: opts.MaxSamples,
	}

	// Start progress indicator
	if !opts.NoProgress {
		uiprogress.Start()            // start rendering
		bar := uiprogress.AddBar(100) // Add a new bar
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.Set(1)
		cfg.OnProgress = func(percent int) {
			_ = bar.Set(percent)
		}
	}

	res, err := hdl.Run(context.Background(), samples, cfg)

	if !opts.NoProgress {
		// stop rendering
		uiprogress.Stop()
	}

	if err != nil {
		return err
	}

	if opts.TreePath != "" {
		if err := saveResult(opts, res, ui); err != nil {
			return err
		}
	}

	r := render.NewJSONRenderer(ui.Out)
	r.Indent = "  "
	if opts.All {
		if err := r.RenderAll(res.Parsed); err != nil {
			return err
		}
	} else {
		if err := r.Render(res.Representative); err != nil {
			return err
		}
	}

	sh := stat.NewHandler()
	sh.Aggregate(res)
	stats := sh.Get()
	fmt.Fprintf(ui.Err, "✍  %d samples, %d parsed, %d tokens, %d arcs, mean weight %.4f\n",
		res.TotalProcessed, stats.NumSentences, stats.NumTokens, stats.NumArcs, stats.ArcWeightMean)

	return nil
}

func saveResult(opts ParseOptions, res analyze.Result, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewTreeRepository(p, opts.TreePath)
	if err != nil {
		return err
	}

	for i, parsed := range res.Parsed {
		id, err := repo.Write(storage.Record{
			Sentence:  res.Sentences[i],
			Algorithm: string(res.Algorithm),
			Result:    parsed,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(ui.Err, "🌳 saved %d\n", id)
	}

	return nil
}

func readSamples(source string) ([]string, error) {
	var in io.Reader = os.Stdin
	if source != "" {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var samples []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		samples = append(samples, line)
	}

	return samples, scanner.Err()
}

func replCommand(opts ReplOptions, ui UI) error {
	h := repl.NewHandler(tagger.NewLexicon(), score.NewScorer(score.DefaultTable()), opts.Algorithm)
	return h.Run()
}

func treeCommand(opts TreeOptions, id *int, ui UI) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewTreeRepository(p, opts.TreePath)
	if err != nil {
		return err
	}

	// No id provided (list all)
	if id == nil {
		recs, err := repo.List()
		if err != nil {
			return err
		}

		for _, rec := range recs {
			fmt.Fprintf(ui.Out, "🌳 %d %-14s %s \n", rec.Id, rec.Algorithm, rec.Sentence)
		}

		return nil
	}

	rec, err := repo.Read(*id)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "🌳 %d %s (%s)\n", rec.Id, rec.Sentence, rec.Algorithm)
	r := render.NewJSONRenderer(ui.Out)
	r.Indent = "  "
	return r.Render(rec.Result)
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Dependency parsing over POS tagged sentences\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  parse     Parse a batch of sentences from a file or stdin.\n")
		_, _ = fmt.Fprintf(output, "  repl      Enter interactive parse mode.\n")
		_, _ = fmt.Fprintf(output, "  tree      List stored parses or show one by id.\n")
		_, _ = fmt.Fprintf(output, "  serve     Start the HTTP parsing API.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
