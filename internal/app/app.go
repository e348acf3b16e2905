// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"genomesim-core/transition"
	"genomesim/internal/cli"
	"genomesim/internal/cmdutil"
	"genomesim/internal/output"
	"genomesim/internal/pipeline"
	"genomesim/internal/version"
	"genomesim/internal/writers"
)

func usage(fs *flag.FlagSet, outw *bufio.Writer, stderr io.Writer) int {
	fs.SetOutput(outw)
	fs.Usage()
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// RunContext parses argv, generates references, and writes them to stdout.
// Exit codes: 0 ok, 2 usage/input error, 3 write error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("genomesim")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(fs, outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(fs, outw, stderr); code != 0 {
			return code
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "genomesim version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	model, err := loadModel(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		cmdutil.Warnf(stderr, opts.Quiet, "no --seed given; using %d", seed)
	}

	refs, err := pipeline.Generate(parent, pipeline.Config{
		Simulator: opts.Simulator,
		Lengths:   opts.Lengths,
		Count:     opts.Count,
		Seed:      seed,
		Name:      opts.Name,
		Threads:   opts.Threads,
	}, model)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	werr := writers.Write(opts.Output, outw, refs, writers.Options{
		LineWidth: opts.LineWidth,
		Header:    opts.Header,
	})
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if opts.Stats && opts.Output != "tsv" {
		_, _ = fmt.Fprintln(stderr, output.TSVHeader)
		for _, r := range refs {
			_, _ = fmt.Fprintln(stderr, output.FormatRowTSV(r))
		}
	}
	return 0
}

// loadModel resolves the transition model from --transitions or a preset.
func loadModel(opts cli.Options) (*transition.Model, error) {
	if opts.ModelFile != "" {
		return transition.LoadTSV(opts.ModelFile)
	}
	switch opts.Preset {
	case cli.PresetUniform:
		return transition.Uniform, nil
	default:
		return transition.HighGCHomopolymeric, nil
	}
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
