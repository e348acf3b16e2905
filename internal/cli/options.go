// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"genomesim/internal/cliutil"
	"genomesim/internal/version"
)

// Simulator variants selectable on the command line.
const (
	SimMarkov  = "markov"
	SimPoisson = "poisson"
)

// Built-in transition table presets.
const (
	PresetHighGC  = "high-gc"
	PresetUniform = "uniform"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Reference shape
	Lengths []float64 // one record per value; fractional values truncate
	Count   int       // replicates per length

	// Model
	Simulator string
	Preset    string // empty = PresetHighGC unless ModelFile given
	ModelFile string // TSV transition table

	// Randomness
	Seed uint64 // 0 = time-derived

	// Output
	Output    string // fasta | tsv | json
	Name      string // record ID prefix
	LineWidth int
	Header    bool // true unless --no-header
	Stats     bool // per-record summary on stderr

	// Performance
	Threads int

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: synthetic reference genome generator

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), "\nPositional arguments are treated as additional --length values.")
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var lengths floatSlice
	fs.Var(&lengths, "length", "reference length in bases (repeatable; fractions truncate) [*]")
	fs.IntVar(&opt.Count, "count", 1, "records generated per --length [1]")

	fs.StringVar(&opt.Simulator, "simulator", SimMarkov, "generator variant: markov | poisson ["+SimMarkov+"]")
	fs.StringVar(&opt.Preset, "preset", "", "built-in transition table: high-gc | uniform [high-gc]")
	fs.StringVar(&opt.ModelFile, "transitions", "", "TSV transition table (context pA pC pG pT)")

	fs.Uint64Var(&opt.Seed, "seed", 0, "random seed; record i uses seed+i (0 = time-derived) [0]")

	fs.StringVar(&opt.Output, "output", "fasta", "output format: fasta | tsv | json | jsonl [fasta]")
	fs.StringVar(&opt.Name, "name", "ref", "record ID prefix [ref]")
	fs.IntVar(&opt.LineWidth, "line-width", 70, "FASTA sequence line width [70]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in tsv [false]")
	fs.BoolVar(&opt.Stats, "stats", false, "print per-record composition summary to stderr [false]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	for _, a := range posArgs {
		if err := lengths.Set(a); err != nil {
			return opt, err
		}
	}
	opt.Lengths = lengths
	opt.Header = !noHeader

	// Validation
	if len(opt.Lengths) == 0 {
		return opt, errors.New("at least one --length is required")
	}
	if opt.Count < 1 {
		return opt, errors.New("--count must be ≥ 1")
	}
	if opt.Simulator != SimMarkov && opt.Simulator != SimPoisson {
		return opt, fmt.Errorf("invalid --simulator %q", opt.Simulator)
	}
	switch {
	case opt.ModelFile != "" && opt.Preset != "":
		return opt, errors.New("--transitions conflicts with --preset")
	case opt.ModelFile == "" && opt.Preset == "":
		opt.Preset = PresetHighGC
	case opt.Preset != "" && opt.Preset != PresetHighGC && opt.Preset != PresetUniform:
		return opt, fmt.Errorf("invalid --preset %q", opt.Preset)
	}
	switch opt.Output {
	case "fasta", "tsv", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.LineWidth < 0 {
		return opt, errors.New("--line-width must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}

// floatSlice allows repeatable float flags.
type floatSlice []float64

func (s *floatSlice) String() string {
	parts := make([]string, len(*s))
	for i, v := range *s {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (s *floatSlice) Set(v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("bad length %q: %v", v, err)
	}
	*s = append(*s, f)
	return nil
}
