// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"rnasim/internal/version"
)

// Truth output formats.
const (
	TruthTSV  = "tsv"
	TruthJSON = "json"
)

// Options holds all CLI flags.
type Options struct {
	// Generation parameters
	Genes      int
	Controls   int
	Treatments int
	DEProp     float64
	FoldChange float64
	Dispersion float64
	Seed       int64

	// Input
	GeneNames  string // optional name file, one gene per line
	ParamsFile string // optional YAML parameter file

	// Output
	Output      string
	Truth       string // optional ground-truth table path
	TruthFormat string
	Checksum    bool // write <output>.sha256

	Quiet   bool
	Version bool
}

// Defaults returns the built-in parameter defaults. The YAML parameter file
// and explicit flags are layered on top of these.
func Defaults() Options {
	return Options{
		Genes:       18000,
		Controls:    5,
		Treatments:  5,
		DEProp:      0.1,
		FoldChange:  4.0,
		Dispersion:  0.3,
		Seed:        42,
		Output:      "simulated_counts.tsv",
		TruthFormat: TruthTSV,
	}
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: simulate RNA-seq count matrices with known differential expression

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Cross-parameter validation happens later, after the optional parameter
// file is merged in; only flag-domain checks live here.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Defaults()
	var help bool

	// Generation parameters
	fs.IntVar(&opt.Genes, "genes", opt.Genes, "total number of genes [18000]")
	fs.IntVar(&opt.Controls, "controls", opt.Controls, "number of control samples [5]")
	fs.IntVar(&opt.Treatments, "treatments", opt.Treatments, "number of treated samples [5]")
	fs.Float64Var(&opt.DEProp, "de-prop", opt.DEProp, "proportion of differentially expressed genes [0.1]")
	fs.Float64Var(&opt.FoldChange, "fold-change", opt.FoldChange, "fold change applied to DE genes [4.0]")
	fs.Float64Var(&opt.Dispersion, "dispersion", opt.Dispersion, "negative-binomial dispersion [0.3]")
	fs.Int64Var(&opt.Seed, "seed", opt.Seed, "random seed for reproducibility [42]")

	// Input
	fs.StringVar(&opt.GeneNames, "gene-names", "", "file with real gene names, one per line ('-' = stdin)")
	fs.StringVar(&opt.ParamsFile, "params", "", "YAML parameter file (explicit flags take precedence)")

	// Output
	fs.StringVar(&opt.Output, "output", opt.Output, "output TSV path ('-' = stdout) [simulated_counts.tsv]")
	fs.StringVar(&opt.Truth, "truth", "", "write the DE ground-truth table to this path")
	fs.StringVar(&opt.TruthFormat, "truth-format", opt.TruthFormat, "truth table format: tsv | json [tsv]")
	fs.BoolVar(&opt.Checksum, "checksum", false, "write a SHA-256 sidecar next to the output [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the completion message [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if !ValidTruthFormat(opt.TruthFormat) {
		return opt, fmt.Errorf("invalid --truth-format %q (want tsv or json)", opt.TruthFormat)
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected positional arguments: %v", fs.Args())
	}
	return opt, nil
}

// ValidTruthFormat reports whether s names a supported truth-table format.
func ValidTruthFormat(s string) bool { return s == TruthTSV || s == TruthJSON }

// ExplicitFlags returns the set of flag names the user supplied, for
// precedence decisions when merging a parameter file.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
