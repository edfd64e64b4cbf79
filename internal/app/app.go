// internal/app/app.go
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"

	"rnasim-core/genelist"
	"rnasim-core/simulate"
	"rnasim/internal/checksum"
	"rnasim/internal/cli"
	"rnasim/internal/config"
	"rnasim/internal/version"
	"rnasim/internal/writers"
)

// Run executes one generation. Exit codes: 0 success, 2 usage or
// configuration error, 3 I/O error. All parameter validation happens before
// the output path is touched, so a failed run never leaves a partial table.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("rnasim")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "rnasim version %s\n", version.Version)
		return 0
	}

	if opts.ParamsFile != "" {
		explicit := cli.ExplicitFlags(fs)
		if err := config.Merge(&opts, opts.ParamsFile, explicit); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		// The file may carry values the flag layer never saw.
		if !cli.ValidTruthFormat(opts.TruthFormat) {
			fmt.Fprintf(stderr, "invalid truth_format %q (want tsv or json)\n", opts.TruthFormat)
			return 2
		}
	}

	params := simulate.Params{
		GeneCount:      opts.Genes,
		ControlCount:   opts.Controls,
		TreatmentCount: opts.Treatments,
		DEProportion:   opts.DEProp,
		FoldChange:     opts.FoldChange,
		Dispersion:     opts.Dispersion,
		Seed:           opts.Seed,
	}
	if opts.GeneNames != "" {
		names, err := genelist.Load(opts.GeneNames)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		params.GeneNames = names
	}
	if err := params.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	res, err := simulate.Run(params)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Output == "-" {
		if err := writers.WriteCounts(stdout, res); err != nil && !isBrokenPipe(err) {
			fmt.Fprintln(stderr, err)
			return 3
		}
	} else if err := writeCountsFile(opts.Output, res); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.Truth != "" {
		if err := writeTruthFile(opts.Truth, opts.TruthFormat, res); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if opts.Checksum && opts.Output != "-" {
		if _, err := checksum.Write(opts.Output); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	// The confirmation would corrupt the table when it streams to stdout.
	if !opts.Quiet && opts.Output != "-" {
		fmt.Fprintf(stdout, "Simulation complete. File saved to: %s\n", opts.Output)
	}
	return 0
}

func writeCountsFile(path string, res *simulate.Result) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writers.WriteCounts(fh, res); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}

func writeTruthFile(path, format string, res *simulate.Result) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writers.WriteTruth(fh, format, res); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}

// isBrokenPipe reports whether a downstream consumer (like `head`) closed
// stdout early; that is not a failure for a streaming run.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
