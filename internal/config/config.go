// Package config loads generation parameters from a YAML file. File values
// sit between built-in defaults and explicitly set CLI flags: a flag the user
// typed always wins, anything else the file may override.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"rnasim/internal/cli"
)

// File mirrors the CLI parameters in YAML. Pointer fields distinguish
// "absent" from zero values.
type File struct {
	Genes       *int     `yaml:"genes"`
	Controls    *int     `yaml:"controls"`
	Treatments  *int     `yaml:"treatments"`
	DEProp      *float64 `yaml:"de_prop"`
	FoldChange  *float64 `yaml:"fold_change"`
	Dispersion  *float64 `yaml:"dispersion"`
	Seed        *int64   `yaml:"seed"`
	Output      *string  `yaml:"output"`
	GeneNames   *string  `yaml:"gene_names"`
	Truth       *string  `yaml:"truth"`
	TruthFormat *string  `yaml:"truth_format"`
	Checksum    *bool    `yaml:"checksum"`
}

// Merge reads path and applies its values to opt, skipping any parameter the
// user set explicitly on the command line. Unknown keys are rejected.
func Merge(opt *cli.Options, path string, explicit map[string]bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) { // empty file sets nothing
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	if f.Genes != nil && !explicit["genes"] {
		opt.Genes = *f.Genes
	}
	if f.Controls != nil && !explicit["controls"] {
		opt.Controls = *f.Controls
	}
	if f.Treatments != nil && !explicit["treatments"] {
		opt.Treatments = *f.Treatments
	}
	if f.DEProp != nil && !explicit["de-prop"] {
		opt.DEProp = *f.DEProp
	}
	if f.FoldChange != nil && !explicit["fold-change"] {
		opt.FoldChange = *f.FoldChange
	}
	if f.Dispersion != nil && !explicit["dispersion"] {
		opt.Dispersion = *f.Dispersion
	}
	if f.Seed != nil && !explicit["seed"] {
		opt.Seed = *f.Seed
	}
	if f.Output != nil && !explicit["output"] {
		opt.Output = *f.Output
	}
	if f.GeneNames != nil && !explicit["gene-names"] {
		opt.GeneNames = *f.GeneNames
	}
	if f.Truth != nil && !explicit["truth"] {
		opt.Truth = *f.Truth
	}
	if f.TruthFormat != nil && !explicit["truth-format"] {
		opt.TruthFormat = *f.TruthFormat
	}
	if f.Checksum != nil && !explicit["checksum"] {
		opt.Checksum = *f.Checksum
	}
	return nil
}
