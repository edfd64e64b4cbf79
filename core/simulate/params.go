// Package simulate generates synthetic RNA-seq count matrices with a known
// differential-expression ground truth. Counts follow a negative-binomial
// model parameterized per gene and group; all randomness flows through a
// single seeded stream so a run is reproducible bit-for-bit.
package simulate

import "fmt"

// Baseline expression means are drawn uniformly from this range, which covers
// realistic bulk RNA-seq per-gene read depths.
const (
	baselineMin = 50.0
	baselineMax = 2000.0
)

// Params holds one invocation's generation parameters. Construct once,
// validate, then pass to Run; nothing mutates it afterwards.
type Params struct {
	GeneCount      int
	ControlCount   int
	TreatmentCount int

	// DEProportion is the fraction of genes flagged differentially
	// expressed; FoldChange is the multiplicative shift applied to them.
	DEProportion float64
	FoldChange   float64

	// Dispersion is the inverse of the negative-binomial size parameter.
	// Variance of a count with mean mu is mu + Dispersion*mu^2.
	Dispersion float64

	Seed int64

	// GeneNames, when non-nil, supplies row identifiers; it must hold at
	// least GeneCount entries and is truncated to GeneCount in order.
	// Nil selects synthetic gene_1..gene_n names.
	GeneNames []string
}

// ValidationError reports an invalid generation parameter. It names the
// offending parameter so callers can emit a correctable diagnostic.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid parameter " + e.Param + ": " + e.Reason
}

// Validate checks all parameters before any randomized work. Dispersion and
// fold-change positivity are enforced here once, up front, so the sampler
// never sees a degenerate mean or a division by zero mid-matrix.
func (p Params) Validate() error {
	if p.GeneCount <= 0 {
		return &ValidationError{"genes", fmt.Sprintf("must be > 0, got %d", p.GeneCount)}
	}
	if p.ControlCount <= 0 {
		return &ValidationError{"controls", fmt.Sprintf("must be > 0, got %d", p.ControlCount)}
	}
	if p.TreatmentCount <= 0 {
		return &ValidationError{"treatments", fmt.Sprintf("must be > 0, got %d", p.TreatmentCount)}
	}
	if p.DEProportion < 0 || p.DEProportion > 1 {
		return &ValidationError{"de-prop", fmt.Sprintf("must be in [0,1], got %g", p.DEProportion)}
	}
	if p.FoldChange <= 0 {
		return &ValidationError{"fold-change", fmt.Sprintf("must be > 0, got %g", p.FoldChange)}
	}
	if p.Dispersion <= 0 {
		return &ValidationError{"dispersion", fmt.Sprintf("must be > 0, got %g", p.Dispersion)}
	}
	if p.GeneNames != nil && len(p.GeneNames) < p.GeneCount {
		return &ValidationError{"gene-names", fmt.Sprintf(
			"list contains only %d names, fewer than genes=%d", len(p.GeneNames), p.GeneCount)}
	}
	return nil
}
