package simulate

import (
	"golang.org/x/exp/rand"

	"rnasim-core/genelist"
)

// Result is one complete simulation: identifiers, ground truth, and counts.
type Result struct {
	Genes   []string // row identifiers, in output order
	Samples []string // column identifiers, control block first

	// MuControl and MuTreatment are the per-gene generating means. They
	// differ exactly at the DE gene indices.
	MuControl   []float64
	MuTreatment []float64

	// Up and Down hold the DE gene indices in selection order.
	Up   []int
	Down []int

	// Counts[g][s] is the simulated read count for gene g in column s.
	Counts [][]int64
}

// Run validates p and generates a count matrix. One random stream is seeded
// from p.Seed and consumed in a fixed order: DE index selection, then the
// baseline means, then the counts gene-major with the control block before
// the treatment block. That order is part of the contract; reordering draws
// changes every cell downstream even with the same generator.
func Run(p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	genes := p.GeneNames
	if genes == nil {
		genes = genelist.Synthetic(p.GeneCount)
	} else {
		genes = genes[:p.GeneCount]
	}

	src := rand.NewSource(uint64(p.Seed))
	rng := rand.New(src)

	up, down := selectDE(rng, p.GeneCount, p.DEProportion)
	muControl := drawBaselines(src, p.GeneCount)
	muTreatment := applyFoldChange(muControl, up, down, p.FoldChange)

	nb := newNegBinomial(p.Dispersion, src)
	counts := make([][]int64, p.GeneCount)
	for g := 0; g < p.GeneCount; g++ {
		row := make([]int64, p.ControlCount+p.TreatmentCount)
		for s := 0; s < p.ControlCount; s++ {
			row[s] = nb.Rand(muControl[g])
		}
		for s := 0; s < p.TreatmentCount; s++ {
			row[p.ControlCount+s] = nb.Rand(muTreatment[g])
		}
		counts[g] = row
	}

	return &Result{
		Genes:       genes,
		Samples:     SampleNames(p.ControlCount, p.TreatmentCount),
		MuControl:   muControl,
		MuTreatment: muTreatment,
		Up:          up,
		Down:        down,
		Counts:      counts,
	}, nil
}
