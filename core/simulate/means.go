package simulate

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// drawBaselines draws one shared baseline mean per gene from
// Uniform(baselineMin, baselineMax) on the given source.
func drawBaselines(src rand.Source, n int) []float64 {
	u := distuv.Uniform{Min: baselineMin, Max: baselineMax, Src: src}
	mu := make([]float64, n)
	for i := range mu {
		mu[i] = u.Rand()
	}
	return mu
}

// applyFoldChange copies the control means and shifts the treatment mean of
// every DE gene: upregulated genes multiply by fc, downregulated divide.
// Non-DE genes keep identical means in both groups.
func applyFoldChange(muControl []float64, up, down []int, fc float64) []float64 {
	muTreatment := append([]float64(nil), muControl...)
	for _, g := range up {
		muTreatment[g] *= fc
	}
	for _, g := range down {
		muTreatment[g] /= fc
	}
	return muTreatment
}
