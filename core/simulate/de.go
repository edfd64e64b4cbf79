package simulate

import "golang.org/x/exp/rand"

// selectDE picks floor(n*prop) distinct gene indices uniformly without
// replacement and splits them into an upregulated half (first deCount/2, in
// selection order) and a downregulated remainder. With an odd deCount the
// downregulated half carries the extra index; the tie-break is arbitrary but
// fixed. deCount==0 yields two empty slices, not an error.
func selectDE(rng *rand.Rand, n int, prop float64) (up, down []int) {
	deCount := int(float64(n) * prop)
	if deCount == 0 {
		return nil, nil
	}
	idx := rng.Perm(n)[:deCount]
	half := deCount / 2
	return idx[:half], idx[half:]
}
