// Package genelist provides gene identifier sources for the simulator:
// synthetic names, fixed lists, and line-oriented name files.
package genelist

import "fmt"

// Provider returns an ordered sequence of gene identifiers.
// Injecting one keeps the generation core testable without file I/O.
type Provider func() ([]string, error)

// Synthetic returns n placeholder identifiers gene_1..gene_n.
func Synthetic(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("gene_%d", i+1)
	}
	return names
}

// Fixed wraps a static name list as a Provider.
func Fixed(names []string) Provider {
	return func() ([]string, error) { return names, nil }
}

// FromFile returns a Provider backed by Load.
func FromFile(path string) Provider {
	return func() ([]string, error) { return Load(path) }
}
