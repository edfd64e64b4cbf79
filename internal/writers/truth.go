// internal/writers/truth.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"rnasim-core/simulate"
	"rnasim/pkg/api"
)

// TruthRecords flattens a result's ground truth into output records, one per
// gene in row order.
func TruthRecords(res *simulate.Result) []api.TruthGeneV1 {
	status := make([]string, len(res.Genes))
	for i := range status {
		status[i] = api.StatusNone
	}
	for _, g := range res.Up {
		status[g] = api.StatusUp
	}
	for _, g := range res.Down {
		status[g] = api.StatusDown
	}

	recs := make([]api.TruthGeneV1, len(res.Genes))
	for g, gene := range res.Genes {
		recs[g] = api.TruthGeneV1{
			Gene:        gene,
			Status:      status[g],
			MuControl:   res.MuControl[g],
			MuTreatment: res.MuTreatment[g],
		}
	}
	return recs
}

// WriteTruth writes the ground-truth table in the requested format
// ("tsv" or "json").
func WriteTruth(w io.Writer, format string, res *simulate.Result) error {
	switch format {
	case "tsv":
		return writeTruthTSV(w, TruthRecords(res))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(TruthRecords(res))
	default:
		return fmt.Errorf("unsupported truth format %q", format)
	}
}

func writeTruthTSV(w io.Writer, recs []api.TruthGeneV1) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("gene\tstatus\tmu_control\tmu_treatment\n"); err != nil {
		return err
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%g\t%g\n", r.Gene, r.Status, r.MuControl, r.MuTreatment); err != nil {
			return err
		}
	}
	return bw.Flush()
}
