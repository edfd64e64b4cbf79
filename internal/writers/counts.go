// Package writers serializes simulation results: the count matrix as a
// tab-separated table and the ground-truth table as TSV or JSON.
package writers

import (
	"bufio"
	"io"
	"strconv"

	"rnasim-core/simulate"
)

// WriteCounts writes the count matrix as TSV: a header row with a leading
// blank field followed by the sample identifiers, then one row per gene with
// the gene identifier and its counts in column order. Rows stream through a
// buffered writer in generation order.
func WriteCounts(w io.Writer, res *simulate.Result) error {
	bw := bufio.NewWriter(w)

	for _, s := range res.Samples {
		bw.WriteByte('\t')
		bw.WriteString(s)
	}
	bw.WriteByte('\n')

	var num []byte
	for g, gene := range res.Genes {
		bw.WriteString(gene)
		for _, c := range res.Counts[g] {
			bw.WriteByte('\t')
			num = strconv.AppendInt(num[:0], c, 10)
			bw.Write(num)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
