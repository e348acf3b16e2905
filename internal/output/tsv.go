// internal/output/tsv.go
package output

import (
	"fmt"
	"io"

	"genomesim/internal/pipeline"
)

// FormatRowTSV returns one reference's summary row (no trailing newline).
func FormatRowTSV(r pipeline.Reference) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%.4f\t%.4f\t%.4f\t%d\t%d\t%d\t%d",
		r.ID, r.Sum.Length, r.Seed, r.Simulator,
		r.Sum.GC, r.Sum.MeanRun, r.Sum.Entropy,
		r.Sum.Counts[0], r.Sum.Counts[1], r.Sum.Counts[2], r.Sum.Counts[3],
	)
}

// WriteTSV writes references as a tab-delimited summary table.
func WriteTSV(w io.Writer, list []pipeline.Reference, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
