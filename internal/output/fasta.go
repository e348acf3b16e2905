// internal/output/fasta.go
package output

import (
	"fmt"
	"io"

	"genomesim-core/fasta"
	"genomesim/internal/pipeline"
)

// WriteFASTA writes generated references as FASTA records. The header
// carries enough metadata (seed, simulator) to regenerate the record.
func WriteFASTA(w io.Writer, list []pipeline.Reference, width int) error {
	for _, r := range list {
		id := fmt.Sprintf("%s length=%d seed=%d simulator=%s", r.ID, len(r.Seq), r.Seed, r.Simulator)
		if err := fasta.Write(w, fasta.Record{ID: id, Seq: r.Seq}, width); err != nil {
			return err
		}
	}
	return nil
}
