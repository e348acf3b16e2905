// core/fasta/fasta.go
package fasta

import (
	"fmt"
	"io"
)

// Record is a single FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// DefaultWidth is the sequence line width used when width <= 0.
const DefaultWidth = 70

// Write emits rec as a FASTA record, wrapping sequence lines at width
// columns. A zero-length sequence still gets its header line.
func Write(w io.Writer, rec Record, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if _, err := fmt.Fprintf(w, ">%s\n", rec.ID); err != nil {
		return err
	}
	for off := 0; off < len(rec.Seq); off += width {
		end := off + width
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", rec.Seq[off:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll writes records in order with Write.
func WriteAll(w io.Writer, recs []Record, width int) error {
	for _, r := range recs {
		if err := Write(w, r, width); err != nil {
			return err
		}
	}
	return nil
}
