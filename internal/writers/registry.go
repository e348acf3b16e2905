// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"genomesim/internal/pipeline"
)

// Options carries presentation knobs shared across formats.
type Options struct {
	LineWidth int  // FASTA wrap width
	Header    bool // TSV header row
}

// ReferenceWriters maps output format → handler. Registered in init()
// blocks from the writer files; last registration wins.
var ReferenceWriters = map[string]func(w io.Writer, list []pipeline.Reference, o Options) error{}

// Register installs a handler for format.
func Register(format string, fn func(io.Writer, []pipeline.Reference, Options) error) {
	ReferenceWriters[format] = fn
}

// Write dispatches list to the handler registered for format.
func Write(format string, w io.Writer, list []pipeline.Reference, o Options) error {
	fn, ok := ReferenceWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, o)
}
