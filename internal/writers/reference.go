// internal/writers/reference.go
package writers

import (
	"encoding/json"
	"io"

	"genomesim/internal/jsonlutil"
	"genomesim/internal/output"
	"genomesim/internal/pipeline"
	"genomesim/pkg/api"
)

func init() {
	Register("fasta", func(w io.Writer, list []pipeline.Reference, o Options) error {
		return output.WriteFASTA(w, list, o.LineWidth)
	})
	Register("tsv", func(w io.Writer, list []pipeline.Reference, o Options) error {
		return output.WriteTSV(w, list, o.Header)
	})
	Register("json", func(w io.Writer, list []pipeline.Reference, o Options) error {
		return output.WriteJSON(w, list)
	})
	Register("jsonl", func(w io.Writer, list []pipeline.Reference, o Options) error {
		// Buffer covers the whole batch so an encoder error cannot
		// strand the feeding loop.
		in, done := jsonlutil.Start[api.ReferenceV1](w, len(list)+1,
			func(enc *json.Encoder, v api.ReferenceV1) error { return enc.Encode(v) },
			IsBrokenPipe,
		)
		for _, r := range list {
			in <- output.ToV1(r)
		}
		close(in)
		return <-done
	})
}
