// internal/output/json.go
package output

import (
	"io"

	"genomesim/internal/jsonutil"
	"genomesim/internal/pipeline"
	"genomesim/pkg/api"
)

// ToV1 maps a generated reference onto the stable wire schema.
func ToV1(r pipeline.Reference) api.ReferenceV1 {
	return api.ReferenceV1{
		ID:        r.ID,
		Length:    r.Sum.Length,
		Seed:      r.Seed,
		Simulator: r.Simulator,
		GC:        r.Sum.GC,
		MeanRun:   r.Sum.MeanRun,
		Entropy:   r.Sum.Entropy,
		Seq:       r.Seq,
	}
}

// WriteJSON writes references as a JSON array of api.ReferenceV1.
func WriteJSON(w io.Writer, list []pipeline.Reference) error {
	out := make([]api.ReferenceV1, len(list))
	for i, r := range list {
		out[i] = ToV1(r)
	}
	return jsonutil.EncodePretty(w, out)
}
