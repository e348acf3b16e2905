// pkg/api/reference_v1.go
package api

// ReferenceV1 is the stable JSON schema for generated references.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReferenceV1 struct {
	ID        string  `json:"id"`
	Length    int     `json:"length"`
	Seed      uint64  `json:"seed"`
	Simulator string  `json:"simulator"` // "markov" | "poisson"
	GC        float64 `json:"gc"`
	MeanRun   float64 `json:"mean_run"`
	Entropy   float64 `json:"entropy"`
	Seq       string  `json:"seq,omitempty"`
}
