// Package writers dispatches generated references to serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (FASTA wrapping, TSV, JSON).
//   - Simulators stay domain-only; Pipeline stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
