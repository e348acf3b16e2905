// core/transition/presets.go
package transition

// HighGCHomopolymeric is the default reference model: elevated GC content
// with a tendency toward homopolymeric runs. Each base's strongest
// transition is to itself and the remaining mass is biased toward G/C, so
// the stationary composition is 75% GC and the mean run length is well
// above the uniform baseline.
var HighGCHomopolymeric = MustNew(map[string]Dist{
	Start: {0.15, 0.35, 0.35, 0.15},
	"A":   {0.55, 0.18, 0.18, 0.09},
	"C":   {0.06, 0.60, 0.28, 0.06},
	"G":   {0.06, 0.28, 0.60, 0.06},
	"T":   {0.09, 0.18, 0.18, 0.55},
})

// Uniform draws every base independently with probability 1/4 regardless
// of context. Baseline for composition and run-length comparisons.
var Uniform = MustNew(
	map[string]Dist{Start: {0.25, 0.25, 0.25, 0.25}},
	WithFallback(Dist{0.25, 0.25, 0.25, 0.25}),
)
