// Package pipeline fans reference generation out over a worker pool.
//
// Every record owns an independent, derived random stream (base seed +
// record index) and its own simulator instance, so output is identical for
// any thread count and workers never share random state.
package pipeline
