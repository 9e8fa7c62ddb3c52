package engine

import (
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/shot"
)

// SimulateBatch runs independent shots concurrently. Results are in input
// order.
func (e *Engine) SimulateBatch(shots []shot.LaunchData) []shot.ShotResult {
	results := make([]shot.ShotResult, len(shots))
	dynamo.ParallelFor(len(shots), 1, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = e.Simulate(shots[i])
		}
	})
	return results
}
