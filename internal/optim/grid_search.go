package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/shot"
)

// Objective scores a result; the search keeps the lowest score.
type Objective func(shot.ShotResult) float64

func LongestCarry(r shot.ShotResult) float64 { return -r.Summary.CarryDistance }
func LongestTotal(r shot.ShotResult) float64 { return -r.Summary.TotalDistance }

// TargetCarry scores by distance from a carry target in yards.
func TargetCarry(yards float64) Objective {
	return func(r shot.ShotResult) float64 {
		return math.Abs(r.Summary.CarryDistance - yards)
	}
}

// GridSearch tries every combination of the given launch parameter values
// on top of a base shot.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

type Best struct {
	Params map[string]float64
	Value  float64
	Result shot.ShotResult
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Linspace returns n evenly spaced values over [lo, hi].
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return out
}

func (g *GridSearch) Search(ctx context.Context, e *engine.Engine, base shot.LaunchData, objective Objective) (Best, error) {
	if len(g.paramNames) != len(g.ranges) {
		return Best{}, &dynamo.ConfigError{Field: "ranges", Value: len(g.ranges), Wrapped: dynamo.ErrInvalidConfig}
	}
	for i, name := range g.paramNames {
		var probe shot.LaunchData
		if !set(&probe, name, 0) {
			return Best{}, &dynamo.ConfigError{Field: "param", Value: name, Wrapped: dynamo.ErrInvalidConfig}
		}
		if len(g.ranges[i]) == 0 {
			return Best{}, &dynamo.ConfigError{Field: name, Value: "empty range", Wrapped: dynamo.ErrInvalidConfig}
		}
	}

	var combos []map[string]float64
	if err := g.searchRecursive(ctx, 0, make(map[string]float64), &combos); err != nil {
		return Best{}, err
	}

	shots := make([]shot.LaunchData, len(combos))
	for i, params := range combos {
		shots[i] = base
		for name, v := range params {
			set(&shots[i], name, v)
		}
	}
	results := e.SimulateBatch(shots)
	if err := ctx.Err(); err != nil {
		return Best{}, err
	}

	best := Best{Value: math.Inf(1)}
	for i, r := range results {
		if val := objective(r); val < best.Value {
			best = Best{Params: combos[i], Value: val, Result: r}
		}
	}
	if best.Params == nil {
		return Best{}, fmt.Errorf("grid search: no finite objective value")
	}
	return best, nil
}

func (g *GridSearch) searchRecursive(ctx context.Context, depth int, current map[string]float64, out *[]map[string]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if depth == len(g.paramNames) {
		*out = append(*out, current)
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, out); err != nil {
			return err
		}
	}
	return nil
}

func set(ld *shot.LaunchData, name string, v float64) bool {
	switch name {
	case "ball_speed":
		ld.BallSpeed = v
	case "vla":
		ld.VLA = v
	case "hla":
		ld.HLA = v
	case "backspin":
		ld.BackSpin = v
	case "sidespin":
		ld.SideSpin = v
	default:
		return false
	}
	return true
}
