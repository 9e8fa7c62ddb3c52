package automation

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shotsim/internal/config"
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/shot"
)

// Scenario is a scripted list of shots sharing a surface and weather.
type Scenario struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Surface     string           `yaml:"surface"`
	Conditions  *shot.Conditions `yaml:"conditions"`
	Shots       []ScenarioShot   `yaml:"shots"`
}

// ScenarioShot is one shot in a scenario. Preset names a config preset whose
// launch data is used when Shot is empty. Surface and Conditions override the
// scenario's for this shot only.
type ScenarioShot struct {
	Name       string           `yaml:"name"`
	Preset     string           `yaml:"preset"`
	Shot       *shot.LaunchData `yaml:"shot"`
	Surface    string           `yaml:"surface"`
	Conditions *shot.Conditions `yaml:"conditions"`
}

type StepResult struct {
	Name   string
	Result shot.ShotResult
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// RunScenario simulates every shot in order on engines derived from base.
func RunScenario(ctx context.Context, scenario *Scenario, base *engine.Engine) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Shots))

	e := base
	if scenario.Surface != "" {
		var err error
		if e, err = base.WithSurface(scenario.Surface); err != nil {
			return nil, err
		}
	}
	if scenario.Conditions != nil {
		e = e.WithConditions(*scenario.Conditions)
	}

	for i, step := range scenario.Shots {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		ld, err := step.launch()
		if err != nil {
			return results, fmt.Errorf("shot %d: %w", i+1, err)
		}

		se := e
		if step.Surface != "" {
			if se, err = e.WithSurface(step.Surface); err != nil {
				return results, fmt.Errorf("shot %d: %w", i+1, err)
			}
		}
		if step.Conditions != nil {
			se = se.WithConditions(*step.Conditions)
		}

		name := step.Name
		if name == "" {
			name = fmt.Sprintf("shot %d", i+1)
		}
		results = append(results, StepResult{Name: name, Result: se.Simulate(ld)})
	}

	return results, nil
}

func (s ScenarioShot) launch() (shot.LaunchData, error) {
	if s.Shot != nil {
		return *s.Shot, nil
	}
	if s.Preset == "" {
		return shot.LaunchData{}, &dynamo.ConfigError{Field: "shot", Value: nil, Wrapped: dynamo.ErrInvalidConfig}
	}
	p := config.GetPreset(s.Preset)
	if p == nil {
		return shot.LaunchData{}, fmt.Errorf("unknown preset: %s", s.Preset)
	}
	return p.Shot, nil
}

// SweepParams are the names accepted by ParameterSweep.Param.
var SweepParams = []string{
	"ball_speed", "vla", "hla", "backspin", "sidespin",
	"temp", "elevation", "humidity", "wind_speed", "wind_dir",
}

// ParameterSweep runs one shot across an evenly spaced range of a single
// launch or weather parameter.
type ParameterSweep struct {
	Param    string
	Min      float64
	Max      float64
	NumSteps int
	Shot     shot.LaunchData
}

type SweepResult struct {
	ParamValue float64
	Result     shot.ShotResult
}

func (sw *ParameterSweep) apply(v float64, ld *shot.LaunchData, c *shot.Conditions) bool {
	switch sw.Param {
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
	case "temp":
		c.TempF = v
	case "elevation":
		c.ElevationFt = v
	case "humidity":
		c.HumidityPct = v
	case "wind_speed":
		c.WindSpeedMph = v
	case "wind_dir":
		c.WindDirDeg = v
	default:
		return false
	}
	return true
}

// RunSweep executes a parameter sweep. Points run concurrently; results are
// in ascending parameter order.
func RunSweep(ctx context.Context, sweep *ParameterSweep, e *engine.Engine) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, &dynamo.ConfigError{Field: "steps", Value: sweep.NumSteps, Wrapped: dynamo.ErrInvalidConfig}
	}
	var probe shot.LaunchData
	var probeCond shot.Conditions
	if !sweep.apply(0, &probe, &probeCond) {
		return nil, &dynamo.ConfigError{Field: "param", Value: sweep.Param, Wrapped: dynamo.ErrInvalidConfig}
	}

	paramStep := (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	results := make([]SweepResult, sweep.NumSteps)

	dynamo.ParallelFor(sweep.NumSteps, 1, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			v := sweep.Min + float64(i)*paramStep
			ld, c := sweep.Shot, e.Conditions()
			sweep.apply(v, &ld, &c)
			results[i] = SweepResult{ParamValue: v, Result: e.WithConditions(c).Simulate(ld)}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// MonteCarloConfig perturbs a shot with independent normal noise on each
// launch parameter. Spread holds the standard deviations.
type MonteCarloConfig struct {
	Shot      shot.LaunchData
	Spread    shot.LaunchData
	NumTrials int
	Seed      int64
}

// RunMonteCarlo simulates NumTrials perturbed copies of the shot. A zero
// seed draws one from the clock.
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, e *engine.Engine) ([]shot.ShotResult, error) {
	if cfg.NumTrials <= 0 {
		return nil, &dynamo.ConfigError{Field: "trials", Value: cfg.NumTrials, Wrapped: dynamo.ErrInvalidConfig}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	trials := make([]shot.LaunchData, cfg.NumTrials)
	for i := range trials {
		b, s := cfg.Shot, cfg.Spread
		trials[i] = shot.LaunchData{
			BallSpeed: max(0, b.BallSpeed+rng.NormFloat64()*s.BallSpeed),
			VLA:       b.VLA + rng.NormFloat64()*s.VLA,
			HLA:       b.HLA + rng.NormFloat64()*s.HLA,
			BackSpin:  b.BackSpin + rng.NormFloat64()*s.BackSpin,
			SideSpin:  b.SideSpin + rng.NormFloat64()*s.SideSpin,
		}
	}

	// cancellation is checked between batches
	const batch = 64
	results := make([]shot.ShotResult, 0, cfg.NumTrials)
	for start := 0; start < len(trials); start += batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+batch, len(trials))
		results = append(results, e.SimulateBatch(trials[start:end])...)
	}

	return results, nil
}
