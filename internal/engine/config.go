package engine

import (
	"fmt"

	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/flight"
	"github.com/san-kum/shotsim/internal/integrators"
)

const (
	DefaultMaxIterations       = 3000
	DefaultMaxBounces          = 5
	DefaultMaxTrajectoryPoints = 600
	DefaultRollSampleInterval  = 0.05 // s
)

// Config holds the simulation bounds. It is copied into an Engine at
// construction and never changed afterwards.
type Config struct {
	Dt                  float64 `yaml:"dt" json:"dt"`
	MaxTime             float64 `yaml:"max_time" json:"max_time"`
	MaxIterations       int     `yaml:"max_iterations" json:"max_iterations"`
	MaxBounces          int     `yaml:"max_bounces" json:"max_bounces"`
	MaxTrajectoryPoints int     `yaml:"max_trajectory_points" json:"max_trajectory_points"`
	FlightSampleEvery   int     `yaml:"flight_sample_every" json:"flight_sample_every"`
	RollSampleInterval  float64 `yaml:"roll_sample_interval" json:"roll_sample_interval"`
	SpinDecayRate       float64 `yaml:"spin_decay_rate" json:"spin_decay_rate"`
	Integrator          string  `yaml:"integrator" json:"integrator"`
}

func DefaultConfig() Config {
	fp := flight.DefaultParams()
	return Config{
		Dt:                  fp.Dt,
		MaxTime:             fp.MaxTime,
		MaxIterations:       DefaultMaxIterations,
		MaxBounces:          DefaultMaxBounces,
		MaxTrajectoryPoints: DefaultMaxTrajectoryPoints,
		FlightSampleEvery:   fp.SampleEvery,
		RollSampleInterval:  DefaultRollSampleInterval,
		SpinDecayRate:       fp.SpinDecayRate,
		Integrator:          integrators.Default,
	}
}

// Validate reports the first out-of-range field as a *dynamo.ConfigError
// wrapping dynamo.ErrInvalidConfig.
func (c Config) Validate() error {
	invalid := func(field string, v any) error {
		return &dynamo.ConfigError{Field: field, Value: v, Wrapped: dynamo.ErrInvalidConfig}
	}

	switch {
	case c.Dt <= 0:
		return invalid("dt", c.Dt)
	case c.MaxTime <= 0:
		return invalid("max_time", c.MaxTime)
	case c.MaxIterations <= 0:
		return invalid("max_iterations", c.MaxIterations)
	case c.MaxBounces < 0:
		return invalid("max_bounces", c.MaxBounces)
	case c.MaxTrajectoryPoints < 2:
		return invalid("max_trajectory_points", c.MaxTrajectoryPoints)
	case c.FlightSampleEvery <= 0:
		return invalid("flight_sample_every", c.FlightSampleEvery)
	case c.RollSampleInterval <= 0:
		return invalid("roll_sample_interval", c.RollSampleInterval)
	case c.SpinDecayRate < 0:
		return invalid("spin_decay_rate", c.SpinDecayRate)
	}

	if _, err := integrators.Get(c.Integrator); err != nil {
		return fmt.Errorf("%w: %w", dynamo.ErrInvalidConfig, err)
	}
	return nil
}

// rollSampleEvery converts the roll sampling interval to a step count.
func (c Config) rollSampleEvery() int {
	n := int(c.RollSampleInterval/c.Dt + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
