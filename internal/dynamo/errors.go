package dynamo

import (
	"errors"
	"fmt"
)

// Configuration errors. The simulation hot path never returns errors; these
// surface only when an engine is built.
var (
	// ErrUnknownSurface indicates a surface name outside the fixed table.
	ErrUnknownSurface = errors.New("shotsim: unknown ground surface")

	// ErrUnknownIntegrator indicates an integrator name with no registered stepper.
	ErrUnknownIntegrator = errors.New("shotsim: unknown integrator")

	// ErrInvalidConfig indicates a non-positive timestep or cap.
	ErrInvalidConfig = errors.New("shotsim: invalid simulation config")

	// ErrInvalidState indicates a state vector holding NaN or Inf.
	ErrInvalidState = errors.New("shotsim: invalid state (NaN or Inf detected)")
)

// ConfigError wraps a configuration error with the offending field.
type ConfigError struct {
	Field   string
	Value   any
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%v", e.Wrapped, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
