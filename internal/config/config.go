package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/ground"
	"github.com/san-kum/shotsim/internal/integrators"
	"github.com/san-kum/shotsim/internal/shot"
)

const (
	DefaultDt         = 0.01
	DefaultBallSpeed  = 150.0
	DefaultVLA        = 12.0
	DefaultBackSpin   = 3000.0
	DefaultMaxBounces = engine.DefaultMaxBounces
)

// Config is the on-disk description of one run: engine settings, weather,
// surface and the shot itself.
type Config struct {
	Dt                  float64         `yaml:"dt"`
	Integrator          string          `yaml:"integrator"`
	Surface             string          `yaml:"surface"`
	MaxBounces          int             `yaml:"max_bounces"`
	MaxTrajectoryPoints int             `yaml:"max_trajectory_points"`
	Conditions          shot.Conditions `yaml:"conditions"`
	Shot                shot.LaunchData `yaml:"shot"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:                  DefaultDt,
		Integrator:          integrators.Default,
		Surface:             ground.DefaultSurface,
		MaxBounces:          DefaultMaxBounces,
		MaxTrajectoryPoints: engine.DefaultMaxTrajectoryPoints,
		Conditions:          shot.StandardConditions(),
		Shot: shot.LaunchData{
			BallSpeed: DefaultBallSpeed,
			VLA:       DefaultVLA,
			BackSpin:  DefaultBackSpin,
		},
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EngineConfig overlays the file settings on engine.DefaultConfig.
func (c *Config) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.Dt = c.Dt
	ec.Integrator = c.Integrator
	ec.MaxBounces = c.MaxBounces
	ec.MaxTrajectoryPoints = c.MaxTrajectoryPoints
	return ec
}

// NewEngine builds an engine for the configured conditions and surface.
func (c *Config) NewEngine() (*engine.Engine, error) {
	return engine.New(c.Conditions, c.Surface, c.EngineConfig())
}
