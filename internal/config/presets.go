package config

import (
	"sort"

	"github.com/san-kum/shotsim/internal/shot"
)

func preset(ld shot.LaunchData) *Config {
	cfg := DefaultConfig()
	cfg.Shot = ld
	return cfg
}

// Presets are named shots keyed by club. The driver, driver-pro, 7iron and
// wedge entries are tour-average numbers with known carry distances.
var Presets = map[string]*Config{
	"driver":     preset(shot.LaunchData{BallSpeed: 167, VLA: 10.9, BackSpin: 2686}),
	"driver-pro": preset(shot.LaunchData{BallSpeed: 160, VLA: 11.0, BackSpin: 3000}),
	"7iron":      preset(shot.LaunchData{BallSpeed: 120, VLA: 16.3, BackSpin: 7097}),
	"wedge":      preset(shot.LaunchData{BallSpeed: 102, VLA: 24.2, BackSpin: 9304}),
	"slice":      preset(shot.LaunchData{BallSpeed: 150, VLA: 13, HLA: -2, BackSpin: 3500, SideSpin: 1200}),
	"hook":       preset(shot.LaunchData{BallSpeed: 150, VLA: 11, HLA: 2, BackSpin: 2500, SideSpin: -1200}),
	"chip":       chipPreset(),
	"altitude":   altitudePreset(),
}

func chipPreset() *Config {
	cfg := preset(shot.LaunchData{BallSpeed: 45, VLA: 30, BackSpin: 4500})
	cfg.Surface = "Green"
	return cfg
}

// altitudePreset is the driver at a mile high.
func altitudePreset() *Config {
	cfg := preset(shot.LaunchData{BallSpeed: 167, VLA: 10.9, BackSpin: 2686})
	cfg.Conditions.ElevationFt = 5280
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
