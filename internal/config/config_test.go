package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/shotsim/internal/shot"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Surface != "Fairway" {
		t.Errorf("expected surface Fairway, got %s", cfg.Surface)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", cfg.Integrator)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Conditions != shot.StandardConditions() {
		t.Errorf("expected standard conditions, got %+v", cfg.Conditions)
	}
	if _, err := cfg.NewEngine(); err != nil {
		t.Errorf("default config should build an engine: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.yaml")
	doc := `
surface: green
conditions:
  temp_f: 85
  wind_speed_mph: 12
  wind_dir_deg: 180
shot:
  ball_speed_mph: 120
  vla_deg: 16.3
  backspin_rpm: 7097
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Surface != "green" || cfg.Conditions.TempF != 85 || cfg.Conditions.WindDirDeg != 180 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Conditions.HumidityPct != 50 {
		t.Errorf("humidity should keep its default, got %v", cfg.Conditions.HumidityPct)
	}
	if cfg.Dt != DefaultDt || cfg.Integrator != "rk4" {
		t.Errorf("engine defaults lost: dt=%v integrator=%s", cfg.Dt, cfg.Integrator)
	}
	if cfg.Shot.BallSpeed != 120 || cfg.Shot.BackSpin != 7097 || cfg.Shot.SideSpin != 0 {
		t.Errorf("shot = %+v", cfg.Shot)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dt: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("altitude")
	cfg.Surface = "Rough"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0.005
	cfg.Integrator = "euler"
	cfg.MaxBounces = 2

	ec := cfg.EngineConfig()
	if ec.Dt != 0.005 || ec.Integrator != "euler" || ec.MaxBounces != 2 {
		t.Errorf("engine config = %+v", ec)
	}
	if ec.MaxIterations <= 0 || ec.RollSampleInterval <= 0 {
		t.Errorf("engine defaults missing: %+v", ec)
	}
}

func TestNewEngineRejectsBadSurface(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Surface = "cart path"
	if _, err := cfg.NewEngine(); err == nil {
		t.Error("expected unknown surface error")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("7iron")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Shot.BackSpin != 7097 {
		t.Errorf("expected backspin 7097, got %f", cfg.Shot.BackSpin)
	}

	cfg.Shot.BackSpin = 0
	if GetPreset("7iron").Shot.BackSpin != 7097 {
		t.Error("mutating a returned preset changed the table")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if !sort.StringsAreSorted(presets) {
		t.Errorf("presets not sorted: %v", presets)
	}
	for _, name := range []string{"driver", "driver-pro", "7iron", "wedge"} {
		if GetPreset(name) == nil {
			t.Errorf("missing reference preset %s", name)
		}
	}
}

func TestPresetsBuildEngines(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			e, err := cfg.NewEngine()
			if err != nil {
				t.Fatalf("engine: %v", err)
			}
			r := e.Simulate(cfg.Shot)
			if r.Final().Phase != shot.PhaseStopped {
				t.Errorf("final phase = %v", r.Final().Phase)
			}
		})
	}
}

func TestLoadServer(t *testing.T) {
	t.Setenv("SHOTSIM_PORT", "9090")
	t.Setenv("SHOTSIM_ENV", "production")
	t.Setenv("SHOTSIM_SURFACE", "")

	cfg := LoadServer()
	if cfg.Port != "9090" {
		t.Errorf("port = %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.Surface != "Fairway" {
		t.Errorf("surface = %s, want default", cfg.Surface)
	}
}
