package main

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/shotsim/internal/config"
	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/shot"
)

func newShotCmd(t *testing.T) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	addShotFlags(cmd)
	return cmd
}

func TestResolveConfigLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.yaml")
	file := config.DefaultConfig()
	file.Shot.BallSpeed = 140
	file.Conditions.ElevationFt = 1000
	if err := config.Save(path, file); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		flags     map[string]string
		wantSpeed float64
		wantVLA   float64
		wantElev  float64
		wantSurf  string
	}{
		{"defaults", nil, config.DefaultBallSpeed, config.DefaultVLA, 0, "Fairway"},
		{"preset", map[string]string{"preset": "wedge"}, 102, 24.2, 0, "Fairway"},
		{"preset with override", map[string]string{"preset": "wedge", "vla": "30"}, 102, 30, 0, "Fairway"},
		{"file", map[string]string{"config": path}, 140, config.DefaultVLA, 1000, "Fairway"},
		{"file with override", map[string]string{"config": path, "speed": "150", "surface": "Green"}, 150, config.DefaultVLA, 1000, "Green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newShotCmd(t)
			for k, v := range tt.flags {
				if err := cmd.Flags().Set(k, v); err != nil {
					t.Fatalf("set %s: %v", k, err)
				}
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				t.Fatalf("resolveConfig: %v", err)
			}
			if cfg.Shot.BallSpeed != tt.wantSpeed {
				t.Errorf("speed = %v, want %v", cfg.Shot.BallSpeed, tt.wantSpeed)
			}
			if cfg.Shot.VLA != tt.wantVLA {
				t.Errorf("vla = %v, want %v", cfg.Shot.VLA, tt.wantVLA)
			}
			if cfg.Conditions.ElevationFt != tt.wantElev {
				t.Errorf("elevation = %v, want %v", cfg.Conditions.ElevationFt, tt.wantElev)
			}
			if cfg.Surface != tt.wantSurf {
				t.Errorf("surface = %q, want %q", cfg.Surface, tt.wantSurf)
			}
		})
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	cmd := newShotCmd(t)
	if err := cmd.Flags().Set("preset", "putter"); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestWriteTrajectoryCSV(t *testing.T) {
	points := []shot.TrajectoryPoint{
		{T: 0, Phase: shot.PhaseFlight},
		{T: 6.5, X: 250.25, Y: 0, Z: -3.5, Phase: shot.PhaseStopped},
	}

	var buf bytes.Buffer
	if err := writeTrajectoryCSV(&buf, points); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0][4] != "phase" {
		t.Errorf("header = %v", rows[0])
	}
	want := []string{"6.500", "250.250", "0.000", "-3.500", "stopped"}
	for i, v := range want {
		if rows[2][i] != v {
			t.Errorf("col %d = %q, want %q", i, rows[2][i], v)
		}
	}
}

func TestPickObjective(t *testing.T) {
	short := shot.ShotResult{Summary: shot.ShotSummary{CarryDistance: 200, TotalDistance: 260}}
	long := shot.ShotResult{Summary: shot.ShotSummary{CarryDistance: 230, TotalDistance: 240}}

	tests := []struct {
		name      string
		objective string
		target    float64
		better    shot.ShotResult
		worse     shot.ShotResult
	}{
		{"carry", "carry", 0, long, short},
		{"total", "total", 0, short, long},
		{"target wins over objective", "total", 205, short, long},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, _, err := pickObjective(tt.objective, tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if obj(tt.better) >= obj(tt.worse) {
				t.Errorf("objective does not prefer the better shot: %v >= %v", obj(tt.better), obj(tt.worse))
			}
		})
	}

	if _, _, err := pickObjective("height", 0); err == nil {
		t.Error("expected an error for an unknown objective")
	}
}

func TestRender3DSVG(t *testing.T) {
	e, err := engine.New(shot.StandardConditions(), "Fairway", engine.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	r := e.Simulate(shot.LaunchData{BallSpeed: 167, VLA: 10.9, BackSpin: 2686})

	out := render3DSVG(r, 60)
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document: %.80s", out)
	}
	if !strings.Contains(out, "<circle") {
		t.Error("no trajectory dots rendered")
	}
}
