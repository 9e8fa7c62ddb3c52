package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shotsim/internal/shot"
)

type row struct {
	label, value string
}

func summaryRows(r shot.ShotResult) []row {
	s := r.Summary
	side := "R"
	if s.OfflineDistance < 0 {
		side = "L"
	}
	return []row{
		{"carry", fmt.Sprintf("%.1f yd", s.CarryDistance)},
		{"total", fmt.Sprintf("%.1f yd", s.TotalDistance)},
		{"roll", fmt.Sprintf("%.1f yd", s.RollDistance)},
		{"offline", fmt.Sprintf("%.1f yd %s", abs(s.OfflineDistance), side)},
		{"apex", fmt.Sprintf("%.0f ft @ %.2fs", s.MaxHeight, s.MaxHeightTime)},
		{"descent", fmt.Sprintf("%.1f°", s.DescentAngle)},
		{"land speed", fmt.Sprintf("%.1f mph", s.LandingSpeed)},
		{"hang time", fmt.Sprintf("%.2f s", s.FlightTime)},
		{"total time", fmt.Sprintf("%.2f s", s.TotalTime)},
		{"bounces", fmt.Sprintf("%d", s.BounceCount)},
	}
}

// RenderSummary draws the result summary as a bordered panel.
func RenderSummary(r shot.ShotResult, theme Theme) string {
	label := MetricLabel.Foreground(theme.Muted)
	value := MetricValue.Foreground(theme.Accent)

	var b strings.Builder
	ld := r.LaunchData
	b.WriteString(GradientText("SHOT SUMMARY", theme.Title, theme.TitleTo) + "\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("%.0f mph  %.1f° up  %.1f° %s  %.0f/%.0f rpm  on %s",
		ld.BallSpeed, ld.VLA, abs(ld.HLA), leftRight(ld.HLA), ld.BackSpin, ld.SideSpin, r.Surface)) + "\n")
	b.WriteString(Separator(44) + "\n")

	for _, rw := range summaryRows(r) {
		b.WriteString(label.Render(fmt.Sprintf("%-12s", rw.label)) + value.Render(rw.value) + "\n")
	}

	if r.Summary.TotalDistance > 0 {
		frac := r.Summary.CarryDistance / r.Summary.TotalDistance
		carry := lipgloss.NewStyle().Foreground(theme.Flight).Render(Bar(frac, 30))
		b.WriteString("\n" + label.Render(fmt.Sprintf("%-12s", "carry/roll")) + carry + "\n")
	}

	c := r.Conditions
	b.WriteString("\n" + KeyHint.Render(fmt.Sprintf("%.0f°F  %.0f ft  %.0f%% rh  wind %.0f mph @ %.0f°  ρ=%.3f kg/m³",
		c.TempF, c.ElevationFt, c.HumidityPct, c.WindSpeedMph, c.WindDirDeg, c.AirDensity())))

	return GlassPanel.BorderForeground(theme.Muted).Render(b.String())
}

// PhaseCounts renders how many samples each phase contributed, colored by
// phase.
func PhaseCounts(r shot.ShotResult, theme Theme) string {
	counts := map[shot.Phase]int{}
	for _, p := range r.Trajectory {
		counts[p.Phase]++
	}
	colors := map[shot.Phase]lipgloss.Color{
		shot.PhaseFlight:  theme.Flight,
		shot.PhaseBounce:  theme.Bounce,
		shot.PhaseRolling: theme.Rolling,
		shot.PhaseStopped: theme.Stopped,
	}

	parts := make([]string, 0, 4)
	for _, ph := range []shot.Phase{shot.PhaseFlight, shot.PhaseBounce, shot.PhaseRolling, shot.PhaseStopped} {
		style := lipgloss.NewStyle().Foreground(colors[ph])
		parts = append(parts, style.Render(fmt.Sprintf("%s %d", ph, counts[ph])))
	}
	return strings.Join(parts, Subtle.Render(" · "))
}

func leftRight(v float64) string {
	if v < 0 {
		return "L"
	}
	return "R"
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
