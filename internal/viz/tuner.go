package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/shotsim/internal/engine"
	"github.com/san-kum/shotsim/internal/ground"
	"github.com/san-kum/shotsim/internal/shot"
)

const (
	viewSide = iota
	viewTop
	view3D
	numViews
)

var viewNames = [numViews]string{"side", "top", "3d"}

type param struct {
	name, unit string
	step       float64
}

var tunerParams = []param{
	{"ball speed", "mph", 1},
	{"launch", "deg", 0.5},
	{"direction", "deg", 0.5},
	{"backspin", "rpm", 100},
	{"sidespin", "rpm", 100},
	{"temp", "F", 5},
	{"elevation", "ft", 250},
	{"humidity", "%", 5},
	{"wind", "mph", 1},
	{"wind dir", "deg", 15},
}

// Tuner is the what-if model: every change re-runs the simulation.
type Tuner struct {
	engine        *engine.Engine
	start         shot.LaunchData
	shot          shot.LaunchData
	cond          shot.Conditions
	surfaces      []string
	surfaceIdx    int
	cursor        int
	view          int
	themeIdx      int
	cam           *Camera
	result        shot.ShotResult
	previous      *shot.ShotResult
	err           error
	width, height int
}

func NewTuner(e *engine.Engine, ld shot.LaunchData) Tuner {
	t := Tuner{
		engine:   e,
		start:    ld,
		shot:     ld,
		cond:     e.Conditions(),
		surfaces: ground.Names(),
		cam:      NewCamera(),
		width:    100,
		height:   40,
	}
	for i, name := range t.surfaces {
		if name == e.Surface().Name {
			t.surfaceIdx = i
		}
	}
	t.resimulate()
	return t
}

// Result is the most recent simulation.
func (t Tuner) Result() shot.ShotResult { return t.result }

func (t Tuner) Init() tea.Cmd { return nil }

func (t Tuner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKey(msg)
	case tea.WindowSizeMsg:
		t.width, t.height = msg.Width, msg.Height
	}
	return t, nil
}

func (t Tuner) handleKey(msg tea.KeyMsg) (Tuner, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return t, tea.Quit
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(tunerParams)-1 {
			t.cursor++
		}
	case "left", "h":
		t.adjust(-1)
	case "right", "l":
		t.adjust(1)
	case "H", "shift+left":
		t.adjust(-10)
	case "L", "shift+right":
		t.adjust(10)
	case "s":
		t.surfaceIdx = (t.surfaceIdx + 1) % len(t.surfaces)
		t.resimulate()
	case "v":
		t.view = (t.view + 1) % numViews
	case "t":
		t.themeIdx = (t.themeIdx + 1) % len(Themes)
	case "r":
		t.shot = t.start
		t.cond = t.engine.Conditions()
		t.resimulate()
	case "a":
		t.cam.RotateY(-0.15)
	case "d":
		t.cam.RotateY(0.15)
	case "w":
		t.cam.RotateX(-0.1)
	case "x":
		t.cam.RotateX(0.1)
	case "+", "=":
		t.cam.ZoomIn()
	case "-":
		t.cam.ZoomOut()
	}
	return t, nil
}

func (t *Tuner) field(i int) *float64 {
	switch i {
	case 0:
		return &t.shot.BallSpeed
	case 1:
		return &t.shot.VLA
	case 2:
		return &t.shot.HLA
	case 3:
		return &t.shot.BackSpin
	case 4:
		return &t.shot.SideSpin
	case 5:
		return &t.cond.TempF
	case 6:
		return &t.cond.ElevationFt
	case 7:
		return &t.cond.HumidityPct
	case 8:
		return &t.cond.WindSpeedMph
	default:
		return &t.cond.WindDirDeg
	}
}

func (t *Tuner) adjust(steps float64) {
	p := t.field(t.cursor)
	*p += steps * tunerParams[t.cursor].step

	switch t.cursor {
	case 0, 8:
		*p = max(*p, 0)
	case 7:
		*p = min(max(*p, 0), 100)
	case 9:
		for *p < 0 {
			*p += 360
		}
		for *p >= 360 {
			*p -= 360
		}
	}
	t.resimulate()
}

func (t *Tuner) resimulate() {
	e, err := t.engine.WithSurface(t.surfaces[t.surfaceIdx])
	if err != nil {
		t.err = err
		return
	}
	t.err = nil

	if t.result.Trajectory != nil {
		prev := t.result
		t.previous = &prev
	}
	t.result = e.WithConditions(t.cond).Simulate(t.shot)
}

func (t Tuner) View() string {
	theme := Themes[t.themeIdx]
	title := lipgloss.NewStyle().Foreground(theme.Title).Bold(true)

	var params strings.Builder
	params.WriteString(HeaderStyle.Render("WHAT-IF") + "\n\n")
	for i, p := range tunerParams {
		line := fmt.Sprintf("%-11s %8.1f %s", p.name, *t.field(i), p.unit)
		if i == t.cursor {
			params.WriteString(NeonGlow.Render("▸ "+line) + "\n")
		} else {
			params.WriteString(Subtle.Render("  "+line) + "\n")
		}
	}
	params.WriteString("\n" + MetricLabel.Render("surface  ") + title.Render(t.surfaces[t.surfaceIdx]) + "\n")
	if t.previous != nil {
		delta := t.result.Summary.CarryDistance - t.previous.Summary.CarryDistance
		params.WriteString(MetricLabel.Render("Δ carry  ") + MetricValue.Render(fmt.Sprintf("%+.1f yd", delta)) + "\n")
	}
	if t.err != nil {
		params.WriteString(lipgloss.NewStyle().Foreground(theme.Stopped).Render(t.err.Error()) + "\n")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, params.String(), "   ", RenderSummary(t.result, theme))

	plotW := max(t.width-12, 20)
	plotH := max(t.height/4, 6)
	var body string
	switch t.view {
	case viewSide:
		body = SideProfile(t.result.Trajectory, plotW, plotH)
	case viewTop:
		body = TopProfile(t.result.Trajectory, plotW, plotH)
	case view3D:
		c := NewCanvas(max(t.width-4, 20), plotH+2)
		Render3D(c, t.result.Trajectory, t.cam)
		body = lipgloss.NewStyle().Foreground(theme.Flight).Render(c.String())
	}

	hints := KeyHint.Render(fmt.Sprintf("j/k select  h/l adjust  H/L x10  s surface  v view (%s)  t theme (%s)  a/d/w/x orbit  r reset  q quit",
		viewNames[t.view], theme.Name))

	return lipgloss.JoinVertical(lipgloss.Left, top, "", PhaseCounts(t.result, theme), "", body, hints)
}

// RunTuner starts the interactive tuner and returns the last simulated shot.
func RunTuner(e *engine.Engine, ld shot.LaunchData) (shot.ShotResult, error) {
	final, err := tea.NewProgram(NewTuner(e, ld), tea.WithAltScreen()).Run()
	if err != nil {
		return shot.ShotResult{}, err
	}
	return final.(Tuner).Result(), nil
}
