package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/shotsim/internal/shot"
	"github.com/san-kum/shotsim/internal/viz"
)

const feetPerYard = 3.0

// PhaseColors are the stroke colors for each phase in SVG output.
var PhaseColors = map[shot.Phase]string{
	shot.PhaseFlight:  "#00ff88",
	shot.PhaseBounce:  "#ffaa00",
	shot.PhaseRolling: "#44aaff",
	shot.PhaseStopped: "#ff4444",
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff88">
`, width, height, width, height)

	dotRadius := scale * 0.4
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if !canvas.IsSet(col*2+dx, row*4+dy) {
						continue
					}
					cx := float64(col*2+dx)*scale + scale/2
					cy := float64(row*4+dy)*scale + scale/2
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// TrajectorySVG draws the side profile of a shot: height against downrange
// distance, one path per run of consecutive same-phase points, with a
// ground line and a carry marker. Both axes share one scale.
func TrajectorySVG(r shot.ShotResult, width, height int) string {
	points := r.Trajectory
	if len(points) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	maxY := 0.0
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y/feetPerYard)
	}

	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	pad := 0.05 * rangeX
	minX -= pad
	rangeX += 2 * pad
	scale := min(float64(width)/rangeX, float64(height)/max(maxY*1.2, 1))

	groundY := float64(height) - 10
	px := func(p shot.TrajectoryPoint) (float64, float64) {
		return (p.X - minX) * scale, groundY - p.Y/feetPerYard*scale
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#335533" stroke-width="1"/>
`, width, height, width, height, groundY, width, groundY)

	start := 0
	for i := 1; i <= len(points); i++ {
		if i < len(points) && points[i].Phase == points[start].Phase {
			continue
		}
		// segments share their first point with the previous run
		from := max(start-1, 0)
		writePath(&sb, points[from:i], PhaseColors[points[start].Phase], px)
		start = i
	}

	carry := r.Summary.CarryDistance
	if carry > 0 {
		cx, _ := px(shot.TrajectoryPoint{X: carry})
		fmt.Fprintf(&sb, "<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#666666\" stroke-dasharray=\"4 3\"/>\n",
			cx, groundY, cx, groundY-20)
		fmt.Fprintf(&sb, "<text x=\"%.1f\" y=\"%.1f\" fill=\"#aaaaaa\" font-family=\"monospace\" font-size=\"11\">%.1f yd</text>\n",
			cx+3, groundY-22, carry)
	}

	final := points[len(points)-1]
	fx, fy := px(final)
	fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", fx, fy, PhaseColors[shot.PhaseStopped])

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePath(sb *strings.Builder, points []shot.TrajectoryPoint, color string, px func(shot.TrajectoryPoint) (float64, float64)) {
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color)
	for i, p := range points {
		x, y := px(p)
		if i == 0 {
			fmt.Fprintf(sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")
}
