package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/shotsim/internal/shot"
)

// SideProfile plots height (ft) against downrange distance (yd).
func SideProfile(points []shot.TrajectoryPoint, width, height int) string {
	data := resampleByX(points, width, func(p shot.TrajectoryPoint) float64 { return p.Y })
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Precision(0),
		asciigraph.Caption("height (ft) vs downrange"),
	)
}

// TopProfile plots lateral offset (yd, + = right) against downrange distance.
func TopProfile(points []shot.TrajectoryPoint, width, height int) string {
	data := resampleByX(points, width, func(p shot.TrajectoryPoint) float64 { return p.Z })
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption("offline (yd) vs downrange"),
	)
}

// CompareProfiles overlays the side profiles of several results on one
// downrange axis.
func CompareProfiles(results []shot.ShotResult, width, height int) string {
	maxX := 0.0
	for _, r := range results {
		maxX = math.Max(maxX, r.Summary.TotalDistance)
	}
	if maxX <= 0 || len(results) == 0 {
		return ""
	}

	series := make([][]float64, 0, len(results))
	for _, r := range results {
		series = append(series, sampleOver(r.Trajectory, width, 0, maxX, func(p shot.TrajectoryPoint) float64 { return p.Y }))
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow, asciigraph.Cyan, asciigraph.Red, asciigraph.Blue, asciigraph.Magenta),
		asciigraph.Caption("height (ft) vs downrange"),
	)
}

// resampleByX samples value at n evenly spaced downrange positions between
// the shortest and longest X in points.
func resampleByX(points []shot.TrajectoryPoint, n int, value func(shot.TrajectoryPoint) float64) []float64 {
	if len(points) < 2 || n < 2 {
		return nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.X)
		hi = math.Max(hi, p.X)
	}
	if hi-lo < 1e-9 {
		return nil
	}
	return sampleOver(points, n, lo, hi, value)
}

// sampleOver linearly interpolates value at n positions across [lo, hi].
// Positions past the end of the trajectory take the final value.
func sampleOver(points []shot.TrajectoryPoint, n int, lo, hi float64, value func(shot.TrajectoryPoint) float64) []float64 {
	out := make([]float64, n)
	if len(points) == 0 {
		return out
	}
	last := value(points[len(points)-1])

	for i := range out {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		out[i] = last
		for j := 1; j < len(points); j++ {
			a, b := points[j-1], points[j]
			if x < math.Min(a.X, b.X) || x > math.Max(a.X, b.X) {
				continue
			}
			if b.X == a.X {
				out[i] = math.Max(value(a), value(b))
			} else {
				f := (x - a.X) / (b.X - a.X)
				out[i] = value(a) + f*(value(b)-value(a))
			}
			break
		}
	}
	return out
}
