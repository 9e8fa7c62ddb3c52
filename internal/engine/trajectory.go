package engine

import "github.com/san-kum/shotsim/internal/shot"

// trajectory is an append-only point buffer with a hard cap. Points past the
// cap are dropped; the terminal point is always kept.
type trajectory struct {
	points []shot.TrajectoryPoint
	limit  int
}

func newTrajectory(limit int) *trajectory {
	return &trajectory{
		points: make([]shot.TrajectoryPoint, 0, min(limit, 256)),
		limit:  limit,
	}
}

func (t *trajectory) add(pts ...shot.TrajectoryPoint) {
	for _, p := range pts {
		if len(t.points) >= t.limit {
			return
		}
		t.points = append(t.points, p)
	}
}

// finish appends the terminal point, replacing the last one when full.
func (t *trajectory) finish(p shot.TrajectoryPoint) {
	if len(t.points) >= t.limit {
		t.points[len(t.points)-1] = p
		return
	}
	t.points = append(t.points, p)
}
