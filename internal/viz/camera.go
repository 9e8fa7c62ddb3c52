package viz

import (
	"math"

	"github.com/san-kum/shotsim/internal/aero"
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/shot"
)

// Camera is a perspective camera orbiting a unit cube that holds the shot.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

// NewCamera returns a down-the-line camera raised slightly above the tee.
func NewCamera() *Camera {
	return &Camera{Distance: 2, RotX: 0.3, Zoom: 1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint rotates a point about the X then Y axes.
func (c *Camera) RotatePoint(p dynamo.Vec3) dynamo.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps a view-space point to sub-pixel coordinates on a sw x sh
// screen. It returns x, y, depth and whether the point is on screen.
func (c *Camera) Project(p dynamo.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.05 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	pScale := 0.9 * float64(min(sw, sh))
	x := int(rot.X*scale*pScale) + sw/2
	y := int(-rot.Y*scale*pScale) + sh/2
	return x, y, rot.Z, x >= 0 && x < sw && y >= 0 && y < sh
}

// viewSpace converts trajectory points to a unit cube centered on the shot:
// lateral offset across the screen, height up, downrange into the screen.
func viewSpace(points []shot.TrajectoryPoint) []dynamo.Vec3 {
	out := make([]dynamo.Vec3, len(points))
	if len(points) == 0 {
		return out
	}

	lo := dynamo.V3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := dynamo.V3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i, p := range points {
		v := dynamo.V3(p.Z, p.Y/aero.MToFeet*aero.MToYards, -p.X)
		out[i] = v
		lo = dynamo.V3(math.Min(lo.X, v.X), math.Min(lo.Y, v.Y), math.Min(lo.Z, v.Z))
		hi = dynamo.V3(math.Max(hi.X, v.X), math.Max(hi.Y, v.Y), math.Max(hi.Z, v.Z))
	}

	center := lo.Add(hi).Scale(0.5)
	extent := hi.Sub(lo)
	span := math.Max(extent.X, math.Max(extent.Y, extent.Z))
	if span < 1e-9 {
		span = 1
	}
	for i := range out {
		out[i] = out[i].Sub(center).Scale(1 / span)
	}
	return out
}

// Render3D draws the trajectory and the ground under it as seen from cam.
func Render3D(c *Canvas, points []shot.TrajectoryPoint, cam *Camera) {
	if c == nil || cam == nil || len(points) == 0 {
		return
	}
	pw, ph := c.PixelSize()
	view := viewSpace(points)

	// ground trace under the ball
	ground := make([]dynamo.Vec3, len(view))
	floor := math.Inf(1)
	for _, v := range view {
		floor = math.Min(floor, v.Y)
	}
	for i, v := range view {
		ground[i] = dynamo.V3(v.X, floor, v.Z)
	}

	for _, path := range [][]dynamo.Vec3{ground, view} {
		for i := 1; i < len(path); i++ {
			x0, y0, _, ok0 := cam.Project(path[i-1], pw, ph)
			x1, y1, _, ok1 := cam.Project(path[i], pw, ph)
			if ok0 && ok1 {
				c.DrawLine(x0, y0, x1, y1)
			}
		}
	}
}
