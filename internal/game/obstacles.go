package game

import "math"

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Inflate grows (or shrinks, for negative d) the rect by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.Right() && py >= r.Y && py <= r.Bottom()
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// DistanceTo returns the distance from a point to the nearest edge of the
// rect, or 0 when the point is inside.
func (r Rect) DistanceTo(px, py float64) float64 {
	cx := clampF(px, r.X, r.Right())
	cy := clampF(py, r.Y, r.Bottom())
	return math.Hypot(px-cx, py-cy)
}

// GenerateObstacles places count obstacles by rejection sampling: random
// size and position, rejected when closer than ObstacleGap to an already
// placed one. Gives up after a bounded number of tries so a crowded screen
// still returns promptly with fewer obstacles.
func GenerateObstacles(r *Rand, screenW, screenH, count int) []Rect {
	rects := make([]Rect, 0, count)
	for tries := 0; len(rects) < count && tries < 400; tries++ {
		w := float64(r.Range(ObstacleMinSize, ObstacleMaxSize))
		h := float64(r.Range(ObstacleMinSize, ObstacleMaxSize))
		maxX := screenW - int(w) - ObstacleEdgePad
		maxY := screenH - int(h) - ObstacleEdgePad
		if maxX <= ObstacleEdgePad || maxY <= ObstacleTopPad {
			continue
		}
		cand := Rect{
			X: float64(r.Range(ObstacleEdgePad, maxX)),
			Y: float64(r.Range(ObstacleTopPad, maxY)),
			W: w, H: h,
		}
		ok := true
		for _, ex := range rects {
			if cand.Intersects(ex.Inflate(ObstacleGap)) {
				ok = false
				break
			}
		}
		if ok {
			rects = append(rects, cand)
		}
	}
	return rects
}
