package game

import "math"

// PathPoint is a 2D position in the snake's segment list.
type PathPoint struct {
	X, Y float64
}

// Snake is the player-steered entity: an ordered list of segment positions,
// head first. Each frame the head advances a fixed distance toward the
// fingertip target; a new head is prepended and the tail trimmed so that
// len(Segments) == InitialLen + Score.
type Snake struct {
	Segments []PathPoint
	Score    int
	Alive    bool
	Speed    float64
}

// NewSnake lays out the initial body horizontally, head at (x, y).
func NewSnake(x, y float64) *Snake {
	s := &Snake{
		Segments: make([]PathPoint, 0, InitialLen+64),
		Alive:    true,
		Speed:    SnakeSpeed,
	}
	for i := 0; i < InitialLen; i++ {
		s.Segments = append(s.Segments, PathPoint{X: x - float64(i)*SegSpacing, Y: y})
	}
	return s
}

// Head returns the current head position.
func (s *Snake) Head() (float64, float64) {
	return s.Segments[0].X, s.Segments[0].Y
}

// Len returns the current segment count.
func (s *Snake) Len() int { return len(s.Segments) }

// Advance moves the head Speed px toward (tx, ty), prepends the new head
// position and trims the tail to the desired length. Within 1 px of the
// target the head holds still (but the segment list still shifts, matching
// the per-frame update cadence).
func (s *Snake) Advance(tx, ty float64) {
	hx, hy := s.Head()
	dx, dy := tx-hx, ty-hy
	d := math.Hypot(dx, dy)
	nx, ny := hx, hy
	if d > 1 {
		nx = hx + dx/d*s.Speed
		ny = hy + dy/d*s.Speed
	}

	s.Segments = append(s.Segments, PathPoint{})
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = PathPoint{X: nx, Y: ny}

	desired := InitialLen + s.Score
	if len(s.Segments) > desired {
		s.Segments = s.Segments[:desired]
	}
}

// Grow increments the score; the extra segment appears as the tail stops
// being trimmed on the next Advance.
func (s *Snake) Grow() {
	s.Score++
}

// HitsFood reports whether the head overlaps the food point.
func (s *Snake) HitsFood(fx, fy float64) bool {
	hx, hy := s.Head()
	return dist(hx, hy, fx, fy) < FoodRadius+HeadRadius
}

// HitsWall reports whether the head is within WallMargin of a screen edge.
func (s *Snake) HitsWall(screenW, screenH int) bool {
	hx, hy := s.Head()
	return hx < WallMargin || hy < WallMargin ||
		hx > float64(screenW)-WallMargin || hy > float64(screenH)-WallMargin
}

// HitsRect reports whether the head touches the rect, deflated by 16 px so
// grazing an obstacle's glow border is forgiven.
func (s *Snake) HitsRect(r Rect) bool {
	hx, hy := s.Head()
	return r.Inflate(-8).DistanceTo(hx, hy) < HeadRadius+2
}

// HitsSelf reports whether the head overlaps its own body. The first
// SelfHitSkip segments are excluded: they always trail right behind the
// head and would trigger constantly.
func (s *Snake) HitsSelf() bool {
	hx, hy := s.Head()
	for i := SelfHitSkip; i < len(s.Segments); i++ {
		if dist(hx, hy, s.Segments[i].X, s.Segments[i].Y) < HeadRadius-6 {
			return true
		}
	}
	return false
}

// RenderData appends the body as circle sprites, tail first so the head
// draws on top. Format: [x, y, size, r, g, b, a, rotation] per sprite.
func (s *Snake) RenderData(buf []float32) []float32 {
	n := len(s.Segments)
	for i := n - 1; i >= 0; i-- {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col := BodyColor(t)
		rad := float64(HeadRadius)
		if i != 0 {
			rad = math.Max(8, float64(HeadRadius)-t*4)
		}
		p := s.Segments[i]
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(rad*2),
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1, 0,
		)
	}
	// Bright core on the head.
	if n > 0 {
		h := s.Segments[0]
		core := Palette.HeadCore
		buf = append(buf,
			float32(h.X), float32(h.Y), float32(math.Max(6, HeadRadius)),
			float32(core.R)/255, float32(core.G)/255, float32(core.B)/255, 1, 0,
		)
	}
	return buf
}

// GlowData appends the neon halo sprites for the body (additive pass).
// RGB is pre-multiplied by the halo strength for additive blending.
func (s *Snake) GlowData(buf []float32) []float32 {
	n := len(s.Segments)
	for i := n - 1; i >= 0; i-- {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col := BodyColor(t)
		rad := float64(HeadRadius) + 3
		if i == 0 {
			rad = HeadRadius + 6
		}
		const strength = 0.35
		p := s.Segments[i]
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(rad*2.6),
			float32(col.R)/255*strength, float32(col.G)/255*strength, float32(col.B)/255*strength, 1, 0,
		)
	}
	return buf
}
