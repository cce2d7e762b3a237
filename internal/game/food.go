package game

import "math"

// Food is the single pickup point on screen.
type Food struct {
	X, Y float64
}

// RenderData appends the food as two discs: the red core and a small pale
// seed highlight on top. Format: [x, y, size, r, g, b, a, rotation].
func (f Food) RenderData(buf []float32) []float32 {
	core := Palette.FoodCore
	buf = append(buf,
		float32(f.X), float32(f.Y), FoodRadius*2,
		float32(core.R)/255, float32(core.G)/255, float32(core.B)/255, 1, 0,
	)
	seed := Palette.FoodSeed
	seedRad := math.Max(3, FoodRadius/3.0)
	buf = append(buf,
		float32(f.X), float32(f.Y), float32(seedRad*2),
		float32(seed.R)/255, float32(seed.G)/255, float32(seed.B)/255, 1, 0,
	)
	return buf
}

// GlowData appends the food's neon halo for the additive pass. RGB is
// pre-multiplied by the halo strength.
func (f Food) GlowData(buf []float32) []float32 {
	glow := Palette.FoodGlow
	const strength = 0.45
	rad := float64(FoodRadius + 6)
	return append(buf,
		float32(f.X), float32(f.Y), float32(rad*2.6),
		float32(glow.R)/255*strength, float32(glow.G)/255*strength, float32(glow.B)/255*strength, 1, 0,
	)
}

// SpawnFood picks a food position by rejection sampling. Constraints:
// outside every obstacle, below the camera-preview band (plus FoodGapBelow),
// and at least 120 px from the snake head so it never spawns into an
// immediate bite. After 800 failed tries it falls back to a spot near the
// screen centre.
func SpawnFood(r *Rand, screenW, screenH, camBottom int, obstacles []Rect, snake *Snake) Food {
	minY := camBottom + FoodGapBelow
	if minY < ObstacleTopPad {
		minY = ObstacleTopPad
	}
	hx, hy := snake.Head()

	for tries := 0; tries < 800; tries++ {
		fx := float64(r.Range(60, screenW-60))
		fy := float64(r.Range(minY, screenH-60))
		ok := true
		for _, o := range obstacles {
			if o.Contains(fx, fy) {
				ok = false
				break
			}
		}
		if ok && dist(fx, fy, hx, hy) < 120 {
			ok = false
		}
		if ok {
			return Food{X: fx, Y: fy}
		}
	}

	fy := float64(minY)
	if c := float64(screenH) / 2; c > fy {
		fy = c
	}
	return Food{X: float64(screenW)/2 + float64(r.Range(-120, 120)), Y: fy}
}
