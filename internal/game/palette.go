package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Background   RGB
	MenuBg       RGB
	EndBg        RGB
	UI           RGB
	Hint         RGB
	Timer        RGB
	FoodCore     RGB
	FoodGlow     RGB
	FoodSeed     RGB
	HeadCore     RGB
	ObstacleFill RGB
	ObstacleEdge RGB
	ObstacleHalo RGB
	Border       RGB
	Marker       RGB
	MarkerRing   RGB
	ButtonFill   RGB
}{
	Background:   RGB{R: 14, G: 16, B: 22},
	MenuBg:       RGB{R: 12, G: 14, B: 20},
	EndBg:        RGB{R: 8, G: 8, B: 12},
	UI:           RGB{R: 230, G: 230, B: 250},
	Hint:         RGB{R: 200, G: 200, B: 230},
	Timer:        RGB{R: 255, G: 220, B: 140},
	FoodCore:     RGB{R: 255, G: 90, B: 90},
	FoodGlow:     RGB{R: 255, G: 110, B: 90},
	FoodSeed:     RGB{R: 255, G: 220, B: 180},
	HeadCore:     RGB{R: 255, G: 255, B: 220},
	ObstacleFill: RGB{R: 40, G: 40, B: 56},
	ObstacleEdge: RGB{R: 90, G: 140, B: 170},
	ObstacleHalo: RGB{R: 30, G: 70, B: 90},
	Border:       RGB{R: 40, G: 70, B: 90},
	Marker:       RGB{R: 255, G: 240, B: 80},
	MarkerRing:   RGB{R: 255, G: 255, B: 200},
	ButtonFill:   RGB{R: 30, G: 140, B: 220},
}

// BodyColor returns the neon gradient colour for a segment at position t
// along the body (0 = head, 1 = tail).
func BodyColor(t float64) RGB {
	t = clampF(t, 0, 1)
	return RGB{
		R: uint8(60 + (1-t)*160),
		G: uint8(200 - (1-t)*60),
		B: uint8(200 - t*100),
	}
}
