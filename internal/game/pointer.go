package game

// Pointer is the fingertip-driven steering target in screen pixels. While a
// hand is visible the target tracks the fingertip directly; when tracking is
// lost it drifts gently toward the screen centre instead of freezing, so the
// snake keeps moving.
type Pointer struct {
	X, Y float64

	// Last observed fingertip, normalized to the camera frame. Used to
	// place the marker dot on the preview overlay.
	FrameX, FrameY float64
	Present        bool

	screenW, screenH float64
}

// NewPointer starts the target at the screen centre.
func NewPointer(screenW, screenH int) *Pointer {
	return &Pointer{
		X:       float64(screenW) / 2,
		Y:       float64(screenH) / 2,
		FrameX:  0.5,
		FrameY:  0.5,
		screenW: float64(screenW),
		screenH: float64(screenH),
	}
}

// Observe snaps the target to a fingertip position normalized to the camera
// frame (0..1 on both axes).
func (p *Pointer) Observe(nx, ny float64) {
	p.FrameX, p.FrameY = nx, ny
	p.X = nx * p.screenW
	p.Y = ny * p.screenH
	p.Present = true
}

// Miss is called on frames with no detected hand: the target keeps 92% of
// its position and drifts the rest of the way toward the centre.
func (p *Pointer) Miss() {
	p.Present = false
	p.X = p.X*0.92 + p.screenW*0.08*0.5
	p.Y = p.Y*0.92 + p.screenH*0.08*0.5
}

// Reset recentres the target, used when a new round starts.
func (p *Pointer) Reset() {
	p.X = p.screenW / 2
	p.Y = p.screenH / 2
	p.Present = false
}
