package game

import "math"

// Particle is one spark of the explosion burst on eating.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64
	MaxLife float64
	Col     RGB
}

// ParticleSystem holds the live sparks for the cosmetic eat explosion.
type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// SpawnExplosion bursts ParticleCount sparks radially from (x, y) in warm
// food colours.
func (ps *ParticleSystem) SpawnExplosion(x, y float64) {
	r := NewRand(hash2D(ps.seed^0xA5A5A5A5, int(x), int(y)))
	for range ParticleCount {
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(120, 420)
		ps.Add(Particle{
			X: x, Y: y,
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size:    float64(r.Range(3, 7)),
			MaxLife: ParticleLife,
			Col: RGB{
				R: 255,
				G: uint8(r.Range(120, 220)),
				B: uint8(r.Range(0, 90)),
			},
		})
	}
}

// Update advances live sparks and removes expired ones. Velocity damps by
// 0.99 per frame at TargetFPS, scaled to the actual dt.
func (ps *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	damp := math.Pow(0.99, dt*TargetFPS)
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= damp
		p.VY *= damp
		i++
	}
}

// RenderData appends live sparks as alpha-fading circle sprites.
// Format: [x, y, size, r, g, b, a, rotation] per sprite.
func (ps *ParticleSystem) RenderData(buf []float32) []float32 {
	for i := range ps.P {
		p := &ps.P[i]
		frac := 1.0 - p.Life/p.MaxLife
		if frac <= 0 {
			continue
		}
		buf = append(buf,
			float32(p.X), float32(p.Y), float32(p.Size*2),
			float32(p.Col.R)/255, float32(p.Col.G)/255, float32(p.Col.B)/255,
			float32(frac), 0,
		)
	}
	return buf
}
