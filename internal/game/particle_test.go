package game

import "testing"

func TestSpawnExplosionCount(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 1)
	ps.SpawnExplosion(300, 300)
	if len(ps.P) != ParticleCount {
		t.Fatalf("spawned %d, want %d", len(ps.P), ParticleCount)
	}
	for i, p := range ps.P {
		if p.X != 300 || p.Y != 300 {
			t.Fatalf("particle %d starts at (%v,%v)", i, p.X, p.Y)
		}
		if p.MaxLife != ParticleLife {
			t.Fatalf("particle %d MaxLife = %v", i, p.MaxLife)
		}
		if p.Col.R != 255 {
			t.Fatalf("particle %d not in warm palette: %+v", i, p.Col)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 2)
	ps.SpawnExplosion(100, 100)
	ps.Update(ParticleLife / 2)
	if len(ps.P) != ParticleCount {
		t.Fatalf("particles died early: %d left", len(ps.P))
	}
	ps.Update(ParticleLife)
	if len(ps.P) != 0 {
		t.Fatalf("%d particles survived past MaxLife", len(ps.P))
	}
}

func TestParticleDamping(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 3)
	ps.Add(Particle{X: 0, Y: 0, VX: 100, VY: 0, MaxLife: 10})
	ps.Update(0.1)
	p := ps.P[0]
	if p.X <= 0 {
		t.Fatal("particle did not move")
	}
	if p.VX >= 100 {
		t.Fatalf("velocity not damped: %v", p.VX)
	}
}

func TestParticleOverwriteWhenFull(t *testing.T) {
	ps := NewParticleSystem(4, 4)
	for i := 0; i < 10; i++ {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	if len(ps.P) != 4 {
		t.Fatalf("len = %d, want capped at 4", len(ps.P))
	}
}

func TestParticleRenderDataFades(t *testing.T) {
	ps := NewParticleSystem(MaxParticles, 5)
	ps.Add(Particle{X: 10, Y: 20, Size: 5, Life: 0.25, MaxLife: 0.5, Col: RGB{R: 255}})
	buf := ps.RenderData(nil)
	if len(buf) != 8 {
		t.Fatalf("buf len = %d, want 8", len(buf))
	}
	if buf[6] != 0.5 {
		t.Fatalf("alpha = %v, want 0.5 at half life", buf[6])
	}
	if buf[2] != 10 {
		t.Fatalf("size = %v, want 10 (2x radius)", buf[2])
	}
}
