package game

import "testing"

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(9), NewRand(9)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatal("same seed diverged")
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(11)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(10); v < 0 || v >= 10 {
			t.Fatalf("Intn out of range: %d", v)
		}
		if v := r.Range(5, 8); v < 5 || v > 8 {
			t.Fatalf("Range out of range: %d", v)
		}
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
		if v := r.RangeF(-2, 2); v < -2 || v >= 2 {
			t.Fatalf("RangeF out of range: %v", v)
		}
	}
	if r.Intn(0) != 0 || r.Range(5, 5) != 5 || r.RangeF(3, 3) != 3 {
		t.Fatal("degenerate ranges")
	}
}

func TestClamp(t *testing.T) {
	if clamp(5, 0, 10) != 5 || clamp(-1, 0, 10) != 0 || clamp(11, 0, 10) != 10 {
		t.Fatal("clamp wrong")
	}
	if clampF(0.5, 0, 1) != 0.5 || clampF(-1, 0, 1) != 0 || clampF(2, 0, 1) != 1 {
		t.Fatal("clampF wrong")
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{R: 0, G: 100, B: 200}
	b := RGB{R: 100, G: 200, B: 0}
	if got := lerpRGB(a, b, 0); got != a {
		t.Fatalf("t=0: %+v", got)
	}
	if got := lerpRGB(a, b, 1); got != b {
		t.Fatalf("t=1: %+v", got)
	}
	mid := lerpRGB(a, b, 0.5)
	if mid.R != 50 || mid.G != 150 || mid.B != 100 {
		t.Fatalf("t=0.5: %+v", mid)
	}
}

func TestHash2DStable(t *testing.T) {
	if hash2D(1, 2, 3) != hash2D(1, 2, 3) {
		t.Fatal("hash2D not deterministic")
	}
	if hash2D(1, 2, 3) == hash2D(1, 3, 2) {
		t.Fatal("hash2D symmetric in x/y")
	}
}

func TestDist(t *testing.T) {
	if d := dist(0, 0, 3, 4); d != 5 {
		t.Fatalf("dist = %v, want 5", d)
	}
}

func TestBodyColorEndpoints(t *testing.T) {
	head := BodyColor(0)
	tail := BodyColor(1)
	if head == tail {
		t.Fatal("gradient endpoints identical")
	}
	if head.R != 220 || head.G != 140 || head.B != 200 {
		t.Fatalf("head colour = %+v", head)
	}
	if tail.R != 60 || tail.G != 200 || tail.B != 100 {
		t.Fatalf("tail colour = %+v", tail)
	}
}
