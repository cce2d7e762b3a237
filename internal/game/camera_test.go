package game

import "testing"

func TestNewCameraCentred(t *testing.T) {
	c := NewCamera(1280, 800)
	if c.X != 640 || c.Y != 400 || c.Zoom != 1.0 {
		t.Fatalf("camera = %+v", c)
	}
}

func TestShakeDecaysToZero(t *testing.T) {
	c := NewCamera(1280, 800)
	c.AddShake(10, 0.3)
	c.UpdateShake(0.1, 42)
	if c.ShakeX == 0 && c.ShakeY == 0 {
		t.Fatal("no shake offset while timer active")
	}
	ex, ey := c.EffectivePos()
	if ex == c.X && ey == c.Y {
		t.Fatal("EffectivePos ignores shake")
	}

	for i := 0; i < 20; i++ {
		c.UpdateShake(0.1, uint64(i))
	}
	if c.ShakeX != 0 || c.ShakeY != 0 || c.ShakeIntensity != 0 {
		t.Fatalf("shake did not settle: %+v", c)
	}
}

func TestAddShakeKeepsStrongest(t *testing.T) {
	c := NewCamera(1280, 800)
	c.AddShake(10, 0.5)
	c.AddShake(4, 0.1)
	if c.ShakeIntensity != 10 || c.ShakeTimer != 0.5 {
		t.Fatalf("weaker shake overrode: intensity=%v timer=%v", c.ShakeIntensity, c.ShakeTimer)
	}
}
