package game

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGenerateSoundBuffers(t *testing.T) {
	kinds := []struct {
		name string
		kind SoundKind
	}{
		{"eat", SoundEat},
		{"explosion", SoundExplosion},
		{"gameover", SoundGameOver},
		{"menu", SoundMenuSelect},
	}
	for _, k := range kinds {
		buf := generateSound(k.kind)
		if len(buf) == 0 {
			t.Errorf("%s: empty buffer", k.name)
			continue
		}
		if len(buf)%8 != 0 {
			t.Errorf("%s: len %d not a whole stereo float32 frame count", k.name, len(buf))
		}
		peak := 0.0
		for i := 0; i < len(buf); i += 4 {
			s := float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
			if a := math.Abs(s); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			t.Errorf("%s: silent buffer", k.name)
		}
		if peak > 1.0 {
			t.Errorf("%s: peak %v clips", k.name, peak)
		}
	}
}

func TestGenerateSoundDeterministic(t *testing.T) {
	a := generateSound(SoundExplosion)
	b := generateSound(SoundExplosion)
	if len(a) != len(b) {
		t.Fatal("lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestADSREnvelope(t *testing.T) {
	if v := adsr(0, 0.1, 0.2, 0.5, 0.1); v != 0 {
		t.Fatalf("attack start = %v", v)
	}
	if v := adsr(0.1, 0.1, 0.2, 0.5, 0.1); math.Abs(v-1) > 1e-9 {
		t.Fatalf("attack peak = %v", v)
	}
	if v := adsr(0.5, 0.1, 0.2, 0.5, 0.1); v != 0.5 {
		t.Fatalf("sustain = %v", v)
	}
	if v := adsr(1.0, 0.1, 0.2, 0.5, 0.1); math.Abs(v) > 1e-9 {
		t.Fatalf("release end = %v", v)
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-10, -1.5, -1, 0, 0.5, 1, 1.5, 10} {
		y := softSat(x)
		if y < -1 || y > 1 {
			t.Fatalf("softSat(%v) = %v out of [-1,1]", x, y)
		}
	}
	if softSat(0) != 0 {
		t.Fatal("softSat not zero at zero")
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: make([]byte, 100)}
	p := make([]byte, 64)
	n, err := r.Read(p)
	if n != 64 || err != nil {
		t.Fatalf("first read: n=%d err=%v", n, err)
	}
	n, err = r.Read(p)
	if n != 36 || err != nil {
		t.Fatalf("second read: n=%d err=%v", n, err)
	}
	if _, err = r.Read(p); err == nil {
		t.Fatal("expected EOF")
	}
}

func TestPlaySoundWithoutInit(t *testing.T) {
	// Must be a no-op, not a panic, when audio never initialized.
	prev := globalAudio
	globalAudio = nil
	defer func() { globalAudio = prev }()
	PlaySound(SoundEat)
	SetMuted(true)
	SetSoundSamples(SoundEat, []byte{0})
}
