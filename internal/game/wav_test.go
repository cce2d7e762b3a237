package game

import (
	"encoding/binary"
	"math"
	"testing"
)

// buildWAV assembles a minimal RIFF/WAVE file for decoder tests.
func buildWAV(format, channels, bits uint16, rate uint32, sampleData []byte) []byte {
	var b []byte
	app16 := func(v uint16) { b = binary.LittleEndian.AppendUint16(b, v) }
	app32 := func(v uint32) { b = binary.LittleEndian.AppendUint32(b, v) }

	b = append(b, "RIFF"...)
	app32(uint32(36 + len(sampleData)))
	b = append(b, "WAVE"...)

	b = append(b, "fmt "...)
	app32(16)
	app16(format)
	app16(channels)
	app32(rate)
	app32(rate * uint32(channels) * uint32(bits) / 8)
	app16(channels * bits / 8)
	app16(bits)

	b = append(b, "data"...)
	app32(uint32(len(sampleData)))
	b = append(b, sampleData...)
	return b
}

func readStereoFrame(buf []byte, i int) (float64, float64) {
	l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:]))
	r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8+4:]))
	return float64(l), float64(r)
}

func TestDecodeWAVPCM16Stereo(t *testing.T) {
	// Two frames: (max, min), (0, half).
	var data []byte
	for _, v := range []int16{32767, -32768, 0, 16384} {
		data = binary.LittleEndian.AppendUint16(data, uint16(v))
	}
	out, err := decodeWAV(buildWAV(1, 2, 16, SampleRate, data))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2*8 {
		t.Fatalf("out len = %d, want 16", len(out))
	}
	l, r := readStereoFrame(out, 0)
	if math.Abs(l-32767.0/32768.0) > 1e-4 || math.Abs(r+1) > 1e-4 {
		t.Fatalf("frame 0 = (%v,%v)", l, r)
	}
	l, r = readStereoFrame(out, 1)
	if l != 0 || math.Abs(r-0.5) > 1e-4 {
		t.Fatalf("frame 1 = (%v,%v)", l, r)
	}
}

func TestDecodeWAVFloat32MonoDuplicates(t *testing.T) {
	var data []byte
	for _, v := range []float32{0.25, -0.5} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
	}
	out, err := decodeWAV(buildWAV(3, 1, 32, SampleRate, data))
	if err != nil {
		t.Fatal(err)
	}
	l, r := readStereoFrame(out, 0)
	if l != 0.25 || r != 0.25 {
		t.Fatalf("mono not duplicated: (%v,%v)", l, r)
	}
}

func TestDecodeWAVResamples(t *testing.T) {
	// 22050 Hz input doubles in length at SampleRate.
	var data []byte
	for i := 0; i < 100; i++ {
		data = binary.LittleEndian.AppendUint16(data, 0)
	}
	out, err := decodeWAV(buildWAV(1, 1, 16, 22050, data))
	if err != nil {
		t.Fatal(err)
	}
	if frames := len(out) / 8; frames != 200 {
		t.Fatalf("frames = %d, want 200", frames)
	}
}

func TestDecodeWAVErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not a wav file at all, nowhere near long enough xx")},
		{"empty", nil},
		{"no data chunk", buildWAV(1, 2, 16, SampleRate, nil)[:44]},
		{"unsupported format", buildWAV(7, 2, 16, SampleRate, make([]byte, 8))},
		{"bad channels", buildWAV(1, 6, 16, SampleRate, make([]byte, 24))},
	}
	for _, tc := range cases {
		if _, err := decodeWAV(tc.data); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
