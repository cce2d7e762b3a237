package game

import (
	"encoding/binary"
	"fmt"
	"math"
)

// decodeWAV converts a RIFF/WAVE file into the stereo float32 LE stream the
// audio system plays. PCM16 and float32 sources are accepted, mono or
// stereo; other rates are nearest-neighbour resampled to SampleRate.
func decodeWAV(data []byte) ([]byte, error) {
	if len(data) < 44 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	var (
		format     uint16
		channels   uint16
		rate       uint32
		bits       uint16
		sampleData []byte
	)

	// Walk the chunk list for fmt and data.
	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if body+size > len(data) {
			size = len(data) - body
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("short fmt chunk")
			}
			format = binary.LittleEndian.Uint16(data[body : body+2])
			channels = binary.LittleEndian.Uint16(data[body+2 : body+4])
			rate = binary.LittleEndian.Uint32(data[body+4 : body+8])
			bits = binary.LittleEndian.Uint16(data[body+14 : body+16])
		case "data":
			sampleData = data[body : body+size]
		}
		off = body + size
		if size%2 == 1 {
			off++ // chunks are word aligned
		}
	}

	if sampleData == nil {
		return nil, fmt.Errorf("no data chunk")
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}

	var read func(frame int, ch int) float64
	var frames int
	switch {
	case format == 1 && bits == 16:
		frames = len(sampleData) / (2 * int(channels))
		read = func(frame, ch int) float64 {
			i := (frame*int(channels) + ch) * 2
			v := int16(binary.LittleEndian.Uint16(sampleData[i : i+2]))
			return float64(v) / 32768.0
		}
	case format == 3 && bits == 32:
		frames = len(sampleData) / (4 * int(channels))
		read = func(frame, ch int) float64 {
			i := (frame*int(channels) + ch) * 4
			bitsVal := binary.LittleEndian.Uint32(sampleData[i : i+4])
			return float64(math.Float32frombits(bitsVal))
		}
	default:
		return nil, fmt.Errorf("unsupported format %d/%d-bit", format, bits)
	}
	if frames == 0 {
		return nil, fmt.Errorf("empty data chunk")
	}

	outFrames := frames
	if rate != SampleRate && rate > 0 {
		outFrames = frames * SampleRate / int(rate)
	}

	out := makeBuf(outFrames)
	for i := 0; i < outFrames; i++ {
		src := i
		if outFrames != frames {
			src = i * frames / outFrames
		}
		l := read(src, 0)
		r := l
		if channels == 2 {
			r = read(src, 1)
		}
		putStereoF32LR(out, i, clampF(l, -1, 1), clampF(r, -1, 1))
	}
	return out, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
