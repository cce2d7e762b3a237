package track

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// netInputSize is the square input resolution the hand-landmark model expects.
const netInputSize = 224

// LandmarkNet runs a hand-landmark DNN (MediaPipe-style ONNX export)
// through gocv. One forward pass per frame; the model emits 21 keypoints
// and a hand-presence score.
type LandmarkNet struct {
	net      gocv.Net
	cfg      Config
	outNames []string
}

// NewLandmarkNet loads the model file. A missing or unreadable model is an
// error — there is no game without the detector.
func NewLandmarkNet(modelPath string, cfg Config) (*LandmarkNet, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("read hand-landmark model %q: empty network", modelPath)
	}
	if cfg.MaxHands <= 0 {
		cfg.MaxHands = DefaultConfig().MaxHands
	}
	return &LandmarkNet{
		net:      net,
		cfg:      cfg,
		outNames: outputNames(&net),
	}, nil
}

// outputNames resolves the net's unconnected output layer names, the usual
// gocv idiom for running all heads of a model in one call.
func outputNames(net *gocv.Net) []string {
	var names []string
	layers := net.GetLayerNames()
	for _, i := range net.GetUnconnectedOutLayers() {
		if i > 0 && int(i) <= len(layers) {
			names = append(names, layers[i-1])
		}
	}
	return names
}

// Detect runs one inference pass and returns at most MaxHands results.
func (d *LandmarkNet) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	blob := gocv.BlobFromImage(*frame, 1.0/255.0,
		image.Pt(netInputSize, netInputSize),
		gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")

	outs := d.net.ForwardLayers(d.outNames)
	coords, score := splitOutputs(outs)
	for i := range outs {
		outs[i].Close()
	}
	if coords == nil {
		return nil, fmt.Errorf("model produced no landmark output")
	}

	hand, ok := parseLandmarks(coords, score, d.cfg.MinConfidence)
	if !ok {
		return nil, nil
	}
	hands := []HandLandmarks{hand}
	if len(hands) > d.cfg.MaxHands {
		hands = hands[:d.cfg.MaxHands]
	}
	return hands, nil
}

// splitOutputs classifies the model's output tensors by size: the 63-float
// tensor carries the 21 xyz keypoints, a 1-float tensor the presence score.
// Models without a score head default to full confidence.
func splitOutputs(outs []gocv.Mat) (coords []float32, score float64) {
	score = 1.0
	for i := range outs {
		data, err := outs[i].DataPtrFloat32()
		if err != nil {
			continue
		}
		switch {
		case len(data) >= 3*LandmarkCount && coords == nil:
			coords = append([]float32(nil), data[:3*LandmarkCount]...)
		case len(data) == 1:
			score = float64(data[0])
		}
	}
	return coords, score
}

// parseLandmarks converts raw model floats into normalized landmarks.
// Some exports report keypoints in input-pixel units (0..224), others
// already normalized; values are scaled down when they exceed the
// normalized range.
func parseLandmarks(coords []float32, score, minConfidence float64) (HandLandmarks, bool) {
	if score < minConfidence {
		return HandLandmarks{}, false
	}

	scale := 1.0
	maxAbs := 0.0
	for i := 0; i < 3*LandmarkCount; i += 3 {
		for _, v := range coords[i : i+2] {
			if a := float64(v); a > maxAbs {
				maxAbs = a
			}
		}
	}
	if maxAbs > 1.5 {
		scale = 1.0 / netInputSize
	}

	var hand HandLandmarks
	hand.Score = score
	for i := 0; i < LandmarkCount; i++ {
		hand.Points[i] = Landmark{
			X: float64(coords[i*3]) * scale,
			Y: float64(coords[i*3+1]) * scale,
			Z: float64(coords[i*3+2]) * scale,
		}
	}
	return hand, true
}

// Close releases the network.
func (d *LandmarkNet) Close() error {
	return d.net.Close()
}
