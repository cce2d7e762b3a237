// Package track captures webcam frames and locates hand landmarks with an
// external DNN model. The game treats the model as a black box: frame in,
// normalized landmark coordinates out.
package track

import "gocv.io/x/gocv"

// LandmarkCount is the number of keypoints the hand model reports.
const LandmarkCount = 21

// IndexFingertip is the landmark index of the tip of the index finger,
// the point that steers the snake.
const IndexFingertip = 8

// Landmark is a single tracked keypoint in coordinates normalized to the
// source frame (0..1 on both axes; Z is relative depth).
type Landmark struct {
	X, Y, Z float64
}

// HandLandmarks is one detected hand: its keypoints plus the model's
// confidence that a hand is present at all.
type HandLandmarks struct {
	Points [LandmarkCount]Landmark
	Score  float64
}

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect.
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:      1,
		MinConfidence: 0.5,
	}
}
