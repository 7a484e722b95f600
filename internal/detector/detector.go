// Package detector finds hands and fingertips in video frames using GoCV (OpenCV).
package detector

import (
	"image"

	"github.com/ayusman/tiptrack/internal/hand"
	"gocv.io/x/gocv"
)

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns the hands found in it.
	// A frame without hands yields a Result with nil Left and Right.
	Detect(frame *gocv.Mat) (*Result, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Hand is a single hand found in a frame.
// Centroid is nil for a zero-area contour. DefectError holds the reason
// convexity defects could not be computed, if any.
type Hand struct {
	Contour     hand.Contour    `json:"-"`
	Area        float64         `json:"area"`
	Centroid    *hand.Point     `json:"centroid,omitempty"`
	Bounds      image.Rectangle `json:"bounds"`
	Defects     []hand.Defect   `json:"defects,omitempty"`
	DefectError string          `json:"defect_error,omitempty"`
	Fingertip   hand.Fingertip  `json:"fingertip"`
}

// Result is the outcome of detecting hands in one frame.
type Result struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Left   *Hand  `json:"left,omitempty"`
	Right  *Hand  `json:"right,omitempty"`
}

// Hands returns the detected hands, left first.
func (r *Result) Hands() []*Hand {
	if r == nil {
		return nil
	}

	var hands []*Hand
	if r.Left != nil {
		hands = append(hands, r.Left)
	}
	if r.Right != nil {
		hands = append(hands, r.Right)
	}
	return hands
}

// Config holds configuration options for hand detection.
type Config struct {
	// Hand holds the area and fingertip ratio heuristics.
	Hand hand.Config

	// SkinLower and SkinUpper bound the HSV skin colour range (OpenCV scale: H 0-180).
	SkinLower gocv.Scalar
	SkinUpper gocv.Scalar

	// BlurSize is the Gaussian blur kernel size applied to the skin mask; must be odd.
	BlurSize int

	// MorphSize is the elliptical kernel size used to open and close the mask.
	MorphSize int
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Hand:      hand.DefaultConfig(),
		SkinLower: gocv.NewScalar(0, 48, 80, 0),
		SkinUpper: gocv.NewScalar(20, 255, 255, 0),
		BlurSize:  5,
		MorphSize: 5,
	}
}
