// Package hand provides contour geometry for locating hands and fingertips
// in a video frame.
package hand

import (
	"errors"
	"image"
)

// NoContour is returned in place of an index when no qualifying contour exists.
const NoContour = -1

// Default heuristics, tuned for a 640x480 webcam frame.
const (
	// DefaultMinHandArea is the smallest area in px² for a second contour to count as a hand.
	DefaultMinHandArea = 4000.0
	// DefaultTipRatio is the vertical ratio a defect must exceed to count as a fingertip.
	DefaultTipRatio = 2.0
)

var (
	// ErrInsufficientContours is returned when too few contours are supplied.
	ErrInsufficientContours = errors.New("insufficient contours")
	// ErrDegenerateContour is returned when a contour has zero area moment.
	ErrDegenerateContour = errors.New("degenerate contour")
	// ErrInvalidHeight is returned when the reference height equals the centroid y.
	ErrInvalidHeight = errors.New("reference height equals centroid y")
	// ErrInvalidDefect is returned when a defect indexes outside its contour.
	ErrInvalidDefect = errors.New("defect index out of range")
)

// Contour is a closed curve of integer pixel coordinates.
type Contour []image.Point

// Point is a 2D point with floating point coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Defect is a convexity defect of a contour. Start, End and Far index into
// the contour's points; Depth is the distance of Far from the hull in pixels.
type Defect struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Far   int     `json:"far"`
	Depth float64 `json:"depth"`
}

// Fingertip is the outcome of fingertip detection.
// Location is nil unless Detected is true.
type Fingertip struct {
	Detected bool         `json:"detected"`
	Location *image.Point `json:"location,omitempty"`
}

// Hands holds the contours selected as hands. Right is always set when
// returned without error; Left is nil when only one hand qualified.
type Hands struct {
	Left  Contour
	Right Contour
}

// Config holds the detection heuristics.
type Config struct {
	// MinHandArea is the minimum area of the second largest contour (default: 4000).
	MinHandArea float64

	// TipRatio is the yratio a defect must exceed to be a fingertip (default: 2).
	TipRatio float64
}

// DefaultConfig returns a Config with the default heuristics.
func DefaultConfig() Config {
	return Config{
		MinHandArea: DefaultMinHandArea,
		TipRatio:    DefaultTipRatio,
	}
}
