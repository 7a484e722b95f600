package detector

import (
	"image"

	"github.com/ayusman/tiptrack/internal/hand"
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	result *Result
	err    error
	calls  int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetResult sets the result that will be returned by Detect.
func (m *MockDetector) SetResult(r *Result) {
	m.result = r
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls returns the number of times Detect has been called.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Detect returns the pre-configured result or error.
// Without a configured result it returns an empty Result sized to the frame.
func (m *MockDetector) Detect(frame *gocv.Mat) (*Result, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}

	r := &Result{ID: "mock"}
	if frame != nil {
		r.Width, r.Height = frame.Cols(), frame.Rows()
	}
	return r, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingResult returns a preset Result with a single right hand raising
// one finger, as seen in a 640x480 frame.
func PointingResult() *Result {
	contour := hand.PointingHand(image.Pt(270, 250))
	tip := image.Pt(310, 250)

	return &Result{
		ID:     "pointing",
		Width:  640,
		Height: 480,
		Right: &Hand{
			Contour:  contour,
			Area:     12000,
			Centroid: &hand.Point{X: 320, Y: 250 + 400.0/3},
			Bounds:   image.Rect(270, 250, 370, 450),
			Defects: []hand.Defect{
				{Start: 2, End: 4, Far: 3, Depth: 37.14},
				{Start: 5, End: 7, Far: 6, Depth: 37.14},
			},
			Fingertip: hand.Fingertip{Detected: true, Location: &tip},
		},
	}
}
