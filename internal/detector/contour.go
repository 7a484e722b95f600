package detector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ayusman/tiptrack/internal/hand"
	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

// ContourDetector implements Detector by segmenting skin regions and
// analyzing the largest contours.
type ContourDetector struct {
	config    Config
	segmenter *Segmenter
	locator   *hand.Locator
	mu        sync.Mutex
	closed    bool
}

// NewContourDetector creates a new ContourDetector.
// The caller must Close the detector to release its OpenCV resources.
func NewContourDetector(config Config) *ContourDetector {
	return &ContourDetector{
		config:    config,
		segmenter: NewSegmenter(config),
		locator:   hand.NewLocator(config.Hand, CVGeometry{}),
	}
}

// Detect segments the frame, selects up to two hands and looks for a
// fingertip on each. The frame height is the reference height for the
// fingertip ratio.
func (d *ContourDetector) Detect(frame *gocv.Mat) (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, errors.New("detector is closed")
	}

	mask, err := d.segmenter.Segment(frame)
	defer mask.Close()
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:     uuid.New().String(),
		Width:  frame.Cols(),
		Height: frame.Rows(),
	}

	contours := ExtractContours(mask)
	if len(contours) == 0 {
		return result, nil
	}

	hands, err := d.locator.Order(contours)
	if err != nil {
		return nil, fmt.Errorf("order hands: %w", err)
	}

	if hands.Left != nil {
		if result.Left, err = d.analyze(hands.Left, float64(result.Height)); err != nil {
			return nil, fmt.Errorf("left hand: %w", err)
		}
	}
	if result.Right, err = d.analyze(hands.Right, float64(result.Height)); err != nil {
		return nil, fmt.Errorf("right hand: %w", err)
	}

	return result, nil
}

// analyze computes the geometry and fingertip of a single hand contour.
// A contour OpenCV cannot compute defects for keeps its geometry; the
// failure is recorded in DefectError and no fingertip is reported.
func (d *ContourDetector) analyze(contour hand.Contour, h float64) (*Hand, error) {
	pv := gocv.NewPointVectorFromPoints(contour)
	defer pv.Close()

	hd := &Hand{
		Contour: contour,
		Area:    gocv.ContourArea(pv),
		Bounds:  gocv.BoundingRect(pv),
	}

	centroid, err := d.locator.Centroid(contour)
	if errors.Is(err, hand.ErrDegenerateContour) {
		// No centroid, so no fingertip either.
		return hd, nil
	}
	if err != nil {
		return nil, err
	}
	hd.Centroid = &centroid

	defects, err := ConvexityDefects(contour)
	if err != nil {
		hd.DefectError = err.Error()
		return hd, nil
	}
	hd.Defects = defects

	tip, err := d.locator.Fingertip(defects, contour, &centroid, h)
	if errors.Is(err, hand.ErrInvalidHeight) {
		return hd, nil
	}
	if err != nil {
		return nil, err
	}
	hd.Fingertip = tip

	return hd, nil
}

// Close releases the detector's OpenCV resources.
func (d *ContourDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.segmenter.Close()
}
