package hand

import "fmt"

// Locator selects hand contours and fingertips using fixed heuristics.
// A Locator is immutable and safe for concurrent use.
type Locator struct {
	config Config
	geom   Geometry
}

// NewLocator creates a Locator with the given configuration and geometry.
// Non-positive thresholds fall back to their defaults and a nil geometry
// falls back to PolygonGeometry, which suits tests and synthetic contours;
// frames from OpenCV should use detector.CVGeometry.
func NewLocator(config Config, geom Geometry) *Locator {
	if config.MinHandArea <= 0 {
		config.MinHandArea = DefaultMinHandArea
	}
	if config.TipRatio <= 0 {
		config.TipRatio = DefaultTipRatio
	}
	if geom == nil {
		geom = PolygonGeometry{}
	}

	return &Locator{
		config: config,
		geom:   geom,
	}
}

// Config returns the heuristics in use.
func (l *Locator) Config() Config {
	return l.config
}

// LargestPair returns the indices of the two contours with the greatest area.
// second is NoContour when the second largest area is below MinHandArea.
// On equal area the lower index ranks higher.
func (l *Locator) LargestPair(contours []Contour) (largest, second int, err error) {
	if len(contours) < 2 {
		return NoContour, NoContour, fmt.Errorf("largest pair of %d contours: %w", len(contours), ErrInsufficientContours)
	}

	first := l.geom.Area(contours[0])
	next := l.geom.Area(contours[1])

	largest, second = 0, 1
	largestArea, secondArea := first, next
	if next > first {
		largest, second = 1, 0
		largestArea, secondArea = next, first
	}

	for i := 2; i < len(contours); i++ {
		area := l.geom.Area(contours[i])
		if area > largestArea {
			// Old largest becomes second
			second, secondArea = largest, largestArea
			largest, largestArea = i, area
		} else if area > secondArea {
			second, secondArea = i, area
		}
	}

	if secondArea < l.config.MinHandArea {
		second = NoContour
	}

	return largest, second, nil
}

// Centroid returns the centre of mass of the contour derived from its moments.
func (l *Locator) Centroid(c Contour) (Point, error) {
	m := l.geom.Moments(c)
	if m.M00 == 0 {
		return Point{}, ErrDegenerateContour
	}

	return Point{X: m.M10 / m.M00, Y: m.M01 / m.M00}, nil
}

// Order returns the hands in the contour set ordered left to right by
// centroid x. A single contour is always returned as the right hand.
// Centroids are compared at sub-pixel precision, without truncating to whole
// pixels; only exactly equal x puts the largest contour on the right.
func (l *Locator) Order(contours []Contour) (Hands, error) {
	switch len(contours) {
	case 0:
		return Hands{}, fmt.Errorf("order hands: %w", ErrInsufficientContours)
	case 1:
		return Hands{Right: contours[0]}, nil
	}

	largest, second, err := l.LargestPair(contours)
	if err != nil {
		return Hands{}, err
	}

	if second == NoContour {
		return Hands{Right: contours[largest]}, nil
	}

	first, err := l.Centroid(contours[largest])
	if err != nil {
		return Hands{}, fmt.Errorf("centroid of contour %d: %w", largest, err)
	}
	other, err := l.Centroid(contours[second])
	if err != nil {
		return Hands{}, fmt.Errorf("centroid of contour %d: %w", second, err)
	}

	if first.X < other.X {
		return Hands{Left: contours[largest], Right: contours[second]}, nil
	}
	return Hands{Left: contours[second], Right: contours[largest]}, nil
}
