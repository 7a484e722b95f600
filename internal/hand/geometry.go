package hand

import "math"

// Moments holds the zeroth and first order spatial moments of a contour.
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
}

// Geometry computes area and moments of a contour.
type Geometry interface {
	Area(c Contour) float64
	Moments(c Contour) Moments
}

// PolygonGeometry treats a contour as a simple polygon.
// Results match OpenCV's contourArea and moments for point contours.
type PolygonGeometry struct{}

// Area returns the unsigned shoelace area of the contour.
func (PolygonGeometry) Area(c Contour) float64 {
	if len(c) < 3 {
		return 0
	}

	var twice float64
	for i := range c {
		a := c[i]
		b := c[(i+1)%len(c)]
		twice += float64(a.X*b.Y - b.X*a.Y)
	}

	return math.Abs(twice) / 2
}

// Moments returns the polygon moments computed with Green's theorem.
// Moments of a clockwise contour are negated so that M00 is never negative.
func (PolygonGeometry) Moments(c Contour) Moments {
	if len(c) < 3 {
		return Moments{}
	}

	var m Moments
	for i := range c {
		a := c[i]
		b := c[(i+1)%len(c)]
		cross := float64(a.X*b.Y - b.X*a.Y)
		m.M00 += cross
		m.M10 += float64(a.X+b.X) * cross
		m.M01 += float64(a.Y+b.Y) * cross
	}

	m.M00 /= 2
	m.M10 /= 6
	m.M01 /= 6

	if m.M00 < 0 {
		m.M00, m.M10, m.M01 = -m.M00, -m.M10, -m.M01
	}

	return m
}
