package hand

import "image"

// Rect returns the four-corner contour of r.
func Rect(r image.Rectangle) Contour {
	return Contour{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Square returns a square contour with its top-left corner at origin.
func Square(origin image.Point, side int) Contour {
	return Rect(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(side, side))})
}

// PointingHand returns a preset contour of a hand with one raised finger.
// The palm is a 100x100 square below a 20x100 finger; origin is the
// top-left of the bounding box. Index 4 is the fingertip's right corner.
//
//	    5--4
//	    |  |
//	7---6  3---2
//	|          |
//	0----------1
func PointingHand(origin image.Point) Contour {
	pts := []image.Point{
		{X: 0, Y: 200},
		{X: 100, Y: 200},
		{X: 100, Y: 100},
		{X: 60, Y: 100},
		{X: 60, Y: 0},
		{X: 40, Y: 0},
		{X: 40, Y: 100},
		{X: 0, Y: 100},
	}

	c := make(Contour, len(pts))
	for i, p := range pts {
		c[i] = p.Add(origin)
	}
	return c
}
