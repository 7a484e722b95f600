package hand

import (
	"image"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestPolygonGeometry_Area(t *testing.T) {
	tests := []struct {
		name    string
		contour Contour
		want    float64
	}{
		{
			name:    "unit square",
			contour: Square(image.Pt(0, 0), 1),
			want:    1,
		},
		{
			name:    "100 px square",
			contour: Square(image.Pt(20, 30), 100),
			want:    10000,
		},
		{
			name:    "clockwise order is unsigned",
			contour: Contour{{0, 0}, {0, 10}, {10, 10}, {10, 0}},
			want:    100,
		},
		{
			name:    "pointing hand",
			contour: PointingHand(image.Pt(0, 0)),
			want:    12000,
		},
		{
			name:    "two points",
			contour: Contour{{0, 0}, {5, 5}},
			want:    0,
		},
		{
			name:    "empty",
			contour: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolygonGeometry{}.Area(tt.contour)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("Area() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestPolygonGeometry_Moments(t *testing.T) {
	t.Run("square centroid", func(t *testing.T) {
		m := PolygonGeometry{}.Moments(Square(image.Pt(10, 20), 40))

		if math.Abs(m.M00-1600) > epsilon {
			t.Errorf("M00 = %f, want 1600", m.M00)
		}
		if cx := m.M10 / m.M00; math.Abs(cx-30) > epsilon {
			t.Errorf("centroid x = %f, want 30", cx)
		}
		if cy := m.M01 / m.M00; math.Abs(cy-40) > epsilon {
			t.Errorf("centroid y = %f, want 40", cy)
		}
	})

	t.Run("orientation does not change sign", func(t *testing.T) {
		ccw := Contour{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
		cw := Contour{{0, 0}, {0, 10}, {10, 10}, {10, 0}}

		a := PolygonGeometry{}.Moments(ccw)
		b := PolygonGeometry{}.Moments(cw)

		if a != b {
			t.Errorf("moments differ by orientation: %+v vs %+v", a, b)
		}
		if a.M00 <= 0 {
			t.Errorf("M00 = %f, want positive", a.M00)
		}
	})

	t.Run("collinear contour is degenerate", func(t *testing.T) {
		m := PolygonGeometry{}.Moments(Contour{{0, 0}, {5, 0}, {10, 0}})
		if m.M00 != 0 {
			t.Errorf("M00 = %f, want 0", m.M00)
		}
	})
}
