package hand

import (
	"fmt"
	"math"
)

// Fingertip finds the defect start point farthest from the centroid and
// reports it as a fingertip when (h - tip.y) / (h - centroid.y) exceeds
// TipRatio. h is a reference height, usually the frame height.
//
// Points with centroid.Y - p.Y < 0 (below the centroid in image space) are
// excluded from ranking. If every point is excluded the first defect is
// ranked anyway.
//
// Nil or empty defects, or a nil centroid, yield an undetected Fingertip.
func (l *Locator) Fingertip(defects []Defect, contour Contour, centroid *Point, h float64) (Fingertip, error) {
	if len(defects) == 0 || centroid == nil {
		return Fingertip{}, nil
	}

	best := -1
	bestDist := math.Inf(-1)
	for i, d := range defects {
		if d.Start < 0 || d.Start >= len(contour) {
			return Fingertip{}, fmt.Errorf("defect %d start %d of %d points: %w", i, d.Start, len(contour), ErrInvalidDefect)
		}

		p := contour[d.Start]
		sx, sy := float64(p.X), float64(p.Y)

		dist := math.Hypot(centroid.X-sx, centroid.Y-sy)
		if centroid.Y-sy < 0 {
			dist = -1
		}

		if dist > bestDist {
			best, bestDist = i, dist
		}
	}

	if h == centroid.Y {
		return Fingertip{}, ErrInvalidHeight
	}

	tip := contour[defects[best].Start]
	yratio := (h - float64(tip.Y)) / (h - centroid.Y)
	if yratio <= l.config.TipRatio {
		return Fingertip{}, nil
	}

	return Fingertip{Detected: true, Location: &tip}, nil
}
