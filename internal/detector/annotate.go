package detector

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Annotation colours.
var (
	contourColor   = color.RGBA{G: 255, A: 255}
	centroidColor  = color.RGBA{B: 255, A: 255}
	fingertipColor = color.RGBA{R: 255, A: 255}
)

// Annotate draws the hands in result onto frame: contours in green,
// centroids in blue and fingertips in red.
func Annotate(frame *gocv.Mat, result *Result) error {
	if frame == nil || frame.Empty() {
		return ErrEmptyFrame
	}

	for _, hd := range result.Hands() {
		if err := drawHand(frame, hd); err != nil {
			return err
		}
	}
	return nil
}

func drawHand(frame *gocv.Mat, hd *Hand) error {
	if len(hd.Contour) > 0 {
		pvs := gocv.NewPointsVectorFromPoints([][]image.Point{hd.Contour})
		defer pvs.Close()
		if err := gocv.DrawContours(frame, pvs, -1, contourColor, 2); err != nil {
			return fmt.Errorf("draw contour: %w", err)
		}
	}

	if hd.Centroid != nil {
		center := image.Pt(int(hd.Centroid.X), int(hd.Centroid.Y))
		if err := gocv.Circle(frame, center, 5, centroidColor, -1); err != nil {
			return fmt.Errorf("draw centroid: %w", err)
		}
	}

	if hd.Fingertip.Detected && hd.Fingertip.Location != nil {
		if err := gocv.Circle(frame, *hd.Fingertip.Location, 8, fingertipColor, -1); err != nil {
			return fmt.Errorf("draw fingertip: %w", err)
		}
	}
	return nil
}
