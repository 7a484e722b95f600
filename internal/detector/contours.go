package detector

import (
	"fmt"

	"github.com/ayusman/tiptrack/internal/hand"
	"gocv.io/x/gocv"
)

// defectDepthScale converts OpenCV's fixed-point defect depth to pixels.
const defectDepthScale = 256.0

// ExtractContours returns the external contours of a binary mask.
func ExtractContours(mask gocv.Mat) []hand.Contour {
	found := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	contours := make([]hand.Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		contours = append(contours, hand.Contour(found.At(i).ToPoints()))
	}
	return contours
}

// ConvexityDefects returns the convexity defects of contour.
// Contours with fewer than four points have no defects and yield nil.
// OpenCV rejects self-intersecting contours; that failure is returned as an error.
func ConvexityDefects(contour hand.Contour) ([]hand.Defect, error) {
	if len(contour) < 4 {
		return nil, nil
	}

	pv := gocv.NewPointVectorFromPoints(contour)
	defer pv.Close()

	hull := gocv.NewMat()
	defer hull.Close()
	if err := gocv.ConvexHull(pv, &hull, false, false); err != nil {
		return nil, fmt.Errorf("convex hull: %w", err)
	}

	if hull.Rows() < 3 {
		return nil, nil
	}

	result := gocv.NewMat()
	defer result.Close()
	if err := gocv.ConvexityDefects(pv, hull, &result); err != nil {
		return nil, fmt.Errorf("convexity defects: %w", err)
	}

	if result.Empty() {
		return []hand.Defect{}, nil
	}

	// Each row is a Vec4i of start, end, farthest point and fixed-point depth.
	data, err := result.DataPtrInt32()
	if err != nil {
		return nil, fmt.Errorf("read convexity defects: %w", err)
	}

	defects := make([]hand.Defect, 0, len(data)/4)
	for i := 0; i+3 < len(data); i += 4 {
		defects = append(defects, hand.Defect{
			Start: int(data[i]),
			End:   int(data[i+1]),
			Far:   int(data[i+2]),
			Depth: float64(data[i+3]) / defectDepthScale,
		})
	}
	return defects, nil
}

// CVGeometry implements hand.Geometry with OpenCV's contourArea and moments.
type CVGeometry struct{}

// Area returns the unsigned area of the contour.
func (CVGeometry) Area(c hand.Contour) float64 {
	if len(c) == 0 {
		return 0
	}

	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()

	return gocv.ContourArea(pv)
}

// Moments returns the spatial moments of the contour polygon.
func (CVGeometry) Moments(c hand.Contour) hand.Moments {
	if len(c) == 0 {
		return hand.Moments{}
	}

	pv := gocv.NewPointVectorFromPoints(c)
	defer pv.Close()

	mat := gocv.NewMatFromPointVector(pv, true)
	defer mat.Close()

	m := gocv.Moments(mat, false)
	return hand.Moments{
		M00: m["m00"],
		M10: m["m10"],
		M01: m["m01"],
	}
}
