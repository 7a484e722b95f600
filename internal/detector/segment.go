package detector

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// ErrEmptyFrame is returned when a nil or empty frame is passed to a detector.
var ErrEmptyFrame = errors.New("frame is empty")

// maskThreshold binarizes the blurred skin mask.
const maskThreshold = 127

// Segmenter separates skin-coloured regions from the background.
type Segmenter struct {
	lower    gocv.Scalar
	upper    gocv.Scalar
	blurSize int
	kernel   gocv.Mat
	mu       sync.Mutex
}

// NewSegmenter creates a Segmenter from the colour and filter settings in config.
// The caller must Close the Segmenter to release its kernel.
func NewSegmenter(config Config) *Segmenter {
	blur := config.BlurSize
	if blur <= 0 {
		blur = DefaultConfig().BlurSize
	}
	if blur%2 == 0 {
		blur++
	}

	morph := config.MorphSize
	if morph <= 0 {
		morph = DefaultConfig().MorphSize
	}

	return &Segmenter{
		lower:    config.SkinLower,
		upper:    config.SkinUpper,
		blurSize: blur,
		kernel:   gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(morph, morph)),
	}
}

// Segment returns a binary mask (0 or 255) of the hand regions in frame.
// The caller is responsible for closing the returned Mat.
//
// Algorithm:
// 1. Colour frames are converted to HSV and filtered to the skin range;
//    single channel frames are used as the mask directly
// 2. Gaussian blur smooths the mask edges
// 3. Binary threshold restores a hard mask
// 4. Morphological open then close removes specks and fills holes
func (s *Segmenter) Segment(frame *gocv.Mat) (gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frame == nil || frame.Empty() {
		return gocv.NewMat(), ErrEmptyFrame
	}

	mask := gocv.NewMat()
	defer mask.Close()

	if frame.Channels() > 1 {
		hsv := gocv.NewMat()
		defer hsv.Close()
		if err := gocv.CvtColor(*frame, &hsv, gocv.ColorBGRToHSV); err != nil {
			return gocv.NewMat(), fmt.Errorf("convert to hsv: %w", err)
		}
		if err := gocv.InRangeWithScalar(hsv, s.lower, s.upper, &mask); err != nil {
			return gocv.NewMat(), fmt.Errorf("skin range: %w", err)
		}
	} else {
		frame.CopyTo(&mask)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	if err := gocv.GaussianBlur(mask, &blurred, image.Pt(s.blurSize, s.blurSize), 0, 0, gocv.BorderDefault); err != nil {
		return gocv.NewMat(), fmt.Errorf("blur mask: %w", err)
	}

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(blurred, &thresh, maskThreshold, 255, gocv.ThresholdBinary)

	opened := gocv.NewMat()
	defer opened.Close()
	if err := gocv.MorphologyEx(thresh, &opened, gocv.MorphOpen, s.kernel); err != nil {
		return gocv.NewMat(), fmt.Errorf("open mask: %w", err)
	}

	closed := gocv.NewMat()
	if err := gocv.MorphologyEx(opened, &closed, gocv.MorphClose, s.kernel); err != nil {
		closed.Close()
		return gocv.NewMat(), fmt.Errorf("close mask: %w", err)
	}

	return closed, nil
}

// Close releases resources used by the segmenter.
func (s *Segmenter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kernel.Empty() {
		return nil
	}
	err := s.kernel.Close()
	s.kernel = gocv.NewMat()
	return err
}
