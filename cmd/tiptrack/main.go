package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/tiptrack/internal/detector"
	"gocv.io/x/gocv"
)

// frameReport is the JSON line written for each processed image.
type frameReport struct {
	File   string           `json:"file"`
	Result *detector.Result `json:"result"`
}

func main() {
	cfg := detector.DefaultConfig()

	flag.Float64Var(&cfg.Hand.MinHandArea, "min-area", cfg.Hand.MinHandArea, "minimum area in px² for a second hand")
	flag.Float64Var(&cfg.Hand.TipRatio, "ratio", cfg.Hand.TipRatio, "vertical ratio a defect must exceed to be a fingertip")
	annotateDir := flag.String("annotate", "", "directory to write annotated images to")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] image...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *annotateDir != "" {
		if err := os.MkdirAll(*annotateDir, 0755); err != nil {
			log.Fatalf("Failed to create annotation directory: %v", err)
		}
	}

	det := detector.NewContourDetector(cfg)
	defer det.Close()

	if err := run(flag.Args(), det, os.Stdout, *annotateDir); err != nil {
		log.Printf("tiptrack: %v", err)
		det.Close()
		os.Exit(1)
	}
}

// errFramesFailed is returned by run when one or more images could not be processed.
var errFramesFailed = errors.New("some images could not be processed")

// run detects hands in each image and writes one JSON report per image to out.
// Images that cannot be read or analyzed are logged and skipped.
func run(paths []string, det detector.Detector, out io.Writer, annotateDir string) error {
	enc := json.NewEncoder(out)
	failed := 0

	for _, path := range paths {
		result, err := processFile(path, det, annotateDir)
		if err != nil {
			log.Printf("Error processing %s: %v", path, err)
			failed++
			continue
		}

		if err := enc.Encode(frameReport{File: path, Result: result}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(paths), errFramesFailed)
	}
	return nil
}

// processFile reads one image, runs detection and optionally writes an annotated copy.
func processFile(path string, det detector.Detector, annotateDir string) (*detector.Result, error) {
	frame := gocv.IMRead(path, gocv.IMReadColor)
	defer frame.Close()

	if frame.Empty() {
		return nil, fmt.Errorf("read image: %w", detector.ErrEmptyFrame)
	}

	result, err := det.Detect(&frame)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	if annotateDir == "" {
		return result, nil
	}

	if err := detector.Annotate(&frame, result); err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	dst := filepath.Join(annotateDir, filepath.Base(path))
	if ok := gocv.IMWrite(dst, frame); !ok {
		return nil, fmt.Errorf("write annotated image %s", dst)
	}

	return result, nil
}
