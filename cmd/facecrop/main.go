package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/menta2k/facecrop"
	"github.com/menta2k/facecrop/internal/config"
	"github.com/menta2k/facecrop/internal/utils"
	"github.com/menta2k/facecrop/pkg/types"
)

func main() {
	var in, outDir, cascade, ext, padding, configPath string
	var width, height, facePercent, quality, workers int
	var portrait, gamma, lossless, debug bool

	flag.StringVar(&in, "in", "", "input image path, directory or URL (jpg/png/webp)")
	flag.StringVar(&outDir, "out", "output", "output directory")
	flag.StringVar(&cascade, "cascade", "facefinder", "path to the pigo face cascade file")
	flag.StringVar(&configPath, "config", "", "optional JSON config file; flags override its values")

	flag.IntVar(&width, "width", 500, "output width (px)")
	flag.IntVar(&height, "height", 500, "output height (px)")
	flag.IntVar(&facePercent, "facepercent", 50, "percent of the crop the face should occupy (1-100)")
	flag.StringVar(&padding, "padding", "", "padding weights: one value for all sides or top,right,bottom,left")
	flag.BoolVar(&portrait, "portrait", true, "place eyes at a third of the frame for tall outputs")
	flag.BoolVar(&gamma, "gamma", true, "lighten crops taken from underexposed images")

	flag.StringVar(&ext, "ext", "jpg", "output format: jpg|png|webp")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless mode")

	flag.IntVar(&workers, "workers", 4, "concurrent crops when processing a directory")
	flag.BoolVar(&debug, "debug", false, "also write overlay images showing face and crop boxes")

	flag.Parse()
	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|dir|URL [-cascade facefinder] [-out outdir] [-width 500 -height 500] [-facepercent 50] [-padding 10,50,10,50]", filepath.Base(os.Args[0]))
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output.Dir = outDir
		case "cascade":
			cfg.Detector.CascadePath = cascade
		case "width":
			cfg.Output.Width = width
		case "height":
			cfg.Output.Height = height
		case "facepercent":
			cfg.Composition.FacePercent = facePercent
		case "portrait":
			cfg.Composition.Portrait = portrait
		case "gamma":
			cfg.Composition.FixGamma = gamma
		case "ext":
			cfg.Output.Format = ext
		case "quality":
			cfg.Output.Quality = quality
		case "lossless":
			cfg.Output.Lossless = lossless
		case "workers":
			cfg.Detector.Workers = workers
		}
	})
	if padding != "" {
		pad, err := parsePadding(padding)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Composition.Padding = pad
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	cropper, err := facecrop.NewFromCascade(cfg.Detector.CascadePath, facecrop.Options{
		Width:       cfg.Output.Width,
		Height:      cfg.Output.Height,
		FacePercent: cfg.Composition.FacePercent,
		Padding:     cfg.Composition.Padding,
		Portrait:    cfg.Composition.Portrait,
		FixGamma:    cfg.Composition.FixGamma,
		Quality:     cfg.Output.Quality,
		Lossless:    cfg.Output.Lossless,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := utils.EnsureDir(cfg.Output.Dir); err != nil {
		log.Fatal(err)
	}

	inputs, err := collectInputs(in)
	if err != nil {
		log.Fatal(err)
	}
	if len(inputs) == 0 {
		log.Fatalf("no image files found in %s", in)
	}

	var cropped, skipped, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(cfg.Detector.Workers)
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			outPath := utils.GenerateOutputFilename(input, cfg.Output.Dir, cfg.Output.Suffix, cfg.Output.Format)
			err := processOne(cropper, input, outPath, debug, cfg)
			switch {
			case errors.Is(err, facecrop.ErrNoFaceDetected):
				skipped.Add(1)
				log.Printf("skip %s: no face detected", input)
			case err != nil:
				failed.Add(1)
				log.Printf("crop %s failed: %v", input, err)
			default:
				cropped.Add(1)
				log.Printf("wrote %s", outPath)
			}
			// Per-file failures are reported, not fatal for the batch.
			return nil
		})
	}
	g.Wait()

	log.Printf("done: %d cropped, %d without a face, %d failed", cropped.Load(), skipped.Load(), failed.Load())
	if failed.Load() > 0 {
		os.Exit(1)
	}
}

func processOne(cropper *facecrop.Cropper, input, outPath string, debug bool, cfg *config.Config) error {
	if !debug {
		return cropper.CropFile(input, outPath)
	}

	processor := cropper.Processor()
	img, err := processor.LoadImageSmart(input)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	rect, face, err := cropper.CropRect(img)
	if err != nil {
		return err
	}

	out, err := cropper.Crop(img)
	if err != nil {
		return err
	}
	if err := processor.SaveImage(out, outPath, cfg.Output.Format, cfg.Output.Quality, cfg.Output.Lossless); err != nil {
		return err
	}

	overlay := processor.DrawDebugOverlay(img, face, rect)
	overlayPath := utils.GenerateOutputFilename(input, cfg.Output.Dir, cfg.Output.Suffix+"_debug", "png")
	return processor.SaveImage(overlay, overlayPath, "png", cfg.Output.Quality, false)
}

// collectInputs resolves -in to the list of images to process: all images
// under a directory, or the single file/URL as given.
func collectInputs(in string) ([]string, error) {
	if strings.HasPrefix(in, "http://") || strings.HasPrefix(in, "https://") {
		return []string{in}, nil
	}
	info, err := os.Stat(in)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return utils.ListImageFiles(in)
	}
	return []string{in}, nil
}

// parsePadding accepts a single weight for all sides or four comma-separated
// weights in top,right,bottom,left order.
func parsePadding(s string) (*types.Padding, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("padding values must be positive integers, got %q", part)
		}
		vals = append(vals, v)
	}

	switch len(vals) {
	case 1:
		pad := types.Uniform(vals[0])
		return &pad, nil
	case 4:
		return &types.Padding{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, nil
	default:
		return nil, fmt.Errorf("padding expects 1 or 4 values, got %d", len(vals))
	}
}
