// Package detection finds face bounding boxes with the pigo cascade
// classifier. It is the only component that knows about pixels on the input
// side; the geometry engine consumes nothing but the boxes produced here.
package detection

import (
	"fmt"
	"image"
	"math"
	"os"
	"sort"

	pigo "github.com/esimov/pigo/core"

	"github.com/menta2k/facecrop/pkg/types"
)

// MinFaceDivisor scales the minimum detectable face size from the image
// diagonal: faces smaller than diagonal/MinFaceDivisor are ignored.
const MinFaceDivisor = 8

const (
	// qualityThreshold drops low-confidence cascade detections.
	qualityThreshold = 5.0
	// iouThreshold merges overlapping detections into one cluster.
	iouThreshold = 0.2

	shiftFactor = 0.1
	scaleFactor = 1.1

	// cascadeFloor is the smallest face the cascade can resolve.
	cascadeFloor = 20
)

// FaceDetector detects faces in images using a pigo cascade. The classifier
// is read-only after construction, so a single detector is safe for
// concurrent use.
type FaceDetector struct {
	classifier *pigo.Pigo
}

// NewFaceDetector unpacks a binary cascade and builds a detector
func NewFaceDetector(cascade []byte) (*FaceDetector, error) {
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack cascade: %w", err)
	}
	return &FaceDetector{classifier: classifier}, nil
}

// NewFaceDetectorFromFile reads a cascade file and builds a detector
func NewFaceDetectorFromFile(path string) (*FaceDetector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cascade file: %w", err)
	}
	return NewFaceDetector(data)
}

// DetectFaces returns bounding boxes for every face found in img, smallest
// first. The minimum face size is derived from the image diagonal.
func (d *FaceDetector) DetectFaces(img image.Image) ([]types.Box, error) {
	bounds := img.Bounds()
	cols, rows := bounds.Dx(), bounds.Dy()
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", cols, rows)
	}

	pixels := pigo.RgbToGrayscale(img)

	params := pigo.CascadeParams{
		MinSize:     MinFaceSize(cols, rows),
		MaxSize:     max(cols, rows),
		ShiftFactor: shiftFactor,
		ScaleFactor: scaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, iouThreshold)

	boxes := make([]types.Box, 0, len(dets))
	for _, det := range dets {
		if det.Q < qualityThreshold {
			continue
		}
		boxes = append(boxes, boxFromDetection(det, cols, rows))
	}

	sort.Slice(boxes, func(i, j int) bool {
		return boxes[i].Area() < boxes[j].Area()
	})
	return boxes, nil
}

// MinFaceSize derives the minimum face size hint from the image dimensions
func MinFaceSize(width, height int) int {
	size := int(math.Sqrt(float64(width*width+height*height)) / MinFaceDivisor)
	if size < cascadeFloor {
		size = cascadeFloor
	}
	return size
}

// boxFromDetection converts a center+scale cascade detection to a bounding
// box intersected with the image.
func boxFromDetection(det pigo.Detection, imgWidth, imgHeight int) types.Box {
	half := det.Scale / 2
	x := det.Col - half
	y := det.Row - half
	w := det.Scale
	h := det.Scale

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > imgWidth {
		w = imgWidth - x
	}
	if y+h > imgHeight {
		h = imgHeight - y
	}
	return types.Box{X: x, Y: y, W: w, H: h}
}

// BiggestFace returns the largest detected box. ok is false when boxes is
// empty, the expected outcome for images without a face.
func BiggestFace(boxes []types.Box) (types.Box, bool) {
	if len(boxes) == 0 {
		return types.Box{}, false
	}
	best := boxes[0]
	for _, b := range boxes[1:] {
		if b.Area() > best.Area() {
			best = b
		}
	}
	return best, true
}
