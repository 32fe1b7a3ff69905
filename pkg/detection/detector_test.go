package detection

import (
	"testing"

	pigo "github.com/esimov/pigo/core"

	"github.com/menta2k/facecrop/pkg/types"
)

func TestMinFaceSize(t *testing.T) {
	cases := []struct {
		width, height, want int
	}{
		{1000, 1000, 176}, // diagonal 1414 / 8
		{1920, 1080, 275},
		{800, 600, 125},
		{100, 100, 20}, // below the cascade floor
		{60, 80, 20},
	}

	for _, tc := range cases {
		if got := MinFaceSize(tc.width, tc.height); got != tc.want {
			t.Errorf("MinFaceSize(%d, %d) = %d, want %d", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestBoxFromDetection(t *testing.T) {
	// A detection well inside the image maps to a centered square.
	box := boxFromDetection(pigo.Detection{Row: 300, Col: 400, Scale: 200}, 1000, 1000)
	want := types.Box{X: 300, Y: 200, W: 200, H: 200}
	if box != want {
		t.Errorf("expected %+v, got %+v", want, box)
	}
}

func TestBoxFromDetectionClipped(t *testing.T) {
	// A detection near the corner is intersected with the image.
	box := boxFromDetection(pigo.Detection{Row: 30, Col: 950, Scale: 200}, 1000, 1000)
	want := types.Box{X: 850, Y: 0, W: 150, H: 130}
	if box != want {
		t.Errorf("expected %+v, got %+v", want, box)
	}
}

func TestBiggestFace(t *testing.T) {
	boxes := []types.Box{
		{X: 0, Y: 0, W: 50, H: 50},
		{X: 100, Y: 100, W: 200, H: 180},
		{X: 400, Y: 50, W: 120, H: 120},
	}

	best, ok := BiggestFace(boxes)
	if !ok {
		t.Fatal("expected ok=true for a non-empty slice")
	}
	if best != boxes[1] {
		t.Errorf("expected the 200x180 box, got %+v", best)
	}
}

func TestBiggestFaceEmpty(t *testing.T) {
	if _, ok := BiggestFace(nil); ok {
		t.Error("expected ok=false for no detections")
	}
}

func TestNewFaceDetectorFromFileMissing(t *testing.T) {
	if _, err := NewFaceDetectorFromFile("testdata/does-not-exist"); err == nil {
		t.Error("expected an error for a missing cascade file")
	}
}
