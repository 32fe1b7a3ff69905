package geometry

import "testing"

func TestClampSpanUnchanged(t *testing.T) {
	// An interval already inside the axis must come back untouched.
	lo, hi, met := clampSpan(100, 200, 300)
	if lo != 100 || hi != 200 {
		t.Errorf("expected [100,200], got [%d,%d]", lo, hi)
	}
	if !met {
		t.Error("expected met=true for an in-bounds interval")
	}
}

func TestClampSpanLeftOverflow(t *testing.T) {
	// Center at 50; the interval becomes one-sided around it.
	lo, hi, met := clampSpan(-50, 150, 1000)
	if lo != 0 || hi != 100 {
		t.Errorf("expected [0,100], got [%d,%d]", lo, hi)
	}
	if met {
		t.Error("expected met=false after clamping")
	}
}

func TestClampSpanRightOverflow(t *testing.T) {
	// Center at 950; reflected back from the right edge.
	lo, hi, met := clampSpan(850, 1050, 1000)
	if lo != 900 || hi != 1000 {
		t.Errorf("expected [900,1000], got [%d,%d]", lo, hi)
	}
	if met {
		t.Error("expected met=false after clamping")
	}
}

func TestClampSpanDoubleOverflow(t *testing.T) {
	// Both ends overflow: the whole axis is taken.
	lo, hi, met := clampSpan(-50, 400, 300)
	if lo != 0 || hi != 300 {
		t.Errorf("expected [0,300], got [%d,%d]", lo, hi)
	}
	if met {
		t.Error("expected met=false for a double overflow")
	}
}

// A center at or beyond an axis edge cannot be reflected into a one-sided
// interval; the whole axis is the fallback.
func TestClampSpanEdgeCenter(t *testing.T) {
	cases := []struct {
		name          string
		lo, hi, limit int
	}{
		{"center on the right edge", 50, 150, 100},
		{"center beyond the right edge", 120, 200, 100},
		{"center on the left edge", -60, 60, 100},
		{"center beyond the left edge", -150, -10, 100},
	}

	for _, tc := range cases {
		lo, hi, met := clampSpan(tc.lo, tc.hi, tc.limit)
		if lo != 0 || hi != tc.limit {
			t.Errorf("%s: expected the full axis [0,%d], got [%d,%d]", tc.name, tc.limit, lo, hi)
		}
		if met {
			t.Errorf("%s: expected met=false", tc.name)
		}
	}
}

func TestClampSpanContainment(t *testing.T) {
	cases := []struct {
		lo, hi, limit int
	}{
		{-10, 50, 100},
		{50, 150, 100},
		{-100, 300, 100},
		{0, 100, 100},
		{-20, 40, 100},
		{50, 130, 100},
		{-60, 60, 100},
		{120, 200, 100},
	}

	for _, tc := range cases {
		lo, hi, _ := clampSpan(tc.lo, tc.hi, tc.limit)
		if lo < 0 || hi > tc.limit || lo >= hi {
			t.Errorf("clampSpan(%d,%d,%d) = [%d,%d] violates 0 <= lo < hi <= limit",
				tc.lo, tc.hi, tc.limit, lo, hi)
		}
	}
}

func TestExpandCenteredNoOverflow(t *testing.T) {
	// A 200px face at 50 percent zoom yields a 400px span around its center.
	lo, hi, met := expandCentered(400, 200, 1000, 50)
	if lo != 300 || hi != 700 {
		t.Errorf("expected [300,700], got [%d,%d]", lo, hi)
	}
	if !met {
		t.Error("expected met=true when the margin fits")
	}
}

func TestExpandCenteredFacePercentZoom(t *testing.T) {
	// Higher face percent means tighter framing.
	tight, _, _ := expandCentered(400, 200, 1000, 100)
	loose, _, _ := expandCentered(400, 200, 1000, 25)

	if tight != 400 {
		t.Errorf("at 100 percent the span should hug the face, got lo=%d", tight)
	}
	if loose != 100 {
		t.Errorf("at 25 percent the margin should double twice, got lo=%d", loose)
	}
}

func TestExpandCenteredEdgeFace(t *testing.T) {
	// Face flush against the left edge: the span collapses around the center.
	lo, hi, met := expandCentered(0, 100, 1000, 50)
	if met {
		t.Error("expected met=false for an edge face")
	}
	if lo != 0 || hi != 100 {
		t.Errorf("expected [0,100], got [%d,%d]", lo, hi)
	}
}

func TestExpandToSize(t *testing.T) {
	lo, hi, met := expandToSize(400, 200, 1000, 300)
	if lo != 350 || hi != 650 {
		t.Errorf("expected [350,650], got [%d,%d]", lo, hi)
	}
	if !met {
		t.Error("expected met=true for an in-bounds window")
	}
}

func TestExpandPortraitEyePlacement(t *testing.T) {
	// Eye line at y + 0.42*h = 342; the frame puts one third below it.
	lo, hi, met := expandPortrait(300, 100, 1000, 300)
	if !met {
		t.Fatalf("expected met=true, got span [%d,%d]", lo, hi)
	}

	eye := 300 + 42
	if hi-eye != 100 {
		t.Errorf("expected one third (100px) below the eye line, got %d", hi-eye)
	}
	if eye-lo != 200 {
		t.Errorf("expected two thirds (200px) beyond the eye line, got %d", eye-lo)
	}
}

func TestExpandPortraitTopOverflow(t *testing.T) {
	// Face near the top: anchor on the eye line, not the span center.
	lo, hi, met := expandPortrait(10, 100, 1000, 600)
	if met {
		t.Error("expected met=false for a face near the top")
	}
	if lo != 0 {
		t.Errorf("expected lo=0, got %d", lo)
	}

	eye := 10 + 42
	if want := eye + eye/2; hi != want {
		t.Errorf("expected hi=%d (1.5x eye line), got %d", want, hi)
	}
}

func TestExpandPortraitBottomOverflow(t *testing.T) {
	lo, hi, met := expandPortrait(880, 100, 1000, 300)
	if met {
		t.Error("expected met=false for a face near the bottom")
	}
	if hi != 1000 {
		t.Errorf("expected hi=1000, got %d", hi)
	}

	// Below-eye share is what the bottom edge allows; twice that above.
	eye := 880 + 42
	if want := eye - 2*(1000-eye); lo != want {
		t.Errorf("expected lo=%d, got %d", want, lo)
	}
}

func TestExpandPortraitContainment(t *testing.T) {
	cases := []struct {
		y, h, limit, expected int
	}{
		{0, 50, 500, 400},
		{450, 50, 500, 400},
		{100, 300, 500, 600},
		{200, 100, 1000, 900},
		{10, 400, 600, 590},
	}

	for _, tc := range cases {
		lo, hi, _ := expandPortrait(tc.y, tc.h, tc.limit, tc.expected)
		if lo < 0 || hi > tc.limit || lo >= hi {
			t.Errorf("expandPortrait(%d,%d,%d,%d) = [%d,%d] out of bounds",
				tc.y, tc.h, tc.limit, tc.expected, lo, hi)
		}
	}
}
