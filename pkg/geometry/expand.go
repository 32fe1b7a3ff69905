package geometry

// EyesRatio locates the eye line within a detected face box, measured as a
// fraction of the box height from its top edge.
const EyesRatio = 0.42

// expandCentered sizes a span symmetrically around the face center so that
// the face occupies facePercent of its linear extent, then fits the span to
// the axis. met is false when the ideal span needed correction.
//
//	         +
//	lo       |        hi
//	+--------|--------+
//	|     MAR|GIN     |
//	|   +----|----+   |
//	|   |  FA|CE  |   |
//	|   ├─i──┤    |   |
//	|   +----|----+   |
//	+--------|--------+
//	├───j────┤
//	         + center    i/j = facePercent/100
func expandCentered(x, w, limit, facePercent int) (int, int, bool) {
	half := w / 2
	margin := half * 100 / facePercent
	center := x + half
	return clampSpan(center-margin, center+margin, limit)
}

// expandToSize centers a span of exactly the given size on the face and fits
// it to the axis. met is false when the centered window needed correction.
func expandToSize(x, w, limit, size int) (int, int, bool) {
	center := x + w/2
	return clampSpan(center-size/2, center+size/2, limit)
}

// expandPortrait composes a vertical span of the expected height around the
// face using the rule of thirds: the eye line sits one third from one edge
// of the frame, with two thirds of the height on the other side. Overflow
// correction is anchored on the eye line rather than the span center.
func expandPortrait(y, h, limit, expected int) (int, int, bool) {
	eye := y + int(EyesRatio*float64(h))
	third := expected / 3
	lo := eye - 2*third
	hi := eye + third

	met := true
	if lo < 0 {
		met = false
		lo = 0
		hi = eye + eye/2
	}
	if hi > limit {
		met = false
		hi = limit
		lo = eye - 2*(hi-eye)
	}
	return lo, hi, met
}
