package geometry

// clampSpan fits the candidate interval [lo, hi] into [0, limit] while
// keeping the original center fixed. When one end overflows, the interval
// becomes one-sided around that center; when both ends overflow, the whole
// axis is taken. met reports whether no correction was needed.
func clampSpan(lo, hi, limit int) (int, int, bool) {
	if lo >= 0 && hi <= limit {
		return lo, hi, true
	}
	if lo < 0 && hi > limit {
		return 0, limit, false
	}

	// With the double-overflow case handled above, exactly one branch fires:
	// a left overflow implies 2*center < limit and a right overflow implies
	// 2*center > limit. A center at or beyond the axis edge would reflect to
	// an empty interval; the whole axis is taken instead.
	center := (lo + hi) / 2
	if lo < 0 {
		if center <= 0 {
			return 0, limit, false
		}
		return 0, 2 * center, false
	}
	if center >= limit {
		return 0, limit, false
	}
	return 2*center - limit, limit, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
