package geometry

import "math"

// AngleOf returns the unsigned angle at b between the vectors b→a and
// b→c, in [0, π]. The result is NaN if either vector has zero length;
// callers must keep degenerate triples away from this.
func AngleOf(a, b, c Point) Angle {
	u := a.Sub(b)
	v := c.Sub(b)
	dot := float64(u.X)*float64(v.X) + float64(u.Y)*float64(v.Y)
	cos := dot / (a.DistanceTo(b) * c.DistanceTo(b))
	// Rounding can push the cosine of (anti)parallel vectors just past ±1.
	return Rad(math.Acos(math.Max(-1, math.Min(1, cos))))
}

// AngleOf4 returns the unsigned angle between the vectors b→a and c→d,
// measured by anchoring both at the origin.
func AngleOf4(a, b, c, d Point) Angle {
	return AngleOf(a.Sub(b), Origin, d.Sub(c))
}
