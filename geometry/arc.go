package geometry

import "math"

// Arc is a circular arc given by its center, radius, absolute start
// angle ρ and signed extent angle β. Angles follow the y-down screen
// convention: ρ is measured from the positive x axis, growing
// clockwise on screen.
type Arc struct {
	Z    Point
	R    float64
	Rho  Angle
	Beta Angle
}

// ArcOf derives the arc touching the points a and b from which the
// chord ab subtends the inscribed angle alpha. The center lands on the
// perpendicular of the chord midpoint at the distance dictated by
// alpha; the extent spans the full bow between the touching points.
func ArcOf(a, b Point, alpha Angle) Arc {
	m := a.Add(b).Half()
	d := a.DistanceTo(b)
	k := -(d / (2 * math.Tan(alpha.Rad())))
	w := Pt(a.Y-b.Y, b.X-a.X).Scale(k / d)
	z := m.Add(w)
	r := d / (2 * math.Sin(alpha.Rad()))
	rho := AngleOf(Pt(1, 0), Origin, a.Sub(z))
	if a.Y < z.Y {
		rho = Rad(2*math.Pi - rho.Rad())
	}
	beta := Rad(2 * (math.Pi - alpha.Rad()))
	return Arc{Z: z, R: r, Rho: rho, Beta: beta}
}

// Cut trims the arc by rhoS at its start and rhoE at its end. Cutting
// happens in double precision, so neighboring cut arcs may still leave
// sub-pixel gaps or overlap.
func (a Arc) Cut(rhoS, rhoE Angle) Arc {
	return Arc{
		Z:    a.Z,
		R:    a.R,
		Rho:  a.Rho.Add(rhoS),
		Beta: a.Beta.Sub(rhoS).Sub(rhoE),
	}
}
