package geometry

import "iter"

// AngleHull is the closed path of circular arcs from which a point set
// subtends the fixed aperture angle alpha. Think of a camera with a
// fixed field of view moved around the set so that the picture is
// always exactly filled: the camera positions trace the angle hull.
//
// Every arc is kept in two variants. The uncut arcs tile the hull with
// overlap at their boundaries; the cut arcs are trimmed to abut their
// neighbors, at the cost of possible sub-pixel seams.
type AngleHull struct {
	arcs []arcPair
}

type arcPair struct {
	uncut Arc
	cut   Arc
}

// CuttingStrategy selects which variant of the arcs a traversal
// yields.
type CuttingStrategy int

const (
	// Cut yields the trimmed, non-overlapping arcs.
	Cut CuttingStrategy = iota
	// Uncut yields the full, overlapping arcs.
	Uncut
)

// GenerateAngleHull computes the angle hull of a convex hull for the
// aperture angle alpha, which must lie strictly between 0 and 180
// degrees. The hull must carry at least 4 distinct points; callers
// with smaller hulls must skip angle hull generation.
//
// The walk runs counter-clockwise in screen space, so the clockwise
// hull points are reversed before they are wrapped into a ring.
func GenerateAngleHull(hull ConvexHull, alpha Angle) AngleHull {
	if deg := alpha.Deg(); deg <= 0 || deg >= 180 {
		preconditionf("alpha must lie strictly between 0 and 180 degrees, got %v", deg)
	}
	ring := NewCircularList(reversed(hull.Points()))

	// Scan for the initial base pair ls, rs. The right point advances
	// while the angle comparison test holds; if the scan never moved it,
	// the pair would be degenerate and the neighbor is taken instead.
	// rhoSS is the start trim of the first arc.
	ls := ring.First()
	rs := ring.First()
	for wvt(ls.Prev(), ls, rs, rs.Next(), alpha) {
		rs = rs.Next()
	}
	var rhoSS Angle
	if ls.EqualContent(rs) {
		rs = rs.Next()
		rhoSS = ZeroAngle
	} else {
		rhoSS = AngleOf(rs.Get(), ls.Get(), ls.Prev().Get()).Sub(alpha).TimesTwo()
	}
	return walk(ls, rs, rhoSS, alpha)
}

// walk moves the base pair around the ring like a pair of rotating
// caterpillars. Each step advances the left or the right point (the
// angle comparison test decides which), or both when the left point
// has caught up with the right one, and emits one arc spanning the
// pair before the step, together with the trim angles that make
// neighboring arcs abut. The walk closes when both points have
// returned to their starting content.
func walk(ls, rs Entry[Point], rhoSS, alpha Angle) AngleHull {
	ll, rr := ls, rs
	var arcs []arcPair
	for {
		l, r := ll, rr
		rhoS := rhoSS
		var rhoE Angle
		if wvt(l, l.Next(), r, r.Next(), alpha) {
			if wvt(l, r, r, r.Next(), alpha) {
				rhoE = AngleOf(r.Next().Get(), r.Get(), l.Get()).Sub(alpha).TimesTwo()
				rhoSS = AngleOf(l.Get(), r.Next().Get(), r.Get()).TimesTwo()
			} else {
				rhoE = ZeroAngle
				rhoSS = ZeroAngle
			}
			rr = r.Next()
		} else {
			if l.Next().EqualContent(r) {
				rhoE = ZeroAngle
				rhoSS = ZeroAngle
				rr = r.Next()
			} else {
				rhoE = AngleOf(l.Next().Get(), l.Get(), r.Get()).TimesTwo()
				rhoSS = AngleOf(r.Get(), l.Next().Get(), l.Get()).Sub(alpha).TimesTwo()
			}
			ll = l.Next()
		}
		uncut := ArcOf(l.Get(), r.Get(), alpha)
		arcs = append(arcs, arcPair{uncut: uncut, cut: uncut.Cut(rhoS, rhoE)})
		if ll.EqualContent(ls) && rr.EqualContent(rs) {
			return AngleHull{arcs: arcs}
		}
	}
}

// wvt is the angle comparison test ("Winkelvergleichstest") deciding
// whether the right caterpillar may advance: the vectors a→b and c→d
// must cross with positive orientation, and the angle between b→a and
// c→d must be at least alpha.
func wvt(aE, bE, cE, dE Entry[Point], alpha Angle) bool {
	a, b, c, d := aE.Get(), bE.Get(), cE.Get(), dE.Get()
	if Determinant(b.Sub(a), d.Sub(c), Origin) <= 0 {
		return false
	}
	return AngleOf4(a, b, c, d).Rad() >= alpha.Rad()
}

// Len returns the number of arcs on the hull.
func (h AngleHull) Len() int {
	return len(h.arcs)
}

// Arcs returns a restartable sequence of the hull's arcs in walk
// order, in the variant the strategy selects.
func (h AngleHull) Arcs(strategy CuttingStrategy) iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for _, pair := range h.arcs {
			if !yield(pair.pick(strategy)) {
				return
			}
		}
	}
}

// ArcCollector maps the components of one arc to a value of the
// caller's choosing.
type ArcCollector[T any] func(z Point, r float64, rho, beta Angle) T

// MapArcs applies the collector to every arc of the hull in walk order
// and returns the results as a restartable lazy sequence. The strategy
// selects the cut or uncut variant of each arc.
func MapArcs[T any](h AngleHull, collect ArcCollector[T], strategy CuttingStrategy) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, pair := range h.arcs {
			arc := pair.pick(strategy)
			if !yield(collect(arc.Z, arc.R, arc.Rho, arc.Beta)) {
				return
			}
		}
	}
}

func (p arcPair) pick(strategy CuttingStrategy) Arc {
	switch strategy {
	case Cut:
		return p.cut
	case Uncut:
		return p.uncut
	}
	preconditionf("unrecognized cutting strategy: %d", strategy)
	return Arc{}
}
