package geometry

import "github.com/google/btree"

// SortedPointSet is a deduplicated set of points in lexicographic
// order. Two equal points can never both be members.
type SortedPointSet struct {
	tree *btree.BTreeG[Point]
}

// NewSortedPointSet builds the set from a list of points, dropping
// duplicates.
func NewSortedPointSet(points []Point) SortedPointSet {
	tree := btree.NewG(2, Point.Less)
	for _, p := range points {
		tree.ReplaceOrInsert(p)
	}
	return SortedPointSet{tree: tree}
}

// ApplicationOrder selects the direction in which a SortedPointSet
// feeds its points to a SweepLine.
type ApplicationOrder int

const (
	// LeftToRight discovers points in ascending lexicographic order.
	LeftToRight ApplicationOrder = iota
	// RightToLeft discovers points in descending lexicographic order.
	RightToLeft
)

// Apply feeds every point in the set to the sweep line in the given
// order and returns the line for chaining.
func (s SortedPointSet) Apply(line *SweepLine, order ApplicationOrder) *SweepLine {
	visit := func(p Point) bool {
		line.Discover(p)
		return true
	}
	switch order {
	case LeftToRight:
		s.tree.Ascend(visit)
	case RightToLeft:
		s.tree.Descend(visit)
	}
	return line
}

func (s SortedPointSet) Len() int {
	return s.tree.Len()
}

// Slice returns the points in ascending order as a fresh slice.
func (s SortedPointSet) Slice() []Point {
	out := make([]Point, 0, s.tree.Len())
	s.tree.Ascend(func(p Point) bool {
		out = append(out, p)
		return true
	})
	return out
}
