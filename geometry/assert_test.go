package geometry

// This contains no actual tests. It holds the shared assertion helpers
// for the hull properties.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertConvex checks that every cyclic triple of the polygon turns
// strictly right in screen orientation.
func AssertConvex(t *testing.T, polygon []Point) {
	t.Helper()
	require.GreaterOrEqual(t, len(polygon), 3, "not a polygon: %v", polygon)
	n := len(polygon)
	for i := 0; i < n; i++ {
		a, b, c := polygon[i], polygon[(i+1)%n], polygon[(i+2)%n]
		assert.Negative(t, Determinant(a, b, c), "triple %v %v %v does not turn right", a, b, c)
	}
}

// AssertContains checks that every point lies inside or on the
// clockwise polygon.
func AssertContains(t *testing.T, polygon []Point, points []Point) {
	t.Helper()
	n := len(polygon)
	for _, p := range points {
		for i := 0; i < n; i++ {
			a, b := polygon[i], polygon[(i+1)%n]
			assert.LessOrEqual(t, Determinant(a, b, p), int64(0),
				"point %v lies outside edge %v-%v", p, a, b)
		}
	}
}

// AssertStrictlySorted checks that the points strictly increase in
// lexicographic order.
func AssertStrictlySorted(t *testing.T, points []Point) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Less(points[i]),
			"points %v and %v are out of order", points[i-1], points[i])
	}
}

// assertPanicsPrecondition runs f and checks that it panics with a
// PreconditionError.
func assertPanicsPrecondition(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		_, ok := recover().(PreconditionError)
		assert.True(t, ok, "expected a PreconditionError panic")
	}()
	f()
	t.Error("expected a panic")
}
