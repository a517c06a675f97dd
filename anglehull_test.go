package anglehull

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested in the geometry
// package; this checks the facade surface and that misuse comes back
// as errors instead of panics.

func TestBuildHull(t *testing.T) {
	hull := BuildHull([]Point{Pt(0, 0), Pt(10, 0), Pt(0, 10), Pt(10, 10), Pt(5, 5)})
	assert.Equal(t, []Point{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}, hull.Points())
}

func TestGenerate(t *testing.T) {
	hull := BuildHull([]Point{Pt(0, 0), Pt(10, 0), Pt(0, 10), Pt(10, 10)})

	angleHull, err := Generate(hull, Deg(90))
	require.NoError(t, err)
	assert.Equal(t, 8, angleHull.Len())
}

func TestGenerateBadAlpha(t *testing.T) {
	hull := BuildHull([]Point{Pt(0, 0), Pt(10, 0), Pt(0, 10), Pt(10, 10)})

	for _, deg := range []float64{0, 180, -45, 700} {
		_, err := Generate(hull, Deg(deg))
		assert.Error(t, err, "alpha %v", deg)
	}
}

func TestGenerateSmallHull(t *testing.T) {
	hull := BuildHull([]Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)})

	_, err := Generate(hull, Deg(90))
	assert.ErrorContains(t, err, "at least 4 distinct hull points")
}
