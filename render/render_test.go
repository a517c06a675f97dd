package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullbert/anglehull/geometry"
)

func TestSceneDraw(t *testing.T) {
	points := []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(0, 100), geometry.Pt(100, 100),
	}
	hull := geometry.Setup(points)
	scene := Scene{
		Points: points,
		Hull:   hull,
		Layers: []Layer{
			{Alpha: geometry.Deg(90), Hull: geometry.GenerateAngleHull(hull, geometry.Deg(90))},
		},
	}

	c := scene.Draw()
	img := c.Image()
	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 2*padding, "arcs extend the canvas past the padding")
	assert.Greater(t, bounds.Dy(), 2*padding)

	// Something non-black must have been drawn.
	var lit int
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}

func TestSceneDrawEmpty(t *testing.T) {
	scene := Scene{Hull: geometry.Setup(nil)}
	c := scene.Draw()
	require.NotNil(t, c)
	assert.Positive(t, c.Width())
	assert.Positive(t, c.Height())
}
