// Package render draws point sets, convex hulls and angle hulls into
// PNG images. It exists for the demo command and for eyeballing the
// engine's output during development; the geometry engine itself never
// draws.
package render

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/hullbert/anglehull/dbg"
	"github.com/hullbert/anglehull/geometry"
)

// Padding around the drawing so arcs reaching past the point set stay
// visible.
const padding = 100

// Colors cycled for the angle hull layers.
var layerPalette = [][3]float64{
	{0, 1, 1},
	{1, 0.5, 0},
	{1, 0, 1},
	{0.3, 1, 0.3},
	{1, 1, 0},
}

// Layer is one angle hull to draw, tagged with its aperture angle.
type Layer struct {
	Alpha geometry.Angle
	Hull  geometry.AngleHull
}

// Scene is everything one image shows: the raw points, their convex
// hull and any number of angle hull layers.
type Scene struct {
	Points   []geometry.Point
	Hull     geometry.ConvexHull
	Layers   []Layer
	Strategy geometry.CuttingStrategy
	Scale    float64 // image pixels per point unit, 1 when zero
	Labels   bool    // annotate every arc with a readable debug name
}

// Draw renders the scene into a fresh context. The engine's y-down
// screen coordinates match the image's, so no flip is needed and arc
// angles pass straight through to the arc primitive.
func (s Scene) Draw() *gg.Context {
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	minX, minY, maxX, maxY := s.bounds()

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	s.drawLayers(c)
	s.drawHull(c)
	s.drawPoints(c)
	return c
}

func (s Scene) drawPoints(c *gg.Context) {
	c.SetRGB(1, 1, 1)
	for _, p := range s.Points {
		c.DrawCircle(float64(p.X), float64(p.Y), 3)
		c.Fill()
	}
}

func (s Scene) drawHull(c *gg.Context) {
	hull := s.Hull.Points()
	if len(hull) < 2 {
		return
	}
	c.MoveTo(float64(hull[0].X), float64(hull[0].Y))
	for _, p := range hull[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
	c.SetRGB(1, 1, 1)
	c.SetLineWidth(2)
	c.Stroke()
}

func (s Scene) drawLayers(c *gg.Context) {
	c.SetLineWidth(2)
	for i, layer := range s.Layers {
		rgb := layerPalette[i%len(layerPalette)]
		c.SetRGB(rgb[0], rgb[1], rgb[2])
		for arc := range layer.Hull.Arcs(s.Strategy) {
			zx, zy := float64(arc.Z.X), float64(arc.Z.Y)
			c.NewSubPath()
			c.DrawArc(zx, zy, arc.R, arc.Rho.Rad(), arc.Rho.Rad()+arc.Beta.Rad())
			c.Stroke()
			if s.Labels {
				c.DrawString(dbg.Name(arc), zx, zy)
			}
		}
	}
}

// bounds spans the point set and every arc's full circle.
func (s Scene) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}
	for _, layer := range s.Layers {
		for arc := range layer.Hull.Arcs(geometry.Uncut) {
			minX = math.Min(minX, float64(arc.Z.X)-arc.R)
			minY = math.Min(minY, float64(arc.Z.Y)-arc.R)
			maxX = math.Max(maxX, float64(arc.Z.X)+arc.R)
			maxY = math.Max(maxY, float64(arc.Z.Y)+arc.R)
		}
	}
	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

// SavePNG writes the rendered context to path.
func SavePNG(c *gg.Context, path string) error {
	return c.SavePNG(path)
}

// Cat prints a saved image to the terminal (iTerm only).
func Cat(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}
