// Demo command: read a point file (or generate random points), build
// the convex hull and the angle hulls for a set of aperture angles,
// and render everything to a PNG.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hullbert/anglehull"
	"github.com/hullbert/anglehull/geometry"
	"github.com/hullbert/anglehull/pointio"
	"github.com/hullbert/anglehull/render"
)

var (
	app    = kingpin.New("anglehull", "Render the convex hull and alpha-angle hulls of a point set.")
	input  = app.Arg("points", "Point file, one \"x y\" pair per line.").String()
	random = app.Flag("random", "Generate N random points instead of reading a file.").PlaceHolder("N").Int()
	extent = app.Flag("extent", "Coordinate range for generated points.").Default("1000").Int()
	alphas = app.Flag("alpha", "Aperture angle in degrees, repeatable.").Default("60", "90", "120").Float64List()
	out    = app.Flag("out", "Output PNG path.").Default("anglehull.png").String()
	cut    = app.Flag("cut", "Render cut (non-overlapping) arcs instead of uncut ones.").Bool()
	labels = app.Flag("labels", "Annotate arcs with readable debug names.").Bool()
	cat    = app.Flag("cat", "Print the rendered image to the terminal (iTerm).").Bool()
	save   = app.Flag("save", "Write the point set back to this file.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	points, err := loadPoints()
	if err != nil {
		app.Fatalf("%v", err)
	}

	hull := anglehull.BuildHull(points)
	var layers []render.Layer
	for _, deg := range *alphas {
		angleHull, err := anglehull.Generate(hull, anglehull.Deg(deg))
		if err != nil {
			fmt.Printf("%s alpha %v°: %v\n", aurora.Red("skipped"), deg, err)
			continue
		}
		layers = append(layers, render.Layer{Alpha: anglehull.Deg(deg), Hull: angleHull})
		fmt.Printf("%s alpha %v°: %d arcs\n", aurora.Green("generated"), deg, angleHull.Len())
	}

	strategy := anglehull.Uncut
	if *cut {
		strategy = anglehull.Cut
	}
	scene := render.Scene{
		Points:   points,
		Hull:     hull,
		Layers:   layers,
		Strategy: strategy,
		Labels:   *labels,
	}
	if err := render.SavePNG(scene.Draw(), *out); err != nil {
		app.Fatalf("saving %s: %v", *out, err)
	}
	fmt.Printf("%s %d points, %d hull vertices, %d angle hulls -> %s\n",
		aurora.Green("done:"), len(points), len(hull.Points()), len(layers), *out)

	if *cat {
		if err := render.Cat(*out); err != nil {
			app.Fatalf("imgcat %s: %v", *out, err)
		}
	}
	if *save != "" {
		if err := pointio.WriteFile(*save, points); err != nil {
			app.Fatalf("%v", err)
		}
	}
}

func loadPoints() ([]geometry.Point, error) {
	if *random > 0 {
		return randomPoints(float64(*extent), float64(*extent), *random), nil
	}
	if *input == "" {
		return pointio.Parse(os.Stdin)
	}
	return pointio.ReadFile(*input)
}

// randomPoints generates count points with gaussian-distributed
// coordinates clustered around the middle of the extent.
func randomPoints(maxX, maxY float64, count int) []geometry.Point {
	r := rand.New(rand.NewSource(rand.Int63()))
	points := make([]geometry.Point, count)
	for i := range points {
		points[i] = geometry.PtOf(
			gaussianInRange(r, maxX*0.3, maxX*0.7),
			gaussianInRange(r, maxY*0.3, maxY*0.7),
		)
	}
	return points
}

// gaussianInRange draws from a gaussian centered in the range until a
// sample fits, giving up on the range midpoint after 100 tries.
func gaussianInRange(r *rand.Rand, min, max float64) float64 {
	if min == max {
		return min
	}
	for retries := 100; retries > 0; retries-- {
		value := r.NormFloat64()*max/5 + (max+min)/2
		if value >= min && value <= max {
			return value
		}
	}
	return (max + min) / 2
}
