package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polylines. It is not a full
// (or even correct) svg reader. It parses the SVG, finds the single polyline
// element, and converts its points attribute into a point slice. If anything
// goes wrong, it bails out of the whole test run.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polylines := rootEl.FindAll("polyline")
	if len(polylines) != 1 {
		log.Fatalf("Expected exactly one polyline in fixture %q, found %d", name, len(polylines))
	}

	var points []Point
	for _, pointString := range strings.Fields(polylines[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc code specified fixtures

// SineRoute samples one period of a gentle sine wave: smooth curvature with
// no long exactly-collinear runs.
func SineRoute(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		x := float64(i) / float64(n-1) * 100
		points[i] = Point{X: x, Y: 10 * math.Sin(x/100*2*math.Pi)}
	}
	return points
}

// CollinearRun puts n points exactly on y = 2x + 1. Integer coordinates keep
// the collinearity exact in floating point.
func CollinearRun(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: float64(i), Y: float64(2*i + 1)}
	}
	return points
}

// RandomRoute is a seeded random walk drifting rightward, the long meandering
// kind of input the reducers exist for.
func RandomRoute(n int, seed int64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	var x, y float64
	for i := range points {
		x += r.Float64() * 2
		y += r.Float64()*2 - 1
		points[i] = Point{X: x, Y: y}
	}
	return points
}
