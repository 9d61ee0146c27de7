package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	. "github.com/osuushi/simplify"
	"github.com/osuushi/simplify/internal"
)

// Command line front end for the reducers.
//
// By default, input on stdin is newline separated points in the form "x y",
// with a blank line between polylines, and the simplified polylines come back
// out the same way. With --geojson, stdin is a GeoJSON document instead, and
// every line-ish geometry in it is simplified in place. A summary of how many
// points survived goes to stderr so it never pollutes piped output.

var (
	algorithm = kingpin.Flag("algorithm", "Reducer to run.").
			Short('a').Default("rdp").Enum("rdp", "visvalingam")
	epsilon = kingpin.Flag("epsilon", "Tolerance: a distance for rdp, an area for visvalingam.").
		Short('e').Default("1.0").Float64()
	asGeoJSON = kingpin.Flag("geojson", "Read a GeoJSON document instead of x y lines.").Bool()
	pngPath   = kingpin.Flag("png", "Render the first polyline and its simplification to this PNG file.").String()
	pngScale  = kingpin.Flag("png-scale", "Pixels per coordinate unit in the --png render.").Default("10").Float64()
)

var totalBefore, totalAfter int

func main() {
	kingpin.Parse()

	reduce := RDP
	if *algorithm == "visvalingam" {
		reduce = Visvalingam
	}

	var err error
	if *asGeoJSON {
		err = runGeoJSON(reduce)
	} else {
		err = runPlain(reduce)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
	report()
}

func report() {
	if totalBefore == 0 {
		return
	}
	kept := 100 * float64(totalAfter) / float64(totalBefore)
	fmt.Fprintf(os.Stderr, "%s: %d → %d points (%.1f%% kept, epsilon %g)\n",
		aurora.Cyan(*algorithm), aurora.Yellow(totalBefore), aurora.Green(totalAfter), kept, *epsilon)
}

func runPlain(reduce func([]Point, float64) []Point) error {
	polylines, err := readPolylines(os.Stdin)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for i, points := range polylines {
		simplified := reduce(points, *epsilon)
		totalBefore += len(points)
		totalAfter += len(simplified)

		if i > 0 {
			fmt.Fprintln(out)
		}
		for _, p := range simplified {
			fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
		}

		if i == 0 && *pngPath != "" {
			c := internal.DrawComparison(points, simplified, *pngScale)
			if err := c.SavePNG(*pngPath); err != nil {
				return errors.Wrapf(err, "writing %s", *pngPath)
			}
		}
	}
	return nil
}

func readPolylines(in io.Reader) ([][]Point, error) {
	var polylines [][]Point
	var points []Point
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current polyline.
		if line == "" {
			if len(points) > 0 {
				polylines = append(polylines, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineno)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	if len(points) > 0 {
		polylines = append(polylines, points)
	}
	return polylines, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "bad x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "bad y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

func runGeoJSON(reduce func([]Point, float64) []Point) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return errors.Wrap(err, "reading stdin")
	}

	// GeoJSON documents come in three top-level shapes; peek at the type
	// before committing to one.
	var peek struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &peek); err != nil {
		return errors.Wrap(err, "parsing GeoJSON")
	}

	var doc json.Marshaler
	switch peek.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return errors.Wrap(err, "parsing feature collection")
		}
		for i, feature := range fc.Features {
			if err := simplifyGeometry(feature.Geometry, reduce); err != nil {
				return errors.Wrapf(err, "feature %d", i)
			}
		}
		doc = fc
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return errors.Wrap(err, "parsing feature")
		}
		if err := simplifyGeometry(feature.Geometry, reduce); err != nil {
			return err
		}
		doc = feature
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return errors.Wrap(err, "parsing geometry")
		}
		if err := simplifyGeometry(geometry, reduce); err != nil {
			return err
		}
		doc = geometry
	}

	encoded, err := doc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}
	fmt.Println(string(encoded))
	return nil
}

// simplifyGeometry rewrites every line-ish geometry's coordinates in place.
// Points pass through untouched. A position with fewer than two values is an
// error, since the decoder accepts them and indexing would panic.
func simplifyGeometry(g *geojson.Geometry, reduce func([]Point, float64) []Point) error {
	if g == nil {
		return nil
	}
	switch g.Type {
	case geojson.GeometryLineString:
		line, err := simplifyLine(g.LineString, reduce)
		if err != nil {
			return err
		}
		g.LineString = line
	case geojson.GeometryMultiLineString:
		for i, line := range g.MultiLineString {
			line, err := simplifyLine(line, reduce)
			if err != nil {
				return err
			}
			g.MultiLineString[i] = line
		}
	case geojson.GeometryPolygon:
		rings, err := simplifyRings(g.Polygon, reduce)
		if err != nil {
			return err
		}
		g.Polygon = rings
	case geojson.GeometryMultiPolygon:
		for i, rings := range g.MultiPolygon {
			rings, err := simplifyRings(rings, reduce)
			if err != nil {
				return err
			}
			g.MultiPolygon[i] = rings
		}
	case geojson.GeometryCollection:
		for _, child := range g.Geometries {
			if err := simplifyGeometry(child, reduce); err != nil {
				return err
			}
		}
	}
	return nil
}

func simplifyLine(coords [][]float64, reduce func([]Point, float64) []Point) ([][]float64, error) {
	points := make([]Point, len(coords))
	for i, c := range coords {
		// Positions may carry altitude or more; only the first two matter.
		if len(c) < 2 {
			return nil, errors.Errorf("position %d has %d coordinates, expected at least 2", i, len(c))
		}
		points[i] = Point{X: c[0], Y: c[1]}
	}
	simplified := reduce(points, *epsilon)
	totalBefore += len(points)
	totalAfter += len(simplified)

	out := make([][]float64, len(simplified))
	for i, p := range simplified {
		out[i] = []float64{p.X, p.Y}
	}
	return out, nil
}

// simplifyRings treats each polygon ring as a closed polyline. A ring that
// collapses below a triangle (plus its closing point) carries no area
// anymore and is dropped outright.
func simplifyRings(rings [][][]float64, reduce func([]Point, float64) []Point) ([][][]float64, error) {
	kept := make([][][]float64, 0, len(rings))
	for _, ring := range rings {
		ring, err := simplifyLine(ring, reduce)
		if err != nil {
			return nil, err
		}
		if len(ring) > 3 {
			kept = append(kept, ring)
		}
	}
	return kept, nil
}
