package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const drawPadding = 20

// DrawComparison renders the original polyline in gray with the simplified
// one laid over it in cyan, surviving vertices dotted in green. Scale is in
// pixels per coordinate unit. The caller decides what to do with the context,
// usually save it as a PNG.
func DrawComparison(original, simplified []Point, scale float64) *gg.Context {
	// Find the bounding box.
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for _, points := range [2][]Point{original, simplified} {
		for _, p := range points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the y axis so that the origin is in the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	c.SetRGB(0.45, 0.45, 0.45)
	strokePolyline(c, original)
	for _, p := range original {
		c.DrawCircle(p.X, p.Y, 1.5/scale)
		c.Fill()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	strokePolyline(c, simplified)
	c.SetRGB(0, 1, 0)
	for _, p := range simplified {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	return c
}

func strokePolyline(c *gg.Context, points []Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
}

// dbgDrawComparison dumps the comparison to /tmp and, if you're in iTerm,
// draws it right in the terminal.
func dbgDrawComparison(original, simplified []Point, scale float64) {
	c := DrawComparison(original, simplified, scale)
	c.SavePNG("/tmp/simplify.png")
	imgcat.CatFile("/tmp/simplify.png", os.Stdout)
}
