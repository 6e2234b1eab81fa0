package internal

import (
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Debug preview of a point set and its hulls. This is a debugging aid for the
// CLI, not a renderer: no antialiasing choices, no color management.

// Padding around the shape so that hull edges on the bounding box are visible
const dbgDrawPadding = 20

// Refuse to allocate absurd canvases for widely spread points
const dbgDrawMaxSize = 8192

var dbgPalette = []color.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Deepskyblue,
	colornames.Orchid,
	colornames.Sandybrown,
	colornames.Lightseagreen,
	colornames.Slateblue,
	colornames.Yellowgreen,
	colornames.Hotpink,
}

func PaletteColor(tag int) color.RGBA {
	return dbgPalette[CircularIndex(tag, len(dbgPalette))]
}

type DrawOptions struct {
	// Pixels per unit
	Scale float64
	// Write a readable name next to every hull vertex
	Labels bool
}

// Draw points and hulls (keyed by tag) to a PNG at path. The origin is at the
// bottom left, so counterclockwise hulls look counterclockwise.
func DrawPNG(path string, points []Point, hulls map[int][]Point, opts DrawOptions) error {
	if len(points) == 0 {
		return errors.New("nothing to draw")
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, float64(p.X))
		minY = math.Min(minY, float64(p.Y))
		maxX = math.Max(maxX, float64(p.X))
		maxY = math.Max(maxY, float64(p.Y))
	}

	width := scale*(maxX-minX) + dbgDrawPadding*2
	height := scale*(maxY-minY) + dbgDrawPadding*2
	if width > dbgDrawMaxSize || height > dbgDrawMaxSize {
		return errors.Errorf("canvas would be %.0fx%.0f pixels, lower the scale", width, height)
	}

	c := gg.NewContext(int(width), int(height))
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, width, height)
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, height)
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	tags := make([]int, 0, len(hulls))
	for tag := range hulls {
		tags = append(tags, tag)
	}
	sort.Ints(tags)

	c.SetLineWidth(2)
	for _, tag := range tags {
		hull := hulls[tag]
		if len(hull) == 0 {
			continue
		}
		c.MoveTo(float64(hull[0].X), float64(hull[0].Y))
		for _, p := range hull[1:] {
			c.LineTo(float64(p.X), float64(p.Y))
		}
		col := PaletteColor(tag)
		c.SetRGBA255(int(col.R), int(col.G), int(col.B), 64)
		c.FillPreserve()
		c.SetColor(col)
		c.Stroke()
	}

	radius := 2 / scale
	for _, p := range points {
		c.DrawCircle(float64(p.X), float64(p.Y), radius)
		c.SetColor(PaletteColor(p.Tag))
		c.Fill()
	}

	if opts.Labels {
		for _, tag := range tags {
			for _, p := range Polygon(hulls[tag]).Vertices() {
				// Text has to be drawn in device space, or it comes out upside down
				x, y := c.TransformPoint(float64(p.X), float64(p.Y))
				c.Push()
				c.Identity()
				c.SetRGB(1, 1, 1)
				c.DrawStringAnchored(p.DbgName(), x+4, y-4, 0, 0)
				c.Pop()
			}
		}
	}

	return errors.Wrap(c.SavePNG(path), "saving preview")
}
