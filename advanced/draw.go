package advanced

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/mbr/internal/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the shape, in pixels, so the rectangle outline is not
// clipped.
const drawPadding = 40

// Draw the input points, their hull and a bounding rectangle. The picture is
// flipped so the origin is at the bottom left, and scale is the number of
// pixels per unit. With labels set, each hull vertex is tagged with a
// readable name, which is handy when comparing hulls while debugging.
func Render(points, hull []Point, rect Rectangle, scale float64, labels bool) *gg.Context {
	corners := rect.Corners()
	all := append(append([]Point{}, points...), corners[:]...)
	box := BoundingBoxOf(all)

	width := int(math.Ceil(scale*box.Width())) + drawPadding*2
	height := int(math.Ceil(scale*box.Height())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Push()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-box.Min.X, -box.Min.Y)

	lineWidth := 2 / scale

	// Rectangle
	c.MoveTo(corners[0].X, corners[0].Y)
	for _, corner := range corners[1:] {
		c.LineTo(corner.X, corner.Y)
	}
	c.ClosePath()
	c.SetRGBA(1, 1, 0, 0.2)
	c.FillPreserve()
	c.SetRGB(1, 1, 0)
	c.SetLineWidth(lineWidth)
	c.Stroke()

	// Hull
	if len(hull) > 0 {
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(lineWidth)
		c.Stroke()
	}

	// Points
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	// Text has to be drawn in native coordinates, or it comes out mirrored.
	var labelPositions [][2]float64
	if labels {
		for _, p := range hull {
			x, y := c.TransformPoint(p.X, p.Y)
			labelPositions = append(labelPositions, [2]float64{x, y})
		}
	}
	c.Pop()

	if labels {
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		for i, pos := range labelPositions {
			c.DrawStringAnchored(dbg.Name(hull[i]), pos[0], pos[1]-8, 0.5, 0)
		}
	}
	return c
}

// Render the picture and print it to w as an inline image (iTerm only).
func Preview(w io.Writer, points, hull []Point, rect Rectangle, scale float64) error {
	dir, err := os.MkdirTemp("", "mbr")
	if err != nil {
		return errors.Wrap(err, "creating preview directory")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mbr.png")
	if err := Render(points, hull, rect, scale, true).SavePNG(path); err != nil {
		return errors.Wrap(err, "saving preview")
	}
	imgcat.CatFile(path, w)
	return nil
}
