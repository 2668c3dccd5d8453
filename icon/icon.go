// Package icon rasterizes placeholder badge icons: a circular ring on a
// solid background, overlaid with either a text label or a magnifier-glass
// arc depending on the pixel size.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"icongen/font"
)

const (
	// labelSize and up get a text label, everything below gets the arc.
	labelSize = 48
	// fullLabelSize and up get the full label instead of the short one.
	fullLabelSize = 64
)

type Renderer struct {
	theme *Theme
}

func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Render draws the badge for spec and writes it as a PNG, printing a
// confirmation line. Rendering is deterministic in spec.Size: repeated calls
// produce byte-identical files.
func (r *Renderer) Render(spec Spec) error {
	if spec.Size <= 0 {
		return fmt.Errorf("invalid icon size %d", spec.Size)
	}

	img := newCanvas(spec.Size, r.theme.background)
	r.drawRing(img, spec.Size)
	if spec.Size >= labelSize {
		r.drawLabel(img, spec.Size)
	} else {
		r.drawGlass(img, spec.Size)
	}

	if err := writePNG(spec.OutputPath, img); err != nil {
		return err
	}
	fmt.Printf("Created %s (%dx%d)\n", spec.OutputPath, spec.Size, spec.Size)
	return nil
}

// Probe checks the drawing surface once before any rendering: a canvas must
// encode and a glyph face must resolve.
func Probe() error {
	img := newCanvas(1, color.RGBA{A: 255})
	if err := png.Encode(io.Discard, img); err != nil {
		return fmt.Errorf("png encoder unavailable: %w", err)
	}
	if font.Face(13) == nil {
		return fmt.Errorf("no glyph face available")
	}
	return nil
}

func newCanvas(size int, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// drawRing strokes the circle inscribed in the box that a size/4 margin
// leaves, with the stroke growing inward from the radius.
func (r *Renderer) drawRing(img *image.RGBA, size int) {
	margin := size / 4
	radius := float64(size/2 - margin)
	width := float64(ringWidth(size))
	r.strokeRing(img, size, radius, width, 0, 360)
}

// drawGlass approximates a magnifying glass: an open 270-degree arc of
// radius size/3 around the center, with the gap toward the lower right.
func (r *Renderer) drawGlass(img *image.RGBA, size int) {
	radius := float64(size / 3)
	width := float64(glassWidth(size))
	r.strokeRing(img, size, radius, width, 45, 315)
}

// strokeRing paints every pixel whose center falls inside the annulus
// [radius-width, radius] and whose angle from the canvas center lies in
// [from, to] degrees. Angles grow clockwise in image coordinates, 0 at
// three o'clock.
func (r *Renderer) strokeRing(img *image.RGBA, size int, radius, width, from, to float64) {
	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - center + 0.5
			dy := float64(y) - center + 0.5
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist > radius || dist <= radius-width {
				continue
			}
			deg := math.Atan2(dy, dx) * 180 / math.Pi
			if deg < 0 {
				deg += 360
			}
			if deg >= from && deg <= to {
				img.SetRGBA(x, y, r.theme.stroke)
			}
		}
	}
}

// drawLabel centers the size-appropriate label inside the badge, using a
// face resolved at point size size/3.
func (r *Renderer) drawLabel(img *image.RGBA, size int) {
	face := font.Face(float64(size / 3))
	text := r.label(size)

	bounds, _ := xfont.BoundString(face, text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := (size - w) / 2
	y := (size - h) / 2

	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.theme.stroke),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		},
	}
	d.DrawString(text)
}

func (r *Renderer) label(size int) string {
	if size >= fullLabelSize {
		return r.theme.Label.Full
	}
	return r.theme.Label.Short
}

func ringWidth(size int) int {
	if w := size / 32; w > 2 {
		return w
	}
	return 2
}

func glassWidth(size int) int {
	if w := size / 16; w > 1 {
		return w
	}
	return 1
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
