package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"gitlab.com/tinyland/lab/gridpaint/pkg/layout"
	"gitlab.com/tinyland/lab/gridpaint/pkg/theme"
)

var black = color.RGBA{A: 0xff}

// Raster is an in-memory RGBA surface.
type Raster struct {
	img *image.RGBA
	bg  color.RGBA
}

// NewRaster creates a w by h surface cleared to background (hex).
func NewRaster(w, h int, background string) *Raster {
	r := &Raster{
		img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		bg:  theme.RGBA(background, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	}
	r.Clear()
	return r
}

// Image returns the backing image. It is modified by later draws.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the surface dimensions in pixels.
func (r *Raster) Size() layout.Size {
	b := r.img.Bounds()
	return layout.Size{Width: b.Dx(), Height: b.Dy()}
}

// Clear fills the surface with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

// DrawLine strokes seg. Pixels outside the surface are clipped.
func (r *Raster) DrawLine(seg layout.Segment) {
	r.Fill(StrokeBounds(seg), seg.Pen.Color)
}

// Fill paints rect with a hex color. Malformed colors paint black.
func (r *Raster) Fill(rect layout.Rect, hex string) {
	if rect.Empty() {
		return
	}
	c := theme.RGBA(hex, black)
	dst := image.Rect(rect.X, rect.Y, rect.Right(), rect.Bottom())
	draw.Draw(r.img, dst, image.NewUniform(c), dst.Min, draw.Src)
}

// Encode writes the surface as PNG, upscaled by scale with
// nearest-neighbour sampling so strokes stay crisp.
func (r *Raster) Encode(w io.Writer, scale int) error {
	if err := imaging.Encode(w, r.scaled(scale), imaging.PNG); err != nil {
		return fmt.Errorf("paint: encode png: %w", err)
	}
	return nil
}

// Save writes the surface to path; the format follows the extension.
func (r *Raster) Save(path string, scale int) error {
	if err := imaging.Save(r.scaled(scale), path); err != nil {
		return fmt.Errorf("paint: save %s: %w", path, err)
	}
	return nil
}

func (r *Raster) scaled(scale int) image.Image {
	if scale <= 1 {
		return r.img
	}
	b := r.img.Bounds()
	return imaging.Resize(r.img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
}
