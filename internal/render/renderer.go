// Package render draws a date-stamp watermark onto a copy of an image
// and writes the result, preserving the source file untouched.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"photomark/internal/exifdate"
	"photomark/internal/layout"
)

const (
	// shadowOffset is the pixel offset of the drop shadow on each axis.
	shadowOffset = 2
	// jpegQuality is the JPEG encode quality for output files.
	jpegQuality = 95
)

// Options configures a single watermark render. Immutable once passed in.
type Options struct {
	FontSize int
	Color    color.RGBA
	Anchor   string
	FontPath string
}

// Renderer stamps images with their capture date.
type Renderer struct {
	logger *zap.Logger
	dates  *exifdate.Resolver
	faces  *FaceLoader
}

func New(logger *zap.Logger) *Renderer {
	return &Renderer{
		logger: logger,
		dates:  exifdate.NewResolver(logger),
		faces:  NewFaceLoader(logger),
	}
}

// Stamp reads the image at inPath, draws its capture date at the
// configured anchor, and writes the result to outPath. The source file
// is never modified.
func (r *Renderer) Stamp(inPath, outPath string, opts Options) error {
	src, err := imaging.Open(inPath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	canvas := imaging.Clone(src)

	text := r.dates.Resolve(inPath)
	face := r.faces.Load(opts.FontPath, opts.FontSize)
	textW, textH := measure(face, text)

	b := canvas.Bounds()
	pt := layout.Position(b.Dx(), b.Dy(), textW, textH, opts.Anchor)

	drawText(canvas, face, text, pt.X+shadowOffset, pt.Y+shadowOffset, color.RGBA{A: 0xFF})
	drawText(canvas, face, text, pt.X, pt.Y, opts.Color)

	if err := imaging.Save(canvas, outPath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

// measure returns the pixel bounding box of text rendered with face.
func measure(face font.Face, text string) (w, h int) {
	d := &font.Drawer{Face: face}
	m := face.Metrics()
	return d.MeasureString(text).Ceil(), (m.Ascent + m.Descent).Ceil()
}

// drawText draws text with its bounding box's top-left corner at (x, y).
func drawText(dst *image.NRGBA, face font.Face, text string, x, y int, col color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
