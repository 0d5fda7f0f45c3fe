package sheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

// Oversample is the fixed multiplier applied to the logical canvas size so
// the exported sheet comes out at higher resolution than the on-screen cells.
const Oversample = 2

// Cards are 5:7, so cell height = width * 1.4.
const cardAspect = 1.4

var (
	background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridLine   = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Layout describes the grid shape and the configured cell width.
type Layout struct {
	Rows      int `json:"rows"`
	Cols      int `json:"cols"`
	CellWidth int `json:"cell_width"`
}

// CellHeight derives the cell height for a width at the card aspect ratio.
func CellHeight(width int) int {
	return int(math.Round(float64(width) * cardAspect))
}

func (l Layout) CellHeight() int {
	return CellHeight(l.CellWidth)
}

// LogicalSize is the unscaled sheet size in cells times cell geometry.
func (l Layout) LogicalSize() (w, h int) {
	return l.Cols * l.CellWidth, l.Rows * l.CellHeight()
}

// PhysicalSize is the pixel size of the composed buffer.
func (l Layout) PhysicalSize() (w, h int) {
	w, h = l.LogicalSize()
	return w * Oversample, h * Oversample
}

// CellAt maps a zero-based row-major position onto (row, col).
func CellAt(position, cols int) (row, col int) {
	return position / cols, position % cols
}

// Placed is one render input: a decoded image and its grid position.
type Placed struct {
	Position int
	Image    image.Image
}

// Compose renders the entries onto a rows×cols sheet at Oversample times the
// logical size. It is a pure function of its inputs: the same entries in the
// same order yield a pixel-identical buffer. Entries whose position falls
// outside the grid are omitted, and entries sharing a cell are drawn in slice
// order, so the later one wins.
func Compose(entries []Placed, l Layout) *image.NRGBA {
	cw := l.CellWidth * Oversample
	ch := l.CellHeight() * Oversample

	pw, ph := l.PhysicalSize()
	canvas := imaging.New(pw, ph, background)
	drawGridLines(canvas, l, cw, ch)

	for _, e := range entries {
		if e.Image == nil {
			continue
		}
		row, col := CellAt(e.Position, l.Cols)
		if row < 0 || col < 0 || row >= l.Rows || col >= l.Cols {
			continue
		}
		// Stretched to the cell, not fitted: the source aspect ratio is
		// the uploader's problem.
		cell := imaging.Resize(e.Image, cw, ch, imaging.Lanczos)
		canvas = imaging.Paste(canvas, cell, image.Pt(col*cw, row*ch))
	}
	return canvas
}

// drawGridLines paints a separator at every interior cell boundary. Cosmetic,
// but drawn deterministically so repeated renders stay identical.
func drawGridLines(canvas *image.NRGBA, l Layout, cw, ch int) {
	pw, ph := l.PhysicalSize()
	for c := 1; c < l.Cols; c++ {
		fillRect(canvas, c*cw, 0, Oversample, ph)
	}
	for r := 1; r < l.Rows; r++ {
		fillRect(canvas, 0, r*ch, pw, Oversample)
	}
}

func fillRect(canvas *image.NRGBA, x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			canvas.SetNRGBA(xx, yy, gridLine)
		}
	}
}

// EncodePNG encodes a composed sheet for download or disk export.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
