package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// White is the background color and the eraser color.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Buffer is the pixel surface the canvas draws into. Pixels outside the
// bounds are silently clipped.
type Buffer struct {
	img *image.RGBA
}

// NewBuffer returns a width x height buffer filled with fill.
func NewBuffer(width, height int, fill color.RGBA) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return &Buffer{img: img}
}

func (b *Buffer) Bounds() image.Rectangle {
	return b.img.Bounds()
}

// At returns the pixel at (x, y), or transparent black outside the buffer.
func (b *Buffer) At(x, y int) color.RGBA {
	return b.img.RGBAAt(x, y)
}

// Set writes one pixel if it lies inside the buffer.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(b.img.Bounds()) {
		b.img.SetRGBA(x, y, c)
	}
}

// Image exposes the backing image. Callers must not keep it past the
// current draw.
func (b *Buffer) Image() *image.RGBA {
	return b.img
}

// Blitter receives a rectangle of packed RGBA pixels, row-major with a
// stride of 4*w bytes.
type Blitter interface {
	Blit(x, y, w, h int, pix []uint8)
}

// BlitTo hands the whole buffer to dst with its top-left corner at origin.
func (b *Buffer) BlitTo(dst Blitter, origin image.Point) {
	r := b.img.Bounds()
	dst.Blit(origin.X, origin.Y, r.Dx(), r.Dy(), b.img.Pix)
}

// ImageBlitter adapts a draw.Image to Blitter.
type ImageBlitter struct {
	Dst draw.Image
}

func (ib ImageBlitter) Blit(x, y, w, h int, pix []uint8) {
	src := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	draw.Draw(ib.Dst, image.Rect(x, y, x+w, y+h), src, image.Point{}, draw.Src)
}
