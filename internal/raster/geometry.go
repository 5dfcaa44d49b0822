package raster

import (
	"image"
	"image/color"
)

// Line draws a one pixel wide line from (x0, y0) to (x1, y1), both ends
// included.
func (b *Buffer) Line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		b.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Stamp approximates a thick segment from p to q by drawing size*size
// parallel one pixel lines, each shifted by (i-size/2, j-size/2). Large
// sizes show banding on diagonals; that is the expected look of the brush.
// A size below 1 draws nothing.
func (b *Buffer) Stamp(p, q image.Point, size int, c color.RGBA) {
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			m := i - size/2
			n := j - size/2
			b.Line(p.X+m, p.Y+n, q.X+m, q.Y+n, c)
		}
	}
}

// HBand draws |size| horizontal lines from x1 to x2. A positive size runs
// the rows downward from y (y, y+1, ...), a negative size runs them upward
// (y, y-1, ...).
func (b *Buffer) HBand(size, x1, x2, y int, c color.RGBA) {
	for k := 0; k < size; k++ {
		b.Line(x1, y+k, x2, y+k, c)
	}
	for k := 0; k < -size; k++ {
		b.Line(x1, y-k, x2, y-k, c)
	}
}

// VBand is the vertical counterpart of HBand: a positive size runs the
// columns right from x, a negative size runs them left.
func (b *Buffer) VBand(size, y1, y2, x int, c color.RGBA) {
	for k := 0; k < size; k++ {
		b.Line(x+k, y1, x+k, y2, c)
	}
	for k := 0; k < -size; k++ {
		b.Line(x-k, y1, x-k, y2, c)
	}
}

// RectOutline draws the border of the rectangle with opposite corners p
// and q. Each band grows inward from the edge it starts on, measured from
// p, so when q is above or left of p the bands grow outward instead and
// the corners overlap or leave gaps once size is large relative to the
// rectangle.
func (b *Buffer) RectOutline(p, q image.Point, size int, c color.RGBA) {
	b.HBand(size, p.X, q.X, p.Y, c)
	b.HBand(-size, q.X, p.X, q.Y, c)
	b.VBand(size, p.Y, q.Y, p.X, c)
	b.VBand(-size, q.Y, p.Y, q.X, c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
