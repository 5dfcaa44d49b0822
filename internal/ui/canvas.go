package ui

import (
	"image"
	"image/color"
	"log"
	"sync"

	"LocalPaint/internal/raster"
	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// PaintCanvas is the drawing surface. It owns the pixel buffer and the
// in-progress stroke point, and reads tool, color and size from the shared
// state on every event.
type PaintCanvas struct {
	widget.BaseWidget

	shared *state.Shared

	mu   sync.Mutex
	buf  *raster.Buffer
	prev *image.Point // last pen point, or the line/rectangle anchor

	// OnStroke is called after every committed stroke, outside the buffer lock.
	OnStroke func(s state.Stroke)
}

var _ fyne.Widget = (*PaintCanvas)(nil)
var _ fyne.Focusable = (*PaintCanvas)(nil)
var _ desktop.Mouseable = (*PaintCanvas)(nil)
var _ desktop.Hoverable = (*PaintCanvas)(nil)

// NewPaintCanvas creates a white width x height canvas bound to shared.
func NewPaintCanvas(width, height int, shared *state.Shared) *PaintCanvas {
	c := &PaintCanvas{
		shared: shared,
		buf:    raster.NewBuffer(width, height, raster.White),
	}
	c.ExtendBaseWidget(c)
	return c
}

// At returns the pixel at (x, y).
func (c *PaintCanvas) At(x, y int) color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.At(x, y)
}

// Anchor returns the pending stroke point, if any.
func (c *PaintCanvas) Anchor() (image.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prev == nil {
		return image.Point{}, false
	}
	return *c.prev, true
}

// HandlePointer feeds one pointer sample into the stroke state machine.
// primary reports whether the primary button is held. It always reports
// the event as handled.
func (c *PaintCanvas) HandlePointer(p image.Point, primary bool) bool {
	tool := c.shared.Tool.Get()

	c.mu.Lock()
	stroke, drawn := c.pointerLocked(tool, p, primary)
	c.mu.Unlock()

	if drawn {
		if c.OnStroke != nil {
			c.OnStroke(stroke)
		}
		c.Refresh()
	}
	return true
}

func (c *PaintCanvas) pointerLocked(tool state.Tool, p image.Point, primary bool) (state.Stroke, bool) {
	var (
		stroke state.Stroke
		drawn  bool
	)
	if primary {
		switch tool {
		case state.ToolPen, state.ToolErase:
			col := c.shared.Color.Get()
			if tool == state.ToolErase {
				col = raster.White
			}
			if c.prev != nil {
				size := c.shared.Size.Get()
				c.buf.Stamp(*c.prev, p, size, col)
				stroke, drawn = state.NewStroke(tool, *c.prev, p, col, size), true
			}
			c.prev = &p
		case state.ToolLine, state.ToolRectangle:
			if c.prev == nil {
				c.prev = &p
			}
		case state.ToolFill, state.ToolCircle:
			// no drawing behaviour
		}
		return stroke, drawn
	}

	switch {
	case tool == state.ToolRectangle && c.prev != nil:
		col, size := c.shared.Color.Get(), c.shared.Size.Get()
		c.buf.RectOutline(*c.prev, p, size, col)
		stroke, drawn = state.NewStroke(tool, *c.prev, p, col, size), true
	case tool == state.ToolLine && c.prev != nil:
		col, size := c.shared.Color.Get(), c.shared.Size.Get()
		c.buf.Stamp(*c.prev, p, size, col)
		stroke, drawn = state.NewStroke(tool, *c.prev, p, col, size), true
	}
	c.prev = nil
	return stroke, drawn
}

// HandleKey applies the single character shortcuts: p, e, f, l and r pick
// a tool, + or = grows the brush and - shrinks it. Other runes are ignored.
// A tool switch does not clear the pending stroke point.
func (c *PaintCanvas) HandleKey(r rune) bool {
	switch r {
	case 'p':
		c.setTool(state.ToolPen)
	case 'e':
		c.setTool(state.ToolErase)
	case 'f':
		c.setTool(state.ToolFill)
	case 'l':
		c.setTool(state.ToolLine)
	case 'r':
		c.setTool(state.ToolRectangle)
	case '+', '=':
		log.Printf("[CANVAS] Brush larger: %d", c.shared.Size.Grow())
	case '-':
		log.Printf("[CANVAS] Brush smaller: %d", c.shared.Size.Shrink())
	}
	return true
}

func (c *PaintCanvas) setTool(t state.Tool) {
	c.shared.Tool.Set(t)
	log.Printf("[CANVAS] Changing to %s tool", t)
}

// Draw hands the whole pixel buffer to sink at origin.
func (c *PaintCanvas) Draw(sink raster.Blitter, origin image.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.BlitTo(sink, origin)
}

func (c *PaintCanvas) size() fyne.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.buf.Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

func toPoint(pos fyne.Position) image.Point {
	return image.Pt(int(pos.X), int(pos.Y))
}

func (c *PaintCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.requestFocus()
	c.HandlePointer(toPoint(e.Position), true)
}

func (c *PaintCanvas) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.HandlePointer(toPoint(e.Position), false)
}

// MouseMoved carries the held buttons, so dragging arrives here as well as
// plain hovering.
func (c *PaintCanvas) MouseMoved(e *desktop.MouseEvent) {
	c.HandlePointer(toPoint(e.Position), e.Button&desktop.MouseButtonPrimary != 0)
}

func (c *PaintCanvas) MouseIn(*desktop.MouseEvent) {}
func (c *PaintCanvas) MouseOut()                   {}

func (c *PaintCanvas) TypedRune(r rune) {
	c.HandleKey(r)
}

func (c *PaintCanvas) TypedKey(*fyne.KeyEvent) {}
func (c *PaintCanvas) FocusGained()            {}
func (c *PaintCanvas) FocusLost()              {}

func (c *PaintCanvas) requestFocus() {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return
	}
	if cv := app.Driver().CanvasForObject(c); cv != nil {
		cv.Focus(c)
	}
}

func (c *PaintCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &paintCanvasRenderer{paint: c}
	b := c.size()
	r.frame = image.NewRGBA(image.Rect(0, 0, int(b.Width), int(b.Height)))
	c.Draw(raster.ImageBlitter{Dst: r.frame}, image.Point{})
	r.image = canvas.NewImageFromImage(r.frame)
	r.image.FillMode = canvas.ImageFillStretch
	r.image.ScaleMode = canvas.ImageScalePixels
	return r
}

// paintCanvasRenderer blits the full buffer into frame on every refresh.
type paintCanvasRenderer struct {
	paint *PaintCanvas
	frame *image.RGBA
	image *canvas.Image
}

func (r *paintCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *paintCanvasRenderer) Refresh() {
	r.paint.Draw(raster.ImageBlitter{Dst: r.frame}, image.Point{})
	r.image.Refresh()
}

// Layout pins the image to its pixel size so pointer positions map one to
// one onto buffer coordinates.
func (r *paintCanvasRenderer) Layout(fyne.Size) {
	r.image.Move(fyne.NewPos(0, 0))
	r.image.Resize(r.paint.size())
}

func (r *paintCanvasRenderer) MinSize() fyne.Size {
	return r.paint.size()
}

func (r *paintCanvasRenderer) Destroy() {}
