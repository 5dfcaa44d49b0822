package state

import (
	"fmt"
	"image/color"
	"sync"
)

// ToolCell holds the active tool. It is written by the panels and the
// canvas key handler and read by the canvas on every pointer event.
type ToolCell struct {
	mu   sync.Mutex
	tool Tool
}

func (c *ToolCell) Get() Tool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tool
}

func (c *ToolCell) Set(t Tool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tool = t
}

// Channel selects one component of the draw color.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "r"
	case Green:
		return "g"
	case Blue:
		return "b"
	}
	return fmt.Sprintf("channel(%d)", int(ch))
}

// ParseChannelName accepts "r", "g", "b" or the spelled out names.
func ParseChannelName(name string) (Channel, error) {
	switch name {
	case "r", "red":
		return Red, nil
	case "g", "green":
		return Green, nil
	case "b", "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("unknown color channel %q", name)
}

// ColorCell holds the draw color. The alpha channel is always opaque.
type ColorCell struct {
	mu    sync.Mutex
	color color.RGBA
}

func (c *ColorCell) Get() color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

func (c *ColorCell) Set(rgb color.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// SetChannel replaces one channel and leaves the other two as they are.
func (c *ColorCell) SetChannel(ch Channel, v uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch ch {
	case Red:
		c.color.R = v
	case Green:
		c.color.G = v
	case Blue:
		c.color.B = v
	}
	c.color.A = 255
}

// SizeCell holds the brush size. Only Shrink enforces a lower bound.
type SizeCell struct {
	mu   sync.Mutex
	size int
}

func (c *SizeCell) Get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

func (c *SizeCell) Set(s int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = s
}

// Grow increments the size and returns the new value.
func (c *SizeCell) Grow() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size++
	return c.size
}

// Shrink decrements the size, never going below 1, and returns the new value.
func (c *SizeCell) Shrink() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.size > 1 {
		c.size--
	} else {
		c.size = 1
	}
	return c.size
}

// Shared bundles the tool, color and size cells handed to the canvas and
// to every panel. Each cell locks on its own: a reader can see a new tool
// together with an old color, and no combined snapshot is ever taken.
type Shared struct {
	Tool  *ToolCell
	Color *ColorCell
	Size  *SizeCell
}

// NewShared creates the state with the given initial values.
func NewShared(tool Tool, rgb color.RGBA, size int) *Shared {
	s := &Shared{
		Tool:  &ToolCell{},
		Color: &ColorCell{},
		Size:  &SizeCell{},
	}
	s.Tool.Set(tool)
	s.Color.Set(rgb)
	s.Size.Set(size)
	return s
}

// NewDefaultShared returns pen, black, size 7.
func NewDefaultShared() *Shared {
	return NewShared(ToolPen, color.RGBA{A: 255}, DefaultBrushSize)
}

// DefaultBrushSize is the size the panel's size field starts with.
const DefaultBrushSize = 7
