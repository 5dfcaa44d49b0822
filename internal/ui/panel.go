package ui

import (
	"image/color"
	"log"
	"strconv"

	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// colorSwatch previews the current draw color in the tool panel.
type colorSwatch struct {
	widget.BaseWidget
	rect *canvas.Rectangle
}

func newColorSwatch(c color.Color) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c)}
	s.rect.SetMinSize(fyne.NewSize(32, 32))
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(s.rect, border))
}

// ToolPanel is the side window's content: one entry per color channel, a
// brush size entry and a button per tool. Entries commit on Enter.
type ToolPanel struct {
	shared *state.Shared

	Channels [3]*widget.Entry // indexed by state.Channel
	Size     *widget.Entry
	Buttons  []*widget.Button
	swatch   *colorSwatch
}

// NewToolPanel builds the panel widgets seeded from shared.
func NewToolPanel(shared *state.Shared) *ToolPanel {
	p := &ToolPanel{shared: shared}
	rgb := shared.Color.Get()
	p.swatch = newColorSwatch(rgb)

	for i, v := range []uint8{rgb.R, rgb.G, rgb.B} {
		ch := state.Channel(i)
		e := widget.NewEntry()
		e.SetText(strconv.Itoa(int(v)))
		e.OnSubmitted = func(text string) { p.commitChannel(ch, text) }
		p.Channels[i] = e
	}

	p.Size = widget.NewEntry()
	p.Size.SetText(strconv.Itoa(shared.Size.Get()))
	p.Size.OnSubmitted = p.commitSize

	for _, t := range state.PanelTools {
		tool := t
		p.Buttons = append(p.Buttons, widget.NewButton(tool.Label(), func() {
			shared.Tool.Set(tool)
			log.Printf("[PANEL] Tool set to %s", tool)
		}))
	}
	return p
}

func (p *ToolPanel) commitChannel(ch state.Channel, text string) {
	echo := p.shared.CommitChannel(ch, text)
	if echo != text {
		log.Printf("[PANEL] %s field %q reset to %q", ch, text, echo)
		p.Channels[ch].SetText(echo)
	}
	p.swatch.SetColor(p.shared.Color.Get())
}

func (p *ToolPanel) commitSize(text string) {
	if _, ok := p.shared.CommitSize(text); !ok {
		log.Printf("[PANEL] Ignoring brush size %q", text)
		return
	}
	log.Printf("[PANEL] Brush size set to %s", text)
}

// Content lays the panel out as a narrow column.
func (p *ToolPanel) Content() fyne.CanvasObject {
	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("r:"), p.Channels[state.Red],
		widget.NewLabel("g:"), p.Channels[state.Green],
		widget.NewLabel("b:"), p.Channels[state.Blue],
		widget.NewLabel("size:"), p.Size,
	)
	col := container.NewVBox(form, p.swatch, widget.NewSeparator())
	for _, b := range p.Buttons {
		col.Add(b)
	}
	return col
}
