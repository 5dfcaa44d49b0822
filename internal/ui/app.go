package ui

import (
	"LocalPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// RunApp opens the canvas window and the tool panel window and blocks in
// the event loop until the canvas window is closed.
func RunApp(width, height int, shared *state.Shared, onStroke func(state.Stroke)) {
	myApp := app.New()

	canvasWindow := myApp.NewWindow("Canvas")
	paint := NewPaintCanvas(width, height, shared)
	paint.OnStroke = onStroke
	canvasWindow.SetContent(paint)
	canvasWindow.Resize(fyne.NewSize(float32(width), float32(height)))
	canvasWindow.SetMaster()
	canvasWindow.Canvas().Focus(paint)

	toolsWindow := myApp.NewWindow("Tools")
	toolsWindow.SetContent(NewToolPanel(shared).Content())
	toolsWindow.Resize(fyne.NewSize(120, 420))
	toolsWindow.Show()

	canvasWindow.ShowAndRun()
}
