package state

import "fmt"

type Tool int

const (
	ToolPen Tool = iota
	ToolErase
	ToolFill // selectable, no drawing behaviour
	ToolLine
	ToolRectangle
	ToolCircle // declared only, nothing selects it from the UI
)

// PanelTools lists the tools that get a button in the tool panel, in order.
var PanelTools = []Tool{ToolPen, ToolErase, ToolRectangle, ToolLine}

var toolNames = map[Tool]string{
	ToolPen:       "pen",
	ToolErase:     "erase",
	ToolFill:      "fill",
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolCircle:    "circle",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// Label is the button text shown in the tool panel, with the keyboard
// shortcut in parentheses.
func (t Tool) Label() string {
	switch t {
	case ToolPen:
		return "Pen(p)"
	case ToolErase:
		return "Erase(e)"
	case ToolRectangle:
		return "Rectangle(r)"
	case ToolLine:
		return "Line(l)"
	}
	return "other"
}

// Implemented reports whether pointer input does anything with this tool.
func (t Tool) Implemented() bool {
	switch t {
	case ToolPen, ToolErase, ToolLine, ToolRectangle:
		return true
	}
	return false
}

// ParseTool maps a tool name as produced by String back to a Tool.
func ParseTool(name string) (Tool, error) {
	for t, n := range toolNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}
