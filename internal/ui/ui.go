package ui

import (
	ui "github.com/gizak/termui/v3"
)

// Controller is a drawable and resizable UI interface.
type Controller interface {
	ui.Drawable
	// Resize updates controller size.
	Resize()
}
