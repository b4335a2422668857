package ui

import (
	ui "github.com/gizak/termui/v3"
)

const barHeight = 3

// NewBar creates the status bar controller with the battery icon and label
// cells laid out on a grid.
func NewBar(icon *IconWidget, label *LabelWidget) *barController {
	ctl := &barController{
		Grid:  ui.NewGrid(),
		icon:  icon,
		label: label,
	}
	ctl.initUI()
	return ctl
}

type barController struct {
	*ui.Grid

	icon  *IconWidget
	label *LabelWidget
}

func (c *barController) Resize() {
	w, _ := ui.TerminalDimensions()
	c.Grid.SetRect(0, 0, w, barHeight)
}

func (c *barController) initUI() {
	c.Grid.Set(
		ui.NewRow(1.0,
			ui.NewCol(.5, c.icon),
			ui.NewCol(.5, c.label),
		),
	)
}
