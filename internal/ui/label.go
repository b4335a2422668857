package ui

import (
	"github.com/gizak/termui/v3/widgets"
)

// NewLabelWidget creates a battery label view backed by a termui paragraph.
func NewLabelWidget() *LabelWidget {
	p := widgets.NewParagraph()
	p.Border = false
	return &LabelWidget{Paragraph: p}
}

type LabelWidget struct {
	*widgets.Paragraph

	text    string
	visible bool
}

func (w *LabelWidget) SetVisible(visible bool) {
	w.visible = visible
	w.refresh()
}

func (w *LabelWidget) SetText(text string) {
	w.text = text
	w.refresh()
}

func (w *LabelWidget) refresh() {
	if !w.visible {
		w.Text = ""
		return
	}
	w.Text = w.text
}
