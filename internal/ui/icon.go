package ui

import (
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"battery-termui/internal/policy"
)

// Glyphs per state-of-charge decile, regular and minimal variants.
var (
	normalGlyphs = [...]string{"󰁺", "󰁻", "󰁼", "󰁽", "󰁾", "󰁿", "󰂀", "󰂁", "󰂂", "󰁹"}
	minGlyphs    = [...]string{"▁", "▂", "▃", "▃", "▄", "▅", "▆", "▆", "▇", "█"}
)

const (
	chargeGlyph    = "󰂄"
	chargeMinGlyph = "󱐋"
	unknownGlyph   = "󰂑"
)

// NewIconWidget creates a battery icon view backed by a termui paragraph.
func NewIconWidget() *IconWidget {
	p := widgets.NewParagraph()
	p.Border = false
	return &IconWidget{Paragraph: p}
}

type IconWidget struct {
	*widgets.Paragraph

	icon        policy.Icon
	level       int
	visible     bool
	tint        policy.Tint
	description string
}

func (w *IconWidget) SetVisible(visible bool) {
	w.visible = visible
	w.refresh()
}

func (w *IconWidget) SetIcon(icon policy.Icon) {
	w.icon = icon
	w.refresh()
}

func (w *IconWidget) SetImageLevel(level int) {
	w.level = level
	w.refresh()
}

func (w *IconWidget) SetTint(t policy.Tint) {
	w.tint = t
	w.refresh()
}

func (w *IconWidget) SetDescription(text string) {
	w.description = text
}

// Description returns the accessibility text of the last applied state.
func (w *IconWidget) Description() string {
	return w.description
}

func (w *IconWidget) refresh() {
	if !w.visible {
		w.Text = ""
		return
	}
	w.Text = glyph(w.icon, w.level)
	if w.tint.Valid {
		w.TextStyle = ui.NewStyle(nearestColor(w.tint.RGB))
	} else {
		w.TextStyle = ui.Theme.Paragraph.Text
	}
}

func glyph(icon policy.Icon, level int) string {
	bucket := level / 10
	if bucket > 9 {
		bucket = 9
	}
	if bucket < 0 {
		bucket = 0
	}

	switch icon {
	case policy.IconUnknown:
		return unknownGlyph
	case policy.IconCharge:
		return chargeGlyph
	case policy.IconChargeMin:
		return chargeMinGlyph
	case policy.IconNormalMin:
		return minGlyphs[bucket]
	default:
		return normalGlyphs[bucket]
	}
}

var baseColors = []struct {
	color   ui.Color
	r, g, b int
}{
	{ui.ColorBlack, 0, 0, 0},
	{ui.ColorRed, 205, 0, 0},
	{ui.ColorGreen, 0, 205, 0},
	{ui.ColorYellow, 205, 205, 0},
	{ui.ColorBlue, 0, 0, 238},
	{ui.ColorMagenta, 205, 0, 205},
	{ui.ColorCyan, 0, 205, 205},
	{ui.ColorWhite, 229, 229, 229},
}

// nearestColor maps a 0xRRGGBB tint to the closest termui base color.
func nearestColor(rgb uint32) ui.Color {
	r := int(rgb >> 16 & 0xFF)
	g := int(rgb >> 8 & 0xFF)
	b := int(rgb & 0xFF)

	best := ui.ColorWhite
	bestDist := 1 << 30

	for _, c := range baseColors {
		dist := (r-c.r)*(r-c.r) + (g-c.g)*(g-c.g) + (b-c.b)*(b-c.b)
		if dist < bestDist {
			best = c.color
			bestDist = dist
		}
	}
	return best
}
