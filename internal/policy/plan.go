package policy

import (
	"fmt"

	"battery-termui/internal/battery"
)

// RenderPlan is the presentation of one battery state: everything the apply
// step pushes to the registered views.
type RenderPlan struct {
	IconVisible  bool
	LabelVisible bool
	Icon         Icon
	Tint         Tint
	ImageLevel   int
	Label        string
	Description  string
}

// Plan derives the presentation for a battery state, style and tint. It is a
// pure function; applying the same plan twice makes the same view calls.
func Plan(state battery.State, style Style, tint Tint) RenderPlan {
	p := RenderPlan{
		Icon:        IconNormal,
		Tint:        tint,
		ImageLevel:  state.Level,
		Label:       fmt.Sprintf("%d%%", state.Level),
		Description: fmt.Sprintf("Battery %d percent.", state.Level),
	}

	switch {
	case state.Status == battery.StatusUnknown && (style == StyleNormal || style == StylePercent):
		// Unknown status doesn't rely on any style.
		p.IconVisible = true
		p.Icon = IconUnknown
	case style == StyleNormal:
		p.IconVisible = true
		if state.Charging() {
			p.Icon = IconCharge
		}
	case style == StylePercent:
		p.IconVisible = true
		p.LabelVisible = true
		if state.Charging() {
			p.Icon = IconChargeMin
		} else {
			p.Icon = IconNormalMin
		}
	default:
		// Circle, CirclePercent and Gone belong to another renderer.
		p.Icon = IconNone
	}

	return p
}

func (p RenderPlan) applyIcon(v IconView) {
	v.SetVisible(p.IconVisible)
	if p.Icon != IconNone {
		v.SetIcon(p.Icon)
	}
	v.SetTint(p.Tint)
	v.SetImageLevel(p.ImageLevel)
	v.SetDescription(p.Description)
}

func (p RenderPlan) applyLabel(v LabelView) {
	v.SetVisible(p.LabelVisible)
	v.SetText(p.Label)
}
