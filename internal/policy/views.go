package policy

// Icon identifies one of the battery drawables.
type Icon int

const (
	// IconNone means the current style leaves the icon untouched.
	IconNone Icon = iota
	IconUnknown
	IconNormal
	IconCharge
	IconNormalMin
	IconChargeMin
)

// Tint is an optional 0xRRGGBB override applied source-in over the icon's
// opaque pixels. The zero value means no override.
type Tint struct {
	RGB   uint32
	Valid bool
}

// IconView is an icon widget registered with the controller. The controller
// keeps a back-reference only; the widget's lifetime belongs to its owner.
type IconView interface {
	SetVisible(visible bool)
	SetIcon(icon Icon)
	// SetImageLevel selects the frame of a level-list drawable.
	SetImageLevel(level int)
	// SetTint applies the override, or clears any filter when t is invalid.
	SetTint(t Tint)
	SetDescription(text string)
}

// LabelView is a text widget registered with the controller.
type LabelView interface {
	SetVisible(visible bool)
	SetText(text string)
}

// ChangeFunc is invoked after every battery broadcast with the new level and
// whether the battery is charging.
type ChangeFunc func(level int, charging bool)
