package policy

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Style is the user-selected visual mode for the battery indicator.
type Style int

const (
	StyleNormal Style = iota
	// StyleCircle and friends are drawn by a separate renderer; this
	// controller renders nothing for them.
	StyleCircle
	StylePercent
	StyleCirclePercent
	StyleGone
)

var styleNames = [...]string{"normal", "circle", "percent", "circle-percent", "gone"}

func (s Style) String() string {
	if s < StyleNormal || s > StyleGone {
		return "invalid"
	}
	return styleNames[s]
}

// ParseStyle maps a style name to its value.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return StyleNormal, errors.Errorf("unknown battery style %q", name)
}

// ParseTint maps an RRGGBB hex color, with or without a leading `#`, to a
// tint override. The empty string means no override.
func ParseTint(s string) (Tint, error) {
	if s == "" {
		return Tint{}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Tint{}, errors.Errorf("invalid tint %q", s)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Tint{}, errors.Wrapf(err, "invalid tint %q", s)
	}

	return Tint{RGB: uint32(rgb), Valid: true}, nil
}
