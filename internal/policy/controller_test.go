package policy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"battery-termui/internal/battery"
	"battery-termui/internal/bus"
	"battery-termui/internal/settings"
)

type fakeIconView struct {
	calls []string

	visible     bool
	icon        Icon
	tint        Tint
	imageLevel  int
	description string
}

func (v *fakeIconView) SetVisible(visible bool) {
	v.visible = visible
	v.calls = append(v.calls, fmt.Sprintf("visible=%v", visible))
}

func (v *fakeIconView) SetIcon(icon Icon) {
	v.icon = icon
	v.calls = append(v.calls, fmt.Sprintf("icon=%d", icon))
}

func (v *fakeIconView) SetImageLevel(level int) {
	v.imageLevel = level
	v.calls = append(v.calls, fmt.Sprintf("level=%d", level))
}

func (v *fakeIconView) SetTint(t Tint) {
	v.tint = t
	v.calls = append(v.calls, fmt.Sprintf("tint=%v", t))
}

func (v *fakeIconView) SetDescription(text string) {
	v.description = text
	v.calls = append(v.calls, "desc="+text)
}

type fakeLabelView struct {
	calls []string

	visible bool
	text    string
}

func (v *fakeLabelView) SetVisible(visible bool) {
	v.visible = visible
	v.calls = append(v.calls, fmt.Sprintf("visible=%v", visible))
}

func (v *fakeLabelView) SetText(text string) {
	v.text = text
	v.calls = append(v.calls, "text="+text)
}

func newTestController(t *testing.T) (*Controller, *settings.Store, func(battery.ChangeEvent)) {
	b := bus.New()
	store := settings.NewStore(b)

	c, err := NewController(b, store)
	assert.NoError(t, err)

	return c, store, func(ev battery.ChangeEvent) {
		bus.PublishBatteryChanged(b, ev)
	}
}

func TestControllerBroadcast(t *testing.T) {

	t.Run("charging percent scenario", func(t *testing.T) {
		c, store, broadcast := newTestController(t)

		icon := &fakeIconView{}
		label := &fakeLabelView{}
		c.AddIconView(icon)
		c.AddLabelView(label)

		var gotLevel int
		var gotCharging bool
		c.AddChangeFunc(func(level int, charging bool) {
			gotLevel = level
			gotCharging = charging
		})

		store.PutInt(settings.KeyBatteryStyle, int(StylePercent))
		broadcast(battery.ChangeEvent{Level: 42, Plugged: 1, Status: battery.StatusCharging})

		assert.True(t, icon.visible)
		assert.Equal(t, IconChargeMin, icon.icon)
		assert.Equal(t, 42, icon.imageLevel)
		assert.Contains(t, icon.description, "42")
		assert.True(t, label.visible)
		assert.Equal(t, "42%", label.text)
		assert.Equal(t, 42, gotLevel)
		assert.True(t, gotCharging)
	})

	t.Run("every registered view updated once", func(t *testing.T) {
		c, _, broadcast := newTestController(t)

		icons := make([]*fakeIconView, 3)
		for i := range icons {
			icons[i] = &fakeIconView{}
			c.AddIconView(icons[i])
		}

		var notified int
		c.AddChangeFunc(func(int, bool) { notified++ })
		c.AddChangeFunc(func(int, bool) { notified++ })

		broadcast(battery.ChangeEvent{Level: 80, Status: battery.StatusDischarging})

		for _, icon := range icons {
			assert.True(t, icon.visible)
			assert.Equal(t, IconNormal, icon.icon)
			// One apply: visibility, icon, tint, image level, description.
			assert.Len(t, icon.calls, 5)
		}
		assert.Equal(t, 2, notified)
	})

	t.Run("listeners run in registration order", func(t *testing.T) {
		c, _, broadcast := newTestController(t)

		var order []int
		c.AddChangeFunc(func(int, bool) { order = append(order, 1) })
		c.AddChangeFunc(func(int, bool) { order = append(order, 2) })
		c.AddChangeFunc(func(int, bool) { order = append(order, 3) })

		broadcast(battery.ChangeEvent{Level: 10, Status: battery.StatusDischarging})

		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("idempotent render", func(t *testing.T) {
		c, _, broadcast := newTestController(t)

		icon := &fakeIconView{}
		label := &fakeLabelView{}
		c.AddIconView(icon)
		c.AddLabelView(label)

		ev := battery.ChangeEvent{Level: 55, Status: battery.StatusDischarging}
		broadcast(ev)
		first := append([]string(nil), icon.calls...)
		firstLabel := append([]string(nil), label.calls...)

		icon.calls = nil
		label.calls = nil
		broadcast(ev)

		assert.Equal(t, first, icon.calls)
		assert.Equal(t, firstLabel, label.calls)
	})

	t.Run("unknown status shows unknown icon", func(t *testing.T) {
		c, _, broadcast := newTestController(t)

		icon := &fakeIconView{}
		c.AddIconView(icon)

		broadcast(battery.ChangeEvent{Level: 30, Plugged: 1, Status: battery.StatusUnknown})

		assert.True(t, icon.visible)
		assert.Equal(t, IconUnknown, icon.icon)
	})
}

func TestControllerStyleChange(t *testing.T) {

	t.Run("style change re-renders", func(t *testing.T) {
		c, store, broadcast := newTestController(t)

		icon := &fakeIconView{}
		label := &fakeLabelView{}
		c.AddIconView(icon)
		c.AddLabelView(label)

		broadcast(battery.ChangeEvent{Level: 60, Status: battery.StatusDischarging})
		assert.True(t, icon.visible)
		assert.False(t, label.visible)

		store.PutInt(settings.KeyBatteryStyle, int(StylePercent))
		assert.True(t, icon.visible)
		assert.True(t, label.visible)
		assert.Equal(t, IconNormalMin, icon.icon)
		assert.Equal(t, "60%", label.text)
	})

	t.Run("delegated style hides views without icon change", func(t *testing.T) {
		c, store, broadcast := newTestController(t)

		icon := &fakeIconView{}
		label := &fakeLabelView{}
		c.AddIconView(icon)
		c.AddLabelView(label)

		broadcast(battery.ChangeEvent{Level: 60, Status: battery.StatusDischarging})
		assert.Equal(t, IconNormal, icon.icon)

		store.PutInt(settings.KeyBatteryStyle, int(StyleCircle))
		assert.False(t, icon.visible)
		assert.False(t, label.visible)
		// Icon id untouched, the circle renderer owns it now.
		assert.Equal(t, IconNormal, icon.icon)
	})

	t.Run("unrelated setting ignored", func(t *testing.T) {
		c, store, broadcast := newTestController(t)

		icon := &fakeIconView{}
		c.AddIconView(icon)

		broadcast(battery.ChangeEvent{Level: 60, Status: battery.StatusDischarging})
		icon.calls = nil

		store.PutInt("status_bar_clock_style", 1)
		assert.Empty(t, icon.calls)
	})
}

func TestControllerSetTint(t *testing.T) {
	c, _, broadcast := newTestController(t)

	icon := &fakeIconView{}
	c.AddIconView(icon)

	broadcast(battery.ChangeEvent{Level: 25, Status: battery.StatusDischarging})
	assert.False(t, icon.tint.Valid)

	// Re-renders immediately from the held state, no broadcast needed.
	c.SetTint(Tint{RGB: 0xFF0000, Valid: true})
	assert.True(t, icon.tint.Valid)
	assert.Equal(t, uint32(0xFF0000), icon.tint.RGB)
	assert.Equal(t, 25, icon.imageLevel)

	c.SetTint(Tint{})
	assert.False(t, icon.tint.Valid)
}
