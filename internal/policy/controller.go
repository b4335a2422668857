package policy

import (
	evbus "github.com/asaskevich/EventBus"

	"battery-termui/internal/battery"
	"battery-termui/internal/bus"
	"battery-termui/internal/settings"
)

// NewController creates the battery indicator controller, reads the initial
// style and subscribes to the battery-changed and setting-changed broadcasts.
// All broadcasts are delivered serially on one goroutine.
func NewController(b evbus.Bus, store *settings.Store) (*Controller, error) {
	c := &Controller{
		store: store,
		state: battery.State{Status: battery.StatusUnknown},
		style: Style(store.GetInt(settings.KeyBatteryStyle, int(StyleNormal))),
	}

	if err := bus.SubscribeBatteryChanged(b, c.HandleBroadcast); err != nil {
		return nil, err
	}
	if err := bus.SubscribeSettingChanged(b, c.handleSettingChanged); err != nil {
		return nil, err
	}

	return c, nil
}

type Controller struct {
	store *settings.Store

	state battery.State
	style Style
	tint  Tint

	// Registries are append-only for the controller's lifetime.
	icons     []IconView
	labels    []LabelView
	callbacks []ChangeFunc
}

func (c *Controller) AddIconView(v IconView) {
	c.icons = append(c.icons, v)
}

func (c *Controller) AddLabelView(v LabelView) {
	c.labels = append(c.labels, v)
}

// AddChangeFunc registers a listener; listeners run in registration order.
func (c *Controller) AddChangeFunc(fn ChangeFunc) {
	c.callbacks = append(c.callbacks, fn)
}

func (c *Controller) State() battery.State {
	return c.state
}

func (c *Controller) Style() Style {
	return c.style
}

// SetTint replaces the color override and re-renders from the held state.
func (c *Controller) SetTint(t Tint) {
	c.tint = t
	c.render()
}

// HandleBroadcast stores the new battery state, re-renders every registered
// view and notifies every listener.
func (c *Controller) HandleBroadcast(ev battery.ChangeEvent) {
	c.state = ev.State()
	c.render()
	for _, fn := range c.callbacks {
		fn(c.state.Level, c.state.Charging())
	}
}

func (c *Controller) handleSettingChanged(key string) {
	if key != settings.KeyBatteryStyle {
		return
	}
	c.style = Style(c.store.GetInt(settings.KeyBatteryStyle, int(StyleNormal)))
	c.render()
}

func (c *Controller) render() {
	p := Plan(c.state, c.style, c.tint)
	for _, v := range c.icons {
		p.applyIcon(v)
	}
	for _, v := range c.labels {
		p.applyLabel(v)
	}
}
