package bus

import (
	evbus "github.com/asaskevich/EventBus"

	"battery-termui/internal/battery"
)

// Broadcast topics. Delivery is synchronous: a handler runs to completion
// on the publishing goroutine before Publish returns.
const (
	TopicBatteryChanged = "broadcast.battery.changed"
	TopicSettingChanged = "broadcast.setting.changed"
)

// New creates the broadcast bus shared by the application.
func New() evbus.Bus {
	return evbus.New()
}

func PublishBatteryChanged(b evbus.Bus, ev battery.ChangeEvent) {
	b.Publish(TopicBatteryChanged, ev)
}

func SubscribeBatteryChanged(b evbus.Bus, fn func(battery.ChangeEvent)) error {
	return b.Subscribe(TopicBatteryChanged, fn)
}

// PublishSettingChanged announces that the setting stored under key has been
// written. Observers re-read the value themselves.
func PublishSettingChanged(b evbus.Bus, key string) {
	b.Publish(TopicSettingChanged, key)
}

func SubscribeSettingChanged(b evbus.Bus, fn func(key string)) error {
	return b.Subscribe(TopicSettingChanged, fn)
}
