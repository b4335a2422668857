package settings

import (
	evbus "github.com/asaskevich/EventBus"

	"battery-termui/internal/bus"
)

// Setting keys mirror the platform names the status bar observes.
const KeyBatteryStyle = "status_bar_battery_style"

// NewStore creates an in-memory preference store that announces writes on the
// broadcast bus.
func NewStore(b evbus.Bus) *Store {
	return &Store{
		bus:    b,
		values: make(map[string]int),
	}
}

type Store struct {
	bus    evbus.Bus
	values map[string]int
}

// GetInt returns the stored value for key, or def when the key has never
// been written.
func (s *Store) GetInt(key string, def int) int {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// PutInt stores value under key and notifies observers. Like the platform
// settings provider, every write notifies, changed or not.
func (s *Store) PutInt(key string, value int) {
	s.values[key] = value
	bus.PublishSettingChanged(s.bus, key)
}
