package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"battery-termui/internal/bus"
)

func TestStore(t *testing.T) {

	t.Run("default until written", func(t *testing.T) {
		s := NewStore(bus.New())

		assert.Equal(t, 7, s.GetInt(KeyBatteryStyle, 7))

		s.PutInt(KeyBatteryStyle, 2)
		assert.Equal(t, 2, s.GetInt(KeyBatteryStyle, 7))
	})

	t.Run("write notifies observers", func(t *testing.T) {
		b := bus.New()
		s := NewStore(b)

		var keys []string
		assert.NoError(t, bus.SubscribeSettingChanged(b, func(key string) {
			keys = append(keys, key)
		}))

		s.PutInt(KeyBatteryStyle, 0)
		s.PutInt(KeyBatteryStyle, 0)
		s.PutInt("other_setting", 1)

		assert.Equal(t, []string{KeyBatteryStyle, KeyBatteryStyle, "other_setting"}, keys)
	})
}
