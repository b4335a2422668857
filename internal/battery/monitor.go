package battery

import (
	"context"
	"math"
	"time"

	dbattery "github.com/distatus/battery"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// NewMonitor creates a monitor that reads the first system battery every
// interval and hands a ChangeEvent to publish.
func NewMonitor(interval time.Duration, logger *log.Logger, publish func(ChangeEvent)) *Monitor {
	return &Monitor{
		interval: interval,
		logger:   logger,
		publish:  publish,
	}
}

type Monitor struct {
	interval time.Duration
	logger   *log.Logger
	publish  func(ChangeEvent)
}

// Run polls until the context is cancelled. Read failures are logged and the
// next tick tries again.
func (m *Monitor) Run(ctx context.Context) {
	m.poll()

	tick := time.Tick(m.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			m.logger.Debug("Fetching battery info")
			m.poll()
		}
	}
}

func (m *Monitor) poll() {
	batteries, err := dbattery.GetAll()
	if err != nil {
		m.logger.Error(errors.Wrap(err, "read batteries"))
		return
	}
	if len(batteries) == 0 {
		m.publish(ChangeEvent{Status: StatusUnknown})
		return
	}
	m.publish(readEvent(batteries[0]))
}

func readEvent(b *dbattery.Battery) ChangeEvent {
	status := mapState(b.State.Raw)

	plugged := 0
	if status == StatusCharging || status == StatusFull {
		plugged = 1
	}

	return ChangeEvent{
		Level:   levelOf(b),
		Plugged: plugged,
		Status:  status,
	}
}

func mapState(raw dbattery.AgnosticState) Status {
	switch raw {
	case dbattery.Charging:
		return StatusCharging
	case dbattery.Full, dbattery.Idle:
		return StatusFull
	case dbattery.Discharging, dbattery.Empty:
		return StatusDischarging
	default:
		return StatusUnknown
	}
}

func levelOf(b *dbattery.Battery) int {
	if b.Full <= 0 {
		return 0
	}
	level := int(math.Round(b.Current / b.Full * 100))
	// Some controllers report more charge than design capacity.
	if level > 100 {
		level = 100
	}
	if level < 0 {
		level = 0
	}
	return level
}
