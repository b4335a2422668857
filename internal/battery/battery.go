package battery

// Status values match the platform battery status codes.
type Status int

const (
	StatusUnknown Status = iota + 1
	StatusCharging
	StatusDischarging
	StatusNotCharging
	StatusFull
)

var statusNames = [...]string{"unknown", "charging", "discharging", "not-charging", "full"}

func (s Status) String() string {
	if s < StatusUnknown || s > StatusFull {
		return "invalid"
	}
	return statusNames[s-StatusUnknown]
}

// State is the last battery reading held by the controller.
type State struct {
	Level   int
	Plugged bool
	Status  Status
}

func (s State) Charging() bool {
	return s.Status == StatusCharging
}

// ChangeEvent is the battery-changed broadcast payload: the level in percent,
// the raw plugged flag and the status code.
type ChangeEvent struct {
	Level   int
	Plugged int
	Status  Status
}

// State folds the raw payload into a State, clamping the level to [0, 100].
func (ev ChangeEvent) State() State {
	level := ev.Level
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return State{
		Level:   level,
		Plugged: ev.Plugged != 0,
		Status:  ev.Status,
	}
}
