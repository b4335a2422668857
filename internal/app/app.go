package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gizak/termui/v3"
	log "github.com/sirupsen/logrus"

	"battery-termui/internal/battery"
	"battery-termui/internal/bus"
	"battery-termui/internal/policy"
	"battery-termui/internal/settings"
	"battery-termui/internal/ui"
)

// Tint overrides cycled by the `t` key; the zero value clears the filter.
var tints = []policy.Tint{
	{},
	{RGB: 0xFF0000, Valid: true},
	{RGB: 0x00CD00, Valid: true},
	{RGB: 0xCDCD00, Valid: true},
}

// New creates and returns new application
func New(interval time.Duration, style policy.Style, tint policy.Tint, logger *log.Logger) *Application {
	return &Application{
		interval: interval,
		style:    style,
		tint:     tint,
		logger:   logger,
	}
}

type Application struct {
	interval time.Duration
	style    policy.Style
	tint     policy.Tint
	logger   *log.Logger
}

func (app *Application) Run() (code int) {

	defer func() {
		if err := recover(); err != nil {
			app.logger.Error(fmt.Sprintf("panic recover: %s", err))
			code = 1
		}
	}()

	app.logger.Debug("Running application")

	if err := termui.Init(); err != nil {
		app.logger.Error(fmt.Sprintf("failed to initialize termui: %v", err))
		return 1
	}
	defer termui.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.New()
	store := settings.NewStore(b)
	store.PutInt(settings.KeyBatteryStyle, int(app.style))

	controller, err := policy.NewController(b, store)
	if err != nil {
		app.logger.Error(err)
		return 1
	}

	icon := ui.NewIconWidget()
	label := ui.NewLabelWidget()
	controller.AddIconView(icon)
	controller.AddLabelView(label)
	controller.AddChangeFunc(func(level int, charging bool) {
		app.logger.Debugf("battery level changed: level=%d charging=%v", level, charging)
	})

	// The initial override becomes the head of the `t` key cycle.
	cycle := tints
	if app.tint.Valid {
		cycle = append([]policy.Tint{app.tint}, tints...)
		controller.SetTint(app.tint)
	}

	var bar ui.Controller = ui.NewBar(icon, label)
	bar.Resize()
	termui.Render(bar)

	// Broadcasts are funneled through the event loop so every bus delivery
	// happens on this goroutine.
	events := app.startMonitor(ctx)

	ev := termui.PollEvents()
	tick := time.Tick(time.Second)

	var tintIdx int

Loop:
	for {
		select {
		case e := <-ev:
			switch {
			case e.Type == termui.KeyboardEvent && e.ID == "q":
				break Loop
			case e.Type == termui.KeyboardEvent && e.ID == "s":
				next := (store.GetInt(settings.KeyBatteryStyle, int(policy.StyleNormal)) + 1) % 5
				app.logger.Debug("Switching battery style to " + policy.Style(next).String())
				store.PutInt(settings.KeyBatteryStyle, next)
				termui.Render(bar)
			case e.Type == termui.KeyboardEvent && e.ID == "t":
				tintIdx = (tintIdx + 1) % len(cycle)
				controller.SetTint(cycle[tintIdx])
				termui.Render(bar)
			case e.Type == termui.ResizeEvent:
				bar.Resize()
				termui.Render(bar)
			}
		case changed := <-events:
			bus.PublishBatteryChanged(b, changed)
			termui.Render(bar)
		case <-tick:
			termui.Render(bar)
		}
	}

	app.logger.Debug("Stopping application")

	return 0
}

func (app *Application) startMonitor(ctx context.Context) <-chan battery.ChangeEvent {
	stream := make(chan battery.ChangeEvent, 1)

	monitor := battery.NewMonitor(app.interval, app.logger, func(ev battery.ChangeEvent) {
		select {
		case stream <- ev:
		case <-ctx.Done():
		}
	})

	go func() {
		defer func() {
			if err := recover(); err != nil {
				app.logger.Error(fmt.Sprintf("panic recover: %s", err))
			}
		}()
		monitor.Run(ctx)
	}()

	return stream
}
