package main

import (
	"context"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/vimeo/dials"
	"github.com/vimeo/dials/sources/env"
	"github.com/vimeo/dials/sources/flag"

	"github.com/reacher-tools/hwpanel/dashboard"
	"github.com/reacher-tools/hwpanel/errutil"
	"github.com/reacher-tools/hwpanel/events"
	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/hlog"
	"github.com/reacher-tools/hwpanel/persistence"
	"github.com/reacher-tools/hwpanel/serialapi"
	"github.com/reacher-tools/hwpanel/ui"
)

type Config struct {
	Verbose bool `dialsdesc:"Log at info level"`
	Debug   bool `dialsdesc:"Log at debug level, including every request"`
	UI      *ui.Config
	API     *serialapi.Config
}

func defaultConfig(saved persistence.Settings) *Config {
	api := serialapi.DefaultConfig()
	if saved.API.Host != "" {
		api.Host = saved.API.Host
	}
	if saved.API.Port > 0 {
		api.Port = saved.API.Port
	}
	return &Config{
		UI:  ui.DefaultConfig(),
		API: api,
	}
}

// snapshot collects what should survive a restart.
func snapshot(dash *dashboard.Dashboard, cue hardware.CueSettings, laser hardware.LaserSettings) persistence.Settings {
	return persistence.Settings{
		API:   dash.APIConfig(),
		Cue:   cue,
		Laser: laser,
	}
}

func main() {
	mainCtx, mainCancel := context.WithCancel(context.Background())
	defer mainCancel()

	log := hlog.GetLogger("main")

	store, err := persistence.NewSettingsStore()
	if err != nil {
		panic(err)
	}
	saved, loadErr := store.Load()

	config := defaultConfig(saved)
	flagSrc, err := flag.NewCmdLineSet(flag.DefaultFlagNameConfig(), config)
	if err != nil {
		panic(err)
	}
	d, err := dials.Config(mainCtx, config, &env.Source{}, flagSrc)
	if err != nil {
		panic(err)
	}
	config = d.View()

	hlog.Init(config.Verbose, config.Debug)
	log = hlog.GetLogger("main")
	errutil.LogError(log, "Failed to load settings, using defaults", loadErr)

	eventBus := events.NewBus()
	dash := dashboard.New(config.API, config.UI.LogLines*4, eventBus, hlog.GetLogger("dashboard"))
	client := serialapi.NewClient(config.API.Timeout, hlog.GetLogger("serialapi"))

	tab := hardware.NewTab(dash, client, eventBus, hlog.GetLogger("hardware"))
	tab.SetCueSettings(saved.Cue)
	tab.SetLaserSettings(saved.Laser)
	tab.OnSettingsSent(func(cue hardware.CueSettings, laser hardware.LaserSettings) {
		errutil.LogError(log, "Failed to save settings", store.Save(snapshot(dash, cue, laser)))
	})

	u := ui.NewUI(config.UI, dash, tab, hlog.GetLogger("ui"))
	go u.HandleEvents(eventBus.Subscribe(100))
	u.Run(mainCtx)

	// Remember the endpoint once it has been reached.
	go func() {
		for event := range eventBus.Subscribe(10) {
			if e, ok := event.(events.ConnectionChanged); ok && e.Connected {
				errutil.LogError(log, "Failed to save settings", store.Save(snapshot(dash, tab.CueSettings(), tab.LaserSettings())))
			}
		}
	}()

	if config.API.AutoConnect {
		u.Dispatch("connect", func(ctx context.Context) { _ = dash.Connect(ctx, config.API.Endpoint()) })
	}

	if err := ebiten.RunGame(u); err != nil {
		log.Error(err, "Game loop exited")
		os.Exit(1)
	}
}
