package ui

import (
	"context"
	"image/color"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/go-logr/logr"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/reacher-tools/hwpanel/dashboard"
	"github.com/reacher-tools/hwpanel/events"
	"github.com/reacher-tools/hwpanel/hardware"
	"github.com/reacher-tools/hwpanel/serialapi"
)

type widgets struct {
	Root     *widget.Container
	TopBar   *TopBar
	Hardware *HardwareTab
	Log      *LogView
}

// Session is the connection and log state the panel displays.
type Session interface {
	Connect(ctx context.Context, ep serialapi.Endpoint) error
	Disconnect()
	APIConnected() bool
	APIConfig() serialapi.Endpoint
	Entries() []dashboard.Entry
	ClearLog()
}

type UI struct {
	mu       sync.RWMutex
	update   bool
	exit     bool
	cfg      *Config
	log      logr.Logger
	Width    int
	Height   int
	eui      *ebitenui.UI
	Widgets  widgets
	Session  Session
	Tab      *hardware.Tab
	work     *dispatcher
	deferred []func()
}

type Config struct {
	Touch      bool `dialsdesc:"Touchscreen mode" dialsflag:"touch"`
	FPS        int  `dialsdesc:"Framerate" dialsflag:"fps"`
	Fullscreen bool `dialsdesc:"Start in fullscreen"`
	LogLines   int  `dialsdesc:"Number of log lines shown in the response panel" dialsflag:"log-lines"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:      30,
		LogLines: 12,
	}
}

func NewUI(cfg *Config, session Session, tab *hardware.Tab, log logr.Logger) *UI {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{0x12, 0x23, 0x34, 0xff})),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true, false}),
			widget.GridLayoutOpts.Spacing(0, 4),
		)),
	)

	u := &UI{
		cfg: cfg,
		log: log,
		eui: &ebitenui.UI{
			Container: rootContainer,
		},
		Widgets: widgets{
			Root: rootContainer,
		},
		Session: session,
		Tab:     tab,
		work:    newDispatcher(64, log),
	}
	u.Widgets.TopBar = u.MakeTopBar()
	u.Widgets.Hardware = u.MakeHardwareTab()
	u.Widgets.Log = u.MakeLogView(cfg.LogLines)
	rootContainer.AddChild(u.Widgets.TopBar.Container)
	rootContainer.AddChild(u.Widgets.Hardware.Container)
	rootContainer.AddChild(u.Widgets.Log.Container)

	ebiten.SetTPS(cfg.FPS)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1024, 720)
	ebiten.SetWindowSizeLimits(800, 600, -1, -1)
	ebiten.SetWindowTitle("Hardware Panel")
	if cfg.Touch {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return u
}

// Run starts the handler worker. It stops when ctx is cancelled.
func (u *UI) Run(ctx context.Context) {
	go u.work.run(ctx)
}

// Dispatch queues a blocking handler to run off the game loop. It reports
// false when the queue is full and the handler was dropped.
func (u *UI) Dispatch(name string, fn func(context.Context)) bool {
	return u.work.submit(name, fn)
}

// HandleEvents applies bus events to the widgets on the game loop.
func (u *UI) HandleEvents(ch <-chan events.Event) {
	for ev := range ch {
		ev := ev
		u.Defer(func() { u.applyEvent(ev) })
	}
}

func (u *UI) applyEvent(ev events.Event) {
	switch ev := ev.(type) {
	case events.ConnectionChanged:
		u.Widgets.TopBar.SetConnected(ev.Connected, ev.Address)
	case events.ArmStateChanged:
		u.Widgets.Hardware.SetArmed(ev.Component)
	case events.ResponseLogged, events.ErrorLogged:
		u.Widgets.Log.Refresh(u.Session.Entries())
	}
}

func (u *UI) Update() error {
	if u.exit || ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	u.runDeferred()
	u.eui.Update()
	u.update = true
	return nil
}

func (u *UI) runDeferred() {
	u.mu.Lock()
	deferred := u.deferred
	u.deferred = nil
	u.mu.Unlock()
	for _, cb := range deferred {
		cb()
	}
}

func (u *UI) Draw(screen *ebiten.Image) {
	if !u.update {
		return
	}
	u.update = false
	screen.Clear()

	u.eui.Draw(screen)
}

func (u *UI) Layout(width, height int) (int, int) {
	if u.Width != width || u.Height != height {
		u.Width = width
		u.Height = height
		u.log.V(1).Info("layout", "width", width, "height", height)
	}
	return width, height
}

func (u *UI) Defer(cb func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deferred = append(u.deferred, cb)
}
