package ui

import (
	"context"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/colornames"

	"github.com/reacher-tools/hwpanel/serialapi"
)

type TopBar struct {
	Container        *widget.Container
	Status           *widget.Text
	ConnectButton    *widget.Button
	DisconnectButton *widget.Button
}

func statusLabel(connected bool, address string) string {
	if connected {
		return "Connected: " + address
	}
	return "Not connected"
}

func (u *UI) MakeTopBar() *TopBar {
	tb := &TopBar{}
	tb.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
		)),
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(colornames.Black)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 32),
		),
	)

	tb.Status = u.MakeText("Go-Bold-18", colornames.Orange,
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
			widget.WidgetOpts.MinSize(360, 0),
		),
	)
	tb.Status.Label = statusLabel(false, "")

	tb.ConnectButton = u.MakeButton("Go-18", "Connect", func(*widget.ButtonClickedEventArgs) {
		u.promptConnect()
	})
	tb.DisconnectButton = u.MakeButton("Go-18", "Disconnect", func(*widget.ButtonClickedEventArgs) {
		u.Dispatch("disconnect", func(context.Context) { u.Session.Disconnect() })
	})
	tb.DisconnectButton.GetWidget().Disabled = true

	tb.Container.AddChild(tb.Status)
	tb.Container.AddChild(tb.ConnectButton)
	tb.Container.AddChild(tb.DisconnectButton)
	tb.Container.AddChild(u.MakeButton("Go-18", "Exit", func(*widget.ButtonClickedEventArgs) {
		u.exit = true
	}))
	return tb
}

func (tb *TopBar) SetConnected(connected bool, address string) {
	tb.Status.Label = statusLabel(connected, address)
	if connected {
		tb.Status.Color = colornames.Lightgreen
	} else {
		tb.Status.Color = colornames.Orange
	}
	tb.ConnectButton.GetWidget().Disabled = connected
	tb.DisconnectButton.GetWidget().Disabled = !connected
}

func (u *UI) promptConnect() {
	current := u.Session.APIConfig()
	window := u.MakeEntryWindow("Connect to API", "Go-Bold-24", "Instrument API host:port", "Go-18", current.Address(), func(s string, ok bool) {
		if !ok {
			return
		}
		ep, err := serialapi.ParseEndpoint(s, current.Port)
		if err != nil {
			u.log.Info("Bad endpoint", "input", s, "error", err.Error())
			return
		}
		u.Dispatch("connect", func(ctx context.Context) { _ = u.Session.Connect(ctx, ep) })
	})
	u.ShowWindow(window)
}
