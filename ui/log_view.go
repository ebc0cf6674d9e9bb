package ui

import (
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/colornames"

	"github.com/reacher-tools/hwpanel/dashboard"
)

// LogView shows the tail of the session's response and error log.
type LogView struct {
	Container *widget.Container
	Area      *widget.TextArea
	lines     int
}

func (u *UI) MakeLogView(lines int) *LogView {
	if lines <= 0 {
		lines = DefaultConfig().LogLines
	}
	lv := &LogView{lines: lines}
	lv.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(4)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, 18*lines+8),
		),
	)
	lv.Area = u.MakeTextArea("Go-Mono-14", colornames.Lightgray, colornames.Black,
		widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			StretchHorizontal: true,
			StretchVertical:   true,
		}),
	)
	lv.Container.AddChild(lv.Area)
	lv.Container.AddChild(u.MakeButton("Go-14", "Clear", func(*widget.ButtonClickedEventArgs) {
		u.Session.ClearLog()
		lv.Refresh(u.Session.Entries())
	}, widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		Padding:            widget.Insets{Top: 4, Right: 20},
	})))
	return lv
}

func (lv *LogView) Refresh(entries []dashboard.Entry) {
	lv.Area.SetText(formatLog(entries, lv.lines))
}

// formatLog renders the last n entries, oldest first.
func formatLog(entries []dashboard.Entry, n int) string {
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	var sb strings.Builder
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
