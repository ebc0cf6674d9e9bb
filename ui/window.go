package ui

import (
	"image"
	"image/color"

	ebimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	windowLight = color.NRGBA{0xee, 0xee, 0xee, 0xc0}
	windowDark  = color.NRGBA{0x44, 0x44, 0x44, 0xc0}
	inputText   = color.NRGBA{0xee, 0xee, 0xee, 0xff}
	inputBg     = color.NRGBA{0x44, 0x44, 0x44, 0xff}
)

type Window struct {
	widget *widget.Window
}

func (w *Window) Close() {
	w.widget.Close()
}

func (u *UI) MakeWindow(title, titleFont string, content *widget.Container, opts ...widget.WindowOpt) *Window {
	titleBar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(ebimage.NewNineSliceColor(windowLight)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Left: 4, Right: 4}),
		)),
	)
	titleBar.AddChild(widget.NewText(
		widget.TextOpts.Text(title, u.Font(titleFont), color.NRGBA{0x44, 0x44, 0x44, 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		}))))

	tbWidth, tbHeight := titleBar.PreferredSize()
	wOpts := append(
		[]widget.WindowOpt{
			widget.WindowOpts.TitleBar(titleBar, tbHeight),
			widget.WindowOpts.Contents(borderedContents(content)),
			widget.WindowOpts.Modal(),
			widget.WindowOpts.MinSize(max(tbWidth, 320), 0),
		},
		opts...,
	)
	return &Window{widget: widget.NewWindow(wOpts...)}
}

func borderedContents(content widget.PreferredSizeLocateableWidget) *widget.Container {
	wrapper := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(NewNineSliceBorder(windowDark, windowLight, 2)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8+2)),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			StretchHorizontal: true,
			StretchVertical:   true,
		})),
	)
	wrapper.AddChild(content)
	return wrapper
}

func (u *UI) dialogContents(prompt, mainFont string) *widget.Container {
	contents := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			StretchVertical:   true,
			StretchHorizontal: true,
		})),
	)
	if prompt != "" {
		contents.AddChild(widget.NewText(
			widget.TextOpts.Text(prompt, u.Font(mainFont), inputText),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}))))
	}
	return contents
}

// MakeEntryWindow asks for one line of text, prefilled with initial. cb gets
// ok=false on cancel.
func (u *UI) MakeEntryWindow(title, titleFont, prompt, mainFont, initial string, cb func(string, bool)) *Window {
	var window *Window
	finish := func(s string, ok bool) {
		window.Close()
		cb(s, ok)
	}

	contents := u.dialogContents(prompt, mainFont)
	input := widget.NewTextInput(
		widget.TextInputOpts.Face(u.Font(mainFont)),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          inputText,
			Disabled:      inputText,
			Caret:         inputText,
			DisabledCaret: inputText,
		}),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     ebimage.NewNineSliceColor(inputBg),
			Disabled: ebimage.NewNineSliceColor(inputBg),
		}),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			finish(args.InputText, true)
		}),
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch:  true,
				MaxWidth: 600,
			}),
		),
	)
	input.SetText(initial)
	contents.AddChild(input)

	stretch := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})
	contents.AddChild(u.MakeRow(
		u.MakeButton(mainFont, "OK", func(*widget.ButtonClickedEventArgs) {
			finish(input.GetText(), true)
		}, stretch),
		u.MakeButton(mainFont, "Cancel", func(*widget.ButtonClickedEventArgs) {
			finish("", false)
		}),
	))
	window = u.MakeWindow(title, titleFont, contents)
	return window
}

// onUserSelection closes the window on any click in list and calls cb when
// the selection actually changed. The programmatic initial selection is
// ignored.
func onUserSelection(list *widget.List, window **Window, cb func(any, bool)) {
	list.EntrySelectedEvent.AddHandler(func(e any) {
		args := e.(*widget.ListEntrySelectedEventArgs)
		if args.PreviousEntry == nil {
			return
		}
		(*window).Close()
		if args.Entry != args.PreviousEntry {
			cb(args.Entry, true)
		}
	})
}

func (u *UI) fillList(fontName string, items []any, selected any, labeler func(any) string) *widget.List {
	list := u.MakeList(fontName, labeler)
	for _, item := range items {
		list.AddEntry(item)
	}
	if selected != nil {
		list.SetSelectedEntry(selected)
	}
	return list
}

func (u *UI) MakeListWindow(title, titleFont, prompt, mainFont string, items []any, selected any, labeler func(any) string, cb func(any, bool)) *Window {
	var window *Window
	contents := u.dialogContents(prompt, mainFont)

	list := u.fillList(mainFont, items, selected, labeler)
	onUserSelection(list, &window, cb)
	contents.AddChild(list)
	contents.AddChild(u.MakeRow(
		u.MakeButton(mainFont, "Cancel", func(*widget.ButtonClickedEventArgs) {
			window.Close()
			cb(nil, false)
		}),
	))
	window = u.MakeWindow(title, titleFont, contents)
	return window
}

// MakeDropdownWindow creates a title-less list window that closes when the
// user clicks outside it.
func (u *UI) MakeDropdownWindow(items []any, selected any, labeler func(any) string, cb func(any, bool)) *Window {
	var window *Window

	list := u.fillList("Go-16", items, selected, labeler)
	list.GetWidget().LayoutData = widget.AnchorLayoutData{
		StretchHorizontal: true,
		StretchVertical:   true,
	}
	onUserSelection(list, &window, cb)

	window = &Window{widget: widget.NewWindow(
		widget.WindowOpts.Contents(borderedContents(list)),
		widget.WindowOpts.Modal(),
		widget.WindowOpts.CloseMode(widget.CLICK_OUT),
	)}
	return window
}

// Choose offers items next to trigger as a dropdown, or as a centered list
// window in touch mode where dropdowns are too small to hit.
func (u *UI) Choose(trigger widget.HasWidget, title string, items []any, selected any, labeler func(any) string, cb func(any)) {
	pick := func(item any, ok bool) {
		if ok && item != nil {
			cb(item)
		}
	}
	if u.cfg.Touch {
		u.ShowWindow(u.MakeListWindow(title, "Go-Bold-24", "", "Go-24", items, selected, labeler, pick))
		return
	}
	u.ShowDropdownWindow(u.MakeDropdownWindow(items, selected, labeler, pick), trigger)
}

// dropdownRect places a dropdown of the given content size below trigger,
// or above it when there is no room below, inside a winW x winH screen.
func dropdownRect(trigger image.Rectangle, contentW, contentH, winW, winH int) image.Rectangle {
	height := min(contentH, winH*3/4)
	width := max(trigger.Dx(), contentW, 200)

	x := trigger.Min.X
	if x+width > winW {
		x = winW - width
		if x < 0 {
			x, width = 0, winW
		}
	}

	var y int
	switch {
	case trigger.Max.Y+height <= winH:
		y = trigger.Max.Y
	case trigger.Min.Y-height >= 0:
		y = trigger.Min.Y - height
	default:
		y = trigger.Max.Y
		height = min(height, winH-y)
	}
	return image.Rect(x, y, x+width, y+height)
}

func (u *UI) ShowDropdownWindow(window *Window, trigger widget.HasWidget) {
	win := window.widget
	win.Contents.RequestRelayout()
	win.Contents.Validate()
	contentW, contentH := win.Contents.PreferredSize()
	winW, winH := ebiten.WindowSize()

	win.SetLocation(dropdownRect(trigger.GetWidget().Rect, contentW, contentH, winW, winH))
	u.eui.AddWindow(win)
	u.Defer(func() {
		u.eui.ChangeFocus(widget.FOCUS_NEXT)
	})
}

func (u *UI) ShowWindow(window *Window) {
	win := window.widget
	win.Contents.Validate()
	win.TitleBar.Validate()
	contentWidth, contentHeight := win.Contents.PreferredSize()
	tbWidth, tbHeight := win.TitleBar.PreferredSize()

	x := max(contentWidth, tbWidth)
	y := contentHeight + tbHeight

	if minSize := win.MinSize; minSize != nil {
		x, y = max(x, minSize.X), max(y, minSize.Y)
	}
	if maxSize := win.MaxSize; maxSize != nil {
		x, y = min(x, maxSize.X), min(y, maxSize.Y)
	}
	winX, winY := ebiten.WindowSize()
	r := image.Rect(0, 0, x, y).Add(image.Point{max((winX-x)/2, 0), max((winY-y)/2, 0)})
	win.SetLocation(r)
	u.eui.AddWindow(win)
	u.Defer(func() {
		u.eui.ChangeFocus(widget.FOCUS_NEXT)
	})
}
