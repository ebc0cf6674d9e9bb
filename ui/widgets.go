package ui

import (
	"fmt"
	"image/color"

	ebimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/reacher-tools/hwpanel/hardware"
)

var buttonTextColor = &widget.ButtonTextColor{
	Idle:     colornames.White,
	Disabled: colornames.Gray,
	Hover:    colornames.Lightskyblue,
	Pressed:  colornames.Yellow,
}

func buttonImage(idle color.Color) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:         ebimage.NewNineSliceColor(idle),
		Hover:        ebimage.NewNineSliceColor(colornames.Slategray),
		Pressed:      ebimage.NewNineSliceColor(colornames.Darkslategray),
		PressedHover: ebimage.NewNineSliceColor(colornames.Darkslategray),
		Disabled:     ebimage.NewNineSliceColor(colornames.Dimgray),
	}
}

func (u *UI) MakeButton(fontName string, text string, handler func(*widget.ButtonClickedEventArgs), wopts ...widget.WidgetOpt) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Text(text, u.Font(fontName), buttonTextColor),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(6)),
		widget.ButtonOpts.Image(buttonImage(colornames.Dimgray)),
		widget.ButtonOpts.ClickedHandler(handler),
		widget.ButtonOpts.WidgetOpts(wopts...),
	)
}

func (u *UI) MakeToggleButton(fontName string, text string, handler func(*widget.ButtonChangedEventArgs), wopts ...widget.WidgetOpt) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Text(text, u.Font(fontName), buttonTextColor),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(6)),
		widget.ButtonOpts.Image(buttonImage(colornames.Dimgray)),
		widget.ButtonOpts.ToggleMode(),
		widget.ButtonOpts.StateChangedHandler(handler),
		widget.ButtonOpts.WidgetOpts(wopts...),
	)
}

func (u *UI) MakeList(fontName string, labeler func(e any) string) *widget.List {
	return widget.NewList(
		widget.ListOpts.ContainerOpts(widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchVertical:   true,
				StretchHorizontal: true,
				Padding:           widget.NewInsetsSimple(10),
			}),
		)),
		widget.ListOpts.ScrollContainerOpts(
			widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
				Idle:     ebimage.NewNineSliceColor(colornames.Dimgray),
				Disabled: ebimage.NewNineSliceColor(colornames.Dimgray),
				Mask:     ebimage.NewNineSliceColor(colornames.Dimgray),
			}),
		),
		widget.ListOpts.SliderOpts(
			widget.SliderOpts.Images(&widget.SliderTrackImage{
				Idle:  ebimage.NewNineSliceColor(colornames.Dimgray),
				Hover: ebimage.NewNineSliceColor(colornames.Dimgray),
			}, sliderImage()),
			widget.SliderOpts.MinHandleSize(5),
			widget.SliderOpts.TrackPadding(widget.NewInsetsSimple(2))),
		widget.ListOpts.HideHorizontalSlider(),
		widget.ListOpts.EntryFontFace(u.Font(fontName)),
		widget.ListOpts.EntryColor(&widget.ListEntryColor{
			Selected:           colornames.White,
			SelectedBackground: colornames.Darkcyan,
			Unselected:         colornames.White,
			DisabledSelected:   colornames.Lightgray,
			DisabledUnselected: colornames.Lightgray,
			FocusedBackground:  colornames.Darkcyan,
		}),
		widget.ListOpts.EntryLabelFunc(labeler),
		widget.ListOpts.EntryTextPadding(widget.NewInsetsSimple(5)),
		widget.ListOpts.EntryTextPosition(widget.TextPositionStart, widget.TextPositionCenter),
	)
}

func (u *UI) MakeText(fontName string, fgColor color.Color, opts ...widget.TextOpt) *widget.Text {
	opts = append(
		[]widget.TextOpt{
			widget.TextOpts.Text("", u.Font(fontName), fgColor),
		},
		opts...,
	)
	return widget.NewText(opts...)
}

func (u *UI) MakeTextArea(fontName string, fgColor color.Color, bgColor color.Color, wopts ...widget.WidgetOpt) *widget.TextArea {
	return widget.NewTextArea(
		widget.TextAreaOpts.FontFace(u.Font(fontName)),
		widget.TextAreaOpts.TextPadding(widget.NewInsetsSimple(4)),
		widget.TextAreaOpts.FontColor(fgColor),
		widget.TextAreaOpts.ShowVerticalScrollbar(),
		widget.TextAreaOpts.VerticalScrollMode(widget.ScrollEnd),
		widget.TextAreaOpts.ContainerOpts(widget.ContainerOpts.WidgetOpts(wopts...)),
		widget.TextAreaOpts.ScrollContainerOpts(
			widget.ScrollContainerOpts.Image(&widget.ScrollContainerImage{
				Idle: ebimage.NewNineSliceColor(bgColor),
				Mask: ebimage.NewNineSliceColor(bgColor),
			}),
		),
		widget.TextAreaOpts.SliderOpts(
			widget.SliderOpts.Images(sliderTrackImage(), sliderImage()),
			widget.SliderOpts.MinHandleSize(8),
		),
	)
}

func (u *UI) MakeRoundedRect(fg color.Color, bg color.Color, radius int, opts ...widget.ContainerOpt) *widget.Container {
	img := ebiten.NewImage(2*radius+1, 2*radius+1)
	r := float32(radius)
	img.Fill(bg)
	vector.DrawFilledCircle(img, r, r, r, fg, true)
	nineslice := ebimage.NewNineSliceSimple(img, radius, 1)
	opts = append([]widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{
				Left:   radius,
				Right:  radius,
				Top:    0,
				Bottom: 0,
			}),
		)),
		widget.ContainerOpts.BackgroundImage(nineslice)},
		opts...,
	)
	return widget.NewContainer(opts...)
}

// MakeSection is a rounded panel with a heading and a vertical stack of rows.
func (u *UI) MakeSection(title string, rows ...widget.PreferredSizeLocateableWidget) *widget.Container {
	section := u.MakeRoundedRect(color.NRGBA{0x22, 0x33, 0x44, 0xff}, color.NRGBA{}, 6,
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	section.AddChild(widget.NewText(
		widget.TextOpts.Text(title, u.Font("Go-Bold-18"), colornames.Lightskyblue),
	))
	for _, row := range rows {
		section.AddChild(row)
	}
	return section
}

func (u *UI) MakeRow(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	for _, c := range children {
		row.AddChild(c)
	}
	return row
}

type sliderRow struct {
	container *widget.Container
	slider    *widget.Slider
	label     *widget.Text
	rng       hardware.Range
	format    func(int) string
}

// Set moves the slider without firing its change handler.
func (r *sliderRow) Set(v int) {
	v = r.rng.Clamp(v)
	r.slider.Current = v
	r.label.Label = r.format(v)
}

func (u *UI) makeSliderRow(name string, rng hardware.Range, initial int, formatter func(int) string, onChange func(int)) *sliderRow {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	nameLabel := widget.NewText(
		widget.TextOpts.Text(name, u.Font("Go-16"), colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 0)),
	)

	initial = rng.Clamp(initial)
	slider := widget.NewSlider(
		widget.SliderOpts.MinMax(rng.Min, rng.Max),
		widget.SliderOpts.InitialCurrent(initial),
		widget.SliderOpts.Images(sliderTrackImage(), sliderImage()),
		widget.SliderOpts.MinHandleSize(20),
		widget.SliderOpts.PageSizeFunc(func() int { return rng.Step }),
		widget.SliderOpts.TrackPadding(widget.NewInsetsSimple(2)),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
			widget.WidgetOpts.MinSize(200, 20),
		),
	)

	valueLabel := widget.NewText(
		widget.TextOpts.Text(formatter(initial), u.Font("Go-Mono-16"), colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 0)),
	)

	sr := &sliderRow{container: row, slider: slider, label: valueLabel, rng: rng, format: formatter}
	slider.ChangedEvent.AddHandler(func(e interface{}) {
		args := e.(*widget.SliderChangedEventArgs)
		v := rng.Clamp(args.Current)
		valueLabel.Label = formatter(v)
		onChange(v)
	})

	row.AddChild(nameLabel)
	row.AddChild(slider)
	row.AddChild(valueLabel)
	return sr
}

func formatUnit(unit string) func(int) string {
	return func(v int) string {
		return fmt.Sprintf("%d %s", v, unit)
	}
}

func sliderTrackImage() *widget.SliderTrackImage {
	return &widget.SliderTrackImage{
		Idle:  ebimage.NewNineSliceColor(colornames.Darkslategray),
		Hover: ebimage.NewNineSliceColor(colornames.Darkslategray),
	}
}

func sliderImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    ebimage.NewNineSliceColor(colornames.Lightgray),
		Hover:   ebimage.NewNineSliceColor(colornames.Seashell),
		Pressed: ebimage.NewNineSliceColor(colornames.Seashell),
	}
}

func NewNineSliceBorder(innerColor, borderColor color.Color, borderWidthHeight int) *ebimage.NineSlice {
	i := ebiten.NewImage(2*borderWidthHeight+1, 2*borderWidthHeight+1)
	i.Fill(borderColor)
	i.Set(borderWidthHeight, borderWidthHeight, innerColor)
	return ebimage.NewNineSliceSimple(i, borderWidthHeight, 1)
}
