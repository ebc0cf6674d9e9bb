package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/reacher-tools/hwpanel/waveform"
)

// Vertical extent of the plot in signal units.
const (
	plotYMin = -0.1
	plotYMax = 1.1
)

// plotArea is the data rectangle of the plot in image pixels.
type plotArea struct {
	left, top, width, height float64
}

func newPlotArea(imgW, imgH int) plotArea {
	const marginL, marginR, marginT, marginB = 36, 10, 28, 22
	return plotArea{
		left:   marginL,
		top:    marginT,
		width:  max(float64(imgW-marginL-marginR), 1),
		height: max(float64(imgH-marginT-marginB), 1),
	}
}

func (a plotArea) toScreen(p waveform.Point) (float32, float32) {
	x := a.left + p.X/waveform.Duration*a.width
	y := a.top + (plotYMax-p.Y)/(plotYMax-plotYMin)*a.height
	return float32(x), float32(y)
}

// simplify drops interior points of horizontal and vertical runs, which a
// step plot is made of almost entirely.
func simplify(pts []waveform.Point) []waveform.Point {
	if len(pts) < 3 {
		return pts
	}
	out := []waveform.Point{pts[0]}
	for i := 1; i < len(pts)-1; i++ {
		prev, cur, next := out[len(out)-1], pts[i], pts[i+1]
		if prev.Y == cur.Y && cur.Y == next.Y {
			continue
		}
		if prev.X == cur.X && cur.X == next.X {
			continue
		}
		out = append(out, cur)
	}
	return append(out, pts[len(pts)-1])
}

type WaveformPlot struct {
	Container *HookContainer
	Graphic   *widget.Graphic
	frequency int
	drawnFreq int
	width     int
	height    int
	titleFace text.Face
	tickFace  text.Face
}

func (u *UI) MakeWaveformPlot(frequency int) *WaveformPlot {
	p := &WaveformPlot{
		frequency: frequency,
		drawnFreq: -1,
		titleFace: *u.Font("Go-Bold-16"),
		tickFace:  *u.Font("Go-12"),
	}
	p.Graphic = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	inner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(360, 220),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	inner.AddChild(p.Graphic)
	p.Container = NewHookContainer(
		HookContainerOpts.Child(inner),
		HookContainerOpts.UpdateHook(func(c *HookContainer) {
			p.refresh()
			c.UpdateChild()
		}),
	)
	return p
}

// SetFrequency schedules a redraw for a new laser frequency.
func (p *WaveformPlot) SetFrequency(hz int) {
	p.frequency = hz
}

func (p *WaveformPlot) refresh() {
	rect := p.Graphic.GetWidget().Rect
	width, height := rect.Dx(), rect.Dy()
	if width <= 0 || height <= 0 {
		return
	}
	resized := width != p.width || height != p.height
	if resized {
		if p.Graphic.Image != nil {
			p.Graphic.Image.Deallocate()
		}
		p.width, p.height = width, height
		p.Graphic.Image = ebiten.NewImage(width, height)
	}
	if resized || p.drawnFreq != p.frequency {
		p.draw(p.Graphic.Image, waveform.SquareWave(p.frequency))
		p.drawnFreq = p.frequency
	}
}

var (
	plotBg   = color.NRGBA{0x0c, 0x16, 0x20, 0xff}
	plotGrid = color.NRGBA{0x40, 0x50, 0x60, 0xff}
)

func (p *WaveformPlot) draw(img *ebiten.Image, w waveform.Waveform) {
	img.Fill(plotBg)
	area := newPlotArea(p.width, p.height)

	for _, level := range []float64{0, 0.5, 1} {
		x0, y := area.toScreen(waveform.Point{X: 0, Y: level})
		x1, _ := area.toScreen(waveform.Point{X: waveform.Duration, Y: level})
		vector.StrokeLine(img, x0, y, x1, y, 1, plotGrid, false)
		p.label(img, fmt.Sprintf("%.1f", level), float64(x0)-30, float64(y)-7)
	}
	for i := 0; i <= 10; i++ {
		t := float64(i) * waveform.Duration / 10
		x, y0 := area.toScreen(waveform.Point{X: t, Y: plotYMax})
		_, y1 := area.toScreen(waveform.Point{X: t, Y: plotYMin})
		vector.StrokeLine(img, x, y0, x, y1, 1, plotGrid, false)
		if i%5 == 0 {
			p.label(img, fmt.Sprintf("%gs", t), float64(x)-6, float64(y1)+4)
		}
	}

	trace := traceColor(w.Frequency)
	pts := simplify(w.StepsPre())
	for i := 1; i < len(pts); i++ {
		x0, y0 := area.toScreen(pts[i-1])
		x1, y1 := area.toScreen(pts[i])
		vector.StrokeLine(img, x0, y0, x1, y1, 2, trace, true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(area.left, 6)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(img, w.Title(), p.titleFace, op)
}

func (p *WaveformPlot) label(img *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colornames.Lightgray)
	text.Draw(img, s, p.tickFace, op)
}
