// SPDX-License-Identifier: Unlicense OR MIT

// Command gioplot-demo shows the three gioplot widgets: the capsule
// progress bar, the safe-zone chart with tappable points and the image
// label overlay.
package main

import (
	"image"
	"image/color"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/Jokwanhee/gioplot/chart"
	"github.com/Jokwanhee/gioplot/overlay"
	"github.com/Jokwanhee/gioplot/progress"
)

func main() {
	cfg := loadConfig()
	series := sampleSeries()
	if cfg.DataFile != "" {
		s, err := loadSeries(cfg.DataFile)
		if err != nil {
			log.Fatalf("data: %v", err)
		}
		series = s
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("gioplot demo"), app.Size(cfg.WindowWidth, cfg.WindowHeight))
		if err := loop(w, cfg, series); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, cfg config, series []chart.Point) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	ui := newDemoUI(th, cfg, series)
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

type demoTag struct {
	name string
	pos  f32.Point
	tag  overlay.Tag
}

type demoUI struct {
	th     *material.Theme
	cfg    config
	series []chart.Point

	list       widget.List
	goalSlider widget.Float
	chartState chart.Chart
	legend     component.GridState
	chartIcon  *widget.Icon

	host     paint.ImageOp
	tags     []demoTag
	tagInput struct{}
	status   string
}

func newDemoUI(th *material.Theme, cfg config, series []chart.Point) *demoUI {
	icon, err := widget.NewIcon(icons.EditorShowChart)
	if err != nil {
		log.Fatalf("icon: %v", err)
	}
	ui := &demoUI{
		th:        th,
		cfg:       cfg,
		series:    series,
		chartIcon: icon,
		host:      paint.NewImageOp(hostImage(360, 220)),
		tags: []demoTag{
			{name: "shoulder", pos: f32.Pt(0.18, 0.12)},
			{name: "waist", pos: f32.Pt(0.55, 0.45)},
			{name: "hip", pos: f32.Pt(0.3, 0.72)},
		},
		status: "tap a tag",
	}
	ui.list.Axis = layout.Vertical
	ui.goalSlider.Value = 0.4
	return ui
}

func (ui *demoUI) layout(gtx layout.Context) layout.Dimensions {
	ui.updateTags(gtx)
	sections := []layout.Widget{
		ui.layoutHeader,
		ui.layoutProgress,
		ui.layoutChart,
		ui.layoutLegend,
		ui.layoutOverlay,
	}
	return material.List(ui.th, &ui.list).Layout(gtx, len(sections), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.UniformInset(unit.Dp(12)).Layout(gtx, sections[i])
	})
}

func (ui *demoUI) layoutHeader(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			sz := gtx.Dp(28)
			gtx.Constraints = layout.Exact(image.Pt(sz, sz))
			return ui.chartIcon.Layout(gtx, ui.th.Palette.ContrastBg)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Rigid(material.H6(ui.th, "Weekly weight").Layout),
	)
}

func (ui *demoUI) layoutProgress(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.Body2(ui.th, "Goal progress").Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(material.Slider(ui.th, &ui.goalSlider).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(progress.Bar(ui.th, ui.goalSlider.Value).Layout),
	)
}

func (ui *demoUI) layoutChart(gtx layout.Context) layout.Dimensions {
	gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, gtx.Dp(300)))
	c := chart.SafeZone(ui.th, &ui.chartState, ui.series)
	c.UpperRatio = ui.cfg.UpperRatio
	return c.Layout(gtx)
}

func (ui *demoUI) layoutLegend(gtx layout.Context) layout.Dimensions {
	const (
		dayCol = iota
		weightCol
		goalCol
		numCols
	)
	rowHeight := gtx.Sp(22)
	rows := len(ui.series)
	gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, rowHeight*(min(rows, 5)+1)))
	table := component.Table(ui.th, &ui.legend)
	return table.Layout(gtx, rows, numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			return constraint / numCols
		},
		func(gtx layout.Context, col int) layout.Dimensions {
			var l material.LabelStyle
			switch col {
			case dayCol:
				l = material.Body2(ui.th, "Day")
			case weightCol:
				l = material.Body2(ui.th, "Weight")
			default:
				l = material.Body2(ui.th, "Goal")
			}
			l.Color = ui.th.Palette.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx layout.Context) layout.Dimensions {
					paint.FillShape(gtx.Ops, ui.th.Palette.ContrastBg, clip.Rect{Max: gtx.Constraints.Min}.Op())
					return layout.Dimensions{Size: gtx.Constraints.Min}
				},
				l.Layout,
			)
		},
		func(gtx layout.Context, row, col int) layout.Dimensions {
			pt := ui.series[row]
			var txt string
			switch col {
			case dayCol:
				txt = pt.Label
			case weightCol:
				txt = chart.FormatValue(pt.Value)
			default:
				txt = chart.FormatValue(pt.Goal)
			}
			l := material.Body2(ui.th, txt)
			if !pt.Enabled {
				l.Color.A = 0x64
			}
			return l.Layout(gtx)
		},
	)
}

func (ui *demoUI) layoutOverlay(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.Body2(ui.th, ui.status).Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, gtx.Dp(220)))
			return layout.Stack{}.Layout(gtx,
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					img := widget.Image{Src: ui.host, Fit: widget.Cover}
					return img.Layout(gtx)
				}),
				layout.Expanded(func(gtx layout.Context) layout.Dimensions {
					defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
					event.Op(gtx.Ops, &ui.tagInput)
					for i := range ui.tags {
						t := &ui.tags[i]
						overlay.Label(ui.th, &t.tag, t.name, t.pos).Layout(gtx)
					}
					return layout.Dimensions{Size: gtx.Constraints.Max}
				}),
			)
		}),
	)
}

// updateTags resolves taps on the overlay against the tag bounds recorded
// during the previous frame.
func (ui *demoUI) updateTags(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &ui.tagInput, Kinds: pointer.Press})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok || e.Kind != pointer.Press {
			continue
		}
		ui.status = "tap a tag"
		p := image.Pt(int(e.Position.X), int(e.Position.Y))
		for i := range ui.tags {
			if ui.tags[i].tag.Hit(p) {
				ui.status = "tapped " + ui.tags[i].name
				break
			}
		}
	}
}

// hostImage paints a simple placeholder picture for the overlay section.
func hostImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	top := color.NRGBA{R: 0x90, G: 0xca, B: 0xf9, A: 0xff}
	bottom := color.NRGBA{R: 0x1a, G: 0x23, B: 0x7e, A: 0xff}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		c := color.NRGBA{
			R: uint8(float64(top.R) + t*float64(int(bottom.R)-int(top.R))),
			G: uint8(float64(top.G) + t*float64(int(bottom.G)-int(top.G))),
			B: uint8(float64(top.B) + t*float64(int(bottom.B)-int(top.B))),
			A: 0xff,
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
