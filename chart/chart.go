// SPDX-License-Identifier: Unlicense OR MIT

// Package chart implements a safe-zone line chart widget: a value series
// drawn over a filled band between a per-point goal and an upper goal
// bound, with dashed gridlines, axis labels and tap-to-inspect points.
package chart

import (
	"image"
	"image/color"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/Jokwanhee/gioplot/internal/f32color"
)

// selectionTimeout is how long a tapped point stays highlighted before the
// callout dismisses itself.
const selectionTimeout = 2 * time.Second

// Dash pattern of the interior gridlines, in pixels.
const (
	dashOn  = 10
	dashOff = 10
)

// Chart holds the state of a chart between frames: the entrance animation
// clock, the active selection and the tap regions of the last laid out
// frame. The zero value is ready to use.
type Chart struct {
	started  time.Time
	selected Region
	hasSel   bool
	deadline time.Time

	// plot is the geometry of the previous frame. Pointer events are
	// delivered against areas declared a frame ago, so taps resolve
	// against it.
	plot Plot
}

// Selected reports the active selection, if any.
func (c *Chart) Selected() (Region, bool) {
	return c.selected, c.hasSel
}

// Regions returns the tap regions of the most recently laid out frame,
// in window order. The slice is rebuilt every frame.
func (c *Chart) Regions() []Region {
	return c.plot.Regions
}

// update processes pointer events and the selection deadline, and returns
// the entrance animation progress in [0, 1].
func (c *Chart) update(gtx layout.Context, dur time.Duration) float32 {
	if c.started.IsZero() {
		c.started = gtx.Now
	}
	if c.hasSel && !gtx.Now.Before(c.deadline) {
		c.hasSel = false
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{Target: c, Kinds: pointer.Press})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok || e.Kind != pointer.Press {
			continue
		}
		// Any tap dismisses the current callout, even one that misses
		// every point.
		c.hasSel = false
		if r, ok := c.plot.Hit(e.Position); ok {
			c.selected = r
			c.hasSel = true
			c.deadline = gtx.Now.Add(selectionTimeout)
		}
	}
	if dur <= 0 {
		return 1
	}
	elapsed := gtx.Now.Sub(c.started)
	if elapsed >= dur {
		return 1
	}
	return float32(elapsed) / float32(dur)
}

// Style draws a Chart. Construct it with SafeZone and override fields as
// needed before calling Layout.
type Style struct {
	Chart  *Chart
	Series []Point

	// XCount and YCount are the visible point count and the Y tick count.
	XCount int
	YCount int
	// UpperRatio positions the top of the safe zone at Goal*(1+UpperRatio).
	UpperRatio float32

	DotRadius unit.Dp
	LineWidth unit.Dp
	TextSize  unit.Sp

	LineColor   color.NRGBA
	ZoneColor   color.NRGBA
	GridColor   color.NRGBA
	BorderColor color.NRGBA
	LabelColor  color.NRGBA
	// Marker colors for the three point states.
	OnTarget  color.NRGBA
	OffTarget color.NRGBA
	Muted     color.NRGBA
	CalloutBg color.NRGBA
	CalloutFg color.NRGBA

	// EnterDuration is the length of the one-shot entrance fade.
	EnterDuration time.Duration

	Theme *material.Theme
}

// SafeZone configures a chart with the default palette and counts.
func SafeZone(th *material.Theme, c *Chart, series []Point) Style {
	return Style{
		Chart:         c,
		Series:        series,
		XCount:        7,
		YCount:        5,
		UpperRatio:    0.05,
		DotRadius:     unit.Dp(3),
		LineWidth:     unit.Dp(2),
		TextSize:      unit.Sp(12),
		LineColor:     th.Palette.ContrastBg,
		ZoneColor:     color.NRGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0x59},
		GridColor:     f32color.MulAlpha(th.Palette.Fg, 0x40),
		BorderColor:   f32color.MulAlpha(th.Palette.Fg, 0x90),
		LabelColor:    f32color.MulAlpha(th.Palette.Fg, 0xb0),
		OnTarget:      color.NRGBA{R: 0x43, G: 0xa0, B: 0x47, A: 0xff},
		OffTarget:     color.NRGBA{R: 0xef, G: 0x6c, B: 0x00, A: 0xff},
		Muted:         color.NRGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
		CalloutBg:     th.Palette.Bg,
		CalloutFg:     th.Palette.Fg,
		EnterDuration: 600 * time.Millisecond,
		Theme:         th,
	}
}

// Layout recomputes the plot geometry from the series and draws the chart
// into the constraint maximum. Draw order is gridlines, labels, band fill,
// value line, border, point markers, then the selection callout.
func (s Style) Layout(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Max
	alpha := uint8(255 * s.Chart.update(gtx, s.EnterDuration))
	if alpha < 255 {
		gtx.Execute(op.InvalidateCmd{})
	}

	cfg := Config{
		XCount:     s.XCount,
		YCount:     s.YCount,
		UpperRatio: s.UpperRatio,
		DotRadius:  gtx.Dp(s.DotRadius),
	}
	frame := s.measureFrame(gtx, sz, cfg)
	plot := NewPlot(s.Series, frame, cfg)
	s.Chart.plot = plot
	if len(plot.Window) == 0 || len(plot.Ticks) == 0 {
		return layout.Dimensions{Size: sz}
	}

	defer clip.Rect(image.Rectangle{Max: sz}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, s.Chart)

	s.drawGrid(gtx, &plot, alpha)
	s.drawLabels(gtx, &plot, alpha)
	s.drawZone(gtx, &plot, alpha)
	s.drawLine(gtx, &plot, alpha)
	s.drawBorder(gtx, &plot, alpha)
	s.drawDots(gtx, &plot, alpha)
	if r, ok := s.Chart.Selected(); ok {
		s.drawCallout(gtx, sz, r, alpha)
		gtx.Execute(op.InvalidateCmd{At: s.Chart.deadline})
	}
	return layout.Dimensions{Size: sz}
}

// measureFrame reserves the label gutters: the widest Y tick label plus a
// fixed spacing on the left, one label line at the bottom.
func (s Style) measureFrame(gtx layout.Context, sz image.Point, cfg Config) Frame {
	n := cfg.XCount
	if len(s.Series) < n {
		n = len(s.Series)
	}
	yCount := cfg.YCount
	if len(s.Series) < yCount {
		yCount = len(s.Series)
	}
	var window []Point
	if n > 0 {
		window = s.Series[len(s.Series)-n:]
	}
	var labelW, labelH int
	for _, tick := range axisTicks(window, yCount, cfg.UpperRatio) {
		dims, _ := s.record(gtx, FormatValue(tick), s.LabelColor)
		labelW = max(labelW, dims.Size.X)
		labelH = max(labelH, dims.Size.Y)
	}
	gutter := labelW + gtx.Dp(8)
	return Frame{
		Origin: f32.Pt(float32(gutter), 0),
		Size:   f32.Pt(float32(sz.X-gutter), float32(sz.Y-labelH)),
	}
}

// record lays a label out into a macro and returns its dimensions together
// with the replayable call.
func (s Style) record(gtx layout.Context, txt string, col color.NRGBA) (layout.Dimensions, op.CallOp) {
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	l := material.Label(s.Theme, s.TextSize, txt)
	l.Color = col
	l.MaxLines = 1
	dims := l.Layout(gtx)
	return dims, macro.Stop()
}

func (s Style) drawGrid(gtx layout.Context, p *Plot, alpha uint8) {
	left := p.Frame.Origin.X
	right := p.Frame.Origin.X + p.Frame.Size.X
	var path clip.Path
	path.Begin(gtx.Ops)
	for _, y := range p.HorizontalRules() {
		for _, seg := range dashSegments(f32.Pt(left, y), f32.Pt(right, y), dashOn, dashOff) {
			path.MoveTo(seg[0])
			path.LineTo(seg[1])
		}
	}
	for _, x := range p.VerticalRules() {
		for _, seg := range dashSegments(f32.Pt(x, 0), f32.Pt(x, p.Frame.Size.Y), dashOn, dashOff) {
			path.MoveTo(seg[0])
			path.LineTo(seg[1])
		}
	}
	paint.FillShape(gtx.Ops, f32color.MulAlpha(s.GridColor, alpha), clip.Stroke{
		Path:  path.End(),
		Width: 1,
	}.Op())
}

func (s Style) drawLabels(gtx layout.Context, p *Plot, alpha uint8) {
	col := f32color.MulAlpha(s.LabelColor, alpha)
	h := p.Frame.Size.Y
	n := len(p.Ticks)
	for i, tick := range p.Ticks {
		dims, call := s.record(gtx, FormatValue(tick), col)
		// Tick i from the bottom sits on the rule at h*(n-i)/n, with the
		// label centered on it.
		y := h * float32(n-i) / float32(n)
		off := op.Offset(image.Pt(0, int(y)-dims.Size.Y/2)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()
	}
	for i, pt := range p.Window {
		if pt.Label == "" {
			continue
		}
		dims, call := s.record(gtx, pt.Label, col)
		off := op.Offset(image.Pt(int(p.X(i))-dims.Size.X/2, int(h))).Push(gtx.Ops)
		call.Add(gtx.Ops)
		off.Pop()
	}
}

// drawZone fills the band between the goal bound and the upper goal bound
// with a vertical gradient fading to transparent at the frame bottom.
func (s Style) drawZone(gtx layout.Context, p *Plot, alpha uint8) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(p.Lower[0])
	for _, pt := range p.Lower[1:] {
		path.LineTo(pt)
	}
	for i := len(p.Upper) - 1; i >= 0; i-- {
		path.LineTo(p.Upper[i])
	}
	path.Close()
	defer clip.Outline{Path: path.End()}.Op().Push(gtx.Ops).Pop()
	from := f32color.MulAlpha(s.ZoneColor, alpha)
	to := from
	to.A = 0
	paint.LinearGradientOp{
		Stop1:  f32.Pt(p.Frame.Origin.X, 0),
		Color1: from,
		Stop2:  f32.Pt(p.Frame.Origin.X, p.Frame.Size.Y),
		Color2: to,
	}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func (s Style) drawLine(gtx layout.Context, p *Plot, alpha uint8) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(p.Line[0])
	for _, pt := range p.Line[1:] {
		path.LineTo(pt)
	}
	paint.FillShape(gtx.Ops, f32color.MulAlpha(s.LineColor, alpha), clip.Stroke{
		Path:  path.End(),
		Width: float32(gtx.Dp(s.LineWidth)),
	}.Op())
}

func (s Style) drawBorder(gtx layout.Context, p *Plot, alpha uint8) {
	o := p.Frame.Origin
	w, h := p.Frame.Size.X, p.Frame.Size.Y
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(o)
	path.LineTo(f32.Pt(o.X+w, o.Y))
	path.LineTo(f32.Pt(o.X+w, o.Y+h))
	path.LineTo(f32.Pt(o.X, o.Y+h))
	path.Close()
	paint.FillShape(gtx.Ops, f32color.MulAlpha(s.BorderColor, alpha), clip.Stroke{
		Path:  path.End(),
		Width: 1,
	}.Op())
}

func (s Style) drawDots(gtx layout.Context, p *Plot, alpha uint8) {
	r := gtx.Dp(s.DotRadius)
	for i, pt := range p.Window {
		col := s.dotColor(pt)
		c := roundPt(p.Regions[i].Center)
		circle := clip.Ellipse(image.Rect(c.X-r, c.Y-r, c.X+r, c.Y+r))
		paint.FillShape(gtx.Ops, f32color.MulAlpha(col, alpha), circle.Op(gtx.Ops))
	}
}

// dotColor resolves the three-state marker policy. The enabled flag wins
// over the goal-band check.
func (s Style) dotColor(pt Point) color.NRGBA {
	switch {
	case !pt.Enabled:
		return s.Muted
	case pt.Value >= pt.Goal && pt.Value <= pt.Goal*(1+s.UpperRatio):
		return s.OnTarget
	default:
		return s.OffTarget
	}
}

// drawCallout paints the value bubble above the selected point, clamped to
// the widget bounds.
func (s Style) drawCallout(gtx layout.Context, sz image.Point, r Region, alpha uint8) {
	dims, call := s.record(gtx, r.Value, f32color.MulAlpha(s.CalloutFg, alpha))
	inset := gtx.Dp(6)
	box := image.Pt(dims.Size.X+2*inset, dims.Size.Y+2*inset)
	c := roundPt(r.Center)
	gap := 2 * gtx.Dp(s.DotRadius)
	pos := image.Pt(c.X-box.X/2, c.Y-gap-box.Y)
	pos.X = min(max(pos.X, 0), sz.X-box.X)
	if pos.Y < 0 {
		pos.Y = c.Y + gap
	}
	off := op.Offset(pos).Push(gtx.Ops)
	bounds := image.Rectangle{Max: box}
	rr := clip.UniformRRect(bounds, gtx.Dp(4))
	paint.FillShape(gtx.Ops, f32color.MulAlpha(s.CalloutBg, alpha), rr.Op(gtx.Ops))
	paint.FillShape(gtx.Ops, f32color.MulAlpha(s.BorderColor, alpha), clip.Stroke{
		Path:  rr.Path(gtx.Ops),
		Width: 1,
	}.Op())
	txt := op.Offset(image.Pt(inset, inset)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	txt.Pop()
	off.Pop()
}
