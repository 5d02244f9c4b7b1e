// SPDX-License-Identifier: Unlicense OR MIT

package chart

import (
	"image"
	"math"
	"slices"
	"strconv"

	"gioui.org/f32"
)

// Point is one sample in a chart series. Value is the measured quantity,
// Goal the lower bound of the safe zone at that sample. Points with
// Enabled false are drawn muted and excluded from goal-band styling.
type Point struct {
	Label   string
	Value   float32
	Goal    float32
	Enabled bool
}

// Config holds the visibility parameters for a plot.
type Config struct {
	// XCount and YCount are the visible point count along X and the
	// Y axis tick count. They may differ.
	XCount int
	YCount int
	// UpperRatio places the upper bound of the safe zone at
	// Goal * (1 + UpperRatio).
	UpperRatio float32
	// DotRadius is the point marker radius in pixels. Tap targets are
	// squares of side 4*DotRadius centered on each marker.
	DotRadius int
}

// Frame is the plot rectangle left after reserving the label gutters.
type Frame struct {
	Origin f32.Point
	Size   f32.Point
}

// Region is the tap target for one visible point.
type Region struct {
	Value  string
	Bounds image.Rectangle
	Center f32.Point
}

// Plot is the complete geometry for one frame: the visible window of the
// series mapped into frame coordinates, the axis tick set, the three series
// paths and the per-point tap regions. It is a plain value recomputed from
// scratch on every layout; drawing and hit-testing both read from it.
type Plot struct {
	Frame  Frame
	XCount int
	YCount int

	// Window is the trailing portion of the series that is drawn.
	Window []Point
	// Ticks are the Y axis tick values, ascending, rounded to one decimal.
	Ticks []float32

	// Line, Lower and Upper hold the mapped points for the value series and
	// the two safe-zone bounds. Each has one extra trailing point extending
	// the last value horizontally to the right edge of the frame.
	Line  []f32.Point
	Lower []f32.Point
	Upper []f32.Point

	Regions []Region
}

// NewPlot derives the geometry for series inside frame. An empty series or
// a non-positive frame yields a Plot with an empty window, which draws
// nothing.
func NewPlot(series []Point, frame Frame, cfg Config) Plot {
	p := Plot{
		Frame:  frame,
		XCount: cfg.XCount,
		YCount: cfg.YCount,
	}
	if len(series) == 0 || cfg.XCount <= 0 || cfg.YCount <= 0 || frame.Size.X <= 0 || frame.Size.Y <= 0 {
		return p
	}
	// The Y tick count degrades to the series length when there is not
	// enough data to support the configured count.
	if len(series) < p.YCount {
		p.YCount = len(series)
	}
	n := cfg.XCount
	if len(series) < n {
		n = len(series)
	}
	p.Window = series[len(series)-n:]
	p.Ticks = axisTicks(p.Window, p.YCount, cfg.UpperRatio)

	p.Line = make([]f32.Point, 0, n+1)
	p.Lower = make([]f32.Point, 0, n+1)
	p.Upper = make([]f32.Point, 0, n+1)
	p.Regions = make([]Region, 0, n)
	for i, pt := range p.Window {
		x := p.X(i)
		y := p.Y(pt.Value)
		p.Line = append(p.Line, f32.Pt(x, y))
		p.Lower = append(p.Lower, f32.Pt(x, p.Y(pt.Goal)))
		p.Upper = append(p.Upper, f32.Pt(x, p.Y(pt.Goal*(1+cfg.UpperRatio))))

		c := roundPt(f32.Pt(x, y))
		r := 2 * cfg.DotRadius
		p.Regions = append(p.Regions, Region{
			Value:  FormatValue(pt.Value),
			Bounds: image.Rect(c.X-r, c.Y-r, c.X+r, c.Y+r),
			Center: f32.Pt(x, y),
		})
	}
	// Hold the last value of each series to the right margin.
	right := frame.Origin.X + frame.Size.X
	p.Line = append(p.Line, f32.Pt(right, p.Line[n-1].Y))
	p.Lower = append(p.Lower, f32.Pt(right, p.Lower[n-1].Y))
	p.Upper = append(p.Upper, f32.Pt(right, p.Upper[n-1].Y))
	return p
}

// X maps a window index to a frame X coordinate.
func (p *Plot) X(i int) float32 {
	return p.Frame.Origin.X + float32(i)/float32(p.XCount)*p.Frame.Size.X
}

// Y maps a value to a frame Y coordinate. The mapping reserves one tick
// slot of height at the top and bottom of the frame so that the extreme
// ticks line up with their label baselines: the top tick maps to
// height/count, the bottom tick to the frame bottom, and values in between
// interpolate over the remaining height.
func (p *Plot) Y(v float32) float32 {
	h := p.Frame.Size.Y
	n := float32(p.YCount)
	ratio := float32(0.5)
	if len(p.Ticks) > 0 {
		lo, hi := p.Ticks[0], p.Ticks[len(p.Ticks)-1]
		// A flat tick range would divide by zero; pin such values to the
		// midline instead.
		if span := hi - lo; span != 0 {
			ratio = (v - lo) / span
		}
	}
	return h - (n-1)/n*h + (h - h/n)*(1 - ratio)
}

// HorizontalRules returns the Y positions of the interior horizontal
// gridlines, top to bottom.
func (p *Plot) HorizontalRules() []float32 {
	if p.XCount <= 1 {
		return nil
	}
	ys := make([]float32, 0, p.XCount-1)
	for i := 1; i < p.XCount; i++ {
		ys = append(ys, p.Frame.Size.Y*float32(p.XCount-i)/float32(p.XCount))
	}
	return ys
}

// VerticalRules returns the X positions of the interior vertical gridlines,
// left to right.
func (p *Plot) VerticalRules() []float32 {
	if p.YCount <= 1 {
		return nil
	}
	xs := make([]float32, 0, p.YCount-1)
	for i := 1; i < p.YCount; i++ {
		xs = append(xs, p.Frame.Origin.X+p.Frame.Size.X*float32(i)/float32(p.YCount))
	}
	return xs
}

// Hit resolves a tap position to the first region containing it, scanning
// in window order.
func (p *Plot) Hit(pos f32.Point) (Region, bool) {
	pt := roundPt(pos)
	for _, r := range p.Regions {
		if pt.In(r.Bounds) {
			return r, true
		}
	}
	return Region{}, false
}

// axisTicks builds the Y tick set: count values evenly spanning the pooled
// value, goal and upper-goal range widened by one unit on both ends, each
// rounded to one decimal, sorted ascending.
func axisTicks(window []Point, count int, upperRatio float32) []float32 {
	if len(window) == 0 || count <= 0 {
		return nil
	}
	lo := window[0].Value
	hi := lo
	for _, pt := range window {
		for _, v := range [3]float32{pt.Value, pt.Goal, pt.Goal * (1 + upperRatio)} {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	lo--
	hi++
	step := float32(1)
	if count > 1 {
		step = (hi - lo) / float32(count-1)
	}
	ticks := make([]float32, count)
	for i := range ticks {
		ticks[i] = round1(lo + step*float32(i))
	}
	slices.Sort(ticks)
	return ticks
}

func round1(v float32) float32 {
	return float32(math.Round(float64(v)*10) / 10)
}

func roundPt(p f32.Point) image.Point {
	return image.Pt(int(math.Round(float64(p.X))), int(math.Round(float64(p.Y))))
}

// FormatValue renders a value the way the axis and callout display it.
func FormatValue(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 1, 32)
}

// dashSegments splits the segment from a to b into on/off runs for a dashed
// stroke.
func dashSegments(a, b f32.Point, on, off float32) [][2]f32.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || on <= 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	var segs [][2]f32.Point
	for pos := float32(0); pos < length; pos += on + off {
		end := min(pos+on, length)
		segs = append(segs, [2]f32.Point{
			f32.Pt(a.X+ux*pos, a.Y+uy*pos),
			f32.Pt(a.X+ux*end, a.Y+uy*end),
		})
	}
	return segs
}
