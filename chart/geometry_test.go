// SPDX-License-Identifier: Unlicense OR MIT

package chart

import (
	"math"
	"testing"

	"gioui.org/f32"
)

var sampleSeries = []Point{
	{Label: "Mon", Value: 52.6, Goal: 51.2, Enabled: true},
	{Label: "Tue", Value: 52.6, Goal: 51.3, Enabled: true},
	{Label: "Wed", Value: 51.2, Goal: 51.5, Enabled: true},
	{Label: "Thu", Value: 51.1, Goal: 51.5, Enabled: false},
	{Label: "Fri", Value: 51.3, Goal: 51.5, Enabled: true},
}

var testFrame = Frame{
	Origin: f32.Pt(40, 0),
	Size:   f32.Pt(300, 200),
}

func testConfig() Config {
	return Config{
		XCount:     7,
		YCount:     5,
		UpperRatio: 0.05,
		DotRadius:  3,
	}
}

func TestWindowLength(t *testing.T) {
	series := make([]Point, 10)
	for i := range series {
		series[i] = Point{Value: float32(i), Goal: float32(i), Enabled: true}
	}
	for _, tc := range []struct {
		length, xcount, want int
	}{
		{10, 7, 7},
		{5, 7, 5},
		{7, 7, 7},
		{1, 7, 1},
		{10, 1, 1},
	} {
		cfg := testConfig()
		cfg.XCount = tc.xcount
		p := NewPlot(series[:tc.length], testFrame, cfg)
		if got := len(p.Window); got != tc.want {
			t.Errorf("len=%d xcount=%d: window length %d, want %d", tc.length, tc.xcount, got, tc.want)
		}
		// The window is the series tail.
		if len(p.Window) > 0 && p.Window[len(p.Window)-1] != series[tc.length-1] {
			t.Errorf("len=%d xcount=%d: window is not a suffix of the series", tc.length, tc.xcount)
		}
	}
}

func TestAxisTicks(t *testing.T) {
	p := NewPlot(sampleSeries, testFrame, testConfig())
	want := []float32{50.1, 51.3, 52.6, 53.8, 55.1}
	if len(p.Ticks) != len(want) {
		t.Fatalf("got %d ticks %v, want %d", len(p.Ticks), p.Ticks, len(want))
	}
	for i, w := range want {
		if math.Abs(float64(p.Ticks[i]-w)) > 1e-4 {
			t.Errorf("tick %d: got %v, want %v", i, p.Ticks[i], w)
		}
	}
	for i := 1; i < len(p.Ticks); i++ {
		if p.Ticks[i] < p.Ticks[i-1] {
			t.Errorf("ticks not ascending: %v", p.Ticks)
		}
	}
}

func TestAxisTicksSingle(t *testing.T) {
	ticks := axisTicks(sampleSeries, 1, 0.05)
	if len(ticks) != 1 {
		t.Fatalf("got %d ticks, want 1", len(ticks))
	}
	if want := round1(51.1 - 1); ticks[0] != want {
		t.Errorf("got tick %v, want %v", ticks[0], want)
	}
}

func TestYMonotonic(t *testing.T) {
	p := NewPlot(sampleSeries, testFrame, testConfig())
	lo, hi := p.Ticks[0], p.Ticks[len(p.Ticks)-1]
	prev := p.Y(lo)
	for v := lo; v <= hi; v += 0.1 {
		y := p.Y(v)
		if y > prev {
			t.Fatalf("Y(%v)=%v rose above Y of the previous value %v", v, y, prev)
		}
		prev = y
	}
}

func TestYRange(t *testing.T) {
	p := NewPlot(sampleSeries, testFrame, testConfig())
	h := p.Frame.Size.Y
	slot := h / float32(p.YCount)
	// The top tick maps into the reserved top slot.
	if y := p.Y(p.Ticks[len(p.Ticks)-1]); math.Abs(float64(y-slot)) > 0.01 {
		t.Errorf("Y(top tick) = %v, want %v", y, slot)
	}
	// Data values sit strictly inside the frame: the tick range is widened
	// by one unit beyond the data on both ends.
	for _, pt := range p.Window {
		y := p.Y(pt.Value)
		if y <= 0 || y >= h {
			t.Errorf("Y(%v) = %v, outside (0, %v)", pt.Value, y, h)
		}
	}
}

func TestYFlatRange(t *testing.T) {
	p := Plot{
		Frame:  testFrame,
		YCount: 5,
		Ticks:  []float32{51.2, 51.2},
	}
	y := p.Y(51.2)
	if math.IsNaN(float64(y)) || math.IsInf(float64(y), 0) {
		t.Fatalf("flat tick range produced %v", y)
	}
	// Pinned to the midline of the usable band.
	h := p.Frame.Size.Y
	mid := h - 4.0/5.0*h + (h-h/5)*0.5
	if math.Abs(float64(y-mid)) > 0.01 {
		t.Errorf("got %v, want midline %v", y, mid)
	}
}

func TestHitRegionSize(t *testing.T) {
	cfg := testConfig()
	p := NewPlot(sampleSeries, testFrame, cfg)
	if len(p.Regions) != len(p.Window) {
		t.Fatalf("got %d regions for %d points", len(p.Regions), len(p.Window))
	}
	for i, r := range p.Regions {
		if dx := r.Bounds.Dx(); dx != 4*cfg.DotRadius {
			t.Errorf("region %d: width %d, want %d", i, dx, 4*cfg.DotRadius)
		}
		if dy := r.Bounds.Dy(); dy != 4*cfg.DotRadius {
			t.Errorf("region %d: height %d, want %d", i, dy, 4*cfg.DotRadius)
		}
	}
}

func TestHit(t *testing.T) {
	p := NewPlot(sampleSeries, testFrame, testConfig())
	for i, r := range p.Regions {
		got, ok := p.Hit(r.Center)
		if !ok {
			t.Fatalf("region %d: tap at center %v missed", i, r.Center)
		}
		if got.Bounds != r.Bounds {
			t.Errorf("region %d: tap at center resolved to %v, want %v", i, got.Bounds, r.Bounds)
		}
	}
	if _, ok := p.Hit(f32.Pt(-100, -100)); ok {
		t.Error("tap far outside the frame reported a hit")
	}
	// Just past the region edge misses.
	r := p.Regions[0]
	outside := f32.Pt(float32(r.Bounds.Max.X)+1, float32(r.Bounds.Max.Y)+1)
	if got, ok := p.Hit(outside); ok && got.Bounds == r.Bounds {
		t.Errorf("tap just past region 0 still hit it")
	}
}

func TestHitFirstMatchOrder(t *testing.T) {
	series := []Point{
		{Label: "a", Value: 50, Goal: 50, Enabled: true},
		{Label: "b", Value: 50, Goal: 50, Enabled: true},
	}
	cfg := testConfig()
	cfg.XCount = 2
	cfg.DotRadius = 100 // force the two regions to overlap
	p := NewPlot(series, testFrame, cfg)
	mid := f32.Pt(
		(p.Regions[0].Center.X+p.Regions[1].Center.X)/2,
		p.Regions[0].Center.Y,
	)
	got, ok := p.Hit(mid)
	if !ok {
		t.Fatal("tap between overlapping regions missed")
	}
	if got.Bounds != p.Regions[0].Bounds {
		t.Error("overlapping hit did not resolve to the first region in window order")
	}
}

func TestEmptySeries(t *testing.T) {
	p := NewPlot(nil, testFrame, testConfig())
	if len(p.Window) != 0 || len(p.Ticks) != 0 || len(p.Regions) != 0 {
		t.Fatalf("empty series produced geometry: %+v", p)
	}
	if _, ok := p.Hit(f32.Pt(100, 100)); ok {
		t.Error("empty plot reported a hit")
	}
}

func TestSeriesPathExtension(t *testing.T) {
	p := NewPlot(sampleSeries, testFrame, testConfig())
	right := p.Frame.Origin.X + p.Frame.Size.X
	for name, pts := range map[string][]f32.Point{"line": p.Line, "lower": p.Lower, "upper": p.Upper} {
		if len(pts) != len(p.Window)+1 {
			t.Fatalf("%s: got %d points for %d window entries", name, len(pts), len(p.Window))
		}
		last, hold := pts[len(pts)-2], pts[len(pts)-1]
		if hold.X != right {
			t.Errorf("%s: hold point at x=%v, want right edge %v", name, hold.X, right)
		}
		if hold.Y != last.Y {
			t.Errorf("%s: hold point changed y from %v to %v", name, last.Y, hold.Y)
		}
	}
}

func TestGridRules(t *testing.T) {
	p := NewPlot(sampleSeries, testFrame, testConfig())
	hs := p.HorizontalRules()
	if len(hs) != p.XCount-1 {
		t.Fatalf("got %d horizontal rules, want %d", len(hs), p.XCount-1)
	}
	h := p.Frame.Size.Y
	for i, y := range hs {
		want := h * float32(p.XCount-1-i) / float32(p.XCount)
		if math.Abs(float64(y-want)) > 0.01 {
			t.Errorf("rule %d at %v, want %v", i, y, want)
		}
	}
	vs := p.VerticalRules()
	if len(vs) != p.YCount-1 {
		t.Fatalf("got %d vertical rules, want %d", len(vs), p.YCount-1)
	}
}

func TestDashSegments(t *testing.T) {
	segs := dashSegments(f32.Pt(0, 0), f32.Pt(35, 0), 10, 10)
	want := [][2]float32{{0, 10}, {20, 30}}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d", len(segs), len(want))
	}
	for i, w := range want {
		if segs[i][0].X != w[0] || segs[i][1].X != w[1] {
			t.Errorf("segment %d: got [%v, %v], want %v", i, segs[i][0].X, segs[i][1].X, w)
		}
	}
	if segs := dashSegments(f32.Pt(5, 5), f32.Pt(5, 5), 10, 10); segs != nil {
		t.Errorf("zero-length segment produced dashes: %v", segs)
	}
}
