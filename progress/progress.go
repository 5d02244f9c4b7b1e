// SPDX-License-Identifier: Unlicense OR MIT

// Package progress implements a capsule shaped progress bar.
package progress

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/Jokwanhee/gioplot/internal/f32color"
)

// BarStyle draws a track with a proportional fill. The fill keeps square
// corners on its leading edge and rounded corners on its trailing edge;
// the track clip rounds the leading edge off when the fill is short.
type BarStyle struct {
	Progress   float32
	Height     unit.Dp
	Radius     unit.Dp
	Color      color.NRGBA
	TrackColor color.NRGBA
}

// Bar returns a capsule bar: corner radius half the bar height.
func Bar(th *material.Theme, progress float32) BarStyle {
	return BarStyle{
		Progress:   progress,
		Height:     unit.Dp(20),
		Radius:     unit.Dp(10),
		Color:      th.Palette.ContrastBg,
		TrackColor: f32color.MulAlpha(th.Palette.Fg, 0x33),
	}
}

func (b BarStyle) Layout(gtx layout.Context) layout.Dimensions {
	width := gtx.Constraints.Max.X
	height := gtx.Dp(b.Height)
	radius := gtx.Dp(b.Radius)
	track := image.Rectangle{Max: image.Pt(width, height)}

	defer clip.UniformRRect(track, radius).Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, b.TrackColor, clip.Rect(track).Op())
	if fw := fillWidth(width, b.Progress); fw > 0 {
		fill := clip.RRect{
			Rect: image.Rectangle{Max: image.Pt(fw, height)},
			NE:   radius,
			SE:   radius,
		}
		paint.FillShape(gtx.Ops, b.Color, fill.Op(gtx.Ops))
	}
	return layout.Dimensions{Size: track.Max}
}

func fillWidth(total int, progress float32) int {
	return int(float32(total) * clamp1(progress))
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	}
	return v
}
