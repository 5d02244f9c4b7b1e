// SPDX-License-Identifier: Unlicense OR MIT

// Package overlay implements name tags drawn over a host image. A tag is
// positioned at a normalized fraction of the host bounds and records the
// rectangle it occupied so the host can hit-test taps against it.
package overlay

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/Jokwanhee/gioplot/internal/f32color"
)

// Tag records where its style was last drawn. The zero value is ready to
// use; Bounds is empty until the first layout.
type Tag struct {
	bounds image.Rectangle
}

// Bounds returns the rectangle the tag occupied in its last layout, in the
// host's local pixel space.
func (t *Tag) Bounds() image.Rectangle {
	return t.bounds
}

// Hit reports whether p falls inside the tag.
func (t *Tag) Hit(p image.Point) bool {
	return p.In(t.bounds)
}

// TagStyle draws a rounded rectangle with a name at a fraction of the host
// bounds.
type TagStyle struct {
	Tag  *Tag
	Name string
	// Pos anchors the tag's top-left corner, normalized to [0, 1] in both
	// axes. The tag is clamped to stay fully inside the host.
	Pos f32.Point

	TextSize unit.Sp
	Inset    unit.Dp
	Radius   unit.Dp
	Bg       color.NRGBA
	Fg       color.NRGBA

	Theme *material.Theme
}

// Label configures a tag with the theme's contrast colors.
func Label(th *material.Theme, t *Tag, name string, pos f32.Point) TagStyle {
	return TagStyle{
		Tag:      t,
		Name:     name,
		Pos:      pos,
		TextSize: unit.Sp(12),
		Inset:    unit.Dp(6),
		Radius:   unit.Dp(6),
		Bg:       f32color.MulAlpha(th.Palette.ContrastBg, 0xdd),
		Fg:       th.Palette.ContrastFg,
		Theme:    th,
	}
}

// Layout draws the tag over the constraint maximum and records its bounds
// in the Tag state.
func (t TagStyle) Layout(gtx layout.Context) layout.Dimensions {
	host := gtx.Constraints.Max

	measure := gtx
	measure.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	l := material.Label(t.Theme, t.TextSize, t.Name)
	l.Color = t.Fg
	l.MaxLines = 1
	dims := l.Layout(measure)
	call := macro.Stop()

	inset := gtx.Dp(t.Inset)
	box := image.Pt(dims.Size.X+2*inset, dims.Size.Y+2*inset)
	pos := image.Pt(
		int(t.Pos.X*float32(host.X)),
		int(t.Pos.Y*float32(host.Y)),
	)
	pos.X = min(max(pos.X, 0), host.X-box.X)
	pos.Y = min(max(pos.Y, 0), host.Y-box.Y)
	t.Tag.bounds = image.Rectangle{Min: pos, Max: pos.Add(box)}

	off := op.Offset(pos).Push(gtx.Ops)
	rr := clip.UniformRRect(image.Rectangle{Max: box}, gtx.Dp(t.Radius))
	paint.FillShape(gtx.Ops, t.Bg, rr.Op(gtx.Ops))
	txt := op.Offset(image.Pt(inset, inset)).Push(gtx.Ops)
	call.Add(gtx.Ops)
	txt.Pop()
	off.Pop()

	return layout.Dimensions{Size: host}
}
