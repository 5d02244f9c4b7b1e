// SPDX-License-Identifier: Unlicense OR MIT

package f32color

import (
	"image/color"
	"testing"
)

func TestMulAlpha(t *testing.T) {
	c := color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	if got := MulAlpha(c, 0xff); got != c {
		t.Errorf("full alpha changed the color: %v", got)
	}
	if got := MulAlpha(c, 0); got.A != 0 {
		t.Errorf("zero alpha left A=%d", got.A)
	}
	half := MulAlpha(c, 0x80)
	if half.A != 0x80 || half.R != c.R {
		t.Errorf("got %v, want alpha scaled only", half)
	}
}
