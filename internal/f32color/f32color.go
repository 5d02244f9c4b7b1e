// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color provides the NRGBA helpers shared by the widgets.
package f32color

import "image/color"

// MulAlpha scales the alpha channel of c by alpha/255.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Disabled returns the muted version of c used for inactive elements.
func Disabled(c color.NRGBA) color.NRGBA {
	return MulAlpha(c, 0xaa)
}
