// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"fmt"
	"image/color"

	"cogentcore.org/lsystem/colors"
	"golang.org/x/exp/constraints"
)

// Color is an RGB color that may be unset. The zero value is
// [NoColor], which means that the color should not be applied:
// a pen without a color moves without drawing, and a fill without
// a color does not fill.
type Color struct {
	R, G, B uint8

	// Valid is whether the color is set.
	Valid bool
}

// NoColor is the unset [Color].
var NoColor = Color{}

// RGB returns a set [Color] from the given channel values, each of
// which is truncated to an integer and clamped to [0, 255].
func RGB[T constraints.Integer | constraints.Float](r, g, b T) Color {
	return Color{R: colors.ClampChannel(int(r)), G: colors.ClampChannel(int(g)), B: colors.ClampChannel(int(b)), Valid: true}
}

// FromRGBA returns a set [Color] with the channels of c, unless c is
// the nil color (see [colors.IsNil]), in which case it returns [NoColor].
func FromRGBA(c color.RGBA) Color {
	if colors.IsNil(c) {
		return NoColor
	}
	return Color{R: c.R, G: c.G, B: c.B, Valid: true}
}

// ParseColor returns the [Color] for the given color string, in any of
// the forms accepted by [colors.FromString]. "none" and the empty
// string give [NoColor]. The alpha of the parsed color is ignored.
func ParseColor(s string) (Color, error) {
	c, err := colors.FromString(s)
	if err != nil {
		return NoColor, err
	}
	return FromRGBA(c), nil
}

// RGBA returns the color as an opaque [color.RGBA], or the
// transparent zero value for [NoColor].
func (c Color) RGBA() color.RGBA {
	if !c.Valid {
		return color.RGBA{}
	}
	return color.RGBA{c.R, c.G, c.B, 255}
}

func (c Color) String() string {
	if !c.Valid {
		return "none"
	}
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Channel returns the value of channel i (0 = red, 1 = green, 2 = blue).
func (c Color) Channel(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	}
	return c.B
}

// AddChannel returns the color with amount added to channel i
// (0 = red, 1 = green, 2 = blue), clamped to [0, 255].
// [NoColor] is returned unchanged.
func (c Color) AddChannel(i, amount int) Color {
	if !c.Valid {
		return c
	}
	v := colors.ClampChannel(int(c.Channel(i)) + amount)
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	default:
		c.B = v
	}
	return c
}

// PaletteSize is the number of colors in a [Palette],
// one per digit symbol.
const PaletteSize = 10

// Palette is the sequence of colors selected by the digit symbols.
// Slot 0 is the initial pen color and slot 1 the initial fill color.
type Palette [PaletteSize]Color

// DefaultPalette is the palette used for slots that are not
// otherwise specified.
var DefaultPalette = Palette{
	RGB(255, 255, 255),
	RGB(128, 128, 128),
	RGB(255, 0, 0),
	RGB(255, 128, 0),
	RGB(255, 255, 0),
	RGB(0, 255, 0),
	RGB(0, 255, 255),
	RGB(0, 0, 255),
	RGB(128, 0, 255),
	RGB(255, 0, 255),
}

// NewPalette returns the palette for the given pen color, fill color
// and explicit color list. If list is nil, the palette is the pen
// color, the fill color, and the rest of [DefaultPalette]. Otherwise
// the first (up to [PaletteSize]) colors of list are used as given and
// the remaining slots come from [DefaultPalette]; pen and fill are
// ignored in that case. A non-nil empty list therefore yields
// [DefaultPalette] itself.
func NewPalette(pen, fill Color, list []Color) Palette {
	pal := DefaultPalette
	if list == nil {
		pal[0] = pen
		pal[1] = fill
		return pal
	}
	copy(pal[:], list)
	return pal
}
