// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"cogentcore.org/lsystem/math32"
)

// State is the complete interpreter state that is saved by [ and
// restored by ]. It is a plain value: copying it copies everything.
type State struct {

	// Position is the turtle position.
	Position math32.Vector2

	// Heading is the turtle heading, in the units of [Params.FullCircle].
	Heading float32

	// Angle is the current turn angle.
	Angle float32

	// Length is the current step length.
	Length float32

	// Thickness is the current pen width. It may go negative;
	// it is clamped at 0 only when applied to the [Drawer].
	Thickness float32

	// PenColor is the current pen color.
	PenColor Color

	// FillColor is the current fill color.
	FillColor Color

	// SwapSigns is whether + and - are mirrored.
	SwapSigns bool

	// SwapCases is whether upper and lower case letters are swapped.
	SwapCases bool

	// ModifyFill is whether the next color symbol applies to
	// the fill color instead of the pen color.
	ModifyFill bool
}

// Params are the initial values and increments for a run of an [Interpreter].
type Params struct {

	// Angle is the initial turn angle.
	Angle float32

	// Length is the initial step length.
	Length float32

	// Thickness is the initial pen width.
	Thickness float32

	// AngleIncrement is added or subtracted by ) and (.
	AngleIncrement float32

	// LengthIncrement is added or subtracted by ^ and %.
	LengthIncrement float32

	// LengthScalar multiplies or divides the length for * and /.
	// It is not checked for zero.
	LengthScalar float32

	// ThicknessIncrement is added or subtracted by > and <.
	ThicknessIncrement float32

	// ColorIncrements are the red, green and blue amounts used by
	// the color increment symbols.
	ColorIncrements [3]int

	// FullCircle is the number of angle units in a full turn,
	// for example 360 for degrees.
	FullCircle float32

	// Position is the initial position, returned to by ".
	Position math32.Vector2

	// Heading is the initial heading, returned to by '.
	Heading float32

	// DrawsPerFrame is the number of drawing symbols between
	// captured frames. Values below 1 are treated as 1.
	DrawsPerFrame int
}

// DefaultParams returns the default [Params].
func DefaultParams() Params {
	return Params{
		Angle:              90,
		Length:             10,
		Thickness:          1,
		AngleIncrement:     15,
		LengthIncrement:    5,
		LengthScalar:       2,
		ThicknessIncrement: 1,
		ColorIncrements:    [3]int{1, 1, 1},
		FullCircle:         360,
		DrawsPerFrame:      1,
	}
}

// Scaled returns the params with all lengths multiplied by scale:
// the position, length, thickness, length increment, length scalar
// and thickness increment.
func (p Params) Scaled(scale float32) Params {
	p.Position = p.Position.MulScalar(scale)
	p.Length *= scale
	p.Thickness *= scale
	p.LengthIncrement *= scale
	// the scalar is scaled too, so * and / depend on the scale
	p.LengthScalar *= scale
	p.ThicknessIncrement *= scale
	return p
}

// initialState returns the state at the start of a run.
func (p Params) initialState(pal Palette) State {
	return State{
		Position:  p.Position,
		Heading:   p.Heading,
		Angle:     p.Angle,
		Length:    p.Length,
		Thickness: p.Thickness,
		PenColor:  pal[0],
		FillColor: pal[1],
	}
}
