// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"image/color"

	"cogentcore.org/lsystem/math32"
)

// Drawer is the drawing surface that an [Interpreter] draws on.
// The interpreter assumes that all calls succeed.
type Drawer interface {

	// Move moves forward by dist (backward if negative), drawing a
	// segment with the current pen if pen is true.
	Move(dist float32, pen bool)

	// Turn turns left by delta angle units (right if negative).
	Turn(delta float32)

	// SetPenColor sets the color used for segments.
	SetPenColor(c Color)

	// SetFillColor sets the color used for filled regions.
	SetFillColor(c Color)

	// SetStrokeWidth sets the segment width, which is never negative.
	SetStrokeWidth(width float32)

	// BeginFill starts a filled region.
	BeginFill()

	// EndFill fills the region traced since [Drawer.BeginFill].
	EndFill()

	// Dot draws a filled dot of color c at the current position.
	Dot(c Color)

	// Teleport moves to pos and/or turns to heading without drawing.
	// A nil argument leaves that part of the pose unchanged.
	Teleport(pos *math32.Vector2, heading *float32)

	// Position returns the current position.
	Position() math32.Vector2

	// Heading returns the current heading.
	Heading() float32

	// Background returns the current background color.
	Background() color.RGBA

	// Clear erases everything drawn so far.
	Clear()
}

// Recorder captures animation frames of the drawing.
type Recorder interface {

	// CaptureFrame records the current state of the drawing.
	// Implementations bound the number of frames they keep.
	CaptureFrame()
}
