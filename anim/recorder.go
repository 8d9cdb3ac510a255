// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim records frames of a [paint.Canvas] and exports
// them as PNG images and animated GIFs.
package anim

import (
	"image"
	"image/color"

	"cogentcore.org/lsystem/lsystem"
	"cogentcore.org/lsystem/math32"
	"cogentcore.org/lsystem/paint"
)

// Frame is one captured state of a [paint.Canvas].
type Frame struct {

	// Render is the display list at capture time.
	Render paint.Render

	// Size is the canvas size at capture time.
	Size math32.Vector2

	// Background is the background color at capture time.
	Background color.RGBA

	// BackgroundImage is the background image at capture time, if any.
	BackgroundImage image.Image
}

// NewFrame returns a [Frame] of the current state of the given canvas.
func NewFrame(c *paint.Canvas) Frame {
	return Frame{Render: c.Snapshot(), Size: c.Size, Background: c.Background(), BackgroundImage: c.BackgroundImage}
}

// Recorder is an [lsystem.Recorder] that captures frames of a
// [paint.Canvas], keeping at most Max of them.
type Recorder struct {

	// Canvas is the canvas that frames are captured from.
	Canvas *paint.Canvas

	// Max is the maximum number of frames kept.
	Max int

	// Frames are the captured frames.
	Frames []Frame

	// Attempted is the number of capture calls,
	// including those beyond Max.
	Attempted int
}

var _ lsystem.Recorder = (*Recorder)(nil)

// NewRecorder returns a new [Recorder] for the given canvas
// keeping at most max frames.
func NewRecorder(c *paint.Canvas, max int) *Recorder {
	return &Recorder{Canvas: c, Max: max}
}

// CaptureFrame captures the current state of the canvas,
// unless Max frames are already captured.
func (r *Recorder) CaptureFrame() {
	r.Attempted++
	if len(r.Frames) >= r.Max {
		return
	}
	r.Frames = append(r.Frames, NewFrame(r.Canvas))
}

// Reset discards all frames and resets the attempted count.
func (r *Recorder) Reset() {
	r.Frames = nil
	r.Attempted = 0
}
