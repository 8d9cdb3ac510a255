// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/lsystem/math32"
)

// Op is one recorded [Drawer] or [Recorder] call.
type Op struct {

	// Name is the name of the call, such as "move" or "turn".
	Name string

	// Args are the arguments of the call.
	Args []any
}

func (o Op) String() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	args := make([]string, len(o.Args))
	for i, a := range o.Args {
		args[i] = fmt.Sprint(a)
	}
	return o.Name + " " + strings.Join(args, " ")
}

// Trace is a [Drawer] and [Recorder] that renders nothing. It keeps
// track of the turtle pose with standard turtle geometry (heading 0
// points along +X and positive turns are counter-clockwise) and
// records every call as an [Op]. It is used for testing and for
// printing the drawing operations of a command string.
type Trace struct {

	// Ops are the recorded calls.
	Ops []Op

	// FullCircle is the number of angle units in a full turn.
	FullCircle float32

	// BackgroundColor is returned by [Trace.Background].
	BackgroundColor color.RGBA

	pos     math32.Vector2
	heading float32
}

// NewTrace returns a new [Trace] using the given full circle units.
func NewTrace(fullCircle float32) *Trace {
	return &Trace{FullCircle: fullCircle}
}

func (t *Trace) record(name string, args ...any) {
	t.Ops = append(t.Ops, Op{Name: name, Args: args})
}

// Reset clears the recorded ops and the pose.
func (t *Trace) Reset() {
	t.Ops = nil
	t.pos = math32.Vector2{}
	t.heading = 0
}

// Names returns the names of the recorded ops, in order.
func (t *Trace) Names() []string {
	names := make([]string, len(t.Ops))
	for i, o := range t.Ops {
		names[i] = o.Name
	}
	return names
}

// Count returns the number of recorded ops with the given name.
func (t *Trace) Count(name string) int {
	n := 0
	for _, o := range t.Ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

func (t *Trace) Move(dist float32, pen bool) {
	t.pos = t.pos.Add(math32.Vector2Polar(2*math32.Pi*t.heading/t.FullCircle, dist))
	t.record("move", dist, pen)
}

func (t *Trace) Turn(delta float32) {
	t.heading += delta
	t.record("turn", delta)
}

func (t *Trace) SetPenColor(c Color)          { t.record("pencolor", c) }
func (t *Trace) SetFillColor(c Color)         { t.record("fillcolor", c) }
func (t *Trace) SetStrokeWidth(width float32) { t.record("width", width) }
func (t *Trace) BeginFill()                   { t.record("beginfill") }
func (t *Trace) EndFill()                     { t.record("endfill") }
func (t *Trace) Dot(c Color)                  { t.record("dot", c) }
func (t *Trace) Clear()                       { t.record("clear") }
func (t *Trace) CaptureFrame()                { t.record("frame") }

func (t *Trace) Teleport(pos *math32.Vector2, heading *float32) {
	var args []any
	if pos != nil {
		t.pos = *pos
		args = append(args, *pos)
	}
	if heading != nil {
		t.heading = *heading
		args = append(args, *heading)
	}
	t.record("teleport", args...)
}

func (t *Trace) Position() math32.Vector2 { return t.pos }
func (t *Trace) Heading() float32         { return t.heading }
func (t *Trace) Background() color.RGBA   { return t.BackgroundColor }
