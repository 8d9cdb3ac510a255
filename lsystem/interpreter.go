// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"unicode"

	"cogentcore.org/lsystem/base/stack"
	"cogentcore.org/lsystem/math32"
)

// Escape is the symbol that stops interpretation.
const Escape = '\\'

// Result is the outcome of [Interpreter.Run].
type Result struct {

	// Position is the final turtle position.
	Position math32.Vector2

	// Heading is the final turtle heading.
	Heading float32

	// Draws is the number of drawing symbols processed
	// (uppercase moves, } and @), which drive frame capture.
	Draws int
}

// Interpreter runs command strings on a [Drawer], capturing frames
// on an optional [Recorder]. An Interpreter is not safe for
// concurrent use; run concurrent interpretations with separate
// Interpreters, Drawers and Recorders.
type Interpreter struct {

	// Drawer is the drawing surface.
	Drawer Drawer

	// Recorder captures animation frames. If it is nil,
	// no frames are captured.
	Recorder Recorder

	// Palette is the colors selected by the digit symbols.
	Palette Palette

	// Params are the initial values and increments.
	Params Params

	// state is the current state; its Position and Heading are
	// only filled in when a snapshot is taken, as the Drawer
	// owns the actual pose.
	state State

	// stack is the saved states.
	stack stack.Stack[State]

	// draws is the number of drawing symbols processed in the current run.
	draws int
}

// NewInterpreter returns a new [Interpreter] for the given
// drawer, optional recorder, palette and params.
func NewInterpreter(d Drawer, r Recorder, pal Palette, p Params) *Interpreter {
	it := &Interpreter{Drawer: d, Recorder: r, Palette: pal, Params: p}
	it.state = p.initialState(pal)
	return it
}

// State returns a snapshot of the current state, with the pose
// taken from the [Drawer].
func (it *Interpreter) State() State {
	st := it.state
	st.Position = it.Drawer.Position()
	st.Heading = it.Drawer.Heading()
	return st
}

// Depth returns the number of saved states on the stack.
func (it *Interpreter) Depth() int {
	return it.stack.Len()
}

// Run interprets cmds from the initial state and returns the final
// pose. It first moves to the initial pose and applies the initial
// pen width and colors, and captures an initial frame. After the
// last symbol it captures a final frame unless the last drawing
// symbol already triggered one.
func (it *Interpreter) Run(cmds string) Result {
	it.state = it.Params.initialState(it.Palette)
	it.stack.Clear()
	it.draws = 0

	d := it.Drawer
	d.Teleport(&it.Params.Position, &it.Params.Heading)
	it.applyStrokeWidth()
	if it.state.PenColor.Valid {
		d.SetPenColor(it.state.PenColor)
	}
	if it.state.FillColor.Valid {
		d.SetFillColor(it.state.FillColor)
	}
	if it.Recorder != nil {
		it.Recorder.CaptureFrame()
	}

	for _, c := range cmds {
		if !it.Exec(c) {
			break
		}
	}

	if it.Recorder != nil && it.draws%it.drawsPerFrame() != 0 {
		it.Recorder.CaptureFrame()
	}
	return Result{Position: d.Position(), Heading: d.Heading(), Draws: it.draws}
}

// Exec interprets the single symbol c. It returns false if c is the
// [Escape] symbol, meaning that interpretation should stop.
// Unknown symbols are ignored.
func (it *Interpreter) Exec(c rune) bool {
	st := &it.state
	d := it.Drawer
	p := &it.Params
	if st.SwapCases {
		c = swapCase(c)
	}
	switch {
	case c >= 'A' && c <= 'Z':
		d.Move(st.Length, st.PenColor.Valid && max(0, st.Thickness) > 0)
		it.drew()
		return true
	case c >= 'a' && c <= 'z':
		d.Move(st.Length, false)
		return true
	case c >= '0' && c <= '9':
		it.setColor(it.Palette[c-'0'])
		return true
	}
	switch c {
	// length
	case '_':
		st.Length = p.Length
	case '^':
		st.Length += p.LengthIncrement
	case '%':
		st.Length -= p.LengthIncrement
	case '*':
		st.Length *= p.LengthScalar
	case '/':
		st.Length /= p.LengthScalar

	// angle
	case '+':
		it.turn(st.Angle)
	case '-':
		it.turn(-st.Angle)
	case '&':
		st.SwapSigns = !st.SwapSigns
	case '|':
		d.Turn(-p.FullCircle / 2)
	case '~':
		st.Angle = p.Angle
	case ')':
		st.Angle += p.AngleIncrement
	case '(':
		st.Angle -= p.AngleIncrement

	// thickness
	case '=':
		st.Thickness = p.Thickness
		it.applyStrokeWidth()
	case '>':
		st.Thickness += p.ThicknessIncrement
		it.applyStrokeWidth()
	case '<':
		st.Thickness -= p.ThicknessIncrement
		it.applyStrokeWidth()

	// color
	case '#':
		st.ModifyFill = true
	case '.':
		it.incrementColor(0, 1)
	case ',':
		it.incrementColor(0, -1)
	case ':':
		it.incrementColor(1, 1)
	case ';':
		it.incrementColor(1, -1)
	case '!':
		it.incrementColor(2, 1)
	case '?':
		it.incrementColor(2, -1)

	// fill
	case '{':
		if st.FillColor.Valid {
			d.BeginFill()
		}
	case '}':
		if st.FillColor.Valid {
			d.EndFill()
		}
		it.drew()
	case '@':
		if st.FillColor.Valid {
			d.Dot(st.FillColor)
		}
		it.drew()

	// other
	case '`':
		st.SwapCases = !st.SwapCases
	case '"':
		d.Teleport(&p.Position, nil)
	case '\'':
		d.Teleport(nil, &p.Heading)
	case '$':
		it.stack.Clear()
		d.Clear()
	case '[':
		it.stack.Push(it.State())
	case ']':
		it.restore()
	case Escape:
		return false
	}
	return true
}

// turn turns left by angle, or right if signs are swapped.
func (it *Interpreter) turn(angle float32) {
	if it.state.SwapSigns {
		angle = -angle
	}
	it.Drawer.Turn(angle)
}

// applyStrokeWidth applies the current thickness, clamped at 0.
func (it *Interpreter) applyStrokeWidth() {
	it.Drawer.SetStrokeWidth(max(0, it.state.Thickness))
}

// setColor sets the pen color, or the fill color if ModifyFill is
// set, in which case ModifyFill is cleared. [NoColor] is recorded
// in the state but not applied to the Drawer.
func (it *Interpreter) setColor(c Color) {
	st := &it.state
	if st.ModifyFill {
		st.ModifyFill = false
		st.FillColor = c
		if c.Valid {
			it.Drawer.SetFillColor(c)
		}
		return
	}
	st.PenColor = c
	if c.Valid {
		it.Drawer.SetPenColor(c)
	}
}

// incrementColor adds sign times the channel increment to channel ch
// of the active color. Nothing happens if the active color is unset,
// and ModifyFill then stays set for the next color symbol.
func (it *Interpreter) incrementColor(ch, sign int) {
	c := it.state.PenColor
	if it.state.ModifyFill {
		c = it.state.FillColor
	}
	if !c.Valid {
		return
	}
	it.setColor(c.AddChannel(ch, sign*it.Params.ColorIncrements[ch]))
}

// restore pops the top saved state and applies it to the Drawer.
// It does nothing if the stack is empty.
func (it *Interpreter) restore() {
	st, ok := it.stack.Pop()
	if !ok {
		return
	}
	it.state = st
	d := it.Drawer
	d.Teleport(&st.Position, &st.Heading)
	if st.PenColor.Valid {
		d.SetPenColor(st.PenColor)
	}
	if st.FillColor.Valid {
		d.SetFillColor(st.FillColor)
	}
	it.applyStrokeWidth()
}

// drew counts a drawing symbol and captures a frame
// every [Params.DrawsPerFrame] of them.
func (it *Interpreter) drew() {
	it.draws++
	if it.Recorder != nil && it.draws%it.drawsPerFrame() == 0 {
		it.Recorder.CaptureFrame()
	}
}

func (it *Interpreter) drawsPerFrame() int {
	return max(1, it.Params.DrawsPerFrame)
}

// swapCase returns the other case of a letter,
// and any other rune unchanged.
func swapCase(c rune) rune {
	switch {
	case unicode.IsUpper(c):
		return unicode.ToLower(c)
	case unicode.IsLower(c):
		return unicode.ToUpper(c)
	}
	return c
}
