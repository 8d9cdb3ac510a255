// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsystem

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"cogentcore.org/lsystem/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frameCounter is a bounded [Recorder] that only counts frames.
type frameCounter struct {
	max       int
	frames    int
	attempted int
}

func (fc *frameCounter) CaptureFrame() {
	fc.attempted++
	if fc.frames < fc.max {
		fc.frames++
	}
}

func newTestInterpreter(pal Palette, p Params) (*Interpreter, *Trace) {
	tr := NewTrace(p.FullCircle)
	return NewInterpreter(tr, nil, pal, p), tr
}

func lastOp(tr *Trace, name string) Op {
	for i := len(tr.Ops) - 1; i >= 0; i-- {
		if tr.Ops[i].Name == name {
			return tr.Ops[i]
		}
	}
	return Op{}
}

func TestRunSetup(t *testing.T) {
	p := DefaultParams()
	p.Position = math32.Vec2(5, -5)
	p.Heading = 30
	it, tr := newTestInterpreter(DefaultPalette, p)
	res := it.Run("")
	assert.Equal(t, []string{"teleport", "width", "pencolor", "fillcolor"}, tr.Names())
	assert.Equal(t, []any{math32.Vec2(5, -5), float32(30)}, tr.Ops[0].Args)
	assert.Equal(t, Result{Position: math32.Vec2(5, -5), Heading: 30}, res)

	pal := NewPalette(NoColor, NoColor, nil)
	it, tr = newTestInterpreter(pal, p)
	it.Run("")
	assert.Equal(t, []string{"teleport", "width"}, tr.Names())
}

func TestFinalPose(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	res := it.Run("F+F")
	assert.InDelta(t, 10, res.Position.X, 1e-4)
	assert.InDelta(t, 10, res.Position.Y, 1e-4)
	assert.Equal(t, float32(90), res.Heading)
	assert.Equal(t, 2, res.Draws)
	assert.Equal(t, 2, tr.Count("move"))
	assert.Equal(t, []any{float32(10), true}, lastOp(tr, "move").Args)
}

func TestMoves(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	res := it.Run("Ff")
	assert.Equal(t, 1, res.Draws)
	assert.Equal(t, []any{float32(10), true}, tr.Ops[4].Args)
	assert.Equal(t, []any{float32(10), false}, tr.Ops[5].Args)

	// no pen color
	it, tr = newTestInterpreter(NewPalette(NoColor, NoColor, nil), DefaultParams())
	res = it.Run("F")
	assert.Equal(t, 1, res.Draws)
	assert.Equal(t, []any{float32(10), false}, lastOp(tr, "move").Args)

	// no pen width
	it, tr = newTestInterpreter(DefaultPalette, DefaultParams())
	it.Run("<F")
	assert.Equal(t, []any{float32(0)}, lastOp(tr, "width").Args)
	assert.Equal(t, []any{float32(10), false}, lastOp(tr, "move").Args)
}

func TestLength(t *testing.T) {
	tests := map[string]float32{
		"^":    15,
		"%":    5,
		"^*":   30,
		"^*/":  15,
		"^*/%": 10,
		"^*_":  10,
		"//":   2.5,
	}
	for cmds, want := range tests {
		it, _ := newTestInterpreter(DefaultPalette, DefaultParams())
		it.Run(cmds)
		assert.Equal(t, want, it.State().Length, cmds)
	}

	p := DefaultParams()
	p.LengthScalar = 0
	it, _ := newTestInterpreter(DefaultPalette, p)
	it.Run("/")
	assert.True(t, math.IsInf(float64(it.State().Length), 1))
}

func TestAngle(t *testing.T) {
	tests := map[string]float32{
		")":   105,
		"((":  60,
		")~":  90,
		"))(": 105,
	}
	for cmds, want := range tests {
		it, _ := newTestInterpreter(DefaultPalette, DefaultParams())
		it.Run(cmds)
		assert.Equal(t, want, it.State().Angle, cmds)
	}

	turns := map[string]float32{
		"+":   90,
		"-":   -90,
		"&+":  -90,
		"&-":  90,
		"&&+": 90,
		")+":  105,
		"|":   -180,
		"&|":  -180,
	}
	for cmds, want := range turns {
		it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
		it.Run(cmds)
		assert.Equal(t, []any{want}, lastOp(tr, "turn").Args, cmds)
	}
}

func TestThickness(t *testing.T) {
	p := DefaultParams()
	p.Thickness = 2
	p.ThicknessIncrement = 1.5
	tests := []struct {
		cmds  string
		state float32
		width float32
	}{
		{">", 3.5, 3.5},
		{"<", 0.5, 0.5},
		{"<<", -1, 0},
		{"<<<>", -1, 0},
		{"<<=", 2, 2},
	}
	for _, test := range tests {
		it, tr := newTestInterpreter(DefaultPalette, p)
		it.Run(test.cmds)
		assert.Equal(t, test.state, it.State().Thickness, test.cmds)
		assert.Equal(t, []any{test.width}, lastOp(tr, "width").Args, test.cmds)
		assert.Equal(t, 1+len(test.cmds), tr.Count("width"), test.cmds)
	}
}

func TestColors(t *testing.T) {
	p := DefaultParams()
	p.ColorIncrements = [3]int{4, 5, 6}
	pal := NewPalette(RGB(10, 20, 30), RGB(100, 100, 100), nil)

	it, tr := newTestInterpreter(pal, p)
	it.Run(".:!")
	assert.Equal(t, RGB(14, 25, 36), it.State().PenColor)
	assert.Equal(t, []any{RGB(14, 25, 36)}, lastOp(tr, "pencolor").Args)
	it.Run(".:!,;?")
	assert.Equal(t, RGB(10, 20, 30), it.State().PenColor)

	it.Run("3")
	assert.Equal(t, pal[3], it.State().PenColor)

	it.Run("3#.")
	st := it.State()
	assert.Equal(t, RGB(104, 100, 100), st.FillColor)
	assert.Equal(t, pal[3], st.PenColor)
	assert.False(t, st.ModifyFill)

	// clamped on every increment
	p.ColorIncrements = [3]int{200, 200, 200}
	it, _ = newTestInterpreter(pal, p)
	it.Run("..,")
	assert.Equal(t, RGB(55, 20, 30), it.State().PenColor)
}

func TestModifyFill(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	it.Run("#3")
	st := it.State()
	assert.Equal(t, DefaultPalette[3], st.FillColor)
	assert.Equal(t, DefaultPalette[0], st.PenColor)
	assert.False(t, st.ModifyFill)
	assert.Equal(t, []any{DefaultPalette[3]}, lastOp(tr, "fillcolor").Args)

	it.Run("#34")
	st = it.State()
	assert.Equal(t, DefaultPalette[3], st.FillColor)
	assert.Equal(t, DefaultPalette[4], st.PenColor)
	assert.False(t, st.ModifyFill)

	// a fill set to no color is recorded but not applied
	pal := DefaultPalette
	pal[5] = NoColor
	it, tr = newTestInterpreter(pal, DefaultParams())
	it.Run("#5")
	assert.Equal(t, NoColor, it.State().FillColor)
	assert.Equal(t, 1, tr.Count("fillcolor"))

	// increments of no color do nothing and keep the flag
	it.Run("#5#.")
	assert.True(t, it.State().ModifyFill)
	it.Run("#5#.2")
	assert.Equal(t, pal[2], it.State().FillColor)
	assert.False(t, it.State().ModifyFill)
}

func TestFills(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	res := it.Run("{F+F+F}@")
	assert.Equal(t, 5, res.Draws)
	assert.Equal(t, 1, tr.Count("beginfill"))
	assert.Equal(t, 1, tr.Count("endfill"))
	assert.Equal(t, []any{DefaultPalette[1]}, lastOp(tr, "dot").Args)

	it, tr = newTestInterpreter(NewPalette(DefaultPalette[0], NoColor, nil), DefaultParams())
	res = it.Run("{F+F+F}@")
	assert.Equal(t, 5, res.Draws)
	assert.Equal(t, 0, tr.Count("beginfill"))
	assert.Equal(t, 0, tr.Count("endfill"))
	assert.Equal(t, 0, tr.Count("dot"))
}

func TestSwapCases(t *testing.T) {
	tests := map[string]bool{
		"F":    true,
		"`F":   false,
		"`f":   true,
		"``F":  true,
		"``f":  false,
		"`F`F": true,
	}
	for cmds, pen := range tests {
		it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
		it.Run(cmds)
		assert.Equal(t, []any{float32(10), pen}, lastOp(tr, "move").Args, cmds)
	}

	it, _ := newTestInterpreter(DefaultPalette, DefaultParams())
	res := it.Run("`fF")
	assert.Equal(t, 1, res.Draws)
}

func TestReorient(t *testing.T) {
	p := DefaultParams()
	p.Position = math32.Vec2(5, 5)
	p.Heading = 45
	it, _ := newTestInterpreter(DefaultPalette, p)

	res := it.Run(`F+F"`)
	assert.Equal(t, math32.Vec2(5, 5), res.Position)
	assert.Equal(t, float32(135), res.Heading)

	res = it.Run(`F+F'`)
	assert.NotEqual(t, math32.Vec2(5, 5), res.Position)
	assert.Equal(t, float32(45), res.Heading)

	res = it.Run(`F+F'"`)
	assert.Equal(t, Result{Position: math32.Vec2(5, 5), Heading: 45, Draws: 2}, res)
}

func TestClear(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	it.Run("[F[F$")
	assert.Equal(t, 0, it.Depth())
	assert.Equal(t, 1, tr.Count("clear"))

	// nothing to pop after clearing
	before := it.State()
	it.Exec(']')
	assert.Equal(t, before, it.State())
}

func TestPushPopRestores(t *testing.T) {
	p := DefaultParams()
	p.ColorIncrements = [3]int{4, 4, 4}
	prefixes := []string{"", "F+^)>3#5", "&`f", "#", "<<<", "#9"}
	regions := []string{
		"[]",
		"[F]",
		"[F-F*(<<2#7.:!&`{F}@f[F]]",
		"[5]",
		"[#]",
		"[`&|~_=]",
		`[F"F'+]`,
	}
	for _, prefix := range prefixes {
		for _, region := range regions {
			it, _ := newTestInterpreter(DefaultPalette, p)
			it.Run(prefix)
			before := it.State()
			for _, c := range region {
				require.True(t, it.Exec(c))
			}
			assert.Equal(t, before, it.State(), "%q then %q", prefix, region)
			assert.Equal(t, 0, it.Depth())
		}
	}
}

func TestPopEmpty(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	it.Run("F+F")
	before := it.State()
	n := len(tr.Ops)
	assert.True(t, it.Exec(']'))
	assert.Equal(t, before, it.State())
	assert.Len(t, tr.Ops, n)

	res := it.Run("]]F]")
	assert.Equal(t, 1, res.Draws)
}

func TestPopReapplies(t *testing.T) {
	it, tr := newTestInterpreter(DefaultPalette, DefaultParams())
	it.Run("[3>F]")
	assert.Equal(t, []any{DefaultPalette[0]}, lastOp(tr, "pencolor").Args)
	assert.Equal(t, []any{float32(1)}, lastOp(tr, "width").Args)
	assert.Equal(t, []any{math32.Vector2{}, float32(0)}, lastOp(tr, "teleport").Args)
}

func TestEscape(t *testing.T) {
	run := func(cmds string) []Op {
		tr := NewTrace(360)
		it := NewInterpreter(tr, tr, DefaultPalette, DefaultParams())
		it.Run(cmds)
		return tr.Ops
	}
	assert.Equal(t, run("AB"), run(`AB\CD`))
	assert.Equal(t, run(""), run(`\AB`))
	assert.NotEqual(t, run("AB"), run(`ABC\D`))
}

func TestIgnored(t *testing.T) {
	run := func(cmds string) []Op {
		tr := NewTrace(360)
		it := NewInterpreter(tr, tr, DefaultPalette, DefaultParams())
		it.Run(cmds)
		return tr.Ops
	}
	assert.Equal(t, run("F+F"), run("é F ☃+\tF\n Ω"))
}

func TestFrames(t *testing.T) {
	for draws := 0; draws <= 12; draws++ {
		for k := 1; k <= 4; k++ {
			for _, m := range []int{1, 3, 100} {
				name := fmt.Sprintf("draws=%d k=%d m=%d", draws, k, m)
				p := DefaultParams()
				p.DrawsPerFrame = k
				fc := &frameCounter{max: m}
				it := NewInterpreter(NewTrace(360), fc, DefaultPalette, p)
				res := it.Run(strings.Repeat("F+f", draws))
				require.Equal(t, draws, res.Draws, name)
				want := (draws+k-1)/k + 1
				assert.Equal(t, min(want, m), fc.frames, name)
				assert.Equal(t, want, fc.attempted, name)
			}
		}
	}
}

func TestFrameOrder(t *testing.T) {
	tr := NewTrace(360)
	p := DefaultParams()
	p.DrawsPerFrame = 2
	it := NewInterpreter(tr, tr, DefaultPalette, p)
	it.Run("F}F@F")
	assert.Equal(t, []string{
		"teleport", "width", "pencolor", "fillcolor", "frame",
		"move", "endfill", "frame", "move", "dot", "frame", "move", "frame",
	}, tr.Names())

	tr.Reset()
	it.Run("FFFF")
	assert.Equal(t, 3, tr.Count("frame"))

	// frames are sampled with at least one draw per frame
	p.DrawsPerFrame = 0
	tr.Reset()
	it = NewInterpreter(tr, tr, DefaultPalette, p)
	it.Run("FF")
	assert.Equal(t, 3, tr.Count("frame"))
}

func TestScaled(t *testing.T) {
	p := DefaultParams()
	p.Position = math32.Vec2(10, -5)
	s := p.Scaled(2)
	assert.Equal(t, math32.Vec2(20, -10), s.Position)
	assert.Equal(t, 2*p.Length, s.Length)
	assert.Equal(t, 2*p.Thickness, s.Thickness)
	assert.Equal(t, 2*p.LengthIncrement, s.LengthIncrement)
	assert.Equal(t, float32(4), s.LengthScalar)
	assert.Equal(t, 2*p.ThicknessIncrement, s.ThicknessIncrement)
	assert.Equal(t, p.Angle, s.Angle)
}
