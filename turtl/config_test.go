// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtl

import (
	"testing"

	"cogentcore.org/lsystem/anim"
	"cogentcore.org/lsystem/lsystem"
	"cogentcore.org/lsystem/math32"
	"cogentcore.org/lsystem/paint"
	"cogentcore.org/lsystem/presets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInitConfig(t *testing.T) {
	c := DefaultInitConfig()
	assert.Equal(t, InitConfig{Width: 800, Height: 800, Background: "black", Mode: "standard"}, c)

	m, err := c.modes()
	require.NoError(t, err)
	assert.Equal(t, paint.Standard, m)
	c.Mode = "LOGO"
	m, err = c.modes()
	require.NoError(t, err)
	assert.Equal(t, paint.Logo, m)
	c.Mode = "radians"
	_, err = c.modes()
	assert.Error(t, err)
}

func TestDefaultDrawConfig(t *testing.T) {
	c := DefaultDrawConfig()
	assert.Equal(t, "F", c.Start)
	assert.Equal(t, "F F+F-F-F+F", c.Rules)
	assert.Equal(t, 4, c.Level)
	assert.Equal(t, float32(90), c.Angle)
	assert.Equal(t, float32(10), c.Length)
	assert.Equal(t, float32(1), c.Thickness)
	assert.Equal(t, "white", c.Color)
	assert.Equal(t, "gray", c.Fill)
	assert.Nil(t, c.Colors)
	assert.Equal(t, float32(15), c.AngleIncrement)
	assert.Equal(t, float32(5), c.LengthIncrement)
	assert.Equal(t, float32(2), c.LengthScalar)
	assert.Equal(t, float32(1), c.ThicknessIncrement)
	assert.Equal(t, [3]int{1, 1, 1}, [3]int{c.RedIncrement, c.GreenIncrement, c.BlueIncrement})
	assert.Equal(t, float32(1), c.Scale)
	assert.Equal(t, float32(360), c.FullCircle)
	assert.Equal(t, 10, c.Padding)
	assert.Equal(t, float32(1), c.OutputScale)
	assert.Equal(t, 1, c.DrawsPerFrame)
	assert.Equal(t, 100, c.MaxFrames)
	assert.Equal(t, 20, c.Duration)
	assert.Equal(t, 500, c.Pause)
	assert.Zero(t, c.Defer)
	assert.Zero(t, c.Loops)
}

func TestClone(t *testing.T) {
	c := DefaultDrawConfig()
	c.RuleMap = map[string]string{"F": "FF"}
	c.Colors = []string{"red"}
	cp := c.Clone()
	assert.Equal(t, c, *cp)
	cp.RuleMap["F"] = "F"
	cp.Colors[0] = "blue"
	assert.Equal(t, "FF", c.RuleMap["F"])
	assert.Equal(t, "red", c.Colors[0])
}

func TestApplyPreset(t *testing.T) {
	ps := presets.Default()
	c := DefaultDrawConfig()
	c.ApplyPreset(errorsMust(ps.Get("plant")))
	assert.Equal(t, "X", c.Start)
	assert.Equal(t, "F+[[X]-X]-F[-FX]+X", c.RuleMap["X"])
	assert.Equal(t, 6, c.Level)
	assert.Equal(t, float32(25), c.Angle)
	assert.Equal(t, float32(2), c.Length)
	assert.Equal(t, float32(65), c.Heading)
	assert.Equal(t, math32.Vec2(-150, -390), math32.Vec2(c.X, c.Y))
	assert.Equal(t, "#6abe45", c.Color)
	assert.Equal(t, "#2e7d32", c.Fill)
	// unset preset values are kept
	assert.Equal(t, float32(1), c.Thickness)

	c = DefaultDrawConfig()
	c.ApplyPreset(errorsMust(ps.Get("dragon")))
	assert.Equal(t, "gray", c.Fill)
	assert.Zero(t, c.X)
}

func errorsMust(p *presets.Preset, err error) *presets.Preset {
	if err != nil {
		panic(err)
	}
	return p
}

func TestGrammar(t *testing.T) {
	c := DefaultDrawConfig()
	g, err := c.Grammar()
	require.NoError(t, err)
	assert.Equal(t, lsystem.Grammar{'F': "F+F-F-F+F"}, g)

	c.RuleMap = map[string]string{"A": "AB", "B": "A"}
	g, err = c.Grammar()
	require.NoError(t, err)
	assert.Equal(t, lsystem.Grammar{'A': "AB", 'B': "A"}, g)

	c.RuleMap = map[string]string{"AB": "A"}
	_, err = c.Grammar()
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	c := DefaultDrawConfig()
	pal, err := c.Palette()
	require.NoError(t, err)
	assert.Equal(t, lsystem.NewPalette(lsystem.RGB(255, 255, 255), lsystem.RGB(128, 128, 128), nil), pal)

	c.Color = "none"
	pal, err = c.Palette()
	require.NoError(t, err)
	assert.Equal(t, lsystem.NoColor, pal[0])

	c.Colors = []string{"red", "#00ff00"}
	pal, err = c.Palette()
	require.NoError(t, err)
	assert.Equal(t, lsystem.RGB(255, 0, 0), pal[0])
	assert.Equal(t, lsystem.RGB(0, 255, 0), pal[1])

	c.Colors = []string{"red", "not a color"}
	_, err = c.Palette()
	assert.ErrorContains(t, err, "color 1")
	c.Colors = nil
	c.Fill = "not a color"
	_, err = c.Palette()
	assert.ErrorContains(t, err, "fill")
}

func TestParams(t *testing.T) {
	c := DefaultDrawConfig()
	c.X, c.Y, c.Heading = 3, 4, 30
	c.Scale = 2
	p := c.Params()
	assert.Equal(t, float32(20), p.Length)
	assert.Equal(t, float32(2), p.Thickness)
	assert.Equal(t, math32.Vec2(6, 8), p.Position)
	assert.Equal(t, float32(30), p.Heading)
	assert.Equal(t, float32(90), p.Angle)

	g := c.GIFOptions()
	assert.Equal(t, anim.Options{Padding: 10, OutputScale: 1}, g.Options)
	assert.Equal(t, 20, g.Duration)
	assert.Equal(t, 500, g.Pause)
}
