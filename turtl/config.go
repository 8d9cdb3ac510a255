// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package turtl

import (
	"fmt"
	"strings"

	"cogentcore.org/lsystem/anim"
	"cogentcore.org/lsystem/base/errors"
	"cogentcore.org/lsystem/cli"
	"cogentcore.org/lsystem/lsystem"
	"cogentcore.org/lsystem/math32"
	"cogentcore.org/lsystem/paint"
	"cogentcore.org/lsystem/presets"
	"github.com/jinzhu/copier"
)

// InitConfig is the configuration of the canvas shared by all draws
// of a [Session].
type InitConfig struct {
	Width           int    `default:"800" desc:"the width of the canvas"`
	Height          int    `default:"800" desc:"the height of the canvas"`
	Background      string `default:"black" desc:"the background color of the canvas, which draws may change"`
	BackgroundImage string `desc:"an image file shown centered behind all drawing"`
	Mode            string `default:"standard" desc:"the heading convention: standard (0 is east, counter-clockwise) or logo (0 is north, clockwise)"`
}

// DefaultInitConfig returns the default [InitConfig].
func DefaultInitConfig() InitConfig {
	c := InitConfig{}
	errors.Must(cli.SetFromDefaults(&c))
	return c
}

// modes parses the heading convention.
func (c *InitConfig) modes() (paint.Modes, error) {
	switch strings.ToLower(c.Mode) {
	case "", "standard":
		return paint.Standard, nil
	case "logo":
		return paint.Logo, nil
	}
	return paint.Standard, fmt.Errorf("invalid mode %q (must be standard or logo)", c.Mode)
}

// DrawConfig is the configuration of one draw of a [Session].
type DrawConfig struct {
	Preset             string            `flag:"p,preset" desc:"the name of a preset L-system to start from"`
	Start              string            `default:"F" desc:"the initial string"`
	Rules              string            `default:"F F+F-F-F+F" desc:"the replacement rules, as whitespace separated symbol and replacement pairs"`
	RuleMap            map[string]string `desc:"the replacement rules as a map, used instead of Rules if set"`
	Level              int               `default:"4" desc:"the number of expansions"`
	Angle              float32           `default:"90" desc:"the initial turn angle"`
	Length             float32           `default:"10" desc:"the initial step length"`
	Thickness          float32           `default:"1" desc:"the initial pen width"`
	Color              string            `default:"white" desc:"the pen color (none for no pen)"`
	Fill               string            `default:"gray" desc:"the fill color (none for no fill)"`
	Background         string            `desc:"the background color, if it should change"`
	Colors             []string          `desc:"the colors of the 10 digit symbols; Color and Fill are ignored if set"`
	X                  float32           `desc:"the initial x position"`
	Y                  float32           `desc:"the initial y position"`
	Heading            float32           `desc:"the initial heading"`
	AngleIncrement     float32           `default:"15" desc:"the amount ) and ( change the angle by"`
	LengthIncrement    float32           `default:"5" desc:"the amount ^ and % change the length by"`
	LengthScalar       float32           `default:"2" desc:"the factor * and / change the length by"`
	ThicknessIncrement float32           `default:"1" desc:"the amount > and < change the thickness by"`
	RedIncrement       int               `default:"1" desc:"the amount . and , change the red channel by"`
	GreenIncrement     int               `default:"1" desc:"the amount : and ; change the green channel by"`
	BlueIncrement      int               `default:"1" desc:"the amount ! and ? change the blue channel by"`
	Scale              float32           `default:"1" desc:"a factor applied to all positions, lengths and thicknesses"`
	Prefix             string            `desc:"a string added before the expanded string"`
	Suffix             string            `desc:"a string added after the expanded string"`
	FullCircle         float32           `default:"360" desc:"the number of angle units in a full turn"`
	SkipInit           bool              `desc:"whether to not configure the canvas with defaults when it is not configured yet"`
	PNG                string            `desc:"the PNG file to save the final drawing to"`
	Padding            int               `default:"10" desc:"the padding around the drawing in saved images; negative keeps the full canvas"`
	OutputScale        float32           `default:"1" desc:"the number of pixels per unit in saved images"`
	Transparent        bool              `desc:"whether the background is transparent in saved images"`
	GIF                string            `desc:"the GIF file to save the animated drawing to"`
	DrawsPerFrame      int               `default:"1" desc:"the number of drawing symbols per GIF frame"`
	MaxFrames          int               `default:"100" desc:"the maximum number of GIF frames"`
	Duration           int               `default:"20" desc:"the number of milliseconds each GIF frame is shown"`
	Pause              int               `default:"500" desc:"the number of extra milliseconds the last GIF frame is shown"`
	Defer              int               `desc:"the number of extra milliseconds the first GIF frame is shown"`
	Loops              int               `desc:"the number of times the GIF repeats; 0 is forever"`
	Reverse            bool              `desc:"whether the GIF plays backward"`
	Alternate          bool              `desc:"whether the GIF plays forward then backward"`
	FramesDir          string            `desc:"a directory to save each GIF frame to as a PNG, under draw{n}"`
}

// DefaultDrawConfig returns the default [DrawConfig].
func DefaultDrawConfig() DrawConfig {
	c := DrawConfig{}
	errors.Must(cli.SetFromDefaults(&c))
	return c
}

// Clone returns a deep copy of the config.
func (c *DrawConfig) Clone() *DrawConfig {
	cp := &DrawConfig{}
	if err := copier.CopyWithOption(cp, c, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Errorf("turtl.DrawConfig.Clone: %w", err))
	}
	return cp
}

// ApplyPreset sets the L-system of the config from the given preset,
// along with every drawing parameter the preset sets.
func (c *DrawConfig) ApplyPreset(p *presets.Preset) {
	c.Start = p.Start
	c.RuleMap = p.Rules
	c.Level = p.Level
	setNonZero(&c.Angle, p.Angle)
	setNonZero(&c.Length, p.Length)
	setNonZero(&c.Thickness, p.Thickness)
	setNonZero(&c.Heading, p.Heading)
	if len(p.Position) == 2 {
		c.X, c.Y = p.Position[0], p.Position[1]
	}
	if p.Color != "" {
		c.Color = p.Color
	}
	if p.Fill != "" {
		c.Fill = p.Fill
	}
}

func setNonZero(dst *float32, v float32) {
	if v != 0 {
		*dst = v
	}
}

// Grammar returns the grammar of the config, from RuleMap if it
// is set and otherwise from Rules.
func (c *DrawConfig) Grammar() (lsystem.Grammar, error) {
	if len(c.RuleMap) > 0 {
		return lsystem.NewGrammar(c.RuleMap)
	}
	return lsystem.ParseGrammar(c.Rules), nil
}

// Palette returns the palette of the config.
func (c *DrawConfig) Palette() (lsystem.Palette, error) {
	pen, err := lsystem.ParseColor(c.Color)
	if err != nil {
		return lsystem.Palette{}, fmt.Errorf("invalid color: %w", err)
	}
	fill, err := lsystem.ParseColor(c.Fill)
	if err != nil {
		return lsystem.Palette{}, fmt.Errorf("invalid fill: %w", err)
	}
	if c.Colors == nil {
		return lsystem.NewPalette(pen, fill, nil), nil
	}
	list := make([]lsystem.Color, min(len(c.Colors), lsystem.PaletteSize))
	for i := range list {
		list[i], err = lsystem.ParseColor(c.Colors[i])
		if err != nil {
			return lsystem.Palette{}, fmt.Errorf("invalid color %d in colors: %w", i, err)
		}
	}
	return lsystem.NewPalette(pen, fill, list), nil
}

// Params returns the interpreter params of the config,
// with all lengths multiplied by Scale.
func (c *DrawConfig) Params() lsystem.Params {
	p := lsystem.Params{
		Angle:              c.Angle,
		Length:             c.Length,
		Thickness:          c.Thickness,
		AngleIncrement:     c.AngleIncrement,
		LengthIncrement:    c.LengthIncrement,
		LengthScalar:       c.LengthScalar,
		ThicknessIncrement: c.ThicknessIncrement,
		ColorIncrements:    [3]int{c.RedIncrement, c.GreenIncrement, c.BlueIncrement},
		FullCircle:         c.FullCircle,
		Position:           math32.Vec2(c.X, c.Y),
		Heading:            c.Heading,
		DrawsPerFrame:      c.DrawsPerFrame,
	}
	return p.Scaled(c.Scale)
}

// Options returns the image export options of the config.
func (c *DrawConfig) Options() anim.Options {
	return anim.Options{Padding: c.Padding, Transparent: c.Transparent, OutputScale: c.OutputScale}
}

// GIFOptions returns the GIF export options of the config.
func (c *DrawConfig) GIFOptions() anim.GIFOptions {
	return anim.GIFOptions{
		Options:   c.Options(),
		Duration:  c.Duration,
		Pause:     c.Pause,
		Defer:     c.Defer,
		Loops:     c.Loops,
		Reverse:   c.Reverse,
		Alternate: c.Alternate,
	}
}
