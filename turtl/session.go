// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package turtl draws L-systems with turtle graphics, saving the
// results as PNG images and animated GIFs.
package turtl

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"cogentcore.org/lsystem/anim"
	"cogentcore.org/lsystem/base/errors"
	"cogentcore.org/lsystem/base/fsx"
	"cogentcore.org/lsystem/base/iox/imagex"
	"cogentcore.org/lsystem/lsystem"
	"cogentcore.org/lsystem/math32"
	"cogentcore.org/lsystem/paint"
	"cogentcore.org/lsystem/presets"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrFinalized is returned by [Session] methods called
// after [Session.Finish].
var ErrFinalized = errors.New("turtl: session is finished")

// ErrNotConfigured is returned by [Session.Draw] when the session is
// idle and [DrawConfig.SkipInit] is set.
var ErrNotConfigured = errors.New("turtl: session is not configured")

// States are the states of a [Session].
type States int32

const (
	// Idle is the state of a new session, before any configuration.
	Idle States = iota

	// Configured is the state after [Session.Init], or after the
	// first [Session.Draw] that configures the canvas with defaults.
	Configured

	// Finalized is the state after [Session.Finish].
	// Nothing can be done with the session anymore.
	Finalized
)

func (s States) String() string {
	switch s {
	case Idle:
		return "idle"
	case Configured:
		return "configured"
	case Finalized:
		return "finalized"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// Session is a sequence of draws on a shared canvas. A Session is
// not safe for concurrent use; use a separate Session for each
// concurrent sequence of draws.
type Session struct {

	// State is the current state.
	State States

	// Canvas is the canvas shared by the draws.
	Canvas *paint.Canvas

	// Presets are the presets available to [DrawConfig.Preset].
	Presets presets.Presets

	// Draws is the number of draws started, which is the
	// sequence number of the last draw.
	Draws int

	// Printer formats numbers in messages.
	Printer *message.Printer
}

// NewSession returns a new idle [Session] with the default presets.
func NewSession() *Session {
	return &Session{Presets: presets.Default(), Printer: message.NewPrinter(language.English)}
}

// Init configures the canvas, which erases any drawing.
// It returns [ErrFinalized] if the session is finished.
func (s *Session) Init(cfg InitConfig) error {
	if s.State == Finalized {
		return ErrFinalized
	}
	mode, err := cfg.modes()
	if err != nil {
		return err
	}
	bg, err := lsystem.ParseColor(cfg.Background)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	var bgi image.Image
	if cfg.BackgroundImage != "" {
		bgi, err = openImage(cfg.BackgroundImage)
		if err != nil {
			return fmt.Errorf("invalid background image: %w", err)
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	c := paint.NewCanvas(math32.Vec2(float32(cfg.Width), float32(cfg.Height)))
	c.Mode = mode
	c.BackgroundColor = bg.RGBA()
	c.BackgroundImage = bgi
	s.Canvas = c
	s.State = Configured
	return nil
}

// openImage opens the given image file after checking its type.
func openImage(filename string) (image.Image, error) {
	filename, err := fsx.ExpandHome(filename)
	if err != nil {
		return nil, err
	}
	ok, err := fsx.IsImage(filename)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%s is not an image", filename)
	}
	img, _, err := imagex.Open(filename)
	return img, err
}

// Finish finalizes the session. It returns [ErrFinalized]
// if the session is already finished.
func (s *Session) Finish() error {
	if s.State == Finalized {
		return ErrFinalized
	}
	s.State = Finalized
	return nil
}

// DrawResult is the result of [Session.Draw].
type DrawResult struct {

	// Draw is the sequence number of the draw in its session, starting at 1.
	Draw int

	// Commands is the full command string that was interpreted.
	Commands string

	// Position is the final turtle position.
	Position math32.Vector2

	// Heading is the final turtle heading.
	Heading float32

	// Draws is the number of drawing symbols processed.
	Draws int

	// Frames is the number of GIF frames captured.
	Frames int

	// Attempted is the number of GIF frames attempted,
	// including those beyond [DrawConfig.MaxFrames].
	Attempted int

	// PNG is the PNG file that was saved, if any.
	PNG string

	// GIF is the GIF file that was saved, if any.
	GIF string
}

// Draw expands the L-system of the given config, draws it on the
// canvas, and saves the requested PNG and GIF files. If the session is
// idle, the canvas is first configured with [DefaultInitConfig] unless
// [DrawConfig.SkipInit] is set, in which case it returns [ErrNotConfigured].
// Failures to save files are logged as warnings and are not returned.
// The context is checked before drawing and before saving.
func (s *Session) Draw(ctx context.Context, cfg DrawConfig) (*DrawResult, error) {
	if s.State == Finalized {
		return nil, ErrFinalized
	}
	if s.State == Idle {
		if cfg.SkipInit {
			return nil, ErrNotConfigured
		}
		if err := s.Init(DefaultInitConfig()); err != nil {
			return nil, err
		}
	}
	s.Draws++
	return s.draw(ctx, cfg.Clone(), s.Draws)
}

// resolve applies the preset of the given config to it and returns
// the full command string and the palette.
func (s *Session) resolve(cfg *DrawConfig) (string, lsystem.Palette, error) {
	if cfg.Preset != "" {
		p, err := s.Presets.Get(cfg.Preset)
		if err != nil {
			return "", lsystem.Palette{}, err
		}
		cfg.ApplyPreset(p)
	}
	g, err := cfg.Grammar()
	if err != nil {
		return "", lsystem.Palette{}, err
	}
	pal, err := cfg.Palette()
	if err != nil {
		return "", lsystem.Palette{}, err
	}
	return cfg.Prefix + lsystem.Expand(cfg.Start, g, cfg.Level) + cfg.Suffix, pal, nil
}

// Expand returns the full command string that [Session.Draw] would
// interpret for the given config, without drawing anything.
func (s *Session) Expand(cfg DrawConfig) (string, error) {
	cmds, _, err := s.resolve(cfg.Clone())
	return cmds, err
}

// Trace interprets the given config on a new [lsystem.Trace] instead of
// the canvas, returning the trace and the result of the interpretation.
func (s *Session) Trace(cfg DrawConfig) (*lsystem.Trace, lsystem.Result, error) {
	c := cfg.Clone()
	cmds, pal, err := s.resolve(c)
	if err != nil {
		return nil, lsystem.Result{}, err
	}
	tr := lsystem.NewTrace(c.FullCircle)
	res := lsystem.NewInterpreter(tr, nil, pal, c.Params()).Run(cmds)
	return tr, res, nil
}

// draw runs the draw with the given sequence number.
func (s *Session) draw(ctx context.Context, cfg *DrawConfig, seq int) (*DrawResult, error) {
	cmds, pal, err := s.resolve(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Background != "" {
		bg, err := lsystem.ParseColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("invalid background: %w", err)
		}
		s.Canvas.BackgroundColor = bg.RGBA()
	}
	s.Canvas.FullCircle = cfg.FullCircle
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.Canvas.Begin()
	var rec *anim.Recorder
	it := lsystem.NewInterpreter(s.Canvas, nil, pal, cfg.Params())
	if cfg.GIF != "" {
		rec = anim.NewRecorder(s.Canvas, cfg.MaxFrames)
		it.Recorder = rec
	}
	res := it.Run(cmds)
	dr := &DrawResult{Draw: seq, Commands: cmds, Position: res.Position, Heading: res.Heading, Draws: res.Draws}
	if rec != nil {
		dr.Frames = len(rec.Frames)
		dr.Attempted = rec.Attempted
		slog.Info(s.Printer.Sprintf("Prepped %d gif frames of %d attempted for %d draws", dr.Frames, dr.Attempted, dr.Draws+1), "draw", seq)
	}

	if err := ctx.Err(); err != nil {
		return dr, err
	}
	if cfg.PNG != "" {
		err := anim.SavePNG(cfg.PNG, anim.NewFrame(s.Canvas), cfg.Options())
		if errors.Warn(err, fmt.Sprintf("unable to save png for draw %d", seq)) == nil {
			dr.PNG = cfg.PNG
		}
	}
	if rec != nil {
		opts := cfg.GIFOptions()
		if cfg.FramesDir != "" {
			opts.FramesDir = filepath.Join(cfg.FramesDir, fmt.Sprintf("draw%d", seq))
		}
		err := anim.SaveGIF(cfg.GIF, rec.Frames, opts)
		if errors.Warn(err, fmt.Sprintf("unable to save gif for draw %d", seq)) == nil {
			dr.GIF = cfg.GIF
		}
	}
	return dr, nil
}
