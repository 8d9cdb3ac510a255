// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the commands of the turtl tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/lsystem/base/fsx"
	"cogentcore.org/lsystem/base/logx"
	"cogentcore.org/lsystem/cli"
	"cogentcore.org/lsystem/cmd/turtl/config"
	"cogentcore.org/lsystem/turtl"
)

// Cmds returns the commands of the turtl tool.
func Cmds() []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{Func: Draw, Name: "draw", Doc: "draws the L-system and saves the requested PNG and GIF files", Root: true},
		{Func: Expand, Name: "expand", Doc: "prints the expanded command string"},
		{Func: Trace, Name: "trace", Doc: "prints the drawing operations of the command string"},
		{Func: Presets, Name: "presets", Doc: "lists the available presets"},
		{Func: Watch, Name: "watch", Doc: "draws again whenever the config files change"},
	}
}

// setup sets the log level from the verbosity flags.
func setup(c *config.Config) {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

func out(c *config.Config) io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func ctx(c *config.Config) context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// newSession returns a new session with the presets of the config.
func newSession(c *config.Config) (*turtl.Session, error) {
	s := turtl.NewSession()
	if c.Presets == "" {
		return s, nil
	}
	fn, err := fsx.ExpandHome(c.Presets)
	if err != nil {
		return nil, err
	}
	if err := s.Presets.Open(fn); err != nil {
		return nil, fmt.Errorf("opening presets: %w", err)
	}
	return s, nil
}

// Draw draws the L-system on a new canvas and saves
// the requested PNG and GIF files.
func Draw(c *config.Config) error {
	setup(c)
	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Finish()
	if err := s.Init(c.Init); err != nil {
		return err
	}
	return draw(c, s)
}

// draw runs one draw of the config on the given configured session.
func draw(c *config.Config, s *turtl.Session) error {
	res, err := s.Draw(ctx(c), c.Draw)
	if err != nil {
		return err
	}
	slog.Info("drew", "draw", res.Draw, "symbols", len(res.Commands), "draws", res.Draws,
		"position", fmt.Sprintf("(%g, %g)", res.Position.X, res.Position.Y), "heading", res.Heading)
	return nil
}

// Expand prints the expanded command string.
func Expand(c *config.Config) error {
	setup(c)
	s, err := newSession(c)
	if err != nil {
		return err
	}
	cmds, err := s.Expand(c.Draw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out(c), cmds)
	return err
}

// Trace prints the drawing operations of the command string, one per line.
func Trace(c *config.Config) error {
	setup(c)
	s, err := newSession(c)
	if err != nil {
		return err
	}
	tr, res, err := s.Trace(c.Draw)
	if err != nil {
		return err
	}
	w := out(c)
	for _, op := range tr.Ops {
		fmt.Fprintln(w, op)
	}
	_, err = fmt.Fprintf(w, "# %d draws, final position (%g, %g), heading %g\n", res.Draws, res.Position.X, res.Position.Y, res.Heading)
	return err
}

// Presets lists the available presets.
func Presets(c *config.Config) error {
	setup(c)
	s, err := newSession(c)
	if err != nil {
		return err
	}
	w := out(c)
	for _, name := range s.Presets.Names() {
		if _, err := fmt.Fprintf(w, "%-12s %s\n", name, s.Presets[name].Doc); err != nil {
			return err
		}
	}
	return nil
}
