// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the turtl tool.
package config

import (
	"context"
	"io"

	"cogentcore.org/lsystem/cli"
	"cogentcore.org/lsystem/turtl"
)

// Config is the configuration information for the turtl tool.
// It is set from turtl.toml, any -config files, and command line flags.
type Config struct {

	// Includes are config files to open before this one.
	Includes []string `flag:"-"`

	// Init is the configuration of the canvas.
	Init turtl.InitConfig

	// Draw is the configuration of the draw.
	Draw turtl.DrawConfig

	// Presets is a YAML file of presets added to the built-in ones.
	Presets string `desc:"a YAML file of presets added to the built-in ones"`

	// VeryVerbose is whether to print debug messages.
	VeryVerbose bool `flag:"vv,very-verbose" desc:"whether to print debug messages"`

	// Verbose is whether to print informational messages.
	Verbose bool `flag:"v,verbose" desc:"whether to print informational messages"`

	// Quiet is whether to only print errors.
	Quiet bool `flag:"q,quiet" desc:"whether to only print errors"`

	// Options are the options the config was made with.
	Options *cli.Options `toml:"-"`

	// Args are the command line arguments the config was made from.
	Args []string `flag:"-" toml:"-"`

	// Ctx is the context of the command, which is canceled on interrupt.
	Ctx context.Context `toml:"-"`

	// Out is where commands print their output.
	Out io.Writer `toml:"-"`
}

func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// Reload returns a new config made the same way as c, from the
// current contents of its config files, along with those files.
func (c *Config) Reload() (*Config, []string, error) {
	nc := &Config{Options: c.Options, Args: c.Args, Ctx: c.Ctx, Out: c.Out}
	_, files, err := cli.Config(c.Options, nc, c.Args...)
	if err != nil {
		return nil, files, err
	}
	return nc, files, nil
}
