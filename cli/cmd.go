// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli configures apps from struct tags, config files and
// command line flags, and runs their commands.
package cli

import (
	"fmt"
	"os"

	"cogentcore.org/lsystem/base/errors"
)

// Cmd represents a runnable command with configuration options.
// The type constraint is the type of the configuration
// information passed to the command.
type Cmd[T any] struct {

	// Func is the actual function that runs the command.
	// It takes configuration information and returns an error.
	Func func(T) error

	// Name is the name of the command.
	Name string

	// Doc is the documentation for the command.
	Doc string

	// Root is whether the command is the root command
	// (what is called when no subcommands are passed)
	Root bool
}

// Run configures the given app from [os.Args] with [Config] and runs
// the command it names, using the root command if none is named.
// If -help is given, or the command is help and there is no such
// command, it prints the result of [Usage].
func Run[T any](opts *Options, cfg T, cmds ...*Cmd[T]) error {
	return RunArgs(opts, cfg, os.Args[1:], cmds...)
}

// RunArgs is like [Run] with the given arguments.
func RunArgs[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) error {
	leftovers, _, err := Config(opts, cfg, args...)
	if errors.Is(err, ErrHelp) {
		fmt.Println(Usage(opts, cfg, cmds...))
		return nil
	}
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	cmd := ""
	if len(leftovers) > 0 {
		cmd = leftovers[0]
	}
	return RunCmd(opts, cfg, cmd, cmds...)
}

// RunCmd runs the command with the given name on the given app,
// or the root command if the name is empty.
func RunCmd[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) error {
	for _, c := range cmds {
		if c.Name == cmd || (cmd == "" && c.Root) {
			if err := c.Func(cfg); err != nil {
				return fmt.Errorf("error running command %q: %w", c.Name, err)
			}
			return nil
		}
	}
	if cmd == "" || cmd == "help" {
		fmt.Println(Usage(opts, cfg, cmds...))
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}
