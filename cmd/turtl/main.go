// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command turtl draws L-systems with turtle graphics.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/lsystem/base/logx"
	"cogentcore.org/lsystem/cli"
	"cogentcore.org/lsystem/cmd/turtl/cmd"
	"cogentcore.org/lsystem/cmd/turtl/config"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := cli.DefaultOptions("turtl", "Turtl draws L-systems with turtle graphics, saving them as PNG images and animated GIFs.")
	c := &config.Config{Options: opts, Args: os.Args[1:], Ctx: ctx, Out: os.Stdout}
	if err := cli.RunArgs(opts, c, c.Args, cmd.Cmds()...); err != nil {
		slog.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
