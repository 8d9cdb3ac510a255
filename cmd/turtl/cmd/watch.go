// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"cogentcore.org/lsystem/base/errors"
	"cogentcore.org/lsystem/base/fsx"
	"cogentcore.org/lsystem/cmd/turtl/config"
	"github.com/fsnotify/fsnotify"
)

// settle is how long file events must stop for before drawing again.
const settle = 100 * time.Millisecond

// Watch draws the L-system, and then draws it again on the same
// session whenever the config files or the presets file change,
// until the context of the config is canceled.
func Watch(c *config.Config) error {
	setup(c)
	if c.Options == nil {
		return errors.New("watch: no options to reload the config with")
	}
	_, files, err := c.Reload()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("watch: no config file to watch; use -config or %v", c.Options.DefaultFiles)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := watchedFiles(c, files)
	for _, dir := range watchedDirs(watched) {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	s, err := newSession(c)
	if err != nil {
		return err
	}
	defer s.Finish()
	if err := s.Init(c.Init); err != nil {
		return err
	}
	errors.Log(draw(c, s))
	slog.Info("watching", "files", watched)

	var pending <-chan time.Time
	done := ctx(c).Done()
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if slices.Contains(watched, filepath.Clean(event.Name)) {
				pending = time.After(settle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			nc, files, err := c.Reload()
			if errors.Log(err) != nil {
				continue
			}
			setup(nc)
			ns, err := newSession(nc)
			if errors.Log(err) != nil {
				continue
			}
			s.Presets = ns.Presets
			if errors.Log(s.Init(nc.Init)) != nil {
				continue
			}
			errors.Log(draw(nc, s))
			watched = watchedFiles(nc, files)
			for _, dir := range watchedDirs(watched) {
				if !slices.Contains(watcher.WatchList(), dir) {
					errors.Log(watcher.Add(dir))
				}
			}
		}
	}
}

// watchedFiles returns the files that a change of should cause
// a new draw: the config files, their includes, and the presets file.
func watchedFiles(c *config.Config, files []string) []string {
	res := slices.Clone(files)
	res = append(res, c.Includes...)
	if c.Presets != "" {
		if fn, err := fsx.ExpandHome(c.Presets); err == nil {
			if abs, err := filepath.Abs(fn); err == nil {
				res = append(res, abs)
			}
		}
	}
	for i, f := range res {
		res[i] = filepath.Clean(f)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// watchedDirs returns the directories of the given files, which are
// watched in place of the files so that replaced files are still seen.
func watchedDirs(files []string) []string {
	var dirs []string
	for _, f := range files {
		dirs = append(dirs, filepath.Dir(f))
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}
