// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"path/filepath"
	"reflect"
	"slices"

	"cogentcore.org/lsystem/base/errors"
	"cogentcore.org/lsystem/base/fsx"
	"cogentcore.org/lsystem/base/iox/tomlx"
)

// Includer is a config object that can include other config files.
type Includer interface {

	// IncludesPtr returns a pointer to the Includes []string field
	// containing the files to open before the current config file.
	IncludesPtr() *[]string
}

// Config sets the given config object from, in order, its default
// tags, its config files, and the given command line arguments. The
// config files are those given with -config (or -cfg), or else those
// of [Options.DefaultFiles] that exist. It returns the positional
// arguments and the full paths of the config files that were opened.
func Config(opts *Options, cfg any, args ...string) (leftovers, files []string, err error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, nil, err
	}
	given := configFiles(args)
	if len(given) > 0 {
		for _, file := range given {
			fp, err := findFile(opts, file)
			if err != nil {
				return nil, files, err
			}
			files = append(files, fp)
		}
	} else {
		for _, file := range opts.DefaultFiles {
			if fps := fsx.FindFilesOnPaths(opts.IncludePaths, file); len(fps) > 0 {
				files = append(files, fps[0])
			}
		}
	}
	for _, file := range files {
		if err := openWithIncludes(opts, cfg, file); err != nil {
			return nil, files, fmt.Errorf("opening config file %q: %w", file, err)
		}
	}
	fs, err := AddFields(cfg)
	if err != nil {
		return nil, files, err
	}
	leftovers, err = ParseArgs(fs, args)
	return leftovers, files, err
}

// findFile returns the full path of the given config file, which is used
// as is if it exists and is otherwise looked for on [Options.IncludePaths].
func findFile(opts *Options, file string) (string, error) {
	file, err := fsx.ExpandHome(file)
	if err != nil {
		return "", err
	}
	if ok, _ := fsx.FileExists(file); ok {
		return filepath.Abs(file)
	}
	if !filepath.IsAbs(file) {
		if fps := fsx.FindFilesOnPaths(opts.IncludePaths, file); len(fps) > 0 {
			return fps[0], nil
		}
	}
	return "", fmt.Errorf("config file %q not found", file)
}

// openWithIncludes reads the config struct from the given config file,
// first opening any files it includes in the natural include order so
// that includers overwrite included settings. It is equivalent to
// [tomlx.Open] if there are no includes. Includes are looked for next to
// the including file and then on [Options.IncludePaths].
func openWithIncludes(opts *Options, cfg any, file string) error {
	if err := tomlx.Open(cfg, file); err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(opts, incfg, file)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	var errs []error
	for i := len(incs) - 1; i >= 0; i-- {
		errs = append(errs, tomlx.Open(cfg, incs[i]))
	}
	// reopen original
	errs = append(errs, tomlx.Open(cfg, file))
	*incfg.IncludesPtr() = incs
	return errors.Join(errs...)
}

// includeStack returns the full paths of the files included by cfg,
// which was opened from the given file, in the natural order in which
// they are encountered; they should be opened in reverse order.
// It does not alter cfg.
func includeStack(opts *Options, cfg Includer, file string) ([]string, error) {
	var stack []string
	var errs []error
	visited := []string{file}
	var visit func(incs []string, from string)
	visit = func(incs []string, from string) {
		for i := len(incs) - 1; i >= 0; i-- {
			fp, err := findInclude(opts, incs[i], from)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if slices.Contains(visited, fp) {
				errs = append(errs, fmt.Errorf("include cycle at %q", fp))
				continue
			}
			visited = append(visited, fp)
			stack = append(stack, fp)
			clone := reflect.New(reflect.TypeOf(cfg).Elem()).Interface().(Includer)
			if err := tomlx.Open(clone, fp); err != nil {
				errs = append(errs, err)
				continue
			}
			visit(*clone.IncludesPtr(), fp)
		}
	}
	visit(*cfg.IncludesPtr(), file)
	return stack, errors.Join(errs...)
}

// findInclude returns the full path of the given include file,
// looking next to the including file first.
func findInclude(opts *Options, inc, from string) (string, error) {
	paths := append([]string{filepath.Dir(from)}, opts.IncludePaths...)
	if fps := fsx.FindFilesOnPaths(paths, inc); len(fps) > 0 {
		return fps[0], nil
	}
	return "", fmt.Errorf("include file %q not found", inc)
}
