// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options that control how an app is configured and run.
type Options struct {

	// AppName is the name of the app, as typed on the command line.
	AppName string

	// AppAbout is the description of the app.
	AppAbout string

	// DefaultFiles are the config files opened when no
	// -config flag is given. Missing default files are skipped.
	DefaultFiles []string

	// IncludePaths are the directories searched for config files
	// given with -config, DefaultFiles, and includes.
	IncludePaths []string
}

// DefaultOptions returns new [Options] with standard values
// for the given app name and description.
func DefaultOptions(appName, appAbout string) *Options {
	return &Options{
		AppName:      appName,
		AppAbout:     appAbout,
		DefaultFiles: []string{appName + ".toml"},
		IncludePaths: []string{".", "configs"},
	}
}
