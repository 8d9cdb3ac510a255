// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/lsystem/base/errors"
)

// ErrHelp is returned by [ParseArgs] when -help or -h is given.
var ErrHelp = errors.New("cli: help requested")

// configFlags are the flag names that give a config file.
var configFlags = []string{"config", "cfg"}

// ParseArgs sets the given fields from the given command line
// arguments, returning the positional arguments. Flags are given
// as -name value or -name=value, with one or two dashes; a boolean
// flag without =value is set to true. A flag given more than once
// sets a string slice to all of its values, and other fields to the
// last value. Config file flags are skipped, as [Config] handles them.
// All arguments after -- are positional.
func ParseArgs(fs Fields, args []string) ([]string, error) {
	var leftovers []string
	seen := map[*Field]bool{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			leftovers = append(leftovers, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			leftovers = append(leftovers, arg)
			continue
		}
		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		value, hasValue := "", false
		if eq := strings.Index(name, "="); eq >= 0 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}
		lname := FlagName(name)
		if lname == "help" || lname == "h" {
			return leftovers, ErrHelp
		}
		if isConfigFlag(lname) {
			if !hasValue {
				i++
			}
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			return leftovers, fmt.Errorf("unknown flag %q", arg)
		}
		if !hasValue {
			if f.Value.Kind() == reflect.Bool {
				value = "true"
			} else {
				if i+1 >= len(args) {
					return leftovers, fmt.Errorf("missing value for flag %q", arg)
				}
				i++
				value = args[i]
			}
		}
		if err := setFlag(f, value, seen[f]); err != nil {
			return leftovers, fmt.Errorf("invalid value %q for flag %q: %w", value, arg, err)
		}
		seen[f] = true
	}
	return leftovers, nil
}

// setFlag sets the field from the given flag value,
// appending to a string slice if it was already seen.
func setFlag(f *Field, value string, seen bool) error {
	if f.Value.Kind() != reflect.Slice {
		return SetString(f.Value, value)
	}
	if !seen {
		f.Value.Set(reflect.Zero(f.Value.Type()))
	}
	f.Value.Set(reflect.Append(f.Value, reflect.ValueOf(value).Convert(f.Value.Type().Elem())))
	return nil
}

func isConfigFlag(name string) bool {
	return slices.Contains(configFlags, name)
}

// configFiles returns the config files given in the arguments.
func configFiles(args []string) []string {
	var files []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		if eq := strings.Index(name, "="); eq >= 0 {
			if isConfigFlag(FlagName(name[:eq])) {
				files = append(files, name[eq+1:])
			}
			continue
		}
		if isConfigFlag(FlagName(name)) && i+1 < len(args) {
			i++
			files = append(files, args[i])
		}
	}
	return files
}
