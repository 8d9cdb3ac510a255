// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"
)

// Usage returns the usage string for the given app,
// with its commands and the flags of its config object.
func Usage[T any](opts *Options, cfg T, cmds ...*Cmd[T]) string {
	var b strings.Builder
	if opts.AppAbout != "" {
		b.WriteString(opts.AppAbout + "\n\n")
	}
	fmt.Fprintf(&b, "Usage:\n\t%s [command] [flags]\n\n", opts.AppName)
	if len(cmds) > 0 {
		b.WriteString("Commands:\n")
		for _, c := range cmds {
			name := c.Name
			if c.Root {
				name += " (default)"
			}
			fmt.Fprintf(&b, "\t%-18s %s\n", name, c.Doc)
		}
		b.WriteString("\n")
	}
	b.WriteString("Flags:\n")
	b.WriteString("\t-help, -h\n\t\tshow this usage and exit\n")
	b.WriteString("\t-config, -cfg\n\t\ta TOML config file to open before applying flags\n")
	fs, err := AddFields(cfg)
	if err != nil {
		return b.String()
	}
	for _, f := range fs {
		names := make([]string, len(f.Names))
		for i, n := range f.Names {
			names[i] = "-" + n
		}
		fmt.Fprintf(&b, "\t%s\n", strings.Join(names, ", "))
		desc := f.Field.Tag.Get("desc")
		def, hasDef := f.Field.Tag.Lookup("default")
		if desc == "" && !hasDef {
			continue
		}
		b.WriteString("\t\t" + desc)
		if hasDef {
			if desc != "" {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "(default %s)", def)
		}
		b.WriteString("\n")
	}
	return b.String()
}
