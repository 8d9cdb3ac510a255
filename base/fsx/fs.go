// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/lsystem/base/errors"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
)

// ExpandHome expands a leading ~ in the given path to the user's
// home directory. Empty paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	return homedir.Expand(path)
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// Paths are searched in order; a file found on an earlier path is
// listed first.
func FindFilesOnPaths(paths []string, file string) []string {
	var res []string
	for _, path := range paths {
		fp := filepath.Join(path, file)
		if ok, _ := FileExists(fp); ok {
			if abs, err := filepath.Abs(fp); err == nil {
				res = append(res, abs)
			}
		}
	}
	return res
}

// IsImage reports whether the file at the given path looks like
// an image based on its leading magic bytes.
func IsImage(filePath string) (bool, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer f.Close()
	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.IsImage(head[:n]), nil
}
