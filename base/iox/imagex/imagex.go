// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex opens background images in any common format and
// saves rendered drawings as PNG or GIF files.
package imagex

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the formats that images can be saved in.
type Formats int32

const (
	None Formats = iota
	PNG
	GIF
)

func (f Formats) String() string {
	switch f {
	case PNG:
		return "png"
	case GIF:
		return "gif"
	}
	return "none"
}

// ExtToFormat returns the save format for the given filename
// extension, with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "gif":
		return GIF, nil
	}
	return None, fmt.Errorf("imagex: cannot save images with extension %q", ext)
}

// Open decodes the image in the given file. PNG, JPEG, GIF, BMP,
// TIFF and WebP files can be opened. It also returns the name of
// the format that was decoded, such as "png".
func Open(filename string) (image.Image, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(bufio.NewReader(f))
}

// Save saves the image to the given file, in the format
// of its extension.
func Save(img image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := Write(img, bw, f); err != nil {
		return err
	}
	return bw.Flush()
}

// Write encodes the image to w in the given format. GIF images
// are quantized to the Plan9 palette.
func Write(img image.Image, w io.Writer, f Formats) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case GIF:
		return gif.Encode(w, img, nil)
	}
	return fmt.Errorf("imagex: cannot write format %v", f)
}
