// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and conversion helpers
// for turtle pen, fill, and background colors.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// IsNil returns whether the color is the nil initial default color,
// which is also what "none" parses to.
func IsNil(c color.Color) bool {
	return c == color.RGBA{}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string (#RRGGBB), or #RRGGBBAA if the color is not fully opaque.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified
// by the given CSS standard color name. It returns
// an error if the name is not found.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts the following types of strings: hex values,
// standard color names, "none" or "off" (the nil color),
// rgb(r, g, b), and bare r, g, b triplets separated by commas
// and/or spaces. Triplet components may be any number; they are
// truncated to integers and clamped to [0, 255].
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(lstr, "rgb(") && strings.HasSuffix(lstr, ")"):
		return FromTriplet(lstr[4 : len(lstr)-1])
	case lstr == "none" || lstr == "off":
		return color.RGBA{}, nil
	case strings.IndexFunc(lstr, isDigitOrSign) == 0:
		return FromTriplet(lstr)
	}
	return FromName(lstr)
}

func isDigitOrSign(r rune) bool {
	return r == '-' || r == '+' || r == '.' || (r >= '0' && r <= '9')
}

// FromTriplet parses three numbers separated by commas and/or spaces
// as red, green, and blue components, truncating them to integers
// and clamping them to [0, 255]. The result is fully opaque.
func FromTriplet(str string) (color.RGBA, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return color.RGBA{}, fmt.Errorf("colors.FromTriplet: expected 3 components but got %d in %q", len(fields), str)
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromTriplet: %w", err)
		}
		ch[i] = ClampChannel(int(v))
	}
	return color.RGBA{ch[0], ch[1], ch[2], 255}, nil
}

// ClampChannel clamps the given value to the valid [0, 255]
// range of a color channel.
func ClampChannel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}

// FromHex parses the given hex color string
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}
