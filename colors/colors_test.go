// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		str  string
		want color.RGBA
	}{
		{"", color.RGBA{}},
		{"none", color.RGBA{}},
		{"Off", color.RGBA{}},
		{"#f80", color.RGBA{255, 136, 0, 255}},
		{"#FF8000", color.RGBA{255, 128, 0, 255}},
		{"#ff800080", color.RGBA{255, 128, 0, 128}},
		{"red", color.RGBA{255, 0, 0, 255}},
		{"Gray", color.RGBA{128, 128, 128, 255}},
		{"rgb(10, 20, 30)", color.RGBA{10, 20, 30, 255}},
		{"255, 128, 0", color.RGBA{255, 128, 0, 255}},
		{"300 -4 12.9", color.RGBA{255, 0, 12, 255}},
	}
	for _, test := range tests {
		c, err := FromString(test.str)
		if assert.NoError(t, err, test.str) {
			assert.Equal(t, test.want, c, test.str)
		}
	}

	for _, bad := range []string{"notacolor", "#12", "#zzzzzz", "1, 2", "rgb(1, x, 3)"} {
		_, err := FromString(bad)
		assert.Error(t, err, bad)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#FF8000", AsHex(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, "#00000000", AsHex(color.RGBA{}))
	assert.Equal(t, "nil", AsHex(nil))
	assert.True(t, IsNil(color.RGBA{}))
	assert.False(t, IsNil(color.RGBA{A: 255}))
}
