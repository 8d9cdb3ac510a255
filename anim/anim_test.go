// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/lsystem/base/iox/imagex"
	"cogentcore.org/lsystem/lsystem"
	"cogentcore.org/lsystem/math32"
	"cogentcore.org/lsystem/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	navy  = color.RGBA{0, 0, 128, 255}
)

func testCanvas() *paint.Canvas {
	c := paint.NewCanvas(math32.Vec2(100, 80))
	c.BackgroundColor = navy
	c.SetPenColor(lsystem.RGB(255, 255, 255))
	c.SetStrokeWidth(2)
	return c
}

func TestRecorder(t *testing.T) {
	c := testCanvas()
	r := NewRecorder(c, 2)
	r.CaptureFrame()
	c.Move(10, true)
	r.CaptureFrame()
	c.Move(10, true)
	r.CaptureFrame()
	r.CaptureFrame()
	assert.Equal(t, 4, r.Attempted)
	require.Len(t, r.Frames, 2)
	assert.Empty(t, r.Frames[0].Render)
	assert.Len(t, r.Frames[1].Render, 1)
	assert.Equal(t, navy, r.Frames[1].Background)
	assert.Equal(t, math32.Vec2(100, 80), r.Frames[1].Size)

	r.Reset()
	assert.Empty(t, r.Frames)
	assert.Zero(t, r.Attempted)

	r.Max = 0
	r.CaptureFrame()
	assert.Empty(t, r.Frames)
	assert.Equal(t, 1, r.Attempted)
}

func TestRecorderInterpreter(t *testing.T) {
	c := testCanvas()
	r := NewRecorder(c, 100)
	p := lsystem.DefaultParams()
	p.DrawsPerFrame = 2
	it := lsystem.NewInterpreter(c, r, lsystem.DefaultPalette, p)
	res := it.Run("F+F+F+F+F")
	assert.Equal(t, 5, res.Draws)
	assert.Equal(t, 4, r.Attempted)
	require.Len(t, r.Frames, 4)
	for i, n := range []int{0, 2, 4, 5} {
		assert.Len(t, r.Frames[i].Render, n)
	}
}

func TestPaddingRect(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	img.SetRGBA(10, 20, white)
	img.SetRGBA(30, 40, color.RGBA{0, 0, 0, 1})
	assert.Equal(t, image.Rect(5, 15, 36, 46), PaddingRect(img, 5))
	assert.Equal(t, image.Rect(10, 20, 31, 41), PaddingRect(img, 0))

	empty := image.NewRGBA(image.Rect(0, 0, 100, 80))
	assert.Equal(t, image.Rect(47, 37, 54, 44), PaddingRect(empty, 3))
	assert.Equal(t, image.Rect(50, 40, 51, 41), PaddingRect(empty, 0))
}

func TestImage(t *testing.T) {
	c := testCanvas()
	c.Move(10, true)
	f := NewFrame(c)

	img, r := Image(f, nil, Options{Padding: -1, OutputScale: 1})
	assert.Equal(t, image.Rect(0, 0, 100, 80), r)
	assert.Equal(t, image.Rect(0, 0, 100, 80), img.Bounds())
	assert.Equal(t, navy, img.RGBAAt(0, 0))
	assert.True(t, imagex.CompareColors(white, img.RGBAAt(55, 40), 2))

	img, r = Image(f, nil, Options{Padding: 5, OutputScale: 1})
	assert.Equal(t, image.Rect(44, 34, 66, 46), r)
	assert.Equal(t, r.Size(), img.Bounds().Size())
	assert.Equal(t, navy, img.RGBAAt(0, 0))

	img, r = Image(f, nil, Options{Padding: 5, OutputScale: 2})
	assert.Equal(t, image.Rect(88, 68, 132, 92), r)
	assert.Equal(t, r.Size(), img.Bounds().Size())

	img, _ = Image(f, nil, Options{Padding: 5, OutputScale: 1, Transparent: true})
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))

	// padding beyond the canvas
	img, r = Image(f, nil, Options{Padding: 100, OutputScale: 1})
	assert.Equal(t, image.Rect(-51, -61, 161, 141), r)
	assert.Equal(t, navy, img.RGBAAt(0, 0))

	// a given rect
	rect := image.Rect(0, 0, 10, 10)
	img, r = Image(f, &rect, Options{Padding: 5, OutputScale: 1})
	assert.Equal(t, rect, r)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
}

func TestBackgroundImage(t *testing.T) {
	bgi := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			bgi.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	c := paint.NewCanvas(math32.Vec2(20, 20))
	c.BackgroundImage = bgi
	img, _ := Image(NewFrame(c), nil, Options{Padding: -1, OutputScale: 1})
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(5, 14))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(15, 15))

	img, _ = Image(NewFrame(c), nil, Options{Padding: -1, OutputScale: 2})
	assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(20, 20))
}

func TestSavePNG(t *testing.T) {
	c := testCanvas()
	c.Move(10, true)
	fn := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, SavePNG(fn, NewFrame(c), DefaultOptions()))
	img, format, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 32, 22), img.Bounds())

	assert.Error(t, SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), NewFrame(c), DefaultOptions()))
}

func testFrames(n int) []Frame {
	c := testCanvas()
	r := NewRecorder(c, n)
	for i := 0; i < n; i++ {
		r.CaptureFrame()
		c.Move(10, true)
		c.Turn(90)
	}
	return r.Frames
}

func TestEncodeGIF(t *testing.T) {
	opts := DefaultGIFOptions()
	opts.Defer = 100
	var b bytes.Buffer
	require.NoError(t, EncodeGIF(&b, testFrames(3), opts))
	g, err := gif.DecodeAll(&b)
	require.NoError(t, err)
	require.Len(t, g.Image, 3)
	assert.Equal(t, []int{12, 2, 52}, g.Delay)
	assert.Equal(t, 0, g.LoopCount)
	for _, im := range g.Image {
		assert.Equal(t, g.Image[2].Bounds(), im.Bounds())
	}

	opts = DefaultGIFOptions()
	opts.Alternate = true
	opts.Loops = 3
	b.Reset()
	require.NoError(t, EncodeGIF(&b, testFrames(4), opts))
	g, err = gif.DecodeAll(&b)
	require.NoError(t, err)
	assert.Len(t, g.Image, 6)
	assert.Equal(t, 3, g.LoopCount)

	assert.Error(t, EncodeGIF(&b, nil, opts))
}

func TestEncodeGIFReverse(t *testing.T) {
	frames := testFrames(3)
	opts := DefaultGIFOptions()
	opts.Padding = -1
	var fwd, rev bytes.Buffer
	require.NoError(t, EncodeGIF(&fwd, frames, opts))
	opts.Reverse = true
	require.NoError(t, EncodeGIF(&rev, frames, opts))
	gf, err := gif.DecodeAll(&fwd)
	require.NoError(t, err)
	gr, err := gif.DecodeAll(&rev)
	require.NoError(t, err)
	require.Len(t, gr.Image, 3)
	assert.Equal(t, gf.Image[0].Pix, gr.Image[2].Pix)
	assert.Equal(t, gf.Image[2].Pix, gr.Image[0].Pix)
}

func TestEncodeGIFTransparent(t *testing.T) {
	opts := DefaultGIFOptions()
	opts.Transparent = true
	var b bytes.Buffer
	require.NoError(t, EncodeGIF(&b, testFrames(2), opts))
	g, err := gif.DecodeAll(&b)
	require.NoError(t, err)
	_, _, _, a := g.Image[0].Palette[g.Image[0].ColorIndexAt(0, 0)].RGBA()
	assert.Zero(t, a)
	assert.Equal(t, []byte{gif.DisposalBackground, gif.DisposalBackground}, g.Disposal)
}

func TestSaveGIF(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultGIFOptions()
	opts.FramesDir = filepath.Join(dir, "draw1")
	fn := filepath.Join(dir, "out.gif")
	require.NoError(t, SaveGIF(fn, testFrames(3), opts))
	_, err := os.Stat(fn)
	assert.NoError(t, err)
	for _, f := range []string{"frame0.png", "frame1.png", "frame2.png"} {
		_, err := os.Stat(filepath.Join(opts.FramesDir, f))
		assert.NoError(t, err)
	}
	assert.Error(t, SaveGIF(fn, nil, opts))
}
