// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/lsystem/base/iox/imagex"
	"cogentcore.org/lsystem/paint"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Options are the options for turning a [Frame] into an image.
type Options struct {

	// Padding is the number of turtle units kept around the drawing,
	// which is cropped to the bounding box of its visible pixels.
	// If it is negative, the full canvas is kept.
	Padding int

	// Transparent is whether the background color is
	// made fully transparent.
	Transparent bool

	// OutputScale is the number of pixels per turtle unit.
	OutputScale float32
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{Padding: 10, OutputScale: 1}
}

// GIFOptions are the options for saving frames as an animated GIF.
type GIFOptions struct {
	Options

	// Duration is the number of milliseconds each frame is shown.
	Duration int

	// Pause is the number of extra milliseconds the last frame is shown.
	Pause int

	// Defer is the number of extra milliseconds the first frame is shown.
	Defer int

	// Loops is the number of times the animation is repeated,
	// where 0 means forever.
	Loops int

	// Reverse is whether the frames are played in reverse order.
	Reverse bool

	// Alternate is whether the frames are played forward and
	// then backward, without repeating the end frames.
	Alternate bool

	// FramesDir, if set, is a directory where every
	// frame is also saved as frame{i}.png.
	FramesDir string
}

// DefaultGIFOptions returns the default [GIFOptions].
func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Options: DefaultOptions(), Duration: 20, Pause: 500}
}

// PaddingRect returns the bounding box of the pixels of img that are
// not fully transparent, expanded by padding on all sides. If there
// are no such pixels, the box is the center pixel, padded.
// The result may extend beyond the bounds of img.
func PaddingRect(img *image.RGBA, padding int) image.Rectangle {
	b := img.Bounds()
	bb := image.Rectangle{}
	empty := true
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if empty {
				bb = px
				empty = false
			} else {
				bb = bb.Union(px)
			}
		}
	}
	if empty {
		c := image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
		bb = image.Rectangle{c, c.Add(image.Pt(1, 1))}
	}
	bb.Min = bb.Min.Sub(image.Pt(padding, padding))
	bb.Max = bb.Max.Add(image.Pt(padding, padding))
	bb.Max.X = max(bb.Max.X, bb.Min.X+1)
	bb.Max.Y = max(bb.Max.Y, bb.Min.Y+1)
	return bb
}

// crop returns the part of img within rect as a new image with
// its origin at rect.Min. Parts of rect outside img are transparent.
func crop(img *image.RGBA, rect image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: rect.Size()})
	in := rect.Intersect(img.Bounds())
	if in.Empty() {
		return dst
	}
	sub := transform.Crop(img, in)
	draw.Draw(dst, in.Sub(rect.Min), sub, sub.Bounds().Min, draw.Src)
	return dst
}

// Image renders the given frame with the given options. If rect is
// nil, the crop rectangle is determined by [Options.Padding];
// otherwise it is used as given. It returns the image and the crop
// rectangle in full canvas pixel coordinates.
func Image(f Frame, rect *image.Rectangle, opts Options) (*image.RGBA, image.Rectangle) {
	scale := opts.OutputScale
	if scale <= 0 {
		scale = 1
	}
	rs := paint.NewRenderer(f.Size, scale)
	rs.Render(f.Render)
	full := rs.Image

	var r image.Rectangle
	switch {
	case rect != nil:
		r = *rect
	case opts.Padding >= 0:
		r = PaddingRect(full, int(float32(opts.Padding)*scale+0.5))
	default:
		r = full.Bounds()
	}

	bg := f.Background
	bg.A = 255
	if opts.Transparent {
		bg = color.RGBA{}
	}
	dst := image.NewRGBA(image.Rectangle{Max: r.Size()})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if f.BackgroundImage != nil {
		drawBackgroundImage(dst, f.BackgroundImage, full.Bounds(), r, scale)
	}
	draw.Draw(dst, dst.Bounds(), crop(full, r), image.Point{}, draw.Over)
	return dst, r
}

// drawBackgroundImage draws img scaled by scale and centered on a canvas
// of the given full bounds onto dst, which holds the rect part of it.
func drawBackgroundImage(dst *image.RGBA, img image.Image, full, rect image.Rectangle, scale float32) {
	src := clone.AsRGBA(img)
	sz := src.Bounds().Size()
	if scale != 1 {
		w := max(1, int(float32(sz.X)*scale+0.5))
		h := max(1, int(float32(sz.Y)*scale+0.5))
		src = transform.Resize(src, w, h, transform.Linear)
		sz = src.Bounds().Size()
	}
	at := full.Min.Add(full.Size().Sub(sz).Div(2)).Sub(rect.Min)
	draw.Draw(dst, image.Rectangle{at, at.Add(sz)}, src, src.Bounds().Min, draw.Over)
}

// SavePNG renders the given frame with the given options
// and saves it to the given PNG file.
func SavePNG(filename string, f Frame, opts Options) error {
	img, _ := Image(f, nil, opts)
	if err := imagex.Save(img, filename); err != nil {
		return fmt.Errorf("saving png: %w", err)
	}
	slog.Info("saved png", "file", filename, "size", img.Bounds().Size())
	return nil
}

// SaveGIF renders the given frames with the given options
// and saves them to the given animated GIF file.
func SaveGIF(filename string, frames []Frame, opts GIFOptions) error {
	if len(frames) == 0 {
		return errors.New("saving gif: no frames")
	}
	fp, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saving gif: %w", err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	if err := EncodeGIF(bw, frames, opts); err != nil {
		return fmt.Errorf("saving gif: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("saving gif: %w", err)
	}
	slog.Info("saved gif", "file", filename, "frames", len(frames))
	return nil
}

// EncodeGIF renders the given frames with the given options and writes
// them to w as an animated GIF. All frames use the crop rectangle of the
// last frame.
func EncodeGIF(w io.Writer, frames []Frame, opts GIFOptions) error {
	if len(frames) == 0 {
		return errors.New("no frames")
	}
	last, rect := Image(frames[len(frames)-1], nil, opts.Options)
	imgs := make([]*image.RGBA, len(frames))
	imgs[len(imgs)-1] = last
	for i, f := range frames[:len(frames)-1] {
		imgs[i], _ = Image(f, &rect, opts.Options)
	}
	if opts.FramesDir != "" {
		if err := os.MkdirAll(opts.FramesDir, 0750); err != nil {
			return err
		}
		for i, img := range imgs {
			if err := imagex.Save(img, filepath.Join(opts.FramesDir, fmt.Sprintf("frame%d.png", i))); err != nil {
				return err
			}
		}
	}

	if opts.Reverse {
		slices.Reverse(imgs)
	}
	if opts.Alternate && len(imgs) > 2 {
		back := slices.Clone(imgs[1 : len(imgs)-1])
		slices.Reverse(back)
		imgs = append(imgs, back...)
	}

	pal := gifPalette(opts.Transparent)
	g := &gif.GIF{LoopCount: opts.Loops}
	if opts.Loops < 0 {
		g.LoopCount = 0
	}
	delay := max(opts.Duration, 0) / 10
	for _, img := range imgs {
		pm := image.NewPaletted(img.Bounds(), pal)
		draw.FloydSteinberg.Draw(pm, pm.Bounds(), img, image.Point{})
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, delay)
		if opts.Transparent {
			g.Disposal = append(g.Disposal, gif.DisposalBackground)
		} else {
			g.Disposal = append(g.Disposal, gif.DisposalNone)
		}
	}
	g.Delay[0] += max(opts.Defer, 0) / 10
	g.Delay[len(g.Delay)-1] += max(opts.Pause, 0) / 10
	return gif.EncodeAll(w, g)
}

// gifPalette returns the palette used for GIF frames, which starts
// with a fully transparent color if transparent is set.
func gifPalette(transparent bool) color.Palette {
	if !transparent {
		return palette.Plan9
	}
	pal := color.Palette{color.RGBA{}}
	return append(pal, palette.Plan9[:len(palette.Plan9)-1]...)
}
