// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"cogentcore.org/lsystem/lsystem"
	"cogentcore.org/lsystem/math32"
)

// Modes are the turtle heading conventions of a [Canvas].
type Modes int32

const (
	// Standard has heading 0 pointing east, with positive
	// turns going counter-clockwise.
	Standard Modes = iota

	// Logo has heading 0 pointing north, with positive
	// turns going clockwise.
	Logo
)

func (m Modes) String() string {
	if m == Logo {
		return "logo"
	}
	return "standard"
}

// Canvas is an [lsystem.Drawer] that records turtle drawing as a
// display list ([Render]), which can be rasterized at any scale with
// [Canvas.Render]. A Canvas is not safe for concurrent use.
type Canvas struct {

	// Size is the size of the canvas in turtle units.
	Size math32.Vector2

	// Mode is the heading convention.
	Mode Modes

	// FullCircle is the number of angle units in a full turn.
	FullCircle float32

	// BackgroundColor is the color behind all drawing.
	BackgroundColor color.RGBA

	// BackgroundImage is an optional image drawn centered
	// over the background color and beneath all drawing.
	BackgroundImage image.Image

	render Render

	// start is the length of render when the current drawing began.
	start int

	pos     math32.Vector2
	heading float32

	pen   color.RGBA
	fill  color.RGBA
	width float32

	filling    bool
	fillStart  int
	fillPoints []math32.Vector2
}

// NewCanvas returns a new [Canvas] of the given size in [Standard] mode,
// with degrees, a black pen, a black background and a width of 1.
func NewCanvas(size math32.Vector2) *Canvas {
	return &Canvas{
		Size:            size,
		FullCircle:      360,
		BackgroundColor: color.RGBA{0, 0, 0, 255},
		pen:             color.RGBA{0, 0, 0, 255},
		fill:            color.RGBA{0, 0, 0, 255},
		width:           1,
	}
}

var _ lsystem.Drawer = (*Canvas)(nil)

// direction returns the current heading as a standard angle in radians.
func (c *Canvas) direction() float32 {
	rad := math32.DegToRad(c.heading * 360 / c.FullCircle)
	if c.Mode == Logo {
		return math32.Pi/2 - rad
	}
	return rad
}

// moved records a new pose for a pending fill.
func (c *Canvas) moved() {
	if c.filling {
		c.fillPoints = append(c.fillPoints, c.pos)
	}
}

func (c *Canvas) Move(dist float32, pen bool) {
	from := c.pos
	c.pos = c.pos.Add(math32.Vector2Polar(c.direction(), dist))
	if pen && c.width > 0 && c.pen.A > 0 {
		c.render.Add(&Line{From: from, To: c.pos, Width: c.width, Color: c.pen})
	}
	c.moved()
}

func (c *Canvas) Turn(delta float32) {
	if c.Mode == Logo {
		delta = -delta
	}
	c.heading += delta
}

func (c *Canvas) SetPenColor(col lsystem.Color)  { c.pen = col.RGBA() }
func (c *Canvas) SetFillColor(col lsystem.Color) { c.fill = col.RGBA() }

func (c *Canvas) SetStrokeWidth(width float32) { c.width = max(0, width) }

// BeginFill starts collecting the vertices of a fill polygon,
// starting at the current position. Calling it again during a fill
// restarts the fill.
func (c *Canvas) BeginFill() {
	c.filling = true
	c.fillStart = len(c.render)
	c.fillPoints = []math32.Vector2{c.pos}
}

// EndFill fills the polygon collected since [Canvas.BeginFill] with
// the current fill color, beneath everything drawn since then.
// It does nothing if no fill is pending.
func (c *Canvas) EndFill() {
	if !c.filling {
		return
	}
	c.filling = false
	pts := c.fillPoints
	c.fillPoints = nil
	if len(pts) < 3 || c.fill.A == 0 {
		return
	}
	// items may be shared with a snapshot, so always copy
	r := make(Render, 0, len(c.render)+1)
	r = append(r, c.render[:c.fillStart]...)
	r = append(r, &Polygon{Points: pts, Color: c.fill})
	c.render = append(r, c.render[c.fillStart:]...)
}

// Dot draws a filled circle at the current position, with a diameter
// of max(width+4, 2*width) for the current stroke width.
func (c *Canvas) Dot(col lsystem.Color) {
	if !col.Valid {
		return
	}
	c.render.Add(&Dot{Center: c.pos, Diameter: max(c.width+4, 2*c.width), Color: col.RGBA()})
}

func (c *Canvas) Teleport(pos *math32.Vector2, heading *float32) {
	if heading != nil {
		c.heading = *heading
	}
	if pos != nil {
		c.pos = *pos
		c.moved()
	}
}

func (c *Canvas) Position() math32.Vector2 { return c.pos }
func (c *Canvas) Heading() float32         { return c.heading }
func (c *Canvas) Background() color.RGBA   { return c.BackgroundColor }

// Begin starts a new drawing over everything drawn so far, which
// [Canvas.Clear] then keeps. Any pending fill is dropped.
func (c *Canvas) Begin() {
	c.start = len(c.render)
	c.filling = false
	c.fillPoints = nil
}

// Clear erases the drawing started by the last [Canvas.Begin],
// or all drawing if there was none, and any pending fill.
// The pose and the pen settings are kept.
func (c *Canvas) Clear() {
	// capped so that later drawing never writes into a snapshot
	c.render = c.render[:c.start:c.start]
	c.filling = false
	c.fillPoints = nil
}

// Snapshot returns the current display list. It is never modified
// by later drawing, so it can be kept as an animation frame.
func (c *Canvas) Snapshot() Render {
	n := len(c.render)
	return c.render[:n:n]
}

// Render rasterizes the given display list onto a new transparent
// image of the canvas size multiplied by scale.
func (c *Canvas) Render(r Render, scale float32) *image.RGBA {
	rs := NewRenderer(c.Size, scale)
	rs.Render(r)
	return rs.Image
}
