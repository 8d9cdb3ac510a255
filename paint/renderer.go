// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/lsystem/math32"
	"golang.org/x/image/vector"
)

// Renderer rasterizes a [Render] onto an image using an
// antialiasing [vector.Rasterizer].
type Renderer struct {

	// Size is the size of the render target in turtle units.
	Size math32.Vector2

	// Scale is the number of pixels per turtle unit.
	Scale float32

	// Image is the image we are rendering to.
	Image *image.RGBA

	ras *vector.Rasterizer
}

// NewRenderer returns a new [Renderer] rendering to a new transparent
// image of the given size multiplied by scale.
func NewRenderer(size math32.Vector2, scale float32) *Renderer {
	psz := size.MulScalar(scale).ToPointCeil()
	psz.X = max(psz.X, 1)
	psz.Y = max(psz.Y, 1)
	rs := &Renderer{Size: size, Scale: scale}
	rs.Image = image.NewRGBA(image.Rectangle{Max: psz})
	rs.ras = vector.NewRasterizer(psz.X, psz.Y)
	return rs
}

// Render renders the items in order, so later items are drawn on top.
func (rs *Renderer) Render(r Render) {
	for _, ri := range r {
		switch x := ri.(type) {
		case *Line:
			rs.RenderLine(x)
		case *Polygon:
			rs.RenderPolygon(x)
		case *Dot:
			rs.RenderDot(x)
		}
	}
}

// ToPixels converts a point in turtle space to image coordinates.
func (rs *Renderer) ToPixels(p math32.Vector2) math32.Vector2 {
	return math32.Vec2(p.X+rs.Size.X/2, rs.Size.Y/2-p.Y).MulScalar(rs.Scale)
}

func (rs *Renderer) RenderLine(l *Line) {
	if l.Width <= 0 {
		return
	}
	r := l.Width / 2
	d := l.To.Sub(l.From)
	if d.Length() < 1e-6 {
		rs.start()
		rs.arc(l.From, r, 0, 2*math32.Pi, true)
		rs.fill(l.Color)
		return
	}
	a := math32.Atan2(d.Y, d.X)
	up := a + math32.Pi/2
	rs.start()
	rs.moveTo(l.From.Add(math32.Vector2Polar(up, r)))
	rs.lineTo(l.To.Add(math32.Vector2Polar(up, r)))
	rs.arc(l.To, r, up, up-math32.Pi, false)
	rs.lineTo(l.From.Add(math32.Vector2Polar(up-math32.Pi, r)))
	rs.arc(l.From, r, up-math32.Pi, up-2*math32.Pi, false)
	rs.fill(l.Color)
}

func (rs *Renderer) RenderPolygon(p *Polygon) {
	if len(p.Points) < 3 {
		return
	}
	rs.start()
	rs.moveTo(p.Points[0])
	for _, pt := range p.Points[1:] {
		rs.lineTo(pt)
	}
	rs.fill(p.Color)
}

func (rs *Renderer) RenderDot(d *Dot) {
	if d.Diameter <= 0 {
		return
	}
	rs.start()
	rs.arc(d.Center, d.Diameter/2, 0, 2*math32.Pi, true)
	rs.fill(d.Color)
}

func (rs *Renderer) start() {
	b := rs.Image.Bounds()
	rs.ras.Reset(b.Dx(), b.Dy())
}

func (rs *Renderer) moveTo(p math32.Vector2) {
	px := rs.ToPixels(p)
	rs.ras.MoveTo(px.X, px.Y)
}

func (rs *Renderer) lineTo(p math32.Vector2) {
	px := rs.ToPixels(p)
	rs.ras.LineTo(px.X, px.Y)
}

// arc adds an arc of the circle around center with the given radius,
// from angle a0 to a1 in radians. If move is set, the arc starts a
// new path, and otherwise it continues the current one.
func (rs *Renderer) arc(center math32.Vector2, radius, a0, a1 float32, move bool) {
	n := arcSteps(radius*rs.Scale, math32.Abs(a1-a0))
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float32(i)/float32(n)
		p := center.Add(math32.Vector2Polar(a, radius))
		if i == 0 && move {
			rs.moveTo(p)
			continue
		}
		rs.lineTo(p)
	}
}

// arcSteps returns the number of line segments used to approximate
// an arc of the given pixel radius and angle.
func arcSteps(radius, angle float32) int {
	n := int(math32.Ceil(angle * math32.Sqrt(max(radius, 1)) * 2))
	return math32.Clamp(n, 4, 256)
}

func (rs *Renderer) fill(c color.RGBA) {
	if c.A == 0 {
		return
	}
	rs.ras.ClosePath()
	rs.ras.DrawOp = draw.Over
	rs.ras.Draw(rs.Image, rs.Image.Bounds(), image.NewUniform(c), image.Point{})
}
