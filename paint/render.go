// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image/color"

	"cogentcore.org/lsystem/math32"
)

// Render represents a collection of render [Item]s to be rendered.
// All coordinates are in turtle space: the origin is at the center
// of the canvas and y points up.
type Render []Item

// Item is a union interface for render items: [Line], [Polygon], or [Dot].
type Item interface {
	isRenderItem()

	// Bounds returns the bounding box of everything the item paints.
	Bounds() math32.Box2
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Bounds returns the union of the bounds of all items,
// which is empty if there are none.
func (r Render) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	for _, it := range r {
		ib := it.Bounds()
		if ib.IsEmpty() {
			continue
		}
		bb.ExpandByPoint(ib.Min)
		bb.ExpandByPoint(ib.Max)
	}
	return bb
}

// Line is a straight stroke with round caps.
type Line struct {
	From, To math32.Vector2

	// Width is the stroke width.
	Width float32

	Color color.RGBA
}

// Polygon is a filled closed polygon.
type Polygon struct {
	Points []math32.Vector2

	Color color.RGBA
}

// Dot is a filled circle.
type Dot struct {
	Center math32.Vector2

	// Diameter is the size of the dot.
	Diameter float32

	Color color.RGBA
}

func (l *Line) isRenderItem()    {}
func (p *Polygon) isRenderItem() {}
func (d *Dot) isRenderItem()     {}

func (l *Line) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	bb.ExpandByPoint(l.From)
	bb.ExpandByPoint(l.To)
	bb.ExpandByScalar(l.Width / 2)
	return bb
}

func (p *Polygon) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	for _, pt := range p.Points {
		bb.ExpandByPoint(pt)
	}
	return bb
}

func (d *Dot) Bounds() math32.Box2 {
	bb := math32.B2Empty()
	bb.ExpandByPoint(d.Center)
	bb.ExpandByScalar(d.Diameter / 2)
	return bb
}
