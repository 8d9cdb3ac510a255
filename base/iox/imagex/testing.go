// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
)

// TestingT is the part of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] overwrite the golden images instead
// of comparing against them. It is set when the environment variable
// LSYSTEM_UPDATE_TESTDATA is "true".
var UpdateTestImages = os.Getenv("LSYSTEM_UPDATE_TESTDATA") == "true"

// Tolerance is the largest per-channel difference that [Assert]
// accepts between a rendered and a golden pixel.
const Tolerance = 10

// CompareColors returns whether each channel of a and b
// differs by at most tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	ca := [4]uint8{a.R, a.G, a.B, a.A}
	cb := [4]uint8{b.R, b.G, b.B, b.A}
	for i := range ca {
		d := int(ca[i]) - int(cb[i])
		if d < -tol || d > tol {
			return false
		}
	}
	return true
}

// firstDiff returns the first pixel at which img and want differ by
// more than [Tolerance], scanning rows from the top.
func firstDiff(img, want image.Image) (image.Point, bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			exp := color.RGBAModel.Convert(want.At(x, y)).(color.RGBA)
			if !CompareColors(got, exp, Tolerance) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Assert checks that img matches the golden PNG testdata/name.png.
// The golden image is created when it does not exist yet. On a
// mismatch the rendered image is saved as testdata/name.fail.png
// and the test is marked as failed.
func Assert(t TestingT, img image.Image, name string) {
	golden := filepath.Join("testdata", name+".png")
	fail := filepath.Join("testdata", name+".fail.png")
	if err := os.MkdirAll(filepath.Dir(golden), 0750); err != nil {
		t.Errorf("imagex.Assert: %v", err)
		return
	}

	want, _, err := Open(golden)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, golden); err != nil {
			t.Errorf("imagex.Assert: saving %s: %v", golden, err)
		}
		os.Remove(fail)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: opening %s: %v", golden, err)
		return
	}

	if img.Bounds() != want.Bounds() {
		t.Errorf("imagex.Assert: %s has bounds %v, but got %v; see %s", golden, want.Bounds(), img.Bounds(), fail)
	} else if p, ok := firstDiff(img, want); ok {
		t.Errorf("imagex.Assert: %s differs at %v: expected %v, but got %v; see %s", golden, p, want.At(p.X, p.Y), img.At(p.X, p.Y), fail)
	} else {
		os.Remove(fail)
		return
	}
	if err := Save(img, fail); err != nil {
		t.Errorf("imagex.Assert: saving %s: %v", fail, err)
	}
}
