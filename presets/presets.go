// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presets provides named L-systems, decoded from YAML.
package presets

import (
	_ "embed"
	"fmt"
	"slices"

	"cogentcore.org/lsystem/base/iox/yamlx"
	"golang.org/x/exp/maps"
)

//go:embed presets.yaml
var defaultPresets []byte

// Preset is a named L-system along with the drawing parameters
// that make it look right. Zero values mean that the
// default value should be used.
type Preset struct {

	// Name is the name of the preset, which is its key in the file.
	Name string `yaml:"-"`

	// Doc is a short description of the preset.
	Doc string `yaml:"doc,omitempty"`

	// Start is the initial string.
	Start string `yaml:"start"`

	// Rules are the replacement rules, keyed by single symbols.
	Rules map[string]string `yaml:"rules"`

	// Level is the number of expansions.
	Level int `yaml:"level"`

	Angle     float32 `yaml:"angle,omitempty"`
	Length    float32 `yaml:"length,omitempty"`
	Thickness float32 `yaml:"thickness,omitempty"`
	Heading   float32 `yaml:"heading,omitempty"`

	// Position is the initial position, if set.
	Position []float32 `yaml:"position,omitempty,flow"`

	// Color is the pen color, as a color string.
	Color string `yaml:"color,omitempty"`

	// Fill is the fill color, as a color string.
	Fill string `yaml:"fill,omitempty"`
}

// Presets is a set of presets keyed by name.
type Presets map[string]*Preset

// Default returns the built-in presets.
func Default() Presets {
	ps := Presets{}
	if err := ps.ReadBytes(defaultPresets); err != nil {
		panic(fmt.Errorf("presets: invalid built-in presets: %w", err))
	}
	return ps
}

// ReadBytes adds the presets in the given YAML data,
// replacing any existing presets with the same names.
func (ps Presets) ReadBytes(data []byte) error {
	var m map[string]*Preset
	if err := yamlx.ReadBytes(&m, data); err != nil {
		return err
	}
	return ps.add(m)
}

// Open adds the presets in the given YAML file,
// replacing any existing presets with the same names.
func (ps Presets) Open(filename string) error {
	var m map[string]*Preset
	if err := yamlx.Open(&m, filename); err != nil {
		return err
	}
	if err := ps.add(m); err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return nil
}

func (ps Presets) add(m map[string]*Preset) error {
	for name, p := range m {
		if p == nil {
			return fmt.Errorf("preset %q is empty", name)
		}
		if len(p.Position) != 0 && len(p.Position) != 2 {
			return fmt.Errorf("preset %q: position must have 2 values, not %d", name, len(p.Position))
		}
		p.Name = name
		ps[name] = p
	}
	return nil
}

// Get returns the preset with the given name.
func (ps Presets) Get(name string) (*Preset, error) {
	p, ok := ps[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, ps.Names())
	}
	return p, nil
}

// Names returns the sorted names of the presets.
func (ps Presets) Names() []string {
	names := maps.Keys(ps)
	slices.Sort(names)
	return names
}

// Save saves the presets to the given YAML file.
func (ps Presets) Save(filename string) error {
	return yamlx.Save(map[string]*Preset(ps), filename)
}
