// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a layout file whose extension
// is not one of .toml, .yaml, .yml or .json.
var ErrUnknownFormat = errors.New("factory: unknown layout file format")

// layoutFile is the on-disk form of a [Layout]. Points are written as
// [x, y, z] arrays, and belt active defaults to true when omitted.
type layoutFile struct {
	Machines []machineFile `json:"machines" toml:"machines" yaml:"machines"`
	Belts    []beltFile    `json:"belts" toml:"belts" yaml:"belts"`
}

type machineFile struct {
	Machine  `yaml:",inline"`
	Position [3]float32 `json:"position" toml:"position" yaml:"position"`
}

type beltFile struct {
	Start  [3]float32 `json:"start" toml:"start" yaml:"start"`
	End    [3]float32 `json:"end" toml:"end" yaml:"end"`
	Width  float32    `json:"width" toml:"width" yaml:"width"`
	Speed  float32    `json:"speed" toml:"speed" yaml:"speed"`
	Active *bool      `json:"active" toml:"active" yaml:"active"`
}

func vec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}

func (lf *layoutFile) layout() Layout {
	ly := Layout{
		Machines: make([]Machine, len(lf.Machines)),
		Belts:    make([]Belt, len(lf.Belts)),
	}
	for i, mf := range lf.Machines {
		m := mf.Machine
		m.Position = vec3(mf.Position)
		ly.Machines[i] = m
	}
	for i, bf := range lf.Belts {
		b := Belt{Start: vec3(bf.Start), End: vec3(bf.End), Width: bf.Width, Speed: bf.Speed, Active: true}
		if bf.Active != nil {
			b.Active = *bf.Active
		}
		ly.Belts[i] = b
	}
	ly.Sanitize()
	return ly
}

// OpenLayout reads a [Layout] from the given file, choosing the decoder
// from the file extension: .toml, .yaml / .yml, or .json.
func OpenLayout(filename string) (Layout, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Layout{}, fmt.Errorf("factory.OpenLayout: %w", err)
	}
	ly, err := ReadLayout(b, filepath.Ext(filename))
	if err != nil {
		return Layout{}, fmt.Errorf("factory.OpenLayout %q: %w", filename, err)
	}
	return ly, nil
}

// ReadLayout decodes a [Layout] from the given bytes in the format named
// by ext, which is a file extension with or without the leading dot.
func ReadLayout(b []byte, ext string) (Layout, error) {
	var lf layoutFile
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		err = toml.Unmarshal(b, &lf)
	case "yaml", "yml":
		err = yaml.Unmarshal(b, &lf)
	case "json":
		err = json.Unmarshal(b, &lf)
	default:
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Layout{}, err
	}
	return lf.layout(), nil
}
