// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlLayout = `
[[machines]]
id = "knit1"
name = "Knitting Machine #1"
status = "running"
type = "knitting"
temperature = 65
speed = 240
efficiency = 92
position = [-6, 0.75, -4]

[[belts]]
start = [-1, 0.2, -4]
end = [2, 0.2, -4]

[[belts]]
start = [0, 0, 0]
end = [1, 0, 0]
speed = 2
active = false
`

const yamlLayout = `
machines:
  - id: dye1
    name: Dyeing Unit
    status: fault
    type: dyeing
    temperature: -5
    position: [3, 1, -4]
belts:
  - start: [0, 0, 0]
    end: [0, 0, 3]
    width: 1
`

func TestReadLayoutTOML(t *testing.T) {
	ly, err := ReadLayout([]byte(tomlLayout), ".toml")
	require.NoError(t, err)
	require.Len(t, ly.Machines, 1)
	m := ly.Machines[0]
	assert.Equal(t, "knit1", m.ID)
	assert.Equal(t, Knitting, m.Kind)
	assert.Equal(t, Running, m.Status)
	assert.Equal(t, math32.Vec3(-6, 0.75, -4), m.Position)
	assert.Equal(t, float32(240), m.Speed)

	require.Len(t, ly.Belts, 2)
	assert.True(t, ly.Belts[0].Active)
	assert.Equal(t, float32(DefaultBeltWidth), ly.Belts[0].Width)
	assert.Equal(t, float32(DefaultBeltSpeed), ly.Belts[0].Speed)
	assert.False(t, ly.Belts[1].Active)
	assert.Equal(t, float32(2), ly.Belts[1].Speed)
}

func TestReadLayoutYAML(t *testing.T) {
	ly, err := ReadLayout([]byte(yamlLayout), "yml")
	require.NoError(t, err)
	require.Len(t, ly.Machines, 1)
	assert.Equal(t, Fault, ly.Machines[0].Status)
	assert.Equal(t, float32(0), ly.Machines[0].Temperature)
	assert.Equal(t, math32.Vec3(3, 1, -4), ly.Machines[0].Position)
	require.Len(t, ly.Belts, 1)
	assert.Equal(t, float32(1), ly.Belts[0].Width)
	assert.InDelta(t, 3, ly.Belts[0].Transform().Length, 1e-6)
}

func TestReadLayoutErrors(t *testing.T) {
	_, err := ReadLayout([]byte("{}"), ".xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = ReadLayout([]byte("machines = ["), ".toml")
	assert.Error(t, err)

	_, err = OpenLayout("does-not-exist.json")
	assert.Error(t, err)
}
