// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textiletwin/twin/factory"
)

func TestWriteStats(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	writeStats(out, factory.DefaultLayout().Machines)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "knit1    Knitting Machine #1  running  65 °C  240 RPM  92%", lines[0])
	assert.Equal(t, "dye1     Dyeing Unit  fault  85 °C  150 RPM  0%", lines[2])
	assert.Equal(t, []string{
		"Active Machines: 3",
		"Avg Efficiency: 46%",
		"Alerts: 1",
		"Production Rate: 135/hr",
	}, lines[6:])
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging("debug"))
	assert.NoError(t, setupLogging("WARN"))
	assert.Error(t, setupLogging("loud"))
	assert.NoError(t, setupLogging("info"))
}

func TestLoadLayout(t *testing.T) {
	ly, err := loadLayout("")
	require.NoError(t, err)
	assert.Len(t, ly.Machines, 6)

	fn := filepath.Join(t.TempDir(), "floor.json")
	src := `{"machines": [{"id": "loom1", "name": "Loom", "status": "running", "type": "weaving", "position": [1, 0.5, 2]}]}`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
	ly, err = loadLayout(fn)
	require.NoError(t, err)
	require.Len(t, ly.Machines, 1)
	assert.Equal(t, "loom1", ly.Machines[0].ID)
	assert.Empty(t, ly.Belts)

	_, err = loadLayout(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
