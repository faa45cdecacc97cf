// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command twin runs the textile factory digital twin, or prints a summary
// of a factory layout with the stats command.
package main

//go:generate core generate -add-types -add-funcs

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/lab/base/randx"
	"github.com/muesli/termenv"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/metrics"
	"github.com/textiletwin/twin/scene"
	"github.com/textiletwin/twin/twinview"
)

// Config is the configuration for the twin command.
type Config struct {

	// Layout is a .toml, .yaml or .json factory layout file.
	// The built-in layout is used if it is empty.
	Layout string `posarg:"0" required:"-"`

	// Tab is the tab shown at start: factory, dashboard,
	// analytics, machines or alerts.
	Tab string `default:"factory"`

	// Seed seeds the simulated live metrics.
	// The current time is used if it is 0.
	Seed int64

	// MetricsInterval is how often the live metrics update.
	// Zero uses the default of 3 seconds.
	MetricsInterval time.Duration

	// LogLevel is the minimum level of log messages:
	// debug, info, warn or error.
	LogLevel string `default:"info"`

	// NoColor turns off colored output of the stats command.
	NoColor bool `cmd:"stats"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("twin", "A digital twin of a textile factory floor.")
	cli.Run(opts, &Config{}, Run, Stats)
}

// Run opens the digital twin window.
func Run(c *Config) error { //cli:cmd -root
	if err := setupLogging(c.LogLevel); err != nil {
		return err
	}
	ly, err := loadLayout(c.Layout)
	if err != nil {
		return err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interval := c.MetricsInterval
	if interval <= 0 {
		interval = metrics.DefaultInterval
	}
	twinview.NewApp(ly, c.Tab, interval, randx.NewSysRand(seed)).Run()
	return nil
}

// Stats prints the machines of the layout and the scene statistics.
func Stats(c *Config) error {
	if err := setupLogging(c.LogLevel); err != nil {
		return err
	}
	ly, err := loadLayout(c.Layout)
	if err != nil {
		return err
	}
	var opts []termenv.OutputOption
	if c.NoColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	writeStats(termenv.NewOutput(os.Stdout, opts...), ly.Machines)
	return nil
}

func setupLogging(level string) error {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("twin: invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})))
	return nil
}

func loadLayout(filename string) (factory.Layout, error) {
	if filename == "" {
		return factory.DefaultLayout(), nil
	}
	ly, err := factory.OpenLayout(filename)
	if err != nil {
		return factory.Layout{}, err
	}
	slog.Info("twin: layout loaded", "file", filename, "machines", len(ly.Machines), "belts", len(ly.Belts))
	return ly, nil
}

// writeStats writes one line per machine with its name in the status
// color, followed by the scene statistics.
func writeStats(out *termenv.Output, machines []factory.Machine) {
	for i := range machines {
		m := &machines[i]
		name := out.String(m.Name).Foreground(out.FromColor(factory.StatusColor(m.Status))).Bold()
		fmt.Fprintf(out, "%-8s %s  %s  %s °C  %s RPM  %s%%\n", m.ID, name, m.Status,
			scene.FormatNumber(m.Temperature), scene.FormatNumber(m.Speed), scene.FormatNumber(m.Efficiency))
	}
	for _, t := range twinview.StatTiles(factory.ComputeStats(machines)) {
		fmt.Fprintf(out, "%s: %s\n", t.Title, t.Value)
	}
}
