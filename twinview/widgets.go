// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// styleCard styles a frame as a bordered card with a column layout.
func styleCard(fr *core.Frame) {
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Border.Radius = styles.BorderRadiusMedium
		s.Background = colors.Scheme.SurfaceContainerLow
		s.Padding.Set(units.Dp(12))
		s.Gap.Set(units.Dp(4))
		s.Grow.Set(1, 0)
	})
}

// styleRow styles a frame as a horizontal row that fills its width.
func styleRow(fr *core.Frame) {
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Row
		s.Align.Items = styles.Center
		s.Gap.Set(units.Dp(8))
		s.Grow.Set(1, 0)
	})
}

// styleColumn styles a frame as a vertical stack that fills its space.
func styleColumn(fr *core.Frame) {
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Gap.Set(units.Dp(12))
		s.Grow.Set(1, 1)
		s.Padding.Set(units.Dp(16))
		s.Overflow.Set(styles.OverflowAuto)
	})
}

// newRow adds a new row frame to the parent.
func newRow(parent core.Widget) *core.Frame {
	fr := core.NewFrame(parent)
	styleRow(fr)
	return fr
}

// newHeader adds a page title and subtitle to the parent.
func newHeader(parent core.Widget, title, subtitle string) {
	core.NewText(parent).SetText(title).SetType(core.TextHeadlineMedium)
	core.NewText(parent).SetText(subtitle).SetType(core.TextBodyMedium)
}

// styleValue sets the text color of a value.
func styleValue(tx *core.Text, c color.RGBA) {
	tx.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(c)
	})
}

// styleBadge styles a text as an outlined badge in the given color.
func styleBadge(tx *core.Text, c *color.RGBA) {
	tx.SetType(core.TextLabelMedium)
	tx.Styler(func(s *styles.Style) {
		s.Color = colors.Uniform(*c)
		s.Border.Width.Set(units.Dp(1))
		s.Border.Color.Set(colors.Uniform(*c))
		s.Border.Radius = styles.BorderRadiusFull
		s.Padding.Set(units.Dp(2), units.Dp(8))
	})
}

// newBadge adds a fixed outlined badge to the parent.
func newBadge(parent core.Widget, text string, c color.RGBA) *core.Text {
	tx := core.NewText(parent).SetText(text)
	styleBadge(tx, &c)
	return tx
}

// newTile adds a card showing a tile title and value to the parent,
// and returns the value text.
func newTile(parent core.Widget, t Tile) *core.Text {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText(t.Title).SetType(core.TextLabelLarge)
	val := core.NewText(fr).SetText(t.Value).SetType(core.TextHeadlineSmall)
	styleValue(val, t.Color)
	return val
}

// modeButtonType returns the type of a mutually exclusive mode button.
func modeButtonType(active bool) core.ButtonTypes {
	if active {
		return core.ButtonFilled
	}
	return core.ButtonOutlined
}
