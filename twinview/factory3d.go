// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"image"
	"log/slog"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/inventory"
	"github.com/textiletwin/twin/metrics"
	"github.com/textiletwin/twin/scene"
)

// Factory is the 3D factory floor view: the interactive scene, the view
// mode buttons, the scene statistics and the selected machine panel.
type Factory struct {
	comp    *scene.Composer
	records []inventory.Record
	world   *world

	editor *xyzcore.SceneEditor
	detail *core.Frame

	// OnHistory is called by the View History button of the detail panel.
	OnHistory func(m factory.Machine)
}

// NewFactory adds the factory view for the given composer to the parent.
// The records supply the uptime shown in the detail panel.
func NewFactory(parent core.Widget, comp *scene.Composer, records []inventory.Record) *Factory {
	fv := &Factory{comp: comp, records: records}
	fr := core.NewFrame(parent)
	styleColumn(fr)

	top := newRow(fr)
	core.NewText(top).SetText("Factory Floor").SetType(core.TextHeadlineSmall)
	core.NewStretch(top)
	modes := newRow(top)
	modes.Styler(func(s *styles.Style) {
		s.Grow.Set(0, 0)
	})
	modes.Maker(func(p *tree.Plan) {
		for _, vm := range scene.ViewModes() {
			tree.AddAt(p, string(vm), func(bt *core.Button) {
				bt.SetText(Badge(vm)).SetIcon(icons.Visibility)
				bt.Updater(func() {
					bt.SetType(modeButtonType(comp.ViewMode() == vm))
				})
				bt.OnClick(func(e events.Event) {
					comp.SetViewMode(vm)
					modes.Update()
				})
			})
		}
	})

	sp := core.NewSplits(fr)
	sp.Styler(func(s *styles.Style) {
		s.Min.Y.Em(30)
	})
	fv.editor = xyzcore.NewSceneEditor(sp)
	fv.editor.UpdateWidget()
	fv.world = newWorld(fv.editor.SceneXYZ(), comp)
	fv.handlePointer()

	fv.detail = core.NewFrame(sp)
	fv.detail.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Gap.Set(units.Dp(8))
		s.Padding.Set(units.Dp(8))
		s.Overflow.Set(styles.OverflowAuto)
	})
	fv.detail.Maker(fv.makeDetail)
	sp.SetSplits(.67, .33)

	comp.OnSelect(func(m factory.Machine) {
		fv.detail.Update()
	})

	stats := newRow(fr)
	stats.Maker(func(p *tree.Plan) {
		for i, t := range StatTiles(comp.Stats()) {
			tree.AddAt(p, "stat-"+t.Title, func(cd *core.Frame) {
				styleCard(cd)
				core.NewText(cd).SetText(t.Title).SetType(core.TextLabelLarge)
				val := core.NewText(cd).SetType(core.TextHeadlineSmall)
				styleValue(val, t.Color)
				val.Updater(func() {
					val.SetText(StatTiles(comp.Stats())[i].Value)
				})
			})
		}
	})

	fv.editor.Animate(func(a *core.Animation) {
		fv.world.frame()
		fv.editor.NeedsRender()
	})
	return fv
}

// handlePointer wires hover and click picking on the scene widget.
func (fv *Factory) handlePointer() {
	sw := fv.editor.SceneWidget()
	sw.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Hoverable)
	})
	local := func(e events.Event) image.Point {
		return e.Pos().Sub(sw.Geom.ContentBBox.Min)
	}
	sw.On(events.MouseMove, func(e events.Event) {
		if fv.world.hover(local(e)) {
			sw.NeedsRender()
		}
	})
	sw.On(events.MouseLeave, func(e events.Event) {
		fv.world.leave()
	})
	sw.OnClick(func(e events.Event) {
		fv.world.click(local(e))
	})
}

// Select selects the machine with the given id, as if it had been clicked.
func (fv *Factory) Select(id string) error {
	return fv.comp.SelectID(id)
}

func (fv *Factory) makeDetail(p *tree.Plan) {
	m, ok := fv.comp.Selected()
	if !ok {
		tree.AddAt(p, "empty", func(tx *core.Text) {
			tx.SetText("Select a machine in the scene to see its details.")
		})
		return
	}
	tree.AddAt(p, "header-"+m.ID, func(fr *core.Frame) {
		styleRow(fr)
		core.NewText(fr).SetText(m.Name).SetType(core.TextTitleLarge)
		core.NewStretch(fr)
		core.NewButton(fr).SetIcon(icons.Close).SetType(core.ButtonAction).
			OnClick(func(e events.Event) {
				fv.comp.Dismiss()
				fv.detail.Update()
			})
	})
	tree.AddAt(p, "badges-"+m.ID, func(fr *core.Frame) {
		styleRow(fr)
		newBadge(fr, Badge(m.Status), factory.StatusColor(m.Status))
		newBadge(fr, Badge(m.Kind), factory.Gray)
	})
	tree.AddAt(p, "tiles-"+m.ID, func(fr *core.Frame) {
		fr.Styler(func(s *styles.Style) {
			s.Display = styles.Grid
			s.Columns = 2
			s.Gap.Set(units.Dp(8))
		})
		for _, t := range DetailTiles(m, fv.records) {
			newTile(fr, t)
		}
	})
	tree.AddAt(p, "events-"+m.ID, func(fr *core.Frame) {
		styleCard(fr)
		core.NewText(fr).SetText("Recent Events").SetType(core.TextTitleSmall)
		for _, ev := range metrics.MachineEvents() {
			row := newRow(fr)
			core.NewText(row).SetText(ev.Title)
			core.NewStretch(row)
			core.NewText(row).SetText(ev.Ago).SetType(core.TextBodySmall)
		}
	})
	tree.AddAt(p, "actions-"+m.ID, func(fr *core.Frame) {
		styleRow(fr)
		core.NewButton(fr).SetText("Start Maintenance").SetIcon(icons.Settings).
			OnClick(func(e events.Event) {
				slog.Info("twinview: maintenance requested", "machine", m.ID)
				core.MessageSnackbar(fr, "Maintenance requested for "+m.Name)
			})
		core.NewButton(fr).SetText("View History").SetIcon(icons.Info).SetType(core.ButtonOutlined).
			OnClick(func(e events.Event) {
				if fv.OnHistory != nil {
					fv.OnHistory(m)
				}
			})
	})
}
