// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"fmt"
	"time"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"github.com/textiletwin/twin/factory"
	"github.com/textiletwin/twin/inventory"
)

const dateLayout = "2006-01-02"

// Machines is the machine inventory view: a searchable, status filtered
// list of records with the selected record shown beside it.
type Machines struct {
	records []inventory.Record
	filter  inventory.Filter

	// selected is the id of the record shown in the detail card, or "".
	selected string

	// now is used for the maintenance due badge.
	now func() time.Time

	list, detail *core.Frame
}

// NewMachines adds the machine inventory view for the given records
// to the parent.
func NewMachines(parent core.Widget, records []inventory.Record, now func() time.Time) *Machines {
	mv := &Machines{records: records, filter: inventory.Filter{Status: inventory.AllStatuses}, now: now}
	fr := core.NewFrame(parent)
	styleColumn(fr)
	newHeader(fr, "Machine Management", "Monitor and manage all textile manufacturing equipment")

	sm := inventory.Summarize(records)
	tiles := newRow(fr)
	for _, t := range SummaryTiles(sm) {
		newTile(tiles, t)
	}

	bar := newRow(fr)
	tf := core.NewTextField(bar).SetPlaceholder("Search machines, kinds or operators")
	tf.SetLeadingIcon(icons.Search)
	tf.Styler(func(s *styles.Style) {
		s.Min.X.Em(20)
	})
	tf.OnInput(func(e events.Event) {
		mv.filter.Search = tf.Text()
		mv.list.Update()
	})
	statuses := newRow(bar)
	statuses.Maker(func(p *tree.Plan) {
		for _, st := range inventory.StatusFilters() {
			tree.AddAt(p, st, func(bt *core.Button) {
				bt.SetText(Badge(st)).SetIcon(icons.FilterAlt)
				bt.Updater(func() {
					bt.SetType(modeButtonType(mv.filter.Status == st))
				})
				bt.OnClick(func(e events.Event) {
					mv.filter.Status = st
					statuses.Update()
					mv.list.Update()
				})
			})
		}
	})

	body := newRow(fr)
	body.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Start
	})
	mv.list = core.NewFrame(body)
	mv.list.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	mv.list.Maker(mv.makeList)
	mv.detail = core.NewFrame(body)
	styleCard(mv.detail)
	mv.detail.Maker(mv.makeDetail)
	return mv
}

// Show shows the record of the given scene machine id,
// clearing any filter that would hide it.
func (mv *Machines) Show(sceneID string) bool {
	r, ok := inventory.BySceneID(mv.records, sceneID)
	if !ok {
		return false
	}
	mv.selected = r.ID
	if !mv.filter.Matches(&r) {
		mv.filter = inventory.Filter{Status: inventory.AllStatuses}
	}
	mv.list.Update()
	mv.detail.Update()
	return true
}

func (mv *Machines) record(id string) (inventory.Record, bool) {
	for _, r := range mv.records {
		if r.ID == id {
			return r, true
		}
	}
	return inventory.Record{}, false
}

func (mv *Machines) makeList(p *tree.Plan) {
	rs := mv.filter.Apply(mv.records)
	if len(rs) == 0 {
		tree.AddAt(p, "none", func(tx *core.Text) {
			tx.SetText("No machines match the current filter.")
		})
		return
	}
	for _, r := range rs {
		tree.AddAt(p, "record-"+r.ID, func(bt *core.Button) {
			bt.SetText(r.Name).SetIcon(icons.Devices)
			bt.Updater(func() {
				bt.SetType(modeButtonType(mv.selected == r.ID))
				bt.SetTooltip(fmt.Sprintf("%s · %s · %s", Badge(r.Status), r.Location, r.Operator))
			})
			bt.OnClick(func(e events.Event) {
				mv.selected = r.ID
				mv.list.Update()
				mv.detail.Update()
			})
		})
	}
}

func (mv *Machines) makeDetail(p *tree.Plan) {
	r, ok := mv.record(mv.selected)
	if !ok {
		tree.AddAt(p, "empty", func(tx *core.Text) {
			tx.SetText("Select a machine to see its record.")
		})
		return
	}
	tree.AddAt(p, "title-"+r.ID, func(tx *core.Text) {
		tx.SetText(r.Name).SetType(core.TextTitleLarge)
	})
	tree.AddAt(p, "badges-"+r.ID, func(fr *core.Frame) {
		styleRow(fr)
		newBadge(fr, Badge(r.Status), factory.StatusColor(r.Status))
		newBadge(fr, Badge(r.Kind), factory.Gray)
		if r.MaintenanceDue(mv.now()) {
			newBadge(fr, "MAINTENANCE DUE", factory.Amber)
		}
	})
	rows := [][2]string{
		{"Efficiency", fmt.Sprintf("%g%%", r.Efficiency)},
		{"Utilization", fmt.Sprintf("%g%%", r.Utilization)},
		{"Temperature", fmt.Sprintf("%g°C", r.Temperature)},
		{"Speed", fmt.Sprintf("%g RPM", r.Speed)},
		{"Uptime", inventory.FormatUptime(r.Uptime)},
		{"Last Maintenance", r.LastMaintenance.Format(dateLayout)},
		{"Next Maintenance", r.NextMaintenance.Format(dateLayout)},
		{"Location", r.Location},
		{"Operator", r.Operator},
	}
	for _, kv := range rows {
		tree.AddAt(p, r.ID+"-"+kv[0], func(fr *core.Frame) {
			styleRow(fr)
			core.NewText(fr).SetText(kv[0])
			core.NewStretch(fr)
			core.NewText(fr).SetText(kv[1]).SetType(core.TextTitleSmall)
		})
	}
	tree.AddAt(p, "efficiency-"+r.ID, func(mt *core.Meter) {
		mt.SetMax(100).SetValue(r.Efficiency)
	})
}
