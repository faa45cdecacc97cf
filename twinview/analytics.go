// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"fmt"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"github.com/textiletwin/twin/metrics"
)

// NewAnalytics adds the production analytics view to the parent.
// The period selector only highlights the chosen period.
func NewAnalytics(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleColumn(fr)

	top := newRow(fr)
	col := core.NewFrame(top)
	col.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	newHeader(col, "Production Analytics", "Insights and trends for manufacturing optimization")
	core.NewStretch(top)

	period := metrics.Week
	periods := newRow(top)
	periods.Styler(func(s *styles.Style) {
		s.Grow.Set(0, 0)
	})
	periods.Maker(func(p *tree.Plan) {
		for _, pd := range metrics.Periods() {
			tree.AddAt(p, string(pd), func(bt *core.Button) {
				bt.SetText(Badge(pd))
				bt.Updater(func() {
					bt.SetType(modeButtonType(period == pd))
				})
				bt.OnClick(func(e events.Event) {
					period = pd
					periods.Update()
				})
			})
		}
	})

	kpis := newRow(fr)
	for _, k := range metrics.KPIs() {
		cd := core.NewFrame(kpis)
		styleCard(cd)
		core.NewText(cd).SetText(k.Title).SetType(core.TextLabelLarge)
		val := core.NewText(cd).SetText(k.Value).SetType(core.TextHeadlineSmall)
		styleValue(val, LevelColor(k.Level))
		core.NewText(cd).SetText(k.Note).SetType(core.TextBodySmall)
	}

	ts := core.NewTabs(fr)
	perf, _ := ts.NewTab("Performance")
	makePerformance(perf)
	trends, _ := ts.NewTab("Trends")
	makeTrends(trends)
	ins, _ := ts.NewTab("Insights")
	makeInsights(ins)
}

func makePerformance(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText("Machine Performance Analysis").SetType(core.TextTitleMedium)
	for _, pf := range metrics.MachinePerformance() {
		row := newRow(fr)
		core.NewText(row).SetText(pf.Name).SetType(core.TextTitleSmall)
		core.NewStretch(row)
		rating, lvl := pf.Rating()
		newBadge(row, rating, LevelColor(lvl))

		vals := newRow(fr)
		for _, v := range []struct {
			label string
			value int
		}{{"Efficiency", pf.Efficiency}, {"Utilization", pf.Utilization}, {"Quality", pf.Quality}} {
			cell := core.NewFrame(vals)
			cell.Styler(func(s *styles.Style) {
				s.Direction = styles.Column
				s.Grow.Set(1, 0)
			})
			core.NewText(cell).SetText(fmt.Sprintf("%s %d%%", v.label, v.value)).SetType(core.TextBodySmall)
			core.NewMeter(cell).SetMax(100).SetValue(float32(v.value))
		}
	}
}

func makeTrends(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText("Weekly Production Trends").SetType(core.TextTitleMedium)
	pts := metrics.ProductionTrends()
	for _, pt := range pts {
		row := newRow(fr)
		core.NewText(row).SetText(pt.Period).SetType(core.TextTitleSmall)
		core.NewStretch(row)
		core.NewText(row).SetText(metrics.FormatInt(pt.Production) + " units")
		core.NewText(row).SetText(fmt.Sprintf("%d%% eff", pt.Efficiency))
		core.NewText(row).SetText(fmt.Sprintf("%dm down", pt.Downtime)).SetType(core.TextBodySmall)
	}
	core.NewText(fr).SetText("Total: " + metrics.FormatInt(metrics.WeeklyTotal(pts)) + " units").
		SetType(core.TextTitleSmall)

	fc := metrics.NextWeekForecast()
	cd := core.NewFrame(fr)
	styleCard(cd)
	core.NewText(cd).SetText("Next Week Forecast").SetType(core.TextTitleSmall)
	core.NewText(cd).SetText(metrics.FormatInt(fc.Units) + " units").SetType(core.TextHeadlineSmall)
	core.NewText(cd).SetText(fc.Change)
	core.NewText(cd).SetText(fmt.Sprintf("Confidence %d%% · Risk %s", fc.Confidence, fc.Risk)).SetType(core.TextBodySmall)
}

func makeInsights(parent core.Widget) {
	fr := core.NewFrame(parent)
	styleCard(fr)
	core.NewText(fr).SetText("AI-Generated Insights").SetType(core.TextTitleMedium)
	for _, in := range metrics.Insights() {
		cd := core.NewFrame(fr)
		styleCard(cd)
		row := newRow(cd)
		core.NewText(row).SetText(in.Title).SetType(core.TextTitleSmall)
		core.NewStretch(row)
		newBadge(row, Badge(in.Priority), PriorityColor(in.Priority))
		core.NewText(cd).SetText(in.Description)
		core.NewText(cd).SetText("Impact: " + in.Impact).SetType(core.TextBodySmall)
	}

	pm := core.NewFrame(fr)
	styleCard(pm)
	core.NewText(pm).SetText("Predictive Maintenance").SetType(core.TextTitleSmall)
	for _, pr := range metrics.Predictions() {
		row := newRow(pm)
		core.NewText(row).SetText(pr.Machine)
		core.NewStretch(row)
		newBadge(row, pr.Label, LevelColor(pr.Level))
		core.NewText(pm).SetText(pr.Note).SetType(core.TextBodySmall)
	}
}
