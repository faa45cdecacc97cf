// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twinview

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"github.com/textiletwin/twin/alerts"
)

// Alerts is the alert center view over an [alerts.Board].
type Alerts struct {
	board *alerts.Board
	state string
	now   func() time.Time
	frame *core.Frame
}

// NewAlerts adds the alert center for the given board to the parent.
// The view refreshes itself when the board changes.
func NewAlerts(parent core.Widget, board *alerts.Board, now func() time.Time) *Alerts {
	av := &Alerts{board: board, state: alerts.AllStates, now: now}
	fr := core.NewFrame(parent)
	styleColumn(fr)
	av.frame = fr
	newHeader(fr, "Alert Center", "Monitor and manage system alerts and notifications")

	tiles := newRow(fr)
	tiles.Maker(func(p *tree.Plan) {
		for i, t := range AlertTiles(board.Stats()) {
			tree.AddAt(p, t.Title, func(cd *core.Frame) {
				styleCard(cd)
				core.NewText(cd).SetText(t.Title).SetType(core.TextLabelLarge)
				val := core.NewText(cd).SetType(core.TextHeadlineSmall)
				styleValue(val, t.Color)
				val.Updater(func() {
					val.SetText(AlertTiles(board.Stats())[i].Value)
				})
			})
		}
	})

	filters := newRow(fr)
	filters.Maker(func(p *tree.Plan) {
		states := append([]string{alerts.AllStates}, stateNames()...)
		for i, st := range states {
			tree.AddAt(p, st, func(bt *core.Button) {
				bt.Updater(func() {
					bt.SetText(AlertFilterLabels(board)[i])
					bt.SetType(modeButtonType(av.state == st))
				})
				bt.OnClick(func(e events.Event) {
					av.state = st
					av.frame.Update()
				})
			})
		}
	})

	list := core.NewFrame(fr)
	list.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})
	list.Maker(av.makeList)

	board.OnChange(func(a alerts.Alert) {
		av.frame.Update()
	})
	return av
}

func stateNames() []string {
	var ns []string
	for _, s := range alerts.States() {
		ns = append(ns, string(s))
	}
	return ns
}

func (av *Alerts) makeList(p *tree.Plan) {
	as := av.board.Filter(av.state)
	if len(as) == 0 {
		tree.AddAt(p, "none", func(tx *core.Text) {
			tx.SetText("No alerts in this state.")
		})
		return
	}
	for _, a := range as {
		// state in the name rebuilds the card after a transition
		tree.AddAt(p, "alert-"+a.ID+"-"+string(a.State), func(cd *core.Frame) {
			styleCard(cd)
			top := newRow(cd)
			core.NewText(top).SetText(a.Title).SetType(core.TextTitleSmall)
			newBadge(top, Badge(a.Severity), SeverityColor(a.Severity))
			newBadge(top, Badge(a.State), StateColor(a.State))
			newBadge(top, Badge(a.Priority), PriorityColor(a.Priority))
			core.NewStretch(top)
			core.NewText(top).SetText(alerts.TimeAgo(a.Timestamp, av.now())).SetType(core.TextBodySmall)

			core.NewText(cd).SetText(a.Description)
			core.NewText(cd).SetText(a.Machine).SetType(core.TextBodySmall)

			actions := newRow(cd)
			if a.State == alerts.Active {
				core.NewButton(actions).SetText("Acknowledge").SetIcon(icons.Check).SetType(core.ButtonOutlined).
					OnClick(func(e events.Event) {
						errors.Log(av.board.Acknowledge(a.ID))
					})
			}
			if a.State != alerts.Resolved {
				core.NewButton(actions).SetText("Resolve").SetIcon(icons.Check).
					OnClick(func(e events.Event) {
						errors.Log(av.board.Resolve(a.ID))
					})
			}
		})
	}
}
