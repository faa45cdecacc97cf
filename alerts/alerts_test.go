// Copyright (c) 2026, The Textile Twin Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

func TestLifecycle(t *testing.T) {
	bd := NewBoard(DefaultAlerts(now))
	var changed []string
	bd.OnChange(func(a Alert) { changed = append(changed, a.ID+":"+string(a.State)) })

	require.NoError(t, bd.Acknowledge("1"))
	a, err := bd.Alert("1")
	require.NoError(t, err)
	assert.Equal(t, Acknowledged, a.State)

	assert.ErrorIs(t, bd.Acknowledge("1"), ErrInvalidTransition)
	require.NoError(t, bd.Resolve("1"))
	require.NoError(t, bd.Resolve("3"))
	assert.ErrorIs(t, bd.Resolve("3"), ErrInvalidTransition)
	assert.ErrorIs(t, bd.Acknowledge("4"), ErrInvalidTransition)
	assert.ErrorIs(t, bd.Resolve("99"), ErrUnknownAlert)
	_, err = bd.Alert("99")
	assert.ErrorIs(t, err, ErrUnknownAlert)

	assert.Equal(t, []string{"1:acknowledged", "1:resolved", "3:resolved"}, changed)
	assert.False(t, bd.HasActive())
}

func TestStats(t *testing.T) {
	bd := NewBoard(DefaultAlerts(now))
	assert.Equal(t, Stats{Total: 5, Active: 2, Critical: 2, Resolved: 2}, bd.Stats())
	assert.True(t, bd.HasActive())
	assert.Equal(t, 1, bd.Count(Acknowledged))
}

func TestFilter(t *testing.T) {
	bd := NewBoard(DefaultAlerts(now))
	assert.Len(t, bd.Filter(AllStates), 5)
	assert.Len(t, bd.Filter(""), 5)
	act := bd.Filter(string(Active))
	require.Len(t, act, 2)
	assert.Equal(t, "1", act[0].ID)
	assert.Equal(t, "3", act[1].ID)
	assert.Empty(t, bd.Filter("bogus"))
}

func TestBoardCopies(t *testing.T) {
	src := DefaultAlerts(now)
	bd := NewBoard(src)
	src[0].State = Resolved
	a, _ := bd.Alert("1")
	assert.Equal(t, Active, a.State)

	all := bd.Alerts()
	all[0].State = Resolved
	a, _ = bd.Alert("1")
	assert.Equal(t, Active, a.State)
}

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{15 * time.Minute, "15m ago"},
		{59*time.Minute + 59*time.Second, "59m ago"},
		{time.Hour, "1h ago"},
		{2*time.Hour + 40*time.Minute, "2h ago"},
		{0, "0m ago"},
		{-time.Minute, "0m ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeAgo(now.Add(-tt.ago), now), tt.ago.String())
	}
}
