package processing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/testsupport/basedata"
)

func TestProcessor_Memoizes(t *testing.T) {
	ctx := context.Background()
	p := NewProcessor(WithDocument(basedata.SampleDocument()))

	first := p.Standings(ctx, "2001")
	second := p.Standings(ctx, 2001)
	assert.Equal(t, 2001, first.Year)
	assert.Equal(t, len(first.Drivers.Table), len(second.Drivers.Table))
	assert.Equal(t, 1, p.standings.Len(), "text and numeric year share the entry")

	p.HeadToHead(ctx, 2001, "X", "Y")
	p.HeadToHead(ctx, "2001", "X", "Y")
	assert.Equal(t, 1, p.headToHead.Len())

	p.Leaderboard(ctx, model.MetricWins)
	p.Leaderboard(ctx, model.MetricPodiums)
	p.Leaderboard(ctx, model.MetricWins)
	assert.Equal(t, 2, p.leaderboards.Len())
}

func TestProcessor_Views(t *testing.T) {
	ctx := context.Background()
	p := NewProcessor(WithDocument(basedata.SampleDocument()))

	st := p.Standings(ctx, 2002)
	if assert.Len(t, st.Drivers.Table, 2) {
		assert.Equal(t, "Y", st.Drivers.Table[0].Name)
	}

	tp := p.TrackPerformance(ctx, "Y")
	if assert.NotNil(t, tp) {
		assert.Equal(t, 2, tp.TotalWins())
	}
	assert.Nil(t, p.TrackPerformance(ctx, "Nobody"))

	h2h := p.HeadToHead(ctx, 2001, "X", "Z")
	assert.Equal(t, 2, h2h.QualiWinsA)

	lb := p.Leaderboard(ctx, model.MetricWins)
	assert.Len(t, lb, 2)
}

func TestProcessor_EmptySelections(t *testing.T) {
	ctx := context.Background()
	p := NewProcessor(WithDocument(nil))

	assert.Empty(t, p.Standings(ctx, "").Drivers.Table)
	assert.Empty(t, p.Standings(ctx, 2001).Teams.Table)
	assert.False(t, func() bool { h := p.HeadToHead(ctx, "x", "A", "B"); return h.HasData() }())
	assert.Nil(t, p.TrackPerformance(ctx, ""))
	assert.Empty(t, p.Leaderboard(ctx, model.MetricWins))
}
