//nolint:funlen,lll // ok for tests
package standings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/testsupport/basedata"
)

type row struct {
	Name  string
	Team  string
	Score string
}

func toRows(table []model.StandingsRow) []row {
	ret := make([]row, 0, len(table))
	for _, r := range table {
		ret = append(ret, row{Name: r.Name, Team: r.Team.GetOr(""), Score: r.Score.String()})
	}
	return ret
}

func toTotals(p model.SeriesPoint) map[string]string {
	ret := map[string]string{}
	for k, v := range p.Totals {
		ret[k] = v.String()
	}
	return ret
}

// two weekends, X scores 10 and 5, Y scores 8 and 12
func TestComputeDriverStandings_TwoWeekends(t *testing.T) {
	season := basedata.Season(2001,
		basedata.Weekend("Alpha", basedata.Results(nil,
			[]model.RaceEntry{basedata.Race("X", "Red", 1, 10), basedata.Race("Y", "Blue", 2, 8)}, nil)),
		basedata.Weekend("Beta", basedata.Results(nil,
			[]model.RaceEntry{basedata.Race("Y", "Blue", 1, 12), basedata.Race("X", "Red", 2, 5)}, nil)),
	)
	got := ComputeDriverStandings(&season)

	assert.Equal(t, []row{
		{Name: "Y", Team: "Blue", Score: "20"},
		{Name: "X", Team: "Red", Score: "15"},
	}, toRows(got.Table))

	assert.Len(t, got.Series, 2)
	assert.Equal(t, 1, got.Series[0].Round)
	assert.Equal(t, "Alpha", got.Series[0].Track)
	assert.Equal(t, map[string]string{"X": "10", "Y": "8"}, toTotals(got.Series[0]))
	assert.Equal(t, "Beta", got.Series[1].Track)
	assert.Equal(t, map[string]string{"X": "15", "Y": "20"}, toTotals(got.Series[1]))
}

func TestComputeStandings_SampleSeason(t *testing.T) {
	got := ComputeStandings(lookup.FindYear(basedata.SampleDocument(), 2001))
	assert.Equal(t, 2001, got.Year)

	// Z never scored but is part of the table, last team seen is Green
	assert.Equal(t, []row{
		{Name: "Y", Team: "Blue", Score: "20"},
		{Name: "X", Team: "Red", Score: "15"},
		{Name: "Z", Team: "Green", Score: "0"},
	}, toRows(got.Drivers.Table))

	// Green only appears in the second weekend but gets a zero baseline from the start
	assert.Equal(t, []row{
		{Name: "Blue", Score: "20"},
		{Name: "Red", Score: "15"},
		{Name: "Green", Score: "0"},
	}, toRows(got.Teams.Table))
	assert.Equal(t, map[string]string{"Red": "10", "Blue": "8", "Green": "0"}, toTotals(got.Teams.Series[0]))

	// the not started weekend carries the totals forward
	assert.Len(t, got.Drivers.Series, 3)
	assert.Equal(t, "Gamma", got.Drivers.Series[2].Track)
	assert.Equal(t, toTotals(got.Drivers.Series[1]), toTotals(got.Drivers.Series[2]))
}

func TestComputeStandings_FinalSnapshotMatchesTable(t *testing.T) {
	doc := basedata.SampleDocument()
	for _, y := range lookup.SortedYears(doc) {
		season := lookup.FindYear(doc, y)
		got := ComputeDriverStandings(season)

		// sum of score deltas per driver
		sums := map[string]decimal.Decimal{}
		for _, w := range season.Weekends {
			if w.Results == nil {
				continue
			}
			for _, e := range w.Results.Race {
				sums[string(e.Driver)] = sums[string(e.Driver)].Add(e.Score.Decimal)
			}
		}
		last := got.Series[len(got.Series)-1]
		for _, r := range got.Table {
			assert.True(t, sums[r.Name].Equal(r.Score), "table total of %s", r.Name)
			assert.True(t, last.Totals[r.Name].Equal(r.Score), "last snapshot of %s", r.Name)
		}
		for i := 1; i < len(got.Table); i++ {
			assert.True(t, got.Table[i-1].Score.GreaterThanOrEqual(got.Table[i].Score))
		}
	}
}

func TestComputeDriverStandings_TiesKeepEncounterOrder(t *testing.T) {
	season := basedata.Season(2001,
		basedata.Weekend("Alpha", basedata.Results(nil, []model.RaceEntry{
			basedata.Race("C", "T1", 1, 5),
			basedata.Race("A", "T2", 2, 5),
			basedata.Race("B", "T3", 3, 7),
		}, nil)),
	)
	for i := 0; i < 3; i++ {
		got := ComputeDriverStandings(&season)
		assert.Equal(t, []string{"B", "C", "A"}, []string{got.Table[0].Name, got.Table[1].Name, got.Table[2].Name})
	}
}

func TestComputeDriverStandings_MalformedAndMissing(t *testing.T) {
	noTeam := basedata.Race("X", "", 1, 0)
	noTeam.Score = model.Points{} // malformed score decodes to zero
	season := basedata.Season(2001,
		basedata.Weekend("Alpha", nil),
		basedata.Weekend("Beta", basedata.Results(nil, []model.RaceEntry{noTeam}, nil)),
	)
	got := ComputeDriverStandings(&season)
	if assert.Len(t, got.Table, 1) {
		assert.True(t, got.Table[0].Team.IsNull())
		assert.True(t, got.Table[0].Score.IsZero())
	}
	assert.Len(t, got.Series, 2)
	assert.Equal(t, map[string]string{"X": "0"}, toTotals(got.Series[0]))
}

func TestComputeStandings_Empty(t *testing.T) {
	got := ComputeStandings(nil)
	assert.Empty(t, got.Drivers.Table)
	assert.Empty(t, got.Drivers.Series)
	assert.Empty(t, got.Teams.Table)

	season := basedata.Season(2005)
	got = ComputeStandings(&season)
	assert.Equal(t, 2005, got.Year)
	assert.Empty(t, got.Drivers.Table)
	assert.Empty(t, got.Teams.Series)
}
