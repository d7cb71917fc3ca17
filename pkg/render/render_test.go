//nolint:funlen // ok for tests
package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/processing/headtohead"
	"github.com/mpapenbr/careerstats/pkg/processing/leaderboard"
	"github.com/mpapenbr/careerstats/pkg/processing/standings"
	"github.com/mpapenbr/careerstats/testsupport/basedata"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{ms: 83456, want: "1:23.456"},
		{ms: 60000, want: "1:00.000"},
		{ms: 5007, want: "0:05.007"},
		{ms: 4001000, want: "66:41.000"},
		{ms: 0, want: "-"},
		{ms: -10, want: "-"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLapTime(tt.ms))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	finished := basedata.Race("X", "Red", 1, 10)
	assert.Equal(t, "66:41.000", RaceTime(&finished))
	dnfEntry := basedata.Race("X", "Red", 3, 0)
	dnfEntry.LapTime = 0
	assert.Equal(t, "DNF", RaceTime(&dnfEntry))

	assert.Equal(t, "1:20.000 FL", FastestLap(80000, true))
	assert.Equal(t, "1:20.000", FastestLap(80000, false))
	assert.Equal(t, "-", FormatPosition(0))
	assert.Equal(t, "3", FormatPosition(3))
	assert.Equal(t, "1.50", FormatAverage(null.From(1.5)))
	assert.Equal(t, "-", FormatAverage(null.Val[float64]{}))
	assert.Equal(t, "Red", FormatTeam(null.From("Red")))
	assert.Equal(t, "-", FormatTeam(null.Val[string]{}))
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"", "table", "TEXT"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, FormatTable, f)
	}
	f, err := ParseFormat(" json ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	f, err = ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderer_StandingsTable(t *testing.T) {
	st := standings.ComputeDriverStandings(lookup.FindYear(basedata.SampleDocument(), 2001))
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	require.NoError(t, r.Standings("Drivers 2001", st, true))

	out := buf.String()
	assert.Contains(t, out, "Drivers 2001")
	assert.Contains(t, out, "Drivers 2001 by round")
	for _, row := range st.Table {
		assert.Contains(t, out, row.Name)
	}
	assert.Less(t, strings.Index(out, "Y"), strings.Index(out, "Z"), "standings order is kept")
}

func TestRenderer_StandingsJSON(t *testing.T) {
	st := standings.ComputeDriverStandings(lookup.FindYear(basedata.SampleDocument(), 2001))
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithFormat(FormatJSON))
	require.NoError(t, r.Standings("", st, false))

	var got struct {
		Table []struct {
			Name  string          `json:"name"`
			Team  *string         `json:"team"`
			Score decimal.Decimal `json:"score"`
		} `json:"table"`
		Series []model.SeriesPoint `json:"series"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Table, len(st.Table))
	for i := range st.Table {
		assert.Equal(t, st.Table[i].Name, got.Table[i].Name)
		assert.True(t, st.Table[i].Score.Equal(got.Table[i].Score))
	}
	assert.Nil(t, got.Series, "series are only rendered on request")
}

func TestRenderer_YAMLKeepsOrder(t *testing.T) {
	h := headtohead.ComputeHeadToHead(basedata.SampleDocument(), 2001, "X", "Y")
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithFormat(FormatYAML))
	require.NoError(t, r.HeadToHead(&h))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "year: 2001\n"), out)
	assert.Less(t, strings.Index(out, "driverA:"), strings.Index(out, "driverB:"))
	assert.Less(t, strings.Index(out, "qualiWinsA:"), strings.Index(out, "rounds:"))
	assert.NotContains(t, out, "{", "block style expected")
}

func TestRenderer_Results(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	require.NoError(t, r.Results(lookup.FindYear(basedata.SampleDocument(), 2001)))

	out := buf.String()
	assert.Contains(t, out, "Round 1: Alpha - Qualifying")
	assert.Contains(t, out, "Round 1: Alpha - Race")
	assert.Contains(t, out, "Round 1: Alpha - Teams")
	assert.Contains(t, out, "DNF")
	assert.Contains(t, out, "Round 3: Gamma - not started")
}

func TestRenderer_Leaderboard(t *testing.T) {
	rows := leaderboard.ComputeLeaderboard(basedata.SampleDocument().Career.People, model.MetricPodiums)
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	require.NoError(t, r.Leaderboard(model.MetricPodiums, rows))

	out := buf.String()
	assert.Contains(t, out, "Y †")
	assert.NotContains(t, out, "X †")
}

func TestRenderer_Info(t *testing.T) {
	info := NewCareerInfo(basedata.SampleDocument())
	assert.Equal(t, []int{2001, 2002}, info.Seasons)
	assert.Equal(t, 3, info.Drivers)
	assert.Equal(t, 4, info.People)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Info(info))
	assert.Contains(t, buf.String(), "[2001 2002]")
}

func TestRenderer_Values(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, WithFormat(FormatJSON))
	require.NoError(t, r.Values([]any{"a", int64(1)}, nil))
	assert.JSONEq(t, `["a", 1]`, buf.String())

	buf.Reset()
	r = NewRenderer(&buf)
	require.NoError(t, r.Values([]any{"a", "b"}, func(v any) string { return "<" + v.(string) + ">" }))
	assert.Equal(t, "<a>\n<b>\n", buf.String())
}
