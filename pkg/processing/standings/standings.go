package standings

import (
	"slices"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/careerstats/pkg/model"
)

// ComputeStandings computes driver and team standings of a season.
// A nil season yields empty standings.
func ComputeStandings(year *model.SeasonYear) model.SeasonStandings {
	ret := model.SeasonStandings{
		Drivers: ComputeDriverStandings(year),
		Teams:   ComputeTeamStandings(year),
	}
	if year != nil {
		ret.Year = int(year.CalendarYear)
	}
	return ret
}

type scoreEntry struct {
	name  string
	team  string
	score decimal.Decimal
}

// ComputeDriverStandings folds the race standings of the season into driver totals
func ComputeDriverStandings(year *model.SeasonYear) model.Standings {
	return accumulate(year, func(rs *model.ResultSet, add func(name, team string, score decimal.Decimal)) {
		for i := range rs.Race {
			e := &rs.Race[i]
			add(string(e.Driver), string(e.Team), e.Score.Decimal)
		}
	})
}

// ComputeTeamStandings folds the team race standings of the season into team totals
func ComputeTeamStandings(year *model.SeasonYear) model.Standings {
	return accumulate(year, func(rs *model.ResultSet, add func(name, team string, score decimal.Decimal)) {
		for i := range rs.TeamRace {
			e := &rs.TeamRace[i]
			add(string(e.Team), "", e.Score.Decimal)
		}
	})
}

type visitFunc func(rs *model.ResultSet, add func(name, team string, score decimal.Decimal))

//nolint:funlen // by design
func accumulate(year *model.SeasonYear, visit visitFunc) model.Standings {
	ret := model.Standings{
		Table:  []model.StandingsRow{},
		Series: []model.SeriesPoint{},
	}
	if year == nil {
		return ret
	}

	// first pass: every entity of the season starts with zero, keeping encounter order
	entries := []*scoreEntry{}
	byName := map[string]*scoreEntry{}
	for i := range year.Weekends {
		if rs := year.Weekends[i].Results; rs != nil {
			visit(rs, func(name, _ string, _ decimal.Decimal) {
				if name == "" {
					return
				}
				if _, ok := byName[name]; !ok {
					e := &scoreEntry{name: name, score: decimal.Zero}
					byName[name] = e
					entries = append(entries, e)
				}
			})
		}
	}

	for i := range year.Weekends {
		w := &year.Weekends[i]
		if w.Results != nil {
			visit(w.Results, func(name, team string, score decimal.Decimal) {
				e, ok := byName[name]
				if !ok {
					return
				}
				e.score = e.score.Add(score)
				if team != "" {
					e.team = team
				}
			})
		}
		point := model.SeriesPoint{
			Round:  i + 1,
			Track:  w.TrackName,
			Totals: make(map[string]decimal.Decimal, len(entries)),
		}
		for _, e := range entries {
			point.Totals[e.name] = e.score
		}
		ret.Series = append(ret.Series, point)
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *scoreEntry) int {
		return b.score.Cmp(a.score)
	})
	for _, e := range sorted {
		row := model.StandingsRow{Name: e.name, Score: e.score}
		if e.team != "" {
			row.Team = null.From(e.team)
		}
		ret.Table = append(ret.Table, row)
	}
	return ret
}
