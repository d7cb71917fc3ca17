package model

import (
	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
)

// derived views, rebuilt on every query and never written back

type StandingsRow struct {
	Name  string           `json:"name"`
	Team  null.Val[string] `json:"team"` // drivers only, last team seen
	Score decimal.Decimal  `json:"score"`
}

// SeriesPoint holds the running totals of all entities after one weekend
type SeriesPoint struct {
	Round  int                        `json:"round"` // 1-based weekend index
	Track  string                     `json:"track"`
	Totals map[string]decimal.Decimal `json:"totals"`
}

type Standings struct {
	Table  []StandingsRow `json:"table"`
	Series []SeriesPoint  `json:"series"`
}

type SeasonStandings struct {
	Year    int       `json:"year"`
	Drivers Standings `json:"drivers"`
	Teams   Standings `json:"teams"`
}

type TrackResult struct {
	Year  int         `json:"year"`
	Quali *QualiEntry `json:"quali,omitempty"`
	Race  *RaceEntry  `json:"race,omitempty"`
}

type TrackSummary struct {
	Track       string            `json:"track"`
	Results     []TrackResult     `json:"results"`
	TotalPoints decimal.Decimal   `json:"totalPoints"`
	AvgRacePos  null.Val[float64] `json:"avgRacePos"`
	AvgQualiPos null.Val[float64] `json:"avgQualiPos"`
	Count       int               `json:"count"`
}

type YearWins struct {
	Year int `json:"year"`
	Wins int `json:"wins"`
}

type TrackWins struct {
	Track  string     `json:"track"`
	ByYear []YearWins `json:"byYear"`
}

type TrackPerformance struct {
	Driver string         `json:"driver"`
	Tracks []TrackSummary `json:"tracks"` // order of first appearance
	Wins   []TrackWins    `json:"wins"`
}

// TotalWins sums the wins over all tracks and years
func (tp *TrackPerformance) TotalWins() int {
	ret := 0
	for _, tw := range tp.Wins {
		for _, yw := range tw.ByYear {
			ret += yw.Wins
		}
	}
	return ret
}

// HeadToHeadRound holds the positions of both drivers in one round, 0 if not available
type HeadToHeadRound struct {
	Round  int    `json:"round"`
	Track  string `json:"track"`
	QualiA int    `json:"qualiA"`
	QualiB int    `json:"qualiB"`
	RaceA  int    `json:"raceA"`
	RaceB  int    `json:"raceB"`
}

type HeadToHead struct {
	Year        int               `json:"year"`
	DriverA     string            `json:"driverA"`
	DriverB     string            `json:"driverB"`
	QualiWinsA  int               `json:"qualiWinsA"`
	QualiWinsB  int               `json:"qualiWinsB"`
	RaceWinsA   int               `json:"raceWinsA"`
	RaceWinsB   int               `json:"raceWinsB"`
	QualiRounds int               `json:"qualiRounds"` // rounds where both had a quali result
	RaceRounds  int               `json:"raceRounds"`  // rounds where both had a race result
	Rounds      []HeadToHeadRound `json:"rounds"`
}

// HasData reports whether at least one round was decided
func (h *HeadToHead) HasData() bool {
	return h.QualiWinsA > 0 || h.QualiWinsB > 0 || h.RaceWinsA > 0 || h.RaceWinsB > 0
}

type LeaderboardRow struct {
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Deceased bool            `json:"deceased"`
}
