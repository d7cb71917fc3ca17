package track

import (
	"cmp"
	"slices"

	"github.com/aarondl/opt/null"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
)

// ComputeTrackPerformance groups every result of driver by track.
// Returns nil if the driver is not part of the roster.
//
//nolint:funlen // by design
func ComputeTrackPerformance(doc *model.Document, driver string) *model.TrackPerformance {
	if lookup.FindPerson(doc, driver) == nil {
		return nil
	}
	ret := &model.TrackPerformance{
		Driver: driver,
		Tracks: []model.TrackSummary{},
		Wins:   []model.TrackWins{},
	}
	trackIdx := map[string]int{}
	wins := newWinCounter()

	for _, year := range lookup.SortedSeasons(doc) {
		for j := range year.Weekends {
			w := &year.Weekends[j]
			quali := w.QualiEntry(driver)
			race := w.RaceEntry(driver)
			if quali == nil && race == nil {
				continue
			}
			idx, ok := trackIdx[w.TrackName]
			if !ok {
				idx = len(ret.Tracks)
				trackIdx[w.TrackName] = idx
				ret.Tracks = append(ret.Tracks, model.TrackSummary{
					Track:   w.TrackName,
					Results: []model.TrackResult{},
				})
			}
			ret.Tracks[idx].Results = append(ret.Tracks[idx].Results, model.TrackResult{
				Year:  int(year.CalendarYear),
				Quali: quali,
				Race:  race,
			})
			if race != nil && race.Position == 1 {
				wins.add(w.TrackName, int(year.CalendarYear))
			}
		}
	}
	for i := range ret.Tracks {
		summarize(&ret.Tracks[i])
	}
	ret.Wins = wins.result()
	return ret
}

func summarize(ts *model.TrackSummary) {
	points := decimal.Zero
	racePos := []int{}
	qualiPos := []int{}
	for _, r := range ts.Results {
		if r.Race != nil {
			points = points.Add(r.Race.Score.Decimal)
			if r.Race.Position > 0 {
				racePos = append(racePos, int(r.Race.Position))
			}
		}
		if r.Quali != nil && r.Quali.Position > 0 {
			qualiPos = append(qualiPos, int(r.Quali.Position))
		}
	}
	ts.TotalPoints = points
	ts.AvgRacePos = average(racePos)
	ts.AvgQualiPos = average(qualiPos)
	ts.Count = len(ts.Results)
}

// average returns null if there are no values
func average(values []int) null.Val[float64] {
	if len(values) == 0 {
		return null.Val[float64]{}
	}
	return null.From(float64(lo.Sum(values)) / float64(len(values)))
}

// BySuccess orders tracks by total points (desc). Equal points are ordered by average
// race position if both tracks have one, otherwise the order is kept.
func BySuccess(tracks []model.TrackSummary) []model.TrackSummary {
	ret := slices.Clone(tracks)
	slices.SortStableFunc(ret, func(a, b model.TrackSummary) int {
		if c := b.TotalPoints.Cmp(a.TotalPoints); c != 0 {
			return c
		}
		avgA, okA := a.AvgRacePos.Get()
		avgB, okB := b.AvgRacePos.Get()
		if okA && okB {
			return cmp.Compare(avgA, avgB)
		}
		return 0
	})
	return ret
}

// ByConsistency orders tracks by average race position (asc). Tracks without race
// position come last in their original order.
func ByConsistency(tracks []model.TrackSummary) []model.TrackSummary {
	ret := slices.Clone(tracks)
	slices.SortStableFunc(ret, func(a, b model.TrackSummary) int {
		avgA, okA := a.AvgRacePos.Get()
		avgB, okB := b.AvgRacePos.Get()
		switch {
		case okA && okB:
			return cmp.Compare(avgA, avgB)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
	return ret
}

type winCounter struct {
	tracks []string
	counts map[string]map[int]int
}

func newWinCounter() *winCounter {
	return &winCounter{counts: map[string]map[int]int{}}
}

func (w *winCounter) add(track string, year int) {
	byYear, ok := w.counts[track]
	if !ok {
		byYear = map[int]int{}
		w.counts[track] = byYear
		w.tracks = append(w.tracks, track)
	}
	byYear[year]++
}

// result returns the wins per track (first win first), years ascending
func (w *winCounter) result() []model.TrackWins {
	return lo.Map(w.tracks, func(track string, _ int) model.TrackWins {
		years := lo.Keys(w.counts[track])
		slices.Sort(years)
		byYear := lo.Map(years, func(y int, _ int) model.YearWins {
			return model.YearWins{Year: y, Wins: w.counts[track][y]}
		})
		return model.TrackWins{Track: track, ByYear: byYear}
	})
}
