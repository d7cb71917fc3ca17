package headtohead

import (
	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
)

// roundResult holds the results of one driver in one round of the season
type roundResult struct {
	round int
	track string
	quali *model.QualiEntry
	race  *model.RaceEntry
}

// ComputeHeadToHead counts per round which of the two drivers qualified and finished
// ahead of the other. Rounds where the positions are equal count for neither driver.
// An unknown year, a missing driver or the same driver twice yields an empty tally.
func ComputeHeadToHead(doc *model.Document, year any, driverA, driverB string) model.HeadToHead {
	ret := model.HeadToHead{
		DriverA: driverA,
		DriverB: driverB,
		Rounds:  []model.HeadToHeadRound{},
	}
	if driverA == "" || driverB == "" || driverA == driverB {
		return ret
	}
	season := lookup.FindYear(doc, year)
	if season == nil {
		return ret
	}
	ret.Year = int(season.CalendarYear)

	roundsB := map[int]roundResult{}
	for _, r := range driverRounds(season, driverB) {
		roundsB[r.round] = r
	}
	for _, a := range driverRounds(season, driverA) {
		b, ok := roundsB[a.round]
		if !ok {
			continue
		}
		item := model.HeadToHeadRound{Round: a.round, Track: a.track}
		if a.quali != nil && b.quali != nil {
			item.QualiA, item.QualiB = int(a.quali.Position), int(b.quali.Position)
			if winA, winB, ok := compare(item.QualiA, item.QualiB); ok {
				ret.QualiRounds++
				ret.QualiWinsA += winA
				ret.QualiWinsB += winB
			}
		}
		if a.race != nil && b.race != nil {
			item.RaceA, item.RaceB = int(a.race.Position), int(b.race.Position)
			if winA, winB, ok := compare(item.RaceA, item.RaceB); ok {
				ret.RaceRounds++
				ret.RaceWinsA += winA
				ret.RaceWinsB += winB
			}
		}
		ret.Rounds = append(ret.Rounds, item)
	}
	return ret
}

// compare returns the wins of both sides for one comparison.
// ok is false if one of the positions is not valid.
func compare(posA, posB int) (winA, winB int, ok bool) {
	if posA <= 0 || posB <= 0 {
		return 0, 0, false
	}
	switch {
	case posA < posB:
		return 1, 0, true
	case posB < posA:
		return 0, 1, true
	default:
		return 0, 0, true
	}
}

// driverRounds collects the results of driver per round (1-based weekend index)
func driverRounds(season *model.SeasonYear, driver string) []roundResult {
	ret := []roundResult{}
	for i := range season.Weekends {
		w := &season.Weekends[i]
		quali := w.QualiEntry(driver)
		race := w.RaceEntry(driver)
		if quali == nil && race == nil {
			continue
		}
		ret = append(ret, roundResult{round: i + 1, track: w.TrackName, quali: quali, race: race})
	}
	return ret
}
