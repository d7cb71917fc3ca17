package leaderboard

import (
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/careerstats/pkg/model"
)

// ComputeLeaderboard ranks people by one career counter. People without a positive
// value are not ranked. Equal values keep the roster order.
func ComputeLeaderboard(people []model.Person, metric model.Metric) []model.LeaderboardRow {
	rows := lo.Map(people, func(p model.Person, _ int) model.LeaderboardRow {
		return model.LeaderboardRow{
			Name:     string(p.Name),
			Value:    metricValue(p.States, metric),
			Deceased: isDeceased(p.States),
		}
	})
	rows = lo.Filter(rows, func(r model.LeaderboardRow, _ int) bool {
		return r.Value.IsPositive()
	})
	slices.SortStableFunc(rows, func(a, b model.LeaderboardRow) int {
		return b.Value.Cmp(a.Value)
	})
	return rows
}

// metricValue reads the counter from the first DriverStats record, zero if there is none
func metricValue(states model.StateList, metric model.Metric) decimal.Decimal {
	for _, s := range states {
		if ds, ok := s.(model.DriverStats); ok {
			return ds.Value(metric)
		}
	}
	return decimal.Zero
}

func isDeceased(states model.StateList) bool {
	for _, s := range states {
		if _, ok := s.(model.DeceasedStatus); ok {
			return true
		}
	}
	return false
}
