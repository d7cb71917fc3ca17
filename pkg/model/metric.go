package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Metric selects one career counter of DriverStats
type Metric int

const (
	MetricWins Metric = iota
	MetricPodiums
	MetricChampionships
	MetricCareerPoints
	MetricFastestLaps
	MetricPolePositions
	MetricRacesCompleted
	MetricSeasonsCompleted
)

var ErrUnknownMetric = errors.New("unknown metric")

var metricNames = []struct {
	display string
	field   string
}{
	MetricWins:             {"Wins", "FirstPlaces"},
	MetricPodiums:          {"Podiums", "Podiums"},
	MetricChampionships:    {"Championships", "SeasonsWon"},
	MetricCareerPoints:     {"Career Points", "CareerPoints"},
	MetricFastestLaps:      {"Fastest Laps", "GoldenLaps"},
	MetricPolePositions:    {"Pole Positions", "PolePositions"},
	MetricRacesCompleted:   {"Races Completed", "RacesCompleted"},
	MetricSeasonsCompleted: {"Seasons Completed", "SeasonsCompleted"},
}

// AllMetrics returns the metrics in display order
func AllMetrics() []Metric {
	ret := make([]Metric, len(metricNames))
	for i := range metricNames {
		ret[i] = Metric(i)
	}
	return ret
}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return "unknown"
	}
	return metricNames[m].display
}

// Field returns the name of the DriverStats counter backing this metric
func (m Metric) Field() string {
	if m < 0 || int(m) >= len(metricNames) {
		return ""
	}
	return metricNames[m].field
}

// ParseMetric accepts display names ("Career Points"), field names ("CareerPoints")
// and kebab case ("career-points"), ignoring case.
func ParseMetric(s string) (Metric, error) {
	norm := func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(v)
	}
	key := norm(s)
	for i, n := range metricNames {
		if key == norm(n.display) || key == norm(n.field) {
			return Metric(i), nil
		}
	}
	return 0, ErrUnknownMetric
}

// Value returns the counter selected by m
func (ds DriverStats) Value(m Metric) decimal.Decimal {
	switch m {
	case MetricWins:
		return decimal.NewFromInt(int64(ds.FirstPlaces))
	case MetricPodiums:
		return decimal.NewFromInt(int64(ds.Podiums))
	case MetricChampionships:
		return decimal.NewFromInt(int64(ds.SeasonsWon))
	case MetricCareerPoints:
		return ds.CareerPoints.Decimal
	case MetricFastestLaps:
		return decimal.NewFromInt(int64(ds.GoldenLaps))
	case MetricPolePositions:
		return decimal.NewFromInt(int64(ds.PolePositions))
	case MetricRacesCompleted:
		return decimal.NewFromInt(int64(ds.RacesCompleted))
	case MetricSeasonsCompleted:
		return decimal.NewFromInt(int64(ds.SeasonsCompleted))
	default:
		return decimal.Zero
	}
}
