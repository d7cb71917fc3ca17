package render

import (
	"fmt"
	"strconv"

	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/careerstats/pkg/model"
)

const (
	dnf            = "DNF"
	notStarted     = "not started"
	deceasedMarker = "†"
	fastestMarker  = "FL"
	noValue        = "-"
)

// FormatLapTime converts milliseconds to m:ss.mmm
func FormatLapTime(ms int) string {
	if ms <= 0 {
		return noValue
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000
	return fmt.Sprintf("%d:%02d.%03d", minutes, seconds, millis)
}

// RaceTime returns the total race time, DNF if the driver did not finish
func RaceTime(e *model.RaceEntry) string {
	if e.DNF() {
		return dnf
	}
	return FormatLapTime(int(e.LapTime))
}

// FastestLap returns the fastest lap time, marked if it was the fastest of the race
func FastestLap(ms int, fastest bool) string {
	if fastest {
		return FormatLapTime(ms) + " " + fastestMarker
	}
	return FormatLapTime(ms)
}

func FormatPosition(pos int) string {
	if pos <= 0 {
		return noValue
	}
	return strconv.Itoa(pos)
}

func FormatAverage(v null.Val[float64]) string {
	if avg, ok := v.Get(); ok {
		return strconv.FormatFloat(avg, 'f', 2, 64)
	}
	return noValue
}

func FormatTeam(v null.Val[string]) string {
	return v.GetOr(noValue)
}

func markDeceased(name string, deceased bool) string {
	if deceased {
		return name + " " + deceasedMarker
	}
	return name
}
