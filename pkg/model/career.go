package model

import (
	"encoding/json"
)

const UnknownTrack = "Unknown Track"

// Document is the parsed career save file. It is never modified once loaded.
type Document struct {
	CareerHeader CareerHeader `json:"CareerHeader"`
	Career       Career       `json:"Career"`
}

type CareerHeader struct {
	CareerName  Text `json:"CareerName"`
	TeamInfo    Text `json:"TeamInfo"`
	CurrentYear Text `json:"CurrentYear"`
	Driver1     Text `json:"Driver1"`
	Driver2     Text `json:"Driver2"`
	Engineer    Text `json:"Engineer"`
	CrewChief   Text `json:"CrewChief"`
}

type Career struct {
	// order as provided by the save file, not necessarily sorted
	Years  List[SeasonYear] `json:"Years"`
	People List[Person]     `json:"People"`
}

type SeasonYear struct {
	CalendarYear Int `json:"CalendarYear"`
	// calendar order, this is the x-axis of cumulative series
	Weekends List[Weekend] `json:"Weekends"`
}

type Weekend struct {
	TrackName string
	Results   *ResultSet // nil if the weekend was not simulated yet
}

type ResultSet struct {
	Qualifying List[QualiEntry] `json:"DriversQualiStanding"`
	Race       List[RaceEntry]  `json:"DriversRaceStanding"`
	TeamRace   List[TeamEntry]  `json:"TeamsRaceStanding"`
}

type QualiEntry struct {
	Driver         Text `json:"Driver"`
	Position       Int  `json:"Position"`
	FastestLapTime Int  `json:"FastestLapTime"` // ms
}

type RaceEntry struct {
	Driver         Text   `json:"Driver"`
	Team           Text   `json:"Team"`
	Position       Int    `json:"Position"`
	Laps           Int    `json:"Laps"`
	Pits           Int    `json:"Pits"`
	LapTime        Int    `json:"LapTime"`        // total race time in ms, 0 means DNF
	FastestLapTime Int    `json:"FastestLapTime"` // ms
	FastestLap     bool   `json:"FastestLap"`
	Score          Points `json:"Score"`
}

type TeamEntry struct {
	Team       Text   `json:"Team"`
	Position   Int    `json:"Position"`
	Score      Points `json:"Score"`
	FastestLap bool   `json:"FastestLap"`
}

type rawWeekend struct {
	TrackData json.RawMessage `json:"TrackData"`
	Results   json.RawMessage `json:"Results"`
}

// UnmarshalJSON normalizes the track which is stored either as plain name or as
// object carrying the name. Results which are not an object are treated as missing.
func (w *Weekend) UnmarshalJSON(data []byte) error {
	var raw rawWeekend
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	w.TrackName = trackName(raw.TrackData)
	w.Results = nil
	if len(raw.Results) > 0 && string(raw.Results) != "null" {
		var rs ResultSet
		if err := json.Unmarshal(raw.Results, &rs); err == nil {
			w.Results = &rs
		}
	}
	return nil
}

func trackName(data json.RawMessage) string {
	if len(data) == 0 {
		return UnknownTrack
	}
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return name
	}
	var obj struct {
		Name Text `json:"Name"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Name != "" {
		return string(obj.Name)
	}
	return UnknownTrack
}

// HasResults reports whether any standing was recorded for this weekend
func (w *Weekend) HasResults() bool {
	if w.Results == nil {
		return false
	}
	return len(w.Results.Qualifying) > 0 || len(w.Results.Race) > 0 ||
		len(w.Results.TeamRace) > 0
}

// QualiEntry returns the first qualifying entry of driver
func (w *Weekend) QualiEntry(driver string) *QualiEntry {
	if w.Results == nil {
		return nil
	}
	for i := range w.Results.Qualifying {
		if string(w.Results.Qualifying[i].Driver) == driver {
			return &w.Results.Qualifying[i]
		}
	}
	return nil
}

// RaceEntry returns the first race entry of driver
func (w *Weekend) RaceEntry(driver string) *RaceEntry {
	if w.Results == nil {
		return nil
	}
	for i := range w.Results.Race {
		if string(w.Results.Race[i].Driver) == driver {
			return &w.Results.Race[i]
		}
	}
	return nil
}

func (e *RaceEntry) DNF() bool { return e.LapTime == 0 }
