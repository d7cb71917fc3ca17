package basedata

import (
	"github.com/mpapenbr/careerstats/pkg/model"
)

// helpers to build career documents in tests

func Quali(driver string, pos int) model.QualiEntry {
	return model.QualiEntry{
		Driver:         model.Text(driver),
		Position:       model.Int(pos),
		FastestLapTime: model.Int(80000 + pos*100),
	}
}

func Race(driver, team string, pos, score int) model.RaceEntry {
	return model.RaceEntry{
		Driver:         model.Text(driver),
		Team:           model.Text(team),
		Position:       model.Int(pos),
		Laps:           50,
		LapTime:        model.Int(4000000 + pos*1000),
		FastestLapTime: model.Int(81000 + pos*100),
		Score:          model.NewPoints(int64(score)),
	}
}

func TeamRace(team string, pos, score int) model.TeamEntry {
	return model.TeamEntry{
		Team:     model.Text(team),
		Position: model.Int(pos),
		Score:    model.NewPoints(int64(score)),
	}
}

func Results(quali []model.QualiEntry, race []model.RaceEntry, team []model.TeamEntry,
) *model.ResultSet {
	return &model.ResultSet{Qualifying: quali, Race: race, TeamRace: team}
}

func Weekend(track string, rs *model.ResultSet) model.Weekend {
	return model.Weekend{TrackName: track, Results: rs}
}

func Season(year int, weekends ...model.Weekend) model.SeasonYear {
	return model.SeasonYear{CalendarYear: model.Int(year), Weekends: weekends}
}

func Driver(name string, stats model.DriverStats, extra ...model.State) model.Person {
	states := model.StateList{stats}
	states = append(states, extra...)
	return model.Person{Name: model.Text(name), States: states}
}

func Document(years []model.SeasonYear, people ...model.Person) *model.Document {
	return &model.Document{
		CareerHeader: model.CareerHeader{CareerName: "Test Career", CurrentYear: "2002"},
		Career:       model.Career{Years: years, People: people},
	}
}

// SampleDocument returns a career with two seasons (2002 listed first).
//
// 2001: Alpha (X 10, Y 8, Z 0 DNF), Beta (Y 12, X 5, Z 0 moved to Green), Gamma not started
// 2002: Alpha (Y 10, X 4), Delta (X 10, Y 6)
func SampleDocument() *model.Document {
	dnf := Race("Z", "Red", 3, 0)
	dnf.LapTime = 0
	s2001 := Season(2001,
		Weekend("Alpha", Results(
			[]model.QualiEntry{Quali("X", 1), Quali("Y", 2), Quali("Z", 3)},
			[]model.RaceEntry{Race("X", "Red", 1, 10), Race("Y", "Blue", 2, 8), dnf},
			[]model.TeamEntry{TeamRace("Red", 1, 10), TeamRace("Blue", 2, 8)},
		)),
		Weekend("Beta", Results(
			[]model.QualiEntry{Quali("Y", 1), Quali("X", 2), Quali("Z", 3)},
			[]model.RaceEntry{Race("Y", "Blue", 1, 12), Race("X", "Red", 2, 5), Race("Z", "Green", 3, 0)},
			[]model.TeamEntry{TeamRace("Blue", 1, 12), TeamRace("Red", 2, 5), TeamRace("Green", 3, 0)},
		)),
		Weekend("Gamma", nil),
	)
	s2002 := Season(2002,
		Weekend("Alpha", Results(
			[]model.QualiEntry{Quali("Y", 1), Quali("X", 2)},
			[]model.RaceEntry{Race("Y", "Blue", 1, 10), Race("X", "Red", 3, 4)},
			[]model.TeamEntry{TeamRace("Blue", 1, 10), TeamRace("Red", 2, 4)},
		)),
		Weekend("Delta", Results(
			[]model.QualiEntry{Quali("X", 1), Quali("Y", 2)},
			[]model.RaceEntry{Race("X", "Red", 1, 10), Race("Y", "Blue", 2, 6)},
			[]model.TeamEntry{TeamRace("Red", 1, 10), TeamRace("Blue", 2, 6)},
		)),
	)
	return Document(
		[]model.SeasonYear{s2002, s2001},
		Driver("X", model.DriverStats{FirstPlaces: 5, Podiums: 8, CareerPoints: model.NewPoints(29)}),
		Driver("Y", model.DriverStats{FirstPlaces: 3, Podiums: 8, CareerPoints: model.NewPoints(36), SeasonsWon: 1},
			model.DeceasedStatus{}),
		Driver("Z", model.DriverStats{RacesCompleted: 1}),
		model.Person{Name: "Crew Chief", States: model.StateList{model.UnknownState{Tag: "Game.Staff"}}},
	)
}

// SampleJSON is a small save file in the format written by the game
const SampleJSON = `{
  "CareerHeader": {
    "CareerName": "Json Career", "TeamInfo": "Red", "CurrentYear": 2002,
    "Driver1": "X", "Driver2": "Y", "Engineer": "E", "CrewChief": "C"
  },
  "Career": {
    "Years": [
      {
        "CalendarYear": 2001,
        "Weekends": [
          {
            "TrackData": "Alpha",
            "Results": {
              "DriversQualiStanding": [
                {"Driver": "X", "Position": 1, "FastestLapTime": 80100},
                {"Driver": "Y", "Position": 2, "FastestLapTime": 80200}
              ],
              "DriversRaceStanding": [
                {"Driver": "X", "Team": "Red", "Position": 1, "Laps": 50, "Pits": 1,
                 "LapTime": 4001000, "FastestLapTime": 81100, "FastestLap": true, "Score": 10},
                {"Driver": "Y", "Team": "Blue", "Position": 2, "Laps": 49, "Pits": 2,
                 "LapTime": 0, "FastestLapTime": 81200, "FastestLap": false, "Score": 8}
              ],
              "TeamsRaceStanding": [
                {"Team": "Red", "Position": 1, "Score": 10, "FastestLap": true},
                {"Team": "Blue", "Position": 2, "Score": 8, "FastestLap": false}
              ]
            }
          },
          {
            "TrackData": {"Name": "Beta"},
            "Results": null
          }
        ]
      }
    ],
    "People": [
      {"Name": "X", "States": [
        {"$type": "Game.DriverStats, Assembly-CSharp", "FirstPlaces": 1, "Podiums": 1, "CareerPoints": 10}
      ]},
      {"Name": "Y", "States": [
        {"$type": "Game.DeadDriver, Assembly-CSharp"},
        {"$type": "Game.DriverStats, Assembly-CSharp", "Podiums": 1, "CareerPoints": 8}
      ]}
    ]
  }
}`
