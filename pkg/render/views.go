package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
)

type CareerInfo struct {
	Name        string `json:"name"`
	Team        string `json:"team"`
	CurrentYear string `json:"currentYear"`
	Driver1     string `json:"driver1"`
	Driver2     string `json:"driver2"`
	Engineer    string `json:"engineer"`
	CrewChief   string `json:"crewChief"`
	Seasons     []int  `json:"seasons"`
	People      int    `json:"people"`
	Drivers     int    `json:"drivers"`
}

func NewCareerInfo(doc *model.Document) CareerInfo {
	h := doc.CareerHeader
	return CareerInfo{
		Name:        h.CareerName.String(),
		Team:        h.TeamInfo.String(),
		CurrentYear: h.CurrentYear.String(),
		Driver1:     h.Driver1.String(),
		Driver2:     h.Driver2.String(),
		Engineer:    h.Engineer.String(),
		CrewChief:   h.CrewChief.String(),
		Seasons:     lookup.SortedYears(doc),
		People:      len(doc.Career.People),
		Drivers:     len(lookup.Drivers(doc)),
	}
}

func (r *Renderer) Info(info CareerInfo) error {
	if r.format != FormatTable {
		return r.encode(info)
	}
	t := r.newTable(info.Name)
	t.AppendRows([]table.Row{
		{"Team", info.Team},
		{"Current year", info.CurrentYear},
		{"Driver 1", info.Driver1},
		{"Driver 2", info.Driver2},
		{"Engineer", info.Engineer},
		{"Crew chief", info.CrewChief},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Seasons", fmt.Sprint(info.Seasons)},
		{"People", info.People},
		{"Drivers", info.Drivers},
	})
	t.Render()
	return nil
}

func (r *Renderer) Years(years []int) error {
	if r.format != FormatTable {
		return r.encode(years)
	}
	for _, y := range years {
		if err := r.println(y); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) Drivers(year int, names []string) error {
	if r.format != FormatTable {
		return r.encode(struct {
			Year    int      `json:"year"`
			Drivers []string `json:"drivers"`
		}{year, names})
	}
	t := r.newTable(fmt.Sprintf("Drivers %d", year))
	t.AppendHeader(table.Row{"#", "Driver"})
	for i, name := range names {
		t.AppendRow(table.Row{i + 1, name})
	}
	t.Render()
	return nil
}

// Standings renders the driver or team standings. With series the running totals per
// round are appended.
func (r *Renderer) Standings(title string, st model.Standings, series bool) error {
	if r.format != FormatTable {
		if !series {
			st.Series = nil
		}
		return r.encode(st)
	}
	t := r.newTable(title)
	t.AppendHeader(table.Row{"Pos", "Name", "Team", "Points"})
	for i := range st.Table {
		row := &st.Table[i]
		t.AppendRow(table.Row{i + 1, row.Name, FormatTeam(row.Team), row.Score.String()})
	}
	t.Render()
	if !series || len(st.Series) == 0 {
		return nil
	}

	s := r.newTable(title + " by round")
	header := table.Row{"Round", "Track"}
	for i := range st.Table {
		header = append(header, st.Table[i].Name)
	}
	s.AppendHeader(header)
	for _, p := range st.Series {
		row := table.Row{p.Round, p.Track}
		for i := range st.Table {
			row = append(row, p.Totals[st.Table[i].Name].String())
		}
		s.AppendRow(row)
	}
	s.Render()
	return nil
}

// Results renders the weekends of a season. Weekends without results are marked
// as not started.
func (r *Renderer) Results(season *model.SeasonYear) error {
	if r.format != FormatTable {
		return r.encode(season)
	}
	for i := range season.Weekends {
		w := &season.Weekends[i]
		title := fmt.Sprintf("Round %d: %s", i+1, w.TrackName)
		if !w.HasResults() {
			if err := r.println(title + " - " + notStarted); err != nil {
				return err
			}
			continue
		}
		r.qualifying(title, w.Results.Qualifying)
		r.race(title, w.Results.Race)
		r.teamRace(title, w.Results.TeamRace)
	}
	return nil
}

func (r *Renderer) qualifying(title string, entries []model.QualiEntry) {
	if len(entries) == 0 {
		return
	}
	t := r.newTable(title + " - Qualifying")
	t.AppendHeader(table.Row{"Pos", "Driver", "Fastest Lap"})
	for i := range entries {
		e := &entries[i]
		t.AppendRow(table.Row{
			FormatPosition(int(e.Position)), e.Driver, FormatLapTime(int(e.FastestLapTime)),
		})
	}
	t.Render()
}

func (r *Renderer) race(title string, entries []model.RaceEntry) {
	if len(entries) == 0 {
		return
	}
	t := r.newTable(title + " - Race")
	t.AppendHeader(table.Row{
		"Pos", "Driver", "Team", "Laps", "Pits", "Race Time", "Fastest Lap", "Points",
	})
	for i := range entries {
		e := &entries[i]
		t.AppendRow(table.Row{
			FormatPosition(int(e.Position)),
			e.Driver,
			e.Team,
			e.Laps,
			e.Pits,
			RaceTime(e),
			FastestLap(int(e.FastestLapTime), e.FastestLap),
			e.Score.String(),
		})
	}
	t.Render()
}

func (r *Renderer) teamRace(title string, entries []model.TeamEntry) {
	if len(entries) == 0 {
		return
	}
	t := r.newTable(title + " - Teams")
	t.AppendHeader(table.Row{"Pos", "Team", "Points", "Fastest Lap"})
	for i := range entries {
		e := &entries[i]
		fl := ""
		if e.FastestLap {
			fl = fastestMarker
		}
		t.AppendRow(table.Row{FormatPosition(int(e.Position)), e.Team, e.Score.String(), fl})
	}
	t.Render()
}

// Tracks renders the track summaries in the given order followed by the wins per track
func (r *Renderer) Tracks(tp *model.TrackPerformance, tracks []model.TrackSummary) error {
	if r.format != FormatTable {
		view := *tp
		view.Tracks = tracks
		return r.encode(view)
	}
	t := r.newTable("Tracks " + tp.Driver)
	t.AppendHeader(table.Row{"Track", "Results", "Points", "Avg Race", "Avg Quali"})
	for i := range tracks {
		ts := &tracks[i]
		t.AppendRow(table.Row{
			ts.Track,
			ts.Count,
			ts.TotalPoints.String(),
			FormatAverage(ts.AvgRacePos),
			FormatAverage(ts.AvgQualiPos),
		})
	}
	t.Render()

	w := r.newTable(fmt.Sprintf("Wins %s (%d)", tp.Driver, tp.TotalWins()))
	w.AppendHeader(table.Row{"Track", "Year", "Wins"})
	for _, tw := range tp.Wins {
		for _, yw := range tw.ByYear {
			w.AppendRow(table.Row{tw.Track, yw.Year, yw.Wins})
		}
	}
	w.Render()
	return nil
}

func (r *Renderer) HeadToHead(h *model.HeadToHead) error {
	if r.format != FormatTable {
		return r.encode(h)
	}
	t := r.newTable(fmt.Sprintf("%s vs %s %d", h.DriverA, h.DriverB, h.Year))
	t.AppendHeader(table.Row{"", h.DriverA, h.DriverB, "Rounds"})
	t.AppendRow(table.Row{"Qualifying", h.QualiWinsA, h.QualiWinsB, h.QualiRounds})
	t.AppendRow(table.Row{"Race", h.RaceWinsA, h.RaceWinsB, h.RaceRounds})
	t.Render()
	if !h.HasData() {
		return r.println("no comparable rounds")
	}

	d := r.newTable("")
	d.AppendHeader(table.Row{
		"Round", "Track",
		"Quali " + h.DriverA, "Quali " + h.DriverB,
		"Race " + h.DriverA, "Race " + h.DriverB,
	})
	for _, round := range h.Rounds {
		d.AppendRow(table.Row{
			round.Round, round.Track,
			FormatPosition(round.QualiA), FormatPosition(round.QualiB),
			FormatPosition(round.RaceA), FormatPosition(round.RaceB),
		})
	}
	d.Render()
	return nil
}

func (r *Renderer) Leaderboard(metric model.Metric, rows []model.LeaderboardRow) error {
	if r.format != FormatTable {
		return r.encode(struct {
			Metric string                 `json:"metric"`
			Rows   []model.LeaderboardRow `json:"rows"`
		}{metric.String(), rows})
	}
	t := r.newTable(metric.String())
	t.AppendHeader(table.Row{"Pos", "Name", metric.String()})
	for i := range rows {
		row := &rows[i]
		t.AppendRow(table.Row{i + 1, markDeceased(row.Name, row.Deceased), row.Value.String()})
	}
	t.Render()
	return nil
}

// Values renders query results, table output prints them as indented json
func (r *Renderer) Values(values []any, format func(v any) string) error {
	if r.format != FormatTable {
		return r.encode(values)
	}
	for _, v := range values {
		if err := r.println(format(v)); err != nil {
			return err
		}
	}
	return nil
}
