// Package lookup locates seasons and people inside a career document.
// All functions return nil or empty values for unknown keys, they never fail.
package lookup

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/mpapenbr/careerstats/pkg/model"
)

// FindYear returns the season with the given calendar year. The year may be passed
// as number or as text (as delivered by selection lists).
func FindYear(doc *model.Document, year any) *model.SeasonYear {
	if doc == nil {
		return nil
	}
	y, ok := ToYear(year)
	if !ok {
		return nil
	}
	for i := range doc.Career.Years {
		if int(doc.Career.Years[i].CalendarYear) == y {
			return &doc.Career.Years[i]
		}
	}
	return nil
}

// ToYear coerces a selection value into a calendar year
func ToYear(year any) (int, bool) {
	if s, ok := year.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		year = s
	}
	if year == nil {
		return 0, false
	}
	y, err := cast.ToIntE(year)
	if err != nil {
		return 0, false
	}
	return y, true
}

// FindPerson returns the person with exactly the given name
func FindPerson(doc *model.Document, name string) *model.Person {
	if doc == nil || name == "" {
		return nil
	}
	for i := range doc.Career.People {
		if string(doc.Career.People[i].Name) == name {
			return &doc.Career.People[i]
		}
	}
	return nil
}

// CollectDriverNames returns every driver found in the qualifying and race standings
// of the season, in order of first appearance.
func CollectDriverNames(year *model.SeasonYear) []string {
	ret := []string{}
	if year == nil {
		return ret
	}
	seen := map[string]struct{}{}
	add := func(name model.Text) {
		if name == "" {
			return
		}
		if _, ok := seen[string(name)]; !ok {
			seen[string(name)] = struct{}{}
			ret = append(ret, string(name))
		}
	}
	for i := range year.Weekends {
		rs := year.Weekends[i].Results
		if rs == nil {
			continue
		}
		for _, e := range rs.Qualifying {
			add(e.Driver)
		}
		for _, e := range rs.Race {
			add(e.Driver)
		}
	}
	return ret
}

// SortedYears returns the calendar years of the career in ascending order
func SortedYears(doc *model.Document) []int {
	return lo.Map(SortedSeasons(doc), func(y *model.SeasonYear, _ int) int {
		return int(y.CalendarYear)
	})
}

// SortedSeasons returns the seasons ordered by calendar year. The document is not modified.
func SortedSeasons(doc *model.Document) []*model.SeasonYear {
	if doc == nil {
		return []*model.SeasonYear{}
	}
	ret := make([]*model.SeasonYear, len(doc.Career.Years))
	for i := range doc.Career.Years {
		ret[i] = &doc.Career.Years[i]
	}
	slices.SortStableFunc(ret, func(a, b *model.SeasonYear) int {
		return cmp.Compare(a.CalendarYear, b.CalendarYear)
	})
	return ret
}

// Drivers returns the people carrying driver statistics
func Drivers(doc *model.Document) []model.Person {
	if doc == nil {
		return []model.Person{}
	}
	return lo.Filter(doc.Career.People, func(p model.Person, _ int) bool {
		return p.IsDriver()
	})
}
