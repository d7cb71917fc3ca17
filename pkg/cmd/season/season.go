package season

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/careerstats/pkg/cmd/util"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/processing"
	"github.com/mpapenbr/careerstats/pkg/render"
)

var ErrUnknownYear = errors.New("unknown year")

var appConfig config.Config // holds processed config values

func NewSeasonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "season",
		Short: "commands to inspect the seasons of the career",
	}
	cmd.PersistentFlags().StringVarP(&appConfig.Year,
		"year",
		"y",
		"",
		"calendar year of the season")

	cmd.AddCommand(NewYearsCmd())
	cmd.AddCommand(NewDriversCmd())
	cmd.AddCommand(NewStandingsCmd())
	cmd.AddCommand(NewResultsCmd())
	return cmd
}

func NewYearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "lists the calendar years of the career",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd,
				func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
					return r.Years(lookup.SortedYears(p.Document()))
				})
		},
	}
}

func NewDriversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "lists the drivers who took part in a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd,
				func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
					season, err := selectSeason(p.Document())
					if err != nil {
						return err
					}
					return r.Drivers(int(season.CalendarYear), lookup.CollectDriverNames(season))
				})
		},
	}
}

func NewStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "shows the driver or team standings of a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd, showStandings)
		},
	}
	cmd.Flags().BoolVar(&appConfig.Teams,
		"teams",
		false,
		"show the team standings instead of the driver standings")
	cmd.Flags().BoolVar(&appConfig.Detailed,
		"by-round",
		false,
		"include the running totals after each round")
	return cmd
}

func showStandings(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
	season, err := selectSeason(p.Document())
	if err != nil {
		return err
	}
	year := int(season.CalendarYear)
	st := p.Standings(ctx, year)
	if appConfig.Teams {
		return r.Standings(fmt.Sprintf("Teams %d", year), st.Teams, appConfig.Detailed)
	}
	return r.Standings(fmt.Sprintf("Drivers %d", year), st.Drivers, appConfig.Detailed)
}

func NewResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "shows the qualifying, race and team results of each weekend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd,
				func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
					season, err := selectSeason(p.Document())
					if err != nil {
						return err
					}
					return r.Results(season)
				})
		},
	}
}

func selectSeason(doc *model.Document) (*model.SeasonYear, error) {
	season := lookup.FindYear(doc, appConfig.Year)
	if season == nil {
		return nil, fmt.Errorf("%q (available: %v): %w",
			appConfig.Year, lookup.SortedYears(doc), ErrUnknownYear)
	}
	return season, nil
}
