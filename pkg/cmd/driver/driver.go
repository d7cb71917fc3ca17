package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/careerstats/pkg/cmd/util"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/pkg/processing"
	"github.com/mpapenbr/careerstats/pkg/processing/track"
	"github.com/mpapenbr/careerstats/pkg/render"
)

var (
	ErrUnknownDriver = errors.New("unknown driver")
	ErrUnknownOrder  = errors.New("unknown order")
)

var appConfig config.Config // holds processed config values

func NewDriverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "driver",
		Short: "commands to analyze a single driver",
	}
	cmd.PersistentFlags().StringVarP(&appConfig.Driver,
		"driver",
		"d",
		"",
		"name of the driver")

	cmd.AddCommand(NewTracksCmd())
	cmd.AddCommand(NewHeadToHeadCmd())
	return cmd
}

func NewTracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "shows the results of the driver per track",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd, showTracks)
		},
	}
	cmd.Flags().StringVar(&appConfig.Order,
		"order",
		"",
		"orders the tracks (success, consistency), default is order of appearance")
	return cmd
}

func showTracks(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
	tp := p.TrackPerformance(ctx, appConfig.Driver)
	if tp == nil {
		return fmt.Errorf("%q: %w", appConfig.Driver, ErrUnknownDriver)
	}
	switch appConfig.Order {
	case "":
		return r.Tracks(tp, tp.Tracks)
	case "success":
		return r.Tracks(tp, track.BySuccess(tp.Tracks))
	case "consistency":
		return r.Tracks(tp, track.ByConsistency(tp.Tracks))
	default:
		return fmt.Errorf("%q: %w", appConfig.Order, ErrUnknownOrder)
	}
}

func NewHeadToHeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "h2h",
		Short: "compares qualifying and race positions of two drivers in a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd,
				func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
					h := p.HeadToHead(ctx, appConfig.Year, appConfig.Driver, appConfig.Against)
					return r.HeadToHead(&h)
				})
		},
	}
	cmd.Flags().StringVarP(&appConfig.Year,
		"year",
		"y",
		"",
		"calendar year of the season")
	cmd.Flags().StringVar(&appConfig.Against,
		"against",
		"",
		"name of the driver to compare with")
	return cmd
}
