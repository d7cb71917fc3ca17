package leaderboard

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/careerstats/pkg/cmd/util"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/processing"
	"github.com/mpapenbr/careerstats/pkg/render"
)

var appConfig config.Config // holds processed config values

func NewLeaderboardCmd() *cobra.Command {
	names := lo.Map(model.AllMetrics(), func(m model.Metric, _ int) string {
		return m.String()
	})
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "ranks all people by a career metric",
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := model.ParseMetric(appConfig.Metric)
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, names)
			}
			return util.RunView(cmd,
				func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
					return r.Leaderboard(metric, p.Leaderboard(ctx, metric))
				})
		},
	}
	cmd.Flags().StringVarP(&appConfig.Metric,
		"metric",
		"m",
		model.MetricWins.String(),
		fmt.Sprintf("metric to rank by %v", names))
	return cmd
}
