package info

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/careerstats/pkg/cmd/util"
	"github.com/mpapenbr/careerstats/pkg/processing"
	"github.com/mpapenbr/careerstats/pkg/render"
)

func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "shows the career header, the seasons and the roster size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return util.RunView(cmd, showInfo)
		},
	}
	return cmd
}

func showInfo(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
	return r.Info(render.NewCareerInfo(p.Document()))
}
