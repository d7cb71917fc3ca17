package query

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/careerstats/log"
	"github.com/mpapenbr/careerstats/pkg/cmd/util"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/pkg/query"
)

const queryExample = `  careerstats query '$.Career.Years[*].CalendarYear'
  careerstats query '$.Career.People[?(@.Name == "X")].States'`

func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query jsonpath",
		Short:   "evaluates a JSONPath expression against the raw career file",
		Example: queryExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0])
		},
	}
	return cmd
}

func runQuery(cmd *cobra.Command, path string) error {
	logger := log.GetFromContext(cmd.Context()).Named("query")
	if config.CareerFile == "" {
		return util.ErrNoCareerFile
	}
	raw, err := os.ReadFile(config.CareerFile)
	if err != nil {
		return err
	}
	logger.Debug("evaluating", log.String("path", path), log.Int("size", len(raw)))
	res, err := query.Eval(raw, path)
	if err != nil {
		return err
	}
	r, err := util.NewRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return r.Values(res, query.Format)
}
