package util

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/careerstats/log"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/pkg/processing"
	"github.com/mpapenbr/careerstats/pkg/render"
	"github.com/mpapenbr/careerstats/testsupport/basedata"
)

func setConfig(t *testing.T, file, output string) {
	t.Helper()
	oldFile, oldOutput, oldWatch := config.CareerFile, config.OutputFormat, config.Watch
	t.Cleanup(func() {
		config.CareerFile, config.OutputFormat, config.Watch = oldFile, oldOutput, oldWatch
	})
	config.CareerFile, config.OutputFormat, config.Watch = file, output, false
}

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunView(t *testing.T) {
	path := filepath.Join(t.TempDir(), "career.json")
	require.NoError(t, os.WriteFile(path, []byte(basedata.SampleJSON), 0o600))
	setConfig(t, path, "json")

	var out bytes.Buffer
	var seen *processing.Processor
	err := RunView(newTestCmd(&out),
		func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
			seen = p
			assert.Equal(t, render.FormatJSON, r.Format())
			return r.Years([]int{2001})
		})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "Json Career", seen.Document().CareerHeader.CareerName.String())
	assert.JSONEq(t, `[2001]`, out.String())
}

func TestRunView_Errors(t *testing.T) {
	noop := func(ctx context.Context, p *processing.Processor, r *render.Renderer) error {
		return nil
	}
	var out bytes.Buffer

	setConfig(t, "", "table")
	assert.ErrorIs(t, RunView(newTestCmd(&out), noop), ErrNoCareerFile)

	setConfig(t, filepath.Join(t.TempDir(), "missing.json"), "table")
	assert.ErrorIs(t, RunView(newTestCmd(&out), noop), os.ErrNotExist)

	setConfig(t, "career.json", "xml")
	assert.ErrorIs(t, RunView(newTestCmd(&out), noop), render.ErrUnknownFormat)
}

func TestSetupLogger(t *testing.T) {
	old := log.Default()
	t.Cleanup(func() { log.ResetDefault(old) })
	oldLevel, oldFormat, oldFilter := config.LogLevel, config.LogFormat, config.LogFilter
	t.Cleanup(func() {
		config.LogLevel, config.LogFormat, config.LogFilter = oldLevel, oldFormat, oldFilter
	})

	config.LogLevel, config.LogFormat, config.LogFilter = "debug", "json", ""
	var buf bytes.Buffer
	logger, err := SetupLogger(&buf)
	require.NoError(t, err)
	assert.Same(t, logger, log.Default())
	assert.Equal(t, log.DebugLevel, logger.Level())

	config.LogLevel = "nonsense"
	logger, err = SetupLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.Level())

	config.LogFilter = "nonsense:*"
	_, err = SetupLogger(&buf)
	assert.Error(t, err)
}
