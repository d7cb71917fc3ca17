package util

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/careerstats/log"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/pkg/loader"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/processing"
	"github.com/mpapenbr/careerstats/pkg/render"
)

var ErrNoCareerFile = errors.New("no career file given, use --file")

// ViewFunc renders one view of the career document
type ViewFunc func(ctx context.Context, p *processing.Processor, r *render.Renderer) error

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger from the log config values and makes it the default
func SetupLogger(w io.Writer) (*log.Logger, error) {
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	if config.LogFilter != "" {
		filter, err := log.WithFilter(config.LogFilter)
		if err != nil {
			return nil, fmt.Errorf("log filter %q: %w", config.LogFilter, err)
		}
		opts = append(opts, filter)
	}
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(w, parseLogLevel(config.LogLevel, log.WarnLevel), opts...)
	default:
		logger = log.DevLogger(w, parseLogLevel(config.LogLevel, log.WarnLevel), opts...)
	}
	log.ResetDefault(logger)
	return logger, nil
}

func NewDocumentCache(ctx context.Context) *loader.DocumentCache {
	logger := log.GetFromContext(ctx).Named("loader")
	expiration, err := time.ParseDuration(config.CacheExpiration)
	if err != nil {
		logger.Warn("Invalid cache expiration. Documents are kept until changed",
			log.String("value", config.CacheExpiration), log.ErrorField(err))
		expiration = 0
	}
	return loader.NewDocumentCache(
		loader.WithExpiration(expiration),
		loader.WithLogger(logger))
}

func NewRenderer(w io.Writer) (*render.Renderer, error) {
	format, err := render.ParseFormat(config.OutputFormat)
	if err != nil {
		return nil, err
	}
	return render.NewRenderer(w, render.WithFormat(format)), nil
}

func newProcessor(ctx context.Context, doc *model.Document) *processing.Processor {
	return processing.NewProcessor(
		processing.WithDocument(doc),
		processing.WithLogger(log.GetFromContext(ctx).Named("processor")))
}

// RunView loads the career file and renders the view. In watch mode the view is
// rendered again on every change of the file until the process is interrupted.
func RunView(cmd *cobra.Command, view ViewFunc) error {
	if config.CareerFile == "" {
		return ErrNoCareerFile
	}
	ctx := cmd.Context()
	logger := log.GetFromContext(ctx)
	r, err := NewRenderer(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	dc := NewDocumentCache(ctx)
	doc, err := dc.Get(ctx, config.CareerFile)
	if err != nil {
		return err
	}
	if err := view(ctx, newProcessor(ctx, doc), r); err != nil {
		return err
	}
	if !config.Watch {
		return nil
	}

	watchCtx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()
	return dc.Watch(watchCtx, config.CareerFile, func(doc *model.Document) {
		logger.Info("career file changed", log.String("file", config.CareerFile))
		if err := view(watchCtx, newProcessor(watchCtx, doc), r); err != nil {
			logger.Error("could not render view", log.ErrorField(err))
		}
	})
}
