package processing

import (
	"context"

	"github.com/mpapenbr/careerstats/log"
	"github.com/mpapenbr/careerstats/pkg/lookup"
	"github.com/mpapenbr/careerstats/pkg/model"
	"github.com/mpapenbr/careerstats/pkg/processing/headtohead"
	"github.com/mpapenbr/careerstats/pkg/processing/leaderboard"
	"github.com/mpapenbr/careerstats/pkg/processing/standings"
	"github.com/mpapenbr/careerstats/pkg/processing/track"
	"github.com/mpapenbr/careerstats/pkg/utils/cache"
	"github.com/mpapenbr/careerstats/pkg/utils/cache/loadercache"
)

// Processor binds one career document to the aggregators. Since the document is
// immutable, derived views are memoized by their selection.
// A different document requires a new Processor.
type Processor struct {
	doc          *model.Document
	log          *log.Logger
	standings    cache.Cache[int, model.SeasonStandings]
	tracks       cache.Cache[string, model.TrackPerformance]
	headToHead   cache.Cache[h2hKey, model.HeadToHead]
	leaderboards cache.Cache[model.Metric, []model.LeaderboardRow]
}

type h2hKey struct {
	year    int
	driverA string
	driverB string
}

type ProcessorOption func(proc *Processor)

func WithDocument(doc *model.Document) ProcessorOption {
	return func(proc *Processor) {
		proc.doc = doc
	}
}

func WithLogger(l *log.Logger) ProcessorOption {
	return func(proc *Processor) {
		proc.log = l
	}
}

func NewProcessor(opts ...ProcessorOption) *Processor {
	ret := &Processor{
		doc: &model.Document{},
		log: log.Default().Named("processor"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.doc == nil {
		ret.doc = &model.Document{}
	}
	ret.initCaches()
	return ret
}

//nolint:whitespace // can't make both editor and linter happy
func (p *Processor) initCaches() {
	cacheLog := p.log.Named("cache")
	p.standings = loadercache.New(
		loadercache.WithLogger[int, model.SeasonStandings](cacheLog),
		loadercache.WithLoader(func(ctx context.Context, year int) (
			*model.SeasonStandings, error,
		) {
			ret := standings.ComputeStandings(lookup.FindYear(p.doc, year))
			return &ret, nil
		}))
	p.tracks = loadercache.New(
		loadercache.WithLogger[string, model.TrackPerformance](cacheLog),
		loadercache.WithLoader(func(ctx context.Context, driver string) (
			*model.TrackPerformance, error,
		) {
			return track.ComputeTrackPerformance(p.doc, driver), nil
		}))
	p.headToHead = loadercache.New(
		loadercache.WithLogger[h2hKey, model.HeadToHead](cacheLog),
		loadercache.WithLoader(func(ctx context.Context, key h2hKey) (
			*model.HeadToHead, error,
		) {
			ret := headtohead.ComputeHeadToHead(p.doc, key.year, key.driverA, key.driverB)
			return &ret, nil
		}))
	p.leaderboards = loadercache.New(
		loadercache.WithLogger[model.Metric, []model.LeaderboardRow](cacheLog),
		loadercache.WithLoader(func(ctx context.Context, metric model.Metric) (
			*[]model.LeaderboardRow, error,
		) {
			ret := leaderboard.ComputeLeaderboard(p.doc.Career.People, metric)
			return &ret, nil
		}))
}

func (p *Processor) Document() *model.Document {
	return p.doc
}

// Standings returns driver and team standings of the selected year.
// An invalid or unknown year yields empty standings.
func (p *Processor) Standings(ctx context.Context, year any) model.SeasonStandings {
	y, ok := lookup.ToYear(year)
	if !ok {
		return standings.ComputeStandings(nil)
	}
	ret, err := p.standings.Get(ctx, y)
	if err != nil {
		p.log.Warn("could not get standings", log.Int("year", y), log.ErrorField(err))
		return standings.ComputeStandings(lookup.FindYear(p.doc, y))
	}
	return *ret
}

// TrackPerformance returns nil if the driver is unknown
func (p *Processor) TrackPerformance(ctx context.Context, driver string) *model.TrackPerformance {
	ret, err := p.tracks.Get(ctx, driver)
	if err != nil {
		p.log.Warn("could not get track performance",
			log.String("driver", driver), log.ErrorField(err))
		return track.ComputeTrackPerformance(p.doc, driver)
	}
	return ret
}

func (p *Processor) HeadToHead(
	ctx context.Context, year any, driverA, driverB string,
) model.HeadToHead {
	y, ok := lookup.ToYear(year)
	if !ok {
		return headtohead.ComputeHeadToHead(p.doc, nil, driverA, driverB)
	}
	ret, err := p.headToHead.Get(ctx, h2hKey{year: y, driverA: driverA, driverB: driverB})
	if err != nil {
		p.log.Warn("could not get head to head", log.Int("year", y), log.ErrorField(err))
		return headtohead.ComputeHeadToHead(p.doc, y, driverA, driverB)
	}
	return *ret
}

func (p *Processor) Leaderboard(ctx context.Context, metric model.Metric) []model.LeaderboardRow {
	ret, err := p.leaderboards.Get(ctx, metric)
	if err != nil {
		p.log.Warn("could not get leaderboard",
			log.String("metric", metric.String()), log.ErrorField(err))
		return leaderboard.ComputeLeaderboard(p.doc.Career.People, metric)
	}
	return *ret
}
