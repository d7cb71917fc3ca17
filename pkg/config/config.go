package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	CareerFile      string // path to the career save file
	OutputFormat    string // table, json or yaml
	Watch           bool   // re-render the view whenever the save file changes
	LogLevel        string // sets the log level (zap log level values)
	LogFormat       string // text vs json
	LogFilter       string // zapfilter rules, empty means no filtering
	CacheExpiration string // duration after which cached documents and views are reloaded
)

// Config holds the configuration values which are used by the view commands
type Config struct {
	Year     string // selected calendar year, kept as text and coerced by the lookups
	Driver   string // selected driver
	Against  string // second driver for head-to-head
	Metric   string // leaderboard metric
	Order    string // track ordering (success, consistency)
	Teams    bool   // show team standings instead of driver standings
	Detailed bool   // include per round/per result details
}
