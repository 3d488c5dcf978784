package cfg

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// File inputs and outputs
	OutputPath  string `long:"output" env:"OUTPUT_PATH" default:"docs/data/productions.json" description:"Path to the productions catalog"`
	SourcesPath string `long:"sources" env:"SOURCES_PATH" default:"data/sources.yaml" description:"Path to the known-outlet source list"`
	PlaysPath   string `long:"plays" env:"PLAYS_PATH" description:"Optional YAML list of play titles (defaults to the built-in canon)"`

	// Search configuration
	Season             string `long:"season" env:"SEASON" default:"2025" description:"Season year used for the search window and identifiers"`
	MaxRecords         int    `long:"max-records" env:"MAX_RECORDS" default:"250" description:"Max records per article search query"`
	MaxArticlesPerPlay int    `long:"max-articles-per-play" env:"MAX_ARTICLES_PER_PLAY" default:"20" description:"Max articles to inspect per play"`
	Timeout            int    `long:"timeout" env:"TIMEOUT" default:"30" description:"HTTP timeout in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"stage-comb/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		OutputPath:         raw.OutputPath,
		SourcesPath:        raw.SourcesPath,
		PlaysPath:          raw.PlaysPath,
		Season:             raw.Season,
		MaxRecords:         raw.MaxRecords,
		MaxArticlesPerPlay: raw.MaxArticlesPerPlay,
		Timeout:            raw.Timeout,
		UserAgent:          raw.UserAgent,
		Debug:              raw.Debug,
		Version:            GetVersion(),
	}

	if year, err := strconv.Atoi(cfg.Season); err != nil || year < 1000 || year > 9999 {
		return nil, fmt.Errorf("season must be a four-digit year, got %q", cfg.Season)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
