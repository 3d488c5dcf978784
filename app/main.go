package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lysyi3m/stage-comb/app/catalog"
	"github.com/lysyi3m/stage-comb/app/cfg"
	"github.com/lysyi3m/stage-comb/app/discovery"
	"github.com/lysyi3m/stage-comb/app/fetch"
	"github.com/lysyi3m/stage-comb/app/pipeline"
	"github.com/lysyi3m/stage-comb/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting stage-comb", "version", appCfg.Version, "season", appCfg.Season)

	sourceList, err := sources.Load(appCfg.SourcesPath)
	if err != nil {
		slog.Error("Failed to load source list", "path", appCfg.SourcesPath, "error", err)
		os.Exit(1)
	}
	preferredDomains := sources.Domains(sourceList)
	slog.Info("Loaded source list", "sources", len(sourceList), "domains", len(preferredDomains))

	plays := pipeline.DefaultPlays
	if appCfg.PlaysPath != "" {
		loaded, err := sources.LoadPlays(appCfg.PlaysPath)
		if err != nil {
			slog.Error("Failed to load play list", "path", appCfg.PlaysPath, "error", err)
			os.Exit(1)
		}
		if len(loaded) > 0 {
			plays = loaded
		}
	}

	httpClient := resty.New().
		SetTimeout(time.Duration(appCfg.Timeout) * time.Second).
		SetHeader("User-Agent", appCfg.UserAgent)

	runner := pipeline.NewRunner(
		discovery.NewClient(httpClient, discovery.DefaultBaseURL, appCfg.Season),
		fetch.NewFetcher(httpClient),
		catalog.NewStore(appCfg.OutputPath),
		pipeline.Options{
			Plays:              plays,
			PreferredDomains:   preferredDomains,
			Season:             appCfg.Season,
			MaxRecords:         appCfg.MaxRecords,
			MaxArticlesPerPlay: appCfg.MaxArticlesPerPlay,
		})

	// An interrupt aborts the run before the final write; the previous
	// catalog file stays as it was.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		slog.Error("Catalog update aborted", "error", err)
		os.Exit(1)
	}

	slog.Info("Catalog update complete", "output", appCfg.OutputPath)
}
