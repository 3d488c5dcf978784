package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/stage-comb/app/catalog"
	"github.com/lysyi3m/stage-comb/app/discovery"
	"github.com/lysyi3m/stage-comb/app/extract"
	"github.com/lysyi3m/stage-comb/app/fetch"
	"github.com/lysyi3m/stage-comb/app/page"
	"github.com/lysyi3m/stage-comb/app/rank"
)

type Options struct {
	Plays              []string
	PreferredDomains   []string
	Season             string
	MaxRecords         int
	MaxArticlesPerPlay int
}

// Runner drives one full catalog update: discover articles per play,
// resolve each to a production page, extract facts and merge them into
// the stored catalog. Execution is strictly sequential, and the catalog
// file is rewritten exactly once, after the whole play list has been
// processed; cancellation anywhere before that leaves the previous file
// untouched.
type Runner struct {
	discovery *discovery.Client
	fetcher   *fetch.Fetcher
	reader    *page.Reader
	extractor *extract.Extractor
	merger    *catalog.Merger
	store     *catalog.Store
	opts      Options
}

func NewRunner(discoveryClient *discovery.Client, fetcher *fetch.Fetcher, store *catalog.Store, opts Options) *Runner {
	return &Runner{
		discovery: discoveryClient,
		fetcher:   fetcher,
		reader:    page.NewReader(),
		extractor: extract.NewExtractor(),
		merger:    catalog.NewMerger(),
		store:     store,
		opts:      opts,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	existing, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	set := newWorkingSet(existing)

	for _, play := range r.opts.Plays {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.updatePlay(ctx, play, set)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	entries := set.entries()
	if err := r.store.Save(entries); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	slog.Info("Catalog updated",
		"entries", len(entries),
		"new", set.added,
		"merged", set.merged)

	return nil
}

func (r *Runner) updatePlay(ctx context.Context, play string, set *workingSet) {
	articles, err := r.discovery.Run(ctx, play, r.opts.MaxRecords)
	if err != nil {
		slog.Warn("Article search failed", "play", play, "error", err)
		return
	}
	if len(articles) > r.opts.MaxArticlesPerPlay {
		articles = articles[:r.opts.MaxArticlesPerPlay]
	}

	slog.Debug("Inspecting articles", "play", play, "count", len(articles))

	for _, article := range articles {
		if ctx.Err() != nil {
			return
		}
		if article.URL == "" {
			continue
		}
		r.updateFromArticle(ctx, play, article.URL, set)
	}
}

func (r *Runner) updateFromArticle(ctx context.Context, play, articleURL string, set *workingSet) {
	body, err := r.fetcher.Run(ctx, articleURL)
	if err != nil {
		slog.Warn("Failed to fetch article", "play", play, "url", articleURL, "error", err)
		return
	}
	articlePage := r.reader.Run([]byte(body))

	productionURL, ok := rank.Pick(articleURL, articlePage.Links, r.opts.PreferredDomains)
	if !ok {
		slog.Debug("No production link found", "play", play, "article", articleURL)
		return
	}
	// One extraction and one merge per production URL per run
	if set.seen[productionURL] {
		return
	}
	set.seen[productionURL] = true

	body, err = r.fetcher.Run(ctx, productionURL)
	if err != nil {
		slog.Warn("Failed to fetch production page", "play", play, "url", productionURL, "error", err)
		return
	}

	candidate, err := r.extractor.Run(play, r.reader.Run([]byte(body)), productionURL)
	if err != nil {
		if errors.Is(err, extract.ErrInsufficientData) {
			slog.Debug("Page not cataloged", "play", play, "url", productionURL, "reason", err)
		} else {
			slog.Warn("Extraction failed", "play", play, "url", productionURL, "error", err)
		}
		return
	}
	candidate.Sources = []string{productionURL, articleURL}

	set.apply(r.merger, candidate.Entry(r.opts.Season))
}

// workingSet is the in-memory catalog being updated, keyed by id, plus
// the production URLs already resolved this run.
type workingSet struct {
	byID   map[string]catalog.Entry
	order  []string
	seen   map[string]bool
	added  int
	merged int
}

func newWorkingSet(existing []catalog.Entry) *workingSet {
	set := &workingSet{
		byID: make(map[string]catalog.Entry, len(existing)),
		seen: make(map[string]bool),
	}
	for _, entry := range existing {
		set.byID[entry.ID] = entry
		set.order = append(set.order, entry.ID)
	}
	return set
}

func (s *workingSet) apply(merger *catalog.Merger, incoming catalog.Entry) {
	if existing, ok := s.byID[incoming.ID]; ok {
		s.byID[incoming.ID] = merger.Run(existing, incoming)
		s.merged++
		return
	}
	s.byID[incoming.ID] = incoming
	s.order = append(s.order, incoming.ID)
	s.added++
}

func (s *workingSet) entries() []catalog.Entry {
	entries := make([]catalog.Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, s.byID[id])
	}
	return entries
}
