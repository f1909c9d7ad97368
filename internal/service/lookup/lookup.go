package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/wikiparse/internal/domain"
	"github.com/heartmarshall/wikiparse/internal/metrics"
)

// Lookup returns the lexical entries of word in language (the parser default
// when empty). A word without a page, or a page without that language, yields
// an empty slice.
//
// Concurrent calls for the same word and language share one execution. The
// shared work is detached from the caller's cancellation so one caller giving
// up does not fail the others.
func (s *Service) Lookup(ctx context.Context, word, language string) ([]domain.LexicalEntry, error) {
	word = domain.NormalizeWord(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	language = s.ResolveLanguage(language)

	key := word + "|" + language
	ch := s.group.DoChan(key, func() (any, error) {
		return s.lookup(context.WithoutCancel(ctx), word, language)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.log.DebugContext(ctx, "lookup shared", slog.String("word", word), slog.String("language", language))
		}
		return res.Val.([]domain.LexicalEntry), nil
	}
}

func (s *Service) lookup(ctx context.Context, word, language string) ([]domain.LexicalEntry, error) {
	if entries, ok := s.fromStore(ctx, word, language); ok {
		s.record(metrics.SourceStore, entries)
		return entries, nil
	}

	page, source, err := s.page(ctx, word)
	if err != nil {
		return nil, err
	}
	if page == "" {
		s.log.InfoContext(ctx, "page not found", slog.String("word", word))
		s.record(source, nil)
		return []domain.LexicalEntry{}, nil
	}

	start := time.Now()
	entries, err := s.parser.Parse(strings.NewReader(page), language)
	s.metrics.ParseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("parse page %q: %w", word, err)
	}

	s.save(ctx, word, language, entries)
	s.record(source, entries)
	return entries, nil
}

// fromStore returns a fresh stored snapshot. Store failures are logged and
// treated as a miss.
func (s *Service) fromStore(ctx context.Context, word, language string) ([]domain.LexicalEntry, bool) {
	if s.store == nil {
		return nil, false
	}

	stored, err := s.store.Get(ctx, word, language)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, false
	case err != nil:
		s.log.WarnContext(ctx, "lookup store read failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, false
	case stored.Stale(s.now(), s.cfg.MaxAge):
		s.log.DebugContext(ctx, "stored lookup is stale",
			slog.String("word", word),
			slog.Time("updated_at", stored.UpdatedAt),
		)
		return nil, false
	}
	return stored.Entries, true
}

// page returns the raw page from the cache or the document source, along
// with the metrics source label. An absent page is ("", source, nil).
func (s *Service) page(ctx context.Context, word string) (string, string, error) {
	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, word, s.cfg.Printable); ok {
			s.metrics.CacheHitsTotal.Inc()
			return page, metrics.SourceCache, nil
		}
		s.metrics.CacheMissesTotal.Inc()
	}

	page, err := s.fetcher.FetchPage(ctx, word, s.cfg.Printable)
	if err != nil {
		s.metrics.FetchesTotal.WithLabelValues(metrics.FetchError).Inc()
		return "", "", fmt.Errorf("fetch page: %w", err)
	}
	if page == "" {
		s.metrics.FetchesTotal.WithLabelValues(metrics.FetchNotFound).Inc()
		return "", metrics.SourceFetch, nil
	}
	s.metrics.FetchesTotal.WithLabelValues(metrics.FetchOK).Inc()

	if s.cache != nil {
		s.cache.Set(ctx, word, s.cfg.Printable, page)
	}
	return page, metrics.SourceFetch, nil
}

func (s *Service) save(ctx context.Context, word, language string, entries []domain.LexicalEntry) {
	if s.store == nil {
		return
	}
	_, err := s.store.Save(ctx, domain.Lookup{Word: word, Language: language, Entries: entries})
	if err != nil {
		s.log.WarnContext(ctx, "lookup store write failed",
			slog.String("word", word),
			slog.String("language", language),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) record(source string, entries []domain.LexicalEntry) {
	s.metrics.LookupsTotal.WithLabelValues(source).Inc()
	s.metrics.EntriesReturned.Observe(float64(len(entries)))
}
