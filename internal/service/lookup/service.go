// Package lookup resolves a word to its lexical entries: stored snapshot,
// page cache, then the live page, parsed for the requested language.
package lookup

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/wikiparse/internal/domain"
	"github.com/heartmarshall/wikiparse/internal/metrics"
)

type pageFetcher interface {
	FetchPage(ctx context.Context, word string, printable bool) (string, error)
}

type pageCache interface {
	Get(ctx context.Context, word string, printable bool) (string, bool)
	Set(ctx context.Context, word string, printable bool, page string)
}

type lookupStore interface {
	Get(ctx context.Context, word, language string) (domain.Lookup, error)
	Save(ctx context.Context, l domain.Lookup) (domain.Lookup, error)
}

type pageParser interface {
	Parse(r io.Reader, language string) ([]domain.LexicalEntry, error)
	DefaultLanguage() string
}

// Config holds service settings.
type Config struct {
	// Printable requests the printable rendering of a page.
	Printable bool
	// MaxAge after which a stored lookup is parsed again. Zero keeps it forever.
	MaxAge time.Duration
}

// Option configures optional collaborators.
type Option func(*Service)

// WithCache enables the raw page cache.
func WithCache(c pageCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithStore enables stored lookups.
func WithStore(st lookupStore) Option {
	return func(s *Service) { s.store = st }
}

// Service provides word lookups.
type Service struct {
	fetcher pageFetcher
	parser  pageParser
	cache   pageCache
	store   lookupStore
	metrics *metrics.Metrics
	cfg     Config
	log     *slog.Logger

	group singleflight.Group
	now   func() time.Time
}

// NewService creates a new lookup service. Cache and store are optional.
func NewService(
	log *slog.Logger,
	fetcher pageFetcher,
	parser pageParser,
	m *metrics.Metrics,
	cfg Config,
	opts ...Option,
) *Service {
	s := &Service{
		fetcher: fetcher,
		parser:  parser,
		metrics: m,
		cfg:     cfg,
		log:     log.With("service", "lookup"),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveLanguage lowercases and trims a language name, falling back to
// the parser default.
func (s *Service) ResolveLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return s.parser.DefaultLanguage()
	}
	return language
}
