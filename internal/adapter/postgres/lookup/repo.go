// Package lookup persists parsed Wiktionary lookups in PostgreSQL.
// Entries are stored as a single JSONB document per (word, language).
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wikiparse/internal/adapter/postgres"
	"github.com/heartmarshall/wikiparse/internal/domain"
)

const table = "lookups"

var columns = []string{"id", "word", "language", "entries", "created_at", "updated_at"}

// Repo provides lookup persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

// New creates a new lookup repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the stored lookup for word in language.
// Returns domain.ErrNotFound when nothing was stored yet.
func (r *Repo) Get(ctx context.Context, word, language string) (domain.Lookup, error) {
	query, args, err := r.qb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"word": word, "language": language}).
		ToSql()
	if err != nil {
		return domain.Lookup{}, fmt.Errorf("build get lookup query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	l, err := scanLookup(row)
	if err != nil {
		return domain.Lookup{}, postgres.MapError(err, "lookup", key(word, language))
	}
	return l, nil
}

// Save inserts the lookup or, when the word was stored before, replaces its
// entries and moves updated_at forward. The stored row is returned.
func (r *Repo) Save(ctx context.Context, l domain.Lookup) (domain.Lookup, error) {
	entries := l.Entries
	if entries == nil {
		entries = []domain.LexicalEntry{}
	}
	doc, err := json.Marshal(entries)
	if err != nil {
		return domain.Lookup{}, fmt.Errorf("encode lookup entries: %w", err)
	}

	id := l.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := r.qb.
		Insert(table).
		Columns("id", "word", "language", "entries").
		Values(id, l.Word, l.Language, doc).
		Suffix("ON CONFLICT (word, language) DO UPDATE SET entries = EXCLUDED.entries, updated_at = now()").
		Suffix("RETURNING id, word, language, entries, created_at, updated_at").
		ToSql()
	if err != nil {
		return domain.Lookup{}, fmt.Errorf("build save lookup query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	saved, err := scanLookup(row)
	if err != nil {
		return domain.Lookup{}, postgres.MapError(err, "lookup", key(l.Word, l.Language))
	}
	return saved, nil
}

// DeleteOlderThan removes lookups not refreshed since cutoff and returns the
// number of rows removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := r.qb.
		Delete(table).
		Where(sq.Lt{"updated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete lookups query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete lookups older than %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}

// Ping checks that the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanLookup(row pgx.Row) (domain.Lookup, error) {
	var (
		l   domain.Lookup
		doc []byte
	)
	if err := row.Scan(&l.ID, &l.Word, &l.Language, &doc, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return domain.Lookup{}, err
	}
	if err := json.Unmarshal(doc, &l.Entries); err != nil {
		return domain.Lookup{}, fmt.Errorf("decode lookup entries: %w", err)
	}
	if l.Entries == nil {
		l.Entries = []domain.LexicalEntry{}
	}
	return l, nil
}

func key(word, language string) string {
	return word + "/" + language
}
