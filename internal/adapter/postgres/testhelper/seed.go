package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueWord returns a word that no other test uses, so parallel tests can
// share one database.
func UniqueWord(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// AgeLookup moves updated_at of a stored lookup back by the given interval,
// e.g. "48 hours".
func AgeLookup(t *testing.T, pool *pgxpool.Pool, word, language, interval string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE lookups SET updated_at = now() - $3::interval WHERE word = $1 AND language = $2`,
		word, language, interval,
	)
	if err != nil {
		t.Fatalf("testhelper: AgeLookup: %v", err)
	}
}
