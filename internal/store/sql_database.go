package store

import (
	"database/sql"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/migrations"
)

// DB wraps the raw connection together with the error classificator used by
// the repositories. The same struct backs both the PostgreSQL tracker store
// and the SQLite local store; the classificator is nil for SQLite.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// retryable reports whether a failed operation is worth retrying. It is a
// nil-safe shorthand over the classificator for log enrichment.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
