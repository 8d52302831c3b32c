package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/migrations"
)

// DB wraps the opened connection together with the dialect it was opened
// with and the matching squirrel statement builder.
type DB struct {
	*sql.DB
	dialect string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
