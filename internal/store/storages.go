package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/civibridge/mattersync/internal/config"
	"github.com/civibridge/mattersync/internal/logger"
)

// Storages aggregates all repositories over the single mapping database.
type Storages struct {
	Links       LinkStore
	Credentials CredentialStore
	Cursors     CursorStore
	Leases      LeaseStore

	db *DB
}

// NewStorages opens the mapping database, applies migrations, and wires up
// all repositories. The driver is chosen from the DSN: a "postgres://" or
// "postgresql://" prefix selects PostgreSQL, anything else is treated as a
// SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if strings.HasPrefix(cfg.DB.DSN, "postgres://") || strings.HasPrefix(cfg.DB.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating database connection: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		Links:       NewLinkRepository(db, log),
		Credentials: NewCredentialRepository(db, log),
		Cursors:     NewCursorRepository(db, log),
		Leases:      NewLeaseRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
