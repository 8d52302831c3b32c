package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/models"
)

// leaseRepository is the SQL-backed implementation of [LeaseStore]. The
// lease is advisory: it serialises batch ticks per direction without
// blocking anything else.
type leaseRepository struct {
	logger *logger.Logger
	db     *DB

	// now is swappable for tests
	now func() time.Time
}

// NewLeaseRepository constructs a [LeaseStore] backed by the provided
// database connection and logger.
func NewLeaseRepository(db *DB, logger *logger.Logger) LeaseStore {
	logger.Debug().Msg("creating lease repository")
	return &leaseRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *leaseRepository) Acquire(ctx context.Context, direction models.Direction, holder string, ttl time.Duration) (bool, error) {
	now := r.now().UTC()

	// the conditional upsert succeeds when the lease is free, expired, or
	// re-acquired by its current holder
	query, args, err := r.db.builder.
		Insert("job_leases").
		Columns("direction", "holder", "expires_at").
		Values(string(direction), holder, now.Add(ttl)).
		Suffix("ON CONFLICT (direction) DO UPDATE SET holder = excluded.holder, expires_at = excluded.expires_at WHERE job_leases.expires_at < ? OR job_leases.holder = excluded.holder", now).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

func (r *leaseRepository) Release(ctx context.Context, direction models.Direction, holder string) error {
	query, args, err := r.db.builder.
		Delete("job_leases").
		Where(sq.Eq{"direction": string(direction), "holder": holder}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
