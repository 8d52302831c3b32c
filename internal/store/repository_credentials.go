package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/civibridge/mattersync/internal/logger"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialStore]. Rows hold the sealed form only; plaintext passwords
// never touch the database.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCredentialRepository constructs a [CredentialStore] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, userID, sealed string) error {
	query, args, err := r.db.builder.
		Insert("provisioned_credentials").
		Columns("user_id", "sealed").
		Values(userID, sealed).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET sealed = excluded.sealed, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *credentialRepository) Credential(ctx context.Context, userID string) (string, error) {
	query, args, err := r.db.builder.
		Select("sealed").
		From("provisioned_credentials").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: user %s", ErrCredentialNotFound, userID)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sealed, nil
}
