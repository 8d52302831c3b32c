// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/models"
)

// cursorRepository is the SQL-backed implementation of [CursorStore].
// The offset column is named item_offset because OFFSET is a reserved word
// in both supported dialects.
type cursorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCursorRepository constructs a [CursorStore] backed by the provided
// database connection and logger.
func NewCursorRepository(db *DB, logger *logger.Logger) CursorStore {
	logger.Debug().Msg("creating cursor repository")
	return &cursorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cursorRepository) Get(ctx context.Context, direction models.Direction) (models.BatchCursor, error) {
	query, args, err := r.db.builder.
		Select("direction", "phase", "item_offset", "page_size").
		From("batch_cursors").
		Where(sq.Eq{"direction": string(direction)}).
		ToSql()
	if err != nil {
		return models.BatchCursor{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cursor models.BatchCursor
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&cursor.Direction, &cursor.Phase, &cursor.Offset, &cursor.PageSize)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BatchCursor{}, fmt.Errorf("%w: %s", ErrCursorNotFound, direction)
	}
	if err != nil {
		return models.BatchCursor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cursor, nil
}

func (r *cursorRepository) Put(ctx context.Context, cursor models.BatchCursor) error {
	query, args, err := r.db.builder.
		Insert("batch_cursors").
		Columns("direction", "phase", "item_offset", "page_size").
		Values(string(cursor.Direction), int(cursor.Phase), cursor.Offset, cursor.PageSize).
		Suffix("ON CONFLICT (direction) DO UPDATE SET phase = excluded.phase, item_offset = excluded.item_offset, page_size = excluded.page_size, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *cursorRepository) Delete(ctx context.Context, direction models.Direction) error {
	query, args, err := r.db.builder.
		Delete("batch_cursors").
		Where(sq.Eq{"direction": string(direction)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *cursorRepository) Exists(ctx context.Context, direction models.Direction) (bool, error) {
	query, args, err := r.db.builder.
		Select("COUNT(1)").
		From("batch_cursors").
		Where(sq.Eq{"direction": string(direction)}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
