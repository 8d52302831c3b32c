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
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// linkRepository is the SQL-backed implementation of [LinkStore]. It covers
// the identity_links and channel_links tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type linkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLinkRepository constructs a [LinkStore] backed by the provided
// database connection and logger.
func NewLinkRepository(db *DB, logger *logger.Logger) LinkStore {
	logger.Debug().Msg("creating link repository")
	return &linkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *linkRepository) UserIDForContact(ctx context.Context, contactID int64) (string, error) {
	query, args, err := r.db.builder.
		Select("user_id").
		From("identity_links").
		Where(sq.Eq{"contact_id": contactID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: contact %d", ErrLinkNotFound, contactID)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return userID, nil
}

func (r *linkRepository) ContactIDForUser(ctx context.Context, userID string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("contact_id").
		From("identity_links").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var contactIDs []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		contactIDs = append(contactIDs, id)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	switch len(contactIDs) {
	case 0:
		return 0, fmt.Errorf("%w: user %s", ErrLinkNotFound, userID)
	case 1:
		return contactIDs[0], nil
	default:
		// more than one contact claims the same chat user
		log.Error().
			Str("user_id", userID).
			Ints64("contact_ids", contactIDs).
			Msg("data error: ambiguous identity link")
		return 0, fmt.Errorf("%w: user %s has %d contacts", ErrAmbiguousLink, userID, len(contactIDs))
	}
}

func (r *linkRepository) SetUserLink(ctx context.Context, contactID int64, userID string) error {
	// an empty user id clears the link
	if userID == "" {
		query, args, err := r.db.builder.
			Delete("identity_links").
			Where(sq.Eq{"contact_id": contactID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	}

	query, args, err := r.db.builder.
		Insert("identity_links").
		Columns("contact_id", "user_id").
		Values(contactID, userID).
		Suffix("ON CONFLICT (contact_id) DO UPDATE SET user_id = excluded.user_id, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *linkRepository) ChannelForGroup(ctx context.Context, groupID int64) (models.ChannelLink, error) {
	query, args, err := r.db.builder.
		Select("group_id", "channel_id", "channel_name", "channel_url").
		From("channel_links").
		Where(sq.Eq{"group_id": groupID}).
		ToSql()
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var link models.ChannelLink
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&link.GroupID, &link.ChannelID, &link.ChannelName, &link.ChannelURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChannelLink{}, fmt.Errorf("%w: group %d", ErrLinkNotFound, groupID)
	}
	if err != nil {
		return models.ChannelLink{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return link, nil
}

func (r *linkRepository) GroupForChannel(ctx context.Context, channelID string) (int64, error) {
	query, args, err := r.db.builder.
		Select("group_id").
		From("channel_links").
		Where(sq.Eq{"channel_id": channelID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var groupID int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&groupID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: channel %s", ErrLinkNotFound, channelID)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return groupID, nil
}

func (r *linkRepository) SetChannelLink(ctx context.Context, link models.ChannelLink) error {
	query, args, err := r.db.builder.
		Insert("channel_links").
		Columns("group_id", "channel_id", "channel_name", "channel_url").
		Values(link.GroupID, link.ChannelID, link.ChannelName, link.ChannelURL).
		Suffix("ON CONFLICT (group_id) DO UPDATE SET channel_id = excluded.channel_id, channel_name = excluded.channel_name, channel_url = excluded.channel_url, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			// channel_id carries a unique index: one channel, one group
			return fmt.Errorf("%w: channel %s", ErrChannelAlreadyLinked, link.ChannelID)
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *linkRepository) ClearChannelLink(ctx context.Context, groupID int64) error {
	query, args, err := r.db.builder.
		Delete("channel_links").
		Where(sq.Eq{"group_id": groupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *linkRepository) ChannelLinks(ctx context.Context) ([]models.ChannelLink, error) {
	query, args, err := r.db.builder.
		Select("group_id", "channel_id", "channel_name", "channel_url").
		From("channel_links").
		OrderBy("group_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var links []models.ChannelLink
	for rows.Next() {
		var link models.ChannelLink
		if err = rows.Scan(&link.GroupID, &link.ChannelID, &link.ChannelName, &link.ChannelURL); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		links = append(links, link)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return links, nil
}

// isUniqueViolation recognises unique-constraint failures from both
// supported drivers.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
