package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/models"
)

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByUsername returns the account with the given username.
// Returns nil, nil when no account matches.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.AccountDB, error) {
	const query = `
		SELECT player_id, username, password_hash, email, country, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// GetByEmail returns all accounts registered under the given email,
// matched case-insensitively. Email is not unique, so this may return
// more than one row.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) ([]models.AccountDB, error) {
	const query = `
		SELECT player_id, username, password_hash, email, country, created_at, updated_at
		FROM accounts
		WHERE LOWER(email) = LOWER($1)
		ORDER BY player_id
	`

	var accounts []models.AccountDB
	err := r.db.SelectContext(ctx, &accounts, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", len(accounts),
		"error", err,
	)

	return accounts, err
}

// ExistsByUsername reports whether an account with the given username exists.
func (r *AccountReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ExistsByPlayerID reports whether an account holds the given player identity.
func (r *AccountReadRepository) ExistsByPlayerID(ctx context.Context, playerID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE player_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, playerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{playerID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// GetPlayerID returns the player identity assigned to a username,
// or 0 when the username has no account.
func (r *AccountReadRepository) GetPlayerID(ctx context.Context, username string) (int64, error) {
	const query = `SELECT player_id FROM accounts WHERE username = $1`

	var playerID int64
	err := r.db.GetContext(ctx, &playerID, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", playerID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return playerID, nil
}

// MaxPlayerID returns the highest assigned player identity, or 0 for an
// empty account table.
func (r *AccountReadRepository) MaxPlayerID(ctx context.Context) (int64, error) {
	const query = `SELECT COALESCE(MAX(player_id), 0) FROM accounts`

	var max int64
	err := r.db.GetContext(ctx, &max, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", max,
		"error", err,
	)

	return max, err
}

// Count returns the number of account rows.
func (r *AccountReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM accounts`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", count,
		"error", err,
	)

	return count, err
}
