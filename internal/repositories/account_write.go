package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/grinval/gs-login-core/internal/logger"
)

// AccountWriteRepository handles account write operations.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *AccountWriteRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.executor(ctx).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Insert creates a new account row. The email is stored lower-cased.
func (r *AccountWriteRepository) Insert(ctx context.Context, playerID int64, username, passwordHash, email, country string) (int64, error) {
	const query = `
		INSERT INTO accounts (player_id, username, password_hash, email, country, created_at, updated_at)
		VALUES ($1, $2, $3, LOWER($4), $5, NOW(), NOW())
		ON CONFLICT (username) DO NOTHING
	`
	return r.exec(ctx, query, playerID, username, passwordHash, email, country)
}

// UpdateCountry sets the locale tag of an account by username.
// No-op when the username has no account.
func (r *AccountWriteRepository) UpdateCountry(ctx context.Context, username, country string) (int64, error) {
	const query = `
		UPDATE accounts
		SET country = $2, updated_at = NOW()
		WHERE username = $1
	`
	return r.exec(ctx, query, username, country)
}

// Relink rewrites identity, username, password hash and email of the account
// currently holding playerID.
func (r *AccountWriteRepository) Relink(ctx context.Context, playerID, newPlayerID int64, username, passwordHash, email string) (int64, error) {
	const query = `
		UPDATE accounts
		SET player_id = $2, username = $3, password_hash = $4, email = LOWER($5), updated_at = NOW()
		WHERE player_id = $1
	`
	return r.exec(ctx, query, playerID, newPlayerID, username, passwordHash, email)
}

// UpdatePlayerID reassigns the identity of the account with the given
// username. Uniqueness against other accounts is the caller's concern.
func (r *AccountWriteRepository) UpdatePlayerID(ctx context.Context, username string, newPlayerID int64) (int64, error) {
	const query = `
		UPDATE accounts
		SET player_id = $2, updated_at = NOW()
		WHERE username = $1
	`
	return r.exec(ctx, query, username, newPlayerID)
}

// DeleteByUsername removes an account by username.
func (r *AccountWriteRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	const query = `DELETE FROM accounts WHERE username = $1`
	return r.exec(ctx, query, username)
}

// DeleteByPlayerID removes an account by player identity.
func (r *AccountWriteRepository) DeleteByPlayerID(ctx context.Context, playerID int64) (int64, error) {
	const query = `DELETE FROM accounts WHERE player_id = $1`
	return r.exec(ctx, query, playerID)
}
