package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/models"
)

// GameServerRepository owns the game server registry table.
type GameServerRepository struct {
	db *sqlx.DB
}

func NewGameServerRepository(db *sqlx.DB) *GameServerRepository {
	return &GameServerRepository{db: db}
}

// GetOnline returns all servers currently marked online.
func (r *GameServerRepository) GetOnline(ctx context.Context) ([]models.GameServerDB, error) {
	const query = `
		SELECT address, port, online, last_refreshed
		FROM game_servers
		WHERE online = TRUE
		ORDER BY address, port
	`

	var servers []models.GameServerDB
	err := r.db.SelectContext(ctx, &servers, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(servers),
		"error", err,
	)

	return servers, err
}

// Upsert marks a server online, creating its row on the first heartbeat.
// Safe to call redundantly: repeated heartbeats only refresh the timestamp.
func (r *GameServerRepository) Upsert(ctx context.Context, address string, port int, refreshedAt int64) (int64, error) {
	const query = `
		INSERT INTO game_servers (address, port, online, last_refreshed)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (address, port)
		DO UPDATE SET online = TRUE, last_refreshed = EXCLUDED.last_refreshed
	`

	res, err := r.db.ExecContext(ctx, query, address, port, refreshedAt)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{address, port, refreshedAt},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// SetOffline flips a server to offline. Rows are never deleted; a server
// with no row is a no-op (0 rows affected).
func (r *GameServerRepository) SetOffline(ctx context.Context, address string, port int, refreshedAt int64) (int64, error) {
	const query = `
		UPDATE game_servers
		SET online = FALSE, last_refreshed = $3
		WHERE address = $1 AND port = $2
	`

	res, err := r.db.ExecContext(ctx, query, address, port, refreshedAt)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{address, port, refreshedAt},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
