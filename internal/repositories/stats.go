package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/grinval/gs-login-core/internal/logger"
)

// StatsReadRepository reads the external stats identity table. This store
// belongs to another system; this repository never writes to it.
type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

// FindCharacterID resolves a pre-existing identity for a username.
// Names registered while online carry a leading space in the stats table;
// the convention is historical and must be matched literally, so both forms
// are tried case-insensitively. Returns 0, nil when no row matches.
func (r *StatsReadRepository) FindCharacterID(ctx context.Context, name string) (int64, error) {
	if r.db == nil {
		return 0, errors.New("stats store not configured")
	}

	const query = `
		SELECT char_id
		FROM characters
		WHERE LOWER(char_name) = LOWER($1)
		   OR LOWER(char_name) = LOWER(' ' || $1)
		LIMIT 1
	`

	var charID int64
	err := r.db.GetContext(ctx, &charID, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"result", charID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return charID, nil
}
