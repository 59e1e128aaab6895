package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestAccountReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	columns := []string{"player_id", "username", "password_hash", "email", "country", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM accounts WHERE username").
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(500000000), "alice", "hash", "a@x.com", "US", now, now))

		account, err := repo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, int64(500000000), account.PlayerID)
		assert.Equal(t, "alice", account.Username)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("FROM accounts WHERE username").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(columns))

		account, err := repo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, account)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	columns := []string{"player_id", "username", "password_hash", "email", "country", "created_at", "updated_at"}

	mock.ExpectQuery(`LOWER\(email\) = LOWER`).
		WithArgs("Shared@x.com").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(500000000), "alice", "h1", "shared@x.com", "US", now, now).
			AddRow(int64(500000001), "bob", "h2", "shared@x.com", "DE", now, now))

	accounts, err := repo.GetByEmail(ctx, "Shared@x.com")
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.Equal(t, "bob", accounts[1].Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_ExistsByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.ExistsByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_GetPlayerID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT player_id FROM accounts").
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows([]string{"player_id"}).AddRow(int64(500000042)))

		playerID, err := repo.GetPlayerID(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, int64(500000042), playerID)
	})

	t.Run("absent returns 0", func(t *testing.T) {
		mock.ExpectQuery("SELECT player_id FROM accounts").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"player_id"}))

		playerID, err := repo.GetPlayerID(ctx, "ghost")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), playerID)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_MaxPlayerID_EmptyTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)

	mock.ExpectQuery(`COALESCE\(MAX\(player_id\), 0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

	max, err := repo.MaxPlayerID(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), max)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountReadRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountReadRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM accounts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.Count(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
