package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestAccountWriteRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	t.Run("inserted", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(int64(500000000), "alice", "hash", "A@x.com", "US").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.Insert(ctx, 500000000, "alice", "hash", "A@x.com", "US")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("username conflict affects no rows", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(int64(500000001), "alice", "hash2", "b@x.com", "DE").
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := repo.Insert(ctx, 500000001, "alice", "hash2", "b@x.com", "DE")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_UpdateCountry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	t.Run("updates existing account", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts SET country").
			WithArgs("alice", "FR").
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.UpdateCountry(ctx, "alice", "FR")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("no-op for absent username", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts SET country").
			WithArgs("ghost", "FR").
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := repo.UpdateCountry(ctx, "ghost", "FR")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_Relink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db, nil)

	mock.ExpectExec("UPDATE accounts SET player_id").
		WithArgs(int64(500000000), int64(500000099), "alice2", "newhash", "new@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Relink(context.Background(), 500000000, 500000099, "alice2", "newhash", "new@x.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM accounts WHERE username").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	mock.ExpectExec("DELETE FROM accounts WHERE player_id").
		WithArgs(int64(500000000)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err = repo.DeleteByPlayerID(ctx, 500000000)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
