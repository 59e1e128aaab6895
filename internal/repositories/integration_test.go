package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS accounts (
		player_id BIGINT NOT NULL UNIQUE,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		email VARCHAR(100) NOT NULL,
		country VARCHAR(8) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS game_servers (
		address VARCHAR(64) NOT NULL,
		port INTEGER NOT NULL,
		online BOOLEAN NOT NULL DEFAULT FALSE,
		last_refreshed BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (address, port)
	);

	CREATE TABLE IF NOT EXISTS characters (
		char_id BIGINT PRIMARY KEY,
		char_name VARCHAR(50) NOT NULL
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestAccountRepositories_RoundTrip(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewAccountReadRepository(db)
	writeRepo := NewAccountWriteRepository(db, nil)
	ctx := context.Background()

	rows, err := writeRepo.Insert(ctx, 500000000, "alice", "hash-a", "Alice@Example.com", "US")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	t.Run("duplicate username is swallowed", func(t *testing.T) {
		rows, err := writeRepo.Insert(ctx, 500000001, "alice", "hash-b", "other@example.com", "DE")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("email stored lower-cased", func(t *testing.T) {
		account, err := readRepo.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, "alice@example.com", account.Email)
		assert.Equal(t, int64(500000000), account.PlayerID)
	})

	t.Run("case-insensitive email select", func(t *testing.T) {
		accounts, err := readRepo.GetByEmail(ctx, "ALICE@EXAMPLE.COM")
		assert.NoError(t, err)
		assert.Len(t, accounts, 1)
	})

	t.Run("absent username reads as nil and zero", func(t *testing.T) {
		account, err := readRepo.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, account)

		id, err := readRepo.GetPlayerID(ctx, "ghost")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})

	t.Run("max and count track inserts", func(t *testing.T) {
		_, err := writeRepo.Insert(ctx, 500000007, "bob", "hash-c", "bob@example.com", "DE")
		assert.NoError(t, err)

		max, err := readRepo.MaxPlayerID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(500000007), max)

		count, err := readRepo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("relink rewrites the row", func(t *testing.T) {
		rows, err := writeRepo.Relink(ctx, 500000007, 500000042, "bobby", "hash-d", "Bobby@Example.com")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		account, err := readRepo.GetByUsername(ctx, "bobby")
		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Equal(t, int64(500000042), account.PlayerID)
		assert.Equal(t, "bobby@example.com", account.Email)
	})

	t.Run("delete by identity", func(t *testing.T) {
		rows, err := writeRepo.DeleteByPlayerID(ctx, 500000042)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		exists, err := readRepo.ExistsByUsername(ctx, "bobby")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGameServerRepository_RoundTrip(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewGameServerRepository(db)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "10.0.0.1", 7000, 100)
	assert.NoError(t, err)
	_, err = repo.Upsert(ctx, "10.0.0.2", 7000, 100)
	assert.NoError(t, err)

	t.Run("upsert refreshes instead of duplicating", func(t *testing.T) {
		_, err := repo.Upsert(ctx, "10.0.0.1", 7000, 200)
		assert.NoError(t, err)

		servers, err := repo.GetOnline(ctx)
		assert.NoError(t, err)
		assert.Len(t, servers, 2)

		for _, s := range servers {
			if s.Address == "10.0.0.1" {
				assert.Equal(t, int64(200), s.LastRefreshed)
			}
		}
	})

	t.Run("offline rows drop out of the online set", func(t *testing.T) {
		rows, err := repo.SetOffline(ctx, "10.0.0.2", 7000, 300)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		servers, err := repo.GetOnline(ctx)
		assert.NoError(t, err)
		assert.Len(t, servers, 1)
	})

	t.Run("unknown endpoint offline is a no-op", func(t *testing.T) {
		rows, err := repo.SetOffline(ctx, "192.168.1.1", 7100, 300)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}

func TestStatsReadRepository_LegacyNameConvention(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewStatsReadRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO characters (char_id, char_name) VALUES (123456, ' Alice'), (654321, 'Bob')`)
	assert.NoError(t, err)

	t.Run("leading-space legacy name matches", func(t *testing.T) {
		id, err := repo.FindCharacterID(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, int64(123456), id)
	})

	t.Run("plain name matches", func(t *testing.T) {
		id, err := repo.FindCharacterID(ctx, "BOB")
		assert.NoError(t, err)
		assert.Equal(t, int64(654321), id)
	})

	t.Run("unknown name reads as zero", func(t *testing.T) {
		id, err := repo.FindCharacterID(ctx, "ghost")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), id)
	})
}
