package services

import (
	"context"
	"errors"
	"sync"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/models"
)

// IdentityFloor is the minimum value new player identities may take.
// The range below it is reserved for other systems.
const IdentityFloor = 500_000_000

// Error variables
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrPlayerIDTaken   = errors.New("player id already assigned to another account")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
	GetByEmail(ctx context.Context, email string) ([]models.AccountDB, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByPlayerID(ctx context.Context, playerID int64) (bool, error)
	GetPlayerID(ctx context.Context, username string) (int64, error)
	MaxPlayerID(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Insert(ctx context.Context, playerID int64, username, passwordHash, email, country string) (int64, error)
	UpdateCountry(ctx context.Context, username, country string) (int64, error)
	Relink(ctx context.Context, playerID, newPlayerID int64, username, passwordHash, email string) (int64, error)
	UpdatePlayerID(ctx context.Context, username string, newPlayerID int64) (int64, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
	DeleteByPlayerID(ctx context.Context, playerID int64) (int64, error)
}

// IdentityProber resolves a pre-existing authoritative identity for a
// username. A false result means "no match", whatever the reason.
type IdentityProber interface {
	Probe(ctx context.Context, username string) (int64, bool)
}

// PasswordHasher defines the one-way credential hash capability.
type PasswordHasher interface {
	Hash(password string, legacy bool) (string, error)
	Compare(stored, password string) bool
}

// AccountEventEmitter publishes account lifecycle events, best effort.
type AccountEventEmitter interface {
	AccountCreated(ctx context.Context, playerID int64, username, country string)
}

// AccountService owns account CRUD and the identity-allocation protocol.
type AccountService struct {
	reader AccountReader
	writer AccountWriter
	prober IdentityProber
	hasher PasswordHasher
	events AccountEventEmitter

	// createMu serializes the identity-resolution-and-insert sequence:
	// two concurrent creations must not compute the same "next" identity.
	createMu sync.Mutex
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(
	reader AccountReader,
	writer AccountWriter,
	prober IdentityProber,
	hasher PasswordHasher,
	events AccountEventEmitter,
) *AccountService {
	return &AccountService{
		reader: reader,
		writer: writer,
		prober: prober,
		hasher: hasher,
		events: events,
	}
}

// GetUser returns the account for a username, or nil when absent.
func (svc *AccountService) GetUser(ctx context.Context, username string) (*models.AccountDB, error) {
	return svc.reader.GetByUsername(ctx, username)
}

// GetUsersByCredential returns every account whose email matches
// case-insensitively and whose stored hash matches the raw password.
// Email is not unique, so more than one account may match.
func (svc *AccountService) GetUsersByCredential(ctx context.Context, email, password string) ([]models.AccountDB, error) {
	accounts, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get accounts by email", "err", err)
		return nil, err
	}

	matched := accounts[:0]
	for _, account := range accounts {
		if svc.hasher.Compare(account.PasswordHash, password) {
			matched = append(matched, account)
		}
	}

	return matched, nil
}

// UserExists reports whether a username has an account.
func (svc *AccountService) UserExists(ctx context.Context, username string) (bool, error) {
	return svc.reader.ExistsByUsername(ctx, username)
}

// UserExistsID reports whether a player identity is assigned to an account.
func (svc *AccountService) UserExistsID(ctx context.Context, playerID int64) (bool, error) {
	return svc.reader.ExistsByPlayerID(ctx, playerID)
}

// CreateUser creates a new account and returns the assigned player identity.
// Returns 0, nil when the insert affected no rows (duplicate username).
//
// Only one creation may run its identity-resolution-and-insert sequence at a
// time. The identity comes from the external stats source when the username
// already has an authoritative identity there; otherwise a fresh one is
// allocated above the reserved floor.
func (svc *AccountService) CreateUser(ctx context.Context, username, password, email, country string) (int64, error) {
	svc.createMu.Lock()
	defer svc.createMu.Unlock()

	playerID, found := svc.prober.Probe(ctx, username)
	if !found {
		max, err := svc.reader.MaxPlayerID(ctx)
		if err != nil {
			logger.Log.Errorw("failed to read max player id", "err", err)
			return 0, err
		}
		playerID = max + 1
		if playerID < IdentityFloor {
			playerID = IdentityFloor
		}
	}

	passwordHash, err := svc.hasher.Hash(password, false)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	rows, err := svc.writer.Insert(ctx, playerID, username, passwordHash, email, country)
	if err != nil {
		logger.Log.Errorw("failed to insert account", "username", username, "err", err)
		return 0, err
	}
	if rows == 0 {
		logger.Log.Warnw("account insert affected no rows", "username", username)
		return 0, nil
	}

	if svc.events != nil {
		svc.events.AccountCreated(ctx, playerID, username, country)
	}

	return playerID, nil
}

// UpdateCountry sets the locale of an account. Absent usernames are a
// store-level no-op.
func (svc *AccountService) UpdateCountry(ctx context.Context, username, country string) (int64, error) {
	return svc.writer.UpdateCountry(ctx, username, country)
}

// RelinkUser rewrites identity, username, credential and email of the
// account currently holding playerID.
func (svc *AccountService) RelinkUser(ctx context.Context, playerID, newPlayerID int64, username, password, email string) (int64, error) {
	passwordHash, err := svc.hasher.Hash(password, false)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	return svc.writer.Relink(ctx, playerID, newPlayerID, username, passwordHash, email)
}

// DeleteUser removes an account by username and returns rows affected.
func (svc *AccountService) DeleteUser(ctx context.Context, username string) (int64, error) {
	return svc.writer.DeleteByUsername(ctx, username)
}

// DeleteUserID removes an account by player identity and returns rows affected.
func (svc *AccountService) DeleteUserID(ctx context.Context, playerID int64) (int64, error) {
	return svc.writer.DeleteByPlayerID(ctx, playerID)
}

// GetPlayerID returns the identity assigned to a username, or 0 when absent.
func (svc *AccountService) GetPlayerID(ctx context.Context, username string) (int64, error) {
	return svc.reader.GetPlayerID(ctx, username)
}

// SetPlayerID reassigns the identity of an existing account. Unlike
// allocation, reassignment enforces uniqueness explicitly before mutating:
// ErrAccountNotFound when the username has no account, ErrPlayerIDTaken when
// the identity already belongs to a different account, otherwise the number
// of rows updated.
func (svc *AccountService) SetPlayerID(ctx context.Context, username string, newPlayerID int64) (int64, error) {
	current, err := svc.reader.GetPlayerID(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to resolve account", "username", username, "err", err)
		return 0, err
	}
	if current == 0 {
		return 0, ErrAccountNotFound
	}
	if current == newPlayerID {
		return svc.writer.UpdatePlayerID(ctx, username, newPlayerID)
	}

	taken, err := svc.reader.ExistsByPlayerID(ctx, newPlayerID)
	if err != nil {
		logger.Log.Errorw("failed to check player id", "player_id", newPlayerID, "err", err)
		return 0, err
	}
	if taken {
		return 0, ErrPlayerIDTaken
	}

	return svc.writer.UpdatePlayerID(ctx, username, newPlayerID)
}

// CountUsers returns the number of accounts.
func (svc *AccountService) CountUsers(ctx context.Context) (int64, error) {
	return svc.reader.Count(ctx)
}
