package services

import (
	"context"
	"fmt"
	"net/netip"
	"sync"
	"time"

	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/models"
)

// ServerStore defines store operations for the game server registry.
type ServerStore interface {
	GetOnline(ctx context.Context) ([]models.GameServerDB, error)
	Upsert(ctx context.Context, address string, port int, refreshedAt int64) (int64, error)
	SetOffline(ctx context.Context, address string, port int, refreshedAt int64) (int64, error)
}

// ServerEventEmitter publishes server state changes, best effort.
type ServerEventEmitter interface {
	ServerStatus(ctx context.Context, address string, port int, online bool)
}

// RegistryService synchronizes the game server list between heartbeats, the
// store, and a caller-owned concurrent map. The store is the source of
// truth: the map only mirrors it and entries are never removed here.
type RegistryService struct {
	store  ServerStore
	events ServerEventEmitter
}

// NewRegistryService creates a new RegistryService instance.
func NewRegistryService(store ServerStore, events ServerEventEmitter) *RegistryService {
	return &RegistryService{store: store, events: events}
}

// Endpoint returns the canonical string form of a server endpoint, or an
// error when the address does not parse.
func Endpoint(address string, port int) (string, error) {
	addr, err := netip.ParseAddr(address)
	if err != nil {
		return "", fmt.Errorf("invalid server address %q: %w", address, err)
	}
	if port < 0 || port > 65535 {
		return "", fmt.Errorf("invalid server port %d", port)
	}
	return netip.AddrPortFrom(addr, uint16(port)).String(), nil
}

// LoadOnlineServers seeds the caller-owned map with every server marked
// online in the store. Idempotent: keys already present are left untouched.
// Rows whose endpoint fails to parse are dropped with a diagnostic.
func (svc *RegistryService) LoadOnlineServers(ctx context.Context, servers *sync.Map) error {
	online, err := svc.store.GetOnline(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load online servers", "err", err)
		return err
	}

	for _, server := range online {
		key, err := Endpoint(server.Address, server.Port)
		if err != nil {
			logger.Log.Warnw("skipping malformed server row",
				"address", server.Address, "port", server.Port, "err", err)
			continue
		}
		servers.LoadOrStore(key, server)
	}

	return nil
}

// UpsertServer records a heartbeat: the server is marked online and its
// timestamp refreshed, creating the row on the first heartbeat seen.
// Safe to call redundantly.
func (svc *RegistryService) UpsertServer(ctx context.Context, address string, port int) error {
	if _, err := Endpoint(address, port); err != nil {
		return err
	}

	if _, err := svc.store.Upsert(ctx, address, port, time.Now().Unix()); err != nil {
		logger.Log.Errorw("failed to upsert server", "address", address, "port", port, "err", err)
		return err
	}

	if svc.events != nil {
		svc.events.ServerStatus(ctx, address, port, true)
	}

	return nil
}

// MarkServerOffline flips a server to offline on an explicit signal from the
// caller; absence from heartbeats is never inferred here. Unknown endpoints
// are a no-op (0 rows). History is kept, never deleted.
func (svc *RegistryService) MarkServerOffline(ctx context.Context, address string, port int) (int64, error) {
	if _, err := Endpoint(address, port); err != nil {
		return 0, err
	}

	rows, err := svc.store.SetOffline(ctx, address, port, time.Now().Unix())
	if err != nil {
		logger.Log.Errorw("failed to mark server offline", "address", address, "port", port, "err", err)
		return 0, err
	}

	if rows > 0 && svc.events != nil {
		svc.events.ServerStatus(ctx, address, port, false)
	}

	return rows, nil
}
