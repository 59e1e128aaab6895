package models

// GameServerDB represents a row in the game server registry.
// A server is keyed by (address, port) and is never deleted:
// a server that stops heartbeating is flipped to offline instead.
type GameServerDB struct {
	Address       string `json:"address" db:"address"`               // IP address
	Port          int    `json:"port" db:"port"`                     // Query port
	Online        bool   `json:"online" db:"online"`                 // Advertised state
	LastRefreshed int64  `json:"last_refreshed" db:"last_refreshed"` // Seconds since epoch
}
