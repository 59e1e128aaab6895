package models

import "time"

// AccountDB represents a player account row in the database.
type AccountDB struct {
	PlayerID     int64     `json:"player_id" db:"player_id"`         // Canonical cross-system identity
	Username     string    `json:"username" db:"username"`           // Unique login handle
	PasswordHash string    `json:"-" db:"password_hash"`             // One-way hash, never the raw credential
	Email        string    `json:"email" db:"email"`                 // Stored lower-cased, not unique
	Country      string    `json:"country" db:"country"`             // Locale tag
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
