package models

import "time"

type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`

	// Room is the occupied room snapshot, populated on enriched reads.
	Room *Room `json:"room,omitempty"`
}
