package models

import "time"

type Booking struct {
	ID        string        `json:"id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Duration  int           `json:"duration"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`

	// UserID is the owning user, resolved through the MADE_BOOKING
	// relationship; Room is the snapshot of the booked room. Both are
	// populated on enriched reads only.
	UserID string `json:"user_id,omitempty"`
	Room   *Room  `json:"room,omitempty"`
}
