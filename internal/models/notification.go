package models

import "time"

// NotificationTypeBookingRequest is emitted automatically when a user files
// a booking request, for admin visibility.
const NotificationTypeBookingRequest = "booking_request"

type Notification struct {
	ID        string             `json:"id"`
	Message   string             `json:"message"`
	Type      string             `json:"type"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`

	// BookingID references the booking this notification is about, if any.
	// User is the addressed user's snapshot, populated on enriched reads.
	BookingID string `json:"booking_id,omitempty"`
	User      *User  `json:"user,omitempty"`
}
