package models

// BookingStatus is the lifecycle status of a booking. pending is the only
// non-terminal status; approved, rejected and cancelled have no outgoing
// transitions. A same-status rewrite is always legal so that re-applying an
// approval is idempotent.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingApproved || s == BookingRejected || s == BookingCancelled
}

// CanTransitionTo reports whether the transition s -> next is legal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return s == BookingPending
}

// NotificationStatus is the lifecycle status of a notification. Approving or
// rejecting happens once, from pending; any notification may be marked read.
type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "pending"
	NotificationApproved NotificationStatus = "approved"
	NotificationRejected NotificationStatus = "rejected"
	NotificationRead     NotificationStatus = "read"
)

func (s NotificationStatus) Valid() bool {
	switch s {
	case NotificationPending, NotificationApproved, NotificationRejected, NotificationRead:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next is legal.
func (s NotificationStatus) CanTransitionTo(next NotificationStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next || next == NotificationRead {
		return true
	}
	return s == NotificationPending
}

// RoomStatus is the occupancy status of a room. Rooms move between statuses
// freely via explicit admin updates or the approval workflow, so there is no
// transition table, only a value check.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}
