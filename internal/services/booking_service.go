package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repositories"
)

const dateLayout = "2006-01-02"

// BookingService implements the booking request workflow. Creating a
// booking files a pending request and raises a notification for review;
// status changes are validated against the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, user *models.User, req *CreateBookingRequest) (*models.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]*models.Booking, error)
	// Update merges the provided fields into the booking on behalf of
	// user. Only the owning user may touch a booking; admins act on
	// bookings through the notification approval cascade. A status
	// change must be a legal lifecycle transition.
	Update(ctx context.Context, user *models.User, bookingID string, req *UpdateBookingRequest) (*models.Booking, error)
	// Cancel moves the booking to cancelled, subject to the same
	// ownership and transition rules as Update.
	Cancel(ctx context.Context, user *models.User, bookingID string) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo      repositories.BookingRepository
	roomRepo         repositories.RoomRepository
	notificationRepo repositories.NotificationRepository
	log              *logrus.Logger
}

type CreateBookingRequest struct {
	RoomID    string `json:"room_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Duration  int    `json:"duration" validate:"required,gt=0"`
}

type UpdateBookingRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Duration  *int    `json:"duration"`
	Status    *string `json:"status"`
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	roomRepo repositories.RoomRepository,
	notificationRepo repositories.NotificationRepository,
	log *logrus.Logger,
) BookingService {
	return &bookingService{
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		notificationRepo: notificationRepo,
		log:              log,
	}
}

func parseDateRange(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: start_date must be YYYY-MM-DD", common.ErrInvalidState)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: end_date must be YYYY-MM-DD", common.ErrInvalidState)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start_date must be before end_date", common.ErrInvalidState)
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, user *models.User, req *CreateBookingRequest) (*models.Booking, error) {
	if err := parseDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", common.ErrNotFound, req.RoomID)
	}
	if room.Status != models.RoomAvailable {
		return nil, fmt.Errorf("%w: room %s is not available", common.ErrInvalidState, room.RoomNumber)
	}

	bookingID, err := s.bookingRepo.Create(ctx, user.ID, req.RoomID, req.StartDate, req.EndDate, req.Duration)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New booking request from %s", user.Username)
	if _, err := s.notificationRepo.Create(ctx, user.ID, bookingID, message, models.NotificationTypeBookingRequest); err != nil {
		// The booking is already persisted; the request list stays
		// consistent even if the notification is lost.
		s.log.WithError(err).Warnf("notification for booking %s not created", bookingID)
	}

	return &models.Booking{
		ID:        bookingID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Duration:  req.Duration,
		Status:    models.BookingPending,
		UserID:    user.ID,
		Room:      room,
	}, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID string) ([]*models.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) Update(ctx context.Context, user *models.User, bookingID string, req *UpdateBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %s", common.ErrNotFound, bookingID)
	}
	if booking.UserID != user.ID {
		return nil, fmt.Errorf("%w: booking belongs to another user", common.ErrForbidden)
	}

	updates := map[string]any{}
	if req.StartDate != nil || req.EndDate != nil {
		start, end := booking.StartDate, booking.EndDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if err := parseDateRange(start, end); err != nil {
			return nil, err
		}
		if req.StartDate != nil {
			updates["start_date"] = start
			booking.StartDate = start
		}
		if req.EndDate != nil {
			updates["end_date"] = end
			booking.EndDate = end
		}
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", common.ErrInvalidState)
		}
		updates["duration"] = *req.Duration
		booking.Duration = *req.Duration
	}
	if req.Status != nil {
		next := models.BookingStatus(*req.Status)
		if !booking.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: cannot move booking from %s to %s", common.ErrInvalidState, booking.Status, next)
		}
		updates["status"] = string(next)
		booking.Status = next
	}
	if len(updates) == 0 {
		return booking, nil
	}

	if err := s.bookingRepo.Update(ctx, bookingID, updates); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, user *models.User, bookingID string) (*models.Booking, error) {
	status := string(models.BookingCancelled)
	return s.Update(ctx, user, bookingID, &UpdateBookingRequest{Status: &status})
}
