package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"boardinghouse/internal/common"
	"boardinghouse/internal/models"
	"boardinghouse/internal/repositories"
)

// NotificationService lists notifications and drives the approval
// workflow. Approving or rejecting a notification that references a
// booking cascades to that booking, and an approval additionally
// marks the booked room occupied.
type NotificationService interface {
	// ListFor returns every notification for admins, and only the
	// user's own notifications otherwise.
	ListFor(ctx context.Context, user *models.User) ([]*models.Notification, error)
	UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) (*models.Notification, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
	bookingRepo      repositories.BookingRepository
	roomRepo         repositories.RoomRepository
	log              *logrus.Logger
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	bookingRepo repositories.BookingRepository,
	roomRepo repositories.RoomRepository,
	log *logrus.Logger,
) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		log:              log,
	}
}

func (s *notificationService) ListFor(ctx context.Context, user *models.User) ([]*models.Notification, error) {
	if user.IsAdmin() {
		return s.notificationRepo.ListAll(ctx)
	}
	return s.notificationRepo.ListByUser(ctx, user.ID)
}

func (s *notificationService) UpdateStatus(ctx context.Context, id string, status models.NotificationStatus) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, fmt.Errorf("%w: notification %s", common.ErrNotFound, id)
	}
	if !notification.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move notification from %s to %s", common.ErrInvalidState, notification.Status, status)
	}

	if err := s.notificationRepo.Update(ctx, id, map[string]any{"status": string(status)}); err != nil {
		return nil, err
	}
	notification.Status = status

	if notification.BookingID != "" {
		if err := s.cascade(ctx, notification.BookingID, status); err != nil {
			return nil, err
		}
	}
	return notification, nil
}

// cascade applies an approval decision to the referenced booking. The
// write goes straight to the booking, not through its transition table,
// so re-applying the same decision stays idempotent. A booking that no
// longer resolves, typically because its room was deleted, is skipped.
func (s *notificationService) cascade(ctx context.Context, bookingID string, status models.NotificationStatus) error {
	var bookingStatus models.BookingStatus
	switch status {
	case models.NotificationApproved:
		bookingStatus = models.BookingApproved
	case models.NotificationRejected:
		bookingStatus = models.BookingRejected
	default:
		return nil
	}

	if err := s.bookingRepo.Update(ctx, bookingID, map[string]any{"status": string(bookingStatus)}); err != nil {
		return err
	}

	if bookingStatus != models.BookingApproved {
		return nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil || booking.Room == nil {
		s.log.Warnf("booking %s no longer resolves to a room, skipping occupancy update", bookingID)
		return nil
	}
	return s.roomRepo.Update(ctx, booking.Room.ID, map[string]any{"status": string(models.RoomOccupied)})
}
