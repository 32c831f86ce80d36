package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dharma/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrTempleNotFound     = errors.New("temple not found")
	ErrSlotNotFound       = errors.New("slot not found")
	ErrSlotTempleMismatch = errors.New("slot does not belong to the given temple")
)

// SMSPublisher queues a text message for asynchronous delivery.
// Failures are logged, never surfaced; a booking stands even when the
// confirmation SMS cannot be sent.
type SMSPublisher interface {
	PublishSMS(ctx context.Context, mobile, message string) error
}

type Service interface {
	CreateOnline(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	CreateKiosk(ctx context.Context, req KioskBookingRequest) (*Booking, error)
	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetAll(ctx context.Context) ([]Booking, error)
	GetByUser(ctx context.Context, userID string) ([]Booking, error)
	Update(ctx context.Context, id uint, req UpdateBookingRequest) (*Booking, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
	sms  SMSPublisher
	log  *logger.Logger
}

func NewService(repo Repository, sms SMSPublisher) Service {
	return &service{
		repo: repo,
		sms:  sms,
		log:  logger.GetDefault(),
	}
}

func (s *service) CreateOnline(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	temple, err := s.repo.GetTemple(ctx, req.TempleID)
	if err != nil {
		return nil, err
	}

	if req.SlotID != nil {
		slot, err := s.repo.GetSlot(ctx, *req.SlotID)
		if err != nil {
			return nil, err
		}
		if slot.TempleID != req.TempleID {
			return nil, ErrSlotTempleMismatch
		}
	}

	bookingDate := req.BookingDate
	if bookingDate == "" {
		bookingDate = time.Now().Format("2006-01-02")
	}

	booking := &Booking{
		BookingType:  BookingTypeOnline,
		Special:      req.Special,
		BookingDate:  bookingDate,
		MobileNumber: user.MobileNumber,
		TempleID:     req.TempleID,
		UserID:       &userID,
		SlotID:       req.SlotID,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID, booking.TempleID, userID.String())

	message := fmt.Sprintf(
		"Dear %s, your Dharma booking is confirmed!\nBooking ID: %d\nTemple: %s\nDate: %s\nThank you for using Dharma.",
		user.FirstName, booking.ID, temple.Name, booking.BookingDate,
	)
	s.sendSMS(ctx, user.MobileNumber, message)

	return booking, nil
}

func (s *service) CreateKiosk(ctx context.Context, req KioskBookingRequest) (*Booking, error) {
	temple, err := s.repo.GetTemple(ctx, req.TempleID)
	if err != nil {
		return nil, err
	}

	if req.SlotID != nil {
		slot, err := s.repo.GetSlot(ctx, *req.SlotID)
		if err != nil {
			return nil, err
		}
		if slot.TempleID != req.TempleID {
			return nil, ErrSlotTempleMismatch
		}
	}

	bookingDate := req.BookingDate
	if bookingDate == "" {
		bookingDate = time.Now().Format("2006-01-02")
	}

	// Kiosk bookings carry no user account
	booking := &Booking{
		BookingType:          BookingTypeOffline,
		Special:              req.Special,
		BookingDate:          bookingDate,
		MobileNumber:         req.MobileNumber,
		NumberOfParticipants: req.NumberOfParticipants,
		TempleID:             req.TempleID,
		SlotID:               req.SlotID,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.LogBookingCreated(ctx, booking.ID, booking.TempleID, "kiosk")

	message := fmt.Sprintf(
		"Your Dharma kiosk booking is confirmed!\nBooking ID: %d\nTemple: %s\nDate: %s\nNo. of Participants: %d\nThank you for visiting!",
		booking.ID, temple.Name, booking.BookingDate, booking.NumberOfParticipants,
	)
	s.sendSMS(ctx, req.MobileNumber, message)

	return booking, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetAll(ctx context.Context) ([]Booking, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByUser(ctx context.Context, userID string) ([]Booking, error) {
	parsed, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByUser(ctx, parsed)
}

func (s *service) Update(ctx context.Context, id uint, req UpdateBookingRequest) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var userID *uuid.UUID
	if req.UserID != nil {
		parsed, err := uuid.Parse(*req.UserID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		if _, err := s.repo.GetUser(ctx, parsed); err != nil {
			return nil, err
		}
		userID = &parsed
	}

	if _, err := s.repo.GetTemple(ctx, req.TempleID); err != nil {
		return nil, err
	}

	if req.SlotID != nil {
		slot, err := s.repo.GetSlot(ctx, *req.SlotID)
		if err != nil {
			return nil, err
		}
		if slot.TempleID != req.TempleID {
			return nil, ErrSlotTempleMismatch
		}
	}

	booking.BookingType = BookingType(req.BookingType)
	booking.Special = req.Special
	booking.TempleID = req.TempleID
	booking.UserID = userID
	booking.SlotID = req.SlotID
	if req.BookingDate != "" {
		booking.BookingDate = req.BookingDate
	}

	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.LogBookingCancelled(ctx, id, "deleted")
	return nil
}

func (s *service) sendSMS(ctx context.Context, mobile, message string) {
	if s.sms == nil {
		return
	}
	if err := s.sms.PublishSMS(ctx, mobile, message); err != nil {
		s.log.ErrorWithContext(ctx, "failed to queue booking SMS", err, map[string]interface{}{
			"mobile": mobile,
		})
	}
}
