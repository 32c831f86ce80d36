package tickets

import (
	"context"
	"errors"

	"dharma/internal/bookings"
	"dharma/internal/participants"
	"dharma/internal/slots"
	"dharma/internal/temples"
	"dharma/internal/users"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)

	// Related-entity lookups used to build ticket snapshots and live
	// views. All of them return (nil, nil) when the row is missing so
	// callers can fall back to snapshot data.
	GetBooking(ctx context.Context, id uint) (*bookings.Booking, error)
	GetSlot(ctx context.Context, id uint) (*slots.Slot, error)
	GetTemple(ctx context.Context, id uint) (*temples.Temple, error)
	GetUser(ctx context.Context, id string) (*users.User, error)
	GetParticipants(ctx context.Context, bookingID uint) ([]participants.Participant, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetBooking(ctx context.Context, id uint) (*bookings.Booking, error) {
	var booking bookings.Booking
	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetSlot(ctx context.Context, id uint) (*slots.Slot, error) {
	var slot slots.Slot
	err := r.db.WithContext(ctx).First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *repository) GetTemple(ctx context.Context, id uint) (*temples.Temple, error) {
	var temple temples.Temple
	err := r.db.WithContext(ctx).First(&temple, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &temple, nil
}

func (r *repository) GetUser(ctx context.Context, id string) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetParticipants(ctx context.Context, bookingID uint) ([]participants.Participant, error) {
	var list []participants.Participant
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("id ASC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
