package participants

import (
	"context"
	"errors"

	"dharma/internal/bookings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, participant *Participant) error
	GetByID(ctx context.Context, id uint) (*Participant, error)
	GetByBooking(ctx context.Context, bookingID uint) ([]Participant, error)
	Delete(ctx context.Context, id uint) error
	BookingExists(ctx context.Context, bookingID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, participant *Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Participant, error) {
	var participant Participant
	err := r.db.WithContext(ctx).First(&participant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return &participant, nil
}

func (r *repository) GetByBooking(ctx context.Context, bookingID uint) ([]Participant, error) {
	var participants []Participant
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("id ASC").Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Participant{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}
	return nil
}

func (r *repository) BookingExists(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).Where("id = ?", bookingID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
