package payments

import (
	"context"
	"errors"

	"dharma/internal/bookings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	GetByBooking(ctx context.Context, bookingID uint) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
	BookingExists(ctx context.Context, bookingID uint) (bool, error)
	GetBooking(ctx context.Context, bookingID uint) (*bookings.Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *repository) GetByBooking(ctx context.Context, bookingID uint) ([]Payment, error) {
	var payments []Payment
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Order("id ASC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) Save(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *repository) GetBooking(ctx context.Context, bookingID uint) (*bookings.Booking, error) {
	var booking bookings.Booking
	err := r.db.WithContext(ctx).First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) BookingExists(ctx context.Context, bookingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&bookings.Booking{}).Where("id = ?", bookingID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
