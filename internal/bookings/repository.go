package bookings

import (
	"context"
	"errors"

	"dharma/internal/slots"
	"dharma/internal/temples"
	"dharma/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uint) (*Booking, error)
	GetAll(ctx context.Context) ([]Booking, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	Save(ctx context.Context, booking *Booking) error
	Delete(ctx context.Context, id uint) error

	GetUser(ctx context.Context, userID uuid.UUID) (*users.User, error)
	GetTemple(ctx context.Context, templeID uint) (*temples.Temple, error)
	GetSlot(ctx context.Context, slotID uint) (*slots.Slot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) Save(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Booking{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) GetUser(ctx context.Context, userID uuid.UUID) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetTemple(ctx context.Context, templeID uint) (*temples.Temple, error) {
	var temple temples.Temple
	err := r.db.WithContext(ctx).First(&temple, templeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTempleNotFound
		}
		return nil, err
	}
	return &temple, nil
}

func (r *repository) GetSlot(ctx context.Context, slotID uint) (*slots.Slot, error) {
	var slot slots.Slot
	err := r.db.WithContext(ctx).First(&slot, slotID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}
