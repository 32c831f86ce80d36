package participants

import (
	"context"
	"errors"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrBookingNotFound     = errors.New("booking not found")
)

type Service interface {
	Add(ctx context.Context, req AddParticipantRequest) (*Participant, error)
	GetByID(ctx context.Context, id uint) (*Participant, error)
	GetByBooking(ctx context.Context, bookingID uint) ([]Participant, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, req AddParticipantRequest) (*Participant, error) {
	exists, err := s.repo.BookingExists(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBookingNotFound
	}

	participant := &Participant{
		BookingID:     req.BookingID,
		Name:          req.Name,
		Age:           req.Age,
		Gender:        req.Gender,
		PhotoIDType:   req.PhotoIDType,
		PhotoIDNumber: req.PhotoIDNumber,
		Category:      req.Category,
	}

	if err := s.repo.Create(ctx, participant); err != nil {
		return nil, err
	}

	return participant, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Participant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByBooking(ctx context.Context, bookingID uint) ([]Participant, error) {
	exists, err := s.repo.BookingExists(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBookingNotFound
	}

	return s.repo.GetByBooking(ctx, bookingID)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
