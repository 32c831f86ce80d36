package participants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	participants map[uint]*Participant
	bookings     map[uint]bool
	nextID       uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		participants: make(map[uint]*Participant),
		bookings:     make(map[uint]bool),
		nextID:       1,
	}
}

func (f *fakeRepository) Create(_ context.Context, participant *Participant) error {
	participant.ID = f.nextID
	f.nextID++
	stored := *participant
	f.participants[participant.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uint) (*Participant, error) {
	p, ok := f.participants[id]
	if !ok {
		return nil, ErrParticipantNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeRepository) GetByBooking(_ context.Context, bookingID uint) ([]Participant, error) {
	var out []Participant
	for id := uint(1); id < f.nextID; id++ {
		if p, ok := f.participants[id]; ok && p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := f.participants[id]; !ok {
		return ErrParticipantNotFound
	}
	delete(f.participants, id)
	return nil
}

func (f *fakeRepository) BookingExists(_ context.Context, bookingID uint) (bool, error) {
	return f.bookings[bookingID], nil
}

func fixture() (*fakeRepository, Service) {
	repo := newFakeRepository()
	repo.bookings[1] = true
	return repo, NewService(repo)
}

func TestAddParticipant(t *testing.T) {
	_, svc := fixture()

	participant, err := svc.Add(context.Background(), AddParticipantRequest{
		BookingID:     1,
		Name:          "Arjun Patil",
		Age:           34,
		Gender:        "MALE",
		PhotoIDType:   "AADHAR",
		PhotoIDNumber: "1234-5678-9012",
		Category:      "ADULT",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), participant.ID)
	assert.Equal(t, "Arjun Patil", participant.Name)
}

func TestAddParticipant_UnknownBooking(t *testing.T) {
	_, svc := fixture()

	_, err := svc.Add(context.Background(), AddParticipantRequest{
		BookingID: 42,
		Name:      "Nobody",
		Age:       30,
		Gender:    "MALE",
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetParticipantsByBooking(t *testing.T) {
	_, svc := fixture()

	names := []string{"Arjun", "Meera", "Ishan"}
	for _, name := range names {
		_, err := svc.Add(context.Background(), AddParticipantRequest{
			BookingID: 1,
			Name:      name,
			Age:       30,
			Gender:    "OTHER",
		})
		require.NoError(t, err)
	}

	list, err := svc.GetByBooking(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Insertion order preserved
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}

func TestGetParticipantsByBooking_UnknownBooking(t *testing.T) {
	_, svc := fixture()

	_, err := svc.GetByBooking(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteParticipant(t *testing.T) {
	_, svc := fixture()

	participant, err := svc.Add(context.Background(), AddParticipantRequest{
		BookingID: 1,
		Name:      "Arjun",
		Age:       30,
		Gender:    "MALE",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), participant.ID))

	_, err = svc.GetByID(context.Background(), participant.ID)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
