package bookings

import (
	"context"
	"testing"

	"dharma/internal/slots"
	"dharma/internal/temples"
	"dharma/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	users    map[uuid.UUID]*users.User
	temples  map[uint]*temples.Temple
	slots    map[uint]*slots.Slot
	bookings map[uint]*Booking
	nextID   uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:    make(map[uuid.UUID]*users.User),
		temples:  make(map[uint]*temples.Temple),
		slots:    make(map[uint]*slots.Slot),
		bookings: make(map[uint]*Booking),
		nextID:   1,
	}
}

func (f *fakeRepository) Create(_ context.Context, booking *Booking) error {
	booking.ID = f.nextID
	f.nextID++
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uint) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeRepository) GetAll(_ context.Context) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepository) GetByUser(_ context.Context, userID uuid.UUID) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepository) Save(_ context.Context, booking *Booking) error {
	stored := *booking
	f.bookings[booking.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := f.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepository) GetUser(_ context.Context, userID uuid.UUID) (*users.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (f *fakeRepository) GetTemple(_ context.Context, templeID uint) (*temples.Temple, error) {
	t, ok := f.temples[templeID]
	if !ok {
		return nil, ErrTempleNotFound
	}
	return t, nil
}

func (f *fakeRepository) GetSlot(_ context.Context, slotID uint) (*slots.Slot, error) {
	s, ok := f.slots[slotID]
	if !ok {
		return nil, ErrSlotNotFound
	}
	return s, nil
}

type fakeSMS struct {
	sent []string
	fail error
}

func (f *fakeSMS) PublishSMS(_ context.Context, mobile, _ string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, mobile)
	return nil
}

func fixture() (*fakeRepository, uuid.UUID) {
	repo := newFakeRepository()

	userID := uuid.New()
	repo.users[userID] = &users.User{
		ID:           userID,
		FirstName:    "Asha",
		MobileNumber: "9876543210",
	}
	repo.temples[1] = &temples.Temple{ID: 1, Name: "Shri Siddhivinayak"}
	repo.slots[10] = &slots.Slot{ID: 10, TempleID: 1}
	repo.slots[20] = &slots.Slot{ID: 20, TempleID: 2}

	return repo, userID
}

func TestCreateOnlineBooking(t *testing.T) {
	repo, userID := fixture()
	sms := &fakeSMS{}
	svc := NewService(repo, sms)

	slotID := uint(10)
	booking, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:      userID.String(),
		TempleID:    1,
		SlotID:      &slotID,
		BookingDate: "2025-02-01",
	})
	require.NoError(t, err)

	assert.Equal(t, BookingTypeOnline, booking.BookingType)
	assert.Equal(t, "9876543210", booking.MobileNumber, "mobile comes from the user record")
	require.NotNil(t, booking.UserID)
	assert.Equal(t, userID, *booking.UserID)
	assert.Equal(t, []string{"9876543210"}, sms.sent)
}

func TestCreateOnlineBooking_UnknownUser(t *testing.T) {
	repo, _ := fixture()
	svc := NewService(repo, nil)

	_, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:   uuid.NewString(),
		TempleID: 1,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateOnlineBooking_SlotTempleMismatch(t *testing.T) {
	repo, userID := fixture()
	svc := NewService(repo, nil)

	slotID := uint(20) // belongs to temple 2
	_, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:   userID.String(),
		TempleID: 1,
		SlotID:   &slotID,
	})
	assert.ErrorIs(t, err, ErrSlotTempleMismatch)
}

func TestCreateOnlineBooking_SMSFailureDoesNotFailBooking(t *testing.T) {
	repo, userID := fixture()
	sms := &fakeSMS{fail: assert.AnError}
	svc := NewService(repo, sms)

	booking, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:   userID.String(),
		TempleID: 1,
	})
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
}

func TestCreateKioskBooking(t *testing.T) {
	repo, _ := fixture()
	sms := &fakeSMS{}
	svc := NewService(repo, sms)

	booking, err := svc.CreateKiosk(context.Background(), KioskBookingRequest{
		TempleID:             1,
		MobileNumber:         "9123456789",
		NumberOfParticipants: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, BookingTypeOffline, booking.BookingType)
	assert.Nil(t, booking.UserID, "kiosk bookings have no user account")
	assert.Equal(t, 4, booking.NumberOfParticipants)
	assert.NotEmpty(t, booking.BookingDate, "date defaults to today when omitted")
	assert.Equal(t, []string{"9123456789"}, sms.sent)
}

func TestCreateKioskBooking_UnknownTemple(t *testing.T) {
	repo, _ := fixture()
	svc := NewService(repo, nil)

	_, err := svc.CreateKiosk(context.Background(), KioskBookingRequest{
		TempleID:             99,
		MobileNumber:         "9123456789",
		NumberOfParticipants: 1,
	})
	assert.ErrorIs(t, err, ErrTempleNotFound)
}

func TestGetBookingsByUser(t *testing.T) {
	repo, userID := fixture()
	svc := NewService(repo, nil)

	_, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:   userID.String(),
		TempleID: 1,
	})
	require.NoError(t, err)

	_, err = svc.CreateKiosk(context.Background(), KioskBookingRequest{
		TempleID:             1,
		MobileNumber:         "9123456789",
		NumberOfParticipants: 2,
	})
	require.NoError(t, err)

	bookings, err := svc.GetByUser(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestUpdateBooking(t *testing.T) {
	repo, userID := fixture()
	svc := NewService(repo, nil)

	created, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:   userID.String(),
		TempleID: 1,
	})
	require.NoError(t, err)

	slotID := uint(10)
	uid := userID.String()
	updated, err := svc.Update(context.Background(), created.ID, UpdateBookingRequest{
		BookingType: "OFFLINE",
		UserID:      &uid,
		TempleID:    1,
		SlotID:      &slotID,
		Special:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, BookingTypeOffline, updated.BookingType)
	assert.True(t, updated.Special)
	require.NotNil(t, updated.SlotID)
	assert.Equal(t, slotID, *updated.SlotID)
}

func TestDeleteBooking(t *testing.T) {
	repo, userID := fixture()
	svc := NewService(repo, nil)

	created, err := svc.CreateOnline(context.Background(), CreateBookingRequest{
		UserID:   userID.String(),
		TempleID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
