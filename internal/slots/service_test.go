package slots

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository for exercising the
// validation and derivation rules without a database.
type fakeRepository struct {
	temples map[uint]bool
	slots   map[uint]*Slot
	nextID  uint
}

func newFakeRepository(templeIDs ...uint) *fakeRepository {
	temples := make(map[uint]bool)
	for _, id := range templeIDs {
		temples[id] = true
	}
	return &fakeRepository{
		temples: temples,
		slots:   make(map[uint]*Slot),
		nextID:  1,
	}
}

func (f *fakeRepository) TempleExists(_ context.Context, templeID uint) (bool, error) {
	return f.temples[templeID], nil
}

func (f *fakeRepository) HasOverlap(_ context.Context, templeID uint, date string, startMinutes, endMinutes int) (bool, error) {
	for _, s := range f.slots {
		if s.TempleID == templeID && s.Date == date &&
			s.StartMinutes < endMinutes && s.EndMinutes > startMinutes {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Create(ctx context.Context, slot *Slot) error {
	overlaps, _ := f.HasOverlap(ctx, slot.TempleID, slot.Date, slot.StartMinutes, slot.EndMinutes)
	if overlaps {
		return ErrOverlap
	}

	maxNumber := 0
	for _, s := range f.slots {
		if s.TempleID == slot.TempleID && s.SlotNumber > maxNumber {
			maxNumber = s.SlotNumber
		}
	}
	slot.SlotNumber = maxNumber + 1

	slot.ID = f.nextID
	f.nextID++
	stored := *slot
	f.slots[slot.ID] = &stored
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uint) (*Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	out := *s
	return &out, nil
}

func (f *fakeRepository) Update(_ context.Context, id uint, apply func(*Slot) error) (*Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, ErrSlotNotFound
	}

	working := *s
	if err := apply(&working); err != nil {
		return nil, err
	}

	f.slots[id] = &working
	out := working
	return &out, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uint) error {
	if _, ok := f.slots[id]; !ok {
		return ErrSlotNotFound
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context, filters ListFilters) ([]Slot, error) {
	var out []Slot
	for _, s := range f.slots {
		if filters.TempleID != nil && s.TempleID != *filters.TempleID {
			continue
		}
		if filters.Date != nil && s.Date != *filters.Date {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartMinutes < out[j].StartMinutes
	})
	return out, nil
}

func newTestService(templeIDs ...uint) (Service, *fakeRepository) {
	repo := newFakeRepository(templeIDs...)
	return NewService(repo), repo
}

func baseCreateRequest() CreateSlotRequest {
	return CreateSlotRequest{
		TempleID:               1,
		Date:                   "2025-01-10",
		StartTime:              "09:00",
		EndTime:                "11:00",
		Capacity:               100,
		ReservedOfflineTickets: 20,
	}
}

func TestCreateSlot_DerivesOnlineAndRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	slot, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, 80, slot.OnlineTickets)
	assert.Equal(t, 80, slot.Remaining)
	assert.Equal(t, 1, slot.SlotNumber)
	assert.Equal(t, 100, slot.Capacity)
	assert.Equal(t, 20, slot.ReservedOfflineTickets)
}

func TestCreateSlot_OverlapRejected(t *testing.T) {
	svc, _ := newTestService(1)

	_, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	second := baseCreateRequest()
	second.StartTime = "10:00"
	second.EndTime = "12:00"
	second.Capacity = 50
	second.ReservedOfflineTickets = 0

	_, err = svc.Create(context.Background(), second)
	assert.ErrorIs(t, err, ErrOverlap)
}

func TestCreateSlot_AdjacentRangesAllowed(t *testing.T) {
	svc, _ := newTestService(1)

	_, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	second := baseCreateRequest()
	second.StartTime = "11:00"
	second.EndTime = "12:00"
	second.Capacity = 50
	second.ReservedOfflineTickets = 0

	slot, err := svc.Create(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 2, slot.SlotNumber)
}

func TestCreateSlot_InvalidRange(t *testing.T) {
	svc, repo := newTestService(1)

	req := baseCreateRequest()
	req.StartTime = "11:00"
	req.EndTime = "09:00"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Empty(t, repo.slots, "nothing should be persisted on a rejected create")
}

func TestCreateSlot_TempleNotFound(t *testing.T) {
	svc, _ := newTestService(1)

	req := baseCreateRequest()
	req.TempleID = 42

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrTempleNotFound)
}

func TestCreateSlot_ReservationExceedsCapacity(t *testing.T) {
	svc, _ := newTestService(1)

	req := baseCreateRequest()
	req.ReservedOfflineTickets = 150

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidReservation)
}

func TestCreateSlot_ExplicitRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	remaining := 30
	req := baseCreateRequest()
	req.Remaining = &remaining

	slot, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, slot.Remaining)
	assert.Equal(t, 80, slot.OnlineTickets)
}

func TestCreateSlot_RemainingExceedsCapacity(t *testing.T) {
	svc, _ := newTestService(1)

	remaining := 120
	req := baseCreateRequest()
	req.Remaining = &remaining

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRemaining)
}

func TestCreateSlot_NegativeRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	remaining := -5
	req := baseCreateRequest()
	req.Remaining = &remaining

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestCreateSlot_NonPositiveCapacity(t *testing.T) {
	svc, _ := newTestService(1)

	req := baseCreateRequest()
	req.Capacity = 0
	req.ReservedOfflineTickets = 0

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestCreateSlot_SlotNumbersPerTemple(t *testing.T) {
	svc, _ := newTestService(1, 2)

	first, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, first.SlotNumber)

	second := baseCreateRequest()
	second.StartTime = "12:00"
	second.EndTime = "13:00"
	slot2, err := svc.Create(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 2, slot2.SlotNumber)

	// Another temple starts its own sequence
	other := baseCreateRequest()
	other.TempleID = 2
	slotOther, err := svc.Create(context.Background(), other)
	require.NoError(t, err)
	assert.Equal(t, 1, slotOther.SlotNumber)
}

func TestUpdateSlot_CapacityIncreaseShiftsRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	capacity := 150
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{Capacity: &capacity})
	require.NoError(t, err)

	assert.Equal(t, 150, updated.Capacity)
	assert.Equal(t, 130, updated.OnlineTickets)
	assert.Equal(t, 130, updated.Remaining) // 80 + (150 - 100)
}

func TestUpdateSlot_CapacityDecreaseFloorsRemainingAtZero(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	remaining := 10
	_, err = svc.Update(context.Background(), created.ID, UpdateSlotRequest{Remaining: &remaining})
	require.NoError(t, err)

	capacity := 50
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{Capacity: &capacity})
	require.NoError(t, err)

	assert.Equal(t, 0, updated.Remaining) // max(0, 10 + (50 - 100))
}

func TestUpdateSlot_ReservationChangeShiftsRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	reserved := 50
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{ReservedOfflineTickets: &reserved})
	require.NoError(t, err)

	assert.Equal(t, 50, updated.OnlineTickets)
	assert.Equal(t, 50, updated.Remaining) // 80 - (50 - 20)
	assert.Equal(t, 100, updated.Capacity)
}

func TestUpdateSlot_ReservationDecreaseRaisesRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	reserved := 10
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{ReservedOfflineTickets: &reserved})
	require.NoError(t, err)

	assert.Equal(t, 90, updated.OnlineTickets)
	assert.Equal(t, 90, updated.Remaining) // 80 - (10 - 20)
}

func TestUpdateSlot_CapacityBranchWinsOverReservation(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	// When both capacity and reserved are patched together, only the
	// capacity formula adjusts remaining; the reservation delta does not
	// apply its own subtraction.
	capacity := 150
	reserved := 50
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{
		Capacity:               &capacity,
		ReservedOfflineTickets: &reserved,
	})
	require.NoError(t, err)

	assert.Equal(t, 150, updated.Capacity)
	assert.Equal(t, 50, updated.ReservedOfflineTickets)
	assert.Equal(t, 100, updated.OnlineTickets)
	assert.Equal(t, 130, updated.Remaining) // 80 + (150 - 100), not further reduced
}

func TestUpdateSlot_ExplicitRemainingOverridesComputed(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	capacity := 150
	remaining := 42
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{
		Capacity:  &capacity,
		Remaining: &remaining,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, updated.Remaining)
}

func TestUpdateSlot_RejectsNegativeRemaining(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	remaining := -1
	_, err = svc.Update(context.Background(), created.ID, UpdateSlotRequest{Remaining: &remaining})
	assert.ErrorIs(t, err, ErrInvalidRemaining)
}

func TestUpdateSlot_RejectsRemainingAboveCapacity(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	remaining := 500
	_, err = svc.Update(context.Background(), created.ID, UpdateSlotRequest{Remaining: &remaining})
	assert.ErrorIs(t, err, ErrInvalidRemaining)
}

func TestUpdateSlot_RejectsReservationAboveCapacity(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	reserved := 200
	_, err = svc.Update(context.Background(), created.ID, UpdateSlotRequest{ReservedOfflineTickets: &reserved})
	assert.ErrorIs(t, err, ErrInvalidReservation)
}

func TestUpdateSlot_RejectsNonPositiveCapacity(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	capacity := 0
	_, err = svc.Update(context.Background(), created.ID, UpdateSlotRequest{Capacity: &capacity})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestUpdateSlot_FinalRangeValidation(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	// Moving only the end time before the existing start fails the
	// final range re-validation.
	end := "08:00"
	_, err = svc.Update(context.Background(), created.ID, UpdateSlotRequest{EndTime: &end})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUpdateSlot_NoOverlapRecheck(t *testing.T) {
	svc, repo := newTestService(1)

	first, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	second := baseCreateRequest()
	second.StartTime = "11:00"
	second.EndTime = "13:00"
	created, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	// Create enforces no-overlap, Update does not: moving a slot's
	// range onto a sibling succeeds. Overlap is only a creation-time
	// rule.
	start := "10:00"
	end := "12:00"
	updated, err := svc.Update(context.Background(), created.ID, UpdateSlotRequest{
		StartTime: &start,
		EndTime:   &end,
	})
	require.NoError(t, err)

	assert.Equal(t, 600, updated.StartMinutes) // 10:00
	assert.Equal(t, 720, updated.EndMinutes)   // 12:00
	assert.True(t, updated.StartMinutes < repo.slots[first.ID].EndMinutes,
		"the moved range intersects the sibling and is still accepted")
}

func TestUpdateSlot_NotFound(t *testing.T) {
	svc, _ := newTestService(1)

	capacity := 10
	_, err := svc.Update(context.Background(), 999, UpdateSlotRequest{Capacity: &capacity})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDeleteSlot(t *testing.T) {
	svc, _ := newTestService(1)

	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrSlotNotFound)
}

func TestListSlots_OrderingAndFilters(t *testing.T) {
	svc, _ := newTestService(1, 2)

	mk := func(templeID uint, date, start, end string) {
		t.Helper()
		req := CreateSlotRequest{
			TempleID:  templeID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Capacity:  10,
		}
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	mk(1, "2025-01-11", "09:00", "10:00")
	mk(1, "2025-01-10", "14:00", "15:00")
	mk(1, "2025-01-10", "09:00", "10:00")
	mk(2, "2025-01-10", "09:00", "10:00")

	templeID := uint(1)
	slots, err := svc.List(context.Background(), ListFilters{TempleID: &templeID})
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, "2025-01-10", slots[0].Date)
	assert.Equal(t, "09:00", FormatClock(slots[0].StartMinutes))
	assert.Equal(t, "2025-01-10", slots[1].Date)
	assert.Equal(t, "14:00", FormatClock(slots[1].StartMinutes))
	assert.Equal(t, "2025-01-11", slots[2].Date)

	date := "2025-01-10"
	slots, err = svc.List(context.Background(), ListFilters{TempleID: &templeID, Date: &date})
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	// Repeated reads without intervening mutation return identical results
	again, err := svc.List(context.Background(), ListFilters{TempleID: &templeID, Date: &date})
	require.NoError(t, err)
	assert.Equal(t, slots, again)
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "00:00", FormatClock(0))
}
