package parking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	zones      map[uint]*Zone
	slots      map[uint]*ParkingSlot
	temples    map[uint]bool
	nextZoneID uint
	nextSlotID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		zones:      make(map[uint]*Zone),
		slots:      make(map[uint]*ParkingSlot),
		temples:    make(map[uint]bool),
		nextZoneID: 1,
		nextSlotID: 1,
	}
}

func (f *fakeRepository) CreateZone(_ context.Context, zone *Zone) error {
	zone.ID = f.nextZoneID
	f.nextZoneID++
	stored := *zone
	f.zones[zone.ID] = &stored
	return nil
}

func (f *fakeRepository) GetZoneByID(_ context.Context, id uint) (*Zone, error) {
	z, ok := f.zones[id]
	if !ok {
		return nil, ErrZoneNotFound
	}
	out := *z
	return &out, nil
}

func (f *fakeRepository) GetZones(_ context.Context) ([]Zone, error) {
	var out []Zone
	for _, z := range f.zones {
		out = append(out, *z)
	}
	return out, nil
}

func (f *fakeRepository) GetZonesByTemple(_ context.Context, templeID uint) ([]Zone, error) {
	var out []Zone
	for _, z := range f.zones {
		if z.TempleID == templeID {
			out = append(out, *z)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateZone(_ context.Context, id uint, updates map[string]interface{}) error {
	z, ok := f.zones[id]
	if !ok {
		return ErrZoneNotFound
	}
	if v, ok := updates["total_slots"]; ok {
		z.TotalSlots = v.(int)
	}
	if v, ok := updates["free_slots"]; ok {
		z.FreeSlots = v.(int)
	}
	if v, ok := updates["filled_slots"]; ok {
		z.FilledSlots = v.(int)
	}
	if v, ok := updates["two_wheeler"]; ok {
		z.TwoWheeler = v.(int)
	}
	if v, ok := updates["four_wheeler"]; ok {
		z.FourWheeler = v.(int)
	}
	if v, ok := updates["cctv_count"]; ok {
		z.CCTVCount = v.(int)
	}
	if v, ok := updates["active"]; ok {
		z.Active = v.(bool)
	}
	return nil
}

func (f *fakeRepository) DeleteZone(_ context.Context, id uint) error {
	if _, ok := f.zones[id]; !ok {
		return ErrZoneNotFound
	}
	delete(f.zones, id)
	for slotID, slot := range f.slots {
		if slot.ZoneID == id {
			delete(f.slots, slotID)
		}
	}
	return nil
}

func (f *fakeRepository) CreateSlot(_ context.Context, slot *ParkingSlot) error {
	slot.ID = f.nextSlotID
	f.nextSlotID++
	stored := *slot
	f.slots[slot.ID] = &stored
	return nil
}

func (f *fakeRepository) GetSlotByID(_ context.Context, id uint) (*ParkingSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, ErrParkingSlotNotFound
	}
	out := *s
	return &out, nil
}

func (f *fakeRepository) GetSlotsByZone(_ context.Context, zoneID uint) ([]ParkingSlot, error) {
	var out []ParkingSlot
	for _, s := range f.slots {
		if s.ZoneID == zoneID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepository) UpdateSlot(_ context.Context, id uint, updates map[string]interface{}) error {
	s, ok := f.slots[id]
	if !ok {
		return ErrParkingSlotNotFound
	}
	if v, ok := updates["available"]; ok {
		s.Available = v.(bool)
	}
	if v, ok := updates["active"]; ok {
		s.Active = v.(bool)
	}
	if v, ok := updates["capacity"]; ok {
		s.Capacity = v.(int)
	}
	return nil
}

func (f *fakeRepository) DeleteSlot(_ context.Context, id uint) error {
	if _, ok := f.slots[id]; !ok {
		return ErrParkingSlotNotFound
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeRepository) TempleExists(_ context.Context, templeID uint) (bool, error) {
	return f.temples[templeID], nil
}

func fixture() (*fakeRepository, Service) {
	repo := newFakeRepository()
	repo.temples[1] = true
	return repo, NewService(repo)
}

func TestCreateZone(t *testing.T) {
	_, svc := fixture()

	zone, err := svc.CreateZone(context.Background(), CreateZoneRequest{
		TempleID:    1,
		TotalSlots:  50,
		FreeSlots:   50,
		TwoWheeler:  30,
		FourWheeler: 20,
		CCTVCount:   8,
		Active:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), zone.ID)
	assert.Equal(t, 50, zone.TotalSlots)
	assert.True(t, zone.Active)
}

func TestCreateZone_UnknownTemple(t *testing.T) {
	_, svc := fixture()

	_, err := svc.CreateZone(context.Background(), CreateZoneRequest{TempleID: 42})
	assert.ErrorIs(t, err, ErrTempleNotFound)
}

func TestUpdateZone_PartialPatch(t *testing.T) {
	_, svc := fixture()

	zone, err := svc.CreateZone(context.Background(), CreateZoneRequest{
		TempleID: 1, TotalSlots: 50, FreeSlots: 50, Active: true,
	})
	require.NoError(t, err)

	free := 35
	filled := 15
	updated, err := svc.UpdateZone(context.Background(), zone.ID, UpdateZoneRequest{
		FreeSlots:   &free,
		FilledSlots: &filled,
	})
	require.NoError(t, err)

	assert.Equal(t, 35, updated.FreeSlots)
	assert.Equal(t, 15, updated.FilledSlots)
	// Untouched fields keep their values
	assert.Equal(t, 50, updated.TotalSlots)
	assert.True(t, updated.Active)
}

func TestDeleteZone_RemovesChildSlots(t *testing.T) {
	repo, svc := fixture()

	zone, err := svc.CreateZone(context.Background(), CreateZoneRequest{TempleID: 1, Active: true})
	require.NoError(t, err)

	_, err = svc.CreateSlot(context.Background(), CreateParkingSlotRequest{
		ZoneID: zone.ID, Available: true, Active: true, Capacity: 12,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteZone(context.Background(), zone.ID))

	assert.Empty(t, repo.zones)
	assert.Empty(t, repo.slots)
}

func TestCreateSlot_UnknownZone(t *testing.T) {
	_, svc := fixture()

	_, err := svc.CreateSlot(context.Background(), CreateParkingSlotRequest{
		ZoneID: 99, Capacity: 12,
	})
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestGetSlotsByZone(t *testing.T) {
	_, svc := fixture()

	zone, err := svc.CreateZone(context.Background(), CreateZoneRequest{TempleID: 1, Active: true})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSlot(context.Background(), CreateParkingSlotRequest{
			ZoneID: zone.ID, Available: true, Active: true, Capacity: 10 + i,
		})
		require.NoError(t, err)
	}

	slots, err := svc.GetSlotsByZone(context.Background(), zone.ID)
	require.NoError(t, err)
	assert.Len(t, slots, 3)
}

func TestGetSlotsByZone_UnknownZone(t *testing.T) {
	_, svc := fixture()

	_, err := svc.GetSlotsByZone(context.Background(), 99)
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestUpdateParkingSlot(t *testing.T) {
	_, svc := fixture()

	zone, err := svc.CreateZone(context.Background(), CreateZoneRequest{TempleID: 1, Active: true})
	require.NoError(t, err)

	slot, err := svc.CreateSlot(context.Background(), CreateParkingSlotRequest{
		ZoneID: zone.ID, Available: true, Active: true, Capacity: 12,
	})
	require.NoError(t, err)

	unavailable := false
	updated, err := svc.UpdateSlot(context.Background(), slot.ID, UpdateParkingSlotRequest{
		Available: &unavailable,
	})
	require.NoError(t, err)

	assert.False(t, updated.Available)
	assert.Equal(t, 12, updated.Capacity)
}
