package parking

import (
	"context"
	"errors"

	"dharma/internal/temples"

	"gorm.io/gorm"
)

type Repository interface {
	CreateZone(ctx context.Context, zone *Zone) error
	GetZoneByID(ctx context.Context, id uint) (*Zone, error)
	GetZones(ctx context.Context) ([]Zone, error)
	GetZonesByTemple(ctx context.Context, templeID uint) ([]Zone, error)
	UpdateZone(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteZone(ctx context.Context, id uint) error

	CreateSlot(ctx context.Context, slot *ParkingSlot) error
	GetSlotByID(ctx context.Context, id uint) (*ParkingSlot, error)
	GetSlotsByZone(ctx context.Context, zoneID uint) ([]ParkingSlot, error)
	UpdateSlot(ctx context.Context, id uint, updates map[string]interface{}) error
	DeleteSlot(ctx context.Context, id uint) error

	TempleExists(ctx context.Context, templeID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateZone(ctx context.Context, zone *Zone) error {
	return r.db.WithContext(ctx).Create(zone).Error
}

func (r *repository) GetZoneByID(ctx context.Context, id uint) (*Zone, error) {
	var zone Zone
	err := r.db.WithContext(ctx).First(&zone, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}
	return &zone, nil
}

func (r *repository) GetZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	err := r.db.WithContext(ctx).Order("id ASC").Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *repository) GetZonesByTemple(ctx context.Context, templeID uint) ([]Zone, error) {
	var zones []Zone
	err := r.db.WithContext(ctx).Where("temple_id = ?", templeID).Order("id ASC").Find(&zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *repository) UpdateZone(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Zone{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrZoneNotFound
	}
	return nil
}

func (r *repository) DeleteZone(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("zone_id = ?", id).Delete(&ParkingSlot{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Zone{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrZoneNotFound
		}
		return nil
	})
}

func (r *repository) CreateSlot(ctx context.Context, slot *ParkingSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *repository) GetSlotByID(ctx context.Context, id uint) (*ParkingSlot, error) {
	var slot ParkingSlot
	err := r.db.WithContext(ctx).First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParkingSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *repository) GetSlotsByZone(ctx context.Context, zoneID uint) ([]ParkingSlot, error) {
	var slots []ParkingSlot
	err := r.db.WithContext(ctx).Where("zone_id = ?", zoneID).Order("id ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repository) UpdateSlot(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&ParkingSlot{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParkingSlotNotFound
	}
	return nil
}

func (r *repository) DeleteSlot(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ParkingSlot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrParkingSlotNotFound
	}
	return nil
}

func (r *repository) TempleExists(ctx context.Context, templeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&temples.Temple{}).Where("id = ?", templeID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
