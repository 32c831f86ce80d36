package slots

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"dharma/internal/temples"

	"gorm.io/gorm"
)

// createRetries bounds retries of the create transaction when the
// database reports a serialization conflict under contention.
const createRetries = 3

type Repository interface {
	TempleExists(ctx context.Context, templeID uint) (bool, error)
	HasOverlap(ctx context.Context, templeID uint, date string, startMinutes, endMinutes int) (bool, error)
	Create(ctx context.Context, slot *Slot) error
	GetByID(ctx context.Context, id uint) (*Slot, error)
	Update(ctx context.Context, id uint, apply func(*Slot) error) (*Slot, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filters ListFilters) ([]Slot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TempleExists(ctx context.Context, templeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&temples.Temple{}).Where("id = ?", templeID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasOverlap applies the open-interval test: an existing slot conflicts
// when existingStart < newEnd AND existingEnd > newStart.
func (r *repository) HasOverlap(ctx context.Context, templeID uint, date string, startMinutes, endMinutes int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Slot{}).
		Where("temple_id = ? AND date = ? AND start_minutes < ? AND end_minutes > ?",
			templeID, date, endMinutes, startMinutes).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a slot inside a serializable transaction. The overlap
// check is repeated under that isolation level and the per-temple slot
// number is assigned in the same transaction, so two concurrent creates
// for conflicting ranges cannot both commit. The database additionally
// carries a range exclusion constraint as a backstop.
func (r *repository) Create(ctx context.Context, slot *Slot) error {
	var lastErr error

	for attempt := 0; attempt < createRetries; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&Slot{}).
				Where("temple_id = ? AND date = ? AND start_minutes < ? AND end_minutes > ?",
					slot.TempleID, slot.Date, slot.EndMinutes, slot.StartMinutes).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrOverlap
			}

			var maxNumber int
			if err := tx.Model(&Slot{}).
				Where("temple_id = ?", slot.TempleID).
				Select("COALESCE(MAX(slot_number), 0)").
				Scan(&maxNumber).Error; err != nil {
				return err
			}
			slot.SlotNumber = maxNumber + 1

			return tx.Create(slot).Error
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})

		if err == nil {
			return nil
		}
		if errors.Is(err, ErrOverlap) || isExclusionViolation(err) {
			return ErrOverlap
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Slot, error) {
	var slot Slot
	err := r.db.WithContext(ctx).First(&slot, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// Update locks the slot row, hands the current state to apply, and
// persists whatever apply leaves behind. Validation errors returned by
// apply roll the transaction back.
func (r *repository) Update(ctx context.Context, id uint, apply func(*Slot) error) (*Slot, error) {
	var updated Slot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot Slot

		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			Where("id = ?", id).
			First(&slot).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if err := apply(&slot); err != nil {
			return err
		}

		if err := tx.Save(&slot).Error; err != nil {
			return err
		}

		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Slot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Slot, error) {
	db := r.db.WithContext(ctx).Model(&Slot{})

	if filters.TempleID != nil {
		db = db.Where("temple_id = ?", *filters.TempleID)
	}
	if filters.Date != nil {
		db = db.Where("date = ?", *filters.Date)
	}

	var slots []Slot
	err := db.Order("date ASC, start_minutes ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// Postgres error classification by SQLSTATE

func isSerializationFailure(err error) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE 40001")
}

func isExclusionViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "SQLSTATE 23P01")
}
