package temples

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, temple *Temple) error
	GetByID(ctx context.Context, id uint) (*Temple, error)
	GetByName(ctx context.Context, name string) (*Temple, error)
	GetAll(ctx context.Context) ([]Temple, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, temple *Temple) error {
	return r.db.WithContext(ctx).Create(temple).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Temple, error) {
	var temple Temple
	err := r.db.WithContext(ctx).First(&temple, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTempleNotFound
		}
		return nil, err
	}
	return &temple, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*Temple, error) {
	var temple Temple
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&temple).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTempleNotFound
		}
		return nil, err
	}
	return &temple, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Temple, error) {
	var temples []Temple
	err := r.db.WithContext(ctx).Order("id ASC").Find(&temples).Error
	if err != nil {
		return nil, err
	}
	return temples, nil
}

func (r *repository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Temple{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTempleNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Temple{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTempleNotFound
	}
	return nil
}
