package repository

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) WithTx(tx *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: tx}
}

// Get returns gorm.ErrRecordNotFound before the row is seeded.
func (r *SettingsRepository) Get() (*entity.Setting, error) {
	var s entity.Setting
	if err := r.DB.First(&s, 1).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *entity.Setting) error {
	s.ID = 1
	return r.DB.Save(s).Error
}
