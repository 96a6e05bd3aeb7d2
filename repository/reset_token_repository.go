package repository

import (
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"gorm.io/gorm"
)

type ResetTokenRepository struct {
	DB *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) *ResetTokenRepository {
	return &ResetTokenRepository{DB: db}
}

// Replace drops earlier tokens for the email and stores t.
func (r *ResetTokenRepository) Replace(t *entity.PasswordResetToken) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", t.Email).Delete(&entity.PasswordResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

func (r *ResetTokenRepository) Find(token, code string) (*entity.PasswordResetToken, error) {
	var t entity.PasswordResetToken
	if err := r.DB.Where("token = ? AND code = ?", token, code).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *ResetTokenRepository) DeleteForEmail(tx *gorm.DB, email string) error {
	return tx.Where("email = ?", email).Delete(&entity.PasswordResetToken{}).Error
}

// PurgeExpired stands in for a TTL index.
func (r *ResetTokenRepository) PurgeExpired(now time.Time) error {
	return r.DB.Where("expires_at <= ?", now).Delete(&entity.PasswordResetToken{}).Error
}
