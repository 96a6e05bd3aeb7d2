package repository

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"gorm.io/gorm"
)

type OfferRepository struct {
	DB *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: db}
}

// WithTx scopes the repository to a transaction.
func (r *OfferRepository) WithTx(tx *gorm.DB) *OfferRepository {
	return &OfferRepository{DB: tx}
}

func (r *OfferRepository) FindAll() ([]entity.Offer, error) {
	var out []entity.Offer
	err := r.DB.Order("id ASC").Find(&out).Error
	return out, err
}

// FindByCode expects an already normalized (trimmed, upper-case) code.
func (r *OfferRepository) FindByCode(code string) (*entity.Offer, error) {
	var o entity.Offer
	if err := r.DB.Where("code = ?", code).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) FindByID(id uint) (*entity.Offer, error) {
	var o entity.Offer
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OfferRepository) Create(o *entity.Offer) error {
	return r.DB.Create(o).Error
}

func (r *OfferRepository) Update(o *entity.Offer) error {
	return r.DB.Save(o).Error
}

func (r *OfferRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Offer{}, id)
	return res.RowsAffected > 0, res.Error
}
