package repository

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindAll filters by category unless it is empty or "all".
func (r *MenuRepository) FindAll(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Order("id ASC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&items).Error
	return items, err
}

// FindByItemID looks up the public item id such as "p1".
func (r *MenuRepository) FindByItemID(itemID string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("item_id = ?", itemID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Update(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *MenuRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&n).Error
	return n, err
}
