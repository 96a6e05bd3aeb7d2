package repository

import (
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindAll(category string) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	q := r.DB.Order("id ASC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByName(name string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("name = ?", name).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) (bool, error) {
	res := r.DB.Delete(&entity.Restaurant{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *RestaurantRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&n).Error
	return n, err
}
