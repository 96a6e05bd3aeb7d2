package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List(category string) ([]entity.Restaurant, error) {
	return s.Repo.FindAll(strings.ToLower(strings.TrimSpace(category)))
}

// Get accepts a numeric id or a restaurant name.
func (s *RestaurantService) Get(ref string) (*entity.Restaurant, error) {
	var (
		r   *entity.Restaurant
		err error
	)
	if id, perr := strconv.ParseUint(ref, 10, 64); perr == nil {
		r, err = s.Repo.FindByID(uint(id))
	} else {
		r, err = s.Repo.FindByName(ref)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Restaurant not found")
	}
	return r, err
}

type RestaurantIn struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Rating       *float64 `json:"rating"`
	DeliveryTime *string  `json:"delivery_time"`
	Image        *string  `json:"image"`
	PriceRange   *string  `json:"price_range"`
	Description  *string  `json:"description"`
	Address      *string  `json:"address"`
}

func (in *RestaurantIn) apply(r *entity.Restaurant) {
	setString(&r.Name, in.Name)
	setString(&r.Category, in.Category)
	r.Category = strings.ToLower(r.Category)
	setFloat(&r.Rating, in.Rating)
	setString(&r.DeliveryTime, in.DeliveryTime)
	setString(&r.Image, in.Image)
	setString(&r.PriceRange, in.PriceRange)
	setString(&r.Description, in.Description)
	setString(&r.Address, in.Address)
}

func validateRestaurant(r *entity.Restaurant) error {
	if r.Name == "" {
		return invalid("Name is required")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return invalid("Rating must be between 0 and 5")
	}
	return nil
}

func (s *RestaurantService) Create(in RestaurantIn) (*entity.Restaurant, error) {
	var r entity.Restaurant
	in.apply(&r)
	if err := validateRestaurant(&r); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RestaurantService) Update(id uint, in RestaurantIn) (*entity.Restaurant, error) {
	r, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Restaurant not found")
	}
	if err != nil {
		return nil, err
	}
	in.apply(r)
	if err := validateRestaurant(r); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RestaurantService) Delete(id uint) error {
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Restaurant not found")
	}
	return nil
}
