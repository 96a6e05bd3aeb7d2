// services/menu_service.go
package services

import (
	"errors"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(category string) ([]entity.MenuItem, error) {
	return s.Repo.FindAll(strings.ToLower(strings.TrimSpace(category)))
}

// Get finds an item by its public id ("p1").
func (s *MenuService) Get(itemID string) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByItemID(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Item not found")
	}
	return m, err
}

type MenuItemIn struct {
	ItemID      *string          `json:"item_id"`
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	Restaurant  *string          `json:"restaurant"`
	Rating      *float64         `json:"rating"`
	Badge       *string          `json:"badge"`
	Description *string          `json:"description"`
}

func (in *MenuItemIn) apply(m *entity.MenuItem) {
	setString(&m.ItemID, in.ItemID)
	setString(&m.Name, in.Name)
	setMoney(&m.Price, in.Price)
	setString(&m.Category, in.Category)
	m.Category = strings.ToLower(m.Category)
	setString(&m.Image, in.Image)
	setString(&m.Restaurant, in.Restaurant)
	setFloat(&m.Rating, in.Rating)
	setString(&m.Badge, in.Badge)
	setString(&m.Description, in.Description)
}

func validateMenuItem(m *entity.MenuItem) error {
	if m.Name == "" {
		return invalid("Name is required")
	}
	if !m.Price.IsPositive() {
		return invalid("Price must be greater than 0")
	}
	if m.Rating < 0 || m.Rating > 5 {
		return invalid("Rating must be between 0 and 5")
	}
	return nil
}

// Create assigns an item id when the admin did not send one.
func (s *MenuService) Create(in MenuItemIn) (*entity.MenuItem, error) {
	var m entity.MenuItem
	in.apply(&m)
	if err := validateMenuItem(&m); err != nil {
		return nil, err
	}
	if m.ItemID == "" {
		m.ItemID = "m" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	}
	if err := s.Repo.Create(&m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Item id already exists")
		}
		return nil, err
	}
	return &m, nil
}

// Update changes the catalog only. Carts and orders keep the lines they have.
func (s *MenuService) Update(id uint, in MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Item not found")
	}
	if err != nil {
		return nil, err
	}
	in.apply(m)
	if err := validateMenuItem(m); err != nil {
		return nil, err
	}
	if m.ItemID == "" {
		return nil, invalid("Item id cannot be empty")
	}
	if err := s.Repo.Update(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Item id already exists")
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(id uint) error {
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Item not found")
	}
	return nil
}
