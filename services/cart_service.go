package services

import (
	"errors"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Log      *zap.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository, log *zap.Logger) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr, Log: log}
}

func lines(items []entity.CartItem) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.Line())
	}
	return out
}

func (s *CartService) Get(actor ActorID) ([]entity.LineItem, error) {
	items, err := s.CartRepo.ItemsByOwner(s.DB, string(actor))
	if err != nil {
		return nil, err
	}
	return lines(items), nil
}

// Add puts item in the actor's cart, creating the cart on first use. Adding
// an id that is already present increases its quantity.
func (s *CartService) Add(actor ActorID, item entity.LineItem) ([]entity.LineItem, error) {
	item.ItemID = strings.TrimSpace(item.ItemID)
	if item.ItemID == "" {
		return nil, invalid("Item id is required")
	}
	if item.Quantity < 1 {
		return nil, invalid("Quantity must be at least 1")
	}
	if item.UnitPrice.IsNegative() {
		return nil, invalid("Price cannot be negative")
	}

	var out []entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.EnsureCart(tx, string(actor))
		if err != nil {
			return err
		}
		if err := s.CartRepo.IncrementItem(tx, c.ID, item); err != nil {
			return err
		}
		out, err = s.CartRepo.Items(tx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

// AddFromCatalog prices the line from the menu so clients cannot set their
// own price.
func (s *CartService) AddFromCatalog(actor ActorID, itemID string, qty int) ([]entity.LineItem, error) {
	if qty == 0 {
		qty = 1
	}
	m, err := s.MenuRepo.FindByItemID(strings.TrimSpace(itemID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}
	return s.Add(actor, m.Line(qty))
}

// SetQuantity sets an exact quantity. qty <= 0 removes the line; unknown ids
// are ignored.
func (s *CartService) SetQuantity(actor ActorID, itemID string, qty int) ([]entity.LineItem, error) {
	var out []entity.CartItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.FindCart(tx, string(actor))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			out = []entity.CartItem{}
			return nil
		}
		if err != nil {
			return err
		}
		if qty <= 0 {
			err = s.CartRepo.RemoveItem(tx, c.ID, itemID)
		} else {
			_, err = s.CartRepo.SetQuantity(tx, c.ID, itemID, qty)
		}
		if err != nil {
			return err
		}
		out, err = s.CartRepo.Items(tx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}

func (s *CartService) Remove(actor ActorID, itemID string) ([]entity.LineItem, error) {
	return s.SetQuantity(actor, itemID, 0)
}

// Clear empties the cart but keeps the cart record.
func (s *CartService) Clear(actor ActorID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.FindCart(tx, string(actor))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return s.CartRepo.ClearItems(tx, c.ID)
	})
}

// MergeGuestIntoUser moves the guest cart into the user's cart and deletes
// the guest cart. Quantities of shared ids are summed; guest-only lines are
// appended in guest order. Without a guest cart this is a no-op, which makes
// the call safe to repeat.
func (s *CartService) MergeGuestIntoUser(guest, user ActorID) error {
	if guest == "" || guest == user {
		return nil
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		gc, err := s.CartRepo.FindCart(tx, string(guest))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		items, err := s.CartRepo.Items(tx, gc.ID)
		if err != nil {
			return err
		}

		if len(items) > 0 {
			uc, err := s.CartRepo.EnsureCart(tx, string(user))
			if err != nil {
				return err
			}
			for _, it := range items {
				if err := s.CartRepo.IncrementItem(tx, uc.ID, it.Line()); err != nil {
					return err
				}
			}
		}

		if err := s.CartRepo.DeleteCart(tx, gc.ID); err != nil {
			return err
		}
		s.Log.Info("guest cart merged",
			zap.String("guest", string(guest)),
			zap.String("user", string(user)),
			zap.Int("items", len(items)))
		return nil
	})
}
