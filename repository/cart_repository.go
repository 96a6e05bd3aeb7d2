package repository

import (
	"errors"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindCart returns gorm.ErrRecordNotFound when the owner has no cart.
func (r *CartRepository) FindCart(tx *gorm.DB, ownerID string) (*entity.Cart, error) {
	var c entity.Cart
	if err := tx.Where("owner_id = ?", ownerID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// EnsureCart creates the owner's cart if missing. Safe under concurrent calls:
// the insert is a no-op when the unique owner_id already exists.
func (r *CartRepository) EnsureCart(tx *gorm.DB, ownerID string) (*entity.Cart, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoNothing: true,
	}).Create(&entity.Cart{OwnerID: ownerID}).Error
	if err != nil {
		return nil, err
	}
	return r.FindCart(tx, ownerID)
}

// Items of a cart in insertion order.
func (r *CartRepository) Items(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Order("id ASC").Find(&items).Error
	return items, err
}

// ItemsByOwner returns an empty slice when the owner has no cart.
func (r *CartRepository) ItemsByOwner(tx *gorm.DB, ownerID string) ([]entity.CartItem, error) {
	c, err := r.FindCart(tx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []entity.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.Items(tx, c.ID)
}

// IncrementItem inserts the line or adds its quantity to the existing line with
// the same item id, in one statement. Name and price of an existing line are
// kept.
func (r *CartRepository) IncrementItem(tx *gorm.DB, cartID uint, line entity.LineItem) error {
	row := entity.NewCartItem(cartID, line)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&row).Error
}

// SetQuantity reports whether a line was changed.
func (r *CartRepository) SetQuantity(tx *gorm.DB, cartID uint, itemID string, qty int) (bool, error) {
	res := tx.Model(&entity.CartItem{}).
		Where("cart_id = ? AND item_id = ?", cartID, itemID).
		Update("quantity", qty)
	return res.RowsAffected > 0, res.Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID uint, itemID string) error {
	return tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).Delete(&entity.CartItem{}).Error
}

// ClearItems empties the cart and keeps the cart row.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

// DeleteCart removes the cart row and its items.
func (r *CartRepository) DeleteCart(tx *gorm.DB, cartID uint) error {
	if err := r.ClearItems(tx, cartID); err != nil {
		return err
	}
	return tx.Delete(&entity.Cart{}, cartID).Error
}
