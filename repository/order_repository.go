package repository

import (
	"strings"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder inserts the order and its item snapshot.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByOrderID(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items", withItemOrder).Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// FindForOwner scopes the lookup to one actor.
func (r *OrderRepository) FindForOwner(ownerID, orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items", withItemOrder).
		Where("order_id = ? AND user_id = ?", orderID, ownerID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForOwner returns the actor's orders, newest first.
func (r *OrderRepository) ListForOwner(ownerID string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items", withItemOrder).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func withItemOrder(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

// UpdateStatus reports whether an order with that id exists.
func (r *OrderRepository) UpdateStatus(orderID string, status entity.OrderStatus) (bool, error) {
	res := r.DB.Model(&entity.Order{}).Where("order_id = ?", orderID).Update("status", status)
	return res.RowsAffected > 0, res.Error
}

// ----- admin queries -----

type OrderFilter struct {
	Status string // "" or "all" means any
	Search string // order id or customer name, case-insensitive
	Page   int
	Limit  int
}

func (f *OrderFilter) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	f.normalize()

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" && f.Status != "all" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(order_id) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Preload("Items", withItemOrder).
		Order("created_at DESC, id DESC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *OrderRepository) Recent(limit int) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

// Revenue sums totals of orders that were not cancelled.
func (r *OrderRepository) Revenue() (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := r.DB.Model(&entity.Order{}).
		Where("status <> ?", entity.StatusCancelled).
		Select("SUM(total)").
		Scan(&sum).Error
	if err != nil || !sum.Valid {
		return decimal.Zero, err
	}
	return sum.Decimal.Round(2), nil
}

// CountByOwners maps owner id to number of orders.
func (r *OrderRepository) CountByOwners(ownerIDs []string) (map[string]int64, error) {
	out := make(map[string]int64, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		UserID string
		Count  int64
	}
	err := r.DB.Model(&entity.Order{}).
		Select("user_id, COUNT(*) AS count").
		Where("user_id IN ?", ownerIDs).
		Group("user_id").
		Scan(&rows).Error
	for _, row := range rows {
		out[row.UserID] = row.Count
	}
	return out, err
}

type StatusCount struct {
	Status string
	Count  int64
}

func (r *OrderRepository) StatusBreakdown() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// OrderPoint is the slice of an order analytics needs.
type OrderPoint struct {
	CreatedAt time.Time
	Total     decimal.Decimal
	Status    entity.OrderStatus
}

func (r *OrderRepository) Since(t time.Time) ([]OrderPoint, error) {
	var rows []OrderPoint
	err := r.DB.Model(&entity.Order{}).
		Select("created_at, total, status").
		Where("created_at >= ?", t).
		Scan(&rows).Error
	return rows, err
}

type ItemCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TopItems ranks snapshot lines by quantity sold.
func (r *OrderRepository) TopItems(limit int) ([]ItemCount, error) {
	var rows []ItemCount
	err := r.DB.Model(&entity.OrderItem{}).
		Select("name, SUM(quantity) AS count").
		Group("name").
		Order("count DESC, name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
