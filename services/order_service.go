package services

import (
	"errors"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/mailer"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/pricing"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	maxOrderIDAttempts   = 3
	defaultPaymentMethod = "Credit Card"
)

// StatusNotifier is told about every status change after it is stored.
type StatusNotifier interface {
	OrderStatusChanged(orderID string, status entity.OrderStatus)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Promos   *PromotionService
	Rules    RulesSource
	Mailer   mailer.Sender
	Notifier StatusNotifier
	Log      *zap.Logger

	NewID func() string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	promos *PromotionService,
	rules RulesSource,
	m mailer.Sender,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo,
		Promos: promos, Rules: rules, Mailer: m, Log: log,
		NewID: utils.NewOrderID,
	}
}

// DeliveryDetails are copied onto the order as given. PromoCode only names
// where a discount came from.
type DeliveryDetails struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	Instructions  string `json:"instructions"`
	PaymentMethod string `json:"payment_method"`
	PromoCode     string `json:"promo_code"`
}

// PlaceOrder turns the actor's cart into an order with a caller-supplied
// discount. The order, its item snapshot and the emptied cart are written in
// one transaction.
func (s *OrderService) PlaceOrder(actor ActorID, details DeliveryDetails, discount decimal.Decimal) (*entity.Order, error) {
	return s.place(actor, details, func(*gorm.DB, decimal.Decimal) (decimal.Decimal, error) {
		return discount, nil
	})
}

// Checkout prices the promo code, if any, against the cart being ordered.
func (s *OrderService) Checkout(actor ActorID, details DeliveryDetails) (*entity.Order, error) {
	details.PromoCode = NormalizeCode(details.PromoCode)
	if details.PromoCode == "" {
		return s.PlaceOrder(actor, details, decimal.Zero)
	}
	return s.place(actor, details, func(tx *gorm.DB, subtotal decimal.Decimal) (decimal.Decimal, error) {
		q, err := s.Promos.ValidateTx(tx, details.PromoCode, subtotal)
		if errors.Is(err, ErrNotFound) {
			return decimal.Zero, invalid("Invalid promo code")
		}
		if err != nil {
			return decimal.Zero, err
		}
		return q.DiscountAmount, nil
	})
}

func (s *OrderService) place(actor ActorID, details DeliveryDetails, discountFor func(tx *gorm.DB, subtotal decimal.Decimal) (decimal.Decimal, error)) (*entity.Order, error) {
	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.FindCart(tx, string(actor))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return err
		}
		items, err := s.CartRepo.Items(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		priced := make([]pricing.Line, 0, len(items))
		for _, it := range items {
			priced = append(priced, pricing.Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
		}
		rules, err := rulesIn(s.Rules, tx)
		if err != nil {
			return err
		}
		discount, err := discountFor(tx, pricing.Subtotal(priced))
		if err != nil {
			return err
		}

		order = buildOrder(actor, details, items, rules.ComputeTotals(priced, discount))
		if err := s.insertWithFreshID(tx, order); err != nil {
			return err
		}
		return s.CartRepo.ClearItems(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("order placed",
		zap.String("order_id", order.OrderID),
		zap.String("actor", string(actor)),
		zap.String("total", order.Total.StringFixed(2)))
	s.sendConfirmation(actor, order)
	return order, nil
}

func buildOrder(actor ActorID, d DeliveryDetails, items []entity.CartItem, t pricing.Totals) *entity.Order {
	snapshot := make([]entity.OrderItem, 0, len(items))
	names := make([]string, 0, len(items))
	for _, it := range items {
		snapshot = append(snapshot, entity.SnapshotLine(it.Line()))
		names = append(names, it.Name)
	}

	restaurant := items[0].Restaurant
	if restaurant == "" {
		restaurant = "Mixed"
	}
	payment := strings.TrimSpace(d.PaymentMethod)
	if payment == "" {
		payment = defaultPaymentMethod
	}

	return &entity.Order{
		UserID:        string(actor),
		Items:         snapshot,
		ItemsSummary:  strings.Join(names, ", "),
		Subtotal:      t.Subtotal,
		DeliveryFee:   t.DeliveryFee,
		Tax:           t.Tax,
		Discount:      t.Discount,
		Total:         t.Total,
		PromoCode:     d.PromoCode,
		Status:        entity.StatusPreparing,
		Name:          d.Name,
		Phone:         d.Phone,
		Address:       d.Address,
		City:          d.City,
		Zip:           d.Zip,
		Instructions:  d.Instructions,
		PaymentMethod: payment,
		Restaurant:    restaurant,
	}
}

// insertWithFreshID retries with a new order id when the random one is taken.
func (s *OrderService) insertWithFreshID(tx *gorm.DB, o *entity.Order) error {
	for attempt := 1; ; attempt++ {
		o.OrderID = s.NewID()
		if err := tx.SavePoint("order_insert").Error; err != nil {
			return err
		}
		err := s.Repo.CreateOrder(tx, o)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt == maxOrderIDAttempts {
			return err
		}
		s.Log.Warn("order id collision, retrying", zap.String("order_id", o.OrderID))
		if err := tx.RollbackTo("order_insert").Error; err != nil {
			return err
		}
		o.ID = 0
		for i := range o.Items {
			o.Items[i].ID = 0
			o.Items[i].OrderRef = 0
		}
	}
}

func (s *OrderService) ListForActor(actor ActorID) ([]entity.Order, error) {
	return s.Repo.ListForOwner(string(actor))
}

// Detail returns an order of the actor. Admins can read any order.
func (s *OrderService) Detail(actor ActorID, orderID string, admin bool) (*entity.Order, error) {
	var (
		o   *entity.Order
		err error
	)
	if admin {
		o, err = s.Repo.FindByOrderID(orderID)
	} else {
		o, err = s.Repo.FindForOwner(string(actor), orderID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Order not found")
	}
	return o, err
}

// UpdateStatus accepts any legal status, in any order.
func (s *OrderService) UpdateStatus(orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, invalid("Invalid status")
	}
	ok, err := s.Repo.UpdateStatus(orderID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFound("Order not found")
	}
	o, err := s.Repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	s.Log.Info("order status updated", zap.String("order_id", orderID), zap.String("status", string(status)))
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(orderID, status)
	}
	if status == entity.StatusDelivered {
		s.sendDelivered(o)
	}
	return o, nil
}

// ----- notifications -----

func (s *OrderService) recipient(actor ActorID) (*entity.User, bool) {
	uid, ok := actor.UserID()
	if !ok || s.Mailer == nil {
		return nil, false
	}
	u, err := s.UserRepo.FindByID(uid)
	if err != nil {
		s.Log.Warn("email recipient lookup failed", zap.String("actor", string(actor)), zap.Error(err))
		return nil, false
	}
	return u, true
}

func (s *OrderService) sendConfirmation(actor ActorID, o *entity.Order) {
	u, ok := s.recipient(actor)
	if !ok {
		return
	}
	msg, err := mailer.OrderConfirmation(u.Name, o.OrderID, o.ItemsSummary, o.Total)
	if err == nil {
		err = s.Mailer.Send(u.Email, msg.Subject, msg.HTML)
	}
	if err != nil {
		s.Log.Error("order confirmation email failed", zap.String("order_id", o.OrderID), zap.Error(err))
	}
}

func (s *OrderService) sendDelivered(o *entity.Order) {
	u, ok := s.recipient(ActorID(o.UserID))
	if !ok {
		return
	}
	msg, err := mailer.OrderDelivered(u.Name, o.OrderID)
	if err == nil {
		err = s.Mailer.Send(u.Email, msg.Subject, msg.HTML)
	}
	if err != nil {
		s.Log.Error("delivery email failed", zap.String("order_id", o.OrderID), zap.Error(err))
	}
}
