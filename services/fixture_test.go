package services

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/configs"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/pricing"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sentMail struct{ To, Subject, HTML string }

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to, subject, html})
	return nil
}

func (m *fakeMailer) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

type statusEvent struct {
	OrderID string
	Status  entity.OrderStatus
}

type fakeNotifier struct{ events []statusEvent }

func (n *fakeNotifier) OrderStatusChanged(orderID string, status entity.OrderStatus) {
	n.events = append(n.events, statusEvent{orderID, status})
}

type fixture struct {
	db          *gorm.DB
	carts       *CartService
	promos      *PromotionService
	orders      *OrderService
	auth        *AuthService
	menu        *MenuService
	restaurants *RestaurantService
	admin       *AdminService
	settings    *SettingsService
	mail        *fakeMailer
	notifier    *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := configs.ConnectionDB(&configs.Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	log := zap.NewNop()
	mail := &fakeMailer{}
	notifier := &fakeNotifier{}

	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)

	settings := NewSettingsService(repository.NewSettingsRepository(db))
	carts := NewCartService(db, cartRepo, menuRepo, log)
	promos := NewPromotionService(repository.NewOfferRepository(db), settings, log)
	orders := NewOrderService(db, orderRepo, cartRepo, userRepo, promos, settings, mail, log)
	orders.Notifier = notifier

	return &fixture{
		db:          db,
		carts:       carts,
		promos:      promos,
		orders:      orders,
		auth:        NewAuthService(db, userRepo, repository.NewResetTokenRepository(db), carts, mail, t.TempDir(), log),
		menu:        NewMenuService(menuRepo),
		restaurants: NewRestaurantService(restRepo),
		admin:       NewAdminService(orderRepo, userRepo, menuRepo, restRepo, log),
		settings:    settings,
		mail:        mail,
		notifier:    notifier,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func line(id, price string, qty int) entity.LineItem {
	return entity.LineItem{
		ItemID:     id,
		Name:       "Item " + id,
		UnitPrice:  dec(price),
		Quantity:   qty,
		Image:      "assets/images/" + id + ".png",
		Restaurant: "Test Kitchen",
	}
}

func (f *fixture) seedOffer(t *testing.T, code string, kind entity.PromoKind, value string) {
	t.Helper()
	require.NoError(t, f.db.Create(&entity.Offer{
		Code: code, Title: code + " offer", Kind: kind, Value: dec(value),
	}).Error)
}

func (f *fixture) seedMenuItem(t *testing.T, itemID, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{ItemID: itemID, Name: "Menu " + itemID, Price: dec(price), Category: "pizza", Restaurant: "Pizza Paradise"}
	require.NoError(t, f.db.Create(m).Error)
	return m
}

func (f *fixture) register(t *testing.T, name, email string) *entity.User {
	t.Helper()
	u, err := f.auth.Register(name, email, "secret123", "")
	require.NoError(t, err)
	return u
}

var _ RulesSource = StaticRules(pricing.DefaultRules())
