package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	recentOrdersLimit = 5
	topItemsLimit     = 5
	analyticsDays     = 7
)

// AdminService backs the admin console dashboards and user management.
type AdminService struct {
	Orders      *repository.OrderRepository
	Users       *repository.UserRepository
	Menu        *repository.MenuRepository
	Restaurants *repository.RestaurantRepository
	Log         *zap.Logger
	now         func() time.Time
}

func NewAdminService(
	orders *repository.OrderRepository,
	users *repository.UserRepository,
	menu *repository.MenuRepository,
	restaurants *repository.RestaurantRepository,
	log *zap.Logger,
) *AdminService {
	return &AdminService{
		Orders: orders, Users: users, Menu: menu, Restaurants: restaurants,
		Log: log, now: time.Now,
	}
}

type Stats struct {
	TotalOrders      int64           `json:"total_orders"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalUsers       int64           `json:"total_users"`
	TotalMenuItems   int64           `json:"total_menu_items"`
	TotalRestaurants int64           `json:"total_restaurants"`
	RecentOrders     []entity.Order  `json:"-"`
}

// Stats runs the dashboard queries concurrently.
func (s *AdminService) Stats() (*Stats, error) {
	var out Stats
	var g errgroup.Group

	g.Go(func() (err error) { out.TotalOrders, err = s.Orders.Count(); return })
	g.Go(func() (err error) { out.TotalRevenue, err = s.Orders.Revenue(); return })
	g.Go(func() (err error) { out.TotalUsers, err = s.Users.Count(); return })
	g.Go(func() (err error) { out.TotalMenuItems, err = s.Menu.Count(); return })
	g.Go(func() (err error) { out.TotalRestaurants, err = s.Restaurants.Count(); return })
	g.Go(func() (err error) { out.RecentOrders, err = s.Orders.Recent(recentOrdersLimit); return })

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *AdminService) ListOrders(f repository.OrderFilter) ([]entity.Order, int64, error) {
	return s.Orders.List(f)
}

type UserSummary struct {
	entity.User
	OrderCount int64 `json:"order_count"`
}

// MarshalJSON keeps order_count next to the user fields; the embedded
// User.MarshalJSON would otherwise drop it.
func (u UserSummary) MarshalJSON() ([]byte, error) {
	type row entity.User
	return json.Marshal(struct {
		row
		DocID      uint  `json:"_id"`
		OrderCount int64 `json:"order_count"`
	}{row(u.User), u.ID, u.OrderCount})
}

func (s *AdminService) ListUsers(search string, page, limit int) ([]UserSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	users, total, err := s.Users.List(search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, string(UserActor(u.ID)))
	}
	counts, err := s.Orders.CountByOwners(ids)
	if err != nil {
		return nil, 0, err
	}

	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, UserSummary{User: u, OrderCount: counts[string(UserActor(u.ID))]})
	}
	return out, total, nil
}

// UpdateUserRole lets an admin promote or demote another account.
func (s *AdminService) UpdateUserRole(adminID, userID uint, role string) (*entity.User, error) {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return nil, invalid("Role must be user or admin")
	}
	if adminID == userID {
		return nil, invalid("You cannot change your own role")
	}
	if _, err := s.Users.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}
	if err := s.Users.Update(userID, map[string]any{"role": role}); err != nil {
		return nil, err
	}
	s.Log.Info("user role changed", zap.Uint("admin_id", adminID), zap.Uint("user_id", userID), zap.String("role", role))
	return s.Users.FindByID(userID)
}

type DailyPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type Analytics struct {
	DailyData       []DailyPoint           `json:"daily_data"`
	StatusBreakdown map[string]int64       `json:"status_breakdown"`
	TopItems        []repository.ItemCount `json:"top_items"`
}

// Analytics covers the last seven UTC days including today. Cancelled orders
// count toward order volume but not revenue.
func (s *AdminService) Analytics() (*Analytics, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(analyticsDays - 1))

	var (
		points   []repository.OrderPoint
		statuses []repository.StatusCount
		top      []repository.ItemCount
		g        errgroup.Group
	)
	g.Go(func() (err error) { points, err = s.Orders.Since(start); return })
	g.Go(func() (err error) { statuses, err = s.Orders.StatusBreakdown(); return })
	g.Go(func() (err error) { top, err = s.Orders.TopItems(topItemsLimit); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	days := make([]DailyPoint, analyticsDays)
	index := make(map[string]int, analyticsDays)
	for i := range days {
		d := start.AddDate(0, 0, i).Format(time.DateOnly)
		days[i] = DailyPoint{Date: d, Revenue: decimal.Zero}
		index[d] = i
	}
	for _, p := range points {
		i, ok := index[p.CreatedAt.UTC().Format(time.DateOnly)]
		if !ok {
			continue
		}
		days[i].Orders++
		if p.Status != entity.StatusCancelled {
			days[i].Revenue = days[i].Revenue.Add(p.Total)
		}
	}

	breakdown := make(map[string]int64, len(statuses))
	for _, sc := range statuses {
		breakdown[sc.Status] = sc.Count
	}
	if top == nil {
		top = []repository.ItemCount{}
	}
	return &Analytics{DailyData: days, StatusBreakdown: breakdown, TopItems: top}, nil
}
