package configs

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedMenuItem struct {
	ItemID      string  `yaml:"item_id"`
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category"`
	Image       string  `yaml:"image"`
	Restaurant  string  `yaml:"restaurant"`
	Rating      float64 `yaml:"rating"`
	Badge       string  `yaml:"badge"`
	Description string  `yaml:"description"`
}

type seedRestaurant struct {
	Name         string  `yaml:"name"`
	Category     string  `yaml:"category"`
	Rating       float64 `yaml:"rating"`
	DeliveryTime string  `yaml:"delivery_time"`
	Image        string  `yaml:"image"`
	PriceRange   string  `yaml:"price_range"`
	Description  string  `yaml:"description"`
	Address      string  `yaml:"address"`
}

type seedOffer struct {
	Code          string  `yaml:"code"`
	Title         string  `yaml:"title"`
	Description   string  `yaml:"description"`
	DiscountType  string  `yaml:"discount_type"`
	DiscountValue float64 `yaml:"discount_value"`
	MinOrder      float64 `yaml:"min_order"`
	ValidTill     string  `yaml:"valid_till"`
	Icon          string  `yaml:"icon"`
	Color         string  `yaml:"color"`
	Tag           string  `yaml:"tag"`
}

type Seed struct {
	MenuItems   []seedMenuItem   `yaml:"menu_items"`
	Restaurants []seedRestaurant `yaml:"restaurants"`
	Offers      []seedOffer      `yaml:"offers"`
}

func money(f float64) decimal.Decimal { return decimal.NewFromFloat(f).Round(2) }

func LoadSeed() (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(seedYAML, &s); err != nil {
		return nil, fmt.Errorf("parse seed.yaml: %w", err)
	}
	return &s, nil
}

// SeedCatalog upserts menu items, restaurants and offers by natural key.
// Running it twice leaves the same rows.
func SeedCatalog(db *gorm.DB, log *zap.Logger) error {
	s, err := LoadSeed()
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range s.MenuItems {
			row := entity.MenuItem{
				ItemID: m.ItemID, Name: m.Name, Price: money(m.Price), Category: m.Category,
				Image: m.Image, Restaurant: m.Restaurant, Rating: m.Rating, Badge: m.Badge,
				Description: m.Description,
			}
			if err := tx.Where(entity.MenuItem{ItemID: m.ItemID}).Assign(row).FirstOrCreate(&entity.MenuItem{}).Error; err != nil {
				return fmt.Errorf("menu item %s: %w", m.ItemID, err)
			}
		}

		for _, r := range s.Restaurants {
			row := entity.Restaurant{
				Name: r.Name, Category: r.Category, Rating: r.Rating, DeliveryTime: r.DeliveryTime,
				Image: r.Image, PriceRange: r.PriceRange, Description: r.Description, Address: r.Address,
			}
			if err := tx.Where(entity.Restaurant{Name: r.Name}).Assign(row).FirstOrCreate(&entity.Restaurant{}).Error; err != nil {
				return fmt.Errorf("restaurant %s: %w", r.Name, err)
			}
		}

		for _, o := range s.Offers {
			code := strings.ToUpper(strings.TrimSpace(o.Code))
			row := entity.Offer{
				Code: code, Title: o.Title, Description: o.Description,
				Kind: entity.PromoKind(o.DiscountType), Value: money(o.DiscountValue),
				MinOrder: money(o.MinOrder), ValidTill: o.ValidTill,
				Icon: o.Icon, Color: o.Color, Tag: o.Tag,
			}
			if !row.Kind.Valid() {
				return fmt.Errorf("offer %s: unknown discount_type %q", code, o.DiscountType)
			}
			if err := tx.Where(entity.Offer{Code: code}).Assign(row).FirstOrCreate(&entity.Offer{}).Error; err != nil {
				return fmt.Errorf("offer %s: %w", code, err)
			}
		}

		log.Info("catalog seeded",
			zap.Int("menu_items", len(s.MenuItems)),
			zap.Int("restaurants", len(s.Restaurants)),
			zap.Int("offers", len(s.Offers)))
		return nil
	})
}

// SeedAdmin creates the admin account from ADMIN_EMAIL/ADMIN_PASSWORD, or
// promotes an existing account with that email.
func SeedAdmin(db *gorm.DB, cfg *Config, log *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var existing entity.User
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		if existing.Role == entity.RoleAdmin {
			log.Info("admin already exists", zap.String("email", cfg.AdminEmail))
			return nil
		}
		log.Info("promoting existing user to admin", zap.String("email", cfg.AdminEmail))
		return db.Model(&existing).Update("role", entity.RoleAdmin).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Info("admin created", zap.String("email", cfg.AdminEmail))
	return nil
}

// SeedSettings writes the settings row from config the first time only.
func SeedSettings(db *gorm.DB, cfg *Config) error {
	row := entity.Setting{
		PlatformName:          cfg.PlatformName,
		DeliveryFee:           cfg.DeliveryFee,
		FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
		TaxPercent:            cfg.TaxPercent,
		ContactEmail:          cfg.ContactEmail,
	}
	return db.Where(entity.Setting{ID: 1}).Attrs(row).FirstOrCreate(&entity.Setting{}).Error
}
