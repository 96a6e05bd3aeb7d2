package services

import (
	"errors"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/pricing"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RulesSource supplies the live pricing rules.
type RulesSource interface {
	Rules() (pricing.Rules, error)
}

// StaticRules serves fixed rules.
type StaticRules pricing.Rules

func (r StaticRules) Rules() (pricing.Rules, error) { return pricing.Rules(r), nil }

// txRules is implemented by sources backed by the database.
type txRules interface {
	RulesTx(tx *gorm.DB) (pricing.Rules, error)
}

// rulesIn reads src inside tx when the source supports it.
func rulesIn(src RulesSource, tx *gorm.DB) (pricing.Rules, error) {
	if t, ok := src.(txRules); ok && tx != nil {
		return t.RulesTx(tx)
	}
	return src.Rules()
}

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) Get() (*entity.Setting, error) {
	return s.Repo.Get()
}

// Rules derives pricing from the settings row, falling back to the defaults
// before the row exists.
func (s *SettingsService) Rules() (pricing.Rules, error) {
	return rulesFrom(s.Repo)
}

func (s *SettingsService) RulesTx(tx *gorm.DB) (pricing.Rules, error) {
	return rulesFrom(s.Repo.WithTx(tx))
}

func rulesFrom(repo *repository.SettingsRepository) (pricing.Rules, error) {
	st, err := repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pricing.DefaultRules(), nil
	}
	if err != nil {
		return pricing.Rules{}, err
	}
	return pricing.NewRules(st.DeliveryFee, st.FreeDeliveryThreshold, st.TaxPercent), nil
}

type SettingsIn struct {
	PlatformName          *string          `json:"platform_name"`
	DeliveryFee           *decimal.Decimal `json:"delivery_fee"`
	FreeDeliveryThreshold *decimal.Decimal `json:"free_delivery_threshold"`
	TaxPercent            *decimal.Decimal `json:"tax_percent"`
	ContactEmail          *string          `json:"contact_email"`
}

// Update applies the fields present in in.
func (s *SettingsService) Update(in SettingsIn) (*entity.Setting, error) {
	st, err := s.Repo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		d := pricing.DefaultRules()
		st = &entity.Setting{
			DeliveryFee:           d.DeliveryFee,
			FreeDeliveryThreshold: d.FreeDeliveryThreshold,
			TaxPercent:            pricing.DefaultTaxPercent,
		}
	} else if err != nil {
		return nil, err
	}

	if in.PlatformName != nil {
		st.PlatformName = strings.TrimSpace(*in.PlatformName)
	}
	if in.ContactEmail != nil {
		st.ContactEmail = strings.TrimSpace(*in.ContactEmail)
	}
	if in.DeliveryFee != nil {
		if in.DeliveryFee.IsNegative() {
			return nil, invalid("Delivery fee cannot be negative")
		}
		st.DeliveryFee = in.DeliveryFee.Round(2)
	}
	if in.FreeDeliveryThreshold != nil {
		if in.FreeDeliveryThreshold.IsNegative() {
			return nil, invalid("Free delivery threshold cannot be negative")
		}
		st.FreeDeliveryThreshold = in.FreeDeliveryThreshold.Round(2)
	}
	if in.TaxPercent != nil {
		if in.TaxPercent.IsNegative() || in.TaxPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, invalid("Tax percent must be between 0 and 100")
		}
		st.TaxPercent = in.TaxPercent.Round(2)
	}

	if err := s.Repo.Save(st); err != nil {
		return nil, err
	}
	return st, nil
}
