package services

import (
	"errors"
	"strings"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/pricing"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PromotionService struct {
	Repo  *repository.OfferRepository
	Rules RulesSource
	Log   *zap.Logger
}

func NewPromotionService(repo *repository.OfferRepository, rules RulesSource, log *zap.Logger) *PromotionService {
	return &PromotionService{Repo: repo, Rules: rules, Log: log}
}

// PromoQuote is a validated code and what it takes off a given subtotal.
type PromoQuote struct {
	Code           string           `json:"code"`
	Kind           entity.PromoKind `json:"discount_type"`
	Value          decimal.Decimal  `json:"discount_value"`
	DiscountAmount decimal.Decimal  `json:"discount_amount"`
	Title          string           `json:"label"`
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// QuoteDiscount computes the discount an offer gives on subtotal. Flat amounts
// are not capped here; the pricing engine caps the applied discount.
func QuoteDiscount(o *entity.Offer, subtotal decimal.Decimal, rules pricing.Rules) decimal.Decimal {
	switch o.Kind {
	case entity.PromoPercent:
		return subtotal.Mul(o.Value).Div(decimal.NewFromInt(100)).Round(2)
	case entity.PromoFlat:
		return o.Value
	case entity.PromoDelivery:
		return rules.DeliveryFeeFor(subtotal)
	}
	return decimal.Zero
}

// Validate looks the code up case-insensitively and quotes it against
// subtotal. It does not record any redemption.
func (s *PromotionService) Validate(code string, subtotal decimal.Decimal) (*PromoQuote, error) {
	return s.quote(nil, code, subtotal)
}

// ValidateTx is Validate reading offers and settings through tx.
func (s *PromotionService) ValidateTx(tx *gorm.DB, code string, subtotal decimal.Decimal) (*PromoQuote, error) {
	return s.quote(tx, code, subtotal)
}

func (s *PromotionService) quote(tx *gorm.DB, code string, subtotal decimal.Decimal) (*PromoQuote, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, invalid("Promo code is required")
	}
	offers := s.Repo
	if tx != nil {
		offers = offers.WithTx(tx)
	}
	o, err := offers.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Invalid promo code")
	}
	if err != nil {
		return nil, err
	}
	rules, err := rulesIn(s.Rules, tx)
	if err != nil {
		return nil, err
	}
	return &PromoQuote{
		Code:           o.Code,
		Kind:           o.Kind,
		Value:          o.Value,
		DiscountAmount: QuoteDiscount(o, subtotal, rules),
		Title:          o.Title,
	}, nil
}

// ----- admin CRUD -----

// OfferIn carries the fields an admin sent. Nil fields are left unchanged on
// update.
type OfferIn struct {
	Code          *string           `json:"code"`
	Title         *string           `json:"title"`
	Description   *string           `json:"description"`
	DiscountType  *entity.PromoKind `json:"discount_type"`
	DiscountValue *decimal.Decimal  `json:"discount_value"`
	MinOrder      *decimal.Decimal  `json:"min_order"`
	ValidTill     *string           `json:"valid_till"`
	Icon          *string           `json:"icon"`
	Color         *string           `json:"color"`
	Tag           *string           `json:"tag"`
}

func (in *OfferIn) apply(o *entity.Offer) {
	setString(&o.Code, in.Code)
	o.Code = NormalizeCode(o.Code)
	setString(&o.Title, in.Title)
	setString(&o.Description, in.Description)
	if in.DiscountType != nil {
		o.Kind = *in.DiscountType
	}
	setMoney(&o.Value, in.DiscountValue)
	setMoney(&o.MinOrder, in.MinOrder)
	setString(&o.ValidTill, in.ValidTill)
	setString(&o.Icon, in.Icon)
	setString(&o.Color, in.Color)
	setString(&o.Tag, in.Tag)
}

func validateOffer(o *entity.Offer) error {
	if o.Code == "" || o.Title == "" {
		return invalid("Code and title are required")
	}
	if !o.Kind.Valid() {
		return invalid("Discount type must be percent, flat or delivery")
	}
	switch o.Kind {
	case entity.PromoPercent:
		if o.Value.LessThan(decimal.NewFromInt(1)) || o.Value.GreaterThan(decimal.NewFromInt(100)) {
			return invalid("Percent discount must be between 1 and 100")
		}
	case entity.PromoFlat:
		if !o.Value.IsPositive() {
			return invalid("Flat discount must be greater than 0")
		}
	}
	if o.MinOrder.IsNegative() {
		return invalid("Minimum order cannot be negative")
	}
	return nil
}

func (s *PromotionService) List() ([]entity.Offer, error) {
	return s.Repo.FindAll()
}

func (s *PromotionService) Create(in OfferIn) (*entity.Offer, error) {
	var o entity.Offer
	in.apply(&o)
	if err := validateOffer(&o); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(&o); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Promo code already exists")
		}
		return nil, err
	}
	s.Log.Info("offer created", zap.String("code", o.Code))
	return &o, nil
}

func (s *PromotionService) Update(id uint, in OfferIn) (*entity.Offer, error) {
	o, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Offer not found")
	}
	if err != nil {
		return nil, err
	}
	in.apply(o)
	if err := validateOffer(o); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(o); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Promo code already exists")
		}
		return nil, err
	}
	return o, nil
}

func (s *PromotionService) Delete(id uint) error {
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Offer not found")
	}
	return nil
}
