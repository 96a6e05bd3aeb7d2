package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/pkg/mailer"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/repository"
	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	resetTokenTTL  = 15 * time.Minute
	maxAvatarBytes = 5 << 20
)

// AuthService handles accounts, password resets and avatars.
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	tokenRepo *repository.ResetTokenRepository
	carts     *CartService
	mail      mailer.Sender
	uploadDir string
	log       *zap.Logger
	now       func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	users *repository.UserRepository,
	tokens *repository.ResetTokenRepository,
	carts *CartService,
	m mailer.Sender,
	uploadDir string,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		DB: db, userRepo: users, tokenRepo: tokens, carts: carts,
		mail: m, uploadDir: uploadDir, log: log, now: time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and moves the guest's cart into the new account.
func (s *AuthService) Register(name, email, password string, guest ActorID) (*entity.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, invalid("All fields are required")
	}
	if len(password) < minPasswordLen {
		return nil, invalid(fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         entity.RoleUser,
	}
	if err := s.userRepo.Create(s.DB, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("Email already registered")
		}
		return nil, err
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	s.mergeCart(guest, user)
	return user, nil
}

// Login checks credentials and merges the guest cart.
func (s *AuthService) Login(email, password string, guest ActorID) (*entity.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalid("Email and password are required")
	}
	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, unauthorized("Invalid email or password")
	}

	s.mergeCart(guest, user)
	return user, nil
}

// mergeCart never fails the login itself; the guest cart stays in place if
// the merge does not go through.
func (s *AuthService) mergeCart(guest ActorID, user *entity.User) {
	if guest == "" || !guest.IsGuest() {
		return
	}
	if err := s.carts.MergeGuestIntoUser(guest, UserActor(user.ID)); err != nil {
		s.log.Error("cart merge failed", zap.String("guest", string(guest)), zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("User not found")
	}
	return u, err
}

type ProfileIn struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateProfile changes only name, phone and address.
func (s *AuthService) UpdateProfile(userID uint, in ProfileIn) (*entity.User, error) {
	updates := map[string]any{}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, invalid("Name cannot be empty")
		}
		updates["name"] = n
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if len(updates) == 0 {
		return nil, invalid("No valid fields to update")
	}
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// ForgotPassword stores a reset token and code for a known email and mails
// the code. The returned token is random for unknown emails too, so callers
// cannot tell accounts apart.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", invalid("Email is required")
	}
	token := utils.NewResetToken()

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return token, nil
	}
	if err != nil {
		return "", err
	}

	code, err := utils.NewResetCode()
	if err != nil {
		return "", err
	}
	now := s.now().UTC()
	if err := s.tokenRepo.PurgeExpired(now); err != nil {
		s.log.Warn("purge expired reset tokens", zap.Error(err))
	}
	err = s.tokenRepo.Replace(&entity.PasswordResetToken{
		Email:     email,
		Token:     token,
		Code:      code,
		ExpiresAt: now.Add(resetTokenTTL),
	})
	if err != nil {
		return "", err
	}

	msg, err := mailer.PasswordReset(user.Name, code)
	if err == nil {
		err = s.mail.Send(email, msg.Subject, msg.HTML)
	}
	if err != nil {
		s.log.Error("password reset email failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return token, nil
}

// ResetPassword sets a new password when token and code match and have not
// expired. All reset tokens of the account are dropped afterwards.
func (s *AuthService) ResetPassword(token, code, newPassword string) error {
	token, code = strings.TrimSpace(token), strings.TrimSpace(code)
	if token == "" || code == "" || newPassword == "" {
		return invalid("All fields are required")
	}
	if len(newPassword) < minPasswordLen {
		return invalid(fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}

	t, err := s.tokenRepo.Find(token, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalid("Invalid or expired reset code")
	}
	if err != nil {
		return err
	}
	if t.Expired(s.now().UTC()) {
		_ = s.tokenRepo.DeleteForEmail(s.DB, t.Email)
		return invalid("Invalid or expired reset code")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.UpdatePasswordByEmail(tx, t.Email, string(hashed)); err != nil {
			return err
		}
		return s.tokenRepo.DeleteForEmail(tx, t.Email)
	})
}

// SaveAvatar writes a base64 data URL to the upload dir and returns its
// public path.
func (s *AuthService) SaveAvatar(userID uint, dataURL string) (string, error) {
	if dataURL == "" {
		return "", invalid("No image provided")
	}
	if len(dataURL) > maxAvatarBytes*4/3+64 {
		return "", invalid("Image is too large")
	}
	name, err := utils.SaveDataURL(dataURL, s.uploadDir, fmt.Sprintf("avatar_%d", userID))
	if errors.Is(err, utils.ErrBadImage) {
		return "", invalid("Invalid image data")
	}
	if err != nil {
		return "", err
	}
	url := "/uploads/" + name
	if err := s.userRepo.Update(userID, map[string]any{"avatar": url}); err != nil {
		return "", err
	}
	return url, nil
}
