package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env  string
	Port string

	DBDriver string
	DBSource string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
	CORSOrigins  []string

	UploadDir string

	ResendAPIKey string
	FromEmail    string

	AdminEmail    string
	AdminPassword string

	// platform settings seed; admins edit the live copy in the settings table
	PlatformName          string
	ContactEmail          string
	DeliveryFee           decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	TaxPercent            decimal.Decimal
}

// LoadConfig reads envFile (a missing file is fine) and then the process
// environment.
func LoadConfig(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	fee, err := getDecimal("DELIVERY_FEE", "4.99")
	if err != nil {
		return nil, err
	}
	threshold, err := getDecimal("FREE_DELIVERY_THRESHOLD", "30")
	if err != nil {
		return nil, err
	}
	tax, err := getDecimal("TAX_PERCENT", "8")
	if err != nil {
		return nil, err
	}
	secure, _ := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))

	return &Config{
		Env:                   getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "5000"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite"),
		DBSource:              getEnv("DB_SOURCE", "flavourfleet.db?_busy_timeout=5000"),
		JWTSecret:             getEnv("JWT_SECRET", "flavour-fleet-dev-secret"),
		SessionTTL:            ttl,
		CookieName:            getEnv("COOKIE_NAME", "ff_session"),
		CookieSecure:          secure,
		CORSOrigins:           splitList(getEnv("CORS_ORIGINS", "http://localhost:5000,http://127.0.0.1:5500,http://localhost:5500")),
		UploadDir:             getEnv("UPLOAD_DIR", "./uploads"),
		ResendAPIKey:          os.Getenv("RESEND_API_KEY"),
		FromEmail:             getEnv("FROM_EMAIL", "Flavour Fleet <onboarding@resend.dev>"),
		AdminEmail:            strings.ToLower(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:         os.Getenv("ADMIN_PASSWORD"),
		PlatformName:          getEnv("PLATFORM_NAME", "Flavour Fleet"),
		ContactEmail:          getEnv("CONTACT_EMAIL", "support@flavourfleet.com"),
		DeliveryFee:           fee,
		FreeDeliveryThreshold: threshold,
		TaxPercent:            tax,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDecimal(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
