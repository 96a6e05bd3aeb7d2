package configs

import (
	"path/filepath"
	"testing"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		DBDriver:              "sqlite",
		DBSource:              filepath.Join(t.TempDir(), "seed.db"),
		PlatformName:          "Flavour Fleet",
		ContactEmail:          "support@example.com",
		DeliveryFee:           decimal.RequireFromString("4.99"),
		FreeDeliveryThreshold: decimal.NewFromInt(30),
		TaxPercent:            decimal.NewFromInt(8),
		AdminEmail:            "admin@example.com",
		AdminPassword:         "admin123",
	}
}

func TestLoadSeed(t *testing.T) {
	s, err := LoadSeed()
	require.NoError(t, err)

	assert.NotEmpty(t, s.MenuItems)
	assert.NotEmpty(t, s.Restaurants)
	assert.NotEmpty(t, s.Offers)
	assert.Equal(t, "p1", s.MenuItems[0].ItemID)
	for _, o := range s.Offers {
		assert.True(t, entity.PromoKind(o.DiscountType).Valid(), o.Code)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	db, err := ConnectionDB(cfg)
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))

	log := zap.NewNop()
	require.NoError(t, SeedCatalog(db, log))
	require.NoError(t, SeedCatalog(db, log))
	require.NoError(t, SeedAdmin(db, cfg, log))
	require.NoError(t, SeedAdmin(db, cfg, log))
	require.NoError(t, SeedSettings(db, cfg))
	require.NoError(t, SeedSettings(db, cfg))

	s, err := LoadSeed()
	require.NoError(t, err)

	var n int64
	db.Model(&entity.MenuItem{}).Count(&n)
	assert.Equal(t, int64(len(s.MenuItems)), n)
	db.Model(&entity.Offer{}).Count(&n)
	assert.Equal(t, int64(len(s.Offers)), n)
	db.Model(&entity.User{}).Where("role = ?", entity.RoleAdmin).Count(&n)
	assert.Equal(t, int64(1), n)
	db.Model(&entity.Setting{}).Count(&n)
	assert.Equal(t, int64(1), n)

	var p1 entity.MenuItem
	require.NoError(t, db.Where("item_id = ?", "p1").First(&p1).Error)
	assert.True(t, p1.Price.Equal(decimal.RequireFromString("13.99")))

	var welcome entity.Offer
	require.NoError(t, db.Where("code = ?", "WELCOME40").First(&welcome).Error)
	assert.Equal(t, entity.PromoPercent, welcome.Kind)
}
