package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFormats(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^guest_[0-9a-f]{16}$`), NewGuestID())
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{8}$`), NewOrderID())
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), NewResetToken())

	code, err := NewResetCode()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[1-9][0-9]{5}$`), code)

	assert.True(t, IsGuestID(NewGuestID()))
	assert.False(t, IsGuestID("42"))
	assert.NotEqual(t, NewGuestID(), NewGuestID())
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken(Claims{UserID: 7, Role: "admin", Email: "a@b.c"}, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseToken(tok, "other")
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	tok, err := GenerateToken(Claims{GuestID: "guest_abc"}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tok, "secret")
	assert.Error(t, err)
}

func TestSaveDataURL(t *testing.T) {
	dir := t.TempDir()
	payload := []byte{0x89, 'P', 'N', 'G'}
	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	name, err := SaveDataURL(url, dir, "avatar_3")
	require.NoError(t, err)
	assert.Equal(t, "avatar_3.png", name)

	got, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = SaveDataURL("not a data url", dir, "x")
	assert.ErrorIs(t, err, ErrBadImage)
	_, err = SaveDataURL("data:text/plain;base64,aGk=", dir, "x")
	assert.ErrorIs(t, err, ErrBadImage)
}
