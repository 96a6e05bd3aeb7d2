package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const GuestPrefix = "guest_"

func hexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewGuestID returns guest_ followed by 16 hex chars.
func NewGuestID() string {
	return GuestPrefix + hexID()[:16]
}

func IsGuestID(id string) bool { return strings.HasPrefix(id, GuestPrefix) }

// NewOrderID returns ORD- followed by 8 upper-case hex chars. Collisions are
// caught by the unique index on orders.order_id.
func NewOrderID() string {
	return "ORD-" + strings.ToUpper(hexID()[:8])
}

// NewResetToken returns a 32 hex char token for password reset links.
func NewResetToken() string {
	return hexID()
}

// NewResetCode returns a 6 digit numeric code.
func NewResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
