package mailer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTemplates(t *testing.T) {
	m, err := OrderConfirmation("Ana <script>", "ORD-1A2B3C4D", "Burger x2", decimal.RequireFromString("12.5"))
	require.NoError(t, err)
	assert.Equal(t, "Order Confirmed - ORD-1A2B3C4D", m.Subject)
	assert.Contains(t, m.HTML, "$12.50")
	assert.Contains(t, m.HTML, "Ana &lt;script&gt;")

	m, err = PasswordReset("Ana", "123456")
	require.NoError(t, err)
	assert.Contains(t, m.HTML, "123456")

	m, err = OrderDelivered("Ana", "ORD-1A2B3C4D")
	require.NoError(t, err)
	assert.Contains(t, m.HTML, "delivered")
}

func TestNewWithoutKeyLogsOnly(t *testing.T) {
	s := New("", "noreply@example.com", zap.NewNop())
	_, ok := s.(LogSender)
	assert.True(t, ok)
	assert.NoError(t, s.Send("a@b.c", "hi", "<p>hi</p>"))
}
