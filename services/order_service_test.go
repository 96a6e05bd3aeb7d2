package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/atul87/Flavour-Fleet-Premium-Food-Delivery-Platform/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var details = DeliveryDetails{
	Name:    "Ana Diaz",
	Phone:   "555-0100",
	Address: "1 Main St",
	City:    "Springfield",
	Zip:     "12345",
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.PlaceOrder(guest, details, decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyCart, "no cart at all")

	_, err = f.carts.Add(guest, line("p1", "10", 1))
	require.NoError(t, err)
	require.NoError(t, f.carts.Clear(guest))

	_, err = f.orders.PlaceOrder(guest, details, decimal.Zero)
	assert.ErrorIs(t, err, ErrEmptyCart, "cart emptied")
}

func TestPlaceOrderPricesAndClearsCart(t *testing.T) {
	f := newFixture(t)
	_, err := f.carts.Add(guest, line("p1", "25.00", 4))
	require.NoError(t, err)

	o, err := f.orders.PlaceOrder(guest, details, dec("40.00"))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-F]{8}$`), o.OrderID)
	assert.Equal(t, entity.StatusPreparing, o.Status)
	assert.True(t, o.Subtotal.Equal(dec("100")))
	assert.True(t, o.DeliveryFee.IsZero())
	assert.True(t, o.Tax.Equal(dec("8.00")))
	assert.True(t, o.Discount.Equal(dec("40.00")))
	assert.True(t, o.Total.Equal(dec("68.00")))
	assert.Equal(t, "Credit Card", o.PaymentMethod)
	assert.Equal(t, "Test Kitchen", o.Restaurant)
	assert.Equal(t, "Item p1", o.ItemsSummary)
	assert.Equal(t, string(guest), o.UserID)

	items, err := f.carts.Get(guest)
	require.NoError(t, err)
	assert.Empty(t, items)

	var carts int64
	require.NoError(t, f.db.Model(&entity.Cart{}).Where("owner_id = ?", string(guest)).Count(&carts).Error)
	assert.Equal(t, int64(1), carts, "cart record survives checkout")
}

func TestPlaceOrderFlatDiscountOverSubtotal(t *testing.T) {
	f := newFixture(t)
	_, err := f.carts.Add(guest, line("x1", "5.00", 1))
	require.NoError(t, err)

	o, err := f.orders.PlaceOrder(guest, details, dec("10"))
	require.NoError(t, err)
	assert.True(t, o.Total.Equal(dec("0.39")), "total %s", o.Total)
	assert.True(t, o.DeliveryFee.Equal(dec("4.99")))
}

func TestPlaceOrderSnapshotsLines(t *testing.T) {
	f := newFixture(t)
	m := f.seedMenuItem(t, "p1", "13.99")
	_, err := f.carts.AddFromCatalog(guest, "p1", 2)
	require.NoError(t, err)
	_, err = f.carts.Add(guest, entity.LineItem{ItemID: "b1", Name: "Burger", UnitPrice: dec("9.50"), Quantity: 1, Restaurant: "Burger Palace"})
	require.NoError(t, err)

	o, err := f.orders.PlaceOrder(guest, details, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "Menu p1, Burger", o.ItemsSummary)
	assert.Equal(t, "Pizza Paradise", o.Restaurant)

	_, err = f.menu.Update(m.ID, MenuItemIn{Name: ptr("Renamed"), Price: ptr(dec("99"))})
	require.NoError(t, err)
	require.NoError(t, f.menu.Delete(m.ID))

	got, err := f.orders.Detail(guest, o.OrderID, false)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "p1", got.Items[0].ItemID)
	assert.Equal(t, "Menu p1", got.Items[0].Name)
	assert.True(t, got.Items[0].UnitPrice.Equal(dec("13.99")))
	assert.Equal(t, 2, got.Items[0].Quantity)

	sum := decimal.Zero
	for _, it := range got.Items {
		sum = sum.Add(it.Line().Subtotal())
	}
	assert.True(t, sum.Equal(got.Subtotal), "subtotal matches snapshot")
	assert.True(t, got.Subtotal.Add(got.DeliveryFee).Add(got.Tax).Sub(got.Discount).Equal(got.Total))
}

func TestPlaceOrderRetriesOnIDCollision(t *testing.T) {
	f := newFixture(t)
	next := []string{"ORD-AAAAAAAA", "ORD-AAAAAAAA", "ORD-BBBBBBBB"}
	f.orders.NewID = func() string {
		id := next[0]
		next = next[1:]
		return id
	}

	_, err := f.carts.Add(guest, line("p1", "10", 1))
	require.NoError(t, err)
	first, err := f.orders.PlaceOrder(guest, details, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "ORD-AAAAAAAA", first.OrderID)

	_, err = f.carts.Add(guest, line("p2", "11", 1))
	require.NoError(t, err)
	second, err := f.orders.PlaceOrder(guest, details, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "ORD-BBBBBBBB", second.OrderID)

	got, err := f.orders.Detail(guest, "ORD-BBBBBBBB", false)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "p2", got.Items[0].ItemID)
}

func TestCheckoutWithPromoCode(t *testing.T) {
	f := newFixture(t)
	f.seedOffer(t, "WELCOME40", entity.PromoPercent, "40")
	_, err := f.carts.Add(guest, line("p1", "25.00", 4))
	require.NoError(t, err)

	d := details
	d.PromoCode = "welcome40"
	o, err := f.orders.Checkout(guest, d)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME40", o.PromoCode)
	assert.True(t, o.Discount.Equal(dec("40.00")))
	assert.True(t, o.Total.Equal(dec("68.00")))
}

func TestCheckoutQuotesPromoInsideTransaction(t *testing.T) {
	f := newFixture(t)
	f.seedOffer(t, "FREEDEL", entity.PromoDelivery, "0")
	_, err := f.carts.Add(guest, line("p1", "10.00", 1))
	require.NoError(t, err)

	// With one pooled connection, any read outside the order transaction
	// would wait on the transaction forever.
	sqlDB, err := f.db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	type result struct {
		order *entity.Order
		err   error
	}
	done := make(chan result, 1)
	go func() {
		d := details
		d.PromoCode = "freedel"
		o, err := f.orders.Checkout(guest, d)
		done <- result{o, err}
	}()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.True(t, r.order.Discount.Equal(dec("4.99")))
		assert.True(t, r.order.Total.Equal(dec("10.80")))
	case <-time.After(5 * time.Second):
		t.Fatal("checkout blocked on a second connection")
	}
}

func TestCheckoutWithUnknownPromoKeepsCart(t *testing.T) {
	f := newFixture(t)
	_, err := f.carts.Add(guest, line("p1", "25.00", 1))
	require.NoError(t, err)

	d := details
	d.PromoCode = "BOGUS"
	_, err = f.orders.Checkout(guest, d)
	assert.ErrorIs(t, err, ErrValidation)

	items, err := f.carts.Get(guest)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOrdersAreScopedToActor(t *testing.T) {
	f := newFixture(t)
	_, err := f.carts.Add(guest, line("p1", "10", 1))
	require.NoError(t, err)
	o, err := f.orders.PlaceOrder(guest, details, decimal.Zero)
	require.NoError(t, err)

	_, err = f.orders.Detail("guest_ffffffffffffffff", o.OrderID, false)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.orders.Detail("99", o.OrderID, true)
	require.NoError(t, err)
	assert.Equal(t, o.OrderID, got.OrderID)

	list, err := f.orders.ListForActor(guest)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Items, 1)
}

func TestConfirmationEmailOnlyForUsers(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "Ana", "ana@example.com")
	user := UserActor(u.ID)

	_, err := f.carts.Add(guest, line("p1", "10", 1))
	require.NoError(t, err)
	_, err = f.orders.PlaceOrder(guest, details, decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, f.mail.Sent())

	_, err = f.carts.Add(user, line("p1", "10", 1))
	require.NoError(t, err)
	o, err := f.orders.PlaceOrder(user, details, decimal.Zero)
	require.NoError(t, err)

	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ana@example.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, o.OrderID)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	u := f.register(t, "Ana", "ana@example.com")
	user := UserActor(u.ID)
	_, err := f.carts.Add(user, line("p1", "10", 1))
	require.NoError(t, err)
	o, err := f.orders.PlaceOrder(user, details, decimal.Zero)
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(o.OrderID, "teleported")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.orders.UpdateStatus("ORD-00000000", entity.StatusDelivered)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := f.orders.UpdateStatus(o.OrderID, entity.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, got.Status)

	// legal values are accepted in any order
	got, err = f.orders.UpdateStatus(o.OrderID, entity.StatusPlaced)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPlaced, got.Status)

	assert.Equal(t, []statusEvent{
		{o.OrderID, entity.StatusDelivered},
		{o.OrderID, entity.StatusPlaced},
	}, f.notifier.events)

	sent := f.mail.Sent()
	require.Len(t, sent, 2, "confirmation and delivery")
	assert.Contains(t, sent[1].Subject, "Delivered")
}
