package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuCatalog(t *testing.T) {
	f := newFixture(t)

	pizza, err := f.menu.Create(MenuItemIn{
		ItemID: ptr("p1"), Name: ptr("Margherita"), Price: ptr(dec("13.99")), Category: ptr("Pizza"),
	})
	require.NoError(t, err)
	assert.Equal(t, "pizza", pizza.Category)

	burger, err := f.menu.Create(MenuItemIn{Name: ptr("Classic"), Price: ptr(dec("9.5")), Category: ptr("burger")})
	require.NoError(t, err)
	assert.Regexp(t, `^m[0-9a-f]{8}$`, burger.ItemID)

	_, err = f.menu.Create(MenuItemIn{ItemID: ptr("p1"), Name: ptr("Copy"), Price: ptr(dec("1"))})
	assert.ErrorIs(t, err, ErrConflict)
	_, err = f.menu.Create(MenuItemIn{Name: ptr("Free"), Price: ptr(dec("0"))})
	assert.ErrorIs(t, err, ErrValidation)

	all, err := f.menu.List("all")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	pizzas, err := f.menu.List(" PIZZA ")
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, "Margherita", pizzas[0].Name)

	got, err := f.menu.Update(pizza.ID, MenuItemIn{Badge: ptr("Bestseller")})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", got.Name, "partial update keeps other fields")
	assert.Equal(t, "Bestseller", got.Badge)

	require.NoError(t, f.menu.Delete(pizza.ID))
	_, err = f.menu.Get("p1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.menu.Delete(pizza.ID), ErrNotFound)
}

func TestRestaurantLookupByIDOrName(t *testing.T) {
	f := newFixture(t)

	r, err := f.restaurants.Create(RestaurantIn{Name: ptr("Pizza Paradise"), Category: ptr("Pizza"), Rating: ptr(4.7)})
	require.NoError(t, err)

	byID, err := f.restaurants.Get(strconv.FormatUint(uint64(r.ID), 10))
	require.NoError(t, err)
	byName, err := f.restaurants.Get("Pizza Paradise")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byName.ID)

	_, err = f.restaurants.Get("Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.restaurants.Update(r.ID, RestaurantIn{Rating: ptr(6.0)})
	assert.ErrorIs(t, err, ErrValidation)

	list, err := f.restaurants.List("pizza")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
