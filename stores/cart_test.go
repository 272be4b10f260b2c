package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-shop/models"
)

func sofa() models.Product {
	return models.Product{ID: "p1", Name: "Oslo Lounge Sofa", Price: 899.00, CategoryID: "sofas"}
}

func lamp() models.Product {
	return models.Product{ID: "p7", Name: "Voss Floor Lamp", Price: 159.00, CategoryID: "lighting"}
}

// Cross-checks the two invariants the cart guarantees after every
// mutation: one line item per product id, and an up-to-date total.
func assertCartConsistent(t *testing.T, cart *CartStore) {
	t.Helper()

	seen := map[string]bool{}
	expected := 0.0
	for _, item := range cart.Items() {
		require.False(t, seen[item.Product.ID], "duplicate cart item for product %s", item.Product.ID)
		require.GreaterOrEqual(t, item.Quantity, 1)
		seen[item.Product.ID] = true
		expected += item.Product.Price * float64(item.Quantity)
	}
	assert.InDelta(t, expected, cart.TotalPrice(), 1e-9)
}

func TestAddToCartIncrementsExistingItem(t *testing.T) {
	cart := NewCartStore()

	cart.AddToCart(sofa())
	cart.AddToCart(sofa())
	cart.AddToCart(lamp())

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, cart.Size())
	assertCartConsistent(t, cart)
}

func TestCartTotalRecomputedAfterEveryMutation(t *testing.T) {
	cart := NewCartStore()

	cart.AddToCart(sofa())
	assert.InDelta(t, 899.00, cart.TotalPrice(), 1e-9)

	cart.AddToCart(lamp())
	assert.InDelta(t, 1058.00, cart.TotalPrice(), 1e-9)

	cart.UpdateQuantity("p7", 3)
	assert.InDelta(t, 899.00+3*159.00, cart.TotalPrice(), 1e-9)

	cart.RemoveFromCart("p1")
	assert.InDelta(t, 3*159.00, cart.TotalPrice(), 1e-9)

	assertCartConsistent(t, cart)
}

func TestCartInvariantsHoldOverMixedSequence(t *testing.T) {
	cart := NewCartStore()

	ops := []func(){
		func() { cart.AddToCart(sofa()) },
		func() { cart.AddToCart(lamp()) },
		func() { cart.AddToCart(sofa()) },
		func() { cart.UpdateQuantity("p1", 5) },
		func() { cart.RemoveFromCart("missing") },
		func() { cart.UpdateQuantity("p7", 0) },
		func() { cart.AddToCart(lamp()) },
	}

	for _, op := range ops {
		op()
		assertCartConsistent(t, cart)
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	removed := NewCartStore()
	removed.AddToCart(sofa())
	removed.AddToCart(lamp())
	removed.RemoveFromCart("p1")

	zeroed := NewCartStore()
	zeroed.AddToCart(sofa())
	zeroed.AddToCart(lamp())
	zeroed.UpdateQuantity("p1", 0)

	assert.Equal(t, removed.Items(), zeroed.Items())
	assert.InDelta(t, removed.TotalPrice(), zeroed.TotalPrice(), 1e-9)

	for _, item := range zeroed.Items() {
		assert.NotEqual(t, "p1", item.Product.ID)
	}
}

func TestRemoveFromCartIsNoopForUnknownID(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(sofa())

	cart.RemoveFromCart("does-not-exist")

	require.Len(t, cart.Items(), 1)
	assert.InDelta(t, 899.00, cart.TotalPrice(), 1e-9)
}

func TestClearCart(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(sofa())
	cart.AddToCart(lamp())

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.TotalPrice())
	assert.Zero(t, cart.Size())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	cart := NewCartStore()
	cart.AddToCart(sofa())

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
