package stores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furniture-shop/models"
)

func testAddress() models.Address {
	return models.Address{
		FullName:      "John Doe",
		StreetAddress: "123 Main St",
		City:          "Anytown",
		State:         "CA",
		ZipCode:       "12345",
		Country:       "United States",
	}
}

func testPayment() models.PaymentMethod {
	return models.PaymentMethod{
		CardNumber:     "•••• •••• •••• 1234",
		CardHolderName: "John Doe",
		ExpiryDate:     "12/25",
		CVV:            "123",
	}
}

func TestPreviousStepNeverGoesBelowOne(t *testing.T) {
	checkout := NewCheckoutStore()

	assert.Equal(t, 1, checkout.CurrentStep())
	checkout.PreviousStep()
	checkout.PreviousStep()
	assert.Equal(t, 1, checkout.CurrentStep())

	checkout.NextStep()
	checkout.NextStep()
	assert.Equal(t, 3, checkout.CurrentStep())
	checkout.PreviousStep()
	assert.Equal(t, 2, checkout.CurrentStep())
}

func TestFirstAddressBecomesDefaultAndSelected(t *testing.T) {
	checkout := NewCheckoutStore()

	added := checkout.AddAddress(testAddress())

	require.NotEmpty(t, added.ID)
	assert.True(t, added.IsDefault)

	selected := checkout.SelectedAddress()
	require.NotNil(t, selected)
	assert.Equal(t, added.ID, selected.ID)
}

func TestAddressMarkedDefaultTakesOverSelection(t *testing.T) {
	checkout := NewCheckoutStore()

	first := checkout.AddAddress(testAddress())

	second := testAddress()
	second.FullName = "Jane Doe"
	second.IsDefault = true
	added := checkout.AddAddress(second)

	selected := checkout.SelectedAddress()
	require.NotNil(t, selected)
	assert.Equal(t, added.ID, selected.ID)

	defaults := 0
	for _, a := range checkout.Addresses() {
		if a.IsDefault {
			defaults++
			assert.NotEqual(t, first.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestNonDefaultAddressDoesNotStealSelection(t *testing.T) {
	checkout := NewCheckoutStore()

	first := checkout.AddAddress(testAddress())

	second := testAddress()
	second.FullName = "Jane Doe"
	checkout.AddAddress(second)

	selected := checkout.SelectedAddress()
	require.NotNil(t, selected)
	assert.Equal(t, first.ID, selected.ID)
}

func TestSelectAddressRequiresExistence(t *testing.T) {
	checkout := NewCheckoutStore()
	checkout.AddAddress(testAddress())

	err := checkout.SelectAddress("unknown")
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestRemovingDefaultAddressPromotesNextEntry(t *testing.T) {
	checkout := NewCheckoutStore()

	first := checkout.AddAddress(testAddress())
	second := testAddress()
	second.FullName = "Jane Doe"
	kept := checkout.AddAddress(second)

	require.NoError(t, checkout.RemoveAddress(first.ID))

	addresses := checkout.Addresses()
	require.Len(t, addresses, 1)
	assert.True(t, addresses[0].IsDefault)
	assert.Equal(t, kept.ID, addresses[0].ID)

	selected := checkout.SelectedAddress()
	require.NotNil(t, selected)
	assert.Equal(t, kept.ID, selected.ID)
}

func TestRemovingLastAddressClearsSelection(t *testing.T) {
	checkout := NewCheckoutStore()
	added := checkout.AddAddress(testAddress())

	require.NoError(t, checkout.RemoveAddress(added.ID))

	assert.Empty(t, checkout.Addresses())
	assert.Nil(t, checkout.SelectedAddress())
}

func TestPaymentMethodDefaultsMirrorAddresses(t *testing.T) {
	checkout := NewCheckoutStore()

	first := checkout.AddPaymentMethod(testPayment())
	assert.True(t, first.IsDefault)

	second := testPayment()
	second.CardHolderName = "Jane Doe"
	second.IsDefault = true
	added := checkout.AddPaymentMethod(second)

	selected := checkout.SelectedPaymentMethod()
	require.NotNil(t, selected)
	assert.Equal(t, added.ID, selected.ID)

	require.NoError(t, checkout.RemovePaymentMethod(added.ID))
	selected = checkout.SelectedPaymentMethod()
	require.NotNil(t, selected)
	assert.Equal(t, first.ID, selected.ID)
	assert.True(t, checkout.PaymentMethods()[0].IsDefault)
}

func TestPlaceOrderFailsWithoutSelections(t *testing.T) {
	items := []models.CartItem{{Product: sofa(), Quantity: 1}}

	checkout := NewCheckoutStore()
	summary, err := checkout.PlaceOrder(items, 899.00)
	assert.ErrorIs(t, err, ErrNoAddressSelected)
	assert.Nil(t, summary)
	assert.Nil(t, checkout.OrderSummary())

	checkout.AddAddress(testAddress())
	summary, err = checkout.PlaceOrder(items, 899.00)
	assert.ErrorIs(t, err, ErrNoPaymentSelected)
	assert.Nil(t, summary)
	assert.Nil(t, checkout.OrderSummary())
}

func TestPlaceOrderComputesTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		tax      float64
		shipping float64
		total    float64
	}{
		{"free shipping over fifty", 60.00, 4.80, 0.00, 64.80},
		{"flat shipping under fifty", 30.00, 2.40, 9.99, 42.39},
		{"exactly fifty still pays shipping", 50.00, 4.00, 9.99, 63.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkout := NewCheckoutStore()
			checkout.AddAddress(testAddress())
			checkout.AddPaymentMethod(testPayment())

			summary, err := checkout.PlaceOrder([]models.CartItem{{Product: sofa(), Quantity: 1}}, tt.subtotal)
			require.NoError(t, err)
			require.NotNil(t, summary)

			assert.InDelta(t, tt.subtotal, summary.Subtotal, 1e-9)
			assert.InDelta(t, tt.tax, summary.Tax, 1e-9)
			assert.InDelta(t, tt.shipping, summary.Shipping, 1e-9)
			assert.InDelta(t, tt.total, summary.Total, 1e-9)
		})
	}
}

func TestPlaceOrderStampsSummary(t *testing.T) {
	checkout := NewCheckoutStore()
	address := checkout.AddAddress(testAddress())
	payment := checkout.AddPaymentMethod(testPayment())

	items := []models.CartItem{{Product: sofa(), Quantity: 2}}
	before := time.Now().Format("2006-01-02")
	summary, err := checkout.PlaceOrder(items, 1798.00)
	after := time.Now().Format("2006-01-02")
	require.NoError(t, err)

	assert.Len(t, summary.OrderID, 8)
	assert.Equal(t, "Processing", summary.OrderStatus)
	assert.Contains(t, []string{before, after}, summary.OrderDate)
	assert.Equal(t, address.ID, summary.ShippingAddress.ID)
	assert.Equal(t, payment.ID, summary.PaymentMethod.ID)
	assert.Equal(t, items, summary.Items)

	stored := checkout.OrderSummary()
	require.NotNil(t, stored)
	assert.Equal(t, summary.OrderID, stored.OrderID)
}

func TestResetCheckout(t *testing.T) {
	checkout := NewCheckoutStore()
	checkout.AddAddress(testAddress())
	checkout.AddPaymentMethod(testPayment())
	checkout.NextStep()
	checkout.NextStep()

	_, err := checkout.PlaceOrder([]models.CartItem{{Product: lamp(), Quantity: 1}}, 159.00)
	require.NoError(t, err)

	checkout.Reset()

	assert.Equal(t, 1, checkout.CurrentStep())
	assert.Nil(t, checkout.OrderSummary())
	// The address book and payment methods survive a reset.
	assert.Len(t, checkout.Addresses(), 1)
	assert.Len(t, checkout.PaymentMethods(), 1)
}
