package stores

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"furniture-shop/models"
)

const (
	taxRate           = 0.08
	shippingFlatRate  = 9.99
	freeShippingAbove = 50.0
)

var (
	ErrNoAddressSelected = errors.New("please select a shipping address")
	ErrNoPaymentSelected = errors.New("please select a payment method")
	ErrAddressNotFound   = errors.New("address not found")
	ErrPaymentNotFound   = errors.New("payment method not found")
)

// CheckoutStore drives the linear checkout flow: address selection,
// payment selection, review, placement. The step counter starts at 1 and
// never goes below it.
type CheckoutStore struct {
	mu              sync.Mutex
	addresses       []models.Address
	payments        []models.PaymentMethod
	selectedAddress string
	selectedPayment string
	currentStep     int
	summary         *models.OrderSummary
}

func NewCheckoutStore() *CheckoutStore {
	return &CheckoutStore{currentStep: 1}
}

func (s *CheckoutStore) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

func (s *CheckoutStore) NextStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep++
	return s.currentStep
}

func (s *CheckoutStore) PreviousStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentStep > 1 {
		s.currentStep--
	}
	return s.currentStep
}

// AddAddress stores a new shipping address. The first address becomes
// the default; an address marked default takes the flag over from the
// previous holder so the collection keeps exactly one default entry.
func (s *CheckoutStore) AddAddress(address models.Address) models.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	address.ID = uuid.NewString()
	if len(s.addresses) == 0 {
		address.IsDefault = true
	} else if address.IsDefault {
		for i := range s.addresses {
			s.addresses[i].IsDefault = false
		}
	}

	s.addresses = append(s.addresses, address)

	if s.selectedAddress == "" || address.IsDefault {
		s.selectedAddress = address.ID
	}
	return address
}

func (s *CheckoutStore) SelectAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.addresses {
		if a.ID == id {
			s.selectedAddress = id
			return nil
		}
	}
	return ErrAddressNotFound
}

// RemoveAddress deletes an address. When the default or selected entry
// is removed, the first remaining address is promoted in its place.
func (s *CheckoutStore) RemoveAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, a := range s.addresses {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAddressNotFound
	}

	wasDefault := s.addresses[idx].IsDefault
	s.addresses = append(s.addresses[:idx], s.addresses[idx+1:]...)

	if len(s.addresses) == 0 {
		s.selectedAddress = ""
		return nil
	}
	if wasDefault {
		s.addresses[0].IsDefault = true
	}
	if s.selectedAddress == id {
		s.selectedAddress = s.addresses[0].ID
	}
	return nil
}

// AddPaymentMethod mirrors AddAddress for payment records.
func (s *CheckoutStore) AddPaymentMethod(payment models.PaymentMethod) models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment.ID = uuid.NewString()
	if len(s.payments) == 0 {
		payment.IsDefault = true
	} else if payment.IsDefault {
		for i := range s.payments {
			s.payments[i].IsDefault = false
		}
	}

	s.payments = append(s.payments, payment)

	if s.selectedPayment == "" || payment.IsDefault {
		s.selectedPayment = payment.ID
	}
	return payment
}

func (s *CheckoutStore) SelectPaymentMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.payments {
		if p.ID == id {
			s.selectedPayment = id
			return nil
		}
	}
	return ErrPaymentNotFound
}

func (s *CheckoutStore) RemovePaymentMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.payments {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrPaymentNotFound
	}

	wasDefault := s.payments[idx].IsDefault
	s.payments = append(s.payments[:idx], s.payments[idx+1:]...)

	if len(s.payments) == 0 {
		s.selectedPayment = ""
		return nil
	}
	if wasDefault {
		s.payments[0].IsDefault = true
	}
	if s.selectedPayment == id {
		s.selectedPayment = s.payments[0].ID
	}
	return nil
}

func (s *CheckoutStore) Addresses() []models.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	addresses := make([]models.Address, len(s.addresses))
	copy(addresses, s.addresses)
	return addresses
}

func (s *CheckoutStore) PaymentMethods() []models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]models.PaymentMethod, len(s.payments))
	copy(payments, s.payments)
	return payments
}

func (s *CheckoutStore) SelectedAddress() *models.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedAddressLocked()
}

func (s *CheckoutStore) SelectedPaymentMethod() *models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedPaymentLocked()
}

// PlaceOrder turns the cart snapshot into an immutable order summary.
// It fails without touching any state when no address or no payment
// method is selected.
func (s *CheckoutStore) PlaceOrder(items []models.CartItem, subtotal float64) (*models.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	address := s.selectedAddressLocked()
	if address == nil {
		return nil, ErrNoAddressSelected
	}
	payment := s.selectedPaymentLocked()
	if payment == nil {
		return nil, ErrNoPaymentSelected
	}

	tax := subtotal * taxRate
	shipping := shippingFlatRate
	if subtotal > freeShippingAbove {
		shipping = 0
	}

	summary := &models.OrderSummary{
		OrderID:         uuid.NewString()[:8],
		Items:           items,
		Subtotal:        subtotal,
		Tax:             tax,
		Shipping:        shipping,
		Total:           subtotal + tax + shipping,
		ShippingAddress: *address,
		PaymentMethod:   *payment,
		OrderDate:       time.Now().Format("2006-01-02"),
		OrderStatus:     "Processing",
	}

	s.summary = summary
	return summary, nil
}

// OrderSummary returns the summary of the last placed order, or nil when
// no order has been placed since the last reset.
func (s *CheckoutStore) OrderSummary() *models.OrderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary == nil {
		return nil
	}
	summary := *s.summary
	return &summary
}

// Reset returns the flow to the first step and drops the order summary.
// Addresses and payment methods survive a reset.
func (s *CheckoutStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = 1
	s.summary = nil
}

func (s *CheckoutStore) selectedAddressLocked() *models.Address {
	for _, a := range s.addresses {
		if a.ID == s.selectedAddress {
			address := a
			return &address
		}
	}
	return nil
}

func (s *CheckoutStore) selectedPaymentLocked() *models.PaymentMethod {
	for _, p := range s.payments {
		if p.ID == s.selectedPayment {
			payment := p
			return &payment
		}
	}
	return nil
}
