package stores

import (
	"sync"

	"furniture-shop/models"
)

// CartStore holds one user's cart. The total is recomputed after every
// mutation so readers never observe a stale value.
type CartStore struct {
	mu    sync.Mutex
	items []models.CartItem
	total float64
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddToCart appends a new line item, or bumps the quantity when the
// product is already in the cart. It always succeeds.
func (s *CartStore) AddToCart(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.recomputeTotal()
			return
		}
	}

	s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	s.recomputeTotal()
}

func (s *CartStore) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	s.recomputeTotal()
}

// UpdateQuantity sets the exact quantity for a line item. A quantity of
// zero or less removes the item.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.recomputeTotal()
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.recomputeTotal()
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.recomputeTotal()
}

// Size is the sum of all quantities, not the number of line items.
func (s *CartStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := 0
	for _, item := range s.items {
		size += item.Quantity
	}
	return size
}

// Items returns a snapshot copy of the cart contents.
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

func (s *CartStore) removeLocked(productID string) {
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered
}

func (s *CartStore) recomputeTotal() {
	total := 0.0
	for _, item := range s.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	s.total = total
}
