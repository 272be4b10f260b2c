package stores

import (
	"sync"

	"furniture-shop/models"
)

// FavoritesStore keeps the saved product ids and the matching product
// snapshots in lockstep. Both views always contain the same ids.
type FavoritesStore struct {
	mu       sync.Mutex
	ids      map[string]struct{}
	products []models.Product
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{ids: make(map[string]struct{})}
}

// Toggle flips the favorite status of a product and reports whether the
// product is favorited after the call.
func (s *FavoritesStore) Toggle(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[product.ID]; ok {
		delete(s.ids, product.ID)
		s.removeProductLocked(product.ID)
		return false
	}

	s.ids[product.ID] = struct{}{}
	s.products = append(s.products, product)
	return true
}

func (s *FavoritesStore) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[productID]
	return ok
}

// Remove drops a product from favorites. Removing an id that is not
// saved is a no-op.
func (s *FavoritesStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, productID)
	s.removeProductLocked(productID)
}

func (s *FavoritesStore) SavedProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

func (s *FavoritesStore) SavedProductIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.products))
	for _, p := range s.products {
		ids = append(ids, p.ID)
	}
	return ids
}

func (s *FavoritesStore) removeProductLocked(productID string) {
	filtered := s.products[:0]
	for _, p := range s.products {
		if p.ID != productID {
			filtered = append(filtered, p)
		}
	}
	s.products = filtered
}
