package stores

import "sync"

// Session bundles the per-user state containers. Each store exclusively
// owns its state; cross-store reads go through snapshot values.
type Session struct {
	Cart      *CartStore
	Favorites *FavoritesStore
	Checkout  *CheckoutStore
	Profile   *ProfileStore
}

// Manager owns the lifecycle of every Session. It is constructed once at
// the composition root and handed to the controllers that need it.
type Manager struct {
	mu       sync.Mutex
	profiles ProfileRepository
	sessions map[string]*Session
}

func NewManager(profiles ProfileRepository) *Manager {
	return &Manager{
		profiles: profiles,
		sessions: make(map[string]*Session),
	}
}

// Session returns the state bundle for a user, creating it on first use.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}

	s := &Session{
		Cart:      NewCartStore(),
		Favorites: NewFavoritesStore(),
		Checkout:  NewCheckoutStore(),
		Profile:   NewProfileStore(m.profiles),
	}
	m.sessions[userID] = s
	return s
}

// Drop tears a user's state bundle down.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
