package stores

import (
	"context"
	"errors"
	"sync"

	"furniture-shop/models"
)

var ErrNotLoggedIn = errors.New("no active session")

// ProfileRepository is the document-store collaborator the session talks
// to. Failures are surfaced as errors and never retried here.
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// ProfileStore tracks one user's session state and cached profile.
//
// Profile fetches run asynchronously. Every state change bumps a
// sequence number and each in-flight fetch remembers the sequence it was
// started under; a response whose sequence is stale by arrival time is
// dropped, so a fetch racing a logout or a newer login can never clobber
// the current state.
type ProfileStore struct {
	mu       sync.Mutex
	profiles ProfileRepository
	loggedIn bool
	current  *models.User
	seq      uint64
}

func NewProfileStore(profiles ProfileRepository) *ProfileStore {
	return &ProfileStore{profiles: profiles}
}

// Begin marks the session live with the authenticated user and kicks off
// a background refresh of the full profile document.
func (s *ProfileStore) Begin(user *models.User) {
	s.mu.Lock()
	s.loggedIn = true
	u := *user
	s.current = &u
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	go s.refresh(user.ID, seq)
}

func (s *ProfileStore) refresh(userID string, seq uint64) {
	user, err := s.profiles.Get(context.Background(), userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || !s.loggedIn {
		// The session moved on while the fetch was in flight.
		return
	}
	if err != nil {
		// Keep the cached basics from login.
		return
	}
	s.current = user
}

// Resume restores a session from a bearer token by fetching the profile
// synchronously, for requests arriving after a process restart.
func (s *ProfileStore) Resume(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	s.seq++
	u := *user
	s.current = &u
	return user, nil
}

func (s *ProfileStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false
	s.current = nil
	s.seq++
}

func (s *ProfileStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// CurrentUser returns a copy of the cached profile, or nil when no
// session is active.
func (s *ProfileStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// UpdateProfile writes the merged profile fields to the document store
// and refreshes the cache on success.
func (s *ProfileStore) UpdateProfile(ctx context.Context, name, phone, address string) (*models.User, error) {
	s.mu.Lock()
	if !s.loggedIn || s.current == nil {
		s.mu.Unlock()
		return nil, ErrNotLoggedIn
	}

	updated := *s.current
	updated.Name = name
	updated.Phone = phone
	updated.Address = address
	seq := s.seq
	s.mu.Unlock()

	if err := s.profiles.Save(ctx, &updated); err != nil {
		// Nothing was written, so fetches in flight stay valid.
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.seq && s.loggedIn {
		// Invalidate fetches started before the write so none of them
		// can overwrite the values just saved.
		s.seq++
		u := updated
		s.current = &u
	}
	user := updated
	return &user, nil
}
