package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerReturnsSameSessionForUser(t *testing.T) {
	manager := NewManager(newFakeProfiles())

	first := manager.Session("u1")
	require.NotNil(t, first)

	first.Cart.AddToCart(sofa())

	second := manager.Session("u1")
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Cart.Size())
}

func TestManagerIsolatesSessionsBetweenUsers(t *testing.T) {
	manager := NewManager(newFakeProfiles())

	alice := manager.Session("u1")
	bob := manager.Session("u2")
	require.NotSame(t, alice, bob)

	alice.Cart.AddToCart(sofa())
	alice.Favorites.Toggle(lamp())

	assert.Zero(t, bob.Cart.Size())
	assert.Empty(t, bob.Favorites.SavedProducts())
}

func TestManagerDropDiscardsState(t *testing.T) {
	manager := NewManager(newFakeProfiles())

	session := manager.Session("u1")
	session.Cart.AddToCart(sofa())

	manager.Drop("u1")

	fresh := manager.Session("u1")
	require.NotSame(t, session, fresh)
	assert.Zero(t, fresh.Cart.Size())
}
