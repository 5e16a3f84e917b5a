package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundtrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, h.Verify("hunter2", hash))
	assert.False(t, h.Verify("hunter3", hash))
}

func TestNewHasherClampsBadCost(t *testing.T) {
	h := NewHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestHashesAreSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same password")
	require.NoError(t, err)
	second, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same password", first))
	assert.True(t, h.Verify("same password", second))
}
