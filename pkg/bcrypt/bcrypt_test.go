package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	b := NewWithCost(bcrypt.MinCost)

	hash, err := b.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, b.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, b.ComparePassword(hash, "battery staple"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestNewReadsCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "5")
	assert.Equal(t, 5, New().(*bcryptService).cost)

	t.Setenv("BCRYPT_COST", "99")
	assert.Equal(t, bcrypt.DefaultCost, New().(*bcryptService).cost)
}
