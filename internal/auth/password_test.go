package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashProducesDistinctSalts(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("s3cret!")
	assert.NoError(t, err)
	second, err := hasher.Hash("s3cret!")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("s3cret!", first))
	assert.True(t, hasher.Check("s3cret!", second))
}

func TestPasswordHasher_Check(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{"matching password", "correct horse", hash, true},
		{"wrong password", "battery staple", hash, false},
		{"empty password", "", hash, false},
		{"malformed hash", "correct horse", "not-a-bcrypt-hash", false},
		{"empty hash", "correct horse", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Check(tt.password, tt.hash))
		})
	}
}

func TestNewPasswordHasher_CostBounds(t *testing.T) {
	// Out-of-range costs fall back to the default instead of failing later.
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		hasher := NewPasswordHasher(cost)
		assert.Equal(t, DefaultBcryptCost, hasher.cost)
	}

	hasher := NewPasswordHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
}
