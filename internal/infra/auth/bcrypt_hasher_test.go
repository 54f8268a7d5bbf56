package auth

import (
	"testing"

	"boutique/config"

	"github.com/stretchr/testify/assert"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	password := "correct-horse"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-horse", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_CheckAgainstEmptyHash(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	// A freshly seeded store has an empty hash; nothing may match it.
	assert.False(t, hasher.Check("anything", ""))
	assert.False(t, hasher.Check("", ""))
}
