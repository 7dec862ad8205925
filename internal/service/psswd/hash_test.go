package psswd

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	var hasher PasswordHash

	password := gofakeit.Password(true, true, true, true, false, 16)

	hash, err := hasher.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.ComparePassword(password, hash))
	assert.False(t, hasher.ComparePassword("wrong password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	var hasher PasswordHash

	first, err := hasher.HashPassword("same password")
	require.NoError(t, err)
	second, err := hasher.HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
