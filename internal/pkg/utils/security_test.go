package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	passwordCost = bcrypt.MinCost
	t.Cleanup(func() { passwordCost = bcrypt.DefaultCost })

	hashed, err := HashPassword("Str0ng#Secret")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng#Secret", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("Str0ng#Secret")))

	_, err = HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
