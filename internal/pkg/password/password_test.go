//go:build unit

package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"canteen-reservation/internal/pkg/password"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hash, err := password.HashPasswordWithCost("cantine2025", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "cantine2025"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
}

func TestHashPassword_Rejects(t *testing.T) {
	t.Parallel()

	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)

	_, err = password.HashPassword(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, password.ErrPasswordTooLong)
}
