package utils_test

import (
	"strings"
	"testing"

	"github.com/samandar-s/exchange_office_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("hash verifies against the original", func(t *testing.T) {
		hash, err := utils.HashPassword("s3cret-pass")
		require.NoError(t, err)
		assert.NotEqual(t, "s3cret-pass", hash)
		assert.True(t, utils.CheckPasswordHash("s3cret-pass", hash))
		assert.False(t, utils.CheckPasswordHash("wrong-pass", hash))
	})

	t.Run("over-length password rejected", func(t *testing.T) {
		_, err := utils.HashPassword(strings.Repeat("a", 73))
		assert.Error(t, err)
	})
}
