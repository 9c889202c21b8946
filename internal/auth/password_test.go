package auth_test

import (
	"strings"
	"testing"

	"github.com/DroneHQio/dronehq-app/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	t.Run("round trip", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

		ok, err := hasher.Verify("correct horse battery staple", hash)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password does not verify", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery staple")
		assert.NoError(t, err)

		ok, err := hasher.Verify("incorrect horse", hash)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("salts differ between hashes", func(t *testing.T) {
		first, err := hasher.Hash("same password")
		assert.NoError(t, err)
		second, err := hasher.Hash("same password")
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := hasher.Verify("anything", "not-a-hash")
		assert.Error(t, err)
	})
}
