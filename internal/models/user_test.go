package models_test

import (
	"testing"

	"meetgo/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserPassword_Roundtrip(t *testing.T) {
	user := &models.User{Username: "alice", Email: "alice@example.com"}

	err := user.SetPassword("correct horse battery")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "correct horse", "hash must not embed the plaintext")

	assert.True(t, user.CheckPassword("correct horse battery"))
	assert.False(t, user.CheckPassword("wrong password"))
	assert.False(t, user.CheckPassword(""))
}

func TestUserPassword_DistinctHashes(t *testing.T) {
	a := &models.User{}
	b := &models.User{}
	assert.NoError(t, a.SetPassword("same password"))
	assert.NoError(t, b.SetPassword("same password"))

	// bcrypt salts per call.
	assert.NotEqual(t, a.PasswordHash, b.PasswordHash)
}
