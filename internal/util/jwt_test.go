package util

import (
	"testing"
	"time"
	"traininghub_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	companyID := uint(3)
	user := &model.User{
		Email:     "alice@example.com",
		Role:      model.Business,
		CompanyID: &companyID,
	}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.Business, claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
	require.NotNil(t, claims.CompanyID)
	assert.Equal(t, uint(3), *claims.CompanyID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "bob@example.com", Role: model.Student}
	user.ID = 1

	token, err := GenerateJWT(user, "right-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "carol@example.com", Role: model.Admin}
	user.ID = 2

	token, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}
