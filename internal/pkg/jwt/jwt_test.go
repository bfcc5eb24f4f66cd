package jwt

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	companyID := "company-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", nil, &companyID, user.RoleManager)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims := token.PrivateClaims()
	assert.Equal(t, "company-1", claims["company_id"])
	assert.Nil(t, claims["employee_id"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService("test-secret", "forever")

	_, _, err := svc.GenerateAccessToken("user-1", nil, nil, user.RoleEmployee)
	assert.Error(t, err)
}

func TestDecode_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "1h")
	verifier := NewJWTService("secret-b", "1h")

	tokenString, _, err := issuer.GenerateAccessToken("user-1", nil, nil, user.RoleOwner)
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
