//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	pkgjwt "hotel-ops/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a token the way the identity service would. The backend
// itself only validates tokens, so tests mint their own.
func IssueToken(t *testing.T, secret string, actorID uuid.UUID, role string) string {
	t.Helper()

	claims := pkgjwt.Claims{
		ActorID: actorID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
