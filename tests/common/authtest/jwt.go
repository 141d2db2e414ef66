//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lanebook/internal/domain/user"
	"lanebook/internal/pkg/config"
	"lanebook/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// TokenFor mints a signed access token for the given user, bypassing any
// login flow.
func TokenFor(t *testing.T, cfg config.JWTConfig, userID int64, role user.Role) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	svc := jwt.NewService(cfg.Secret, duration)
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
