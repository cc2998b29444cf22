package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
)

// TokenService verifies platform-issued access tokens. The twin never issues
// tokens itself; the ride platform signs them with the shared secret and this
// service only checks the signature and extracts the caller identity.
type TokenService struct {
	secret string
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret}
}

// RoleCheck validates the token and returns the caller it identifies.
func (s *TokenService) RoleCheck(ctx context.Context, token string) (*models.User, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	parsedToken, err := jwt.ParseWithClaims(token, jwt.MapClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, types.ErrInvalidToken
		}
		return []byte(s.secret), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	mc, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrInvalidToken)
	}

	userID, _ := mc["sub"].(string)
	if userID == "" {
		return nil, wrap.Error(ctx, fmt.Errorf("invalid or missing 'sub' in token claims"))
	}

	role, _ := mc["role"].(string)
	switch types.UserRole(role) {
	case types.EarnerRole, types.AdminRole:
	default:
		return nil, wrap.Error(ctx, fmt.Errorf("unknown role %q in token claims", role))
	}

	return &models.User{
		ID:   userID,
		Role: types.UserRole(role),
	}, nil
}
