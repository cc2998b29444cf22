package models

import (
	"context"

	"github.com/Temutjin2k/driver-twin/internal/domain/types"
)

// User is the caller identity extracted from a platform-issued JWT.
type User struct {
	ID   string
	Role types.UserRole
}

// AnonymousUser represents an unauthenticated caller.
func AnonymousUser() *User {
	return &User{}
}

func (u *User) IsAnonymous() bool {
	return u == nil || u.ID == ""
}

// IsAdmin reports whether the caller may read any worker's twin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == types.AdminRole
}

type userCtxKey struct{}

var userKey = userCtxKey{}

// WithUser injects the caller identity into the context.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext extracts the caller identity, nil when absent.
func UserFromContext(ctx context.Context) *User {
	u, ok := ctx.Value(userKey).(*User)
	if !ok {
		return nil
	}
	return u
}
