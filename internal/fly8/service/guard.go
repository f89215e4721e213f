package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/store"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

// AccessGuard turns an Authorization header into a user and enforces role
// membership. Every protected operation goes through it; nothing else reads
// identity out of a token.
type AccessGuard struct {
	Tokens *TokenService
	Store  store.Store
}

// Authenticate resolves the bearer token in header to a stored user. Every
// failure wraps ErrUnauthenticated; token failures also wrap the jwtx cause
// so callers can tell expiry from tampering.
func (g *AccessGuard) Authenticate(ctx context.Context, header string) (domain.User, error) {
	token, ok := httpx.ParseBearer(header)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: missing bearer token", ErrUnauthenticated)
	}

	id, err := g.Tokens.Validate(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := g.Store.Users().GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Info("token for unknown user", slog.String("user_id", id.UserID))
			return domain.User{}, ErrUnknownUser
		}
		return domain.User{}, err
	}

	return user.WithoutCredential(), nil
}

// Authorize fails with ErrForbidden unless user holds one of roles. No roles
// means any authenticated user.
func (g *AccessGuard) Authorize(user domain.User, roles ...domain.Role) error {
	if len(roles) == 0 || slices.Contains(roles, user.Role) {
		return nil
	}
	return ErrForbidden
}

// Check is Authenticate followed by Authorize.
func (g *AccessGuard) Check(ctx context.Context, header string, roles ...domain.Role) (domain.User, error) {
	user, err := g.Authenticate(ctx, header)
	if err != nil {
		return domain.User{}, err
	}
	if err := g.Authorize(user, roles...); err != nil {
		slogx.FromContext(ctx).Info("role not permitted",
			slog.String("user_id", user.ID),
			slog.String("role", user.Role.String()),
		)
		return domain.User{}, err
	}
	return user, nil
}
