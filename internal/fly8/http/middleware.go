package http

import (
	"context"
	"net/http"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/pkg/httpx"
	"github.com/Amit01999/fly8-admin-all/pkg/slogx"
)

type userKey struct{}

// requireAuth runs the access guard in front of a handler. With no roles any
// authenticated user passes. The resolved user, without its password
// digest, is available to the handler through userFromCtx.
func (r *Router) requireAuth(roles ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			user, err := r.Guard.Check(req.Context(), req.Header.Get("Authorization"), roles...)
			if err != nil {
				writeServiceError(w, req, err)
				return
			}

			ctx := context.WithValue(req.Context(), userKey{}, user)
			ctx = slogx.WithUser(ctx, user.ID, user.Role.String())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func userFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(domain.User)
	return u, ok && u.ID != ""
}
