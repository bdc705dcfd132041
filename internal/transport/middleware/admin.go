package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the request tier is not admin.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.AccessLevelFromCtx(ctx).IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly guards mutation routes. With open set, every request passes.
func AdminOnly(open bool) Middleware {
	return func(next http.Handler) http.Handler {
		if open {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := RequireAdmin(r.Context()); err != nil {
				writeJSON(w, http.StatusForbidden, map[string]string{"message": "Admin access required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
