package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/domain"
	"github.com/heartmarshall/ranch-records/internal/service/access"
	"github.com/heartmarshall/ranch-records/pkg/ctxutil"
)

// AccessPinHeader carries the passcode on every request that needs a tier.
const AccessPinHeader = "X-Access-Pin"

type passcodeValidator interface {
	Validate(ctx context.Context, pin string) (*access.Result, error)
}

// Access derives the request tier from the passcode header. Requests without
// the header run as AccessLevelNone; a rejected passcode is answered with 403
// and spends one attempt from guard. A client out of attempts gets 429 before
// its passcode is checked.
func Access(validator passcodeValidator, guard *FailureGuard, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pin := r.Header.Get(AccessPinHeader)
			if pin == "" {
				next.ServeHTTP(w, r.WithContext(ctxutil.WithAccessLevel(r.Context(), domain.AccessLevelNone)))
				return
			}

			if guard.Blocked(w, r) {
				logger.WarnContext(r.Context(), "passcode attempts exhausted",
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				return
			}

			res, err := validator.Validate(r.Context(), pin)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					guard.Fail(r)
				}
				message := "Invalid passcode"
				if errors.Is(err, domain.ErrPasscodeExpired) {
					message = "Passcode has expired"
				}
				logger.WarnContext(r.Context(), "passcode rejected",
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("reason", message),
				)
				writeJSON(w, http.StatusForbidden, map[string]any{"success": false, "message": message})
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithAccessLevel(r.Context(), res.Level)))
		})
	}
}
