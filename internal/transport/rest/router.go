package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/ranch-records/internal/config"
	"github.com/heartmarshall/ranch-records/internal/transport/middleware"
)

// RouterConfig gathers everything NewRouter mounts.
type RouterConfig struct {
	Records   *RecordHandler
	Board     *BoardHandler
	Forms     *FormsHandler
	Access    *AccessHandler
	Health    *HealthHandler
	Passcodes passcodeService
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Limiter   *middleware.RateLimiter
	OpenAdmin bool
	Files     http.Handler
	Logger    *slog.Logger
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(rc RouterConfig) http.Handler {
	mux := http.NewServeMux()

	admin := middleware.AdminOnly(rc.OpenAdmin)
	pinLimit := rc.Limiter.Limit(rc.RateLimit.ValidatePinPerMinute)
	formLimit := rc.Limiter.Limit(rc.RateLimit.FormsPerMinute)

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		mux.Handle(pattern, middleware.Chain(mws...)(h))
	}

	handle("GET /api/records", rc.Records.List)
	handle("GET /api/records/{id}", rc.Records.Get)
	handle("POST /api/records", rc.Records.Upload, admin)
	handle("PATCH /api/records/{id}/archive", rc.Records.Archive, admin)
	handle("DELETE /api/records/{id}", rc.Records.Delete, admin)
	handle("POST /api/records/sync", rc.Records.Sync, admin)

	handle("GET /api/board-members", rc.Board.List)
	handle("PUT /api/board-members", rc.Board.Replace, admin)

	handle("POST /api/validate-pin", rc.Access.ValidatePin, pinLimit)
	handle("POST /api/contact", rc.Forms.Contact, formLimit)
	handle("POST /api/newsletter", rc.Forms.Newsletter, formLimit)

	handle("GET /live", rc.Health.Live)
	handle("GET /ready", rc.Health.Ready)
	handle("GET /health", rc.Health.Health)

	if rc.Files != nil {
		mux.Handle("GET /files/", http.StripPrefix("/files", rc.Files))
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(rc.Logger),
		middleware.CORS(rc.CORS),
		middleware.Access(rc.Passcodes, rc.Limiter.Failures(rc.RateLimit.ValidatePinPerMinute), rc.Logger),
		middleware.Logger(rc.Logger),
	)(mux)
}
