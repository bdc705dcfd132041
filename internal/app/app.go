package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ranch-records/internal/adapter/memory"
	"github.com/heartmarshall/ranch-records/internal/config"
	"github.com/heartmarshall/ranch-records/internal/defaults"
	"github.com/heartmarshall/ranch-records/internal/service/access"
	"github.com/heartmarshall/ranch-records/internal/service/board"
	"github.com/heartmarshall/ranch-records/internal/service/contact"
	"github.com/heartmarshall/ranch-records/internal/service/newsletter"
	"github.com/heartmarshall/ranch-records/internal/service/records"
	"github.com/heartmarshall/ranch-records/internal/transport/middleware"
	"github.com/heartmarshall/ranch-records/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, opens storage,
// reconciles the record store once and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	comps, err := openComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer comps.Close()

	recordSvc := comps.recordsService(cfg, logger)

	if !cfg.Records.SkipStartupSync {
		report, err := recordSvc.Reconcile(ctx)
		if err != nil {
			logger.Error("startup sync failed", slog.String("error", err.Error()))
		} else {
			logger.Info("startup sync complete",
				slog.Int("listed", report.Listed),
				slog.Int("added", report.Added),
			)
		}
	}

	handler, limiter, err := buildHandler(cfg, comps, recordSvc, logger)
	if err != nil {
		return err
	}
	defer limiter.Stop()

	return serve(ctx, cfg.Server, handler, logger)
}

func buildHandler(cfg *config.Config, comps *components, recordSvc *records.Service, logger *slog.Logger) (http.Handler, *middleware.RateLimiter, error) {
	members, err := defaults.BoardMembers()
	if err != nil {
		return nil, nil, err
	}

	// A nil *pin.Repo must not reach the service as a non-nil interface.
	var accessSvc *access.Service
	accessCfg := access.Config{UserPasscode: cfg.Access.UserPasscode, AdminPasscode: cfg.Access.AdminPasscode}
	if comps.pins != nil {
		accessSvc = access.NewService(logger, comps.pins, accessCfg)
	} else {
		accessSvc = access.NewService(logger, nil, accessCfg)
	}

	boardSvc := board.NewService(logger, memory.NewBoardRepo(members))
	contactSvc := contact.NewService(logger, memory.NewContactRepo())
	newsletterSvc := newsletter.NewService(logger, memory.NewNewsletterRepo())

	health := []rest.Component{
		{Name: "records", Pinger: comps.records},
		{Name: "object_store", Pinger: comps.blobs},
	}
	if comps.pool != nil {
		health = append(health, rest.Component{Name: "database", Pinger: comps.pool})
	}

	limiter := middleware.NewRateLimiter(time.Minute)

	views := rest.ViewPolicies{
		Records: records.Policy{UserSeesArchived: cfg.Visibility.RecordsUserArchived == config.ArchivedShow},
		Portal:  records.Policy{UserSeesArchived: cfg.Visibility.PortalUserArchived == config.ArchivedShow},
	}

	if cfg.Access.AllowOpenMutations {
		logger.Warn("mutation endpoints accept requests without an admin passcode")
	}

	return rest.NewRouter(rest.RouterConfig{
		Records:   rest.NewRecordHandler(recordSvc, views, cfg.Upload.MaxBytes, logger),
		Board:     rest.NewBoardHandler(boardSvc, logger),
		Forms:     rest.NewFormsHandler(contactSvc, newsletterSvc, logger),
		Access:    rest.NewAccessHandler(accessSvc, logger),
		Health:    rest.NewHealthHandler(Version, health...),
		Passcodes: accessSvc,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Limiter:   limiter,
		OpenAdmin: cfg.Access.AllowOpenMutations,
		Files:     comps.files,
		Logger:    logger,
	}), limiter, nil
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown", slog.String("error", err.Error()))
			return err
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
