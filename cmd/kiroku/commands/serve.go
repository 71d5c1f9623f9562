package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/yukikurage/kiroku/internal/config"
	"github.com/yukikurage/kiroku/internal/constants"
	"github.com/yukikurage/kiroku/internal/database"
	"github.com/yukikurage/kiroku/internal/handlers"
	"github.com/yukikurage/kiroku/internal/logging"
	"github.com/yukikurage/kiroku/internal/metrics"
	"github.com/yukikurage/kiroku/internal/middleware"
	"github.com/yukikurage/kiroku/internal/repository"
	"github.com/yukikurage/kiroku/internal/services"
	"gorm.io/gorm"
)

const (
	sessionMaxAge   = 86400 * 7 // 7 days
	redisPoolSize   = 10
	shutdownTimeout = 10 * time.Second
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.Migrate(a.db); err != nil {
		return err
	}

	gin.SetMode(a.cfg.GinMode)

	store, err := newSessionStore(a.cfg)
	if err != nil {
		return err
	}

	r := newRouter(a.db, a.cfg, a.logger, metrics.New(), store)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "server starting", "addr", srv.Addr, "timezone", a.cfg.Timezone)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newSessionStore uses Redis when REDIS_HOST is set and signed cookies otherwise.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	if addr := cfg.RedisAddr(); addr != "" {
		rs, err := redisStore.NewStore(
			redisPoolSize, // Redis pool size
			"tcp",         // network type
			addr,          // Redis address from config
			"",            // username (empty for default user)
			"",            // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	} else {
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(), // true in production (HTTPS)
		SameSite: http.SameSiteLaxMode,
	})

	return store, nil
}

func newRouter(db *gorm.DB, cfg *config.Config, logger logging.Logger, m *metrics.Metrics, store sessions.Store) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	authService := services.NewAuthService(userRepo)
	recordService := services.NewRecordService(recordRepo, logger, m)
	reportService := services.NewReportService(recordRepo, cfg.Location, logger, m)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	handlers.RegisterRoutes(r, handlers.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Records: handlers.NewRecordHandler(recordService),
		Reports: handlers.NewReportHandler(reportService),
		Users:   userRepo,
	}, m.Handler())

	return r
}
