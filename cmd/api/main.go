package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appconfig "newsroom/internal/config"
	pgRepo "newsroom/internal/infra/adapter/persistence/postgres"
	sqliteRepo "newsroom/internal/infra/adapter/persistence/sqlite"
	"newsroom/internal/infra/db"
	"newsroom/internal/observability/logging"
	obsmetrics "newsroom/internal/observability/metrics"
	"newsroom/internal/repository"
	"newsroom/internal/resilience/circuitbreaker"

	commentUC "newsroom/internal/usecase/comment"
	newsUC "newsroom/internal/usecase/news"
	noteUC "newsroom/internal/usecase/note"
	userUC "newsroom/internal/usecase/user"

	hhttp "newsroom/internal/handler/http"
	hnews "newsroom/internal/handler/http/news"
	hnotes "newsroom/internal/handler/http/notes"
	"newsroom/internal/handler/http/requestid"
	hsession "newsroom/internal/handler/http/session"
	"newsroom/internal/handler/http/view"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := appconfig.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	securityCfg := loadSecurityPolicy(logger)

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler, repos := setupServer(logger, database, cfg, securityCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	poller := &obsmetrics.Poller{
		NewsCount:  repos.news.Count,
		NotesCount: repos.notes.Count,
		Interval:   time.Minute,
		Logger:     logger,
	}
	go poller.Run(ctx)

	runServer(ctx, logger, cfg.Addr, handler)
}

// loadSecurityPolicy loads the account security policy. The
// SECURITY_CONFIG environment variable points at a YAML file; without
// it the built-in defaults apply.
func loadSecurityPolicy(logger *slog.Logger) *appconfig.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG")
	if path == "" {
		return appconfig.DefaultSecurityConfig()
	}

	securityCfg, err := appconfig.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("invalid security configuration", slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("security policy loaded", slog.String("path", path))
	return securityCfg
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger, cfg *appconfig.Config) *sql.DB {
	database, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database, cfg.DBDriver); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// repositories groups the repository set built for the configured driver.
type repositories struct {
	news     repository.NewsRepository
	comments repository.CommentRepository
	notes    repository.NoteRepository
	users    repository.UserRepository
}

func buildRepositories(driver string, conn repository.DB) repositories {
	if driver == db.DriverSQLite {
		return repositories{
			news:     sqliteRepo.NewNewsRepo(conn),
			comments: sqliteRepo.NewCommentRepo(conn),
			notes:    sqliteRepo.NewNoteRepo(conn),
			users:    sqliteRepo.NewUserRepo(conn),
		}
	}
	return repositories{
		news:     pgRepo.NewNewsRepo(conn),
		comments: pgRepo.NewCommentRepo(conn),
		notes:    pgRepo.NewNoteRepo(conn),
		users:    pgRepo.NewUserRepo(conn),
	}
}

// setupServer wires repositories, services, handlers and middleware
// into the root HTTP handler.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *appconfig.Config, securityCfg *appconfig.SecurityConfig) (http.Handler, repositories) {
	// Database calls go through a circuit breaker so a dead database
	// fails fast instead of piling up blocked requests.
	repos := buildRepositories(cfg.DBDriver, circuitbreaker.NewDBCircuitBreaker(database))

	newsSvc := &newsUC.Service{Repo: repos.news}
	commentSvc := &commentUC.Service{Repo: repos.comments, News: repos.news, BadWords: cfg.BadWords}
	noteSvc := &noteUC.Service{Repo: repos.notes}
	userSvc := &userUC.Service{
		Repo:              repos.users,
		MinPasswordLength: securityCfg.GetMinPasswordLength(),
		WeakPasswords:     securityCfg.GetWeakPasswords(),
	}

	renderer, err := view.New()
	if err != nil {
		logger.Error("failed to parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	sessions := &hsession.Manager{
		Secret: []byte(sessionSecret(cfg, securityCfg)),
		TTL:    cfg.SessionTTL,
	}

	mux := http.NewServeMux()

	hnews.Register(mux, &hnews.Handlers{
		News:      newsSvc,
		Comments:  commentSvc,
		Users:     userSvc,
		View:      renderer,
		Logger:    logger,
		HomeCount: cfg.NewsCountOnHomePage,
	})
	hnotes.Register(mux, &hnotes.Handlers{
		Notes:  noteSvc,
		View:   renderer,
		Logger: logger,
	})
	hsession.Register(mux, &hsession.Handlers{
		Users:        userSvc,
		Sessions:     sessions,
		View:         renderer,
		Logger:       logger,
		LogoutStatus: cfg.LogoutStatus,
	}, hhttp.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst))

	mux.Handle("GET /healthz", &hhttp.HealthHandler{DB: database, Version: version()})
	mux.Handle("GET /livez", hhttp.LiveHandler())
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Middleware order: Recover -> Request ID -> Logging -> Metrics ->
	// Timeout -> Body Limit -> Session
	var handler http.Handler = sessions.WithIdentity(mux)
	handler = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(handler)
	handler = hhttp.Timeout(cfg.RequestTimeout)(handler)
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = requestid.Middleware(handler)
	handler = hhttp.Recover(logger)(handler)

	return handler, repos
}

// sessionSecret resolves the session signing secret. The security
// policy names the environment variable; the default policy points at
// SESSION_SECRET, which Load has already validated.
func sessionSecret(cfg *appconfig.Config, securityCfg *appconfig.SecurityConfig) string {
	if secret := os.Getenv(securityCfg.GetSessionSecretEnv()); secret != "" {
		return secret
	}
	return cfg.SessionSecret
}

func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}

// runServer starts the HTTP server and shuts it down gracefully on
// SIGINT or SIGTERM.
func runServer(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
		}
	}
}
