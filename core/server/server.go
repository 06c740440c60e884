package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-portal/core/cache"
	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/controller"
	"event-portal/core/database"
	"event-portal/core/i18n"
	"event-portal/core/logger"
	"event-portal/core/middleware"
	"event-portal/core/render"
	"event-portal/core/session"
	"event-portal/core/storage"
	"event-portal/core/utils"
	"event-portal/modules/auth"
	"event-portal/modules/dashboard"
	"event-portal/modules/event"
	"event-portal/modules/notification"
	notificationService "event-portal/modules/notification/service"
	"event-portal/modules/registration"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 10 * time.Second

// Deps are the long-lived resources the HTTP application is built from.
type Deps struct {
	Config            *config.Config
	DB                database.IDatabase
	Cache             cache.Cache
	Notifier          notificationService.NotificationService
	Uploader          storage.Uploader
	AdminPasswordHash string
}

// NewApp builds the echo application with every module registered.
func NewApp(deps Deps) (*echo.Echo, error) {
	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}

	cfg := deps.Config
	translator := i18n.NewTranslator(constants.DefaultLocale)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.CookieSecure, deps.Cache)
	mw := middleware.NewMiddleware(sessions, translator)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = controller.HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLogger())
	e.Use(mw.SessionMiddleware())
	e.StaticFS("/static", render.Static())

	notifier := deps.Notifier
	if notifier == nil {
		notifier = notificationService.NewLogNotificationService()
	}

	authSvc := auth.Init(e, deps.DB, mw, sessions, translator, deps.AdminPasswordHash)
	eventSvc := event.Init(e, deps.DB, mw, translator)
	registrationSvc := registration.Init(e, deps.DB, mw, registration.Deps{
		Events:         eventSvc,
		Profiles:       authSvc,
		Notifier:       notifier,
		Translator:     translator,
		AllowAnonymous: cfg.Registration.AllowAnonymous,
	})
	dashboard.Init(e, mw, eventSvc, registrationSvc, deps.Uploader, translator)

	return e, nil
}

// AdminPasswordHash returns the configured bcrypt hash, hashing a plaintext
// ADMIN_PASSWORD when no hash is given.
func AdminPasswordHash(cfg config.AdminConfig) (string, error) {
	if cfg.PasswordHash != "" {
		return cfg.PasswordHash, nil
	}
	return utils.HashPassword(cfg.Password)
}

// Run loads configuration, opens every backing service and serves HTTP until
// SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.App.LogLevel, cfg.App.IsDevelopment())

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return err
	}

	ctx := context.Background()
	var sessionCache cache.Cache
	if cfg.Redis.Enabled() {
		sessionCache, err = cache.NewRedisCache(ctx, cache.NewRedisClient(cfg.Redis))
		if err != nil {
			return err
		}
	} else {
		logger.Warn("Server:Run:RedisDisabled", "cache", "memory")
		sessionCache = cache.NewMemoryCache()
	}
	defer sessionCache.Close()

	adminHash, err := AdminPasswordHash(cfg.Admin)
	if err != nil {
		return err
	}

	notifier, worker := notification.Init(cfg)
	defer notifier.Close()
	if worker != nil {
		if err := worker.Start(); err != nil {
			return err
		}
		defer worker.Shutdown()
	}

	var uploader storage.Uploader
	if cfg.S3.Enabled() {
		uploader = storage.NewS3Uploader(storage.NewS3Client(cfg.S3), cfg.S3.Bucket)
	}

	e, err := NewApp(Deps{
		Config:            cfg,
		DB:                db,
		Cache:             sessionCache,
		Notifier:          notifier,
		Uploader:          uploader,
		AdminPasswordHash: adminHash,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server:Run:Listening", "address", cfg.Server.Address(), "env", cfg.App.Env)
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		logger.Info("Server:Run:Shutdown", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
