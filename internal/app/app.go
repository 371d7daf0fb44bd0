package app

import (
	"context"
	"database/sql"
	"errors"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/cloudinary"
	"go-jewel-storefront/internal/config"
	"go-jewel-storefront/internal/middleware"
	"go-jewel-storefront/internal/outbox"
	"go-jewel-storefront/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	maxRetries  = 5
	storePrefix = "storefront:"
)

// Infra is everything the modules share. Optional parts are nil when unconfigured.
type Infra struct {
	Config config.Config
	Logger *zap.Logger
	Store  session.Store
	API    *apiclient.Client
	Images cloudinary.Service
	Events outbox.Service

	redis *redis.Client
	db    *sql.DB
}

func (i *Infra) Close() {
	if i.db != nil {
		_ = i.db.Close()
	}
	if i.redis != nil {
		_ = i.redis.Close()
	}
}

func connectStore(cfg config.Config, logger *zap.Logger) (session.Store, *redis.Client, error) {
	if cfg.RedisAddr == "" || cfg.RedisAddr == "memory" {
		logger.Warn("REDIS_ADDR not set, browser storage is in-memory and per-process")
		return session.NewMemoryStore(), nil, nil
	}
	rdb, err := connectRedisWithRetry(cfg.RedisAddr, maxRetries)
	if err != nil {
		return nil, nil, err
	}
	return session.NewRedisStore(rdb, storePrefix), rdb, nil
}

// openOutbox connects Postgres and prepares the outbox table.
func openOutbox(cfg config.Config, logger *zap.Logger) (*sql.DB, outbox.Service, error) {
	db, err := connectDBWithRetry(cfg.DBURL, maxRetries)
	if err != nil {
		return nil, nil, err
	}
	if err := outbox.EnsureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, outbox.NewService(outbox.NewRepository(db), "order", logger.Named("outbox")), nil
}

func newImages(cfg config.Config, logger *zap.Logger) cloudinary.Service {
	if !cfg.CloudinaryEnabled() {
		return nil
	}
	svc, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		logger.Warn("cloudinary disabled", zap.Error(err))
		return nil
	}
	return svc
}

func NewInfra(cfg config.Config, logger *zap.Logger) (*Infra, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, rdb, err := connectStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	infra := &Infra{
		Config: cfg,
		Logger: logger,
		Store:  store,
		redis:  rdb,
		Images: newImages(cfg, logger),
		API: apiclient.New(apiclient.Options{
			BaseURL:        apiclient.ResolveBaseURL(cfg.Env, cfg.APIBaseURL),
			Timeout:        cfg.APITimeout,
			Tokens:         apiclient.SessionTokens,
			OnUnauthorized: apiclient.ClearSessionOnUnauthorized(logger),
			Logger:         logger,
		}),
	}

	if cfg.DBURL != "" {
		db, events, err := openOutbox(cfg, logger)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.db, infra.Events = db, events
	} else {
		logger.Warn("DB_URL not set, order events are not recorded")
	}

	return infra, nil
}

// BuildApp wires infrastructure, middleware and every module onto router.
// The returned Infra must be closed by the caller.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*Infra, error) {
	if router == nil {
		return nil, errors.New("router is required")
	}
	infra, err := NewInfra(cfg, logger)
	if err != nil {
		return nil, err
	}

	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
		infra.Logger.Warn("SESSION_SECRET not set, browser cookies reset on restart")
	}

	router.Use(
		middleware.RequestID(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.BrowserSession(infra.Store, secret, cfg.SecureCookies()),
	)

	registerModules(router, infra)
	return infra, nil
}
