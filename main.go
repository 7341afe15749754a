package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wiliafri0-dotcom/sayursegar02/common/logger"
	commonmw "github.com/wiliafri0-dotcom/sayursegar02/common/middleware"
	"github.com/wiliafri0-dotcom/sayursegar02/config"
	"github.com/wiliafri0-dotcom/sayursegar02/controllers"
	"github.com/wiliafri0-dotcom/sayursegar02/currency"
	"github.com/wiliafri0-dotcom/sayursegar02/database"
	"github.com/wiliafri0-dotcom/sayursegar02/middleware"
	awspkg "github.com/wiliafri0-dotcom/sayursegar02/pkg/aws"
	"github.com/wiliafri0-dotcom/sayursegar02/repository"
	"github.com/wiliafri0-dotcom/sayursegar02/routes"
	"github.com/wiliafri0-dotcom/sayursegar02/services"
)

const serviceName = "sayursegar"

func main() {
	log := logger.MustNew(os.Getenv("APP_ENV"))
	defer log.Sync()

	ctx := context.Background()

	// --- AWS setup (non-fatal until a component needs it) ---
	awsCfg, awsErr := awspkg.LoadAWSConfig(ctx)
	if awsErr != nil {
		log.Warn("AWS config unavailable", zap.Error(awsErr))
	}

	var secrets config.SecretGetter
	if config.SecretsEnabled() {
		if awsErr != nil {
			log.Fatal("AWS_USE_SECRETS set but AWS config failed", zap.Error(awsErr))
		}
		secrets = awspkg.NewSecretsClient(awsCfg)
	}

	cfg, err := config.LoadWithSecrets(ctx, secrets)
	if err != nil {
		log.Fatal("Config load failed", zap.Error(err))
	}
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database ---
	db, err := database.Connect(cfg.PostgresDSN(), log)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	// --- Session store ---
	var store repository.SessionStore
	var closeStore func() error
	switch cfg.SessionStore {
	case config.StoreMemory:
		log.Warn("Using in-memory session store; sessions are lost on restart")
		store = repository.NewMemorySessionStore()
	default:
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL, log)
		if err != nil {
			log.Fatal("Redis connection failed", zap.Error(err))
		}
		store = repository.NewRedisSessionStore(redisClient, cfg.SessionTTL)
		closeStore = redisClient.Close
	}

	// --- Order channel ---
	channel, closeChannel, err := newChannel(cfg, awsCfg, awsErr)
	if err != nil {
		log.Fatal("Order channel setup failed", zap.Error(err))
	}
	log.Info("Order channel configured", zap.String("channel", channel.Name()))

	var metrics *awspkg.MetricsClient
	if awsErr == nil {
		metrics = awspkg.NewMetricsClient(awsCfg)
	}

	// --- Dependency injection ---
	formatter := currency.NewFormatter(cfg.CurrencyLocale, cfg.CurrencySymbol)
	productRepo := repository.NewGormProductRepository(db)
	adminRepo := repository.NewGormAdminRepository(db)

	tokens := services.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessionService := services.NewSessionService(store, services.NewCredentialVerifier(adminRepo, cfg.AdminPasswordHashed), log)
	catalogService := services.NewCatalogService(productRepo, log)
	cartService := services.NewCartService(store, catalogService, log)
	checkoutService := services.NewCheckoutService(cartService, services.NewOrderComposer(formatter), channel, metrics, log)
	adminCatalogService := services.NewAdminCatalogService(productRepo, log)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(commonmw.RequestLogger(log))
	r.Use(commonmw.MetricsMiddleware(metrics, serviceName))
	r.Use(commonmw.Timeout(30 * time.Second))
	r.Use(commonmw.SecurityHeaders())
	r.Use(commonmw.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": serviceName})
	})

	routes.RegisterRoutes(r, routes.Controllers{
		Session:  controllers.NewSessionController(sessionService),
		Catalog:  controllers.NewCatalogController(catalogService, formatter),
		Cart:     controllers.NewCartController(cartService, formatter),
		Checkout: controllers.NewCheckoutController(checkoutService, formatter),
		Products: controllers.NewAdminProductController(adminCatalogService, formatter),
	}, routes.Options{
		Session: middleware.SessionMiddleware(tokens, sessionService, middleware.CookieOptions{
			TTL:    cfg.SessionTTL,
			Secure: cfg.CookieSecure,
		}),
		AdminLoginPerMinute: cfg.AdminRateLimit,
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Info("Storefront started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	if closeChannel != nil {
		if err := closeChannel(); err != nil {
			log.Error("Order channel close error", zap.Error(err))
		}
	}
	if closeStore != nil {
		if err := closeStore(); err != nil {
			log.Error("Session store close error", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		log.Error("Database close error", zap.Error(err))
	}

	log.Info("Storefront stopped gracefully")
}
