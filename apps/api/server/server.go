package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/asatex/kyuyokeisan-api/apps/api/handlers"
	awsclient "github.com/asatex/kyuyokeisan-api/libs/go/client/aws"
	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/db"
	"github.com/asatex/kyuyokeisan-api/libs/go/helpers"
	"github.com/asatex/kyuyokeisan-api/libs/go/interfaces"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/asatex/kyuyokeisan-api/libs/go/middleware"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"

	"github.com/cenkalti/backoff/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	socialInsuranceHandler *handlers.SocialInsuranceHandler
	healthHandler          *handlers.HealthHandler

	// Database
	dbPool *pgxpool.Pool

	rateLimiter   *middleware.RateLimiter
	stopLimiter   context.CancelFunc
	serverConfig  *Config
	bracketSource interfaces.BracketSource
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	serverConfig = cfg

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(cfg.Stage)
	logger.Info("Initializing handlers for stage",
		zap.String("stage", cfg.Stage),
		zap.String("bracket_source", cfg.BracketSource))

	ctx := context.Background()

	bracketSource, err = newBracketSource(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize premium bracket source", zap.Error(err))
	}

	handlerFactory := handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		Source:     bracketSource,
		SourceName: cfg.BracketSource,
		Stage:      cfg.Stage,
	})
	socialInsuranceHandler = handlerFactory.NewSocialInsuranceHandler()
	healthHandler = handlerFactory.NewHealthHandler()

	rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	var limiterCtx context.Context
	limiterCtx, stopLimiter = context.WithCancel(context.Background())
	go rateLimiter.Run(limiterCtx)
}

func InitializeRoutes(router *gin.Engine) {
	registerRoutes(router, serverConfig, rateLimiter, socialInsuranceHandler, healthHandler)
}

// Shutdown releases the resources acquired by InitializeHandlers
func Shutdown() {
	if stopLimiter != nil {
		stopLimiter()
	}
	if dbPool != nil {
		dbPool.Close()
		logger.Info("Database pool closed")
	}
}

// Port returns the configured listen port
func Port() string {
	if serverConfig == nil {
		return "8000"
	}
	return serverConfig.Port
}

func registerRoutes(
	router *gin.Engine,
	cfg *Config,
	limiter *middleware.RateLimiter,
	siHandler *handlers.SocialInsuranceHandler,
	hHandler *handlers.HealthHandler,
) {
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.ForComponent(logger.ComponentServer).Error("Invalid trusted proxies, trusting none",
			zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(configureCORS(cfg.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(limiter.Middleware())

	router.Use(middleware.EnhancedLoggingMiddleware(cfg.IsDevelopment()))
	if !cfg.IsDevelopment() {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", hHandler.Health)
	router.GET("/health/ready", hHandler.Ready)

	queryValidation := middleware.ValidateQueryParams(middleware.SocialInsuranceQueryValidation)
	router.GET("/socialInsuranceQuery", queryValidation, siHandler.SocialInsuranceQuery)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/socialInsuranceQuery", queryValidation, siHandler.SocialInsuranceQuery)
	}
}

func newBracketSource(ctx context.Context, cfg *Config) (interfaces.BracketSource, error) {
	if cfg.BracketSource == constants.BracketSourceFile {
		table, err := services.LoadBracketTable(cfg.BracketTablePath)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded premium bracket table", zap.String("table", table.String()))
		return table, nil
	}

	dsn, err := resolveDSN(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pool, err := connectDatabase(ctx, dsn, cfg)
	if err != nil {
		return nil, err
	}
	dbPool = pool

	return services.NewBracketRepository(db.New(pool)), nil
}

func resolveDSN(ctx context.Context, cfg *Config) (string, error) {
	if !helpers.IsDeployedStage(cfg.Stage) {
		logger.Info("Running in local stage, using DATABASE_URL")
		return cfg.DatabaseURL, nil
	}

	logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", cfg.Stage))
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to initialize AWS Secrets Manager client")
	}

	creds, err := secretsClient.GetDatabaseCredentials(ctx, "RDS_SECRET_ARN")
	if err != nil {
		return "", errors.Wrap(err, "failed to retrieve RDS credentials")
	}
	return creds.DSN(cfg.DBHost, cfg.DBName, cfg.DBSSLMode), nil
}

func connectDatabase(ctx context.Context, dsn string, cfg *Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse database DSN")
	}

	poolConfig.MaxConns = cfg.DBMaxConns
	poolConfig.MinConns = cfg.DBMinConns
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	dbLog := logger.ForComponent(logger.ComponentServer)
	err = backoff.RetryNotify(func() error {
		return pool.Ping(ctx)
	}, policy, func(err error, wait time.Duration) {
		dbLog.Warn("Database ping failed, retrying", zap.Error(err), zap.Duration("wait", wait))
	})
	if err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "database unreachable")
	}

	dbLog.Info("Connected to database",
		zap.String("host", poolConfig.ConnConfig.Host),
		zap.String("database", poolConfig.ConnConfig.Database),
		zap.Int32("max_conns", poolConfig.MaxConns))
	return pool, nil
}

func configureCORS(cfg CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = cfg.AllowedMethods
	corsConfig.AllowHeaders = cfg.AllowedHeaders
	corsConfig.ExposeHeaders = cfg.ExposedHeaders
	corsConfig.AllowCredentials = cfg.AllowCredentials

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}
