package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/grinval/gs-login-core/internal/events"
	"github.com/grinval/gs-login-core/internal/facades"
	"github.com/grinval/gs-login-core/internal/handlers"
	"github.com/grinval/gs-login-core/internal/hash"
	"github.com/grinval/gs-login-core/internal/jwt"
	"github.com/grinval/gs-login-core/internal/logger"
	"github.com/grinval/gs-login-core/internal/middlewares"
	"github.com/grinval/gs-login-core/internal/repositories"
	"github.com/grinval/gs-login-core/internal/services"

	_ "github.com/grinval/gs-login-core/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gs-login-core API
// @version 1.0.0
// @description Account identity repository and live game-server registry
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		statsDSN,
		redisAddr, redisDB, redisPassword, statsCacheTTL,
		kafkaBrokers,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgDSN, pgMaxOpenConns, pgMaxIdleConns,
		statsDSN,
		redisAddr, redisDB, redisPassword, statsCacheTTL,
		kafkaBrokers,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	statsDSN string,
	redisAddr string, redisDB int, redisPassword string, statsCacheTTL time.Duration,
	kafkaBrokers string,
	jwtSecretKey string, jwtExp time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Main PostgreSQL config (accounts + server registry)
	pgDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "logincore"),
	)
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// External stats PostgreSQL config (read-only identity source)
	statsDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("STATS_POSTGRES_USER", "stats_reader"),
		getEnv("STATS_POSTGRES_PASSWORD", "password"),
		getEnv("STATS_POSTGRES_HOST", "localhost"),
		getEnv("STATS_POSTGRES_PORT", "5432"),
		getEnv("STATS_POSTGRES_DB", "stats"),
	)

	// Redis config (stats identity cache)
	redisAddr = fmt.Sprintf("%s:%s",
		getEnv("REDIS_HOST", "localhost"),
		getEnv("REDIS_PORT", "6379"),
	)
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	var ttlSecond int
	if ttlSecond, err = strconv.Atoi(getEnv("STATS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	statsCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config; empty broker list disables event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")

	// JWT config (admin routes)
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	jwtExp = time.Duration(jwtExpSecond) * time.Second

	return
}

// run initializes the logger, databases, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgDSN string, pgMaxOpenConns, pgMaxIdleConns int,
	statsDSN string,
	redisAddr string, redisDB int, redisPassword string, statsCacheTTL time.Duration,
	kafkaBrokers string,
	jwtSecret string, jwtExp time.Duration,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to main PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", pgDSN)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Connect to the external stats PostgreSQL (read-only). The stats
	// source being down must not prevent startup: identity probes fall
	// back to fresh allocation anyway.
	statsDB, err := sqlx.ConnectContext(ctx, "pgx", statsDSN)
	if err != nil {
		logger.Log.Warnw("stats database unreachable, identity reuse disabled", "error", err)
	} else {
		defer statsDB.Close()
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("redis unreachable, stats identity cache disabled", "error", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// Initialize Kafka event publisher
	publisher := events.NewPublisher(kafkaBrokers)
	defer publisher.Close()

	// Initialize JWT for admin routes
	tokener := jwt.New(jwtSecret, jwtExp)

	// Initialize repositories
	accountReadRepo := repositories.NewAccountReadRepository(db)
	accountWriteRepo := repositories.NewAccountWriteRepository(db, middlewares.GetTxFromContext)
	serverRepo := repositories.NewGameServerRepository(db)
	statsRepo := repositories.NewStatsReadRepository(statsDB)

	// Initialize facades and services
	prober := facades.NewStatsIdentityFacade(statsRepo, rdb, statsCacheTTL)
	accountService := services.NewAccountService(accountReadRepo, accountWriteRepo, prober, hash.New(), publisher)
	registryService := services.NewRegistryService(serverRepo, publisher)

	// Seed the shared server map from rows marked online.
	var onlineServers sync.Map
	if err := registryService.LoadOnlineServers(ctx, &onlineServers); err != nil {
		logger.Log.Warnw("failed to seed online server map", "error", err)
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/accounts/count", handlers.NewCountHandler(accountService))
		r.Get("/accounts/{username}", handlers.NewLookupHandler(accountService))
		r.Post("/accounts/lookup", handlers.NewCredentialLookupHandler(accountService))

		// Account mutations run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/accounts", handlers.NewRegisterHandler(accountService))
			r.Put("/accounts/{username}/locale", handlers.NewLocaleHandler(accountService))
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))
			r.Use(middlewares.TxMiddleware(db))
			r.Put("/accounts/{username}/player-id", handlers.NewRelinkHandler(accountService))
			r.Put("/accounts/id/{playerID}", handlers.NewUpdateHandler(accountService))
			r.Delete("/accounts/{username}", handlers.NewDeleteByUsernameHandler(accountService))
			r.Delete("/accounts/id/{playerID}", handlers.NewDeleteByPlayerIDHandler(accountService))
		})

		// Server registry routes
		r.Post("/servers/heartbeat", handlers.NewHeartbeatHandler(registryService))
		r.Post("/servers/offline", handlers.NewOfflineHandler(registryService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
