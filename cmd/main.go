package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-travel-planner/internal/handlers"

	"github.com/sbilibin2017/gw-travel-planner/internal/jwt"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
	"github.com/sbilibin2017/gw-travel-planner/internal/migrations"
	"github.com/sbilibin2017/gw-travel-planner/internal/repositories"
	"github.com/sbilibin2017/gw-travel-planner/internal/services"

	"github.com/sbilibin2017/gw-travel-planner/internal/middlewares"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-travel-planner/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const tokenIssuer = "gw-travel-planner"

var errMissingJWTSecret = errors.New("JWT_SECRET_KEY must be set")

// config holds every setting read from the environment.
type config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	RequestTimeout time.Duration
	RunMigrations  bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost            string
	RedisPort            int
	RedisDB              int
	RedisPassword        string
	RedisPoolSize        int
	RedisMinIdleConns    int
	DestinationsCacheExp time.Duration

	KafkaBrokers         []string
	KafkaUserEventsTopic string

	JWTSecretKey string
	JWTExp       time.Duration
	BcryptCost   int
}

// @title gw-travel-planner API
// @version 1.0.0
// @description Travel itinerary backend: accounts, trips and popular destinations
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			return 0, fmt.Errorf("%s: must be positive, got %d", key, v)
		}
		return time.Duration(v) * time.Second, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.RequestTimeout, err = getSeconds("APP_REQUEST_TIMEOUT_SECOND", "10"); err != nil {
		return
	}
	if cfg.RunMigrations, err = strconv.ParseBool(getEnv("APP_RUN_MIGRATIONS", "true")); err != nil {
		err = fmt.Errorf("APP_RUN_MIGRATIONS: %w", err)
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.DestinationsCacheExp, err = getSeconds("REDIS_DESTINATIONS_EXP_SECOND", "300"); err != nil {
		return
	}

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaUserEventsTopic = getEnv("KAFKA_USER_EVENTS_TOPIC", "user-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTSecretKey == "" {
		err = errMissingJWTSecret
		return
	}
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}
	if cfg.BcryptCost, err = getInt("BCRYPT_COST", strconv.Itoa(services.DefaultBcryptCost)); err != nil {
		return
	}
	if cfg.BcryptCost < services.DefaultBcryptCost || cfg.BcryptCost > bcrypt.MaxCost {
		err = fmt.Errorf("BCRYPT_COST: must be between %d and %d, got %d",
			services.DefaultBcryptCost, bcrypt.MaxCost, cfg.BcryptCost)
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.RunMigrations {
		if err := migrations.Up(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("Database migrations applied")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka producer, disabled without brokers
	var eventWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaUserEventsTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		}
		defer kw.Close()
		eventWriter = kw
		log.Infow("Kafka event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaUserEventsTopic)
	}

	// Initialize JWT service
	tokens, err := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return err
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	tripReadRepo := repositories.NewTripReadRepository(db)
	tripWriteRepo := repositories.NewTripWriteRepository(db, middlewares.GetTxFromContext)
	destinationReadRepo := repositories.NewDestinationReadRepository(db)
	destinationCacheRepo := repositories.NewDestinationCacheRepository(rdb, cfg.DestinationsCacheExp)
	tokenDenylistRepo := repositories.NewTokenDenylistRepository(rdb)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, tokenDenylistRepo, eventWriter, cfg.BcryptCost)
	tripService := services.NewTripService(tripReadRepo, tripWriteRepo, eventWriter, middlewares.AfterCommit)
	destinationService := services.NewDestinationService(destinationReadRepo, destinationCacheRepo)

	// Initialize handlers
	rt := routes{
		health:              handlers.NewHealthHandler(),
		notFound:            handlers.NewNotFoundHandler(),
		methodNotAllowed:    handlers.NewMethodNotAllowedHandler(),
		register:            handlers.NewRegisterHandler(authService),
		login:               handlers.NewLoginHandler(authService),
		logout:              handlers.NewLogoutHandler(authService, middlewares.GetClaimsFromContext),
		me:                  handlers.NewMeHandler(authService, middlewares.GetUserIDFromContext),
		listTrips:           handlers.NewListTripsHandler(tripService, middlewares.GetUserIDFromContext),
		getTrip:             handlers.NewGetTripHandler(tripService, middlewares.GetUserIDFromContext),
		createTrip:          handlers.NewCreateTripHandler(tripService, middlewares.GetUserIDFromContext),
		popularDestinations: handlers.NewPopularDestinationsHandler(destinationService),
		swagger: httpSwagger.Handler(
			httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
		),
	}

	r := newRouter(rt,
		middlewares.AuthMiddleware(bearerAuthenticator{JWT: tokens, AuthService: authService}),
		middlewares.TxMiddleware(db),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// bearerAuthenticator joins token extraction with the service-level verification.
type bearerAuthenticator struct {
	*jwt.JWT
	*services.AuthService
}

// routes groups the handlers mounted by newRouter.
type routes struct {
	health              http.HandlerFunc
	notFound            http.HandlerFunc
	methodNotAllowed    http.HandlerFunc
	register            http.HandlerFunc
	login               http.HandlerFunc
	logout              http.HandlerFunc
	me                  http.HandlerFunc
	listTrips           http.HandlerFunc
	getTrip             http.HandlerFunc
	createTrip          http.HandlerFunc
	popularDestinations http.HandlerFunc
	swagger             http.HandlerFunc
}

func newRouter(
	rt routes,
	authMiddleware func(http.Handler) http.Handler,
	txMiddleware func(http.Handler) http.Handler,
	requestTimeout time.Duration,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares.RecoverMiddleware)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(chimiddleware.Timeout(requestTimeout))

	r.NotFound(rt.notFound)
	r.MethodNotAllowed(rt.methodNotAllowed)

	if rt.swagger != nil {
		r.Get("/swagger/*", rt.swagger)
	}

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/health", rt.health)
		r.Post("/auth/register", rt.register)
		r.Post("/auth/login", rt.login)
		r.Get("/destinations/popular", rt.popularDestinations)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/auth/logout", rt.logout)
			r.Get("/auth/me", rt.me)
			r.Get("/trips", rt.listTrips)
			r.Get("/trips/{tripID}", rt.getTrip)
			r.With(txMiddleware).Post("/trips", rt.createTrip)
		})
	})

	return r
}
