package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver for database/sql (migrations)
	"go.uber.org/zap"

	"github.com/Patoch87/DunsHierarchyV2/pkg/auth"
	"github.com/Patoch87/DunsHierarchyV2/pkg/catalog"
	"github.com/Patoch87/DunsHierarchyV2/pkg/config"
	"github.com/Patoch87/DunsHierarchyV2/pkg/database"
	"github.com/Patoch87/DunsHierarchyV2/pkg/handlers"
	"github.com/Patoch87/DunsHierarchyV2/pkg/middleware"
	"github.com/Patoch87/DunsHierarchyV2/pkg/models"
	"github.com/Patoch87/DunsHierarchyV2/pkg/repositories"
	"github.com/Patoch87/DunsHierarchyV2/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("bind_addr", cfg.BindAddr),
		zap.String("port", cfg.Port),
		zap.String("database", cfg.Database.Database),
		zap.String("redis", cfg.Redis.Addr()),
		zap.Strings("cors_origins", cfg.CORSOrigins))

	ctx := context.Background()

	// Migrations run over database/sql; the service itself uses pgxpool.
	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	_ = migrationDB.Close()

	db, err := database.NewConnection(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	cacheRepo := repositories.NewCompanyCacheRepository(redisClient)

	if err := seedAdminUser(ctx, cfg, userRepo, logger); err != nil {
		logger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	tokens := auth.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.Issuer,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
	)
	authService := auth.NewAuthService(userRepo, tokens, logger)
	authMiddleware := auth.NewMiddleware(authService, logger)

	cat := catalog.NewFixtureCatalog()
	searchService := services.NewSearchService(cat, cacheRepo, logger)
	hierarchyService := services.NewHierarchyService(cat, logger)

	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewSearchHandler(searchService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewHierarchyHandler(hierarchyService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewCacheHandler(cacheRepo, logger).RegisterRoutes(mux, authMiddleware)

	handler := middleware.CORS(cfg.CORSOrigins)(middleware.RequestLogger(logger)(mux))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting partner search API",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a production logger, or a development logger for local runs.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// seedAdminUser provisions the configured admin account. A deployment that
// manages users externally leaves ADMIN_PASSWORD unset and this is a no-op.
func seedAdminUser(ctx context.Context, cfg *config.Config, users repositories.UserRepository, logger *zap.Logger) error {
	if cfg.Auth.AdminPassword == "" {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Auth.AdminPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:       cfg.Auth.AdminUsername,
		Email:          cfg.Auth.AdminEmail,
		FullName:       cfg.Auth.AdminFullName,
		HashedPassword: hashed,
	}
	if err := users.Upsert(ctx, user); err != nil {
		return err
	}

	logger.Info("Seeded admin user", zap.String("username", user.Username))
	return nil
}
