package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"contract-hub.backend/internal/config"
	"contract-hub.backend/internal/infrastructure/jobs"
	"contract-hub.backend/internal/infrastructure/models"
	"contract-hub.backend/internal/infrastructure/repositories"
	"contract-hub.backend/internal/infrastructure/services"
	"contract-hub.backend/internal/interfaces/http/handlers"
	"contract-hub.backend/internal/interfaces/http/middleware"
	"contract-hub.backend/internal/usecases"
	"contract-hub.backend/pkg/jwt"
	"contract-hub.backend/pkg/logger"
	"contract-hub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }

	startStatsJob = func(job *jobs.RegistryStatsJob) { job.Start(context.Background()) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else if err := db.AutoMigrate(
		&models.Record{},
		&models.RegistryCounter{},
		&models.RegistryEvent{},
		&models.LedgerAccount{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	recordRepo := repositories.NewRecordRepository(db)
	eventRepo := repositories.NewRegistryEventRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Collaborator services
	identityClient := services.NewIdentityClient(cfg.Registry.IdentityServiceURL)
	groupClient := services.NewGroupClient(cfg.Registry.GroupServiceURL)
	feeCollector, err := services.NewLedgerFeeCollector(ledgerRepo, cfg.Registry.AdminAddress, cfg.Registry.FeeAmount)
	if err != nil {
		return fmt.Errorf("failed to initialize fee collector: %w", err)
	}

	// Usecases
	registryUsecase := usecases.NewRegistryUsecase(
		recordRepo, eventRepo, identityClient, groupClient, feeCollector, feeCollector, uow,
	)

	// Background jobs
	statsJob := jobs.NewRegistryStatsJob(recordRepo)
	go startStatsJob(statsJob)
	defer statsJob.Stop()

	// Handlers
	recordHandler := handlers.NewRecordHandler(registryUsecase)
	configHandler := handlers.NewRegistryConfigHandler(registryUsecase)
	adminHandler := handlers.NewAdminHandler(registryUsecase, ledgerRepo)

	callerAuth := middleware.CallerAuthMiddleware(cfg.Registry.AuthDrift)
	adminAuth := middleware.AdminAuthMiddleware(jwtService, cfg.Security.AdminAPIKeyHash)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		recordHandler: recordHandler,
		configHandler: configHandler,
		adminHandler:  adminHandler,
		callerAuth:    callerAuth,
		adminAuth:     adminAuth,
	})

	log.Printf("Contract Hub backend starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
