package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/storekeep/inventory-service/config"
	"github.com/storekeep/inventory-service/internal/logger"
	"github.com/storekeep/inventory-service/internal/server"
	"github.com/storekeep/inventory-service/internal/store"

	catRepoPkg "github.com/storekeep/inventory-service/internal/category/repository"
	catUCPkg "github.com/storekeep/inventory-service/internal/category/usecase"

	prodRepoPkg "github.com/storekeep/inventory-service/internal/product/repository"
	prodUCPkg "github.com/storekeep/inventory-service/internal/product/usecase"

	supRepoPkg "github.com/storekeep/inventory-service/internal/supplier/repository"
	supUCPkg "github.com/storekeep/inventory-service/internal/supplier/usecase"

	salesRepoPkg "github.com/storekeep/inventory-service/internal/sales/repository"
	salesUCPkg "github.com/storekeep/inventory-service/internal/sales/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.Load()

	// 2. Initialize Logger
	appLogger, err := logger.New(cfg.Logger, cfg.Server.AppEnv)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Open Database, migrate and seed
	db, err := store.Open(cfg.SQLite, appLogger)
	if err != nil {
		appLogger.Fatal("could not open database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("opened sqlite database", zap.String("path", cfg.SQLite.Path))

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		appLogger.Fatal("could not migrate schema", zap.Error(err))
	}
	if err := db.Seed(ctx); err != nil {
		appLogger.Fatal("could not seed reference data", zap.Error(err))
	}

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewSQLiteRepository(db)
	prodRepo := prodRepoPkg.NewSQLiteRepository(db)
	supRepo := supRepoPkg.NewSQLiteRepository(db)
	salesRepo := salesRepoPkg.NewSQLiteRepository(db)

	// 5. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewItemUseCase(prodRepo, catRepo, appLogger)
	supUC := supUCPkg.NewSupplierUseCase(supRepo, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, appLogger)

	// 6. Start HTTP Server
	router := server.NewRouter(prodUC, catUC, supUC, salesUC, appLogger)
	srv := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		appLogger.Info("starting http server", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("shutdown failed", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
