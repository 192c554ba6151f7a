package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/cafe-api/internal/config"
	dbpkg "github.com/BruksfildServices01/cafe-api/internal/db"
	infraRepo "github.com/BruksfildServices01/cafe-api/internal/infra/repository"
	"github.com/BruksfildServices01/cafe-api/internal/logger"
	"github.com/BruksfildServices01/cafe-api/internal/routes"
	ucCafe "github.com/BruksfildServices01/cafe-api/internal/usecase/cafe"
)

func main() {

	cfg := config.Load()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	zap.ReplaceGlobals(zl)
	defer func() { _ = zl.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		zl.Fatal("failed to open store", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			zl.Error("failed to close store", zap.Error(err))
		}
	}()

	svc := ucCafe.NewService(infraRepo.NewCafeGormRepository(db), cfg.APIKey)
	r := routes.NewRouter(cfg, svc, zl)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
