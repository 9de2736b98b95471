package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/courtdata/judicial-sync/internal/bootstrap"
	"github.com/courtdata/judicial-sync/internal/config"
	"github.com/courtdata/judicial-sync/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	dsn := cfg.Database.DSN()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		zlog.Fatal("connect database", zap.Error(err))
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		zlog.Fatal("create pgx pool", zap.Error(err))
	}
	defer pool.Close()

	server, err := bootstrap.NewHTTPServer(db, pool, cfg, zlog)
	if err != nil {
		zlog.Fatal("wire server", zap.Error(err))
	}

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Fatal("graceful shutdown failed", zap.Error(err))
	}
}
