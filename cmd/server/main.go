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
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/api"
	"max.ks1230/expense-splitter/internal/config"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/sources"
	"max.ks1230/expense-splitter/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Server init - start")

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}
	if conf.Source().Kind() == config.SourceHTTP {
		logger.Fatal("the server needs a postgres or memory source")
	}

	closer, err := tracing.Init(conf.Tracing(), "expense-server")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	src, err := sources.New(conf)
	if err != nil {
		logger.Fatal("failed to init record source", zap.Error(err))
	}
	defer src.Cleanup()

	if os.Getenv("LOG_ENV") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              conf.Server().ListenAddr(),
		Handler:           api.NewRouter(src.Source, conf.Server()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", zap.Error(err))
	}
	logger.Info("Server stopped")
}
