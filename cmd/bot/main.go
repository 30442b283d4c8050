package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/clients/kafka"
	"max.ks1230/expense-splitter/internal/clients/tg"
	"max.ks1230/expense-splitter/internal/config"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/ledger"
	"max.ks1230/expense-splitter/internal/model/messages"
	"max.ks1230/expense-splitter/internal/model/sources"
	"max.ks1230/expense-splitter/internal/tracing"
)

const metricsAddr = ":9091"

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing(), "expense-bot")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	src, err := sources.New(conf)
	if err != nil {
		logger.Fatal("failed to init record source", zap.Error(err))
	}
	defer src.Cleanup()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := ledger.NewStore(sources.WithTimeout(src.Source, conf.Source().RequestTimeout()))
	if err = store.Load(ctx); err != nil {
		logger.Error("initial load failed, waiting for /reload", zap.Error(err))
	}

	var msgService *messages.Service
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		msgService = messages.NewService(client, store, producer, conf.App())
	} else {
		msgService = messages.NewService(client, store, nil, conf.App())
	}

	go serveMetrics()

	logger.Info("Bot init - end")
	client.ListenUpdates(ctx, msgService)
}

func serveMetrics() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(metricsAddr, mux); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}
