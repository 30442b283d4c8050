package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/clients/kafka"
	"max.ks1230/expense-splitter/internal/clients/tg"
	"max.ks1230/expense-splitter/internal/config"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/ledger"
	"max.ks1230/expense-splitter/internal/model/notify"
	"max.ks1230/expense-splitter/internal/model/sources"
	"max.ks1230/expense-splitter/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Notifier init - start")

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}
	if !conf.Kafka().Enabled() {
		logger.Fatal("kafka brokers and expenses topic are required")
	}

	closer, err := tracing.Init(conf.Tracing(), "expense-notifier")
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer closer.Close()

	src, err := sources.New(conf)
	if err != nil {
		logger.Fatal("failed to init record source", zap.Error(err))
	}
	defer src.Cleanup()
	source := sources.WithTimeout(src.Source, conf.Source().RequestTimeout())

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	notifier := notify.New(
		func() *ledger.Store { return ledger.NewStore(source) },
		client,
		conf.Telegram().ChatID(),
		conf.App(),
	)

	consumer, err := kafka.NewConsumer(conf.Kafka(), notifier)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Notifier init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Error("failed to consume", zap.Error(err))
	}
}
