package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/logger"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

type expenseCreatedHandler interface {
	HandleExpenseCreated(ctx context.Context, ev ExpenseCreated) error
}

type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	handler       expenseCreatedHandler
}

func NewConsumer(cfg consumerConfig, handler expenseCreatedHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.ExpensesTopic(),
		handler:       handler,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() {
	if err := c.consumerGroup.Close(); err != nil {
		logger.Error("failed to close consumer group", zap.Error(err))
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		c.processMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (c *Consumer) processMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	ev, err := decodeExpenseCreated(message.Value)
	if err != nil {
		logger.Error("cannot unmarshal kafka message", zap.Error(err))
		return
	}
	logger.Info(
		"received expense created",
		zap.ByteString("key", message.Key),
		zap.String("id", ev.Record.ID.String()),
		zap.String("payee", ev.Record.PayeeName),
	)
	if err = c.handler.HandleExpenseCreated(ctx, ev); err != nil {
		logger.Error("failed to handle expense created", zap.Error(err))
	}
}
