package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/logger"
)

const failurePrefix = "Sorry, something wrong happened...\n"

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, chatID int64) (string, error)
}

// Service answers chat messages about the shared expenses.
type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, store expenseStore, publisher eventPublisher, config config) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(store, publisher, config),
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	cmd, _ := parseCommand(msg.Text)
	label := commandLabel(cmd)

	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()
	span.SetTag("command", label)
	span.SetTag("chat", msg.ChatID)

	start := time.Now()
	err := s.reply(ctx, msg)
	observeResponse(label, time.Since(start), err != nil)

	if err != nil {
		ext.Error.Set(span, true)
		logger.Warn("message failed", zap.String("command", label), zap.Int64("chatID", msg.ChatID), zap.Error(err))
	}
	return err
}

// reply sends the handler's answer, prefixed when the command failed.
func (s *Service) reply(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.ChatID)
	if err != nil {
		_ = s.tgClient.SendMessage(failurePrefix+resp, msg.ChatID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.ChatID)
}
