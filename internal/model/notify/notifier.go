package notify

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/clients/kafka"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/ledger"
	"max.ks1230/expense-splitter/internal/model/report"
	"max.ks1230/expense-splitter/internal/model/settlement"
)

const newExpenseTemplate = "New expense: %s paid %s%s for %s\n\n"

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type config interface {
	Pair() settlement.Pair
	CurrencySymbol() string
}

// Notifier posts the refreshed settlement to a chat whenever an expense is created.
type Notifier struct {
	newStore func() *ledger.Store
	sender   messageSender
	chatID   int64
	pair     settlement.Pair
	symbol   string
}

func New(newStore func() *ledger.Store, sender messageSender, chatID int64, config config) *Notifier {
	return &Notifier{
		newStore: newStore,
		sender:   sender,
		chatID:   chatID,
		pair:     config.Pair(),
		symbol:   config.CurrencySymbol(),
	}
}

func (n *Notifier) HandleExpenseCreated(ctx context.Context, ev kafka.ExpenseCreated) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "notifyExpenseCreated")
	defer span.Finish()

	store := n.newStore()
	if err := store.Reload(ctx); err != nil {
		return errors.Wrap(err, "notify")
	}

	rec := ev.Record
	text := fmt.Sprintf(newExpenseTemplate, rec.PayeeName, n.symbol, rec.Price, rec.Product) +
		report.FormatSummary(n.pair.Summarize(store.Records()), n.pair, n.symbol)

	if err := n.sender.SendMessage(text, n.chatID); err != nil {
		return errors.Wrap(err, "notify")
	}
	logger.Info("settlement sent", zap.Int64("chatID", n.chatID), zap.String("id", rec.ID.String()))
	return nil
}
