package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/report"
	"max.ks1230/expense-splitter/internal/model/settlement"
)

const dateLayout = "02.01.2006"

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I split expenses between %s and %s 🤖\n\n" + usageMessage
	usageMessage          = "/expense <payee> <price> <what for> [dd.mm.yyyy] - add an expense\n" +
		"/list - all expenses\n" +
		"/summary [week|month|year] - who has to pay\n" +
		"/reload - fetch expenses again"
	loveToTalkMessage = "I would love to talk about it more!"
	okMessage         = "Gotcha!"

	incorrectUsageMessage    = "That is an incorrect command usage.\n/expense <payee> <price> <what for> [dd.mm.yyyy]"
	incorrectPriceMessage    = "The price should be a non-negative number"
	incorrectPayeeMessage    = "Who paid? It should be %s or %s"
	incorrectPeriodMessage   = "The period is incorrect. Should be week, month or year"
	notLoadedMessage         = "Expenses are not loaded. Try /reload"
	cannotLoadExpenseMessage = "Can't load expenses atm. Try later"
	cannotSaveExpenseMessage = "Can't save your expense atm. Try later"
	reloadedMessage          = "Loaded %d expenses"
)

const (
	startCommand   = "/start"
	expenseCommand = "/expense"
	listCommand    = "/list"
	summaryCommand = "/summary"
	reloadCommand  = "/reload"
)

const minExpenseArgs = 3

type expenseStore interface {
	Reload(ctx context.Context) error
	Loaded() bool
	Create(ctx context.Context, draft expense.Draft) (expense.Record, error)
	Records() []expense.Record
}

type eventPublisher interface {
	PublishExpenseCreated(ctx context.Context, rec expense.Record) error
}

type config interface {
	Pair() settlement.Pair
	CurrencySymbol() string
}

type handler func(ctx context.Context, arg string, chatID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	store       expenseStore
	publisher   eventPublisher
	pair        settlement.Pair
	symbol      string
	clock       func() time.Time
}

func newHandler(store expenseStore, publisher eventPublisher, config config) *HandlerService {
	res := &HandlerService{
		store:     store,
		publisher: publisher,
		pair:      config.Pair(),
		symbol:    config.CurrencySymbol(),
		clock:     time.Now,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, chatID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, chatID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[expenseCommand] = s.handleExpense
	m[listCommand] = s.handleList
	m[summaryCommand] = s.handleSummary
	m[reloadCommand] = s.handleReload

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return fmt.Sprintf(helloMessage, s.pair.First, s.pair.Second), nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, chatID int64) (string, error) {
	draft, reply := s.parseExpense(arg)
	if reply != "" {
		return reply, nil
	}
	if !s.store.Loaded() {
		return notLoadedMessage, nil
	}

	rec, err := s.store.Create(ctx, draft)
	if err != nil {
		return cannotSaveExpenseMessage, errors.Wrap(err, "handle expense")
	}

	if s.publisher != nil {
		if err = s.publisher.PublishExpenseCreated(ctx, rec); err != nil {
			logger.Error("failed to publish expense", zap.Error(err), zap.String("id", rec.ID.String()))
		}
	}

	summary := s.pair.Summarize(s.store.Records())
	logger.Info("expense added from chat", zap.Int64("chatID", chatID), zap.String("id", rec.ID.String()))
	return okMessage + "\n" + report.FormatSummary(summary, s.pair, s.symbol), nil
}

// parseExpense returns a user facing message when arg is not a valid expense.
func (s *HandlerService) parseExpense(arg string) (expense.Draft, string) {
	args := strings.Fields(arg)
	if len(args) < minExpenseArgs {
		return expense.Draft{}, incorrectUsageMessage
	}

	payee := args[0]
	if !s.pair.Contains(payee) {
		return expense.Draft{}, fmt.Sprintf(incorrectPayeeMessage, s.pair.First, s.pair.Second)
	}

	price, err := decimal.NewFromString(args[1])
	if err != nil || price.IsNegative() {
		return expense.Draft{}, incorrectPriceMessage
	}

	product := args[2:]
	date := expense.DateOf(s.clock())
	if len(product) > 1 {
		if parsed, err := time.Parse(dateLayout, product[len(product)-1]); err == nil {
			date = expense.DateOf(parsed)
			product = product[:len(product)-1]
		}
	}

	return expense.Draft{
		PayeeName: payee,
		Product:   strings.Join(product, " "),
		Price:     price,
		SetDate:   date,
	}, ""
}

func (s *HandlerService) handleList(_ context.Context, _ string, _ int64) (string, error) {
	if !s.store.Loaded() {
		return notLoadedMessage, nil
	}
	records := s.store.Records()
	return report.FormatTable(records, s.pair.Summarize(records), s.pair, s.symbol), nil
}

func (s *HandlerService) handleSummary(_ context.Context, arg string, _ int64) (string, error) {
	if !s.store.Loaded() {
		return notLoadedMessage, nil
	}

	from, err := settlement.PeriodStart(strings.TrimSpace(arg), s.clock())
	if err != nil {
		return incorrectPeriodMessage, nil
	}

	records := settlement.Since(s.store.Records(), from)
	return report.FormatSummary(s.pair.Summarize(records), s.pair, s.symbol), nil
}

func (s *HandlerService) handleReload(ctx context.Context, _ string, _ int64) (string, error) {
	if err := s.store.Reload(ctx); err != nil {
		return cannotLoadExpenseMessage, errors.Wrap(err, "handle reload")
	}
	return fmt.Sprintf(reloadedMessage, len(s.store.Records())), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}
