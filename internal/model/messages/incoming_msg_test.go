package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/model/ledger"
	ledgermock "max.ks1230/expense-splitter/internal/model/ledger/mock"
	"max.ks1230/expense-splitter/internal/model/messages/mock"
	"max.ks1230/expense-splitter/internal/model/settlement"
	"max.ks1230/expense-splitter/internal/model/storage"
)

type testConfig struct{}

func (testConfig) Pair() settlement.Pair {
	return settlement.DefaultPair
}

func (testConfig) CurrencySymbol() string {
	return "₹"
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect("Hello! I split expenses between Ajay and Tom 🤖\n\n"+usageMessage, int64(123)).
		Return(nil)

	model := NewService(sender, store, nil, testConfig{})
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		ChatID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	store := ledger.NewStore(storage.NewInMemStorage())

	sender.SendMessageMock.
		Expect("I don't understand you :(", int64(123)).
		Return(nil)

	model := NewService(sender, store, nil, testConfig{})
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		ChatID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnFailedCreate_ShouldApologizeAndKeepStore(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	source := ledgermock.NewRecordSourceMock(m)

	source.GetAllMock.Return([]expense.Record{}, nil)
	source.CreateMock.Return(expense.Record{}, errors.New("backend unavailable"))
	sender.SendMessageMock.
		Expect("Sorry, something wrong happened...\n"+cannotSaveExpenseMessage, int64(7)).
		Return(nil)

	store := ledger.NewStore(source)
	require.NoError(t, store.Load(ctx))

	model := NewService(sender, store, nil, testConfig{})
	err := model.HandleIncomingMessage(ctx, Message{
		Text:   "/expense Ajay 10 Taxi",
		ChatID: 7,
	})

	assert.Error(t, err)
	assert.Zero(t, store.Len())
}
