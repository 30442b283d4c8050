package kafka

import (
	"encoding/json"

	"github.com/pkg/errors"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

// ExpenseCreated is published after a record was persisted and appended.
type ExpenseCreated struct {
	Record expense.Record `json:"record"`
}

func encodeExpenseCreated(rec expense.Record) ([]byte, error) {
	data, err := json.Marshal(ExpenseCreated{Record: rec})
	return data, errors.Wrap(err, "marshal expense created")
}

func decodeExpenseCreated(data []byte) (ExpenseCreated, error) {
	var ev ExpenseCreated
	if err := json.Unmarshal(data, &ev); err != nil {
		return ExpenseCreated{}, errors.Wrap(err, "unmarshal expense created")
	}
	return ev, nil
}
