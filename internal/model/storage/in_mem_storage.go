package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"max.ks1230/expense-splitter/internal/entity/expense"
)

// InMemStorage is a record source living in process memory, it issues uuid ids.
type InMemStorage struct {
	mu      sync.Mutex
	records []expense.Record
}

func NewInMemStorage(seed ...expense.Record) *InMemStorage {
	return &InMemStorage{records: append([]expense.Record(nil), seed...)}
}

func (s *InMemStorage) GetAll(_ context.Context) ([]expense.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]expense.Record, 0, len(s.records)), s.records...), nil
}

func (s *InMemStorage) Create(_ context.Context, draft expense.Draft) (expense.Record, error) {
	rec := draft.WithID(expense.ID(uuid.NewString()))

	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()

	return rec, nil
}
