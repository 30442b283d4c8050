package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/customerr"
)

// recordSource is the authority for persistence and id assignment.
type recordSource interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	Create(ctx context.Context, draft expense.Draft) (expense.Record, error)
}

// Store keeps the session's expenses in insertion order.
// Records are never edited or removed.
type Store struct {
	source recordSource

	mu      sync.RWMutex
	records []expense.Record
	loaded  bool
}

func NewStore(source recordSource) *Store {
	return &Store{source: source}
}

// Load replaces the in-memory records with the full set of the source.
// On failure the store keeps its previous contents.
func (s *Store) Load(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "loadExpenses")
	defer span.Finish()

	start := time.Now()
	defer func() {
		observeOperation("load", time.Since(start), err != nil)
	}()

	records, err := s.source.GetAll(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to load expenses", zap.Error(err))
		return &customerr.FetchError{Err: err}
	}

	s.mu.Lock()
	s.records = append(make([]expense.Record, 0, len(records)), records...)
	s.loaded = true
	s.mu.Unlock()

	logger.Info("expenses loaded", zap.Int("count", len(records)))
	return nil
}

// Reload is Load that skips any cached copy of the records.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(WithFreshRead(ctx))
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Append adds rec to the end without sorting or deduplication.
func (s *Store) Append(rec expense.Record) {
	s.mu.Lock()
	s.records = append(s.records, rec)
	s.mu.Unlock()
}

// Create persists the draft through the source and appends the issued record.
// Nothing is appended when any step fails.
func (s *Store) Create(ctx context.Context, draft expense.Draft) (rec expense.Record, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "createExpense")
	defer span.Finish()
	span.SetTag("payee", draft.PayeeName)

	start := time.Now()
	defer func() {
		observeOperation("create", time.Since(start), err != nil)
	}()

	if err = draft.Validate(); err != nil {
		ext.Error.Set(span, true)
		return expense.Record{}, &customerr.CreateError{Err: &customerr.ValidationError{Err: err}}
	}

	rec, err = s.source.Create(ctx, draft)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to create expense", zap.Error(err), zap.String("payee", draft.PayeeName))
		return expense.Record{}, &customerr.CreateError{Err: err}
	}

	s.Append(rec)
	logger.Info("expense created",
		zap.String("id", rec.ID.String()),
		zap.String("payee", rec.PayeeName),
		zap.String("price", rec.Price.String()),
	)
	return rec, nil
}

// Records returns a copy of the current ordered sequence.
func (s *Store) Records() []expense.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]expense.Record, 0, len(s.records)), s.records...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
