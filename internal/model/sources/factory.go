package sources

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/clients/cache"
	"max.ks1230/expense-splitter/internal/clients/itemsapi"
	"max.ks1230/expense-splitter/internal/config"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/storage"
)

// RecordSource is the external collaborator owning expense records.
type RecordSource interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	Create(ctx context.Context, draft expense.Draft) (expense.Record, error)
}

type appConfig interface {
	Source() *config.SourceConfig
	Postgres() *config.PostgresConfig
	Memcached() *config.MemcachedConfig
}

type Result struct {
	Source  RecordSource
	Cleanup func()
}

// New builds the configured record source, wrapped in the memcached
// decorator when cache hosts are set.
func New(cfg appConfig) (*Result, error) {
	res, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Memcached().Enabled() {
		mc, err := cache.NewMemcache(cfg.Memcached())
		if err != nil {
			res.Cleanup()
			return nil, errors.Wrap(err, "init memcached")
		}
		res.Source = cache.NewSource(mc, res.Source, cfg.Memcached().TTL())
	}
	return res, nil
}

func newSource(cfg appConfig) (*Result, error) {
	kind := cfg.Source().Kind()
	logger.Info("init record source", zap.String("kind", kind))

	switch kind {
	case config.SourceHTTP:
		return &Result{Source: itemsapi.New(cfg.Source()), Cleanup: func() {}}, nil
	case config.SourcePostgres:
		db, err := storage.NewPostgresStorage(cfg.Postgres())
		if err != nil {
			return nil, errors.Wrap(err, "init postgres")
		}
		return &Result{Source: db, Cleanup: db.Close}, nil
	case config.SourceMemory:
		return &Result{Source: storage.NewInMemStorage(), Cleanup: func() {}}, nil
	default:
		return nil, errors.Errorf("unsupported source kind %q", kind)
	}
}

// WithTimeout bounds every call to the source, the external collaborators
// have no deadline of their own.
func WithTimeout(source RecordSource, timeout time.Duration) RecordSource {
	return &timeoutSource{next: source, timeout: timeout}
}

type timeoutSource struct {
	next    RecordSource
	timeout time.Duration
}

func (s *timeoutSource) GetAll(ctx context.Context) ([]expense.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.GetAll(ctx)
}

func (s *timeoutSource) Create(ctx context.Context, draft expense.Draft) (expense.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.next.Create(ctx, draft)
}
