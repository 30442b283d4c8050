package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-splitter/internal/entity/expense"
	"max.ks1230/expense-splitter/internal/logger"
	"max.ks1230/expense-splitter/internal/model/ledger"
)

const (
	generationKey = "expenses:gen"
	recordsPrefix = "expenses:all:"
)

type config interface {
	Hosts() []string
}

type recordSource interface {
	GetAll(ctx context.Context) ([]expense.Record, error)
	Create(ctx context.Context, draft expense.Draft) (expense.Record, error)
}

type memcacheClient interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Increment(key string, delta uint64) (uint64, error)
}

// Source caches the raw record list of another source in memcached.
// Derived figures are never cached.
//
// Entries are keyed by a generation counter that every Create bumps, so a
// list fetched before a concurrent create is stored under a generation
// nobody reads anymore. Entries expire after ttl.
type Source struct {
	client memcacheClient
	next   recordSource
	ttl    time.Duration
}

func NewMemcache(config config) (*memcache.Client, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return mc, mc.Ping()
}

func NewSource(client memcacheClient, next recordSource, ttl time.Duration) *Source {
	return &Source{client: client, next: next, ttl: ttl}
}

func (s *Source) GetAll(ctx context.Context) ([]expense.Record, error) {
	key := recordsPrefix + s.generation()

	if !ledger.FreshRead(ctx) {
		if records, ok := s.lookup(key); ok {
			return records, nil
		}
	}

	records, err := s.next.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.store(key, records)
	return records, nil
}

func (s *Source) Create(ctx context.Context, draft expense.Draft) (expense.Record, error) {
	rec, err := s.next.Create(ctx, draft)
	if err != nil {
		return expense.Record{}, err
	}
	s.invalidate()
	return rec, nil
}

func (s *Source) generation() string {
	item, err := s.client.Get(generationKey)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			logger.Error("failed to read cache generation", zap.Error(err))
		}
		return "0"
	}
	return string(item.Value)
}

func (s *Source) lookup(key string) ([]expense.Record, bool) {
	item, err := s.client.Get(key)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			logger.Error("failed to read cache", zap.Error(err))
		}
		return nil, false
	}

	var records []expense.Record
	if err = json.Unmarshal(item.Value, &records); err != nil {
		logger.Error("broken cache entry", zap.Error(err))
		return nil, false
	}
	logger.Info("expenses served from cache", zap.Int("count", len(records)))
	return records, true
}

func (s *Source) store(key string, records []expense.Record) {
	value, err := json.Marshal(records)
	if err != nil {
		logger.Error("failed to marshal expenses for cache", zap.Error(err))
		return
	}
	err = s.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: s.expiration(),
	})
	if err != nil {
		logger.Error("failed to cache expenses", zap.Error(err))
	}
}

// expiration never returns 0, which memcached reads as "no expiry".
func (s *Source) expiration() int32 {
	seconds := int32(s.ttl / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (s *Source) invalidate() {
	logger.Info("invalidate expenses cache")
	_, err := s.client.Increment(generationKey, 1)
	if errors.Is(err, memcache.ErrCacheMiss) {
		err = s.client.Add(&memcache.Item{Key: generationKey, Value: []byte("1")})
		if errors.Is(err, memcache.ErrNotStored) {
			_, err = s.client.Increment(generationKey, 1)
		}
	}
	if err != nil {
		logger.Error("failed to invalidate cache", zap.Error(err))
	}
}
