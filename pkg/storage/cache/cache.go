// Package cache decorates a storage.Storage with a Redis read-through cache
// for scan types. The whole ordered list is cached under a single key and
// dropped whenever a scan type is stored or deleted. Redis failures never fail
// a request: reads fall back to the wrapped storage and the failure is logged.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/storage"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// DefaultKey is the Redis key holding the cached scan types.
	DefaultKey = "sonoplan:scan_types"
	// DefaultTTL bounds how stale the cache can get when another instance writes.
	DefaultTTL = 10 * time.Minute
)

// Options configures the cache decorator.
type Options struct {
	Key string
	TTL time.Duration
}

// Storage is a storage.Storage whose ScanTypes reads are served from Redis.
type Storage struct {
	storage.Storage

	client redis.Cmdable
	key    string
	ttl    time.Duration
}

var _ storage.Storage = (*Storage)(nil)

// New wraps next with a scan type cache stored in client.
func New(next storage.Storage, client redis.Cmdable, options Options) *Storage {
	if options.Key == "" {
		options.Key = DefaultKey
	}
	if options.TTL <= 0 {
		options.TTL = DefaultTTL
	}

	return &Storage{
		Storage: next,
		client:  client,
		key:     options.Key,
		ttl:     options.TTL,
	}
}

// ScanTypes returns the cached scan types, loading and caching them on a miss.
func (s *Storage) ScanTypes(ctx context.Context) ([]domain.ScanType, error) {
	if cached, ok := s.load(ctx); ok {
		return cached, nil
	}

	scanTypes, err := s.Storage.ScanTypes(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	s.store(ctx, scanTypes)

	return scanTypes, nil
}

func (s *Storage) StoreScanType(ctx context.Context, scanType domain.ScanType) (*domain.ScanType, error) {
	stored, err := s.Storage.StoreScanType(ctx, scanType)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	s.Invalidate(ctx)

	return stored, nil
}

func (s *Storage) DeleteScanType(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error) {
	deleted, err := s.Storage.DeleteScanType(ctx, id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if deleted != nil {
		s.Invalidate(ctx)
	}

	return deleted, nil
}

// Begin starts a transaction whose scan type writes invalidate the cache on commit.
func (s *Storage) Begin(ctx context.Context) (storage.TxStorage, error) {
	tx, err := s.Storage.Begin(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &txStorage{TxStorage: tx, cache: s, ctx: ctx}, nil
}

// WithTx runs cb in a transaction of the wrapped storage. Scan type reads inside
// the transaction bypass the cache; writes invalidate it once cb returns.
func (s *Storage) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	var dirty bool
	err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		return cb(&allStorage{AllStorage: tx, dirty: &dirty})
	})
	if dirty {
		s.Invalidate(ctx)
	}

	return err //nolint: wrapcheck
}

// Invalidate drops the cached scan types.
func (s *Storage) Invalidate(ctx context.Context) {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		logger.Warn(ctx, "could not invalidate scan types cache", zap.Error(err), zap.String("key", s.key))
	}
}

func (s *Storage) load(ctx context.Context) ([]domain.ScanType, bool) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logger.Warn(ctx, "could not read scan types cache", zap.Error(err), zap.String("key", s.key))

		return nil, false
	}

	var scanTypes []domain.ScanType
	if err := json.Unmarshal(raw, &scanTypes); err != nil {
		logger.Warn(ctx, "could not decode scan types cache", zap.Error(err), zap.String("key", s.key))

		return nil, false
	}

	return scanTypes, true
}

func (s *Storage) store(ctx context.Context, scanTypes []domain.ScanType) {
	raw, err := json.Marshal(scanTypes)
	if err != nil {
		logger.Warn(ctx, "could not encode scan types cache", zap.Error(err))

		return
	}

	if err := s.client.Set(ctx, s.key, raw, s.ttl).Err(); err != nil {
		logger.Warn(ctx, "could not write scan types cache", zap.Error(err), zap.String("key", s.key))
	}
}

// allStorage records scan type writes made inside WithTx.
type allStorage struct {
	storage.AllStorage

	dirty *bool
}

func (a *allStorage) StoreScanType(ctx context.Context, scanType domain.ScanType) (*domain.ScanType, error) {
	*a.dirty = true

	return a.AllStorage.StoreScanType(ctx, scanType) //nolint: wrapcheck
}

func (a *allStorage) DeleteScanType(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error) {
	*a.dirty = true

	return a.AllStorage.DeleteScanType(ctx, id) //nolint: wrapcheck
}

// txStorage invalidates the cache after a commit that wrote scan types.
type txStorage struct {
	storage.TxStorage

	cache *Storage
	ctx   context.Context //nolint: containedctx
	dirty bool
}

func (t *txStorage) StoreScanType(ctx context.Context, scanType domain.ScanType) (*domain.ScanType, error) {
	t.dirty = true

	return t.TxStorage.StoreScanType(ctx, scanType) //nolint: wrapcheck
}

func (t *txStorage) DeleteScanType(ctx context.Context, id domain.ScanTypeID) (*domain.ScanType, error) {
	t.dirty = true

	return t.TxStorage.DeleteScanType(ctx, id) //nolint: wrapcheck
}

func (t *txStorage) Commit() error {
	if err := t.TxStorage.Commit(); err != nil {
		return err //nolint: wrapcheck
	}
	if t.dirty {
		t.cache.Invalidate(t.ctx)
	}

	return nil
}
