package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// SheetSource serves reference sheets through a month-keyed cache. A sheet
// is fetched at most once per month per cache lifetime; there is no
// invalidation logic beyond the explicit hook, since the set of months is
// bounded and sheets for a closed month do not change.
type SheetSource struct {
	fetcher SheetFetcher
	cache   Cache
	ttl     time.Duration
	logger  zerolog.Logger
}

// NewSheetSource creates a new SheetSource.
func NewSheetSource(fetcher SheetFetcher, cache Cache, ttl time.Duration, logger zerolog.Logger) *SheetSource {
	return &SheetSource{
		fetcher: fetcher,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
	}
}

// Get returns the reference sheet for a month, fetching and caching it on
// a miss. Cache failures degrade to a fetch, they never fail the run.
func (s *SheetSource) Get(ctx context.Context, month string) ([]byte, error) {
	data, err := s.cache.Get(ctx, month)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("month", month).Msg("sheet cache read failed")
	}

	data, err = s.fetcher.Fetch(ctx, month)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, month, data, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("month", month).Msg("sheet cache write failed")
	}

	return data, nil
}

// Invalidate drops the cached sheet for a month.
func (s *SheetSource) Invalidate(ctx context.Context, month string) error {
	return s.cache.Delete(ctx, month)
}
