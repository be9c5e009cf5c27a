package usecase

import (
	"context"
	"errors"
	"io"
	"time"
)

// TextExtractor produces the newline-preserving plain text of an uploaded
// TB document. Implementations wrap failures in domain.ErrExtractionFailure.
type TextExtractor interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// SheetFetcher downloads the staff reference sheet for a month.
// Implementations wrap failures in domain.ErrSheetUnavailable.
type SheetFetcher interface {
	Fetch(ctx context.Context, month string) ([]byte, error)
}

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations for fetched reference sheets. Keys are
// months, so concurrent runs for different companies in the same month
// share one cached sheet.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// StaffDirectory resolves the staff member responsible for a company from
// the reference sheet. Lookup is a case-insensitive exact match on the
// company column; the first matching row wins.
type StaffDirectory interface {
	LookupStaff(sheet []byte, company string) (string, error)
}

// IDGenerator generates unique run IDs.
type IDGenerator interface {
	Generate() string
}
