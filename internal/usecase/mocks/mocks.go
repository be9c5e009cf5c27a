package mocks

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/iho/tbrecon/internal/usecase"
)

// MockTextExtractor is a mock implementation of TextExtractor.
type MockTextExtractor struct {
	ExtractTextFunc func(ctx context.Context, r io.Reader) (string, error)
}

func NewMockTextExtractor() *MockTextExtractor {
	return &MockTextExtractor{}
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, r io.Reader) (string, error) {
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// MockSheetFetcher is a mock implementation of SheetFetcher.
type MockSheetFetcher struct {
	FetchFunc func(ctx context.Context, month string) ([]byte, error)

	mu      sync.Mutex
	fetches int
}

func NewMockSheetFetcher() *MockSheetFetcher {
	return &MockSheetFetcher{}
}

func (m *MockSheetFetcher) Fetch(ctx context.Context, month string) ([]byte, error) {
	m.mu.Lock()
	m.fetches++
	m.mu.Unlock()
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, month)
	}
	return []byte{}, nil
}

// Fetches reports how many times Fetch was called.
func (m *MockSheetFetcher) Fetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		values: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return nil, usecase.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockStaffDirectory is a mock implementation of StaffDirectory.
type MockStaffDirectory struct {
	LookupStaffFunc func(sheet []byte, company string) (string, error)
}

func NewMockStaffDirectory() *MockStaffDirectory {
	return &MockStaffDirectory{}
}

func (m *MockStaffDirectory) LookupStaff(sheet []byte, company string) (string, error) {
	if m.LookupStaffFunc != nil {
		return m.LookupStaffFunc(sheet, company)
	}
	return "tip", nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "test-run-id"
}
