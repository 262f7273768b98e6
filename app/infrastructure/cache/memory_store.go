package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryStore is an in-process Store used by tests and local development.
// Entry expiry is evaluated against an injectable clock so TTL behavior can
// be simulated without sleeping.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	nowFunc func() time.Time
}

// NewMemoryStore creates an empty in-memory store on the wall clock.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: map[string]memoryEntry{},
		nowFunc: time.Now,
	}
}

// SetNowFunc replaces the store's clock.
func (s *MemoryStore) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFunc = now
}

// expired must be called with the mutex held.
func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.nowFunc().Before(e.expiresAt)
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false, nil
	}
	if s.expired(e) {
		delete(s.entries, key)
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = s.nowFunc().Add(ttl)
	}
	s.entries[key] = e
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) FlushAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = map[string]memoryEntry{}
	return nil
}

func (s *MemoryStore) SetIfAbsent(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && !s.expired(e) {
		return false, nil
	}
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = s.nowFunc().Add(ttl)
	}
	s.entries[key] = e
	return true, nil
}

func (s *MemoryStore) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.expired(e) {
		created := memoryEntry{value: "1"}
		if ttl > 0 {
			created.expiresAt = s.nowFunc().Add(ttl)
		}
		s.entries[key] = created
		return 1, nil
	}

	count, err := strconv.ParseInt(e.value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("increment on non-integer value at %q", key)
	}
	count++
	e.value = strconv.FormatInt(count, 10)
	s.entries[key] = e
	return count, nil
}

func (s *MemoryStore) HealthCheck(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
