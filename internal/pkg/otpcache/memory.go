package otpcache

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

type entry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

// MemoryStore is a process-local TTL map. Codes do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a store reading time from now
func NewMemoryStore(ttl time.Duration, now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     now,
	}
}

// Put replaces any pending code for the role and phone
func (s *MemoryStore) Put(_ context.Context, role models.Role, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key(role, phone)] = &entry{code: code, expiresAt: s.now().Add(s.ttl)}
	return nil
}

// Consume checks code against the pending one
func (s *MemoryStore) Consume(_ context.Context, role models.Role, phone, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(role, phone)
	e, ok := s.entries[k]
	if !ok {
		return false, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, k)
		return false, nil
	}
	if !codesEqual(e.code, code) {
		e.attempts++
		if e.attempts >= MaxAttempts {
			delete(s.entries, k)
		}
		return false, nil
	}

	delete(s.entries, k)
	return true, nil
}

// Sweep drops expired entries and returns how many were removed
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len is the number of pending codes, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartSweeper sweeps every interval until ctx is cancelled
func (s *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					logger.Debug("Swept expired OTP codes", logger.Int("removed", n))
				}
			}
		}
	}()
}
