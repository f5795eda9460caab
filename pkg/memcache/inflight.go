// pkg/memcache/inflight.go
package mem

import (
	"sync"
	"time"
)

// InFlightStore tracks which clients have a planning request running.
type InFlightStore interface {
	// Acquire registers requestID for clientKey. It returns false while an
	// unexpired request for the same client is still registered.
	Acquire(clientKey string, requestID string, ttl time.Duration) bool

	// Release removes the entry, but only if it still belongs to requestID.
	Release(clientKey string, requestID string)

	Peek(clientKey string) (string, bool)
}

type entry struct {
	requestID string
	expiresAt time.Time
}

type InFlight struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewInFlight() *InFlight {
	return &InFlight{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *InFlight) Acquire(clientKey string, requestID string, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if e, ok := s.data[clientKey]; ok && now.Before(e.expiresAt) {
		return false
	}
	s.data[clientKey] = entry{
		requestID: requestID,
		expiresAt: now.Add(ttl),
	}
	s.sweep(now)
	return true
}

func (s *InFlight) Release(clientKey string, requestID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.data[clientKey]; ok && e.requestID == requestID {
		delete(s.data, clientKey)
	}
}

func (s *InFlight) Peek(clientKey string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[clientKey]
	if !ok || !s.now().Before(e.expiresAt) {
		return "", false
	}
	return e.requestID, true
}

// sweep drops expired entries left behind by abandoned requests.
func (s *InFlight) sweep(now time.Time) {
	for k, e := range s.data {
		if !now.Before(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
