package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

// DefaultTTL bounds how long an abandoned checkout survives.
const DefaultTTL = 2 * time.Hour

type item struct {
	session    *entities.CheckoutSession
	expiration int64
}

// MemoryStore is an in-memory session store with expiration. Suitable for
// a single instance; use the Redis store when running more than one.
type MemoryStore struct {
	items map[string]item
	byRef map[string]string
	ttl   time.Duration
	mu    sync.RWMutex
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	store := &MemoryStore{
		items: make(map[string]item),
		byRef: make(map[string]string),
		ttl:   ttl,
	}

	// Background sweep for expired sessions
	go func() {
		for {
			time.Sleep(time.Minute)
			store.deleteExpired()
		}
	}()

	return store
}

func (s *MemoryStore) Save(_ context.Context, session *entities.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := cloneSession(session)
	s.items[session.ID] = item{
		session:    copied,
		expiration: time.Now().Add(s.ttl).UnixNano(),
	}
	if session.Reference != "" {
		s.byRef[session.Reference] = session.ID
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*entities.CheckoutSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, found := s.items[id]
	if !found || time.Now().UnixNano() > it.expiration {
		return nil, errx.NotFound("sessão de checkout não encontrada")
	}
	return cloneSession(it.session), nil
}

// cloneSession copies the session and its bump selection so store and
// caller never share a backing array.
func cloneSession(session *entities.CheckoutSession) *entities.CheckoutSession {
	copied := *session
	if session.SelectedBumps != nil {
		copied.SelectedBumps = append([]string(nil), session.SelectedBumps...)
	}
	return &copied
}

func (s *MemoryStore) FindByReference(ctx context.Context, reference string) (*entities.CheckoutSession, error) {
	s.mu.RLock()
	id, found := s.byRef[reference]
	s.mu.RUnlock()
	if !found {
		return nil, errx.NotFound("sessão de checkout não encontrada")
	}
	return s.Get(ctx, id)
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it, found := s.items[id]; found && it.session.Reference != "" {
		delete(s.byRef, it.session.Reference)
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) deleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixNano()
	for id, it := range s.items {
		if now > it.expiration {
			if it.session.Reference != "" {
				delete(s.byRef, it.session.Reference)
			}
			delete(s.items, id)
		}
	}
}

var _ repositories.SessionRepository = (*MemoryStore)(nil)
