package db

import (
	"context"
	"sync"

	"quickaid/models"
)

// MemoryStore keeps tickets in process memory, in insertion order. It is
// used for local runs without a database and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	tickets []models.Ticket
	ids     map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]struct{})}
}

func (s *MemoryStore) Create(ctx context.Context, t *models.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[t.ID]; ok {
		return ErrDuplicateID
	}
	s.ids[t.ID] = struct{}{}
	s.tickets = append(s.tickets, *t)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if f.Email != "" && t.Email != f.Email {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }
