package savedstate

import (
	"context"
	"sync"

	"github.com/akyairhashvil/coursecards/internal/models"
	"github.com/google/uuid"
)

// MemoryStore keeps bundles in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	bundles map[uuid.UUID]map[models.ItemKey]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bundles: make(map[uuid.UUID]map[models.ItemKey]bool)}
}

func (s *MemoryStore) Save(ctx context.Context, session uuid.UUID, flags map[models.ItemKey]bool) error {
	if err := ctx.Err(); err != nil {
		return wrapErr("save", session, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundles[session] = copyFlags(flags)
	return nil
}

func (s *MemoryStore) Restore(ctx context.Context, session uuid.UUID) (map[models.ItemKey]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrapErr("restore", session, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyFlags(s.bundles[session]), nil
}

func (s *MemoryStore) Discard(ctx context.Context, session uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return wrapErr("discard", session, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bundles, session)
	return nil
}

var _ Store = (*MemoryStore)(nil)
