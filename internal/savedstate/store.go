// Package savedstate keeps per-item UI state outside of the visual tree so a
// screen can rebuild its views without losing what the user expanded.
package savedstate

import (
	"context"

	"github.com/akyairhashvil/coursecards/internal/models"
	"github.com/google/uuid"
)

// Store holds one bundle of expansion flags per screen session.
//
//go:generate mockgen -source=store.go -destination=../tui/mock_store_test.go -package=tui
type Store interface {
	// Save replaces the session's bundle with flags.
	Save(ctx context.Context, session uuid.UUID, flags map[models.ItemKey]bool) error
	// Restore returns the session's bundle; an unknown session yields an empty map.
	Restore(ctx context.Context, session uuid.UUID) (map[models.ItemKey]bool, error)
	// Discard drops the session's bundle.
	Discard(ctx context.Context, session uuid.UUID) error
}

func copyFlags(flags map[models.ItemKey]bool) map[models.ItemKey]bool {
	out := make(map[models.ItemKey]bool, len(flags))
	for k, v := range flags {
		if v {
			out[k] = true
		}
	}
	return out
}
