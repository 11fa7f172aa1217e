package tui

import "github.com/akyairhashvil/coursecards/internal/models"

// ExpansionState tracks which cards are expanded, keyed by item identity.
// Cards start collapsed; only expanded keys are stored.
type ExpansionState struct {
	expanded map[models.ItemKey]bool
}

func NewExpansionState() *ExpansionState {
	return &ExpansionState{expanded: make(map[models.ItemKey]bool)}
}

// RestoreExpansionState rebuilds state from a saved bundle, keeping only the
// keys that are still rendered.
func RestoreExpansionState(flags map[models.ItemKey]bool, keys []models.ItemKey) *ExpansionState {
	s := NewExpansionState()
	for k, v := range flags {
		if v {
			s.expanded[k] = true
		}
	}
	s.Retain(keys)
	return s
}

// IsExpanded reports whether the card for key is expanded.
func (s *ExpansionState) IsExpanded(key models.ItemKey) bool {
	return s.expanded[key]
}

// Toggle flips the card for key and returns its new value.
func (s *ExpansionState) Toggle(key models.ItemKey) bool {
	if s.expanded[key] {
		delete(s.expanded, key)
		return false
	}
	s.expanded[key] = true
	return true
}

// Snapshot returns a copy of the expanded keys.
func (s *ExpansionState) Snapshot() map[models.ItemKey]bool {
	out := make(map[models.ItemKey]bool, len(s.expanded))
	for k := range s.expanded {
		out[k] = true
	}
	return out
}

// Retain drops state for keys that left the rendered set.
func (s *ExpansionState) Retain(keys []models.ItemKey) {
	live := make(map[models.ItemKey]struct{}, len(keys))
	for _, k := range keys {
		live[k] = struct{}{}
	}
	for k := range s.expanded {
		if _, ok := live[k]; !ok {
			delete(s.expanded, k)
		}
	}
}

// Len returns the number of expanded cards.
func (s *ExpansionState) Len() int { return len(s.expanded) }
