package menu

import (
	"sync"

	"carta-backend/internal/models"
)

// Observer is called after every dispatch with the action and the carta
// before and after it. Observers must treat both slices as read-only.
type Observer func(action Action, before, after []models.MenuItem)

// Store owns the in-process carta. It is constructed explicitly at boot and
// passed to every consumer; there is no package-level instance. Dispatches
// run to completion under the lock, so local mutations are strictly ordered.
type Store struct {
	mu        sync.RWMutex
	items     []models.MenuItem
	observers []Observer
}

// NewStore builds a store seeded with items, or with the canonical defaults
// when items is nil.
func NewStore(items []models.MenuItem) *Store {
	if items == nil {
		items = Defaults()
	}
	return &Store{items: cloneItems(items)}
}

// Subscribe registers an observer for all future dispatches.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Items returns a snapshot of the current carta.
func (s *Store) Items() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Dispatch reduces the action into the store and notifies observers with the
// pre- and post-mutation snapshots. The local update always wins first;
// anything an observer does with the remote mirror is best-effort.
func (s *Store) Dispatch(action Action) []models.MenuItem {
	s.mu.Lock()
	before := s.items
	after := Reduce(before, action)
	s.items = after
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		o(action, before, after)
	}
	return cloneItems(after)
}

// FindByID returns the current version of one item.
func (s *Store) FindByID(id int64) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// The Merge* methods absorb realtime change events. They bypass the reducer
// and observers on purpose: echoes of our own writes must not trigger another
// sync round, and per-id replacement is idempotent either way.

func (s *Store) MergeInsert(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == item.ID {
			return
		}
	}
	s.items = append(cloneItems(s.items), item)
}

func (s *Store) MergeUpdate(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := cloneItems(s.items)
	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
		}
	}
	s.items = next
}

func (s *Store) MergeDelete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.MenuItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	s.items = next
}
