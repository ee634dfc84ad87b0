package syncbridge

import (
	"context"
	"log"
	"sync"
	"time"

	"carta-backend/internal/menu"
	"carta-backend/internal/models"
)

// MenuWriter is the slice of the remote collaborator the bridge needs.
// *storage.MenuRepo satisfies it.
type MenuWriter interface {
	Enabled() bool
	UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) error
	UpsertMany(ctx context.Context, items []models.MenuItem) error
	DeleteAll(ctx context.Context) error
}

// Notifier surfaces a user-visible message for a failed remote operation.
type Notifier func(message string)

// Bridge mirrors store dispatches to the remote backend. The local mutation
// has already been applied when the bridge sees it, and is never rolled back:
// a remote failure is logged, surfaced once through the notifier, and
// forgotten. Routing follows the mutation kind: targeted mutations become a
// single-row update, a reset becomes delete-all plus reseed, and bulk
// mutations coalesce into one deferred full-menu upsert.
type Bridge struct {
	repo       MenuWriter
	notify     Notifier
	flushDelay time.Duration

	mu      sync.Mutex
	ready   bool // remote hydration finished, bulk syncs may fire
	dirty   bool
	pending []models.MenuItem
	timer   *time.Timer
}

func New(repo MenuWriter, notify Notifier) *Bridge {
	if notify == nil {
		notify = func(string) {}
	}
	return &Bridge{
		repo:       repo,
		notify:     notify,
		flushDelay: 250 * time.Millisecond,
	}
}

// SetFlushDelay adjusts how long the bridge waits for a burst of bulk
// mutations to settle before the coalesced upsert.
func (b *Bridge) SetFlushDelay(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushDelay = d
}

// Attach subscribes the bridge to a store's dispatches.
func (b *Bridge) Attach(store *menu.Store) {
	store.Subscribe(b.handleDispatch)
}

// SetReady opens the gate for deferred bulk syncs. Called once the initial
// remote hydration has completed; anything marked dirty before that point is
// flushed now.
func (b *Bridge) SetReady() {
	b.mu.Lock()
	b.ready = true
	rearm := b.dirty
	b.mu.Unlock()
	if rearm {
		b.schedule()
	}
}

func (b *Bridge) handleDispatch(action menu.Action, before, after []models.MenuItem) {
	if b.repo == nil || !b.repo.Enabled() {
		return
	}

	switch a := action.(type) {
	case menu.ToggleAvailability:
		go b.syncToggle(before, a.Name)
	case menu.UpdatePriceByName:
		go b.syncPriceByName(before, a.Name, a.Price)
	case menu.UpdatePrice:
		id, price := a.ID, a.Price
		go b.run("actualizar precio", func(ctx context.Context) error {
			return b.repo.UpdateByID(ctx, id, map[string]interface{}{"price": price})
		})
	case menu.ResetMenu:
		go b.run("restablecer carta", func(ctx context.Context) error {
			if err := b.repo.DeleteAll(ctx); err != nil {
				return err
			}
			return b.repo.UpsertMany(ctx, menu.Defaults())
		})
	case menu.AddItem, menu.BulkCategoryDiscount, menu.AdjustPriceByCategory:
		b.markDirty(after)
	}
	// SetMenu is hydration, not a local edit; nothing to mirror.
}

// syncToggle re-runs the reducer's fuzzy search against the pre-mutation
// snapshot to find the concrete row, then issues a targeted update.
func (b *Bridge) syncToggle(before []models.MenuItem, fragment string) {
	for _, it := range before {
		if menu.Matches(it.Name, fragment) {
			available := !it.Available
			id := it.ID
			b.run("actualizar disponibilidad", func(ctx context.Context) error {
				return b.repo.UpdateByID(ctx, id, map[string]interface{}{"available": available})
			})
			return
		}
	}
	// No match locally means the reducer changed nothing either; skip.
}

func (b *Bridge) syncPriceByName(before []models.MenuItem, fragment string, price float64) {
	for _, it := range before {
		if menu.Matches(it.Name, fragment) {
			id := it.ID
			b.run("actualizar precio", func(ctx context.Context) error {
				return b.repo.UpdateByID(ctx, id, map[string]interface{}{"price": price})
			})
			return
		}
	}
}

func (b *Bridge) markDirty(snapshot []models.MenuItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = snapshot
	b.dirty = true
	if !b.ready {
		return
	}
	if b.timer == nil {
		b.timer = time.AfterFunc(b.flushDelay, b.flush)
	} else {
		b.timer.Reset(b.flushDelay)
	}
}

func (b *Bridge) schedule() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer == nil {
		b.timer = time.AfterFunc(b.flushDelay, b.flush)
	} else {
		b.timer.Reset(b.flushDelay)
	}
}

func (b *Bridge) flush() {
	b.mu.Lock()
	b.timer = nil
	if !b.ready || !b.dirty {
		b.mu.Unlock()
		return
	}
	snapshot := b.pending
	b.dirty = false
	b.pending = nil
	b.mu.Unlock()

	b.run("sincronizar carta completa", func(ctx context.Context) error {
		return b.repo.UpsertMany(ctx, snapshot)
	})
}

// run executes one remote operation, isolating its failure from everything
// else. No retries: the local state already moved on.
func (b *Bridge) run(op string, fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		log.Printf("[Sync] %s falló: %v", op, err)
		b.notify("Error al sincronizar con la nube")
	}
}
