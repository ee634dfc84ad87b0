package realtime

import (
	"context"
	"encoding/json"
	"log"

	"carta-backend/internal/menu"
	"carta-backend/internal/models"
	"carta-backend/internal/storage"
)

// MenuListener keeps the store aligned with the remote menu_items table.
// Events include echoes of our own writes; merging them unconditionally is
// safe because per-id replacement is idempotent.
type MenuListener struct {
	dsn   string
	repo  *storage.MenuRepo
	store *menu.Store
}

func NewMenuListener(dsn string, repo *storage.MenuRepo, store *menu.Store) *MenuListener {
	return &MenuListener{dsn: dsn, repo: repo, store: store}
}

// Run hydrates once from the remote table, then blocks consuming the change
// stream until ctx is cancelled.
func (l *MenuListener) Run(ctx context.Context) {
	items, err := l.repo.SelectAll(ctx)
	if err != nil {
		log.Printf("[Realtime] carga inicial de la carta falló: %v", err)
	} else if len(items) > 0 {
		l.store.Dispatch(menu.SetMenu{Items: items})
	}

	listen(ctx, l.dsn, "menu_items_changes", l.handle)
}

func (l *MenuListener) handle(payload []byte) {
	var ev change
	if err := json.Unmarshal(payload, &ev); err != nil {
		log.Printf("[Realtime] evento de carta ilegible: %v", err)
		return
	}
	var item models.MenuItem
	if err := json.Unmarshal(ev.Row, &item); err != nil {
		log.Printf("[Realtime] fila de carta ilegible: %v", err)
		return
	}

	switch ev.Op {
	case OpInsert:
		l.store.MergeInsert(item)
	case OpUpdate:
		l.store.MergeUpdate(item)
	case OpDelete:
		l.store.MergeDelete(item.ID)
	}
}
