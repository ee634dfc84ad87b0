package orders

import (
	"sync"

	"carta-backend/internal/models"
)

// Book is the in-process order list, newest first. In remote mode it is fed
// by the realtime listener (our own writes come back as echoes and are merged
// like anyone else's); in local mode the handlers write to it directly.
type Book struct {
	mu     sync.RWMutex
	orders []models.Order
	onNew  func(models.Order)
}

// NewBook creates an empty book. onNew is invoked for every inserted order
// (the new-order notification hook); it may be nil.
func NewBook(onNew func(models.Order)) *Book {
	return &Book{onNew: onNew}
}

func (b *Book) List() []models.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *Book) Find(id string) (models.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Insert prepends the order and fires the new-order hook. Duplicate ids are
// ignored so a local insert followed by its realtime echo stays one order.
func (b *Book) Insert(order models.Order) {
	b.mu.Lock()
	for _, o := range b.orders {
		if o.ID == order.ID {
			b.mu.Unlock()
			return
		}
	}
	b.orders = append([]models.Order{order}, b.orders...)
	hook := b.onNew
	b.mu.Unlock()

	if hook != nil {
		hook(order)
	}
}

// Replace swaps the matching-id order in place, preserving position.
func (b *Book) Replace(order models.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == order.ID {
			b.orders[i] = order
		}
	}
}

// SetStatus updates one order's status in place.
func (b *Book) SetStatus(id string, status models.OrderStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		if b.orders[i].ID == id {
			b.orders[i].Status = status
		}
	}
}

func (b *Book) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.orders[:0:0]
	for _, o := range b.orders {
		if o.ID != id {
			next = append(next, o)
		}
	}
	b.orders = next
}

// SetAll replaces the whole book (initial hydration), newest first as given.
func (b *Book) SetAll(orders []models.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = make([]models.Order, len(orders))
	copy(b.orders, orders)
}
