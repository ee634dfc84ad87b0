package realtime

import (
	"context"
	"encoding/json"
	"log"

	"carta-backend/internal/models"
	"carta-backend/internal/orders"
	"carta-backend/internal/storage"
)

// OrdersListener feeds the order book from the remote orders table: customer
// devices insert directly against the backend and the ticket shows up on the
// dashboard through this stream.
type OrdersListener struct {
	dsn  string
	repo *storage.OrderRepo
	book *orders.Book
}

func NewOrdersListener(dsn string, repo *storage.OrderRepo, book *orders.Book) *OrdersListener {
	return &OrdersListener{dsn: dsn, repo: repo, book: book}
}

func (l *OrdersListener) Run(ctx context.Context) {
	existing, err := l.repo.SelectAll(ctx)
	if err != nil {
		log.Printf("[Realtime] carga inicial de pedidos falló: %v", err)
	} else {
		l.book.SetAll(existing)
	}

	listen(ctx, l.dsn, "orders_changes", l.handle)
}

func (l *OrdersListener) handle(payload []byte) {
	var ev change
	if err := json.Unmarshal(payload, &ev); err != nil {
		log.Printf("[Realtime] evento de pedidos ilegible: %v", err)
		return
	}
	var order models.Order
	if err := json.Unmarshal(ev.Row, &order); err != nil {
		log.Printf("[Realtime] fila de pedido ilegible: %v", err)
		return
	}

	switch ev.Op {
	case OpInsert:
		l.book.Insert(order)
	case OpUpdate:
		l.book.Replace(order)
	case OpDelete:
		l.book.Remove(order.ID)
	}
}
