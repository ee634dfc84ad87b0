package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderLine is a snapshot of a dish at the moment it was ordered. Price and
// name are copied on purpose so later carta edits don't rewrite old tickets.
type OrderLine struct {
	ItemID   int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderLines is stored as a single jsonb column.
type OrderLines []OrderLine

func (l OrderLines) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *OrderLines) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("order lines: tipo de columna no soportado")
}

type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;size:36"`
	TableNumber string      `json:"table_number" gorm:"size:10;not null"`
	Items       OrderLines  `json:"items" gorm:"type:jsonb;not null"`
	Total       float64     `json:"total" gorm:"not null"`
	Status      OrderStatus `json:"status" gorm:"size:20;not null;default:'pending'"`
	CreatedAt   time.Time   `json:"created_at"`
}
