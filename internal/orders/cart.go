package orders

import (
	"errors"
	"math"
	"strings"

	"carta-backend/internal/models"
)

var (
	ErrEmptyCart    = errors.New("el carrito está vacío")
	ErrMissingTable = errors.New("falta el número de mesa")
)

// Cart maps item id to quantity. Entries never hold zero: setting a quantity
// of zero or less removes the entry.
type Cart map[int64]int

func (c Cart) Set(itemID int64, quantity int) {
	if quantity <= 0 {
		delete(c, itemID)
		return
	}
	c[itemID] = quantity
}

func (c Cart) Add(itemID int64, delta int) {
	c.Set(itemID, c[itemID]+delta)
}

// Build turns the cart into an order against the given carta snapshot,
// copying each dish's current price into the line so later edits don't
// rewrite the ticket. Malformed input (no table, empty cart, unknown ids) is
// rejected here, before any I/O.
func (c Cart) Build(items []models.MenuItem, tableNumber string) (models.Order, error) {
	tableNumber = strings.TrimSpace(tableNumber)
	if tableNumber == "" {
		return models.Order{}, ErrMissingTable
	}
	if len(c) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var lines models.OrderLines
	total := 0.0
	for _, it := range items {
		qty, ok := c[it.ID]
		if !ok {
			continue
		}
		lines = append(lines, models.OrderLine{
			ItemID:   it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: qty,
		})
		total += it.Price * float64(qty)
	}
	if len(lines) != len(c) {
		return models.Order{}, errors.New("el carrito contiene platos que ya no existen")
	}

	return models.Order{
		TableNumber: tableNumber,
		Items:       lines,
		Total:       math.Round(total*100) / 100,
		Status:      models.StatusPending,
	}, nil
}
