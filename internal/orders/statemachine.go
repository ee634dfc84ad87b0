package orders

import (
	"fmt"

	"carta-backend/internal/models"
)

type transition struct {
	from models.OrderStatus
	to   models.OrderStatus
}

// validTransitions is the authoritative lifecycle: a ticket moves forward
// through the kitchen or gets cancelled; delivered and cancelled are
// terminal.
var validTransitions = map[transition]bool{
	{models.StatusPending, models.StatusPreparing}:   true,
	{models.StatusPending, models.StatusCancelled}:   true,
	{models.StatusPreparing, models.StatusDelivered}: true,
	{models.StatusPreparing, models.StatusCancelled}: true,
}

// ValidNext returns the statuses reachable from the given one.
func ValidNext(from models.OrderStatus) []models.OrderStatus {
	var next []models.OrderStatus
	for _, to := range []models.OrderStatus{
		models.StatusPreparing, models.StatusDelivered, models.StatusCancelled,
	} {
		if validTransitions[transition{from, to}] {
			next = append(next, to)
		}
	}
	return next
}

// CanTransition reports whether the status change is allowed.
func CanTransition(from, to models.OrderStatus) error {
	if validTransitions[transition{from, to}] {
		return nil
	}
	return fmt.Errorf("transición inválida de %s a %s", from, to)
}
