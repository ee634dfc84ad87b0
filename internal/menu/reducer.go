package menu

import (
	"math"
	"time"

	"carta-backend/internal/models"
)

// Reduce applies one action to the carta and returns the next state. It never
// mutates its input and never fails: unknown actions return the state as-is.
func Reduce(state []models.MenuItem, action Action) []models.MenuItem {
	switch a := action.(type) {
	case UpdatePrice:
		next := cloneItems(state)
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Price = a.Price
			}
		}
		return next

	case UpdatePriceByName:
		next := cloneItems(state)
		for i := range next {
			if Matches(next[i].Name, a.Name) {
				next[i].Price = a.Price
			}
		}
		return next

	case AdjustPriceByCategory:
		next := cloneItems(state)
		for i := range next {
			if Matches(string(next[i].Category), a.Category) {
				next[i].Price = math.Max(0, next[i].Price+a.Amount)
			}
		}
		return next

	case BulkCategoryDiscount:
		factor := 1 - a.Percentage/100
		next := cloneItems(state)
		for i := range next {
			if Matches(string(next[i].Category), a.Category) {
				next[i].Price = round2(next[i].Price * factor)
			}
		}
		return next

	case ToggleAvailability:
		next := cloneItems(state)
		for i := range next {
			if Matches(next[i].Name, a.Name) {
				next[i].Available = !next[i].Available
			}
		}
		return next

	case ResetMenu:
		return Defaults()

	case SetMenu:
		return cloneItems(a.Items)

	case AddItem:
		item := models.MenuItem{
			ID:          nextID(state),
			Name:        a.Name,
			Category:    a.Category,
			Price:       a.Price,
			Description: a.Description,
			Image:       a.Image,
			Available:   true,
		}
		if a.Available != nil {
			item.Available = *a.Available
		}
		if item.Image == "" {
			item.Image = PlaceholderImage
		}
		next := cloneItems(state)
		return append(next, item)

	default:
		return state
	}
}

// nextID is the wall clock in milliseconds, bumped past any existing id so
// two adds inside the same millisecond still get distinct ids.
func nextID(state []models.MenuItem) int64 {
	id := time.Now().UnixMilli()
	for _, it := range state {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	return id
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func cloneItems(items []models.MenuItem) []models.MenuItem {
	next := make([]models.MenuItem, len(items))
	copy(next, items)
	return next
}
