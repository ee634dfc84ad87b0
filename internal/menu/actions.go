package menu

import "carta-backend/internal/models"

// Action is a structured description of a carta mutation, decoupled from how
// it was produced (voice command, dashboard request or remote snapshot).
type Action interface {
	Kind() string
}

const (
	KindUpdatePrice           = "UPDATE_PRICE"
	KindUpdatePriceByName     = "UPDATE_PRICE_BY_NAME"
	KindAdjustPriceByCategory = "ADJUST_PRICE_BY_CATEGORY"
	KindBulkCategoryDiscount  = "BULK_CATEGORY_DISCOUNT"
	KindToggleAvailability    = "TOGGLE_AVAILABILITY"
	KindResetMenu             = "RESET_MENU"
	KindSetMenu               = "SET_MENU"
	KindAddItem               = "ADD_ITEM"
)

// UpdatePrice sets the price of one item addressed by exact id. This is the
// only price path without fuzzy matching, reserved for programmatic calls.
type UpdatePrice struct {
	ID    int64
	Price float64
}

// UpdatePriceByName sets the price on every item whose name fuzzy-matches.
type UpdatePriceByName struct {
	Name  string
	Price float64
}

// AdjustPriceByCategory adds Amount (may be negative) to every item in a
// fuzzy-matching category, clamped at zero.
type AdjustPriceByCategory struct {
	Category string
	Amount   float64
}

// BulkCategoryDiscount applies a percentage discount to a category.
type BulkCategoryDiscount struct {
	Category   string
	Percentage float64
}

// ToggleAvailability flips availability on every fuzzy-matching item.
// Repeating the same command flips it back.
type ToggleAvailability struct {
	Name string
}

// ResetMenu replaces the carta with the canonical defaults.
type ResetMenu struct{}

// SetMenu absorbs an externally-loaded full snapshot (boot hydration or a
// remote push).
type SetMenu struct {
	Items []models.MenuItem
}

// AddItem appends a new dish. The id is assigned at reduce time; Available
// defaults to true and Image to the placeholder when left empty.
type AddItem struct {
	Name        string
	Category    models.Category
	Price       float64
	Description string
	Image       string
	Available   *bool
}

func (UpdatePrice) Kind() string           { return KindUpdatePrice }
func (UpdatePriceByName) Kind() string     { return KindUpdatePriceByName }
func (AdjustPriceByCategory) Kind() string { return KindAdjustPriceByCategory }
func (BulkCategoryDiscount) Kind() string  { return KindBulkCategoryDiscount }
func (ToggleAvailability) Kind() string    { return KindToggleAvailability }
func (ResetMenu) Kind() string             { return KindResetMenu }
func (SetMenu) Kind() string               { return KindSetMenu }
func (AddItem) Kind() string               { return KindAddItem }
