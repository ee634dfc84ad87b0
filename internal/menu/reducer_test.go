package menu

import (
	"reflect"
	"testing"

	"carta-backend/internal/models"
)

func findByName(t *testing.T, items []models.MenuItem, name string) models.MenuItem {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("plato %q no encontrado", name)
	return models.MenuItem{}
}

func TestUpdatePriceByExactID(t *testing.T) {
	state := Defaults()
	next := Reduce(state, UpdatePrice{ID: 2, Price: 50})

	if got := findByName(t, next, "Lomo Saltado").Price; got != 50 {
		t.Errorf("price = %v, want 50", got)
	}
	if got := findByName(t, next, "Ají de Gallina").Price; got != 32 {
		t.Errorf("other item changed: price = %v, want 32", got)
	}

	// Unknown id changes nothing.
	same := Reduce(state, UpdatePrice{ID: 999, Price: 1})
	if !reflect.DeepEqual(same, state) {
		t.Error("unknown id should leave the carta unchanged")
	}
}

func TestUpdatePriceByNameFuzzy(t *testing.T) {
	next := Reduce(Defaults(), UpdatePriceByName{Name: "causa", Price: 20})

	if got := findByName(t, next, "Causa Limeña").Price; got != 20 {
		t.Errorf("price = %v, want 20", got)
	}
	if got := findByName(t, next, "Ceviche Clásico").Price; got != 38 {
		t.Errorf("non-matching item changed: price = %v, want 38", got)
	}
}

func TestAdjustPriceClampsAtZero(t *testing.T) {
	// Chicha Morada (Bebidas) costs 12; a -50 adjustment must clamp to 0.
	next := Reduce(Defaults(), AdjustPriceByCategory{Category: "bebidas", Amount: -50})
	if got := findByName(t, next, "Chicha Morada").Price; got != 0 {
		t.Errorf("price = %v, want 0", got)
	}
}

func TestPriceNeverNegativeUnderSequences(t *testing.T) {
	state := Defaults()
	actions := []Action{
		AdjustPriceByCategory{Category: "fondos", Amount: -40},
		BulkCategoryDiscount{Category: "fondos", Percentage: 90},
		AdjustPriceByCategory{Category: "fondos", Amount: -10},
		BulkCategoryDiscount{Category: "entradas", Percentage: 100},
		AdjustPriceByCategory{Category: "postres", Amount: -100},
	}
	for _, a := range actions {
		state = Reduce(state, a)
		for _, it := range state {
			if it.Price < 0 {
				t.Fatalf("precio negativo tras %s: %s = %v", a.Kind(), it.Name, it.Price)
			}
		}
	}
}

func TestDiscountRoundsToTwoDecimals(t *testing.T) {
	// Ceviche Clásico (Entradas) costs 38.00; 10% off is exactly 34.20.
	next := Reduce(Defaults(), BulkCategoryDiscount{Category: "entradas", Percentage: 10})
	if got := findByName(t, next, "Ceviche Clásico").Price; got != 34.20 {
		t.Errorf("price = %v, want 34.20", got)
	}
	if got := findByName(t, next, "Causa Limeña").Price; got != 21.60 {
		t.Errorf("price = %v, want 21.60", got)
	}
	// Other categories untouched.
	if got := findByName(t, next, "Lomo Saltado").Price; got != 45 {
		t.Errorf("price = %v, want 45", got)
	}
}

func TestToggleAvailabilityIsIdempotentInPairs(t *testing.T) {
	state := Defaults()
	once := Reduce(state, ToggleAvailability{Name: "lomo"})

	if findByName(t, once, "Lomo Saltado").Available {
		t.Error("first toggle should mark the dish unavailable")
	}

	twice := Reduce(once, ToggleAvailability{Name: "lomo"})
	if !reflect.DeepEqual(twice, state) {
		t.Error("toggling twice should restore the original carta")
	}
}

func TestToggleAvailabilityFlipsEveryMatch(t *testing.T) {
	// "li" matches Causa Limeña, Ají de Gallina and Suspiro a la Limeña.
	next := Reduce(Defaults(), ToggleAvailability{Name: "li"})

	flipped := 0
	for _, it := range next {
		if !it.Available {
			flipped++
		}
	}
	if flipped != 3 {
		t.Errorf("flipped %d items, want 3", flipped)
	}
}

func TestResetRestoresDefaultsAfterMutations(t *testing.T) {
	state := Defaults()
	state = Reduce(state, AddItem{Name: "Pollo a la Brasa", Category: models.CategoryFondos, Price: 25})
	state = Reduce(state, BulkCategoryDiscount{Category: "fondos", Percentage: 50})
	state = Reduce(state, ToggleAvailability{Name: "ceviche"})

	reset := Reduce(state, ResetMenu{})
	if !reflect.DeepEqual(reset, Defaults()) {
		t.Error("reset should restore the canonical seed set")
	}
}

func TestAddItemDefaults(t *testing.T) {
	state := Defaults()
	next := Reduce(state, AddItem{
		Name:     "Pollo a la Brasa",
		Category: models.CategoryFondos,
		Price:    25,
	})

	if len(next) != len(state)+1 {
		t.Fatalf("len = %d, want %d", len(next), len(state)+1)
	}
	added := next[len(next)-1]
	if added.Name != "Pollo a la Brasa" || added.Price != 25 {
		t.Errorf("added item = %+v", added)
	}
	if !added.Available {
		t.Error("available should default to true")
	}
	if added.Image != PlaceholderImage {
		t.Errorf("image = %q, want placeholder", added.Image)
	}
	for _, it := range state {
		if it.ID == added.ID {
			t.Errorf("id %d reused", added.ID)
		}
	}
}

func TestAddItemExplicitAvailability(t *testing.T) {
	unavailable := false
	next := Reduce(Defaults(), AddItem{
		Name:      "Inka Kola",
		Category:  models.CategoryBebidas,
		Price:     8,
		Available: &unavailable,
	})
	if next[len(next)-1].Available {
		t.Error("explicit available=false should be kept")
	}
}

type bogusAction struct{}

func (bogusAction) Kind() string { return "BOGUS" }

func TestUnknownActionIsNoop(t *testing.T) {
	state := Defaults()
	if got := Reduce(state, bogusAction{}); !reflect.DeepEqual(got, state) {
		t.Error("unknown actions must return the carta unchanged")
	}
}

func TestReduceNeverMutatesInput(t *testing.T) {
	state := Defaults()
	snapshot := make([]models.MenuItem, len(state))
	copy(snapshot, state)

	Reduce(state, UpdatePriceByName{Name: "causa", Price: 99})
	Reduce(state, ToggleAvailability{Name: "lomo"})
	Reduce(state, BulkCategoryDiscount{Category: "fondos", Percentage: 50})

	if !reflect.DeepEqual(state, snapshot) {
		t.Error("reducer mutated its input")
	}
}
