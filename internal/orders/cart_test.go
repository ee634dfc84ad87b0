package orders

import (
	"errors"
	"testing"

	"carta-backend/internal/models"
)

var testCarta = []models.MenuItem{
	{ID: 1, Name: "Ceviche", Category: models.CategoryEntradas, Price: 10.00, Available: true},
	{ID: 2, Name: "Chicha", Category: models.CategoryBebidas, Price: 5.00, Available: true},
}

func TestCartBuildTotalsAndLines(t *testing.T) {
	cart := Cart{1: 2, 2: 1}

	order, err := cart.Build(testCarta, "7")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if order.Total != 25.00 {
		t.Errorf("total = %v, want 25.00", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("lines = %d, want 2", len(order.Items))
	}
	for _, line := range order.Items {
		if line.Quantity != cart[line.ItemID] {
			t.Errorf("line %d quantity = %d, want %d", line.ItemID, line.Quantity, cart[line.ItemID])
		}
	}
	if order.Status != models.StatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.TableNumber != "7" {
		t.Errorf("table = %q", order.TableNumber)
	}
}

func TestCartBuildSnapshotsPrices(t *testing.T) {
	cart := Cart{1: 1}
	order, err := cart.Build(testCarta, "3")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if order.Items[0].Price != 10.00 || order.Items[0].Name != "Ceviche" {
		t.Errorf("line = %+v, want price/name snapshot", order.Items[0])
	}
}

func TestCartBuildRejectsMalformedInput(t *testing.T) {
	t.Run("missing table", func(t *testing.T) {
		_, err := Cart{1: 1}.Build(testCarta, "   ")
		if !errors.Is(err, ErrMissingTable) {
			t.Errorf("err = %v, want ErrMissingTable", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		_, err := Cart{}.Build(testCarta, "5")
		if !errors.Is(err, ErrEmptyCart) {
			t.Errorf("err = %v, want ErrEmptyCart", err)
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := Cart{99: 1}.Build(testCarta, "5")
		if err == nil {
			t.Error("want error for unknown item id")
		}
	})
}

func TestCartNeverStoresZeroQuantities(t *testing.T) {
	cart := Cart{}
	cart.Set(1, 2)
	cart.Add(1, -2)
	if _, ok := cart[1]; ok {
		t.Error("zero quantity should remove the entry")
	}

	cart.Set(2, 0)
	if len(cart) != 0 {
		t.Error("setting zero should not create an entry")
	}

	cart.Add(3, 1)
	cart.Add(3, 1)
	if cart[3] != 2 {
		t.Errorf("quantity = %d, want 2", cart[3])
	}
}
