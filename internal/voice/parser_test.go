package voice

import (
	"strings"
	"testing"

	"carta-backend/internal/menu"
)

func TestInterpretCommands(t *testing.T) {
	cases := []struct {
		name      string
		utterance string
		want      menu.Action
	}{
		{
			"agotar plus name",
			"agotar Lomo Saltado",
			menu.ToggleAvailability{Name: "lomo saltado"},
		},
		{
			"marcar como agotado",
			"marcar como agotado causa",
			menu.ToggleAvailability{Name: "causa"},
		},
		{
			"habilitar plus name",
			"habilitar chicha morada",
			menu.ToggleAvailability{Name: "chicha morada"},
		},
		{
			"trailing disponible",
			"causa está disponible",
			menu.ToggleAvailability{Name: "causa"},
		},
		{
			"percentage discount",
			"baja 10% a los Fondos",
			menu.BulkCategoryDiscount{Category: "fondos", Percentage: 10},
		},
		{
			"discount with decimals",
			"aplica descuento de 12.5% en las bebidas",
			menu.BulkCategoryDiscount{Category: "bebidas", Percentage: 12.5},
		},
		{
			"increase by category",
			"sube 5 soles a los fondos",
			menu.AdjustPriceByCategory{Category: "fondos", Amount: 5},
		},
		{
			"decrease by category",
			"disminuye 3 a las bebidas",
			menu.AdjustPriceByCategory{Category: "bebidas", Amount: -3},
		},
		{
			"set price by name",
			"cambia Causa a 20",
			menu.UpdatePriceByName{Name: "causa", Price: 20},
		},
		{
			"set price with currency prefix",
			"pon el precio de lomo saltado en s/ 48.50",
			menu.UpdatePriceByName{Name: "lomo saltado", Price: 48.50},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Interpret(tc.utterance, menu.Defaults())
			if got.Report != "" {
				t.Fatalf("unexpected report %q", got.Report)
			}
			if got.Action != tc.want {
				t.Errorf("Interpret(%q) = %#v, want %#v", tc.utterance, got.Action, tc.want)
			}
		})
	}
}

func TestInterpretUnrecognizedIsSilent(t *testing.T) {
	for _, utterance := range []string{
		"qué tal el clima",
		"",
		"   ",
		"tráeme la cuenta por favor",
	} {
		got := Interpret(utterance, menu.Defaults())
		if got.Action != nil || got.Report != "" {
			t.Errorf("Interpret(%q) = %#v, want empty outcome", utterance, got)
		}
	}
}

func TestInterpretPrecedence(t *testing.T) {
	// "baja ... %" must resolve as a discount even though "baja" also opens
	// the price-decrease rule.
	got := Interpret("baja 10% a los fondos", menu.Defaults())
	if _, ok := got.Action.(menu.BulkCategoryDiscount); !ok {
		t.Errorf("want BulkCategoryDiscount, got %#v", got.Action)
	}

	// Without the percent sign the same verb is an absolute decrease.
	got = Interpret("baja 10 a los fondos", menu.Defaults())
	adj, ok := got.Action.(menu.AdjustPriceByCategory)
	if !ok || adj.Amount != -10 {
		t.Errorf("want AdjustPriceByCategory{-10}, got %#v", got.Action)
	}
}

func TestInterpretStatusQuery(t *testing.T) {
	items := menu.Defaults()

	got := Interpret("estado del menú", items)
	if got.Action != nil {
		t.Fatalf("status query must not mutate, got %#v", got.Action)
	}
	if !strings.Contains(got.Report, "Todo en orden") {
		t.Errorf("report = %q", got.Report)
	}

	// Accent-free transcripts work too.
	if Interpret("status del menu", items).Report == "" {
		t.Error("accent-free status query should be recognized")
	}
}
