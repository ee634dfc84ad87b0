package voice

import (
	"fmt"
	"strconv"
	"strings"

	"carta-backend/internal/menu"
	"carta-backend/internal/models"
)

// Confirmation builds the spoken feedback for a dispatched action. This is
// the effect stage: it runs after the reducer, keyed by the action tag, and
// nothing here flows back into state. How the text is voiced or displayed is
// up to the caller.
func Confirmation(action menu.Action) string {
	switch a := action.(type) {
	case menu.AddItem:
		return fmt.Sprintf("Plato %s añadido correctamente", a.Name)
	case menu.UpdatePrice:
		return fmt.Sprintf("Precio actualizado a %s soles", trimFloat(a.Price))
	case menu.UpdatePriceByName:
		return fmt.Sprintf("Precio de %s actualizado a %s soles", a.Name, trimFloat(a.Price))
	case menu.AdjustPriceByCategory:
		return fmt.Sprintf("Precios de %s ajustados", a.Category)
	case menu.BulkCategoryDiscount:
		return fmt.Sprintf("Descuento del %s por ciento aplicado a %s", trimFloat(a.Percentage), a.Category)
	case menu.ToggleAvailability:
		return fmt.Sprintf("Entendido, %s marcado. Disponibilidad actualizada.", a.Name)
	case menu.ResetMenu:
		return "Menú restablecido a los valores originales"
	default:
		return ""
	}
}

// StatusReport summarizes sold-out versus available dishes. Report only; it
// never touches state.
func StatusReport(items []models.MenuItem) string {
	var soldOut []string
	available := 0
	for _, it := range items {
		if it.Available {
			available++
		} else {
			soldOut = append(soldOut, it.Name)
		}
	}

	if len(soldOut) == 0 {
		return fmt.Sprintf("Todo en orden. Los %d platos del menú están disponibles.", available)
	}

	plural := ""
	if len(soldOut) > 1 {
		plural = "s"
	}
	return fmt.Sprintf("Atención. Hay %d plato%s agotado%s: %s. %d platos disponibles.",
		len(soldOut), plural, plural, strings.Join(soldOut, ", "), available)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
