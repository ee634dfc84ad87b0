package voice

import (
	"regexp"
	"strconv"
	"strings"

	"carta-backend/internal/menu"
	"carta-backend/internal/models"
)

// Rules are tried in this order and the first match wins. The order is load
// bearing: "baja 10% a los fondos" must resolve as a discount before the
// generic price-decrease rule gets a chance at the word "baja".
var (
	statusRe = regexp.MustCompile(`(?:status|estado|reporte)(?:\s+del?)?\s+men[uú]`)

	// "Agotar Lomo Saltado", "Marca Causa como agotado"
	unavailableRe = regexp.MustCompile(`(?:agotar|agota|marcar?\s+(?:como\s+)?agotado?|sin\s+disponibilidad)\s+(.+)`)

	// "Habilitar Chicha Morada", "Causa está disponible"
	availableRe = regexp.MustCompile(`(?:habilitar?|activar?|disponible?|pon(?:er)?.*disponible)\s+(.+)|(.+?)\s+(?:est[aá]\s+)?disponible`)

	// "Baja 10% a los Fondos"
	discountRe = regexp.MustCompile(`(?:baja|descuenta|reduce|aplica\s+descuento)(?:.*?de)?\s+(\d+(?:\.\d+)?)\s*%\s+(?:a|en|para|de)\s+(?:la\s+|el\s+|las\s+|los\s+)?(.+)`)

	// "Sube 5 soles a los Fondos"
	increaseRe = regexp.MustCompile(`(?:sube|aumenta|incrementa)(?:.*?precio)?\s+(\d+(?:\.\d+)?)(?:\s*(?:soles|bs|s/))?\s+(?:a|en|para)\s+(?:la\s+|el\s+|las\s+|los\s+)?(.+)`)

	// "Baja 5 soles a las Bebidas"
	decreaseRe = regexp.MustCompile(`(?:baja|disminuye|reduce|descuenta)(?:.*?precio)?\s+(\d+(?:\.\d+)?)(?:\s*(?:soles|bs|s/))?\s+(?:a|en|para|de)\s+(?:la\s+|el\s+|las\s+|los\s+)?(.+)`)

	// "Cambia Causa a 20", "Pon el precio de Lomo Saltado en 48.50"
	priceRe = regexp.MustCompile(`(?:cambia|pon|ajusta|fija|establece)(?:.*?precio\s+de|.*?costo\s+de|\s+de|\s+el)?\s+(.+?)\s+(?:a|en|por)\s+(?:s/\.?\s*)?(\d+(?:\.\d+)?)`)
)

// Outcome of interpreting one utterance. Both fields empty means the command
// was not recognized; that is a silent no-op, never an error.
type Outcome struct {
	Action menu.Action
	Report string
}

// Interpret maps a free-text utterance to at most one mutation, or to a
// spoken status report. Items are only consulted for the report; mutations
// carry the raw fragment and let the reducer do the fuzzy matching.
func Interpret(utterance string, items []models.MenuItem) Outcome {
	cmd := strings.ToLower(strings.TrimSpace(utterance))
	if cmd == "" {
		return Outcome{}
	}

	if statusRe.MatchString(cmd) {
		return Outcome{Report: StatusReport(items)}
	}

	if m := unavailableRe.FindStringSubmatch(cmd); m != nil {
		return Outcome{Action: menu.ToggleAvailability{Name: strings.TrimSpace(m[1])}}
	}

	if m := availableRe.FindStringSubmatch(cmd); m != nil {
		name := strings.TrimSpace(m[1])
		if name == "" {
			name = strings.TrimSpace(m[2])
		}
		if name != "" {
			return Outcome{Action: menu.ToggleAvailability{Name: name}}
		}
	}

	if m := discountRe.FindStringSubmatch(cmd); m != nil {
		if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Outcome{Action: menu.BulkCategoryDiscount{
				Category:   strings.TrimSpace(m[2]),
				Percentage: pct,
			}}
		}
	}

	if m := increaseRe.FindStringSubmatch(cmd); m != nil {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Outcome{Action: menu.AdjustPriceByCategory{
				Category: strings.TrimSpace(m[2]),
				Amount:   amount,
			}}
		}
	}

	if m := decreaseRe.FindStringSubmatch(cmd); m != nil {
		if amount, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Outcome{Action: menu.AdjustPriceByCategory{
				Category: strings.TrimSpace(m[2]),
				Amount:   -amount,
			}}
		}
	}

	if m := priceRe.FindStringSubmatch(cmd); m != nil {
		if price, err := strconv.ParseFloat(m[2], 64); err == nil {
			return Outcome{Action: menu.UpdatePriceByName{
				Name:  strings.TrimSpace(m[1]),
				Price: price,
			}}
		}
	}

	return Outcome{}
}
