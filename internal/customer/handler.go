package customer

import (
	"context"
	"log"
	"net/url"
	"strings"

	"carta-backend/internal/config"
	"carta-backend/internal/menu"
	"carta-backend/internal/models"
	"carta-backend/internal/orders"
	"carta-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CategoryGroup struct {
	Category models.Category   `json:"category"`
	Items    []models.MenuItem `json:"items"`
}

type OrderLineRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type CreateOrderRequest struct {
	TableNumber string             `json:"table_number"`
	Items       []OrderLineRequest `json:"items"`
}

// GET /api/public/menu
// The live carta filtered to available dishes, grouped in display order.
func MenuHandler(store *menu.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items := store.Items()
		groups := make([]CategoryGroup, 0, len(models.Categories))
		for _, cat := range models.Categories {
			group := CategoryGroup{Category: cat, Items: []models.MenuItem{}}
			for _, it := range items {
				if it.Category == cat && it.Available {
					group.Items = append(group.Items, it)
				}
			}
			if len(group.Items) > 0 {
				groups = append(groups, group)
			}
		}
		return c.JSON(groups)
	}
}

// POST /api/public/orders
func CreateOrderHandler(store *menu.Store, repo *storage.OrderRepo, book *orders.Book) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		cart := orders.Cart{}
		for _, line := range body.Items {
			cart.Add(line.ID, line.Quantity)
		}

		order, err := cart.Build(store.Items(), body.TableNumber)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := repo.Insert(context.Background(), &order); err != nil {
			log.Printf("[Pedidos] no se pudo registrar el pedido de la mesa %s: %v", order.TableNumber, err)
			return fiber.NewError(fiber.StatusServiceUnavailable, "No se pudo registrar el pedido, inténtalo de nuevo")
		}

		// The realtime echo also lands here; Insert drops the duplicate.
		book.Insert(order)

		return c.Status(fiber.StatusCreated).JSON(order)
	}
}

// GET /api/share-link?table=5
// Builds the customer URL that goes behind the printed QR code. The view
// parameter selects the customer-facing app; table pre-fills the order form.
func ShareLinkHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		table := strings.TrimSpace(c.Query("table"))

		params := url.Values{}
		params.Set("view", "customer")
		if table != "" {
			params.Set("table", table)
		}

		base := strings.TrimRight(cfg.PublicBaseURL, "/")
		return c.JSON(fiber.Map{
			"url":   base + "/?" + params.Encode(),
			"table": table,
		})
	}
}
