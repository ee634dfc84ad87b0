package menu

import (
	"strconv"
	"strings"

	"carta-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AddItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Available   *bool   `json:"available"`
}

type UpdatePriceRequest struct {
	Price float64 `json:"price"`
}

type CategoryAdjustRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type CategoryDiscountRequest struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

func validCategory(raw string) (models.Category, bool) {
	for _, c := range models.Categories {
		if strings.EqualFold(raw, string(c)) {
			return c, true
		}
	}
	return "", false
}

// GET /api/menu
func ListMenuHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Items())
	}
}

// POST /api/menu/items
func AddItemHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Nombre y precio son obligatorios")
		}
		category, ok := validCategory(body.Category)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Categoría desconocida")
		}

		items := store.Dispatch(AddItem{
			Name:        body.Name,
			Category:    category,
			Price:       body.Price,
			Description: strings.TrimSpace(body.Description),
			Image:       body.Image,
			Available:   body.Available,
		})
		return c.Status(fiber.StatusCreated).JSON(items)
	}
}

// PUT /api/menu/items/:id/price
func UpdatePriceHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}
		var body UpdatePriceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "El precio no puede ser negativo")
		}
		if _, ok := store.FindByID(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Plato no encontrado")
		}
		return c.JSON(store.Dispatch(UpdatePrice{ID: id, Price: body.Price}))
	}
}

// PUT /api/menu/items/:id/availability
// The dashboard toggles by item, but availability is name-addressed in the
// reducer, so the handler resolves the id to the full dish name first.
func ToggleAvailabilityHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "ID inválido")
		}
		item, ok := store.FindByID(id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Plato no encontrado")
		}
		return c.JSON(store.Dispatch(ToggleAvailability{Name: item.Name}))
	}
}

// POST /api/menu/reset
func ResetMenuHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(store.Dispatch(ResetMenu{}))
	}
}

// POST /api/menu/category/adjust
func AdjustCategoryHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryAdjustRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		body.Category = strings.TrimSpace(body.Category)
		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Categoría es obligatoria")
		}
		return c.JSON(store.Dispatch(AdjustPriceByCategory{Category: body.Category, Amount: body.Amount}))
	}
}

// POST /api/menu/category/discount
func DiscountCategoryHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CategoryDiscountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		body.Category = strings.TrimSpace(body.Category)
		if body.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Categoría es obligatoria")
		}
		if body.Percentage < 0 || body.Percentage > 100 {
			return fiber.NewError(fiber.StatusBadRequest, "El porcentaje debe estar entre 0 y 100")
		}
		return c.JSON(store.Dispatch(BulkCategoryDiscount{Category: body.Category, Percentage: body.Percentage}))
	}
}
