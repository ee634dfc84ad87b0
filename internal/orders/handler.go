package orders

import (
	"context"
	"log"
	"time"

	"carta-backend/internal/models"
	"carta-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// Delivered tickets are kept around briefly for the dashboard, then cleaned
// up so the orders table doesn't grow forever.
const autoDeleteDelay = 30 * time.Second

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/orders
func ListOrdersHandler(book *Book) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(book.List())
	}
}

// PUT /api/orders/:id/status
// The book is updated first (local truth, optimistic); the remote write runs
// in the background and its failure only surfaces as a log line plus the
// realtime echo never arriving.
func UpdateStatusHandler(book *Book, repo *storage.OrderRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		order, ok := book.Find(id)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Pedido no encontrado")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}
		status := models.OrderStatus(body.Status)
		if err := CanTransition(order.Status, status); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		book.SetStatus(id, status)
		go func() {
			if err := repo.UpdateStatus(context.Background(), id, status); err != nil {
				log.Printf("[Pedidos] no se pudo actualizar el estado del pedido %s: %v", id, err)
			}
		}()

		if status == models.StatusDelivered {
			scheduleAutoDelete(book, repo, id)
		}

		return c.JSON(fiber.Map{"id": id, "status": status})
	}
}

// DELETE /api/orders/:id
func DeleteOrderHandler(book *Book, repo *storage.OrderRepo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, ok := book.Find(id); !ok {
			return fiber.NewError(fiber.StatusNotFound, "Pedido no encontrado")
		}
		book.Remove(id)
		go func() {
			if err := repo.DeleteByID(context.Background(), id); err != nil {
				log.Printf("[Pedidos] no se pudo borrar el pedido %s: %v", id, err)
			}
		}()
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func scheduleAutoDelete(book *Book, repo *storage.OrderRepo, id string) {
	time.AfterFunc(autoDeleteDelay, func() {
		book.Remove(id)
		if err := repo.DeleteByID(context.Background(), id); err != nil {
			log.Printf("[Pedidos] limpieza automática del pedido %s falló: %v", id, err)
		}
	})
}
