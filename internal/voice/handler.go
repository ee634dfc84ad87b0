package voice

import (
	"carta-backend/internal/menu"

	"github.com/gofiber/fiber/v2"
)

type CommandRequest struct {
	Utterance string `json:"utterance"`
}

type CommandResponse struct {
	Recognized bool   `json:"recognized"`
	Action     string `json:"action,omitempty"`
	Message    string `json:"message,omitempty"`
}

// POST /api/commands
// Accepts a raw utterance from speech-to-text or typed input. Unrecognized
// input is acknowledged and dropped, never an error.
func CommandHandler(store *menu.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CommandRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Datos inválidos")
		}

		outcome := Interpret(body.Utterance, store.Items())

		if outcome.Report != "" {
			return c.JSON(CommandResponse{Recognized: true, Message: outcome.Report})
		}
		if outcome.Action == nil {
			return c.JSON(CommandResponse{Recognized: false})
		}

		store.Dispatch(outcome.Action)
		return c.JSON(CommandResponse{
			Recognized: true,
			Action:     outcome.Action.Kind(),
			Message:    Confirmation(outcome.Action),
		})
	}
}
