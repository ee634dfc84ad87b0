package orders

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"carta-backend/internal/models"
	"carta-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

func newOrdersApp(seed ...models.Order) (*fiber.App, *Book) {
	app := fiber.New()
	book := NewBook(nil)
	book.SetAll(seed)
	repo := storage.NewOrderRepo(nil)
	app.Get("/api/orders", ListOrdersHandler(book))
	app.Put("/api/orders/:id/status", UpdateStatusHandler(book, repo))
	app.Delete("/api/orders/:id", DeleteOrderHandler(book, repo))
	return app, book
}

func putStatus(t *testing.T, app *fiber.App, id, status string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", "/api/orders/"+id+"/status",
		strings.NewReader(`{"status":"`+status+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode
}

func TestListOrdersHandler(t *testing.T) {
	app, _ := newOrdersApp(
		models.Order{ID: "a", TableNumber: "1", Status: models.StatusPending},
		models.Order{ID: "b", TableNumber: "2", Status: models.StatusPreparing},
	)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders", nil))
	if err != nil {
		t.Fatal(err)
	}
	var got []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Errorf("orders = %+v", got)
	}
}

func TestUpdateStatusHandlerWalksTheLifecycle(t *testing.T) {
	app, book := newOrdersApp(models.Order{ID: "t1", TableNumber: "3", Status: models.StatusPending})

	if code := putStatus(t, app, "t1", "preparing"); code != fiber.StatusOK {
		t.Fatalf("pending->preparing: status = %d", code)
	}
	if ord, _ := book.Find("t1"); ord.Status != models.StatusPreparing {
		t.Fatalf("book status = %q", ord.Status)
	}

	// Skipping back to pending is not part of the lifecycle.
	if code := putStatus(t, app, "t1", "pending"); code != fiber.StatusBadRequest {
		t.Errorf("preparing->pending: status = %d, want 400", code)
	}
	if ord, _ := book.Find("t1"); ord.Status != models.StatusPreparing {
		t.Error("rejected transition must not touch the book")
	}
}

func TestUpdateStatusHandlerUnknownOrder(t *testing.T) {
	app, _ := newOrdersApp()
	if code := putStatus(t, app, "nope", "preparing"); code != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", code)
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	app, book := newOrdersApp(models.Order{ID: "t1", TableNumber: "3", Status: models.StatusPending})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/orders/t1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if _, ok := book.Find("t1"); ok {
		t.Error("order still on the book")
	}

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/orders/t1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
}
