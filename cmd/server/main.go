package main

import (
	"context"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"carta-backend/internal/auth"
	"carta-backend/internal/config"
	"carta-backend/internal/customer"
	"carta-backend/internal/database"
	"carta-backend/internal/menu"
	"carta-backend/internal/models"
	"carta-backend/internal/orders"
	"carta-backend/internal/realtime"
	"carta-backend/internal/storage"
	"carta-backend/internal/syncbridge"
	"carta-backend/internal/voice"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("No se pudo inicializar la base de datos: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := menu.NewStore(nil)
	menuRepo := storage.NewMenuRepo(db)
	orderRepo := storage.NewOrderRepo(db)

	notify := func(msg string) {
		// Transient user notification; presentation is the frontend's job.
		log.Printf("[Aviso] %s", msg)
	}

	bridge := syncbridge.New(menuRepo, notify)
	bridge.Attach(store)

	// Boot hydration: an empty remote table gets seeded with the defaults, a
	// populated one wins over the local seed. Only after that may deferred
	// bulk syncs fire.
	if menuRepo.Enabled() {
		remote, err := menuRepo.SelectAll(ctx)
		switch {
		case err != nil:
			log.Printf("[App] no se pudo leer la carta remota: %v", err)
		case len(remote) == 0:
			log.Println("[App] base de datos vacía, subiendo la carta inicial...")
			if err := menuRepo.UpsertMany(ctx, menu.Defaults()); err != nil {
				log.Printf("[App] siembra inicial falló: %v", err)
			}
		default:
			store.Dispatch(menu.SetMenu{Items: remote})
		}
	}
	bridge.SetReady()

	// New-order hook: audio/toast/TTS live on the clients, the backend logs.
	book := orders.NewBook(func(o models.Order) {
		log.Printf("[Pedidos] nuevo pedido de la mesa %s, total S/ %.2f", o.TableNumber, o.Total)
	})

	if db != nil {
		go realtime.NewMenuListener(cfg.DatabaseDSN, menuRepo, store).Run(ctx)
		go realtime.NewOrdersListener(cfg.DatabaseDSN, orderRepo, book).Run(ctx)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Customer surface: public on purpose, reachable from the QR link.
	api.Get("/public/menu", customer.MenuHandler(store))
	api.Post("/public/orders", customer.CreateOrderHandler(store, orderRepo, book))

	protected := api.Group("")
	if db != nil {
		api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg, db))
		api.Post("/auth/login", auth.LoginHandler(cfg, db))
		protected.Use(auth.JWTMiddleware(cfg))
	} else {
		log.Println("[WARN] Modo local: el panel de administración queda sin autenticación.")
	}

	// Carta
	protected.Get("/menu", menu.ListMenuHandler(store))
	protected.Post("/menu/items", menu.AddItemHandler(store))
	protected.Put("/menu/items/:id/price", menu.UpdatePriceHandler(store))
	protected.Put("/menu/items/:id/availability", menu.ToggleAvailabilityHandler(store))
	protected.Post("/menu/reset", menu.ResetMenuHandler(store))
	protected.Post("/menu/category/adjust", menu.AdjustCategoryHandler(store))
	protected.Post("/menu/category/discount", menu.DiscountCategoryHandler(store))

	// Comandos de voz/texto
	protected.Post("/commands", voice.CommandHandler(store))

	// Pedidos
	protected.Get("/orders", orders.ListOrdersHandler(book))
	protected.Put("/orders/:id/status", orders.UpdateStatusHandler(book, orderRepo))
	protected.Delete("/orders/:id", orders.DeleteOrderHandler(book, orderRepo))

	// Enlace para el QR de mesa
	protected.Get("/share-link", customer.ShareLinkHandler(cfg))

	go func() {
		<-ctx.Done()
		log.Println("Cerrando servidor...")
		_ = app.Shutdown()
	}()

	log.Println("Servidor escuchando en el puerto", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
