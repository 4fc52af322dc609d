package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"jaja-bff/cache"
	"jaja-bff/client"
	"jaja-bff/config"
	"jaja-bff/controller"
	kafkax "jaja-bff/kafka"
	"jaja-bff/middleware"
	"jaja-bff/routes"
	"jaja-bff/store"
	"jaja-bff/validation"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	rdb := cache.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
	storage := &store.RedisStorage{Client: rdb}

	// Backend client & per-collaborator services
	backend := client.New(cfg.BackendBaseURL, cfg.ClientTimeout)
	cartAPI := &client.CartService{Backend: backend}
	tokoAPI := &client.TokoService{Backend: backend}
	wishlistAPI := &client.WishlistService{Backend: backend}

	// Stores, constructed once and injected (no package-level singletons)
	cartStore := store.NewCartStore(cartAPI)
	recentStore := store.NewRecentlyViewedStore(ctx, storage)
	orderStore := store.NewOrderNotificationStore(ctx, storage)

	validate := validation.New()

	app := fiber.New(fiber.Config{ErrorHandler: controller.ErrorHandler})
	app.Use(logger.New())
	app.Use(recover.New())

	authRequired := middleware.AuthRequired(cfg.JWTSecret)

	routes.RegisterAuthRoutes(app, &controller.AuthController{Secret: cfg.JWTSecret})
	routes.RegisterTokoRoutes(app, &controller.TokoController{API: tokoAPI, Validate: validate}, authRequired)
	routes.RegisterWishlistRoutes(app, &controller.WishlistController{API: wishlistAPI}, authRequired)
	routes.RegisterCartRoutes(app, &controller.CartController{Store: cartStore}, authRequired)
	routes.RegisterStoreRoutes(app,
		&controller.ProductController{Recent: recentStore},
		&controller.NotificationController{Orders: orderStore},
	)

	// Payment & order events feed the notification tray
	consumer, err := kafkax.NewConsumer(cfg.KafkaBroker)
	if err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if err := consumer.Consume("payment.paid", kafkax.PaymentPaidHandler(orderStore)); err != nil {
		log.Fatalf("kafka: %v", err)
	}
	if err := consumer.Consume("order.created", kafkax.OrderCreatedHandler(orderStore)); err != nil {
		log.Fatalf("kafka: %v", err)
	}

	// Expired-order sweep; the store only drops entries when asked
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for range ticker.C {
			orderStore.ClearExpiredOrders(context.Background())
		}
	}()

	log.Printf("HTTP bff server running on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal("fiber error:", err)
	}
}
