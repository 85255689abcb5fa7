package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"startupos/config"
	"startupos/database"
	"startupos/gateway"
	"startupos/middleware"
	dashboardRoutes "startupos/routers/dashboardRoutes"
	kycRoutes "startupos/routers/kycRoutes"
	onboardingRoutes "startupos/routers/onboardingRoutes"
	paymentRoutes "startupos/routers/paymentRoutes"
	resourceRoutes "startupos/routers/resourceRoutes"
	"startupos/store"
	"startupos/utils"
)

func buildRegistry() *store.Registry {
	if config.AppConfig.StoreBackend == "database" {
		database.ConnectDb()
		return store.NewGormRegistry(database.Database.Db)
	}
	return store.NewMemoryRegistry(0)
}

func buildGateway() gateway.Client {
	if config.AppConfig.GatewayURL != "" {
		timeout := time.Duration(config.AppConfig.GatewayTimeoutMS) * time.Millisecond
		return gateway.NewHTTP(config.AppConfig.GatewayURL, config.AppConfig.GatewayKey, timeout)
	}
	return gateway.NewSimulator()
}

func main() {
	config.LoadConfig()

	reg := buildRegistry()

	if config.AppConfig.SeedDemo {
		if err := database.SeedDemo(context.Background(), reg); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}
	// Latency goes on after seeding so startup stays fast.
	reg.SetLatency(time.Duration(config.AppConfig.MockLatencyMS) * time.Millisecond)

	gw := buildGateway()

	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Idempotency-Key",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	onboardingRoutes.SetupOnboardingRoutes(app, reg)
	kycRoutes.SetupKYCRoutes(app, reg)
	paymentRoutes.SetupPaymentRoutes(app, reg, gw)
	dashboardRoutes.SetupDashboardRoutes(app, reg)
	resourceRoutes.SetupResourceRoutes(app, reg)

	if config.AppConfig.SchedulerEnabled {
		utils.InitializeOperationsScheduler(reg)
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
