package dashboardRoutes

import (
	"github.com/gofiber/fiber/v2"

	dashboardController "startupos/controllers/dashboard"
	"startupos/store"
)

func SetupDashboardRoutes(app *fiber.App, reg *store.Registry) {
	dashboardGroup := app.Group("/dashboard")

	dashboardGroup.Get("/summary", dashboardController.Summary(reg))
	dashboardGroup.Get("/credit", dashboardController.Credit(reg))
	dashboardGroup.Get("/sales", dashboardController.Sales(reg))
	dashboardGroup.Get("/finance", dashboardController.Finance(reg))
	dashboardGroup.Get("/tasks", dashboardController.Tasks(reg))
	dashboardGroup.Get("/procurement", dashboardController.Procurement(reg))
	dashboardGroup.Get("/compliance", dashboardController.Compliance(reg))
}
