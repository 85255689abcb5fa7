package resourceRoutes

import (
	"github.com/gofiber/fiber/v2"

	dashboardController "startupos/controllers/dashboard"
	resourceController "startupos/controllers/resource"
	"startupos/models"
	"startupos/store"
)

// SetupResourceRoutes mounts the plain CRUD surface for every record kind
// plus the status display registry.
func SetupResourceRoutes(app *fiber.App, reg *store.Registry) {
	resourceController.Register[models.Startup](app.Group("/startups"), reg.Startups)
	resourceController.Register[models.ComplianceRecord](app.Group("/compliance"), reg.Compliance)
	resourceController.Register[models.Invoice](app.Group("/invoices"), reg.Invoices)
	resourceController.Register[models.Lead](app.Group("/leads"), reg.Leads)
	resourceController.Register[models.Transaction](app.Group("/transactions"), reg.Transactions)
	resourceController.Register[models.Vendor](app.Group("/vendors"), reg.Vendors)
	resourceController.Register[models.Task](app.Group("/tasks"), reg.Tasks)
	resourceController.Register[models.Application](app.Group("/applications"), reg.Applications)

	app.Get("/statuses", dashboardController.Statuses())
}
