package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"

	paymentController "startupos/controllers/payment"
	resourceController "startupos/controllers/resource"
	"startupos/gateway"
	"startupos/models"
	"startupos/store"
	paymentValidator "startupos/validators/payment"
)

func SetupPaymentRoutes(app *fiber.App, reg *store.Registry, gw gateway.Client) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Get("/", resourceController.List(reg.Payments))
	paymentGroup.Get("/:id", resourceController.Get(reg.Payments))
	paymentGroup.Post("/", resourceController.Create[models.Payment](reg.Payments))
	paymentGroup.Patch("/:id", paymentController.GuardedPatch(reg))
	paymentGroup.Delete("/:id", resourceController.Remove(reg.Payments))

	paymentGroup.Post("/checkout", paymentValidator.Checkout(), paymentController.Checkout(reg, gw))
	paymentGroup.Post("/:id/invoice", paymentController.GenerateInvoice(reg))
}
