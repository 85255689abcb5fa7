package kycRoutes

import (
	"github.com/gofiber/fiber/v2"

	kycController "startupos/controllers/kyc"
	resourceController "startupos/controllers/resource"
	"startupos/store"
	kycValidator "startupos/validators/kyc"
)

func SetupKYCRoutes(app *fiber.App, reg *store.Registry) {
	kycGroup := app.Group("/kyc")

	kycGroup.Get("/", resourceController.List(reg.KYC))
	kycGroup.Get("/:id", resourceController.Get(reg.KYC))
	kycGroup.Post("/", kycValidator.Submit(), kycController.Submit(reg))
	kycGroup.Patch("/:id", resourceController.Patch(reg.KYC))
	kycGroup.Delete("/:id", resourceController.Remove(reg.KYC))
	kycGroup.Post("/:id/review", kycValidator.Review(), kycController.Review(reg))
}
