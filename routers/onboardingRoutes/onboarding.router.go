package onboardingRoutes

import (
	"github.com/gofiber/fiber/v2"

	onboardingController "startupos/controllers/onboarding"
	"startupos/store"
)

func SetupOnboardingRoutes(app *fiber.App, reg *store.Registry) {
	sessionGroup := app.Group("/onboarding/sessions")

	sessionGroup.Post("/", onboardingController.StartSession)
	sessionGroup.Get("/:id", onboardingController.GetSession)
	sessionGroup.Patch("/:id", onboardingController.PatchSession)
	sessionGroup.Post("/:id/next", onboardingController.NextStep)
	sessionGroup.Post("/:id/previous", onboardingController.PreviousStep)
	sessionGroup.Post("/:id/submit", onboardingController.Submit(reg))
}
