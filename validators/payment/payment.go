package paymentValidator

import (
	"github.com/gofiber/fiber/v2"

	"startupos/middleware"
	"startupos/models"
)

// CheckoutRequest is the checkout body.
type CheckoutRequest struct {
	StartupID uint   `json:"startupId"`
	Method    string `json:"method"`
}

// Checkout validates the checkout body: the startup reference and the
// payment method against the supported set.
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckoutRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errs := make(map[string]string)
		if reqData.StartupID == 0 {
			errs["startupId"] = "Startup ID is required!"
		}
		valid := false
		for _, m := range models.PaymentMethods {
			if reqData.Method == m {
				valid = true
				break
			}
		}
		if !valid {
			errs["method"] = "Payment method is not supported!"
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
