package paymentController

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"startupos/gateway"
	"startupos/middleware"
	"startupos/models"
	"startupos/store"
	"startupos/utils"
	paymentValidator "startupos/validators/payment"

	resourceController "startupos/controllers/resource"
)

// findByIdempotencyKey returns an earlier payment created under the same
// Idempotency-Key, if any.
func findByIdempotencyKey(c *fiber.Ctx, reg *store.Registry, key string) (*models.Payment, error) {
	if key == "" {
		return nil, nil
	}
	payments, err := reg.Payments.GetAll(c.Context())
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.IdempotencyKey == key {
			return p, nil
		}
	}
	return nil, nil
}

// Checkout charges the fixed onboarding fee through the gateway and, on
// capture, activates the startup profile. Replaying a request with the same
// Idempotency-Key returns the original payment instead of charging twice.
func Checkout(reg *store.Registry, gw gateway.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedCheckout").(*paymentValidator.CheckoutRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Validation data missing!", nil)
		}

		idemKey := c.Get("Idempotency-Key")
		if prior, err := findByIdempotencyKey(c, reg, idemKey); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up payments!", nil)
		} else if prior != nil {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already processed.", prior)
		}

		startup, err := reg.Startups.GetByID(c.Context(), reqData.StartupID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Startup not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up startup!", nil)
		}

		breakdown := models.DefaultFeeBreakdown()
		orderID := gateway.NewOrderID()

		payment := &models.Payment{
			StartupID:      startup.ID,
			Amount:         breakdown.Total(),
			Currency:       "INR",
			Method:         reqData.Method,
			Status:         models.PaymentStatusPending,
			Description:    "Startup OS Onboarding Fee",
			Breakdown:      breakdown,
			GatewayOrderID: orderID,
			IdempotencyKey: idemKey,
		}
		created, err := reg.Payments.Create(c.Context(), payment)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
		}

		result, err := gw.Charge(c.Context(), gateway.ChargeRequest{
			OrderID:     orderID,
			Amount:      created.Amount,
			Currency:    created.Currency,
			Method:      created.Method,
			Description: created.Description,
		})
		if err != nil {
			failed, uerr := reg.Payments.Update(c.Context(), created.ID, map[string]any{
				"status":        models.PaymentStatusFailed,
				"failureReason": err.Error(),
			})
			if uerr != nil {
				failed = created
			}
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment failed. Please try again.", failed)
		}

		completed, err := reg.Payments.Update(c.Context(), created.ID, map[string]any{
			"status":           models.PaymentStatusCompleted,
			"paymentDate":      result.CapturedAt.Format(time.RFC3339),
			"transactionId":    fmt.Sprintf("TXN%d", time.Now().Unix()),
			"gatewayPaymentId": result.PaymentID,
			"invoiceNumber":    fmt.Sprintf("INV-%06d", created.ID),
		})
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finalize payment!", nil)
		}

		if _, err := reg.Startups.Update(c.Context(), startup.ID, map[string]any{
			"status":             models.StartupStatusActive,
			"onboardingComplete": true,
			"nextStep":           "",
		}); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate startup!", nil)
		}

		utils.SendPaymentReceipt(startup.FounderEmail, startup.FounderName, completed.InvoiceNumber, completed.Amount)

		return middleware.JsonResponse(c, fiber.StatusOK, true,
			"Payment completed successfully! Your startup profile is now active.", completed)
	}
}

// GenerateInvoice stamps an invoice number onto a completed payment that is
// missing one.
func GenerateInvoice(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resourceController.ParseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		payment, err := reg.Payments.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up payment!", nil)
		}
		if payment.Status != models.PaymentStatusCompleted {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invoice is only available for completed payments!", nil)
		}
		if payment.InvoiceNumber != "" {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Invoice already generated.", payment)
		}

		updated, err := reg.Payments.Update(c.Context(), id, map[string]any{
			"invoiceNumber": fmt.Sprintf("INV-%06d", payment.ID),
		})
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate invoice!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Invoice generated successfully.", updated)
	}
}

// GuardedPatch updates a payment. Completed payments are immutable except
// for the invoice number.
func GuardedPatch(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resourceController.ParseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		patch := make(map[string]any)
		if err := json.Unmarshal(c.Body(), &patch); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		payment, err := reg.Payments.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up payment!", nil)
		}

		if payment.Status == models.PaymentStatusCompleted {
			for key := range patch {
				if key != "invoiceNumber" {
					return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Completed payments cannot be modified!", nil)
				}
			}
		}

		updated, err := reg.Payments.Update(c.Context(), id, patch)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Record updated!", updated)
	}
}
