package kycController

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"startupos/middleware"
	"startupos/models"
	"startupos/store"
	"startupos/utils"
	kycValidator "startupos/validators/kyc"

	resourceController "startupos/controllers/resource"
)

// Submit records a validated KYC submission for an existing startup.
func Submit(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData, ok := c.Locals("validatedKYC").(*kycValidator.SubmitRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Validation data missing!", nil)
		}

		if _, err := reg.Startups.GetByID(c.Context(), reqData.StartupID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Startup not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to look up startup!", nil)
		}

		now := time.Now()
		submission := &models.KYCSubmission{
			StartupID:       reqData.StartupID,
			PANNumber:       reqData.PANNumber,
			AadhaarNumber:   reqData.AadhaarNumber,
			BusinessAddress: reqData.BusinessAddress,
			BusinessCity:    reqData.BusinessCity,
			BusinessState:   reqData.BusinessState,
			BusinessPincode: reqData.BusinessPincode,
			Documents:       datatypes.NewJSONType(reqData.Documents),
			Status:          models.KYCStatusPending,
			SubmissionDate:  &now,
		}

		created, err := reg.KYC.Create(c.Context(), submission)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save KYC submission!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true,
			"KYC documents submitted successfully! We will review and update you within 2-3 business days.", created)
	}
}

// Review applies a reviewer decision. Approval advances the startup to the
// payment step.
func Review(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := resourceController.ParseID(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		reqData, ok := c.Locals("validatedReview").(*kycValidator.ReviewRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Validation data missing!", nil)
		}

		now := time.Now()
		updated, err := reg.KYC.Update(c.Context(), id, map[string]any{
			"status":         reqData.Status,
			"reviewDate":     now.Format(time.RFC3339),
			"reviewComments": reqData.ReviewComments,
			"reviewerId":     reqData.ReviewerID,
		})
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusNotFound, false, "KYC submission not found!", nil)
			}
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update KYC submission!", nil)
		}

		if reqData.Status == models.KYCStatusApproved {
			if _, err := reg.Startups.Update(c.Context(), updated.StartupID, map[string]any{
				"nextStep": models.NextStepPayment,
			}); err != nil && !errors.Is(err, store.ErrNotFound) {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update startup!", nil)
			}
		}

		if startup, err := reg.Startups.GetByID(c.Context(), updated.StartupID); err == nil {
			utils.SendKYCDecision(startup.FounderEmail, startup.FounderName, reqData.Status, reqData.ReviewComments)
		}

		message := "KYC rejected. Founder has been notified."
		if reqData.Status == models.KYCStatusApproved {
			message = "KYC approved! Startup can proceed to payment."
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, message, updated)
	}
}
