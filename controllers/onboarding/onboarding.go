package onboardingController

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"startupos/config"
	"startupos/middleware"
	"startupos/store"
	"startupos/utils"
	"startupos/wizard"
)

// Wizard sessions are ephemeral client state, so they live in-process and
// die with it. Keyed by an opaque uuid handed to the client.
var (
	sessionsMu sync.Mutex
	sessions   = make(map[string]*wizard.Session)
)

func sessionView(s *wizard.Session) fiber.Map {
	return fiber.Map{
		"sessionId": s.ID,
		"step":      int(s.Step),
		"stepName":  s.Step.String(),
		"form":      s.Form,
	}
}

func lookup(c *fiber.Ctx) (*wizard.Session, bool) {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()
	s, ok := sessions[c.Params("id")]
	return s, ok
}

// StartSession opens a new wizard at the personal-information step.
func StartSession(c *fiber.Ctx) error {
	policy := wizard.Policy{}
	if config.AppConfig != nil {
		policy.ValidateEachStep = config.AppConfig.WizardStepValidation
	}
	s := wizard.NewSession(uuid.NewString(), policy)

	sessionsMu.Lock()
	sessions[s.ID] = s
	sessionsMu.Unlock()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Onboarding started!", sessionView(s))
}

// GetSession returns the current step and accumulated form data.
func GetSession(c *fiber.Ctx) error {
	s, ok := lookup(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding session not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched!", sessionView(s))
}

// PatchSession merges the submitted fields into the form record. Only keys
// present in the body change.
func PatchSession(c *fiber.Ctx) error {
	s, ok := lookup(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding session not found!", nil)
	}

	sessionsMu.Lock()
	err := json.Unmarshal(c.Body(), &s.Form)
	sessionsMu.Unlock()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Form updated!", sessionView(s))
}

// NextStep advances the wizard one step.
func NextStep(c *fiber.Ctx) error {
	s, ok := lookup(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding session not found!", nil)
	}

	sessionsMu.Lock()
	err := s.Next()
	sessionsMu.Unlock()

	var vErr *wizard.ValidationError
	if errors.As(err, &vErr) {
		return middleware.ValidationErrorResponse(c, vErr.Fields)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step advanced!", sessionView(s))
}

// PreviousStep moves the wizard one step back.
func PreviousStep(c *fiber.Ctx) error {
	s, ok := lookup(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding session not found!", nil)
	}

	sessionsMu.Lock()
	s.Previous()
	sessionsMu.Unlock()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step moved back!", sessionView(s))
}

// Submit validates the full form, creates the startup record, and closes
// the session. On validation or service failure the session survives so
// the founder can retry.
func Submit(reg *store.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, ok := lookup(c)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Onboarding session not found!", nil)
		}

		created, err := s.Submit(c.Context(), reg.Startups)
		var vErr *wizard.ValidationError
		if errors.As(err, &vErr) {
			return middleware.ValidationErrorResponse(c, vErr.Fields)
		}
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit registration. Please try again.", nil)
		}

		sessionsMu.Lock()
		delete(sessions, s.ID)
		sessionsMu.Unlock()

		utils.SendOnboardingReceived(created.FounderEmail, created.FounderName, created.BusinessName)

		return middleware.JsonResponse(c, fiber.StatusCreated, true,
			"Registration submitted successfully! Proceed to KYC verification.", fiber.Map{
				"startup":   created,
				"nextRoute": "/kyc-center",
			})
	}
}
