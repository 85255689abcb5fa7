package kycValidator

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"startupos/middleware"
	"startupos/models"
)

var (
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarRe = regexp.MustCompile(`^[0-9]{12}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("pan", func(fl validator.FieldLevel) bool {
		return panRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("aadhaar", func(fl validator.FieldLevel) bool {
		return aadhaarRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRe.MatchString(fl.Field().String())
	})
	return v
}

// SubmitRequest is the KYC submission body.
type SubmitRequest struct {
	StartupID       uint                             `json:"startupId" validate:"required"`
	PANNumber       string                           `json:"panNumber" validate:"required,pan"`
	AadhaarNumber   string                           `json:"aadhaarNumber" validate:"required,aadhaar"`
	BusinessAddress string                           `json:"businessAddress" validate:"required"`
	BusinessCity    string                           `json:"businessCity"`
	BusinessState   string                           `json:"businessState"`
	BusinessPincode string                           `json:"businessPincode" validate:"omitempty,pincode"`
	Documents       map[string]models.DocumentUpload `json:"documents"`
}

var slotLabels = map[string]string{
	models.DocumentSlotPANCard:      "PAN Card",
	models.DocumentSlotAadhaarCard:  "Aadhaar Card",
	models.DocumentSlotAddressProof: "Address Proof",
	models.DocumentSlotFounderPhoto: "Founder Photo",
	models.DocumentSlotBusinessPlan: "Business Plan",
}

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

func fieldMessage(fe validator.FieldError) (string, string) {
	switch fe.Field() {
	case "StartupID":
		return "startupId", "Startup ID is required!"
	case "PANNumber":
		if fe.Tag() == "required" {
			return "panNumber", "PAN number is required!"
		}
		return "panNumber", "PAN number format is invalid!"
	case "AadhaarNumber":
		if fe.Tag() == "required" {
			return "aadhaarNumber", "Aadhaar number is required!"
		}
		return "aadhaarNumber", "Aadhaar number must be 12 digits!"
	case "BusinessAddress":
		return "businessAddress", "Business address is required!"
	case "BusinessPincode":
		return "businessPincode", "Pincode must be 6 digits!"
	default:
		return fe.Field(), "Invalid value!"
	}
}

// Submit validates the KYC submission: identity-number formats, required
// document slots, the 5MB size ceiling and the file-type allowlist.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errs := make(map[string]string)

		if err := validate.Struct(reqData); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				for _, fe := range verrs {
					field, msg := fieldMessage(fe)
					errs[field] = msg
				}
			}
		}

		for _, slot := range models.RequiredDocumentSlots {
			if _, ok := reqData.Documents[slot]; !ok {
				errs[slot] = slotLabels[slot] + " is required!"
			}
		}
		for slot, doc := range reqData.Documents {
			if doc.Size > models.MaxDocumentSize {
				errs[slot] = "File size must be less than 5MB!"
				continue
			}
			if !allowedContentTypes[doc.ContentType] {
				errs[slot] = "Only JPEG, PNG, and PDF files are allowed!"
			}
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedKYC", reqData)
		return c.Next()
	}
}

// ReviewRequest is the reviewer decision body.
type ReviewRequest struct {
	Status         string `json:"status"`
	ReviewComments string `json:"reviewComments"`
	ReviewerID     uint   `json:"reviewerId"`
}

// Review validates a reviewer decision.
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errs := make(map[string]string)
		if reqData.Status != models.KYCStatusApproved && reqData.Status != models.KYCStatusRejected {
			errs["status"] = "Status must be approved or rejected!"
		}
		if reqData.ReviewerID == 0 {
			errs["reviewerId"] = "Reviewer ID is required!"
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
