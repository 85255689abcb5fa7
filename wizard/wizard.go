// Package wizard models the onboarding flow as an explicit state machine:
// four named steps, a linear transition table, and validation that runs
// per step (when the policy asks for it) and always at final submit.
package wizard

import (
	"context"
	"fmt"
	"time"

	"startupos/models"
	"startupos/store"
)

// Step is a named wizard state.
type Step int

const (
	StepPersonal Step = iota + 1
	StepBusiness
	StepPreferences
	StepConsent
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepBusiness:
		return "business"
	case StepPreferences:
		return "preferences"
	case StepConsent:
		return "consent"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// forward and backward are the transition tables. Steps with no entry are
// terminal in that direction: Next on the consent step and Previous on the
// personal step are no-ops.
var forward = map[Step]Step{
	StepPersonal:    StepBusiness,
	StepBusiness:    StepPreferences,
	StepPreferences: StepConsent,
}

var backward = map[Step]Step{
	StepBusiness:    StepPersonal,
	StepPreferences: StepBusiness,
	StepConsent:     StepPreferences,
}

// Policy configures step gating. The portal historically allowed moving
// through steps with incomplete fields and validated only at submit, so
// per-step validation is off unless switched on.
type Policy struct {
	ValidateEachStep bool
}

// Form is the single mutable record accumulated across all four steps.
type Form struct {
	FounderName       string `json:"founderName"`
	FounderEmail      string `json:"founderEmail"`
	FounderPhone      string `json:"founderPhone"`
	FounderExperience string `json:"founderExperience"`

	BusinessName     string `json:"businessName"`
	BusinessType     string `json:"businessType"`
	BusinessIdea     string `json:"businessIdea"`
	BusinessStage    string `json:"businessStage"`
	BusinessLocation string `json:"businessLocation"`

	PitchDeckRequired  bool `json:"pitchDeckRequired"`
	MentorshipRequired bool `json:"mentorshipRequired"`
	FundingRequired    bool `json:"fundingRequired"`

	ComplianceConsent     bool `json:"complianceConsent"`
	DataProcessingConsent bool `json:"dataProcessingConsent"`
}

// ValidationError carries per-field messages for a rejected transition or
// submit. No record is created when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Session is one founder's wizard in progress.
type Session struct {
	ID     string `json:"sessionId"`
	Step   Step   `json:"step"`
	Form   Form   `json:"form"`
	Policy Policy `json:"-"`
}

// NewSession starts a wizard at the personal step with an empty form.
func NewSession(id string, policy Policy) *Session {
	return &Session{ID: id, Step: StepPersonal, Policy: policy}
}

// Next advances one step. At the last step it stays put. With per-step
// validation enabled the current step must be complete first.
func (s *Session) Next() error {
	if s.Policy.ValidateEachStep {
		if errs := s.validateStep(s.Step); len(errs) > 0 {
			return &ValidationError{Fields: errs}
		}
	}
	if next, ok := forward[s.Step]; ok {
		s.Step = next
	}
	return nil
}

// Previous moves one step back, staying put at the first step.
func (s *Session) Previous() {
	if prev, ok := backward[s.Step]; ok {
		s.Step = prev
	}
}

func (s *Session) validateStep(step Step) map[string]string {
	errs := make(map[string]string)
	switch step {
	case StepPersonal:
		if s.Form.FounderName == "" {
			errs["founderName"] = "Founder name is required!"
		}
		if s.Form.FounderEmail == "" {
			errs["founderEmail"] = "Email address is required!"
		}
		if s.Form.FounderPhone == "" {
			errs["founderPhone"] = "Phone number is required!"
		}
	case StepBusiness:
		if s.Form.BusinessName == "" {
			errs["businessName"] = "Business name is required!"
		}
		if s.Form.BusinessType == "" {
			errs["businessType"] = "Business type is required!"
		}
	case StepConsent:
		if !s.Form.ComplianceConsent {
			errs["complianceConsent"] = "Compliance consent is required!"
		}
		if !s.Form.DataProcessingConsent {
			errs["dataProcessingConsent"] = "Data processing consent is required!"
		}
	}
	return errs
}

// validateSubmit checks the four required top-level fields and both
// consent flags, regardless of policy.
func (s *Session) validateSubmit() map[string]string {
	errs := make(map[string]string)
	if s.Form.FounderName == "" {
		errs["founderName"] = "Founder name is required!"
	}
	if s.Form.FounderEmail == "" {
		errs["founderEmail"] = "Email address is required!"
	}
	if s.Form.BusinessName == "" {
		errs["businessName"] = "Business name is required!"
	}
	if s.Form.BusinessType == "" {
		errs["businessType"] = "Business type is required!"
	}
	if !s.Form.ComplianceConsent {
		errs["complianceConsent"] = "Compliance consent is required!"
	}
	if !s.Form.DataProcessingConsent {
		errs["dataProcessingConsent"] = "Data processing consent is required!"
	}
	return errs
}

// Submit validates the full form and creates the startup record: status
// pending, onboarding incomplete, next stop the KYC center. The session is
// left untouched on any failure so the founder can retry.
func (s *Session) Submit(ctx context.Context, startups store.Collection[*models.Startup]) (*models.Startup, error) {
	if errs := s.validateSubmit(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	now := time.Now().UTC()
	rec := &models.Startup{
		FounderName:       s.Form.FounderName,
		FounderEmail:      s.Form.FounderEmail,
		FounderPhone:      s.Form.FounderPhone,
		FounderExperience: s.Form.FounderExperience,

		BusinessName:     s.Form.BusinessName,
		BusinessType:     s.Form.BusinessType,
		BusinessIdea:     s.Form.BusinessIdea,
		BusinessStage:    s.Form.BusinessStage,
		BusinessLocation: s.Form.BusinessLocation,

		PitchDeckRequired:  s.Form.PitchDeckRequired,
		MentorshipRequired: s.Form.MentorshipRequired,
		FundingRequired:    s.Form.FundingRequired,

		ComplianceConsent:     s.Form.ComplianceConsent,
		DataProcessingConsent: s.Form.DataProcessingConsent,

		Status:             models.StartupStatusPending,
		OnboardingComplete: false,
		RegistrationDate:   &now,
		NextStep:           models.NextStepKYC,
	}

	created, err := startups.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("submit onboarding: %w", err)
	}
	return created, nil
}
