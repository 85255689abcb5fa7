package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupos/models"
	"startupos/store"
)

func completeForm() Form {
	return Form{
		FounderName:           "Asha Verma",
		FounderEmail:          "asha@example.com",
		FounderPhone:          "+91 9800011122",
		BusinessName:          "Verma Textiles",
		BusinessType:          models.BusinessTypeManufacturing,
		BusinessIdea:          "Sustainable cotton apparel.",
		ComplianceConsent:     true,
		DataProcessingConsent: true,
	}
}

func TestSessionStartsAtPersonalStep(t *testing.T) {
	s := NewSession("sess-1", Policy{})
	assert.Equal(t, StepPersonal, s.Step)
}

func TestNextWalksAllStepsAndStopsAtConsent(t *testing.T) {
	s := NewSession("sess-1", Policy{})

	require.NoError(t, s.Next())
	assert.Equal(t, StepBusiness, s.Step)
	require.NoError(t, s.Next())
	assert.Equal(t, StepPreferences, s.Step)
	require.NoError(t, s.Next())
	assert.Equal(t, StepConsent, s.Step)

	// Advancing past the last step stays put.
	require.NoError(t, s.Next())
	assert.Equal(t, StepConsent, s.Step)
}

func TestPreviousStopsAtPersonal(t *testing.T) {
	s := NewSession("sess-1", Policy{})
	require.NoError(t, s.Next())

	s.Previous()
	assert.Equal(t, StepPersonal, s.Step)
	s.Previous()
	assert.Equal(t, StepPersonal, s.Step)
}

func TestNextWithoutPerStepValidationAllowsEmptyForm(t *testing.T) {
	s := NewSession("sess-1", Policy{ValidateEachStep: false})
	assert.NoError(t, s.Next())
	assert.Equal(t, StepBusiness, s.Step)
}

func TestNextWithPerStepValidationBlocksIncompleteStep(t *testing.T) {
	s := NewSession("sess-1", Policy{ValidateEachStep: true})

	err := s.Next()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "founderName")
	assert.Contains(t, verr.Fields, "founderEmail")
	assert.Equal(t, StepPersonal, s.Step)

	s.Form.FounderName = "Asha Verma"
	s.Form.FounderEmail = "asha@example.com"
	s.Form.FounderPhone = "+91 9800011122"
	require.NoError(t, s.Next())
	assert.Equal(t, StepBusiness, s.Step)
}

func TestSubmitCreatesPendingStartup(t *testing.T) {
	startups := store.NewMemory[models.Startup, *models.Startup](0)
	s := NewSession("sess-1", Policy{})
	s.Form = completeForm()

	created, err := s.Submit(context.Background(), startups)
	require.NoError(t, err)

	assert.Equal(t, models.StartupStatusPending, created.Status)
	assert.False(t, created.OnboardingComplete)
	assert.Equal(t, models.NextStepKYC, created.NextStep)
	assert.NotNil(t, created.RegistrationDate)
	assert.Equal(t, "Verma Textiles", created.BusinessName)

	all, err := startups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitWithoutConsentCreatesNothing(t *testing.T) {
	startups := store.NewMemory[models.Startup, *models.Startup](0)
	s := NewSession("sess-1", Policy{})
	s.Form = completeForm()
	s.Form.ComplianceConsent = false

	_, err := s.Submit(context.Background(), startups)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "complianceConsent")

	all, err := startups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubmitRequiresCoreFields(t *testing.T) {
	startups := store.NewMemory[models.Startup, *models.Startup](0)
	s := NewSession("sess-1", Policy{})

	_, err := s.Submit(context.Background(), startups)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "founderName")
	assert.Contains(t, verr.Fields, "businessName")
	assert.Contains(t, verr.Fields, "businessType")
	assert.Contains(t, verr.Fields, "dataProcessingConsent")
}
