package kycController

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupos/models"
	"startupos/store"
	kycValidator "startupos/validators/kyc"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *store.Registry) {
	t.Helper()

	reg := store.NewMemoryRegistry(0)
	_, err := reg.Startups.Create(context.Background(), &models.Startup{
		FounderName:  "Asha Verma",
		FounderEmail: "",
		BusinessName: "Verma Textiles",
		BusinessType: models.BusinessTypeManufacturing,
		Status:       models.StartupStatusPending,
		NextStep:     models.NextStepKYC,
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/kyc", kycValidator.Submit(), Submit(reg))
	app.Post("/kyc/:id/review", kycValidator.Review(), Review(reg))
	return app, reg
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func validDocuments() map[string]any {
	doc := func(name, ct string) map[string]any {
		return map[string]any{"fileName": name, "size": 120000, "contentType": ct}
	}
	return map[string]any{
		"panCard":      doc("pan.pdf", "application/pdf"),
		"aadhaarCard":  doc("aadhaar.pdf", "application/pdf"),
		"addressProof": doc("address.pdf", "application/pdf"),
		"founderPhoto": doc("photo.jpg", "image/jpeg"),
	}
}

func validSubmission() map[string]any {
	return map[string]any{
		"startupId":       1,
		"panNumber":       "ABCDE1234F",
		"aadhaarNumber":   "123456789012",
		"businessAddress": "Plot 42, Industrial Estate",
		"businessCity":    "Bhubaneswar",
		"businessState":   "Odisha",
		"businessPincode": "751010",
		"documents":       validDocuments(),
	}
}

func TestSubmitCreatesPendingSubmission(t *testing.T) {
	app, reg := newTestApp(t)

	status, env := postJSON(t, app, "/kyc", validSubmission())
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Status)

	var created models.KYCSubmission
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.KYCStatusPending, created.Status)
	assert.NotNil(t, created.SubmissionDate)

	all, err := reg.KYC.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSubmitRejectsBadPANFormat(t *testing.T) {
	app, _ := newTestApp(t)

	body := validSubmission()
	body["panNumber"] = "1234ABCDE"

	status, env := postJSON(t, app, "/kyc", body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "panNumber")
}

func TestSubmitRejectsShortAadhaar(t *testing.T) {
	app, _ := newTestApp(t)

	body := validSubmission()
	body["aadhaarNumber"] = "12345"

	status, env := postJSON(t, app, "/kyc", body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "aadhaarNumber")
}

func TestSubmitRejectsMissingRequiredDocument(t *testing.T) {
	app, _ := newTestApp(t)

	body := validSubmission()
	docs := validDocuments()
	delete(docs, "founderPhoto")
	body["documents"] = docs

	status, env := postJSON(t, app, "/kyc", body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "founderPhoto")
}

func TestSubmitRejectsOversizedDocument(t *testing.T) {
	app, _ := newTestApp(t)

	body := validSubmission()
	docs := validDocuments()
	docs["panCard"] = map[string]any{"fileName": "pan.pdf", "size": 6 * 1024 * 1024, "contentType": "application/pdf"}
	body["documents"] = docs

	status, env := postJSON(t, app, "/kyc", body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "panCard")
}

func TestSubmitRejectsDisallowedFileType(t *testing.T) {
	app, _ := newTestApp(t)

	body := validSubmission()
	docs := validDocuments()
	docs["addressProof"] = map[string]any{"fileName": "proof.exe", "size": 1000, "contentType": "application/octet-stream"}
	body["documents"] = docs

	status, env := postJSON(t, app, "/kyc", body)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "addressProof")
}

func TestSubmitUnknownStartupReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	body := validSubmission()
	body["startupId"] = 99

	status, _ := postJSON(t, app, "/kyc", body)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReviewApprovalAdvancesStartupToPayment(t *testing.T) {
	app, reg := newTestApp(t)

	status, _ := postJSON(t, app, "/kyc", validSubmission())
	require.Equal(t, http.StatusCreated, status)

	status, env := postJSON(t, app, "/kyc/1/review", map[string]any{
		"status":     models.KYCStatusApproved,
		"reviewerId": 7,
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Status)

	var reviewed models.KYCSubmission
	require.NoError(t, json.Unmarshal(env.Data, &reviewed))
	assert.Equal(t, models.KYCStatusApproved, reviewed.Status)
	assert.NotNil(t, reviewed.ReviewDate)

	startup, err := reg.Startups.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.NextStepPayment, startup.NextStep)
}

func TestReviewRejectionKeepsStartupOnKYC(t *testing.T) {
	app, reg := newTestApp(t)

	status, _ := postJSON(t, app, "/kyc", validSubmission())
	require.Equal(t, http.StatusCreated, status)

	status, _ = postJSON(t, app, "/kyc/1/review", map[string]any{
		"status":         models.KYCStatusRejected,
		"reviewComments": "Aadhaar scan unreadable.",
		"reviewerId":     7,
	})
	require.Equal(t, http.StatusOK, status)

	startup, err := reg.Startups.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.NextStepKYC, startup.NextStep)
}

func TestReviewRejectsInvalidStatus(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := postJSON(t, app, "/kyc", validSubmission())
	require.Equal(t, http.StatusCreated, status)

	status, _ = postJSON(t, app, "/kyc/1/review", map[string]any{
		"status":     "maybe",
		"reviewerId": 7,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}
