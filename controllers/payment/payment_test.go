package paymentController

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

	"startupos/gateway"
	"startupos/models"
	"startupos/store"
	paymentValidator "startupos/validators/payment"
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
		BusinessName: "Verma Textiles",
		BusinessType: models.BusinessTypeManufacturing,
		Status:       models.StartupStatusPending,
		NextStep:     models.NextStepPayment,
	})
	require.NoError(t, err)

	gw := &gateway.Simulator{Delay: 0}

	app := fiber.New()
	app.Post("/payments/checkout", paymentValidator.Checkout(), Checkout(reg, gw))
	app.Post("/payments/:id/invoice", GenerateInvoice(reg))
	app.Patch("/payments/:id", GuardedPatch(reg))
	return app, reg
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCheckoutCompletesPaymentAndActivatesStartup(t *testing.T) {
	app, reg := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/payments/checkout", map[string]any{
		"startupId": 1,
		"method":    models.PaymentMethodUPI,
	}, nil)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Status)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payment))
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, 6000.0, payment.Amount)
	assert.Equal(t, payment.Amount, payment.Breakdown.Total())
	assert.NotEmpty(t, payment.TransactionID)
	assert.NotEmpty(t, payment.GatewayOrderID)
	assert.NotEmpty(t, payment.GatewayPaymentID)
	assert.Regexp(t, `^INV-\d{6}$`, payment.InvoiceNumber)
	assert.NotNil(t, payment.PaymentDate)

	startup, err := reg.Startups.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StartupStatusActive, startup.Status)
	assert.True(t, startup.OnboardingComplete)
	assert.Empty(t, startup.NextStep)
}

func TestCheckoutFeeBreakdownComponents(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := doJSON(t, app, http.MethodPost, "/payments/checkout", map[string]any{
		"startupId": 1,
		"method":    models.PaymentMethodCard,
	}, nil)

	var payment models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &payment))
	assert.Equal(t, 4000.0, payment.Breakdown.PlatformRegistration)
	assert.Equal(t, 1000.0, payment.Breakdown.KYCVerification)
	assert.Equal(t, 500.0, payment.Breakdown.ComplianceSetup)
	assert.Equal(t, 500.0, payment.Breakdown.ServiceTax)
}

func TestCheckoutIdempotencyKeyReplaysOriginalPayment(t *testing.T) {
	app, reg := newTestApp(t)
	headers := map[string]string{"Idempotency-Key": "key-123"}
	body := map[string]any{"startupId": 1, "method": models.PaymentMethodUPI}

	status, env := doJSON(t, app, http.MethodPost, "/payments/checkout", body, headers)
	require.Equal(t, http.StatusOK, status)
	var first models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &first))

	status, env = doJSON(t, app, http.MethodPost, "/payments/checkout", body, headers)
	require.Equal(t, http.StatusOK, status)
	var replay models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &replay))

	assert.Equal(t, first.ID, replay.ID)
	assert.Equal(t, "Payment already processed.", env.Message)

	all, err := reg.Payments.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCheckoutUnknownStartupReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", map[string]any{
		"startupId": 99,
		"method":    models.PaymentMethodUPI,
	}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCheckoutRejectsUnsupportedMethod(t *testing.T) {
	app, _ := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/payments/checkout", map[string]any{
		"startupId": 1,
		"method":    "cheque",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "method")
}

func TestGuardedPatchBlocksCompletedPayment(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", map[string]any{
		"startupId": 1,
		"method":    models.PaymentMethodUPI,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodPatch, "/payments/1", map[string]any{
		"amount": 1,
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Completed payments cannot be modified!", env.Message)
}

func TestGuardedPatchAllowsInvoiceNumberOnCompleted(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/payments/checkout", map[string]any{
		"startupId": 1,
		"method":    models.PaymentMethodUPI,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	status, env := doJSON(t, app, http.MethodPatch, "/payments/1", map[string]any{
		"invoiceNumber": "INV-900001",
	}, nil)
	require.Equal(t, http.StatusOK, status)

	var updated models.Payment
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "INV-900001", updated.InvoiceNumber)
}

func TestGenerateInvoiceRequiresCompletedPayment(t *testing.T) {
	app, reg := newTestApp(t)

	_, err := reg.Payments.Create(context.Background(), &models.Payment{
		StartupID: 1,
		Amount:    6000,
		Method:    models.PaymentMethodUPI,
		Status:    models.PaymentStatusPending,
	})
	require.NoError(t, err)

	status, _ := doJSON(t, app, http.MethodPost, "/payments/1/invoice", map[string]any{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}
