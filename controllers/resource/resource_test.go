package resourceController

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startupos/models"
	"startupos/store"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() (*fiber.App, store.Collection[*models.Lead]) {
	app := fiber.New()
	col := store.NewMemory[models.Lead, *models.Lead](0)
	Register[models.Lead](app.Group("/leads"), col)
	return app, col
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCreateAndGetRoundtrip(t *testing.T) {
	app, _ := newTestApp()

	status, env := doRequest(t, app, http.MethodPost, "/leads/", map[string]any{
		"name":    "Suresh Nair",
		"company": "GreenMart Stores",
		"value":   120000,
		"status":  "new",
	})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, env.Status)

	var created models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, uint(1), created.ID)

	status, env = doRequest(t, app, http.MethodGet, "/leads/1", nil)
	require.Equal(t, http.StatusOK, status)

	var fetched models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Suresh Nair", fetched.Name)
	assert.Equal(t, 120000.0, fetched.Value)
}

func TestListReturnsAllRecords(t *testing.T) {
	app, _ := newTestApp()

	for _, name := range []string{"A", "B", "C"} {
		status, _ := doRequest(t, app, http.MethodPost, "/leads/", map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := doRequest(t, app, http.MethodGet, "/leads/", nil)
	require.Equal(t, http.StatusOK, status)

	var leads []models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &leads))
	assert.Len(t, leads, 3)
}

func TestPatchMergesOnlyProvidedFields(t *testing.T) {
	app, _ := newTestApp()

	status, _ := doRequest(t, app, http.MethodPost, "/leads/", map[string]any{
		"name":    "Anita Das",
		"company": "FreshDaily Supply",
		"status":  "new",
	})
	require.Equal(t, http.StatusCreated, status)

	status, env := doRequest(t, app, http.MethodPatch, "/leads/1", map[string]any{
		"status": "qualified",
	})
	require.Equal(t, http.StatusOK, status)

	var updated models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "qualified", updated.Status)
	assert.Equal(t, "Anita Das", updated.Name)
	assert.Equal(t, "FreshDaily Supply", updated.Company)
}

func TestGetUnknownIDReturns404(t *testing.T) {
	app, _ := newTestApp()

	status, env := doRequest(t, app, http.MethodGet, "/leads/42", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Status)
}

func TestGetMalformedIDReturns400(t *testing.T) {
	app, _ := newTestApp()

	status, env := doRequest(t, app, http.MethodGet, "/leads/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Status)
}

func TestDeleteReturnsRemovedRecord(t *testing.T) {
	app, _ := newTestApp()

	status, _ := doRequest(t, app, http.MethodPost, "/leads/", map[string]any{"name": "Gone Soon"})
	require.Equal(t, http.StatusCreated, status)

	status, env := doRequest(t, app, http.MethodDelete, "/leads/1", nil)
	require.Equal(t, http.StatusOK, status)

	var removed models.Lead
	require.NoError(t, json.Unmarshal(env.Data, &removed))
	assert.Equal(t, "Gone Soon", removed.Name)

	status, _ = doRequest(t, app, http.MethodGet, "/leads/1", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
