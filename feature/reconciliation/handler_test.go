package reconciliation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"finledger/core/reconcile"
	"finledger/feature/reconciliation/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *fixture) {
	t.Helper()
	f := setupService(t)
	app := fiber.New()
	feature := NewFeature(f.svc)
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))
	return app, f
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandleReconcileHoldings(t *testing.T) {
	app, _ := setupApp(t)

	status, body := postJSON(t, app, "/reconciliation/holdings",
		`{"asset_class":"MUTUAL_FUND","golden_ref_id":"ref-nsdl"}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	summary := raw["summary"].(map[string]any)
	assert.Equal(t, float64(5), summary["total_items"])
	assert.Equal(t, float64(20), summary["match_rate"])
	assert.Equal(t, true, raw["source_authoritative"])

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{`, fiber.StatusBadRequest},
		{"missing ref", `{"asset_class":"MUTUAL_FUND"}`, fiber.StatusBadRequest},
		{"unknown class", `{"asset_class":"CRYPTO","golden_ref_id":"ref-nsdl"}`, fiber.StatusBadRequest},
		{"bad date", `{"asset_class":"MUTUAL_FUND","golden_ref_id":"ref-nsdl","as_of_date":"31/03/2024"}`, fiber.StatusBadRequest},
		{"unknown ref", `{"asset_class":"MUTUAL_FUND","golden_ref_id":"nope"}`, fiber.StatusNotFound},
		{"disabled class", `{"asset_class":"BOND","golden_ref_id":"ref-nsdl"}`, fiber.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postJSON(t, app, "/reconciliation/holdings", tt.body)
			assert.Equal(t, tt.status, status, string(body))
		})
	}
}

func TestHandleReconcileReference(t *testing.T) {
	app, _ := setupApp(t)

	status, body := postJSON(t, app, "/reconciliation/references/ref-nsdl", "")
	require.Equal(t, fiber.StatusOK, status, string(body))

	var summaries []RunSummary
	require.NoError(t, json.Unmarshal(body, &summaries))
	assert.Len(t, summaries, 2)

	status, _ = postJSON(t, app, "/reconciliation/references/nope", `{"as_of_date":"2024-03-31"}`)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestHandleEventsAndSummary(t *testing.T) {
	app, _ := setupApp(t)
	status, _ := postJSON(t, app, "/reconciliation/holdings", `{"asset_class":"MUTUAL_FUND","golden_ref_id":"ref-nsdl"}`)
	require.Equal(t, fiber.StatusOK, status)

	query := "user_id=u-1&date=2024-03-31&asset_class=MUTUAL_FUND&golden_ref_id=ref-nsdl"

	resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/events?"+query, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var events []models.Event
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
	assert.Len(t, events, 6)

	resp, err = app.Test(httptest.NewRequest("GET", "/reconciliation/summary?"+query, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/reconciliation/summary?user_id=u-1&date=2024-04-01&asset_class=MUTUAL_FUND&golden_ref_id=ref-nsdl", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	for _, q := range []string{
		"user_id=u-1&date=2024-03-31&asset_class=MUTUAL_FUND",
		"user_id=u-1&date=yesterday&asset_class=MUTUAL_FUND&golden_ref_id=ref-nsdl",
		"user_id=u-1&date=2024-03-31&asset_class=GOLDEN&golden_ref_id=ref-nsdl",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/reconciliation/events?"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestHandleResolveEvent(t *testing.T) {
	app, f := setupApp(t)
	status, _ := postJSON(t, app, "/reconciliation/holdings", `{"asset_class":"MUTUAL_FUND","golden_ref_id":"ref-nsdl"}`)
	require.Equal(t, fiber.StatusOK, status)

	target := f.eventFor(t, "ISIN:INF003")
	path := fmt.Sprintf("/reconciliation/events/%d/resolve", target.ID)

	status, _ = postJSON(t, app, path, `{"notes":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := postJSON(t, app, path, `{"notes":"units redeemed","resolved_by":"ops"}`)
	require.Equal(t, fiber.StatusOK, status, string(body))
	var event models.Event
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, reconcile.StatusResolved, event.Status)
	assert.Equal(t, "ops", event.ResolvedBy)

	status, _ = postJSON(t, app, path, `{"notes":"again"}`)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = postJSON(t, app, "/reconciliation/events/424242/resolve", `{"notes":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = postJSON(t, app, "/reconciliation/events/abc/resolve", `{"notes":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
