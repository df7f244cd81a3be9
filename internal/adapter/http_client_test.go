// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomsggw/gwadmin/internal/config"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/models"
)

// newTestAdapter builds an httpGatewayAdapter pointed at a test server.
func newTestAdapter(t *testing.T, serverURL string) GatewayAdapter {
	t.Helper()
	cfg := config.Gateway{
		BaseURL:        serverURL,
		APIKey:         "testkey",
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewHTTPGatewayAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

// ── ListCarriers ─────────────────────────────────────────────────────────────

func TestListCarriers_Success(t *testing.T) {
	want := []models.Carrier{
		{Name: "telnyx_prod", Type: models.CarrierTelnyx, Active: true, SMSLimit: 600000},
		{Name: "twilio_backup", Type: models.CarrierTwilio},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/carriers", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "apikey", user)
		assert.Equal(t, "testkey", pass)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListCarriers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListCarriers_TrailingSlashBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/carriers", r.URL.Path)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/")
	_, err := a.ListCarriers(context.Background())

	require.NoError(t, err)
}

func TestListCarriers_StructuredError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "database unavailable"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListCarriers(context.Background())

	require.Error(t, err)
	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "database unavailable", apiErr.Message)
}

func TestListCarriers_RawTextErrorFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream maintenance"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListCarriers(context.Background())

	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, "upstream maintenance", apiErr.Message)
}

func TestListCarriers_EmptyErrorBodyUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListCarriers(context.Background())

	apiErr := AsAPIError(err)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestListCarriers_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListCarriers(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── CreateCarrier / reloads ─────────────────────────────────────────────────

func TestCreateCarrier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/carriers", r.URL.Path)

		var got models.Carrier
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "telnyx_prod", got.Name)
		assert.Equal(t, models.CarrierTelnyx, got.Type)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CreateCarrier(context.Background(), models.Carrier{
		Name:     "telnyx_prod",
		Type:     models.CarrierTelnyx,
		Username: "key",
		SMSLimit: models.DefaultSMSLimit,
		MMSLimit: models.DefaultMMSLimit,
	})

	require.NoError(t, err)
}

func TestReloadEndpoints(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, "{}", string(body))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.ReloadCarriers(context.Background()))
	require.NoError(t, a.ReloadClients(context.Background()))

	assert.Equal(t, []string{"/carriers/reload", "/clients/reload"}, paths)
}

// ── Clients ──────────────────────────────────────────────────────────────────

func TestCreateClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/clients", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "tops_zultys", raw["username"])
		// Empty address must be omitted from the payload entirely.
		assert.NotContains(t, raw, "address")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Client{ID: 42, Username: "tops_zultys", Type: models.ClientWeb})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateClient(context.Background(), models.Client{
		Username: "tops_zultys",
		Password: "pw",
		Type:     models.ClientWeb,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestUpdateClientSettings_PartialPayload(t *testing.T) {
	webhook := "https://hooks.example.com/sms"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/clients/7/settings", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, webhook, raw["default_webhook"])
		// Unset fields must not appear in a partial update.
		assert.NotContains(t, raw, "api_format")
		assert.NotContains(t, raw, "webhook_retries")
		assert.NotContains(t, raw, "webhook_timeout_secs")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateClientSettings(context.Background(), 7, models.WebSettingsUpdate{
		DefaultWebhook: &webhook,
	})

	require.NoError(t, err)
}

func TestChangeClientPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/clients/12/password", r.URL.Path)

		var raw map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "NewSecret123", raw["new_password"])
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ChangeClientPassword(context.Background(), 12, "NewSecret123")

	require.NoError(t, err)
}

func TestAddClientNumber_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/clients/3/numbers", r.URL.Path)

		var got models.ClientNumber
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "12025550100", got.Number)
		assert.Equal(t, "telnyx", got.Carrier)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.AddClientNumber(context.Background(), 3, models.ClientNumber{
		Number:  "12025550100",
		Carrier: "telnyx",
	})

	require.NoError(t, err)
}

func TestAddClientNumber_AlreadyExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": "number 12025550100 Already Exists"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.AddClientNumber(context.Background(), 3, models.ClientNumber{
		Number:  "12025550100",
		Carrier: "telnyx",
	})

	require.Error(t, err)
	assert.True(t, IsAlreadyExists(err))
}

// ── Error helpers ────────────────────────────────────────────────────────────

func TestIsAlreadyExists_NonAPIError(t *testing.T) {
	assert.False(t, IsAlreadyExists(errors.New("already exists")))
	assert.False(t, IsAlreadyExists(nil))
}

func TestNewHTTPGatewayAdapter_RequiresBaseURL(t *testing.T) {
	_, err := NewHTTPGatewayAdapter(config.Gateway{}, logger.Nop())
	require.Error(t, err)
}
