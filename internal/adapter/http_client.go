package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gomsggw/gwadmin/internal/config"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/models"
)

// basicAuthUser is the fixed Basic-auth username the gateway expects; the
// operator's API key goes in the password slot.
const basicAuthUser = "apikey"

const defaultTimeout = 15 * time.Second

type httpGatewayAdapter struct {
	client *resty.Client
	log    *logger.Logger
}

// NewHTTPGatewayAdapter builds a GatewayAdapter over the gateway's HTTP
// JSON API. The base URL is taken as-is apart from trailing-slash
// stripping; a non-positive timeout falls back to 15 seconds.
func NewHTTPGatewayAdapter(cfg config.Gateway, log *logger.Logger) (GatewayAdapter, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway adapter: base URL is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetBasicAuth(basicAuthUser, cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &httpGatewayAdapter{client: cli, log: log}, nil
}

func (h *httpGatewayAdapter) ListCarriers(ctx context.Context) ([]models.Carrier, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/carriers")
	if err != nil {
		return nil, fmt.Errorf("%w: list carriers: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var carriers []models.Carrier
	if err = json.Unmarshal(resp.Body(), &carriers); err != nil {
		return nil, fmt.Errorf("list carriers decode: %w", err)
	}
	return carriers, nil
}

func (h *httpGatewayAdapter) CreateCarrier(ctx context.Context, carrier models.Carrier) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(carrier).
		Post("/carriers")
	if err != nil {
		return fmt.Errorf("%w: create carrier: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGatewayAdapter) ReloadCarriers(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]any{}).
		Post("/carriers/reload")
	if err != nil {
		return fmt.Errorf("%w: reload carriers: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGatewayAdapter) ListClients(ctx context.Context) ([]models.Client, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/clients")
	if err != nil {
		return nil, fmt.Errorf("%w: list clients: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var clients []models.Client
	if err = json.Unmarshal(resp.Body(), &clients); err != nil {
		return nil, fmt.Errorf("list clients decode: %w", err)
	}
	return clients, nil
}

func (h *httpGatewayAdapter) CreateClient(ctx context.Context, client models.Client) (models.Client, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(client).
		Post("/clients")
	if err != nil {
		return models.Client{}, fmt.Errorf("%w: create client: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Client{}, err
	}

	var created models.Client
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Client{}, fmt.Errorf("create client decode: %w", err)
	}
	return created, nil
}

func (h *httpGatewayAdapter) UpdateClientSettings(ctx context.Context, clientID int64, settings models.WebSettingsUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(settings).
		Put(fmt.Sprintf("/clients/%d/settings", clientID))
	if err != nil {
		return fmt.Errorf("%w: update client settings: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGatewayAdapter) ChangeClientPassword(ctx context.Context, clientID int64, newPassword string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"new_password": newPassword}).
		Patch(fmt.Sprintf("/clients/%d/password", clientID))
	if err != nil {
		return fmt.Errorf("%w: change client password: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGatewayAdapter) AddClientNumber(ctx context.Context, clientID int64, number models.ClientNumber) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(number).
		Post(fmt.Sprintf("/clients/%d/numbers", clientID))
	if err != nil {
		return fmt.Errorf("%w: add client number: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGatewayAdapter) ReloadClients(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]any{}).
		Post("/clients/reload")
	if err != nil {
		return fmt.Errorf("%w: reload clients: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}
