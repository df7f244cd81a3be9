// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// GOMSGGW gateway management API.
//
// The primary abstraction is [GatewayAdapter], which decouples the service
// layer from HTTP details: authentication, serialization, and the mapping
// of transport faults and non-2xx responses to the error values defined in
// errors.go. The package ships a resty-based implementation
// ([NewHTTPGatewayAdapter]).
//
// Every method treats any 2xx status as success. Non-2xx statuses are
// returned as a [*APIError] carrying the status code and the gateway's
// error message; network-level faults are wrapped in [ErrNetwork] so
// callers can distinguish the two with errors.Is / errors.As.
package adapter

import (
	"context"

	"github.com/gomsggw/gwadmin/models"
)

// GatewayAdapter defines the full set of gateway management operations the
// admin client performs. Implementations are responsible for
// authentication, JSON encoding, and error mapping; they never retry.
type GatewayAdapter interface {
	// ListCarriers fetches every carrier configured on the gateway.
	ListCarriers(ctx context.Context) ([]models.Carrier, error)

	// CreateCarrier registers a new upstream carrier.
	CreateCarrier(ctx context.Context, carrier models.Carrier) error

	// ReloadCarriers asks the gateway to re-read its carrier
	// configuration. The request carries an empty JSON body.
	ReloadCarriers(ctx context.Context) error

	// ListClients fetches every client account, including each client's
	// provisioned numbers.
	ListClients(ctx context.Context) ([]models.Client, error)

	// CreateClient creates a new client account and returns the created
	// record, including the server-assigned id.
	CreateClient(ctx context.Context, client models.Client) (models.Client, error)

	// UpdateClientSettings applies a partial update of a web client's
	// settings. Only non-nil fields of settings are transmitted.
	UpdateClientSettings(ctx context.Context, clientID int64, settings models.WebSettingsUpdate) error

	// ChangeClientPassword rotates the password of the given client.
	ChangeClientPassword(ctx context.Context, clientID int64, newPassword string) error

	// AddClientNumber assigns a phone number to the given client.
	AddClientNumber(ctx context.Context, clientID int64, number models.ClientNumber) error

	// ReloadClients asks the gateway to re-read its client and number
	// configuration. The request carries an empty JSON body.
	ReloadClients(ctx context.Context) error
}
