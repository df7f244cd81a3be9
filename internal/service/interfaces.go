package service

import (
	"context"

	"github.com/gomsggw/gwadmin/models"
)

// CarrierService manages upstream carrier records on the gateway.
type CarrierService interface {
	// List returns every configured carrier.
	List(ctx context.Context) ([]models.Carrier, error)

	// Create registers a new carrier. The name is required; a blank
	// name is refused locally with [ErrCarrierNameRequired] before any
	// request is sent.
	Create(ctx context.Context, carrier models.Carrier) error

	// Reload triggers a carrier configuration reload on the gateway.
	Reload(ctx context.Context) error
}

// ClientService manages tenant accounts on the gateway.
type ClientService interface {
	// List returns every client account.
	List(ctx context.Context) ([]models.Client, error)

	// Find resolves an identifier that is either a numeric id or a
	// username. All-digit input is first matched against ids (compared
	// as integers); only when no id matches does it fall back to an
	// exact username match. A missing client is (nil, nil), never an
	// error — transport failures still return an error.
	Find(ctx context.Context, identifier string) (*models.Client, error)

	// FindByUsername resolves a client by exact username only.
	FindByUsername(ctx context.Context, username string) (*models.Client, error)

	// Create registers a new client and returns the created record with
	// its server-assigned id. A blank username or a legacy client
	// without an address is refused locally before any request is sent.
	Create(ctx context.Context, client models.Client) (models.Client, error)

	// UpdateSettings applies a partial web-settings update. Callers are
	// expected to skip the call entirely for an empty update.
	UpdateSettings(ctx context.Context, clientID int64, settings models.WebSettingsUpdate) error

	// ChangePassword rotates the client's password.
	ChangePassword(ctx context.Context, clientID int64, newPassword string) error

	// Reload triggers a client configuration reload on the gateway.
	Reload(ctx context.Context) error
}

// NumberService provisions phone numbers to clients.
type NumberService interface {
	// Add assigns the given normalized numbers to the client, in input
	// order, and returns a per-number report with an added/skipped/
	// failed tally. When skipExisting is true the client's current
	// numbers are used as an exclusion set so duplicates are skipped
	// without a request; a server-side "already exists" answer is
	// recounted as skipped either way. progress, when non-nil, is
	// invoked once per number as its outcome is decided.
	Add(ctx context.Context, client *models.Client, numbers []string, carrier string, skipExisting bool, progress ProgressFunc) AddReport
}
