package models

// ClientType distinguishes how a gateway tenant is reached.
type ClientType string

const (
	// ClientLegacy is a client reached over SMPP/MM4. Legacy clients
	// require a fixed network address for ACL checks and MM4 delivery.
	ClientLegacy ClientType = "legacy"

	// ClientWeb is a client integrated over REST and webhooks.
	ClientWeb ClientType = "web"
)

// APIFormat selects the payload dialect used for a web client's REST
// API and webhook deliveries.
type APIFormat string

const (
	APIFormatGeneric APIFormat = "generic"
	APIFormatBicom   APIFormat = "bicom"
	APIFormatTelnyx  APIFormat = "telnyx"
)

// Defaults the gateway applies when a web client's settings omit a field.
const (
	DefaultWebhookRetries     = 3
	DefaultWebhookTimeoutSecs = 10
)

// Client is a tenant account on the gateway. All fields are owned by the
// gateway; this tool only reads them and submits creation/update requests.
type Client struct {
	// ID is the server-assigned identifier. Immutable; zero until the
	// gateway has created the record.
	ID int64 `json:"id,omitempty"`

	// Username is the unique, operator-chosen login of the client.
	Username string `json:"username"`

	// Password is the client's credential. Write-only: it is sent on
	// creation and rotation but never returned by the gateway.
	Password string `json:"password,omitempty"`

	// Name is a human-readable display label (usually a company name).
	Name string `json:"name"`

	// Type is the client integration kind. The gateway treats an absent
	// type as legacy; use [Client.TypeOrDefault] when rendering.
	Type ClientType `json:"type,omitempty"`

	// Address is the IP or hostname used for SMPP ACL and MM4 delivery.
	// Required for legacy clients, optional for web clients. Omitted
	// from the creation payload when empty.
	Address string `json:"address,omitempty"`

	// SMSLimit is the daily outbound SMS cap. Zero means unlimited.
	SMSLimit int `json:"sms_limit"`

	// WebSettings holds the REST/webhook configuration. Present only
	// for web clients.
	WebSettings *WebSettings `json:"web_settings,omitempty"`

	// Numbers are the phone numbers provisioned to this client,
	// in gateway order.
	Numbers []ClientNumber `json:"numbers,omitempty"`
}

// TypeOrDefault returns the client type, treating an absent value as
// legacy the way the gateway does.
func (c Client) TypeOrDefault() ClientType {
	if c.Type == "" {
		return ClientLegacy
	}
	return c.Type
}

// WebSettings is the REST/webhook configuration of a web client as
// returned by the gateway.
type WebSettings struct {
	// APIFormat is the payload dialect. Empty means generic.
	APIFormat APIFormat `json:"api_format,omitempty"`

	// DefaultWebhook is the URL inbound messages are delivered to when
	// no per-number webhook overrides it.
	DefaultWebhook string `json:"default_webhook,omitempty"`

	// WebhookRetries is how many times a failed webhook delivery is
	// retried. Zero means the gateway default.
	WebhookRetries int `json:"webhook_retries,omitempty"`

	// WebhookTimeoutSecs is the per-delivery timeout in seconds.
	// Zero means the gateway default.
	WebhookTimeoutSecs int `json:"webhook_timeout_secs,omitempty"`
}

// WebSettingsUpdate is a partial update of a client's web settings.
// Nil fields are left untouched by the gateway; only operator-set fields
// are serialized.
type WebSettingsUpdate struct {
	APIFormat          *APIFormat `json:"api_format,omitempty"`
	DefaultWebhook     *string    `json:"default_webhook,omitempty"`
	WebhookRetries     *int       `json:"webhook_retries,omitempty"`
	WebhookTimeoutSecs *int       `json:"webhook_timeout_secs,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all, in which
// case no request should be sent.
func (u WebSettingsUpdate) IsEmpty() bool {
	return u.APIFormat == nil &&
		u.DefaultWebhook == nil &&
		u.WebhookRetries == nil &&
		u.WebhookTimeoutSecs == nil
}
