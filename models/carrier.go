package models

// CarrierType identifies the upstream SMS/MMS provider a carrier record
// talks to. The gateway only understands the values enumerated below.
type CarrierType string

const (
	// CarrierTelnyx is the Telnyx messaging API.
	CarrierTelnyx CarrierType = "telnyx"

	// CarrierTwilio is the Twilio messaging API.
	CarrierTwilio CarrierType = "twilio"

	// CarrierBandwidth is the Bandwidth messaging API.
	CarrierBandwidth CarrierType = "bandwidth"

	// CarrierPlivo is the Plivo messaging API.
	CarrierPlivo CarrierType = "plivo"
)

// CarrierTypes lists every carrier type the gateway accepts, in the order
// they are offered in the interactive menu.
var CarrierTypes = []CarrierType{CarrierTelnyx, CarrierTwilio, CarrierBandwidth, CarrierPlivo}

// Default message size limits in bytes, applied when the operator leaves
// the limit prompts blank during carrier creation.
const (
	DefaultSMSLimit = 600000
	DefaultMMSLimit = 1048576
)

// Carrier is an upstream delivery provider configured on the gateway.
type Carrier struct {
	// Name is the unique, operator-chosen identifier of the carrier
	// (e.g. "telnyx_prod"). Numbers reference carriers by this name.
	Name string `json:"name"`

	// Type selects the provider integration. One of [CarrierTypes].
	Type CarrierType `json:"type"`

	// Active reports whether the gateway currently routes traffic
	// through this carrier. The create payload omits it; the gateway
	// decides the initial state.
	Active bool `json:"active,omitempty"`

	// Username is the provider credential identifier. Its meaning varies
	// by type: API key for Telnyx, Account SID for Twilio, generic
	// username/API key for the rest.
	Username string `json:"username"`

	// Password is the provider credential secret: API secret for Telnyx
	// (may be empty), Auth Token for Twilio, password/secret otherwise.
	// Write-only; the gateway never returns it.
	Password string `json:"password,omitempty"`

	// SMSLimit is the maximum SMS payload size in bytes.
	// Zero or negative means unlimited.
	SMSLimit int `json:"sms_limit"`

	// MMSLimit is the maximum MMS payload size in bytes.
	// Zero or negative means unlimited.
	MMSLimit int `json:"mms_limit"`
}
