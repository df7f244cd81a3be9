package models

// ClientNumber is a phone number provisioned to a client and routed
// through a named carrier.
type ClientNumber struct {
	// Number is the normalized 11-digit US number: a leading "1"
	// followed by the 10-digit NANP number.
	Number string `json:"number"`

	// Carrier references a [Carrier] by name.
	Carrier string `json:"carrier"`

	// Tag is an optional free-text label.
	Tag string `json:"tag,omitempty"`

	// Group is an optional free-text grouping.
	Group string `json:"group,omitempty"`

	// SMSLimit is a per-number override of the client's daily cap.
	// Zero means inherit/unlimited.
	SMSLimit int `json:"sms_limit,omitempty"`
}
