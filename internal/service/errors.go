package service

import "errors"

var (
	// ErrCarrierNameRequired is returned when carrier creation is
	// attempted with a blank name.
	ErrCarrierNameRequired = errors.New("carrier name is required")

	// ErrUsernameRequired is returned when client creation is attempted
	// with a blank username.
	ErrUsernameRequired = errors.New("username is required")

	// ErrLegacyAddressRequired is returned when a legacy client is
	// created without an address. The address is used for SMPP ACL and
	// MM4 delivery, so the gateway would reject the record anyway; the
	// check here keeps the refusal local and request-free.
	ErrLegacyAddressRequired = errors.New("address is required for legacy clients")
)
