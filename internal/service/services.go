// Package service implements the gateway admin operations on top of the
// transport adapter: carrier management, client management, and number
// provisioning. Services hold no state of their own — the gateway is the
// source of truth — and perform only the client-side validation the
// interactive flows rely on (required fields, number shape, lookup
// precedence). All console I/O lives in the shell package so everything
// here is testable without a terminal.
package service

import (
	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/logger"
)

// Services groups the operation services behind one injection point for
// the interactive shell.
type Services struct {
	Carriers CarrierService
	Clients  ClientService
	Numbers  NumberService
}

func NewServices(gateway adapter.GatewayAdapter, log *logger.Logger) *Services {
	return &Services{
		Carriers: NewCarrierService(gateway, log),
		Clients:  NewClientService(gateway, log),
		Numbers:  NewNumberService(gateway, log),
	}
}
