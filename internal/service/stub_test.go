package service

import (
	"context"

	"github.com/gomsggw/gwadmin/models"
)

// stubGateway is a hand-rolled GatewayAdapter test double: canned responses
// plus call recording, no mockgen needed.
type stubGateway struct {
	carriers []models.Carrier
	clients  []models.Client

	createdClient   models.Client
	createClientErr error
	listClientsErr  error
	listCarriersErr error
	reloadCarrierEr error
	reloadClientErr error

	// addNumberErrs returns a canned error for a given number; numbers
	// not present succeed.
	addNumberErrs map[string]error

	createCarrierCalls []models.Carrier
	createClientCalls  []models.Client
	addNumberCalls     []models.ClientNumber
	settingsCalls      []models.WebSettingsUpdate
	passwordCalls      []string
	reloadCarrierCalls int
	reloadClientCalls  int
}

func (s *stubGateway) ListCarriers(context.Context) ([]models.Carrier, error) {
	return s.carriers, s.listCarriersErr
}

func (s *stubGateway) CreateCarrier(_ context.Context, carrier models.Carrier) error {
	s.createCarrierCalls = append(s.createCarrierCalls, carrier)
	return nil
}

func (s *stubGateway) ReloadCarriers(context.Context) error {
	s.reloadCarrierCalls++
	return s.reloadCarrierEr
}

func (s *stubGateway) ListClients(context.Context) ([]models.Client, error) {
	return s.clients, s.listClientsErr
}

func (s *stubGateway) CreateClient(_ context.Context, client models.Client) (models.Client, error) {
	s.createClientCalls = append(s.createClientCalls, client)
	return s.createdClient, s.createClientErr
}

func (s *stubGateway) UpdateClientSettings(_ context.Context, _ int64, settings models.WebSettingsUpdate) error {
	s.settingsCalls = append(s.settingsCalls, settings)
	return nil
}

func (s *stubGateway) ChangeClientPassword(_ context.Context, _ int64, newPassword string) error {
	s.passwordCalls = append(s.passwordCalls, newPassword)
	return nil
}

func (s *stubGateway) AddClientNumber(_ context.Context, _ int64, number models.ClientNumber) error {
	s.addNumberCalls = append(s.addNumberCalls, number)
	if err, ok := s.addNumberErrs[number.Number]; ok {
		return err
	}
	return nil
}

func (s *stubGateway) ReloadClients(context.Context) error {
	s.reloadClientCalls++
	return s.reloadClientErr
}
