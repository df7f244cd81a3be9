package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/models"
)

type clientService struct {
	gateway adapter.GatewayAdapter
	log     *logger.Logger
}

func NewClientService(gateway adapter.GatewayAdapter, log *logger.Logger) ClientService {
	return &clientService{gateway: gateway, log: log}
}

func (s *clientService) List(ctx context.Context) ([]models.Client, error) {
	clients, err := s.gateway.ListClients(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list clients")
		return nil, fmt.Errorf("list clients: %w", err)
	}

	s.log.Debug().Int("count", len(clients)).Msg("listed clients")
	return clients, nil
}

func (s *clientService) Find(ctx context.Context, identifier string) (*models.Client, error) {
	clients, err := s.gateway.ListClients(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("identifier", identifier).Msg("find client")
		return nil, fmt.Errorf("find client: %w", err)
	}

	return findClient(clients, identifier), nil
}

func (s *clientService) FindByUsername(ctx context.Context, username string) (*models.Client, error) {
	clients, err := s.gateway.ListClients(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("find client by username")
		return nil, fmt.Errorf("find client: %w", err)
	}

	for i := range clients {
		if clients[i].Username == username {
			return &clients[i], nil
		}
	}
	return nil, nil
}

// findClient resolves an identifier against an in-memory client list.
// Precedence is fixed: an all-digit identifier is first compared against
// ids as integers, and only when no id matches does the username pass run.
// A username that happens to be all digits is therefore shadowed by any
// client holding that id.
func findClient(clients []models.Client, identifier string) *models.Client {
	if isAllDigits(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err == nil {
			for i := range clients {
				if clients[i].ID == id {
					return &clients[i]
				}
			}
		}
	}

	for i := range clients {
		if clients[i].Username == identifier {
			return &clients[i]
		}
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (s *clientService) Create(ctx context.Context, client models.Client) (models.Client, error) {
	if strings.TrimSpace(client.Username) == "" {
		return models.Client{}, ErrUsernameRequired
	}
	if client.TypeOrDefault() == models.ClientLegacy && strings.TrimSpace(client.Address) == "" {
		return models.Client{}, ErrLegacyAddressRequired
	}

	created, err := s.gateway.CreateClient(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Str("username", client.Username).Msg("create client")
		return models.Client{}, fmt.Errorf("create client: %w", err)
	}

	s.log.Info().
		Int64("id", created.ID).
		Str("username", client.Username).
		Str("type", string(client.TypeOrDefault())).
		Msg("client created")
	return created, nil
}

func (s *clientService) UpdateSettings(ctx context.Context, clientID int64, settings models.WebSettingsUpdate) error {
	if err := s.gateway.UpdateClientSettings(ctx, clientID, settings); err != nil {
		s.log.Error().Err(err).Int64("client_id", clientID).Msg("update client settings")
		return fmt.Errorf("update client settings: %w", err)
	}

	s.log.Info().Int64("client_id", clientID).Msg("client settings updated")
	return nil
}

func (s *clientService) ChangePassword(ctx context.Context, clientID int64, newPassword string) error {
	if err := s.gateway.ChangeClientPassword(ctx, clientID, newPassword); err != nil {
		s.log.Error().Err(err).Int64("client_id", clientID).Msg("change client password")
		return fmt.Errorf("change client password: %w", err)
	}

	s.log.Info().Int64("client_id", clientID).Msg("client password changed")
	return nil
}

func (s *clientService) Reload(ctx context.Context) error {
	if err := s.gateway.ReloadClients(ctx); err != nil {
		s.log.Error().Err(err).Msg("reload clients")
		return fmt.Errorf("reload clients: %w", err)
	}

	s.log.Info().Msg("clients reloaded")
	return nil
}
