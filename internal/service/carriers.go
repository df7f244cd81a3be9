package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/models"
)

type carrierService struct {
	gateway adapter.GatewayAdapter
	log     *logger.Logger
}

func NewCarrierService(gateway adapter.GatewayAdapter, log *logger.Logger) CarrierService {
	return &carrierService{gateway: gateway, log: log}
}

func (s *carrierService) List(ctx context.Context) ([]models.Carrier, error) {
	carriers, err := s.gateway.ListCarriers(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list carriers")
		return nil, fmt.Errorf("list carriers: %w", err)
	}

	s.log.Debug().Int("count", len(carriers)).Msg("listed carriers")
	return carriers, nil
}

func (s *carrierService) Create(ctx context.Context, carrier models.Carrier) error {
	if strings.TrimSpace(carrier.Name) == "" {
		return ErrCarrierNameRequired
	}

	if err := s.gateway.CreateCarrier(ctx, carrier); err != nil {
		s.log.Error().Err(err).Str("carrier", carrier.Name).Msg("create carrier")
		return fmt.Errorf("create carrier: %w", err)
	}

	s.log.Info().Str("carrier", carrier.Name).Str("type", string(carrier.Type)).Msg("carrier created")
	return nil
}

func (s *carrierService) Reload(ctx context.Context) error {
	if err := s.gateway.ReloadCarriers(ctx); err != nil {
		s.log.Error().Err(err).Msg("reload carriers")
		return fmt.Errorf("reload carriers: %w", err)
	}

	s.log.Info().Msg("carriers reloaded")
	return nil
}
