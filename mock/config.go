package mock

import (
	"context"

	"github.com/fwojciec/policyprism"
)

var _ policyprism.ConfigService = (*ConfigService)(nil)

// ConfigService is a mock implementation of policyprism.ConfigService.
type ConfigService struct {
	LoadConfigFn   func(ctx context.Context) (*policyprism.Config, error)
	SaveConfigFn   func(ctx context.Context, config *policyprism.Config) error
	UpdateConfigFn func(ctx context.Context, upd policyprism.ConfigUpdate) (*policyprism.Config, error)
}

func (s *ConfigService) LoadConfig(ctx context.Context) (*policyprism.Config, error) {
	return s.LoadConfigFn(ctx)
}

func (s *ConfigService) SaveConfig(ctx context.Context, config *policyprism.Config) error {
	return s.SaveConfigFn(ctx, config)
}

func (s *ConfigService) UpdateConfig(ctx context.Context, upd policyprism.ConfigUpdate) (*policyprism.Config, error) {
	return s.UpdateConfigFn(ctx, upd)
}
