package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/policyprism"
)

// Compile-time interface verification.
var _ policyprism.ConfigService = (*ConfigService)(nil)

// ConfigService implements policyprism.ConfigService using SQLite.
// The configuration is stored as a single row.
type ConfigService struct {
	db *DB
}

// NewConfigService creates a new ConfigService.
func NewConfigService(db *DB) *ConfigService {
	return &ConfigService{db: db}
}

// LoadConfig retrieves the stored configuration.
// Returns ENOTFOUND if no configuration has been saved yet.
func (s *ConfigService) LoadConfig(ctx context.Context) (*policyprism.Config, error) {
	var config policyprism.Config
	var enabled, autoRun int
	var carriers, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT enabled, carriers, auto_run, updated_at
		FROM config
		WHERE id = 1
	`).Scan(&enabled, &carriers, &autoRun, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, policyprism.Errorf(policyprism.ENOTFOUND, "configuration not found")
	}
	if err != nil {
		return nil, err
	}

	config.Enabled = enabled != 0
	config.AutoRun = autoRun != 0
	if carriers != "" {
		config.Carriers = strings.Split(carriers, "\n")
	}

	config.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig persists the configuration, replacing any previous version.
func (s *ConfigService) SaveConfig(ctx context.Context, config *policyprism.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	config.UpdatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO config (id, enabled, carriers, auto_run, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			enabled = excluded.enabled,
			carriers = excluded.carriers,
			auto_run = excluded.auto_run,
			updated_at = excluded.updated_at
	`, boolToInt(config.Enabled), strings.Join(config.Carriers, "\n"),
		boolToInt(config.AutoRun), config.UpdatedAt.Format(time.RFC3339))

	return err
}

// UpdateConfig applies a partial update to the stored configuration.
// If no configuration exists yet, the update is applied to the defaults.
func (s *ConfigService) UpdateConfig(ctx context.Context, upd policyprism.ConfigUpdate) (*policyprism.Config, error) {
	config, err := s.LoadConfig(ctx)
	if policyprism.ErrorCode(err) == policyprism.ENOTFOUND {
		config = policyprism.DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if upd.Enabled != nil {
		config.Enabled = *upd.Enabled
	}
	if upd.Carriers != nil {
		config.Carriers = policyprism.NormalizeCarrierIDs(*upd.Carriers)
	}
	if upd.AutoRun != nil {
		config.AutoRun = *upd.AutoRun
	}

	if err := s.SaveConfig(ctx, config); err != nil {
		return nil, err
	}

	return config, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
