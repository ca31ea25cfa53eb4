package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/policyprism"
	main "github.com/fwojciec/policyprism/cmd/policyprism"
	"github.com/fwojciec/policyprism/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows defaults when nothing is saved", func(t *testing.T) {
		t.Parallel()

		config := &mock.ConfigService{
			LoadConfigFn: func(ctx context.Context) (*policyprism.Config, error) {
				return nil, policyprism.Errorf(policyprism.ENOTFOUND, "configuration not found")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: config,
		}

		cmd := &main.ConfigCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "enabled:  true")
		assert.Contains(t, stdout.String(), "auto-run: true")
	})

	t.Run("patches enabled flag", func(t *testing.T) {
		t.Parallel()

		var gotUpdate policyprism.ConfigUpdate
		config := &mock.ConfigService{
			UpdateConfigFn: func(ctx context.Context, upd policyprism.ConfigUpdate) (*policyprism.Config, error) {
				gotUpdate = upd
				return &policyprism.Config{Enabled: false, AutoRun: true, Carriers: []string{"aia"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Config: config,
		}

		cmd := &main.ConfigCmd{Disable: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotUpdate.Enabled)
		assert.False(t, *gotUpdate.Enabled)
		assert.Nil(t, gotUpdate.Carriers)
		assert.Contains(t, stdout.String(), "enabled:  false")
		assert.Contains(t, stdout.String(), "carriers: aia")
	})

	t.Run("patches carrier allow-list", func(t *testing.T) {
		t.Parallel()

		var gotUpdate policyprism.ConfigUpdate
		config := &mock.ConfigService{
			UpdateConfigFn: func(ctx context.Context, upd policyprism.ConfigUpdate) (*policyprism.Config, error) {
				gotUpdate = upd
				return &policyprism.Config{Enabled: true, Carriers: *upd.Carriers}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Config: config,
		}

		cmd := &main.ConfigCmd{Carriers: []string{"metlife", "aia"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotUpdate.Carriers)
		assert.Equal(t, []string{"metlife", "aia"}, *gotUpdate.Carriers)
	})
}
