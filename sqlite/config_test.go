package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/policyprism"
	"github.com/fwojciec/policyprism/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigService_LoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND before first save", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)

		_, err := svc.LoadConfig(context.Background())
		assert.Equal(t, policyprism.ENOTFOUND, policyprism.ErrorCode(err))
	})

	t.Run("round-trips a saved config", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)
		ctx := context.Background()

		saved := &policyprism.Config{
			Enabled:  true,
			Carriers: []string{"metlife", "aia"},
			AutoRun:  false,
		}
		require.NoError(t, svc.SaveConfig(ctx, saved))
		assert.False(t, saved.UpdatedAt.IsZero(), "UpdatedAt should be set")

		loaded, err := svc.LoadConfig(ctx)
		require.NoError(t, err)

		assert.True(t, loaded.Enabled)
		assert.False(t, loaded.AutoRun)
		assert.Equal(t, []string{"metlife", "aia"}, loaded.Carriers)
	})

	t.Run("empty carrier list round-trips as empty", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveConfig(ctx, &policyprism.Config{Enabled: true}))

		loaded, err := svc.LoadConfig(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded.Carriers)
	})
}

func TestConfigService_SaveConfig(t *testing.T) {
	t.Parallel()

	t.Run("rejects unregistered carriers", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)

		err := svc.SaveConfig(context.Background(), &policyprism.Config{
			Carriers: []string{"bogus"},
		})
		assert.Equal(t, policyprism.EINVALID, policyprism.ErrorCode(err))
	})

	t.Run("replaces the previous config", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveConfig(ctx, &policyprism.Config{Enabled: true}))
		require.NoError(t, svc.SaveConfig(ctx, &policyprism.Config{Enabled: false, AutoRun: true}))

		loaded, err := svc.LoadConfig(ctx)
		require.NoError(t, err)
		assert.False(t, loaded.Enabled)
		assert.True(t, loaded.AutoRun)
	})
}

func TestConfigService_UpdateConfig(t *testing.T) {
	t.Parallel()

	t.Run("starts from defaults when nothing is saved", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)

		enabled := false
		config, err := svc.UpdateConfig(context.Background(), policyprism.ConfigUpdate{Enabled: &enabled})
		require.NoError(t, err)

		assert.False(t, config.Enabled)
		assert.True(t, config.AutoRun, "untouched fields keep defaults")
		assert.Equal(t, policyprism.CarrierIDs(), config.Carriers)
	})

	t.Run("patches only the provided fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveConfig(ctx, &policyprism.Config{
			Enabled:  true,
			Carriers: []string{"sunlife"},
			AutoRun:  true,
		}))

		autoRun := false
		config, err := svc.UpdateConfig(ctx, policyprism.ConfigUpdate{AutoRun: &autoRun})
		require.NoError(t, err)

		assert.True(t, config.Enabled)
		assert.False(t, config.AutoRun)
		assert.Equal(t, []string{"sunlife"}, config.Carriers)
	})

	t.Run("normalizes carrier IDs", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewConfigService(db)

		carriers := []string{"aia", "bogus", "metlife"}
		config, err := svc.UpdateConfig(context.Background(), policyprism.ConfigUpdate{Carriers: &carriers})
		require.NoError(t, err)

		assert.Equal(t, []string{"aia", "metlife"}, config.Carriers)
	})
}
