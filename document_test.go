package policyprism_test

import (
	"testing"

	"github.com/fwojciec/policyprism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_CheckPayloadSize(t *testing.T) {
	t.Parallel()

	t.Run("accepts payload at the limit", func(t *testing.T) {
		t.Parallel()

		limits := policyprism.DefaultLimits()

		assert.NoError(t, limits.CheckPayloadSize(policyprism.DefaultMaxPayloadBytes))
	})

	t.Run("rejects payload above the limit", func(t *testing.T) {
		t.Parallel()

		limits := policyprism.DefaultLimits()

		err := limits.CheckPayloadSize(policyprism.DefaultMaxPayloadBytes + 1)
		require.Error(t, err)
		assert.Equal(t, policyprism.ETOOLARGE, policyprism.ErrorCode(err))
		assert.Contains(t, policyprism.ErrorMessage(err), "15 MB")
	})

	t.Run("zero limit uses default", func(t *testing.T) {
		t.Parallel()

		limits := policyprism.Limits{}

		assert.NoError(t, limits.CheckPayloadSize(policyprism.DefaultMaxPayloadBytes))
		assert.Error(t, limits.CheckPayloadSize(policyprism.DefaultMaxPayloadBytes+1))
	})
}

func TestLimits_ScanDepth(t *testing.T) {
	t.Parallel()

	limits := policyprism.DefaultLimits()

	assert.Equal(t, 3, limits.ScanDepth(3))
	assert.Equal(t, 6, limits.ScanDepth(6))
	assert.Equal(t, 6, limits.ScanDepth(40))
	assert.Equal(t, 0, limits.ScanDepth(0))
}
