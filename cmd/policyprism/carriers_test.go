package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/fwojciec/policyprism/cmd/policyprism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarriersCmd_Run(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: &bytes.Buffer{},
	}

	cmd := &main.CarriersCmd{}
	err := cmd.Run(deps)

	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "prudential")
	assert.Contains(t, output, "MetLife")
	assert.Contains(t, output, "sunlife.com")
}
